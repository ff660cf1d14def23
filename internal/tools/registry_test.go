package tools

import (
	"context"
	"errors"
	"testing"
)

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()
	if reg == nil {
		t.Fatal("NewRegistry returned nil")
	}
	if reg.Count() != 0 {
		t.Errorf("new registry should be empty, got %d tools", reg.Count())
	}
}

func TestRegisterAndGet(t *testing.T) {
	reg := NewRegistry()

	tool := &Tool{
		Name:        "test_tool",
		Description: "A test tool",
		Category:    CategoryGenerate,
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			return "success", nil
		},
	}

	if err := reg.Register(tool); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	got := reg.Get("test_tool")
	if got == nil {
		t.Fatal("Get returned nil for registered tool")
	}
	if got.Name != "test_tool" {
		t.Errorf("got name %q, want %q", got.Name, "test_tool")
	}
	if !reg.Has("test_tool") {
		t.Error("Has should report registered tool")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	reg := NewRegistry()

	tool := &Tool{
		Name:     "dupe",
		Category: CategoryGenerate,
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			return "", nil
		},
	}

	if err := reg.Register(tool); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	if err := reg.Register(tool); !errors.Is(err, ErrToolAlreadyRegistered) {
		t.Fatalf("expected ErrToolAlreadyRegistered, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		name    string
		tool    *Tool
		wantErr error
	}{
		{
			name:    "empty name",
			tool:    &Tool{Name: "", Execute: func(ctx context.Context, args map[string]any) (string, error) { return "", nil }},
			wantErr: ErrToolNameEmpty,
		},
		{
			name:    "nil execute",
			tool:    &Tool{Name: "test", Execute: nil},
			wantErr: ErrToolExecuteNil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := reg.Register(tt.tool); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestGetByCategorySorted(t *testing.T) {
	reg := NewRegistry()

	for _, tool := range []*Tool{
		{Name: "zeta", Category: CategoryGenerate, Execute: func(ctx context.Context, args map[string]any) (string, error) { return "", nil }},
		{Name: "alpha", Category: CategoryGenerate, Execute: func(ctx context.Context, args map[string]any) (string, error) { return "", nil }},
		{Name: "other", Category: CategoryExplain, Execute: func(ctx context.Context, args map[string]any) (string, error) { return "", nil }},
	} {
		reg.MustRegister(tool)
	}

	generate := reg.GetByCategory(CategoryGenerate)
	if len(generate) != 2 {
		t.Fatalf("expected 2 generate tools, got %d", len(generate))
	}
	if generate[0].Name != "alpha" || generate[1].Name != "zeta" {
		t.Errorf("category listing should be sorted by name: %s, %s", generate[0].Name, generate[1].Name)
	}
}

func TestExecute(t *testing.T) {
	reg := NewRegistry()

	tool := &Tool{
		Name:     "echo",
		Category: CategoryGenerate,
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			msg, _ := args["message"].(string)
			return "Echo: " + msg, nil
		},
		Schema: Schema{
			Required:   []string{"message"},
			Properties: map[string]Property{"message": {Type: "string"}},
		},
	}

	reg.MustRegister(tool)

	result, err := reg.Execute(context.Background(), "echo", map[string]any{"message": "hello"})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Output != "Echo: hello" {
		t.Errorf("got output %q, want %q", result.Output, "Echo: hello")
	}
	if !result.IsSuccess() {
		t.Error("expected IsSuccess to be true")
	}
	if result.RequestID == "" {
		t.Error("execution should carry a request ID")
	}

	if _, err := reg.Execute(context.Background(), "echo", map[string]any{}); !errors.Is(err, ErrMissingRequiredArg) {
		t.Errorf("expected ErrMissingRequiredArg, got %v", err)
	}

	if _, err := reg.Execute(context.Background(), "nonexistent", map[string]any{}); !errors.Is(err, ErrToolNotFound) {
		t.Errorf("expected ErrToolNotFound, got %v", err)
	}
}

func TestNamesSorted(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"c_tool", "a_tool", "b_tool"} {
		reg.MustRegister(&Tool{
			Name:     name,
			Category: CategoryGenerate,
			Execute:  func(ctx context.Context, args map[string]any) (string, error) { return "", nil },
		})
	}

	names := reg.Names()
	want := []string{"a_tool", "b_tool", "c_tool"}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}
}

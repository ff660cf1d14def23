// Package tools defines the tool abstraction shared by the MCP server and
// the CLI: a named capability with a JSON-schema-shaped parameter
// description and an execute function, collected in a thread-safe registry.
package tools

import (
	"context"
)

// Category groups tools for listing and filtering.
type Category string

const (
	// CategoryGenerate covers contract generation from fields, flags and
	// named templates.
	CategoryGenerate Category = "/generate"

	// CategoryAugment covers capability blocks appended to existing
	// contract code.
	CategoryAugment Category = "/augment"

	// CategoryExplain covers concept documentation lookups.
	CategoryExplain Category = "/explain"

	// CategoryDeploy covers deployment artifact generation.
	CategoryDeploy Category = "/deploy"

	// CategoryDocs covers external documentation retrieval.
	CategoryDocs Category = "/docs"
)

// Property describes a single parameter for the tool's JSON schema.
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Default     any    `json:"default,omitempty"`
	Enum        []any  `json:"enum,omitempty"`
	// Items describes array element schema (required for type="array")
	Items *PropertyItems `json:"items,omitempty"`
}

// PropertyItems describes the schema for array elements.
type PropertyItems struct {
	Type string `json:"type"`
}

// Schema defines the JSON schema for tool arguments.
type Schema struct {
	// Required lists parameters that must be provided.
	Required []string `json:"required"`

	// Properties describes each parameter.
	Properties map[string]Property `json:"properties"`
}

// ExecuteFunc is the signature for tool execution. It returns the rendered
// Markdown report and any error; errors surface to MCP callers as in-band
// isError results, never as protocol faults.
type ExecuteFunc func(ctx context.Context, args map[string]any) (string, error)

// Tool is one exposed generation capability.
type Tool struct {
	// Name is the unique identifier for the tool.
	Name string

	// Description explains what the tool does, shown to MCP clients.
	Description string

	// Category groups the tool for listing.
	Category Category

	// Execute runs the tool with the given arguments.
	Execute ExecuteFunc

	// Schema defines the expected arguments.
	Schema Schema
}

// Validate checks if the tool definition is usable.
func (t *Tool) Validate() error {
	if t.Name == "" {
		return ErrToolNameEmpty
	}
	if t.Execute == nil {
		return ErrToolExecuteNil
	}
	return nil
}

// Result wraps one execution with metadata.
type Result struct {
	// ToolName identifies which tool was executed.
	ToolName string

	// RequestID correlates log lines for this execution.
	RequestID string

	// Output is the Markdown report produced by the tool.
	Output string

	// Err is set if the tool failed.
	Err error

	// DurationMs is how long execution took.
	DurationMs int64
}

// IsSuccess returns true if the tool executed without error.
func (r *Result) IsSuccess() bool {
	return r.Err == nil
}

package gen

import (
	"strings"
	"testing"
)

func TestGenerateDeploymentScript(t *testing.T) {
	script := GenerateDeploymentScript("TokenTracker", []ConstructorArgSpec{
		{Name: "owner_name", Type: "string", Value: "alice"},
		{Name: "supply", Type: "integer", Value: "1000"},
		{Name: "active", Type: "boolean", Value: "true"},
	}, "testnet")

	for _, want := range []string{
		"// Deployment script for TokenTracker",
		`contracts/TokenTracker.py`,
		`import { testnetAsimov } from "genlayer-js/chains";`,
		`args: ["alice", 1000, true],`,
		"deployContract",
		"waitForTransactionReceipt",
		// Deterministic placeholder, stamped later by the pipeline.
		"deployed-at: <pending-deployment-timestamp>",
	} {
		if !strings.Contains(script, want) {
			t.Errorf("deployment script missing %q", want)
		}
	}
}

func TestGenerateDeploymentScriptUnknownNetwork(t *testing.T) {
	script := GenerateDeploymentScript("X", nil, "somewhere")
	if !strings.Contains(script, "studionet") {
		t.Error("unknown networks should fall back to studionet")
	}
	if !strings.Contains(script, "args: [],") {
		t.Error("no constructor args should render an empty array")
	}
}

func TestRenderConstructorArg(t *testing.T) {
	tests := []struct {
		arg  ConstructorArgSpec
		want string
	}{
		{ConstructorArgSpec{Type: "string", Value: "hello"}, `"hello"`},
		{ConstructorArgSpec{Type: "integer", Value: "42"}, "42"},
		{ConstructorArgSpec{Type: "float", Value: "1.5"}, "1.5"},
		{ConstructorArgSpec{Type: "boolean", Value: "true"}, "true"},
		{ConstructorArgSpec{Type: "boolean", Value: "no"}, "false"},
		{ConstructorArgSpec{Type: "address", Value: "0xabc"}, `"0xabc"`},
	}
	for _, tt := range tests {
		if got := renderConstructorArg(tt.arg); got != tt.want {
			t.Errorf("renderConstructorArg(%v) = %q, want %q", tt.arg, got, tt.want)
		}
	}
}

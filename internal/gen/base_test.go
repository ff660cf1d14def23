package gen

import (
	"strings"
	"testing"
)

func TestBuildBaseContractExample(t *testing.T) {
	code := BuildBaseContract("TestContract", []FieldSpec{
		{Name: "data", Type: "string", Description: "Test data"},
	})

	for _, want := range []string{
		`# { "Depends": "py-genlayer:test" }`,
		"from genlayer import *",
		"class TestContract(gl.Contract):",
		"data: str # Test data",
		`def __init__(self, data: str = ""):`,
		"self.data = data",
		"def get_data(self) -> str:",
		"return self.data",
		"def get_contract_info(self) -> str:",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("generated contract missing %q\n%s", want, code)
		}
	}
}

func TestBuildBaseContractNoFields(t *testing.T) {
	code := BuildBaseContract("Empty", nil)

	if !strings.Contains(code, "def __init__(self):") {
		t.Error("zero-field constructor should take no parameters")
	}
	if !strings.Contains(code, "        pass") {
		t.Error("zero-field constructor body should be pass")
	}
	if strings.Contains(code, "def get_ ") {
		t.Error("zero-field contract should have no getters")
	}
}

func TestBuildBaseContractFieldOrder(t *testing.T) {
	code := BuildBaseContract("Ordered", []FieldSpec{
		{Name: "zebra", Type: "string"},
		{Name: "alpha", Type: "integer"},
		{Name: "mid", Type: "bool"},
	})

	// Declarations, constructor params and assignments all preserve input
	// order; fields are never sorted.
	zebra := strings.Index(code, "zebra: str")
	alpha := strings.Index(code, "alpha: u256")
	mid := strings.Index(code, "mid: bool")
	if !(zebra < alpha && alpha < mid) {
		t.Errorf("field declarations out of order: zebra=%d alpha=%d mid=%d", zebra, alpha, mid)
	}

	if !strings.Contains(code, `def __init__(self, zebra: str = "", alpha: u256 = u256(0), mid: bool = False):`) {
		t.Errorf("constructor signature does not preserve field order:\n%s", code)
	}
}

func TestBuildBaseContractDeterministic(t *testing.T) {
	fields := []FieldSpec{
		{Name: "owner", Type: "address", Description: "Contract owner"},
		{Name: "entries", Type: "list"},
	}
	first := BuildBaseContract("Stable", fields)
	second := BuildBaseContract("Stable", fields)
	if first != second {
		t.Error("identical inputs must produce byte-identical output")
	}
}

func TestBuildBaseContractDescriptionOptional(t *testing.T) {
	code := BuildBaseContract("Plain", []FieldSpec{{Name: "count", Type: "integer"}})
	if !strings.Contains(code, "    count: u256\n") {
		t.Errorf("field without description should have no trailing comment:\n%s", code)
	}
}

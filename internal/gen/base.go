package gen

import (
	"fmt"
	"strings"
)

// contractHeader opens every generated contract: the GenLayer dependency
// marker, the runtime import, and the stdlib modules the capability blocks
// rely on.
const contractHeader = `# { "Depends": "py-genlayer:test" }
from genlayer import *

import json
import typing


`

// BuildBaseContract assembles a minimal contract skeleton: storage field
// declarations, a constructor that defaults every field to its zero value,
// a fixed info accessor and one getter per field.
//
// The contract name is interpolated verbatim; identifier validation is the
// caller's responsibility. Field order is preserved exactly as given.
func BuildBaseContract(name string, fields []FieldSpec) string {
	var b strings.Builder
	b.WriteString(contractHeader)
	fmt.Fprintf(&b, "class %s(gl.Contract):\n", name)

	for _, f := range fields {
		concrete := MapType(f.Type)
		if f.Description != "" {
			fmt.Fprintf(&b, "    %s: %s # %s\n", f.Name, concrete, f.Description)
		} else {
			fmt.Fprintf(&b, "    %s: %s\n", f.Name, concrete)
		}
	}
	if len(fields) > 0 {
		b.WriteString("\n")
	}

	if len(fields) == 0 {
		b.WriteString("    def __init__(self):\n        pass\n")
	} else {
		params := make([]string, 0, len(fields))
		for _, f := range fields {
			concrete := MapType(f.Type)
			params = append(params, fmt.Sprintf("%s: %s = %s", f.Name, concrete, DefaultValue(concrete)))
		}
		fmt.Fprintf(&b, "    def __init__(self, %s):\n", strings.Join(params, ", "))
		for _, f := range fields {
			fmt.Fprintf(&b, "        self.%s = %s\n", f.Name, f.Name)
		}
	}

	fmt.Fprintf(&b, `
    @gl.public.view
    def get_contract_info(self) -> str:
        return "%s - Intelligent Contract deployed on GenLayer"
`, name)

	for _, f := range fields {
		concrete := MapType(f.Type)
		fmt.Fprintf(&b, `
    @gl.public.view
    def get_%s(self) -> %s:
        return self.%s
`, f.Name, concrete, f.Name)
	}

	return b.String()
}

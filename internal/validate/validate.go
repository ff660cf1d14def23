// Package validate checks tool inputs before any generation runs and scans
// generated code for dangerous constructs. Input failures are hard errors;
// scan findings are advisory warnings that never block generation.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Error reports a rejected tool input. It is the only error type the tool
// layer surfaces for bad parameters.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

var contractNameRe = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)

// ContractName requires PascalCase: a leading capital followed by
// alphanumerics only.
func ContractName(field, name string) error {
	if !contractNameRe.MatchString(name) {
		return &Error{
			Field:  field,
			Reason: fmt.Sprintf("%q must be PascalCase (start with a capital letter, letters and digits only)", name),
		}
	}
	return nil
}

// MarketName applies ContractName and additionally requires the literal
// "Market" suffix.
func MarketName(field, name string) error {
	if err := ContractName(field, name); err != nil {
		return err
	}
	if !strings.HasSuffix(name, "Market") {
		return &Error{
			Field:  field,
			Reason: fmt.Sprintf("%q must end with \"Market\"", name),
		}
	}
	return nil
}

// MinLength requires the trimmed value to be at least min characters.
func MinLength(field, value string, min int) error {
	if utf8.RuneCountInString(strings.TrimSpace(value)) < min {
		return &Error{
			Field:  field,
			Reason: fmt.Sprintf("must be at least %d characters", min),
		}
	}
	return nil
}

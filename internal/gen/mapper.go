package gen

import "strings"

// typeTable maps abstract field-type tags (lowercased) to GenLayer storage
// types.
var typeTable = map[string]string{
	"string":     "str",
	"text":       "str",
	"integer":    "u256",
	"int":        "u256",
	"number":     "u256",
	"timestamp":  "u256",
	"float":      "f64",
	"decimal":    "f64",
	"boolean":    "bool",
	"bool":       "bool",
	"address":    "Address",
	"list":       "DynArray[str]",
	"array":      "DynArray[str]",
	"dict":       "TreeMap[str, str]",
	"dictionary": "TreeMap[str, str]",
	"map":        "TreeMap[str, str]",
	"bytes":      "bytes",
}

// zeroValueTable maps concrete GenLayer types to their zero-value literals.
var zeroValueTable = map[string]string{
	"str":     `""`,
	"u256":    "u256(0)",
	"f64":     "0.0",
	"bool":    "False",
	"Address": "Address('0x0000000000000000000000000000000000000000')",
	"bytes":   "b''",
}

// MapType resolves an abstract field-type tag to a concrete GenLayer type.
// Lookup is case-insensitive. Unknown tags are returned unchanged so callers
// can pass already-concrete types (e.g. "TreeMap[Address, u256]") straight
// through.
func MapType(abstract string) string {
	if concrete, ok := typeTable[strings.ToLower(abstract)]; ok {
		return concrete
	}
	return abstract
}

// DefaultValue returns the zero-value expression for a concrete GenLayer
// type. Generic containers and unknown types fall back to a zero-arg
// constructor call, so every input yields a usable expression.
func DefaultValue(concrete string) string {
	if strings.HasPrefix(concrete, "DynArray") || strings.HasPrefix(concrete, "TreeMap") {
		return concrete + "()"
	}
	if literal, ok := zeroValueTable[concrete]; ok {
		return literal
	}
	return concrete + "()"
}

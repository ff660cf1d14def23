// Package gen assembles GenLayer intelligent-contract source code from
// structured parameters.
//
// Contracts are composed as text: a base skeleton built from typed storage
// fields, optional capability blocks appended to it (LLM processing, web
// data access), and a set of fixed full-contract templates for common
// patterns (DAO governance, content moderation, sentiment tracking,
// multi-oracle, prediction markets, vector stores).
//
// Generation is deterministic: the same inputs always produce byte-identical
// output. The package never parses or validates the code it emits.
package gen

// FieldSpec describes one storage field of a generated contract.
// Type is an abstract tag ("string", "integer", ...) resolved through
// MapType; unmapped tags are passed through verbatim.
type FieldSpec struct {
	Name        string
	Type        string
	Description string
}

// MetadataFieldSpec describes one metadata field of a vector store.
type MetadataFieldSpec struct {
	Name string
	Type string
}

// ConstructorArgSpec describes one constructor argument for a deployment
// script. Value is rendered according to Type (strings quoted, numbers and
// booleans raw).
type ConstructorArgSpec struct {
	Name        string
	Type        string
	Value       string
	Description string
}

// TemplateParams carries the caller-supplied parameters of a named
// full-contract template. Unused fields are ignored by templates that do
// not need them.
type TemplateParams struct {
	// Description of the contract's purpose, embedded in prompts and
	// string fields.
	Description string

	// Criteria drives subjective-judgment templates (content moderation).
	Criteria string

	// Topic is the subject tracked by the sentiment tracker.
	Topic string

	// Sources are the data URLs consulted by the multi-oracle template.
	Sources []string
}

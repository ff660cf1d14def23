package contract

import (
	"context"
	"fmt"
	"strings"

	"glforge/internal/gen"
	"glforge/internal/tools"
)

// ExplainConceptTool returns the tool that serves built-in GenLayer concept
// documentation.
func ExplainConceptTool() *tools.Tool {
	return &tools.Tool{
		Name:        "explain_concept",
		Description: "Explain a GenLayer concept: " + strings.Join(gen.Concepts(), ", "),
		Category:    tools.CategoryExplain,
		Execute:     executeExplainConcept,
		Schema: tools.Schema{
			Required: []string{"concept"},
			Properties: map[string]tools.Property{
				"concept": {
					Type:        "string",
					Description: "Concept tag to explain",
					Enum:        enumValues(gen.Concepts()),
				},
			},
		},
	}
}

func executeExplainConcept(ctx context.Context, args map[string]any) (string, error) {
	concept := stringArg(args, "concept")
	text, ok := gen.ExplainConcept(concept)
	if !ok {
		return "", fmt.Errorf("unknown concept %q; known concepts: %s", concept, strings.Join(gen.Concepts(), ", "))
	}
	return text, nil
}

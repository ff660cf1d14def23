package contract

import (
	"context"
	"fmt"

	"glforge/internal/docs"
	"glforge/internal/tools"
)

// docTopics lists the fetchable documentation topics in schema order.
var docTopics = []string{
	"intelligent_contracts",
	"equivalence_principle",
	"web_access",
	"deployment",
	"genlayer_js",
}

// FetchDocsTool returns the tool that retrieves official GenLayer
// documentation pages through the given fetcher.
func FetchDocsTool(fetcher docs.Fetcher, baseURL string) *tools.Tool {
	return &tools.Tool{
		Name:        "fetch_docs",
		Description: "Fetch a page of the official GenLayer documentation by topic",
		Category:    tools.CategoryDocs,
		Execute:     makeFetchDocs(fetcher, baseURL),
		Schema: tools.Schema{
			Required: []string{"topic"},
			Properties: map[string]tools.Property{
				"topic": {
					Type:        "string",
					Description: "Documentation topic to retrieve",
					Enum:        enumValues(docTopics),
				},
			},
		},
	}
}

func makeFetchDocs(fetcher docs.Fetcher, baseURL string) tools.ExecuteFunc {
	return func(ctx context.Context, args map[string]any) (string, error) {
		topic := stringArg(args, "topic")
		url := docs.TopicURL(baseURL, topic)

		body, err := fetcher.Fetch(ctx, url)
		if err != nil {
			return "", fmt.Errorf("fetch_docs %s: %w", topic, err)
		}

		return report{
			Title:     "GenLayer Documentation: " + topic,
			Intro:     "Retrieved from " + url + ".",
			Code:      body,
			CodeLang:  "text",
			CodeTitle: "Page Content",
		}.render(), nil
	}
}

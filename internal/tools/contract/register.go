package contract

import (
	"glforge/internal/docs"
	"glforge/internal/tools"
)

// RegisterAll registers all contract-generation tools with the given
// registry. The fetcher and baseURL feed the fetch_docs tool.
func RegisterAll(registry *tools.Registry, fetcher docs.Fetcher, docsBaseURL string) error {
	allTools := []*tools.Tool{
		// Generation
		GenerateContractTool(),
		TemplateContractTool(),
		PredictionMarketTool(),
		VectorStoreTool(),

		// Augmentation
		AddLLMCapabilitiesTool(),
		AddWebAccessTool(),

		// Knowledge
		ExplainConceptTool(),
		FetchDocsTool(fetcher, docsBaseURL),

		// Deployment
		DeploymentScriptTool(),
	}

	for _, tool := range allTools {
		if err := registry.Register(tool); err != nil {
			return err
		}
	}

	return nil
}

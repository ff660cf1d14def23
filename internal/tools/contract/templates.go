package contract

import (
	"context"
	"strconv"
	"strings"

	"glforge/internal/gen"
	"glforge/internal/logging"
	"glforge/internal/tools"
	"glforge/internal/validate"
)

// defaultMarketSource is used when create_prediction_market is called
// without web sources.
const defaultMarketSource = "https://api.coindesk.com/v1/bpi/currentprice.json"

// TemplateContractTool returns the tool that instantiates a named
// full-contract template.
func TemplateContractTool() *tools.Tool {
	return &tools.Tool{
		Name:        "generate_template_contract",
		Description: "Instantiate a complete contract from a named template: dao_governance, content_moderation, sentiment_tracker or multi_oracle",
		Category:    tools.CategoryGenerate,
		Execute:     executeTemplateContract,
		Schema: tools.Schema{
			Required: []string{"template_type", "contract_name"},
			Properties: map[string]tools.Property{
				"template_type": {
					Type:        "string",
					Description: "Template tag",
					Enum:        enumValues(gen.TemplateTags()),
				},
				"contract_name": {
					Type:        "string",
					Description: "PascalCase contract class name",
				},
				"description": {
					Type:        "string",
					Description: "What this instance of the template is for",
				},
				"criteria": {
					Type:        "string",
					Description: "Decision criteria woven into the template's prompts",
				},
				"topic": {
					Type:        "string",
					Description: "Subject tracked by sentiment or oracle templates",
				},
				"sources": {
					Type:        "array",
					Description: "Seed URLs for templates that read the web",
					Items:       &tools.PropertyItems{Type: "string"},
				},
			},
		},
	}
}

func executeTemplateContract(ctx context.Context, args map[string]any) (string, error) {
	name := stringArg(args, "contract_name")
	if err := validate.ContractName("contract_name", name); err != nil {
		return "", err
	}
	sources, err := stringSliceArg(args, "sources")
	if err != nil {
		return "", err
	}

	templateType := stringArg(args, "template_type")
	params := gen.TemplateParams{
		Description: stringArg(args, "description"),
		Criteria:    stringArg(args, "criteria"),
		Topic:       stringArg(args, "topic"),
		Sources:     sources,
	}

	timer := logging.StartTimer(logging.CategoryGenerator, "generate_template_contract")
	code := gen.GenerateFromTemplate(templateType, name, params)
	timer.Stop()

	intro := "Instantiated the " + templateType + " template."
	if !knownTemplate(templateType) {
		intro = "Unknown template type " + strconv.Quote(templateType) + "; generated a basic contract skeleton instead. Known templates: " + strings.Join(gen.TemplateTags(), ", ") + "."
	}

	return report{
		Title: "Template Contract: " + name,
		Intro: intro,
		Params: [][2]string{
			{"Template", templateType},
			{"Sources", strconv.Itoa(len(sources))},
		},
		Code:     code,
		Warnings: validate.ScanContract(code),
		Notes: []string{
			"Templates are starting points; adjust prompts and thresholds for your use case.",
			"Deploy through GenLayer Studio or generate_deployment_script.",
		},
	}.render(), nil
}

func enumValues(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func knownTemplate(tag string) bool {
	for _, known := range gen.TemplateTags() {
		if tag == known {
			return true
		}
	}
	return false
}

// PredictionMarketTool returns the tool that builds a yes/no prediction
// market contract.
func PredictionMarketTool() *tools.Tool {
	return &tools.Tool{
		Name:        "create_prediction_market",
		Description: "Generate a yes/no prediction market contract with payable betting, resolution and pro-rata payout methods",
		Category:    tools.CategoryGenerate,
		Execute:     executePredictionMarket,
		Schema: tools.Schema{
			Required: []string{"market_name", "description", "resolution_criteria"},
			Properties: map[string]tools.Property{
				"market_name": {
					Type:        "string",
					Description: "PascalCase class name ending in Market",
				},
				"description": {
					Type:        "string",
					Description: "What outcome this market is about",
				},
				"resolution_criteria": {
					Type:        "string",
					Description: "How the market decides the outcome (at least 20 characters)",
				},
				"web_sources": {
					Type:        "array",
					Description: "URLs consulted at resolution time",
					Items:       &tools.PropertyItems{Type: "string"},
				},
			},
		},
	}
}

func executePredictionMarket(ctx context.Context, args map[string]any) (string, error) {
	name := stringArg(args, "market_name")
	if err := validate.MarketName("market_name", name); err != nil {
		return "", err
	}
	if err := validate.MinLength("resolution_criteria", stringArg(args, "resolution_criteria"), 20); err != nil {
		return "", err
	}
	sources, err := stringSliceArg(args, "web_sources")
	if err != nil {
		return "", err
	}
	if len(sources) == 0 {
		sources = []string{defaultMarketSource}
	}

	timer := logging.StartTimer(logging.CategoryGenerator, "create_prediction_market")
	code := gen.GeneratePredictionMarket(name, stringArg(args, "description"), stringArg(args, "resolution_criteria"), sources)
	timer.Stop()

	return report{
		Title: "Prediction Market: " + name,
		Intro: "Generated a yes/no prediction market contract.",
		Params: [][2]string{
			{"Description", stringArg(args, "description")},
			{"Resolution criteria", stringArg(args, "resolution_criteria")},
			{"Web sources", strings.Join(sources, ", ")},
		},
		Code:     code,
		Warnings: validate.ScanContract(code),
		Notes: []string{
			"resolve_market ships with a placeholder body; wire it to the listed sources before real use.",
			"claim_winnings pays pro rata against the winning pool and does not guard a zero pool.",
		},
	}.render(), nil
}

// VectorStoreTool returns the tool that builds an embedding-indexed text
// store contract.
func VectorStoreTool() *tools.Tool {
	return &tools.Tool{
		Name:        "create_vector_store",
		Description: "Generate a contract that stores texts in a 384-dimension vector index and answers nearest-neighbour queries",
		Category:    tools.CategoryGenerate,
		Execute:     executeVectorStore,
		Schema: tools.Schema{
			Required: []string{"store_name", "description"},
			Properties: map[string]tools.Property{
				"store_name": {
					Type:        "string",
					Description: "PascalCase contract class name",
				},
				"description": {
					Type:        "string",
					Description: "What kind of texts the store indexes",
				},
				"metadata_fields": {
					Type:        "array",
					Description: "Metadata fields as {name, type} objects, documented on add_text",
					Items:       &tools.PropertyItems{Type: "object"},
				},
			},
		},
	}
}

func executeVectorStore(ctx context.Context, args map[string]any) (string, error) {
	name := stringArg(args, "store_name")
	if err := validate.ContractName("store_name", name); err != nil {
		return "", err
	}
	metadata, err := metadataFieldsArg(args, "metadata_fields")
	if err != nil {
		return "", err
	}

	timer := logging.StartTimer(logging.CategoryGenerator, "create_vector_store")
	code := gen.GenerateVectorStore(name, stringArg(args, "description"), metadata)
	timer.Stop()

	return report{
		Title: "Vector Store: " + name,
		Intro: "Generated an embedding-indexed text store contract.",
		Params: [][2]string{
			{"Description", stringArg(args, "description")},
			{"Metadata fields", strconv.Itoa(len(metadata))},
		},
		Code:     code,
		Warnings: validate.ScanContract(code),
		Notes: []string{
			"Embeddings are fixed at 384 dimensions (all-MiniLM-L6-v2 shaped).",
			"Metadata fields are documented on add_text; the index itself stores text keyed by id.",
		},
	}.render(), nil
}

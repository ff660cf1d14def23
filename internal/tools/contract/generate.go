package contract

import (
	"context"
	"strconv"

	"glforge/internal/gen"
	"glforge/internal/logging"
	"glforge/internal/tools"
	"glforge/internal/validate"
)

// defaultURLTemplate documents the expected URL shape when generate_contract
// enables web access without an explicit template.
const defaultURLTemplate = "https://example.com/api/data"

// defaultProcessingLogic is the page-interpretation instruction used when
// the caller does not supply one.
const defaultProcessingLogic = "Extract the key data points from the page"

// GenerateContractTool returns the tool that builds a contract from storage
// fields and capability flags.
func GenerateContractTool() *tools.Tool {
	return &tools.Tool{
		Name:        "generate_contract",
		Description: "Generate a GenLayer intelligent contract from a name, requirements and storage fields, optionally with LLM processing and web data access methods",
		Category:    tools.CategoryGenerate,
		Execute:     executeGenerateContract,
		Schema: tools.Schema{
			Required: []string{"contract_name", "requirements"},
			Properties: map[string]tools.Property{
				"contract_name": {
					Type:        "string",
					Description: "PascalCase contract class name",
				},
				"requirements": {
					Type:        "string",
					Description: "What the contract should do (at least 10 characters)",
				},
				"use_llm": {
					Type:        "boolean",
					Description: "Append LLM processing methods",
					Default:     false,
				},
				"web_access": {
					Type:        "boolean",
					Description: "Append web data-access methods",
					Default:     false,
				},
				"url_template": {
					Type:        "string",
					Description: "URL shape documented on the web-access methods",
				},
				"processing_logic": {
					Type:        "string",
					Description: "Instruction used to interpret fetched pages",
				},
				"storage_fields": {
					Type:        "array",
					Description: "Storage fields as {name, type, description} objects",
					Items:       &tools.PropertyItems{Type: "object"},
				},
			},
		},
	}
}

func executeGenerateContract(ctx context.Context, args map[string]any) (string, error) {
	name := stringArg(args, "contract_name")
	if err := validate.ContractName("contract_name", name); err != nil {
		return "", err
	}
	requirements := stringArg(args, "requirements")
	if err := validate.MinLength("requirements", requirements, 10); err != nil {
		return "", err
	}
	fields, err := fieldSpecsArg(args, "storage_fields")
	if err != nil {
		return "", err
	}

	useLLM := boolArg(args, "use_llm", false)
	webAccess := boolArg(args, "web_access", false)

	timer := logging.StartTimer(logging.CategoryGenerator, "generate_contract")
	code := gen.BuildBaseContract(name, fields)
	if useLLM {
		code = gen.AddLLMCapabilities(code, requirements)
	}
	if webAccess {
		urlTemplate := stringArg(args, "url_template")
		if urlTemplate == "" {
			urlTemplate = defaultURLTemplate
		}
		processing := stringArg(args, "processing_logic")
		if processing == "" {
			processing = defaultProcessingLogic
		}
		code = gen.AddWebAccess(code, urlTemplate, processing)
	}
	timer.Stop()

	return report{
		Title: "Intelligent Contract: " + name,
		Intro: "Generated a GenLayer intelligent contract skeleton.",
		Params: [][2]string{
			{"Requirements", requirements},
			{"Storage fields", strconv.Itoa(len(fields))},
			{"LLM processing", yesNo(useLLM)},
			{"Web access", yesNo(webAccess)},
		},
		Code:     code,
		Warnings: validate.ScanContract(code),
		Notes: []string{
			"Review the generated storage fields and defaults before deploying.",
			"Deploy through GenLayer Studio or generate_deployment_script.",
			"Write methods that call LLMs or the web must stay behind their equivalence wrappers.",
		},
	}.render(), nil
}

// AddLLMCapabilitiesTool returns the tool that appends LLM methods to
// existing contract code.
func AddLLMCapabilitiesTool() *tools.Tool {
	return &tools.Tool{
		Name:        "add_llm_capabilities",
		Description: "Append LLM prompt-processing, sentiment-analysis and response-generation methods to existing contract code",
		Category:    tools.CategoryAugment,
		Execute:     executeAddLLMCapabilities,
		Schema: tools.Schema{
			Required: []string{"contract_code", "requirements"},
			Properties: map[string]tools.Property{
				"contract_code": {
					Type:        "string",
					Description: "Existing contract source to extend",
				},
				"requirements": {
					Type:        "string",
					Description: "What the LLM methods are for (at least 10 characters)",
				},
			},
		},
	}
}

func executeAddLLMCapabilities(ctx context.Context, args map[string]any) (string, error) {
	requirements := stringArg(args, "requirements")
	if err := validate.MinLength("requirements", requirements, 10); err != nil {
		return "", err
	}

	code := gen.AddLLMCapabilities(stringArg(args, "contract_code"), requirements)

	return report{
		Title: "LLM Capabilities Added",
		Intro: "Appended process_prompt, analyze_sentiment and generate_response methods. The input code was not parsed; verify the result still defines a single contract class.",
		Params: [][2]string{
			{"Requirements", requirements},
		},
		Code:     code,
		Warnings: validate.ScanContract(code),
		Notes: []string{
			"process_prompt branches on prompt_type: analysis, classification or general.",
			"analyze_sentiment returns exactly one of positive, negative or neutral.",
		},
	}.render(), nil
}

// AddWebAccessTool returns the tool that appends web data-access methods to
// existing contract code.
func AddWebAccessTool() *tools.Tool {
	return &tools.Tool{
		Name:        "add_web_access",
		Description: "Append single-URL, multi-URL and consensus web-fetch methods to existing contract code",
		Category:    tools.CategoryAugment,
		Execute:     executeAddWebAccess,
		Schema: tools.Schema{
			Required: []string{"contract_code"},
			Properties: map[string]tools.Property{
				"contract_code": {
					Type:        "string",
					Description: "Existing contract source to extend",
				},
				"url_template": {
					Type:        "string",
					Description: "URL shape documented on the fetch methods",
				},
				"processing_logic": {
					Type:        "string",
					Description: "Instruction used to interpret fetched pages",
				},
			},
		},
	}
}

func executeAddWebAccess(ctx context.Context, args map[string]any) (string, error) {
	urlTemplate := stringArg(args, "url_template")
	if urlTemplate == "" {
		urlTemplate = defaultURLTemplate
	}
	processing := stringArg(args, "processing_logic")
	if processing == "" {
		processing = defaultProcessingLogic
	}

	code := gen.AddWebAccess(stringArg(args, "contract_code"), urlTemplate, processing)

	return report{
		Title: "Web Access Added",
		Intro: "Appended fetch_web_data, fetch_multiple_urls and fetch_with_consensus methods.",
		Params: [][2]string{
			{"URL template", urlTemplate},
			{"Processing logic", processing},
		},
		Code:     code,
		Warnings: validate.ScanContract(code),
		Notes: []string{
			"Fetch failures return a JSON envelope with status \"failed\" instead of raising.",
			"fetch_with_consensus accepts numeric results within a 10% spread.",
		},
	}.render(), nil
}

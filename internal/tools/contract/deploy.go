package contract

import (
	"context"
	"strconv"

	"glforge/internal/gen"
	"glforge/internal/logging"
	"glforge/internal/tools"
	"glforge/internal/validate"
)

// DeploymentScriptTool returns the tool that builds a genlayer-js
// deployment script for a contract.
func DeploymentScriptTool() *tools.Tool {
	return &tools.Tool{
		Name:        "generate_deployment_script",
		Description: "Generate a TypeScript genlayer-js deployment script for a contract, targeting studionet, testnet or localnet",
		Category:    tools.CategoryDeploy,
		Execute:     executeDeploymentScript,
		Schema: tools.Schema{
			Required: []string{"contract_name"},
			Properties: map[string]tools.Property{
				"contract_name": {
					Type:        "string",
					Description: "PascalCase contract class name",
				},
				"constructor_args": {
					Type:        "array",
					Description: "Constructor arguments as {name, type, value, description} objects",
					Items:       &tools.PropertyItems{Type: "object"},
				},
				"network": {
					Type:        "string",
					Description: "Target network",
					Default:     "studionet",
					Enum:        []any{"studionet", "testnet", "localnet"},
				},
			},
		},
	}
}

func executeDeploymentScript(ctx context.Context, args map[string]any) (string, error) {
	name := stringArg(args, "contract_name")
	if err := validate.ContractName("contract_name", name); err != nil {
		return "", err
	}
	ctorArgs, err := constructorArgsArg(args, "constructor_args")
	if err != nil {
		return "", err
	}
	network := stringArg(args, "network")
	if network == "" {
		network = "studionet"
	}

	timer := logging.StartTimer(logging.CategoryGenerator, "generate_deployment_script")
	script := gen.GenerateDeploymentScript(name, ctorArgs, network)
	timer.Stop()

	return report{
		Title: "Deployment Script: " + name,
		Intro: "Generated a genlayer-js deployment script. Save it next to the contract source and run it with ts-node or tsx.",
		Params: [][2]string{
			{"Network", network},
			{"Constructor args", strconv.Itoa(len(ctorArgs))},
		},
		Code:     script,
		CodeLang: "typescript",
		Notes: []string{
			"Set ACCOUNT_PRIVATE_KEY in the environment; the script never embeds keys.",
			"The script reads the contract source from contracts/" + name + ".py.",
		},
	}.render(), nil
}

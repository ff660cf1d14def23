package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var (
	generateArgsJSON string
	generatePlain    bool
)

// generateCmd runs a single tool from the command line
var generateCmd = &cobra.Command{
	Use:   "generate [tool]",
	Short: "Run one contract-generation tool locally",
	Long: `Runs a tool without an MCP client and renders its Markdown report to the
terminal. Arguments are passed as a JSON object.

Example:
  glforge generate generate_contract --args '{
    "contract_name": "TokenTracker",
    "requirements": "Track token balances per holder",
    "use_llm": true
  }'`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateArgsJSON, "args", "a", "{}", "Tool arguments as a JSON object")
	generateCmd.Flags().BoolVar(&generatePlain, "plain", false, "Print raw Markdown without terminal rendering")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	_, registry, err := buildRegistry()
	if err != nil {
		return err
	}

	toolName := args[0]
	if !registry.Has(toolName) {
		return fmt.Errorf("unknown tool %q, run 'glforge tools' for the list", toolName)
	}

	var toolArgs map[string]any
	if err := json.Unmarshal([]byte(generateArgsJSON), &toolArgs); err != nil {
		return fmt.Errorf("parsing --args: %w", err)
	}

	result, err := registry.Execute(context.Background(), toolName, toolArgs)
	if err != nil {
		return err
	}

	if generatePlain {
		fmt.Println(result.Output)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		// Fall back to raw Markdown when the terminal can't be probed.
		fmt.Println(result.Output)
		return nil
	}

	rendered, err := renderer.Render(result.Output)
	if err != nil {
		fmt.Println(result.Output)
		return nil
	}
	fmt.Print(rendered)
	return nil
}

package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"glforge/internal/tools"
)

var (
	categoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	toolStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	descStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// toolsCmd lists the registered tools
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List all contract-generation tools",
	RunE:  runTools,
}

func runTools(cmd *cobra.Command, args []string) error {
	_, registry, err := buildRegistry()
	if err != nil {
		return err
	}

	categories := []tools.Category{
		tools.CategoryGenerate,
		tools.CategoryAugment,
		tools.CategoryExplain,
		tools.CategoryDocs,
		tools.CategoryDeploy,
	}

	for _, cat := range categories {
		catTools := registry.GetByCategory(cat)
		if len(catTools) == 0 {
			continue
		}
		fmt.Println(categoryStyle.Render(string(cat)))
		for _, t := range catTools {
			fmt.Printf("  %s\n    %s\n", toolStyle.Render(t.Name), descStyle.Render(t.Description))
		}
		fmt.Println()
	}

	fmt.Printf("%d tools registered\n", registry.Count())
	return nil
}

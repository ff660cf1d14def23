package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"glforge/internal/config"
	"glforge/internal/logging"
)

var (
	// Global flags
	verbose   bool
	workspace string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "glforge",
	Short: "glforge - GenLayer intelligent contract generator",
	Long: `glforge generates GenLayer intelligent contracts: Python contracts whose
write methods can call LLMs and read the web behind equivalence-principle
wrappers.

Run "glforge serve" to expose the generators as MCP tools over stdio, or
"glforge generate" to run a single tool from the command line.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.CloseAll()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", ".", "Workspace directory for config and logs")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd prints the server identity reported to MCP clients.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the glforge version",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Default()
		fmt.Printf("%s %s\n", cfg.Server.Name, cfg.Server.Version)
	},
}

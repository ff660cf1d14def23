package main

import (
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"glforge/internal/config"
	"glforge/internal/docs"
	"glforge/internal/logging"
	"glforge/internal/mcpserver"
	"glforge/internal/tools"
	"glforge/internal/tools/contract"
)

// serveCmd runs the MCP server on stdio
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the contract-generation tools over MCP on stdio",
	Long: `Starts the MCP server on stdin/stdout. Point an MCP client at the glforge
binary with this subcommand and it will see all nine contract-generation
tools.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, registry, err := buildRegistry()
	if err != nil {
		return err
	}

	logging.Boot("serving %d tools over stdio", registry.Count())
	s := mcpserver.New(cfg, registry)
	if err := server.ServeStdio(s); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}

// buildRegistry loads configuration, initializes logging and registers all
// tools. Shared by serve, generate and tools.
func buildRegistry() (*config.Config, *tools.Registry, error) {
	cfg, err := config.Load(workspace)
	if err != nil {
		return nil, nil, err
	}

	logOpts := logging.Options{
		DebugMode:  cfg.Logging.DebugMode || verbose,
		Level:      cfg.Logging.Level,
		Categories: cfg.Logging.Categories,
		JSONFormat: cfg.Logging.JSONFormat,
	}
	if err := logging.Initialize(workspace, logOpts); err != nil {
		return nil, nil, fmt.Errorf("initializing logging: %w", err)
	}

	timeout, err := time.ParseDuration(cfg.Docs.Timeout)
	if err != nil {
		timeout = 15 * time.Second
	}

	registry := tools.NewRegistry()
	fetcher := docs.NewHTTPFetcher(timeout)
	if err := contract.RegisterAll(registry, fetcher, cfg.Docs.BaseURL); err != nil {
		return nil, nil, fmt.Errorf("registering tools: %w", err)
	}

	return cfg, registry, nil
}

// Package mcpserver adapts the tool registry to the Model Context Protocol.
//
// This is a thin translation layer: tool schemas become MCP tool
// definitions, and execution results become MCP call results. Tool errors
// surface as in-band isError results so clients see validation messages
// instead of protocol faults.
package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"glforge/internal/config"
	"glforge/internal/logging"
	"glforge/internal/tools"
)

const serverInstructions = `glforge generates GenLayer intelligent contracts: Python contracts whose
write methods can call LLMs and read the web behind equivalence-principle
wrappers.

Start with generate_contract for custom contracts or
generate_template_contract / create_prediction_market / create_vector_store
for common shapes. Use add_llm_capabilities and add_web_access to extend
code you already have. explain_concept and fetch_docs answer questions
about the platform; generate_deployment_script produces the genlayer-js
script that ships a finished contract.

Every generation tool returns a Markdown report with the contract in a
fenced code block. The tools emit source text only; nothing is compiled or
deployed on your behalf.`

// New creates a configured MCP server with every registered tool exposed.
func New(cfg *config.Config, registry *tools.Registry) *server.MCPServer {
	s := server.NewMCPServer(
		cfg.Server.Name,
		cfg.Server.Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions),
	)

	for _, tool := range registry.All() {
		s.AddTool(toMCPTool(tool), makeHandler(registry, tool))
		logging.Server("exposed tool %s over MCP", tool.Name)
	}

	return s
}

// toMCPTool converts a registry tool definition into an MCP tool.
func toMCPTool(t *tools.Tool) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(t.Description)}

	required := make(map[string]bool, len(t.Schema.Required))
	for _, name := range t.Schema.Required {
		required[name] = true
	}

	for name, prop := range t.Schema.Properties {
		opts = append(opts, propertyOption(name, prop, required[name]))
	}

	return mcp.NewTool(t.Name, opts...)
}

// propertyOption maps one schema property onto the matching mcp-go option.
func propertyOption(name string, prop tools.Property, required bool) mcp.ToolOption {
	switch prop.Type {
	case "boolean":
		bopts := []mcp.PropertyOption{mcp.Description(prop.Description)}
		if required {
			bopts = append(bopts, mcp.Required())
		}
		if def, ok := prop.Default.(bool); ok {
			bopts = append(bopts, mcp.DefaultBool(def))
		}
		return mcp.WithBoolean(name, bopts...)

	case "number", "integer":
		nopts := []mcp.PropertyOption{mcp.Description(prop.Description)}
		if required {
			nopts = append(nopts, mcp.Required())
		}
		if def, ok := prop.Default.(float64); ok {
			nopts = append(nopts, mcp.DefaultNumber(def))
		}
		return mcp.WithNumber(name, nopts...)

	case "array":
		aopts := []mcp.PropertyOption{mcp.Description(prop.Description)}
		if required {
			aopts = append(aopts, mcp.Required())
		}
		if prop.Items != nil {
			aopts = append(aopts, mcp.Items(map[string]any{"type": prop.Items.Type}))
		}
		return mcp.WithArray(name, aopts...)

	default: // string
		sopts := []mcp.PropertyOption{mcp.Description(prop.Description)}
		if required {
			sopts = append(sopts, mcp.Required())
		}
		if def, ok := prop.Default.(string); ok {
			sopts = append(sopts, mcp.DefaultString(def))
		}
		if len(prop.Enum) > 0 {
			values := make([]string, 0, len(prop.Enum))
			for _, v := range prop.Enum {
				if s, ok := v.(string); ok {
					values = append(values, s)
				}
			}
			sopts = append(sopts, mcp.Enum(values...))
		}
		return mcp.WithString(name, sopts...)
	}
}

// makeHandler wraps a registry tool as an MCP call handler.
func makeHandler(registry *tools.Registry, tool *tools.Tool) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := registry.ExecuteTool(ctx, tool, req.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(result.Output), nil
	}
}

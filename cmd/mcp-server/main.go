package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	statline "github.com/statline-ai/statline/src"
)

const (
	toolAskStats     = "ask_stats"
	toolClearHistory = "clear_history"
)

func main() {
	godotenv.Load()

	configPath := flag.String("config", statline.DefaultSettingsPath(), "path to the settings file")
	dbPath := flag.String("db", "", "override the SQLite database path")
	flag.Parse()

	settings, err := statline.LoadSettings(*configPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *dbPath != "" {
		settings.DBPath = *dbPath
	}

	llm, err := statline.NewClaudeClient(os.Getenv(statline.EnvAPIKey), settings.Model)
	if err != nil {
		log.Fatalf("%v", err)
	}
	llm.BaseURL = settings.BaseURL

	store, err := statline.OpenStore(settings.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	engine := statline.NewEngine(llm, store, nil)

	// Create MCP server
	s := server.NewMCPServer(
		"Statline MCP Server",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, engine)

	// Start server
	if err := server.ServeStdio(s); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func registerTools(s *server.MCPServer, engine *statline.Engine) {
	s.AddTool(mcp.Tool{
		Name:        toolAskStats,
		Description: "Ask a natural-language question about 2024 MLB batting stats and get a narrated answer",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "string",
					"description": "The baseball stats question to answer",
				},
			},
			Required: []string{"question"},
		},
	}, handleAskStats(engine))

	s.AddTool(mcp.Tool{
		Name:        toolClearHistory,
		Description: "Clear the conversation history used to resolve follow-up questions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handleClearHistory(engine))
}

// handleAskStats runs one question through the engine and collects the
// streamed answer into a single text result.
func handleAskStats(engine *statline.Engine) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		question := strings.TrimSpace(request.GetString("question", ""))
		if question == "" {
			return mcp.NewToolResultError("question must not be empty"), nil
		}

		stream, err := engine.Ask(ctx, question)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Ask failed: %v", err)), nil
		}

		var b strings.Builder
		for chunk := range stream.Chunks() {
			b.WriteString(chunk)
		}
		if err := stream.Err(); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Answer stream failed: %v", err)), nil
		}

		return mcp.NewToolResultText(b.String()), nil
	}
}

func handleClearHistory(engine *statline.Engine) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		engine.ClearHistory()
		return mcp.NewToolResultText("Conversation history cleared"), nil
	}
}

// path: cmd/statline/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	. "github.com/statline-ai/statline/src"
)

func main() {
	godotenv.Load()

	configPath := flag.String("config", DefaultSettingsPath(), "path to the settings file")
	dbPath := flag.String("db", "", "override the SQLite database path")
	modelName := flag.String("model", "", "override the Anthropic model")
	logPath := flag.String("log", "", "append structured logs to this file")
	flag.Parse()

	settings, err := LoadSettings(*configPath)
	if err != nil {
		fmt.Println("❌ Failed to load settings:", err)
		os.Exit(1)
	}
	if *dbPath != "" {
		settings.DBPath = *dbPath
	}
	if *modelName != "" {
		settings.Model = *modelName
	}
	if *logPath != "" {
		settings.LogPath = *logPath
	}

	llm, err := NewClaudeClient(os.Getenv(EnvAPIKey), settings.Model)
	if err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
	llm.BaseURL = settings.BaseURL

	store, err := OpenStore(settings.DBPath)
	if err != nil {
		fmt.Println("❌ Failed to open database:", err)
		os.Exit(1)
	}
	defer store.Close()

	var logger *slog.Logger
	if settings.LogPath != "" {
		logFile, err := os.OpenFile(settings.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Println("❌ Failed to open log file:", err)
			os.Exit(1)
		}
		defer logFile.Close()
		logger = slog.New(slog.NewJSONHandler(logFile, nil))
	}

	ctx := context.Background()
	engine := NewEngine(llm, store, logger)

	fmt.Println("⚾ Starting Statline...")

	m := NewModel(ctx, engine, settings.DBPath)
	p := tea.NewProgram(m, tea.WithAltScreen())
	m.Program = p

	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

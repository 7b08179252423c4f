package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"
	arbor_models "github.com/ternarybob/arbor/models"

	"github.com/prismbrain/prism/internal/common"
	"github.com/prismbrain/prism/internal/services/classifier"
	"github.com/prismbrain/prism/internal/services/events"
	"github.com/prismbrain/prism/internal/services/normalizer"
	"github.com/prismbrain/prism/internal/services/project"
	"github.com/prismbrain/prism/internal/services/report"
	"github.com/prismbrain/prism/internal/services/themes"
	"github.com/prismbrain/prism/internal/storage"
)

func main() {
	configPath := os.Getenv("PRISM_CONFIG")
	if configPath == "" {
		configPath = "prism.toml"
	}

	config, err := common.LoadFromFile(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Minimal logger for MCP server (console only, no file output)
	logger := arbor.NewLogger().WithConsoleWriter(arbor_models.WriterConfiguration{
		Type:             arbor_models.LogWriterTypeConsole,
		TimeFormat:       "15:04:05",
		DisableTimestamp: false,
	}).WithLevelFromString("warn") // Minimal logging to avoid cluttering MCP stdio

	storageManager, err := storage.NewStorageManager(logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize storage")
	}
	defer storageManager.Close()

	classifierService := classifier.NewService(logger)
	if config.Classifier.RulesFile != "" {
		rules, err := classifier.LoadRules(config.Classifier.RulesFile)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to load classifier rules")
		}
		classifierService = classifier.NewServiceWithRules(rules, logger)
	}

	eventService := events.NewService(logger)
	defer eventService.Close()

	projectService, err := project.NewService(
		storageManager.ProjectStorage(),
		classifierService,
		themes.NewService(logger),
		eventService,
		config.Processing.Concurrency,
		logger,
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize project service")
	}

	normalizerService := normalizer.NewService(logger)
	reportService := report.NewService(logger)

	mcpServer := server.NewMCPServer(
		"prism",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	// Register project lifecycle tools
	mcpServer.AddTool(createCreateProjectTool(), handleCreateProject(projectService, logger))
	mcpServer.AddTool(createListProjectsTool(), handleListProjects(projectService, logger))
	mcpServer.AddTool(createSynthesizeProjectTool(), handleSynthesizeProject(projectService, reportService, logger))

	// Register ingestion tools
	mcpServer.AddTool(createIngestNotesTool(), handleIngestNotes(projectService, normalizerService, logger))
	mcpServer.AddTool(createIngestTranscriptTool(), handleIngestTranscript(projectService, normalizerService, logger))
	mcpServer.AddTool(createIngestDocumentTool(), handleIngestDocument(projectService, normalizerService, logger))

	// Start server (blocks on stdio)
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal().Err(err).Msg("MCP server failed")
	}
}

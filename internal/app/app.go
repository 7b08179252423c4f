package app

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/prismbrain/prism/internal/common"
	"github.com/prismbrain/prism/internal/handlers"
	"github.com/prismbrain/prism/internal/interfaces"
	"github.com/prismbrain/prism/internal/services/classifier"
	"github.com/prismbrain/prism/internal/services/events"
	"github.com/prismbrain/prism/internal/services/normalizer"
	"github.com/prismbrain/prism/internal/services/project"
	"github.com/prismbrain/prism/internal/services/report"
	"github.com/prismbrain/prism/internal/services/scheduler"
	"github.com/prismbrain/prism/internal/services/themes"
	"github.com/prismbrain/prism/internal/storage"
)

// App holds all application components and dependencies
type App struct {
	Config         *common.Config
	Logger         arbor.ILogger
	ctx            context.Context
	cancelCtx      context.CancelFunc
	StorageManager interfaces.StorageManager

	// Core services
	EventService      interfaces.EventService
	ClassifierService *classifier.Service
	ThemesService     *themes.Service
	NormalizerService *normalizer.Service
	ProjectService    interfaces.ProjectService
	SchedulerService  interfaces.SchedulerService
	ReportService     *report.Service

	// HTTP handlers
	APIHandler     *handlers.APIHandler
	ProjectHandler *handlers.ProjectHandler
	ReportHandler  *handlers.ReportHandler
	WSHandler      *handlers.WebSocketHandler
}

// New creates the application with all services wired
func New(config *common.Config, logger arbor.ILogger) (*App, error) {
	ctx, cancel := context.WithCancel(context.Background())

	a := &App{
		Config:    config,
		Logger:    logger,
		ctx:       ctx,
		cancelCtx: cancel,
	}

	if err := a.initServices(); err != nil {
		cancel()
		a.closeStorage()
		return nil, err
	}
	a.initHandlers()

	logger.Info().Msg("Application initialized")
	return a, nil
}

func (a *App) initServices() error {
	storageManager, err := storage.NewStorageManager(a.Logger, a.Config)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	a.StorageManager = storageManager

	a.EventService = events.NewService(a.Logger)

	if a.Config.Classifier.RulesFile != "" {
		rules, err := classifier.LoadRules(a.Config.Classifier.RulesFile)
		if err != nil {
			return fmt.Errorf("failed to load classifier rules: %w", err)
		}
		a.ClassifierService = classifier.NewServiceWithRules(rules, a.Logger)
		a.Logger.Info().Str("rules_file", a.Config.Classifier.RulesFile).Msg("Classifier rules loaded from file")
	} else {
		a.ClassifierService = classifier.NewService(a.Logger)
	}

	a.ThemesService = themes.NewService(a.Logger)
	a.NormalizerService = normalizer.NewService(a.Logger)
	a.ReportService = report.NewService(a.Logger)

	projectService, err := project.NewService(
		a.StorageManager.ProjectStorage(),
		a.ClassifierService,
		a.ThemesService,
		a.EventService,
		a.Config.Processing.Concurrency,
		a.Logger,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize project service: %w", err)
	}
	a.ProjectService = projectService

	if a.Config.Synthesis.Enabled {
		a.SchedulerService = scheduler.NewService(a.ProjectService, a.Config.Synthesis.Schedule, a.Logger)
		if err := a.SchedulerService.Start(); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}
	}

	return nil
}

func (a *App) initHandlers() {
	a.APIHandler = handlers.NewAPIHandler()
	a.ProjectHandler = handlers.NewProjectHandler(a.ProjectService, a.NormalizerService)
	a.ReportHandler = handlers.NewReportHandler(a.ProjectService, a.ReportService)
	a.WSHandler = handlers.NewWebSocketHandler(a.EventService, a.Logger, &a.Config.WebSocket)
}

// Close shuts down all services in reverse dependency order
func (a *App) Close() error {
	a.Logger.Info().Msg("Shutting down application...")

	if a.SchedulerService != nil {
		a.SchedulerService.Stop()
	}
	if a.WSHandler != nil {
		a.WSHandler.Close()
	}
	if a.EventService != nil {
		if err := a.EventService.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to close event service")
		}
	}

	a.cancelCtx()
	a.closeStorage()

	a.Logger.Info().Msg("Application shutdown complete")
	return nil
}

func (a *App) closeStorage() {
	if a.StorageManager == nil {
		return
	}
	if err := a.StorageManager.Close(); err != nil {
		a.Logger.Warn().Err(err).Msg("Failed to close storage")
	}
}

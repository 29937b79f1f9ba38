package cmd

import (
	"fmt"
	"net/http"

	"tasklist/api"
	"tasklist/api/health"
	apitask "tasklist/api/task"
	apiweb "tasklist/api/web"
	taskapp "tasklist/application/task"
	"tasklist/config"
	taskdomain "tasklist/domain/task"
	"tasklist/infrastructure/persistence/memory"
	"tasklist/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppBuilder builds an App with customizable components
type AppBuilder struct {
	cfg          *config.Config
	repo         taskdomain.Repository
	controllers  []api.ControllerRegister
	middlewares  []gin.HandlerFunc
	customRoutes []api.Route
	skipLogger   bool
}

// NewBuilder creates a new AppBuilder
func NewBuilder(cfg *config.Config) *AppBuilder {
	return &AppBuilder{
		cfg:          cfg,
		controllers:  []api.ControllerRegister{},
		middlewares:  []gin.HandlerFunc{},
		customRoutes: []api.Route{},
	}
}

// WithRepository replaces the default in-memory task store.
func (b *AppBuilder) WithRepository(repo taskdomain.Repository) *AppBuilder {
	b.repo = repo
	return b
}

// WithController adds a controller mounted under /api
func (b *AppBuilder) WithController(c api.ControllerRegister) *AppBuilder {
	b.controllers = append(b.controllers, c)
	return b
}

// WithMiddleware appends a middleware after the default chain
func (b *AppBuilder) WithMiddleware(m gin.HandlerFunc) *AppBuilder {
	b.middlewares = append(b.middlewares, m)
	return b
}

// WithRoute adds a custom route
func (b *AppBuilder) WithRoute(method, path string, handler gin.HandlerFunc) *AppBuilder {
	b.customRoutes = append(b.customRoutes, api.Route{
		Method:  method,
		Path:    path,
		Handler: handler,
	})
	return b
}

// WithoutLoggerInit keeps whatever process logger is already installed (used by tests).
func (b *AppBuilder) WithoutLoggerInit() *AppBuilder {
	b.skipLogger = true
	return b
}

// Build creates the App instance
func (b *AppBuilder) Build() (*App, error) {
	if !b.skipLogger {
		if err := logger.Init(&b.cfg.Log, b.cfg.App.Env); err != nil {
			return nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	logger.Info("Building application",
		zap.String("app", b.cfg.App.Name),
		zap.String("version", b.cfg.App.Version),
		zap.String("env", b.cfg.App.Env))

	repo := b.repo
	if repo == nil {
		logger.Info("Using in-memory task store")
		repo = memory.NewTaskRepository()
	}
	taskService := taskapp.NewApplicationService(repo)

	controllers := append([]api.ControllerRegister{
		health.NewController(b.cfg, taskService),
		apitask.NewController(taskService),
	}, b.controllers...)

	webController, err := apiweb.NewController(b.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load web assets: %w", err)
	}

	router := api.NewRouter(b.cfg, controllers, []api.ControllerRegister{webController}, b.middlewares, b.customRoutes)
	router.SetupRoutes()

	server := &http.Server{
		Addr:         ":" + b.cfg.Server.Port,
		Handler:      router.GetEngine(),
		ReadTimeout:  b.cfg.Server.ReadTimeout,
		WriteTimeout: b.cfg.Server.WriteTimeout,
	}

	return &App{
		config: b.cfg,
		server: server,
	}, nil
}

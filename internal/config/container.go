package config

import (
	"file-processor/internal/domain"
	"file-processor/internal/service"
	"file-processor/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config     domain.Config
	Logger     domain.Logger
	Dispatcher domain.Dispatcher
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	cfg := NewConfig()
	appLogger := logger.NewLogger(cfg.GetLogLevel())

	// OCR engine and per-operation services
	engine := service.NewTesseractEngine()
	registry := service.NewRegistry(
		service.NewRasterService(appLogger),
		service.NewAssembleService(appLogger),
		service.NewImageService(appLogger),
		service.NewOCRService(engine, appLogger, cfg.GetOCRDefaultLanguage()),
		service.NewSecurityService(appLogger),
		appLogger,
	)

	return &Container{
		Config:     cfg,
		Logger:     appLogger,
		Dispatcher: registry,
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetDispatcher returns the operation dispatcher instance
func (c *Container) GetDispatcher() domain.Dispatcher {
	return c.Dispatcher
}

package app

import (
	"log/slog"

	"world-scribe/validator"
	"world-scribe/world"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Worlds    *world.Manager
	Validator *validator.Validator
	Logger    *slog.Logger

	// WorldsPath is the folder used when a request names no worlds folder
	WorldsPath string
}

// New creates a new App instance with all dependencies
func New(worlds *world.Manager, worldsPath string, logger *slog.Logger) *App {
	return &App{
		Worlds:     worlds,
		Validator:  validator.New(),
		Logger:     logger,
		WorldsPath: worldsPath,
	}
}

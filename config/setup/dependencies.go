package setup

import (
	"context"
	"log/slog"

	"world-scribe/app"
	"world-scribe/config"
	"world-scribe/world"
)

// InitApp initializes the application with all dependencies. If worldPath is
// set that World is opened at startup.
func InitApp(ctx context.Context, cfg *config.Config, worldPath string, logger *slog.Logger) (*app.App, error) {
	worlds := world.NewManager(logger)

	if worldPath != "" {
		if _, err := worlds.Open(ctx, worldPath, true); err != nil {
			return nil, err
		}
	}

	application := app.New(worlds, cfg.WorldsPath, logger)
	logger.Info("application initialized", "worlds_path", cfg.WorldsPath)

	return application, nil
}

// Shutdown closes the open World, if any
func Shutdown(application *app.App, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if err := application.Worlds.Close(); err != nil {
		logger.Error("failed to close world", "error", err)
		return
	}
	logger.Info("world closed")
}

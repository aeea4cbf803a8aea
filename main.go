package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"world-scribe/config"
	"world-scribe/config/setup"
	"world-scribe/pagination"
	"world-scribe/world"

	"github.com/urfave/cli/v3"
)

func main() {
	config.Load()

	logger := setupLogger()
	slog.SetDefault(logger)

	root := &cli.Command{
		Name:  "world-scribe",
		Usage: "World Scribe content server",
		Commands: []*cli.Command{
			serveCommand(logger),
			createWorldCommand(logger),
			listWorldsCommand(logger),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runServer(ctx, config.AppConfig.Port, "", logger)
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand(logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "port", Value: config.AppConfig.Port, Usage: "HTTP listen port"},
			&cli.StringFlag{Name: "world", Usage: "World folder to open at startup"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runServer(ctx, c.String("port"), c.String("world"), logger)
		},
	}
}

func createWorldCommand(logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "create-world",
		Usage:     "Create a World with the default Categories",
		ArgsUsage: "<name>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Value: config.AppConfig.WorldsPath, Usage: "folder holding the Worlds"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one World name")
			}

			folder, err := world.NewManager(logger).Create(ctx, c.String("path"), c.Args().First())
			if err != nil {
				return err
			}
			fmt.Println(folder)
			return nil
		},
	}
}

func listWorldsCommand(logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "list-worlds",
		Usage: "List the Worlds in a folder",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Value: config.AppConfig.WorldsPath, Usage: "folder holding the Worlds"},
			&cli.IntFlag{Name: "page", Value: pagination.DefaultPage},
			&cli.IntFlag{Name: "size", Value: pagination.MaxSize},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			worlds, err := world.NewManager(logger).ListWorlds(c.String("path"), int(c.Int("page")), int(c.Int("size")))
			if err != nil {
				return err
			}
			for _, name := range worlds.Items {
				fmt.Println(name)
			}
			if worlds.HasMore {
				fmt.Println("...")
			}
			return nil
		},
	}
}

func runServer(ctx context.Context, port, worldPath string, logger *slog.Logger) error {
	cfg := config.AppConfig

	application, err := setup.InitApp(ctx, cfg, worldPath, logger)
	if err != nil {
		return err
	}

	app := setup.NewFiberApp(cfg, logger)
	setup.ApplyMiddleware(app, cfg, logger)
	setup.RegisterRoutes(app, application)

	logger.Info("starting server", "port", port, "env", cfg.Env)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(":" + port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		setup.Shutdown(application, logger)
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	logger.Info("shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	setup.Shutdown(application, logger)
	logger.Info("server stopped")
	return nil
}

func setupLogger() *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     getLogLevel(),
		AddSource: config.AppConfig.Env == "development",
	}

	if config.AppConfig.Env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func getLogLevel() slog.Level {
	switch config.AppConfig.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

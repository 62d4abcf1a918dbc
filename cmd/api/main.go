// @title			Catlog API
// @version		1.0
// @description	Shared pet-care logging: care events, daily completion and caregiver scoreboards.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pg "github.com/vecear/Catlog-sub000/internal/adapters/storage/postgres"
	"github.com/vecear/Catlog-sub000/internal/platform/logger"
	"github.com/vecear/Catlog-sub000/internal/router"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "catlog",
		Usage: "Shared pet-care logging service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "text",
				Usage:   "Log format (text, json)",
				EnvVars: []string{"LOG_FORMAT"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")), c.String("log-format"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the HTTP server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Value:   "8080",
						Usage:   "HTTP server port",
						EnvVars: []string{"PORT"},
					},
					&cli.StringFlag{
						Name:    "db-dsn",
						Usage:   "PostgreSQL DSN; empty selects sqlite or in-memory storage",
						EnvVars: []string{"DB_DSN"},
					},
					&cli.StringFlag{
						Name:    "sqlite-path",
						Usage:   "SQLite database file for single-instance deployments",
						EnvVars: []string{"SQLITE_PATH"},
					},
				},
				Action: runServe,
			},
			{
				Name:  "migrate",
				Usage: "Apply database migrations and exit",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db-dsn",
						Usage:    "PostgreSQL DSN",
						EnvVars:  []string{"DB_DSN"},
						Required: true,
					},
				},
				Action: runMigrate,
			},
		},
		Action: runServe,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func runServe(c *cli.Context) error {
	opts := router.Options{SQLitePath: c.String("sqlite-path")}

	if dsn := c.String("db-dsn"); dsn != "" {
		db, err := pg.Open(dsn)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()

		if err := pg.Migrate(c.Context, db); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		opts.DB = db
	}

	port := c.String("port")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router.NewRouter(opts),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-done:
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(c.Context, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

func runMigrate(c *cli.Context) error {
	db, err := pg.Open(c.String("db-dsn"))
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	return pg.Migrate(c.Context, db)
}

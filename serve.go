// C:\Users\wasab\OneDrive\デスクトップ\GS1SCAN\serve.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gs1scan/config"
	"gs1scan/database"
	"gs1scan/loader"
	"gs1scan/logger"
)

type serveFlags struct {
	port        int
	openBrowser bool
}

func newServeCmd() *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Example: `  gs1scan serve
  gs1scan serve --port 9090 --open`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(flags)
		},
	}

	cmd.Flags().IntVar(&flags.port, "port", 0, "Listen port (overrides config)")
	cmd.Flags().BoolVar(&flags.openBrowser, "open", false, "Open the API index in a browser after start")

	return cmd
}

// setup は設定を読み込み、ロガーとデータベース接続を用意します。
func setup() (config.Config, *zap.Logger, *sqlx.DB, error) {
	config.SetPath(configPath)
	cfg, cfgErr := config.LoadConfig()

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	if cfgErr != nil {
		log.Warn("failed to load config file, using defaults", zap.Error(cfgErr))
	}

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		return cfg, log, nil, err
	}
	if err := loader.InitDatabase(db); err != nil {
		db.Close()
		return cfg, log, nil, fmt.Errorf("database initialization failed: %w", err)
	}
	log.Info("database ready", zap.String("path", cfg.DatabasePath))
	return cfg, log, db, nil
}

func runServe(flags *serveFlags) error {
	cfg, log, db, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()
	defer db.Close()

	if n, err := database.CountProductMasters(db); err == nil && n == 0 {
		if _, statErr := os.Stat(cfg.CatalogCSVPath); statErr == nil {
			if _, err := loader.LoadCatalogCSV(db, cfg.CatalogCSVPath, cfg.CatalogEncoding, log); err != nil {
				log.Warn("initial catalog load failed", zap.Error(err))
			}
		} else {
			log.Warn("catalog is empty and no catalog file found", zap.String("path", cfg.CatalogCSVPath))
		}
	}

	port := cfg.Port
	if flags.port != 0 {
		port = flags.port
	}

	mux := http.NewServeMux()
	SetupRoutes(mux, db, log)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", "http://localhost"+srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	if flags.openBrowser {
		openBrowser(fmt.Sprintf("http://localhost:%d/api/config", port), log)
	}

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server start error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openBrowser(url string, log *zap.Logger) {
	var err error
	switch runtime.GOOS {
	case "windows":
		err = exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		err = exec.Command("open", url).Start()
	default:
		err = exec.Command("xdg-open", url).Start()
	}
	if err != nil {
		log.Warn("failed to open browser", zap.Error(err))
	}
}

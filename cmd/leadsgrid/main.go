package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/spec-kit/lead-dashboard/internal/client"
	"github.com/spec-kit/lead-dashboard/internal/config"
	"github.com/spec-kit/lead-dashboard/internal/countries"
	"github.com/spec-kit/lead-dashboard/internal/grid"
	"github.com/spec-kit/lead-dashboard/internal/observability"
	"github.com/spec-kit/lead-dashboard/internal/tui"
)

func main() {
	cfg, err := config.LoadClient()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run owns every deferred cleanup so main can exit only after they ran.
func run(cfg *config.ClientConfig) error {
	// stdout belongs to the terminal UI; log only when a file is configured
	logger := zap.NewNop()
	if cfg.Logger.File != "" {
		var err error
		logger, err = observability.NewLogger(cfg.Logger)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
	}
	defer logger.Sync() //nolint:errcheck

	timeout := cfg.Timeout()
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	api := client.New(*cfg, logger)
	if cfg.Email != "" {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		err := api.Login(ctx, cfg.Email, cfg.Password)
		cancel()
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			if err := api.Logout(ctx); err != nil {
				logger.Warn("logout failed", zap.Error(err))
			}
		}()
	}

	g := grid.New(api, grid.LeadColumns(countryOptions(api, timeout, logger)))
	model := tui.New(g, tui.Options{
		Title:   "Leads  " + cfg.APIURL,
		Timeout: timeout,
		Logger:  logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		return err
	}
	return nil
}

// countryOptions prefers the server's country list and falls back to the
// bundled directory when it cannot be fetched.
func countryOptions(api *client.Client, timeout time.Duration, logger *zap.Logger) []countries.Option {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	opts, err := api.Countries(ctx)
	if err != nil || len(opts) == 0 {
		logger.Warn("using bundled country list", zap.Error(err))
		return countries.NewDirectory(countries.DirectoryOptions{}).Options()
	}
	return opts
}

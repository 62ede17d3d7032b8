package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/osse101/TemplateOverrides_Go/internal/bootstrap"
	"github.com/osse101/TemplateOverrides_Go/internal/config"
	"github.com/osse101/TemplateOverrides_Go/internal/logger"
	"github.com/osse101/TemplateOverrides_Go/internal/mod"
	"github.com/osse101/TemplateOverrides_Go/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		serve   bool
		seed    bool
		modsDir string
		catPath string
		mods    []string
	)
	flagSet := pflag.NewFlagSet("template-overrides", pflag.ContinueOnError)
	flagSet.BoolVar(&serve, "serve", false, "start the inspection API after the mods have run (overrides SERVE)")
	flagSet.BoolVar(&seed, "seed", false, "copy the catalog snapshot into PostgreSQL before loading")
	flagSet.StringVar(&modsDir, "mods-dir", "", "directory holding the mod documents (overrides MODS_DIR)")
	flagSet.StringVar(&catPath, "catalog", "", "catalog snapshot path (overrides CATALOG_PATH)")
	flagSet.StringSliceVar(&mods, "mods", nil, "comma separated mods to run (overrides ENABLED_MODS)")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}
	if flagSet.Changed("serve") {
		cfg.Serve = serve
	}
	if modsDir != "" {
		cfg.ModsDir = modsDir
	}
	if catPath != "" {
		cfg.CatalogPath = catPath
	}
	if len(mods) > 0 {
		cfg.EnabledMods = mods
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	for _, w := range warnings {
		logger.FromContext(context.Background()).Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, pool, err := bootstrap.LoadCatalog(ctx, cfg, bootstrap.CatalogOptions{Seed: seed})
	if err != nil {
		return err
	}
	components := bootstrap.ShutdownComponents{}
	if pool != nil {
		components.DBPool = pool
	}

	report := mod.NewReport()
	host, err := bootstrap.NewHost(ctx, bootstrap.BuildMods(cfg, cat, report))
	if err == nil {
		err = host.Run(ctx)
	}
	if err != nil || !cfg.Serve {
		bootstrap.GracefulShutdown(context.Background(), components)
		return err
	}

	srv := server.NewServer(server.Options{
		Port:      cfg.Port,
		Version:   cfg.Version,
		CacheSize: cfg.CacheSize,
		CacheTTL:  cfg.CacheTTL,
	}, cat, report, components.DBPool)
	components.Server = srv

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, components)
	return err
}

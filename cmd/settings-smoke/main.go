package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"admintools/internal/adapters/console"
	"admintools/internal/adapters/settingsapi"
	"admintools/internal/application"
	"admintools/internal/config"
	"admintools/internal/infrastructure/i18n"
	"admintools/internal/infrastructure/logging"
)

var errStepsFailed = errors.New("smoke steps failed")

func main() {
	cfg, err := config.LoadSmoke()
	if err != nil {
		console.NewPrinter(os.Stderr, i18n.NewTranslator("en", nil), "en").Fatal(err)
		os.Exit(1)
	}
	if err := newRootCommand(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(cfg *config.Smoke) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "settings-smoke",
		Short:         "Login, read, update, verify and revert one admin setting",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cfg)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "settings API base URL")
	flags.StringVar(&cfg.Email, "email", cfg.Email, "admin login email")
	flags.StringVar(&cfg.Key, "key", cfg.Key, "setting key to exercise")
	flags.StringVar(&cfg.Value, "value", cfg.Value, "test value as a JSON literal")
	flags.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-request timeout")
	flags.StringVar(&cfg.Locale, "locale", cfg.Locale, "language of the console output (en, fr)")
	flags.BoolVar(&cfg.Strict, "strict", cfg.Strict, "exit non-zero when any step fails")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	return cmd
}

func run(ctx context.Context, cfg *config.Smoke) error {
	printer := console.NewPrinter(os.Stdout, i18n.NewTranslator(cfg.Locale, nil), cfg.Locale)
	if err := cfg.Validate(); err != nil {
		printer.Fatal(err)
		return err
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		printer.Fatal(err)
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := application.NewSmokeService(
		settingsapi.New(cfg.BaseURL, cfg.Timeout),
		application.SmokeOptions{
			Email:     cfg.Email,
			Password:  cfg.Password,
			Key:       cfg.Key,
			TestValue: cfg.TestValue(),
		},
		printer.SmokeStep,
		log,
	)

	printer.SmokeHeader(cfg.BaseURL, cfg.Key)
	result, err := svc.Run(ctx)
	if err != nil {
		log.Error("smoke run aborted", zap.Error(err))
		printer.Fatal(err)
		return err
	}
	printer.SmokeSummary(result)
	if cfg.Strict && result.Failed() > 0 {
		return errStepsFailed
	}
	return nil
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"admintools/internal/adapters/console"
	"admintools/internal/adapters/discord"
	"admintools/internal/application"
	"admintools/internal/config"
	"admintools/internal/infrastructure/catalog"
	"admintools/internal/infrastructure/i18n"
	"admintools/internal/infrastructure/logging"
	"admintools/internal/infrastructure/pages"
	"admintools/internal/infrastructure/report"
	"admintools/internal/ports/output"
	"admintools/pkg/tz"
)

func main() {
	cfg, err := config.LoadAudit()
	if err != nil {
		console.NewPrinter(os.Stderr, i18n.NewTranslator("en", nil), "en").Fatal(err)
		os.Exit(1)
	}
	if err := newRootCommand(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(cfg *config.Audit) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "i18n-audit",
		Short:         "Cross-check admin page translation keys against the message catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cfg)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&cfg.Root, "root", cfg.Root, "directory searched recursively for page sources")
	flags.StringVar(&cfg.Pattern, "pattern", cfg.Pattern, "glob matched against page file names")
	flags.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "translation catalog (.json, .toml, .yaml)")
	flags.StringVar(&cfg.OutputPath, "output", cfg.OutputPath, "JSON report path")
	flags.StringVar(&cfg.Locale, "locale", cfg.Locale, "language of the console report (en, fr)")
	flags.StringVar(&cfg.Timezone, "timezone", cfg.Timezone, "IANA zone of the report timestamp")
	flags.StringVar(&cfg.DiscordWebhook, "discord-webhook", cfg.DiscordWebhook, "Discord webhook URL receiving the summary")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	return cmd
}

func run(ctx context.Context, cfg *config.Audit) error {
	translator := i18n.NewTranslator(cfg.Locale, nil)
	printer := console.NewPrinter(os.Stdout, translator, cfg.Locale)
	fail := func(err error) error {
		printer.Fatal(err)
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fail(err)
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fail(err)
	}
	defer func() { _ = log.Sync() }()

	loc, err := tz.Load(cfg.Timezone)
	if err != nil {
		return fail(err)
	}
	finder, err := pages.NewFinder(cfg.Root, cfg.Pattern)
	if err != nil {
		return fail(err)
	}

	var notifier output.Notifier
	if cfg.DiscordWebhook != "" {
		n, err := discord.NewWebhookNotifier(cfg.DiscordWebhook)
		if err != nil {
			return fail(err)
		}
		notifier = n
	}

	writer := report.NewJSONWriter(cfg.OutputPath)
	svc := application.NewAuditService(
		finder,
		catalog.NewFileLoader(),
		writer,
		notifier,
		application.AuditOptions{CatalogPath: cfg.CatalogPath, Location: loc},
		log,
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	printer.AuditHeader(cfg.Root, cfg.Pattern, cfg.CatalogPath)
	rep, err := svc.Run(ctx)
	if err != nil {
		log.Error("audit failed", zap.Error(err))
		return fail(err)
	}
	printer.AuditReport(rep, writer.Path())
	return nil
}

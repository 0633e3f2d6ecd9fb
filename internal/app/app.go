package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/dealer_notifier/internal/config"
	v1 "github.com/kurochkinivan/dealer_notifier/internal/controller/http/v1"
	"github.com/kurochkinivan/dealer_notifier/internal/domain"
	"github.com/kurochkinivan/dealer_notifier/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/dealer_notifier/internal/infrastructure/whatsapp"
	"github.com/kurochkinivan/dealer_notifier/internal/metrics"
	"github.com/kurochkinivan/dealer_notifier/internal/pipeline"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

// Run serves the dashboard and the HTTP API until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("whatsapp_base_url", a.cfg.WhatsApp.BaseURL),
		slog.String("whatsapp_api_version", a.cfg.WhatsApp.APIVersion),
		slog.Int("dispatch_concurrency", a.cfg.App.DispatchConcurrency),
		slog.Any("dedup_campaigns", a.cfg.App.DedupCampaigns),
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	engine, reporter, err := a.build(registry)
	if err != nil {
		return err
	}

	a.log.DebugContext(ctx, "report formats", slog.Any("formats", reporter.Formats()))

	server := v1.NewServer(a.cfg.HTTP, a.log, a.cfg.App.MaxUploadSize, engine, reporter, registry)

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}

type SendOptions struct {
	Campaign     string
	RosterPath   string
	DocumentsDir string
	Format       string
}

// Send runs a single batch from local files and writes the report to w.
func (a *App) Send(ctx context.Context, opts SendOptions, w io.Writer) error {
	engine, reporter, err := a.build(prometheus.NewRegistry())
	if err != nil {
		return err
	}

	if _, err := reporter.ContentType(opts.Format); err != nil {
		return err
	}

	batch, err := a.loadBatch(ctx, opts)
	if err != nil {
		return err
	}

	report, err := engine.Run(ctx, opts.Campaign, batch)
	if err != nil {
		return fmt.Errorf("batch rejected: %w", err)
	}

	return reporter.Render(w, opts.Format, report)
}

func (a *App) loadBatch(ctx context.Context, opts SendOptions) (*domain.Batch, error) {
	content, err := os.ReadFile(opts.RosterPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}

	batch := &domain.Batch{
		Roster: &domain.UploadedDocument{
			Filename: filepath.Base(opts.RosterPath),
			Content:  content,
		},
	}

	if opts.DocumentsDir == "" {
		return batch, nil
	}

	batch.Documents, err = pipeline.NewScanner(a.log, opts.DocumentsDir).Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan documents: %w", err)
	}

	return batch, nil
}

func (a *App) build(reg prometheus.Registerer) (*pipeline.Engine, *pipeline.Reporter, error) {
	campaigns, err := pipeline.NewCampaigns(a.cfg.App.DedupCampaigns)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to configure campaigns: %w", err)
	}

	m := metrics.New(reg)
	client := whatsapp.NewClient(a.cfg.WhatsApp, m)

	reporter := pipeline.NewReporter(a.log, map[string]pipeline.ReportGenerator{
		"json": report_generator.NewJSON(),
		"csv":  report_generator.NewCSV(),
		"pdf":  report_generator.NewPDF(),
		"html": report_generator.NewHTML(),
	})

	engine := pipeline.NewEngine(
		a.log,
		campaigns,
		pipeline.NewLoader(a.log),
		pipeline.NewValidator(a.log),
		pipeline.NewDispatcher(a.log, client, m, a.cfg.App.DispatchConcurrency),
		reporter,
		m,
	)

	return engine, reporter, nil
}

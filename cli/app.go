package cli

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Aashish23092/id-verification/client"
	"github.com/Aashish23092/id-verification/config"
	"github.com/Aashish23092/id-verification/logging"
	"github.com/Aashish23092/id-verification/metrics"
	"github.com/Aashish23092/id-verification/service"
)

// app is the wired object graph shared by every subcommand
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	chain    *client.Chain
	aadhaar  *service.AadhaarService
	pan      *service.PANService
}

func newApp(ctx context.Context, opts *rootOptions) (*app, error) {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}

	logger := logging.New(cfg.Logging)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	chain := client.NewFromConfig(ctx, cfg, logger, m)
	reader := service.NewDocumentReader(chain, service.NewPDFProcessor(), logger)

	return &app{
		cfg:      cfg,
		logger:   logger,
		registry: reg,
		chain:    chain,
		aadhaar:  service.NewAadhaarService(reader, logger, m),
		pan:      service.NewPANService(reader, logger, m),
	}, nil
}

func (a *app) Close() {
	if err := a.chain.Close(); err != nil {
		a.logger.Warn("failed to close ocr providers", "error", err)
	}
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	versioncollector "github.com/prometheus/client_golang/prometheus/collectors/version"
	"github.com/prometheus/common/version"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/hhvm-exporter/hhvm-exporter/internal/collector"
	"github.com/hhvm-exporter/hhvm-exporter/internal/config"
	"github.com/hhvm-exporter/hhvm-exporter/internal/logging"
	"github.com/hhvm-exporter/hhvm-exporter/internal/scraper"
	"github.com/hhvm-exporter/hhvm-exporter/internal/server"
)

const exporterName = "hhvm_exporter"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	app := kingpin.New(exporterName, "Prometheus exporter for HHVM admin server statistics.")
	var (
		configPath = app.Flag("config", "Optional YAML config file; flags override its values.").String()
		adminURL   = app.Flag("admin-url", "HHVM admin url (default "+config.DefaultAdminURL+").").PlaceHolder("URL").String()
		listen     = app.Flag("listen", "Listen on this address (default "+config.DefaultListenAddress+").").Short('l').PlaceHolder("ADDRESS").String()
		metrics    = app.Flag("web.telemetry-path", "Path under which to expose metrics (default "+config.DefaultMetricsPath+").").String()
		logFile    = app.Flag("log.file", "Write logs to this rotated file instead of stderr.").String()
		debug      = app.Flag("debug", "Enable debug logging.").Short('d').Bool()
	)
	app.Version(version.Print(exporterName))
	app.HelpFlag.Short('h')
	if _, err := app.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", exporterName, err)
		return 2
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", exporterName, err)
			return 1
		}
		cfg = loaded
	}
	overrides := config.Overrides{
		AdminURL:      *adminURL,
		ListenAddress: *listen,
		MetricsPath:   *metrics,
		LogFile:       *logFile,
		Debug:         *debug,
	}
	cfg.Apply(overrides)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", exporterName, err)
		return 1
	}

	logger, err := logging.New(logging.Options{Debug: cfg.Log.Debug, File: cfg.Log.File})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: open log file: %v\n", exporterName, err)
		return 1
	}
	defer logger.Close() //nolint:errcheck
	slog.SetDefault(logger.Logger)

	slog.Info("starting hhvm_exporter",
		"version", version.Info(),
		"build_context", version.BuildContext(),
		"admin_url", cfg.HHVM.AdminURL,
		"listen", cfg.Web.ListenAddress,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Only the log level follows the file; the target stays fixed.
	if *configPath != "" {
		go func() {
			err := config.Watch(ctx, *configPath, func(updated *config.Config) {
				updated.Apply(overrides)
				logger.SetDebug(updated.Log.Debug)
				if updated.HHVM.AdminURL != cfg.HHVM.AdminURL || updated.Web != cfg.Web {
					slog.Warn("config: admin url and web settings require a restart")
				}
			})
			if err != nil {
				slog.Error("config watcher stopped", "err", err)
			}
		}()
	}

	fetcher := scraper.New(scraper.Options{
		AdminURL:           cfg.HHVM.AdminURL,
		InsecureSkipVerify: cfg.HHVM.TLS.InsecureSkipVerify,
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collector.New(fetcher, logger.Logger),
		versioncollector.NewCollector(exporterName),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	handler := server.Router(reg, server.Options{
		MetricsPath: cfg.Web.MetricsPath,
		AdminURL:    cfg.HHVM.AdminURL,
		Logger:      logger.Logger,
	})
	if err := server.Run(ctx, cfg.Web.ListenAddress, handler); err != nil {
		slog.Error("exporter stopped", "err", err)
		return 1
	}

	slog.Info("hhvm_exporter shutting down")
	return 0
}

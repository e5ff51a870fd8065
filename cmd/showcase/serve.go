package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vango-dev/showcase/internal/config"
	"github.com/vango-dev/showcase/internal/errors"
	"github.com/vango-dev/showcase/pkg/middleware"
	"github.com/vango-dev/showcase/pkg/server"
)

// statsInterval is how often serve logs session counts.
const statsInterval = time.Minute

func serveCmd(opts *rootOptions) *cobra.Command {
	var (
		host        string
		port        int
		variant     string
		catalogPath string
		metrics     bool
		tracing     bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the showcase server",
		Long: `Start the HTTP server. Every browser tab gets its own session with
its own modal and toast state.

Examples:
  showcase serve
  showcase serve --port=8080 --variant=simple
  showcase serve --catalog=widgets.yaml --metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("host") {
				cfg.Server.Host = host
			}
			if flags.Changed("port") {
				cfg.Server.Port = port
			}
			if flags.Changed("variant") {
				cfg.Variant = variant
			}
			if flags.Changed("catalog") {
				cfg.Catalog = catalogPath
			}
			if flags.Changed("metrics") {
				cfg.Metrics.Enabled = metrics
			}
			if flags.Changed("tracing") {
				cfg.Tracing.Enabled = tracing
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runServe(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from config)")
	cmd.Flags().StringVar(&variant, "variant", "", "Widget variant: simple or rich")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Widget catalog file")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Expose Prometheus metrics on /metrics")
	cmd.Flags().BoolVar(&tracing, "tracing", false, "Record an OpenTelemetry span per action")

	return cmd
}

func runServe(cmd *cobra.Command, cfg *config.Config) error {
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	srv := server.New(cat, serverConfig(cfg, slog.Default()))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	success(out, "Serving %s", cfg.URL())
	info(out, "variant: %s", cfg.ViewVariant())
	if cfg.Metrics.Enabled {
		info(out, "metrics: %s%s", cfg.URL(), server.PathMetrics[1:])
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return srv.Run(ctx)
	})
	g.Go(func() error {
		logSessionStats(ctx, srv, statsInterval)
		return nil
	})

	if err := g.Wait(); err != nil {
		return errors.New("E200").WithDetail(cfg.Address()).Wrap(err)
	}
	return nil
}

// serverConfig maps the project config onto the server's settings and
// attaches the action middleware it enables.
func serverConfig(cfg *config.Config, logger *slog.Logger) *server.ServerConfig {
	sc := server.DefaultServerConfig()
	sc.Address = cfg.Address()
	sc.ShutdownTimeout = cfg.ShutdownTimeout()
	sc.SessionConfig.Variant = cfg.ViewVariant()
	sc.SessionConfig.ToastDelay = cfg.ToastDelay()
	sc.Stylesheet = cfg.Assets.Stylesheet
	sc.TailwindCDN = cfg.Assets.TailwindCDN
	sc.Favicon = cfg.Assets.Favicon
	sc.Description = cfg.Assets.Description
	sc.MetricsNamespace = cfg.Metrics.Namespace
	sc.Logger = logger

	if cfg.Tracing.Enabled {
		sc.Middleware = append(sc.Middleware,
			middleware.OpenTelemetry(middleware.WithTracerName(cfg.Tracing.TracerName)))
	}
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		sc.Registry = reg
		sc.Gatherer = reg
		sc.Middleware = append(sc.Middleware, middleware.Prometheus(
			middleware.WithRegistry(reg),
			middleware.WithNamespace(cfg.Metrics.Namespace),
		))
	}
	return sc
}

// logSessionStats logs session counts every interval until ctx is done.
func logSessionStats(ctx context.Context, srv *server.Server, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := srv.Sessions().Stats()
			srv.Logger().Info("sessions",
				"active", stats.Active,
				"peak", stats.Peak,
				"created", stats.TotalCreated,
				"closed", stats.TotalClosed)
		}
	}
}

package main

import (
	"context"
	"io"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/benz9527/xtree/observability"
	"github.com/benz9527/xtree/xlog"
)

func newLogger(cfg *config) xlog.XLogger {
	encoder := xlog.JSON
	if cfg.LogFormat == "text" {
		encoder = xlog.PlainText
	}
	return xlog.NewXLogger(
		xlog.WithXLoggerLevel(xlog.ParseLogLevel(cfg.LogLevel)),
		xlog.WithXLoggerEncoder(encoder),
		xlog.WithXLoggerWriter(xlog.StdErr),
	)
}

// The metrics provider is installed before the tree is built,
// so the tree stats instruments are bound to it.
func setupMetrics(lc fx.Lifecycle, cfg *config, logger xlog.XLogger) error {
	shutdown, err := observability.NewMetricsExporter(
		observability.MetricsExporterKind(cfg.Metrics),
		cfg.MetricsInterval,
	)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := shutdown(ctx); err != nil {
				logger.Error(err, "metrics shutdown failed")
				return err
			}
			return nil
		},
	})
	return nil
}

func newApp(cfg *config, out io.Writer, job func(r *runner) error) *fx.App {
	return fx.New(
		fx.Supply(cfg),
		fx.Provide(
			func() io.Writer { return out },
			newLogger,
			newTree,
			newRunner,
		),
		fx.WithLogger(func(logger xlog.XLogger) fxevent.Logger {
			return xlog.NewFxXLogger(logger)
		}),
		fx.Invoke(setupMetrics),
		fx.Invoke(func(lc fx.Lifecycle, logger xlog.XLogger, r *runner) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					return job(r)
				},
				OnStop: func(ctx context.Context) error {
					r.tree.Release()
					// Syncing the stderr may fail on terminals.
					_ = logger.Sync()
					return nil
				},
			})
		}),
	)
}

func runApp(ctx context.Context, cfg *config, out io.Writer, job func(r *runner) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	app := newApp(cfg, out, job)
	if err := app.Err(); err != nil {
		return err
	}
	startErr := app.Start(ctx)
	stopErr := app.Stop(ctx)
	if startErr != nil {
		return startErr
	}
	return stopErr
}

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/chynaenye/microinsurance-predictor/internal/application/usecase"
	"github.com/chynaenye/microinsurance-predictor/internal/domain/service"
	"github.com/chynaenye/microinsurance-predictor/internal/infrastructure/config"
	"github.com/chynaenye/microinsurance-predictor/internal/infrastructure/messaging"
	"github.com/chynaenye/microinsurance-predictor/internal/infrastructure/monitoring"
	"github.com/chynaenye/microinsurance-predictor/internal/presentation/web"
	"github.com/chynaenye/microinsurance-predictor/pkg/observability"
)

func cmdServe(version string) *cli.Command {
	var configPath string
	var addr string

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start the assessment HTTP server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				Sources:     cli.EnvVars("PREDICTOR_CONFIG"),
				Destination: &configPath,
			},
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "Listen address, overrides server.host and server.port",
				Sources:     cli.EnvVars("PREDICTOR_ADDR"),
				Destination: &addr,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			// Reconfigure logging from the resolved configuration.
			logger := observability.InitLogger(observability.LogConfig{
				Level:  cfg.Log.Level,
				Format: cfg.Log.Format,
			})

			logger.Info("starting dropout predictor",
				slog.String("version", version),
				slog.String("environment", cfg.Environment),
			)

			shutdownTracer, err := observability.InitTracer(ctx, observability.TracingConfig{
				Enabled:     cfg.Tracing.Enabled,
				ServiceName: cfg.Tracing.ServiceName,
				Endpoint:    cfg.Tracing.Endpoint,
				SampleRate:  cfg.Tracing.SampleRate,
				Insecure:    cfg.Tracing.Insecure,
			})
			if err != nil {
				logger.Warn("failed to initialize tracer, continuing without tracing",
					slog.String("error", err.Error()))
			} else {
				defer shutdownTracer(context.Background())
			}

			metricsHandler, err := observability.InitMetrics()
			if err != nil {
				return fmt.Errorf("failed to initialize metrics: %w", err)
			}
			metrics := monitoring.NewMetrics(prometheus.DefaultRegisterer)

			// Wire the evaluation pipeline.
			evaluate := usecase.NewEvaluateBeneficiary(
				service.NewRiskScorer(),
				service.NewExplainer(),
				service.NewRecommendationSelector(),
				messaging.NewLogPublisher(logger),
				logger,
			)

			router := web.NewRouter(
				cfg,
				logger,
				metrics,
				web.NewAssessHandler(evaluate, metrics),
				web.NewHealthHandler(version),
				metricsHandler,
			)

			address := cfg.HTTPAddress()
			if addr != "" {
				address = addr
			}

			server := &http.Server{
				Addr:         address,
				Handler:      router,
				ReadTimeout:  cfg.Server.ReadTimeout,
				WriteTimeout: cfg.Server.WriteTimeout,
				IdleTimeout:  cfg.Server.IdleTimeout,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("address", address))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- fmt.Errorf("HTTP server error: %w", err)
				}
			}()

			select {
			case <-ctx.Done():
				logger.Info("shutdown signal received")
			case err := <-errCh:
				return err
			}

			logger.Info("shutting down dropout predictor")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("HTTP server shutdown error: %w", err)
			}

			logger.Info("dropout predictor stopped")
			return nil
		},
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"outreach/internal/api"
	"outreach/internal/api/handler/v1handler"
	"outreach/internal/campaign"
	"outreach/internal/config"
	"outreach/internal/inbox"
	"outreach/internal/worker"
	"outreach/pkg/cdn/httpcdn"
	"outreach/pkg/controller"
	"outreach/pkg/llm"
	"outreach/pkg/llm/gemini"
	"outreach/pkg/logger"
	"outreach/pkg/metrics"
	"outreach/pkg/tracing"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func newLLM(ctx context.Context, cfg *config.Config) llm.Client {
	if cfg.LLM.APIKey == "" {
		logger.Warn(ctx, "llm api key is not set, description generation is disabled")

		return llm.Unavailable{}
	}

	client, err := gemini.New(ctx, gemini.Options{
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create llm client", zap.Error(err))
	}

	return client
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			shutdownTracing, err := tracing.Setup(ctx, cfg.Tracing.Endpoint, cfg.Tracing.ServiceName)
			if err != nil {
				logger.Fatal(ctx, "could not setup tracing", zap.Error(err))
			}

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			otel.SetMeterProvider(mp)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			inboxOptions := inbox.NewOptions(cfg)
			inboxOptions.MeterProvider = mp
			inboxSvc, err := inbox.New(strg, inboxOptions)
			if err != nil {
				logger.Fatal(ctx, "could not create inbox service", zap.Error(err))
			}

			files := httpcdn.New(&http.Client{Timeout: cfg.Contacts.DownloadTimeout}, cfg.Contacts.MaxFileBytes)
			campaignSvc := campaign.New(strg, files, newLLM(ctx, cfg), campaign.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool, inboxSvc, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Campaigns: campaignSvc,
					Inbox:     inboxSvc,
				},
				MeterProvider: mp,
				Health:        []controller.Pinger{strg},
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shutdown meter provider", zap.Error(err))
			}
			if err := shutdownTracing(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shutdown tracing", zap.Error(err))
			}
		},
	}

	return cmd
}

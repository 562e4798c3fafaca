package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"example.com/fitassess/internal/advice"
	"example.com/fitassess/internal/api"
	"example.com/fitassess/internal/assessment"
	"example.com/fitassess/internal/auth"
	"example.com/fitassess/internal/catalog"
	catalogpg "example.com/fitassess/internal/catalog/postgres"
	"example.com/fitassess/internal/config"
	"example.com/fitassess/internal/events"
	"example.com/fitassess/internal/logging"
	httptransport "example.com/fitassess/internal/transport/http"
)

func main() {
	cfg := config.Load()
	logger := logging.New(os.Stdout, logging.ParseLevel(cfg.LogLevel), "assessment-api")
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cat, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		logger.Error("catalog load failed", "error", err)
		os.Exit(1)
	}

	opts := []assessment.Option{
		assessment.WithLogger(logger),
		assessment.WithAdviceTimeout(cfg.AdviceTimeout),
		assessment.WithAdvisor(sessionAdvisor(cfg, logger)),
	}
	var publisher *events.KafkaPublisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.AssessmentTopic)
		opts = append(opts, assessment.WithPublisher(publisher))
		logger.Info("assessment events enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.AssessmentTopic)
	} else {
		logger.Info("KAFKA_BROKERS not set, assessment events disabled")
	}

	service := assessment.NewService(assessment.NewMemoryStore(), cat, opts...)
	handler := api.NewHandler(service, gatewayAdvisor(cfg), logger)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())

	exact, prefixes := api.PublicPaths()
	authMiddleware := auth.NewMiddleware(auth.Config{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer}, auth.PublicPaths(exact, prefixes))

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, httptransport.CORS(cfg.AllowedOrigin)(httptransport.RequestLogger(logger)(authMiddleware.Wrap(mux))))

	go sweepSessions(ctx, service, cfg, logger)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("assessment api listening", "address", cfg.HTTPAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown failed", "error", err)
	}
	service.Wait()
	if publisher != nil {
		if err := publisher.Close(); err != nil {
			logger.Warn("close publisher failed", "error", err)
		}
	}
}

func loadCatalog(ctx context.Context, cfg config.Config, logger *slog.Logger) (*catalog.Catalog, error) {
	if cfg.CatalogPostgresURL == "" {
		logger.Info("CATALOG_POSTGRES_URL not set, using built-in catalog")
		return catalog.Default(), nil
	}
	pool, err := pgxpool.New(ctx, cfg.CatalogPostgresURL)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	loadCtx, cancel := context.WithTimeout(ctx, cfg.HTTPTimeout)
	defer cancel()
	cat, err := catalogpg.NewLoader(pool).Load(loadCtx)
	if err != nil {
		return nil, err
	}
	logger.Info("catalog loaded from postgres", "exercises", len(cat.Exercises()), "products", len(cat.Products()))
	return cat, nil
}

func sessionAdvisor(cfg config.Config, logger *slog.Logger) advice.Advisor {
	switch {
	case cfg.CoachURL != "":
		logger.Info("safety brief via coach function", "url", cfg.CoachURL)
		return advice.NewHTTPAdvisor(cfg.CoachURL, cfg.CoachToken, cfg.AdviceTimeout)
	case cfg.AIGatewayKey != "":
		logger.Info("safety brief via AI gateway", "model", cfg.AIModel)
		return gatewayAdvisor(cfg)
	default:
		logger.Info("no coach configured, safety brief disabled")
		return advice.NoopAdvisor{}
	}
}

func gatewayAdvisor(cfg config.Config) advice.Advisor {
	if cfg.AIGatewayKey == "" {
		return advice.NoopAdvisor{}
	}
	return advice.NewGatewayAdvisor(advice.GatewayConfig{
		URL:     cfg.AIGatewayURL,
		APIKey:  cfg.AIGatewayKey,
		Model:   cfg.AIModel,
		Timeout: cfg.AdviceTimeout,
	})
}

func sweepSessions(ctx context.Context, service *assessment.Service, cfg config.Config, logger *slog.Logger) {
	ticker := time.NewTicker(cfg.SessionSweep)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := service.Sweep(ctx, cfg.SessionTTL)
			if err != nil {
				logger.Warn("session sweep failed", "error", err)
				continue
			}
			if removed > 0 {
				logger.Info("expired sessions removed", "count", removed)
			}
		}
	}
}

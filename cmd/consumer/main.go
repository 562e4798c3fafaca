package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/segmentio/kafka-go"

	"example.com/fitassess/internal/config"
	"example.com/fitassess/internal/consumer"
	"example.com/fitassess/internal/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.New(os.Stdout, logging.ParseLevel(cfg.LogLevel), "assessment-insights")

	if len(cfg.KafkaBrokers) == 0 {
		logger.Error("KAFKA_BROKERS is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metricsSrv := &http.Server{Addr: cfg.MetricsAddress, Handler: promhttp.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		logger.Info("insights consumer metrics listening", "address", cfg.MetricsAddress)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("metrics server error", "error", err)
		}
	}()

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.KafkaBrokers,
		GroupID:        cfg.ConsumerGroup,
		Topic:          cfg.AssessmentTopic,
		MinBytes:       1e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
	})
	opts := []consumer.Option{consumer.WithLogger(logger)}
	if cfg.DeadLetterTopic != "" {
		deadLetter := consumer.NewKafkaDeadLetter(cfg.KafkaBrokers, cfg.DeadLetterTopic)
		defer deadLetter.Close()
		opts = append(opts, consumer.WithDeadLetter(deadLetter))
	}
	proc := consumer.NewProcessor(reader, consumer.NewInsightsHandler(), opts...)

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer reader.Close()
		if err := proc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("consumer stopped with error", "topic", cfg.AssessmentTopic, "error", err)
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals
	logger.Info("insights consumer shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("metrics shutdown error", "error", err)
	}

	<-done
}

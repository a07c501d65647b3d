package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"qa-insights-go/internal/actionable"
	"qa-insights-go/internal/api"
	"qa-insights-go/internal/api/handler"
	"qa-insights-go/internal/cache"
	"qa-insights-go/internal/config"
	"qa-insights-go/internal/dataset"
	"qa-insights-go/internal/extractor"
	"qa-insights-go/internal/logger"
	"qa-insights-go/internal/processor"
	"qa-insights-go/internal/store"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New().WithError(err).Fatal("invalid configuration")
	}
	log := logger.NewWithOptions(logger.Options{
		Environment: cfg.Server.Environment,
		Level:       cfg.Server.LogLevel,
	})
	log.WithField("service", "qa-insights-go").
		WithField("campaign", cfg.Campaign).
		WithField("mock_llm", cfg.LLM.UseMock).
		Info("starting service")

	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("server terminated")
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, closeCache, err := openCache(ctx, cfg.Cache, log)
	if err != nil {
		return err
	}
	defer closeCache()

	llm := extractor.New(cfg.LLM, log)
	proc := processor.New(
		llm,
		cache.NewAnalysisCache(kv, cfg.Cache.TTL),
		log,
		processor.WithMasker(llm),
	)
	highlights := actionable.NewHighlighter(llm, kv, cfg.Cache.TTL, log)

	calls := store.New()
	if cfg.DatasetPath != "" {
		if err := seed(ctx, cfg, calls, proc, log); err != nil {
			return err
		}
	}

	h := handler.New(calls, proc, highlights, cfg.Campaign, log)
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      api.NewRouter(h, log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute, // batch analysis holds the request open
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		log.Info("shutdown signal received, draining connections")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}

// openCache connects to Redis when REDIS_URL is set and falls back to an
// in-process cache otherwise.
func openCache(ctx context.Context, cfg config.CacheConfig, log *logger.Logger) (cache.Cache, func(), error) {
	if cfg.RedisURL == "" {
		log.Info("REDIS_URL not set, using in-memory analysis cache")
		return cache.NewMemoryCache(), func() {}, nil
	}
	rc, err := cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("create redis cache: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rc.Ping(pingCtx); err != nil {
		_ = rc.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}
	log.Info("redis connected")
	return rc, func() { _ = rc.Close() }, nil
}

// seed loads DATASET_PATH into the store. Saved results are added as-is;
// spreadsheet transcripts go through the analysis pipeline first.
func seed(ctx context.Context, cfg *config.Config, calls *store.Store, proc *processor.Processor, log *logger.Logger) error {
	log = log.Component("seed")
	s, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	added := 0
	for _, item := range s.Results {
		if err := calls.Add(cfg.Campaign, item); err != nil {
			log.WithField("file", item.FileName).WithError(err).Warn("skipping saved result")
			continue
		}
		added++
	}

	if len(s.Transcripts) > 0 {
		uploads := make([]processor.Upload, len(s.Transcripts))
		for i, t := range s.Transcripts {
			uploads[i] = processor.Upload{FileName: t.FileName, Transcript: t.Text}
		}
		for i, res := range proc.ProcessBatch(ctx, cfg.Campaign, uploads) {
			if res.Item == nil {
				log.WithField("file", res.FileName).WithField("error", res.Error).Warn("transcript analysis failed")
				continue
			}
			item := *res.Item
			item.AudioURL = s.Transcripts[i].AudioURL
			if err := calls.Add(cfg.Campaign, item); err != nil {
				log.WithField("file", item.FileName).WithError(err).Warn("skipping analyzed transcript")
				continue
			}
			added++
		}
	}

	log.WithField("path", cfg.DatasetPath).WithField("calls", added).Info("dataset loaded")
	return nil
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tahleel-ai/scout/internal/config"
	"github.com/tahleel-ai/scout/internal/insights"
	"github.com/tahleel-ai/scout/internal/logger"
	"github.com/tahleel-ai/scout/internal/news"
	"github.com/tahleel-ai/scout/internal/report"
	"github.com/tahleel-ai/scout/internal/server"
)

func main() {
	_ = godotenv.Load()
	logger.Init()
	log := logger.Logger

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "err", err)
		os.Exit(1)
	}

	lists, err := news.LoadLists(cfg.KeywordsConfigPath)
	if err != nil {
		log.Warn("keywords config not loaded, using defaults", "path", cfg.KeywordsConfigPath, "err", err)
		lists = news.DefaultLists()
	}

	var providers []news.Provider
	if cfg.NewsAPIConfigured() {
		providers = append(providers, news.NewNewsAPIProvider(cfg.NewsAPIKey, cfg.NewsAPIBaseURL, cfg.NewsDomains, cfg.QueryTimeout))
	}
	if len(lists.Feeds) > 0 {
		providers = append(providers, news.NewRSSProvider(lists.Feeds))
	}
	if len(providers) == 0 {
		log.Warn("no news providers configured, analyses will use templated news")
	}

	aggregator := news.NewAggregator(providers, lists, cfg.NewsLanguage, cfg.QueryTimeout, log)

	var complete insights.CompletionFunc
	if cfg.GeminiConfigured() {
		gemini, err := insights.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Warn("gemini client init failed, analyses will use baseline insights", "err", err)
		} else {
			defer gemini.Close()
			complete = func(ctx context.Context, prompt string) (string, error) {
				aiCtx, cancel := context.WithTimeout(ctx, cfg.AITimeout)
				defer cancel()
				return gemini.Complete(aiCtx, prompt)
			}
		}
	} else {
		log.Warn("GEMINI_API_KEY not set, analyses will use baseline insights")
	}

	extractor := insights.NewExtractor(complete, insights.NewBudget(cfg.MaxGeminiRequests), log)
	composer := report.NewComposer(aggregator, extractor, cfg.NewsLimit, log)

	srv := server.New(composer, aggregator, server.Status{
		GeminiConfigured:  cfg.GeminiConfigured(),
		NewsAPIConfigured: cfg.NewsAPIConfigured(),
		FeedCount:         len(lists.Feeds),
	}, log)

	httpServer := &http.Server{
		Addr:              cfg.BindAddr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	go func() {
		log.Info("scouting service starting", "addr", cfg.BindAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "err", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "err", err)
	}
}

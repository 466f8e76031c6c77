package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/sandrikkk/quiz/internal/config"
	"github.com/sandrikkk/quiz/internal/explain"
	"github.com/sandrikkk/quiz/internal/httpapi"
	"github.com/sandrikkk/quiz/internal/quiz"
)

func main() {
	cfg := config.FromEnv()

	addr := flag.String("addr", cfg.Addr, "HTTP listen address")
	flag.Parse()

	store, cleanup, err := openStore(cfg)
	if err != nil {
		log.Fatalf("open quiz store: %v", err)
	}
	defer cleanup()

	explainService := explain.NewService(explain.Config{
		APIKey:  cfg.GoogleAPIKey,
		Enabled: cfg.EnableAIExplanations,
		Model:   cfg.GeminiModel,
		APIURL:  cfg.GeminiAPIURL,
	}, nil)
	if !explainService.Active() {
		log.Printf("AI explanations inactive (enabled=%t, key configured=%t), default explanations will be used",
			cfg.EnableAIExplanations, cfg.GoogleAPIKey != "")
	}

	service := quiz.NewService(store, explainService)
	api := httpapi.NewAPI(service, explainService)

	server := &http.Server{
		Addr:              *addr,
		Handler:           httpapi.NewRouter(api, cfg.CORSOrigins, cfg.StaticDir),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("quiz-service listening on %s (store=%s)", *addr, cfg.StoreDriver)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %v", err)
	}
}

func openStore(cfg config.Config) (quiz.Store, func(), error) {
	if cfg.StoreDriver != "sqlite" {
		return quiz.NewFileStore(cfg.QuizDataFile), func() {}, nil
	}

	store, err := quiz.NewSQLiteStore(cfg.SQLitePath)
	if err != nil {
		return nil, nil, err
	}

	// A fresh SQLite store is seeded from the bundled quiz file when one
	// is available.
	seed, err := quiz.NewFileStore(cfg.QuizDataFile).Load(context.Background())
	switch {
	case err == nil:
		if err := store.Seed(context.Background(), seed); err != nil {
			_ = store.Close()
			return nil, nil, err
		}
	case !errors.Is(err, quiz.ErrQuizNotFound):
		_ = store.Close()
		return nil, nil, err
	}

	return store, func() { _ = store.Close() }, nil
}

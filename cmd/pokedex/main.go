package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"pokedex/internal/httpx"
	"pokedex/internal/platform/pokeapi"
	"pokedex/internal/pokemon"
	"pokedex/internal/web"
)

func main() {
	loadEnvFiles()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	handler, err := newRouter(ctx, cfg)
	if err != nil {
		log.Fatalf("cannot build router: %v", err)
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.writeTimeout(),
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	log.Printf("Starting server on %s catalog=%s page_size=%d", cfg.Addr, cfg.BaseURL, cfg.PageSize)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
	log.Println("server stopped")
}

func newRouter(ctx context.Context, cfg config) (http.Handler, error) {
	client := pokeapi.NewClient(pokeapi.Options{
		BaseURL:    cfg.BaseURL,
		UserAgent:  cfg.UserAgent,
		Timeout:    cfg.Timeout,
		RPS:        cfg.RPS,
		MaxRetries: cfg.MaxRetries,
	})
	svc := pokemon.NewService(client, pokemon.Config{
		PageSize:         cfg.PageSize,
		FetchConcurrency: cfg.FetchConcurrency,
	})

	h, err := web.NewHandler(svc)
	if err != nil {
		return nil, err
	}

	rateLimit := httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)
	return httpx.Chain(h.Routes(),
		httpx.RequestIDMiddleware,
		httpx.RecoveryMiddleware,
		httpx.AccessLogMiddleware,
		httpx.SecurityHeadersMiddleware,
		rateLimit.Middleware,
	), nil
}

package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"privatemsg/assets"
	"privatemsg/config"
	"privatemsg/handlers"
	"privatemsg/pkg/logger"
	"privatemsg/pkg/template"
)

const staticURL = "/static"

func redisOptions(cfg config.RedisConfig) *redis.Options {
	addr := cfg.Addr()
	if addr == "" {
		return nil
	}
	return &redis.Options{
		Addr:     addr,
		Username: cfg.Username,
		Password: cfg.Password,
	}
}

func newMux(cfg *config.Config, renderer *template.Renderer, registry assets.Registry) *http.ServeMux {
	limiter := handlers.NewRateLimiter(cfg.Server.RateLimitPerMinute)
	cards := handlers.NewMessageCardHandler(renderer, registry, staticURL)

	mux := http.NewServeMux()
	mux.HandleFunc("/message-card", limiter.CardLimit.RateLimit(cards.RenderCard))
	mux.HandleFunc("/assets", cards.ListAssets)

	fs := http.FileServer(http.Dir(cfg.Server.StaticDir))
	mux.Handle(staticURL+"/", http.StripPrefix(staticURL+"/", fs))
	return mux
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("❌ Could not load config: %v", err)
	}
	if err := logger.Configure(cfg.Log.Level, cfg.Log.Format); err != nil {
		logger.Fatalf("❌ Could not configure logging: %v", err)
	}

	logger.Infof("🚀 Starting server initialization...")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := assets.Connect(ctx, redisOptions(cfg.Redis), cfg.Redis.Key)
	if closer, ok := registry.(io.Closer); ok {
		defer closer.Close()
	}

	renderer, err := template.NewRenderer(registry, template.Options{
		Module:      cfg.Template.ModulePath,
		OverrideDir: cfg.Template.TemplateDir,
	})
	if err != nil {
		logger.Fatalf("❌ Could not initialize templates: %v", err)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           newMux(cfg, renderer, registry),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warnf("Shutdown: %v", err)
		}
	}()

	logger.Infof("🌐 Server starting on port %s", cfg.Server.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("❌ Server stopped: %v", err)
	}
	logger.Infof("✅ Server stopped")
}

package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"privatemsg/assets"
	"privatemsg/config"
	"privatemsg/pkg/template"
)

func TestRedisOptions(t *testing.T) {
	if opts := redisOptions(config.RedisConfig{}); opts != nil {
		t.Errorf("expected nil options without a host, got %+v", opts)
	}

	opts := redisOptions(config.RedisConfig{Host: "cache", Port: "6380", Password: "pw"})
	if opts == nil || opts.Addr != "cache:6380" || opts.Password != "pw" {
		t.Errorf("unexpected options %+v", opts)
	}
}

func TestMuxServesCardAndStylesheet(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.RateLimitPerMinute = 100
	cfg.Server.StaticDir = "static"

	registry := assets.NewMemoryRegistry()
	renderer, err := template.NewRenderer(registry, template.Options{})
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	srv := httptest.NewServer(newMux(cfg, renderer, registry))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/message-card", "application/json", strings.NewReader(`{"message_body":"<p>Hi</p>"}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	paths, _ := registry.Paths(context.Background())
	if len(paths) != 1 {
		t.Fatalf("registered = %v", paths)
	}

	resp, err = http.Get(srv.URL + staticURL + "/" + paths[0])
	if err != nil {
		t.Fatalf("GET stylesheet: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("stylesheet status = %d", resp.StatusCode)
	}

	if _, err := os.Stat(filepath.Join(cfg.Server.StaticDir, filepath.FromSlash(paths[0]))); err != nil {
		t.Errorf("stylesheet missing on disk: %v", err)
	}
}

package assets

import (
	"context"
	"sync"
	"testing"

	apperrors "privatemsg/pkg/errors"
)

func TestStylesheetPath(t *testing.T) {
	tests := []struct {
		module string
		name   string
		want   string
	}{
		{"privatemsg", "privatemsg-view", "privatemsg/styles/privatemsg-view.css"},
		{"sites/all/modules/privatemsg/", "compact", "sites/all/modules/privatemsg/styles/compact.css"},
		{"", "privatemsg-view", "styles/privatemsg-view.css"},
	}

	for _, tt := range tests {
		if got := StylesheetPath(tt.module, tt.name); got != tt.want {
			t.Errorf("StylesheetPath(%q, %q) = %q, want %q", tt.module, tt.name, got, tt.want)
		}
	}
}

func TestMemoryRegistryIdempotent(t *testing.T) {
	ctx := context.Background()
	reg := NewMemoryRegistry()

	for i := 0; i < 5; i++ {
		if err := reg.Register(ctx, "privatemsg/styles/privatemsg-view.css"); err != nil {
			t.Fatalf("Register: %v", err)
		}
	}
	if err := reg.Register(ctx, "privatemsg/styles/compact.css"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	paths, _ := reg.Paths(ctx)
	want := []string{"privatemsg/styles/privatemsg-view.css", "privatemsg/styles/compact.css"}
	if len(paths) != len(want) {
		t.Fatalf("Paths() = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("Paths()[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestMemoryRegistryConcurrent(t *testing.T) {
	ctx := context.Background()
	reg := NewMemoryRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := reg.Register(ctx, "privatemsg/styles/privatemsg-view.css"); err != nil {
				t.Errorf("Register: %v", err)
			}
		}()
	}
	wg.Wait()

	if reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1", reg.Len())
	}
	if !reg.Has("privatemsg/styles/privatemsg-view.css") {
		t.Error("expected path to be registered")
	}
}

func TestMemoryRegistryRejectsEmptyPath(t *testing.T) {
	err := NewMemoryRegistry().Register(context.Background(), "  ")

	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		t.Fatalf("err = %v, want *AppError", err)
	}
	if appErr.Code != apperrors.ErrValidation {
		t.Errorf("code = %s, want %s", appErr.Code, apperrors.ErrValidation)
	}
}

func TestMemoryRegistryCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reg := NewMemoryRegistry()
	if err := reg.Register(ctx, "a.css"); err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if reg.Len() != 0 {
		t.Errorf("Len() = %d, want 0", reg.Len())
	}
}

func TestStylesheetLinks(t *testing.T) {
	links, err := StylesheetLinks([]string{
		"privatemsg/styles/privatemsg-view.css",
		"privatemsg/styles/privatemsg-view.css",
		"/privatemsg/styles/compact.css",
	}, "/static/")
	if err != nil {
		t.Fatalf("StylesheetLinks: %v", err)
	}

	want := `<link rel="stylesheet" href="/static/privatemsg/styles/privatemsg-view.css">
<link rel="stylesheet" href="/static/privatemsg/styles/compact.css">
`
	if string(links) != want {
		t.Errorf("StylesheetLinks() =\n%s\nwant\n%s", links, want)
	}
}

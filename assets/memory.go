package assets

import (
	"context"
	"sync"
)

// MemoryRegistry is a process-local Registry.
type MemoryRegistry struct {
	mu    sync.RWMutex
	index map[string]struct{}
	paths []string
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		index: make(map[string]struct{}),
	}
}

func (r *MemoryRegistry) Register(ctx context.Context, p string) error {
	if err := validatePath(p); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[p]; exists {
		return nil
	}
	r.index[p] = struct{}{}
	r.paths = append(r.paths, p)
	log.WithField("path", p).Debug("🎨 Stylesheet registered")
	return nil
}

func (r *MemoryRegistry) Paths(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.paths))
	copy(out, r.paths)
	return out, nil
}

// Has reports whether p has been registered.
func (r *MemoryRegistry) Has(p string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.index[p]
	return ok
}

func (r *MemoryRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.paths)
}

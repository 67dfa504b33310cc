package usecase

import "sync"

// ExportGuard is a per-key busy flag. TryAcquire never blocks.
type ExportGuard struct {
	mu   sync.Mutex
	busy map[string]struct{}
}

func NewExportGuard() *ExportGuard {
	return &ExportGuard{busy: make(map[string]struct{})}
}

// TryAcquire marks key busy and reports whether it was free.
func (g *ExportGuard) TryAcquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.busy[key]; ok {
		return false
	}
	g.busy[key] = struct{}{}
	return true
}

func (g *ExportGuard) Release(key string) {
	g.mu.Lock()
	delete(g.busy, key)
	g.mu.Unlock()
}

func (g *ExportGuard) Busy(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.busy[key]
	return ok
}

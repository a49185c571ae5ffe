package sequence

import (
	"context"
	"sync"
)

// Generator hands out strictly increasing integer ids starting at 1. Ids are
// never reused, even when the record they identified is gone.
type Generator struct {
	mu   sync.Mutex
	next int
}

func New() *Generator {
	//nolint:exhaustruct
	return &Generator{next: 1}
}

func (g *Generator) NextID(_ context.Context) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.next
	g.next++

	return id, nil
}

// File: names.go
// Role: Label pool for auto-named vertices.
// Determinism:
//   - Take() hands out labels in the fixed order of DefaultLabels.
// Concurrency:
//   - NamePool is safe for concurrent use; it may be shared by several graphs.

package core

import (
	"slices"
	"strings"
	"sync"
)

// DefaultLabels is the fixed order in which single-letter labels are handed out.
const DefaultLabels = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NamePool is an explicit, injectable pool of vertex labels.
//
// A label handed out by Take, or claimed by an explicit name, never comes
// back; labels are therefore unique among all vertices built from one pool.
type NamePool struct {
	mu   sync.Mutex
	free []string
}

// NewNamePool returns a pool holding DefaultLabels in order.
func NewNamePool() *NamePool {
	return NewNamePoolFrom(strings.Split(DefaultLabels, ""))
}

// NewNamePoolFrom returns a pool holding labels in the given order.
// Empty and repeated labels are dropped.
func NewNamePoolFrom(labels []string) *NamePool {
	free := make([]string, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if l == "" {
			continue
		}
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		free = append(free, l)
	}

	return &NamePool{free: free}
}

// Take removes and returns the next free label.
func (p *NamePool) Take() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.free) == 0 {
		return "", ErrNamePoolExhausted
	}
	label := p.free[0]
	p.free = p.free[1:]

	return label, nil
}

// Claim removes name from the pool if it is still free and reports whether it was.
func (p *NamePool) Claim(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := slices.Index(p.free, name)
	if i < 0 {
		return false
	}
	p.free = slices.Delete(p.free, i, i+1)

	return true
}

// Remaining returns a copy of the free labels in hand-out order.
func (p *NamePool) Remaining() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return slices.Clone(p.free)
}

// NewVertex builds a detached vertex.
//
// An empty name takes the next label from pool; an explicit name is used
// as-is (surrounding whitespace trimmed) and removed from pool when it is
// one of its entries. A nil pool is only valid with an explicit name.
func NewVertex(pool *NamePool, name string) (*Vertex, error) {
	if name == "" {
		if pool == nil {
			return nil, ErrNamePoolExhausted
		}
		label, err := pool.Take()
		if err != nil {
			return nil, err
		}

		return &Vertex{label: label}, nil
	}

	label := strings.TrimSpace(name)
	if label == "" {
		return nil, ErrEmptyLabel
	}
	if pool != nil {
		pool.Claim(label)
	}

	return &Vertex{label: label}, nil
}

// Package debounce filters contact bounce from mechanical buttons.
// An edge is accepted only if enough time has passed since the last
// accepted edge.
package debounce

import (
	"sync"
	"time"
)

// Threshold is the minimum quiet interval between two accepted edges.
const Threshold = 200 * time.Millisecond

// Gate accepts at most one edge per Threshold.
// The zero value is ready to use and accepts the first edge.
type Gate struct {
	mu        sync.Mutex
	last      time.Time     // Timestamp of the last accepted edge. Zero if none accepted yet.
	threshold time.Duration // Minimum interval between accepted edges. Zero means Threshold.
}

// NewGate returns a Gate with a custom interval.
func NewGate(threshold time.Duration) *Gate {
	return &Gate{threshold: threshold}
}

// Accept reports whether an edge seen at now should be acted upon. When it
// returns true the gate remembers now as the last accepted edge; when it
// returns false the gate is left unchanged.
func (g *Gate) Accept(now time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	threshold := g.threshold
	if threshold <= 0 {
		threshold = Threshold
	}
	if !g.last.IsZero() && now.Sub(g.last) < threshold {
		return false
	}
	g.last = now
	return true
}

// Last returns the timestamp of the last accepted edge.
func (g *Gate) Last() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.last
}

// Group debounces several buttons. By default every key has its own gate,
// so pressing one button does not suppress another. With Shared set, all
// keys go through a single gate.
type Group struct {
	Shared    bool
	Threshold time.Duration

	mu    sync.Mutex
	gates map[int]*Gate
}

// Accept reports whether the edge of button key seen at now is accepted.
func (g *Group) Accept(key int, now time.Time) bool {
	return g.gate(key).Accept(now)
}

func (g *Group) gate(key int) *Gate {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Shared {
		key = 0
	}
	if g.gates == nil {
		g.gates = make(map[int]*Gate)
	}
	gate, ok := g.gates[key]
	if !ok {
		gate = NewGate(g.Threshold)
		g.gates[key] = gate
	}
	return gate
}

package engine

import (
	"encoding/json"
	"fmt"

	"github.com/graceworks/steeple/internal/entropy"
	"github.com/graceworks/steeple/internal/policy"
)

// Snapshot serializes the full game state. The random source is not part
// of the snapshot; a restored game continues from a fresh stream.
func (g *Game) Snapshot() ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	data, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("snapshot game state: %w", err)
	}
	return data, nil
}

// Restore reconstructs a game from a snapshot and wires it to the given
// random source.
func Restore(data []byte, rng *entropy.Rand) (*Game, error) {
	var g Game
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("restore game state: %w", err)
	}
	if g.Week < 1 {
		return nil, fmt.Errorf("restore game state: week %d out of range", g.Week)
	}
	if g.Policies == nil {
		g.Policies = policy.Defaults()
	}
	g.attach(rng)
	return &g, nil
}

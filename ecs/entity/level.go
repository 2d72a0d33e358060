package entity

import (
	"fmt"

	"github.com/milk9111/miniplatformer/ecs"
	"github.com/milk9111/miniplatformer/levels"
	"github.com/milk9111/miniplatformer/prefabs"
)

// SpawnLevel populates an empty world: platforms, the score counter, the
// frame clock and every resettable actor.
func SpawnLevel(w *ecs.World, lvl *levels.Level, tuning *prefabs.Tuning) error {
	if err := lvl.Validate(); err != nil {
		return err
	}
	if err := tuning.Validate(); err != nil {
		return err
	}
	for i, r := range lvl.Platforms {
		if _, err := NewPlatform(w, r); err != nil {
			return fmt.Errorf("level %s: platform %d: %w", lvl.Name, i, err)
		}
	}
	if _, err := NewScore(w); err != nil {
		return fmt.Errorf("level %s: %w", lvl.Name, err)
	}
	if _, err := NewClock(w); err != nil {
		return fmt.Errorf("level %s: %w", lvl.Name, err)
	}
	return SpawnActors(w, lvl, tuning)
}

// SpawnActors creates the player, coins, items and enemies from the level's
// spawn tables, in table order.
func SpawnActors(w *ecs.World, lvl *levels.Level, tuning *prefabs.Tuning) error {
	if _, err := NewPlayer(w, lvl.Player); err != nil {
		return fmt.Errorf("level %s: %w", lvl.Name, err)
	}
	for i, r := range lvl.Coins {
		if _, err := NewCoin(w, r); err != nil {
			return fmt.Errorf("level %s: coin %d: %w", lvl.Name, i, err)
		}
	}
	for i, it := range lvl.Items {
		if _, err := NewItem(w, it); err != nil {
			return fmt.Errorf("level %s: item %d: %w", lvl.Name, i, err)
		}
	}
	for i, en := range lvl.Enemies {
		if _, err := NewEnemy(w, en, tuning); err != nil {
			return fmt.Errorf("level %s: enemy %d: %w", lvl.Name, i, err)
		}
	}
	return nil
}

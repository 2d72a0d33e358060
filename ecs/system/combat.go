package system

import (
	"log"

	"github.com/milk9111/miniplatformer/ecs"
	"github.com/milk9111/miniplatformer/ecs/component"
	"github.com/milk9111/miniplatformer/prefabs"
)

// EnemyContactSystem resolves player/enemy overlaps in enemy creation
// order. For each touching enemy, first match wins:
//
//   - invincible: the enemy dies and the player bounces
//   - falling onto its top within the stomp threshold: the enemy dies and
//     the player bounces
//   - holding fire or ice: the power is used up and the enemy survives
//   - otherwise, unless the touch grace timer is running, the player dies
type EnemyContactSystem struct {
	tuning *prefabs.Tuning
}

func NewEnemyContactSystem(tuning *prefabs.Tuning) *EnemyContactSystem {
	return &EnemyContactSystem{tuning: tuning}
}

func (s *EnemyContactSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pr, ok := findPlayer(w)
	if !ok {
		return
	}
	combat := s.tuning.Combat

	var doomed []ecs.Entity
	for _, en := range ecs.Query(w, component.EnemyComponent) {
		er, ok := entityBounds(w, en)
		if !ok {
			continue
		}
		body := pr.bounds()
		if !body.Intersects(er) {
			continue
		}

		switch {
		case pr.power.Kind == component.PowerInvincible:
			doomed = append(doomed, en)
			pr.velocity.Y = -combat.BounceVelocity
			push(w, ecs.EventEnemyTrampled, en, nil)
		case pr.velocity.Y > 0 && body.Bottom()-er.Top() < combat.StompThreshold:
			doomed = append(doomed, en)
			pr.velocity.Y = -combat.BounceVelocity
			push(w, ecs.EventEnemyStomped, en, nil)
		case pr.player.CanKillOnTouch:
			kind := pr.power.Kind
			pr.power.Clear(pr.player)
			pr.inv.Seconds = combat.TouchGraceSeconds
			push(w, ecs.EventPowerConsumed, pr.entity, kind)
		case pr.inv.Active():
			// grace period after a power was used up
		default:
			killPlayer(w, pr.entity, component.DeathReasonEnemy)
		}
	}
	ecs.DestroyAll(w, doomed)
}

// killPlayer marks e dead for this frame. Later causes on the same frame are
// ignored.
func killPlayer(w *ecs.World, e ecs.Entity, reason string) {
	if ecs.Has(w, e, component.DeathRequestComponent) {
		return
	}
	if err := ecs.Add(w, e, component.DeathRequestComponent, &component.DeathRequest{Reason: reason}); err != nil {
		log.Printf("combat: kill entity=%d: %v", e, err)
	}
}

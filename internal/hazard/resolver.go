// Package hazard resolves trap triggers for entities that step on them.
package hazard

import (
	"fmt"

	"github.com/samdwyer/ascendant/internal/gamedata"
	"github.com/samdwyer/ascendant/internal/world"
)

// Victim is the interface for any entity that can set off a trap.
type Victim interface {
	// Identity
	GetName() string
	IsAlive() bool

	// Mutations
	TakeDamage(amount int) int            // Returns actual damage taken
	ApplyStatus(effect string, turns int) // Applies a named status effect
}

// TriggerResult contains the outcome of a trap going off.
type TriggerResult struct {
	TrapID        string
	Damage        int         // Actual damage dealt
	StatusApplied string      // Status effect applied, if any
	AlertRadius   int         // For alarm traps: how far monsters are alerted
	AlertOrigin   world.Point // Where the alarm sounded
	Message       string      // Human-readable description
}

// Resolver applies trap effects. Triggering is one-shot: a trap that has
// gone off is marked triggered and never fires again.
type Resolver struct {
	traps *gamedata.TrapRegistry
}

// NewResolver creates a resolver backed by the given trap registry.
func NewResolver(traps *gamedata.TrapRegistry) *Resolver {
	return &Resolver{traps: traps}
}

// Trigger fires the trap on the given tile against the victim. It returns
// nil if the tile holds no trap or the trap has already been triggered.
func (r *Resolver) Trigger(tile *world.Tile, victim Victim) *TriggerResult {
	if tile == nil || tile.Kind != world.KindTrap || tile.Trap == nil {
		return nil
	}
	if tile.Trap.Triggered {
		return nil
	}
	tile.Trap.Triggered = true

	def := r.traps.GetByID(tile.Trap.DefID)
	if def == nil {
		// Unknown trap definition; disarm without effect.
		return &TriggerResult{
			TrapID:  tile.Trap.DefID,
			Message: victim.GetName() + " hears a faint click, but nothing happens.",
		}
	}

	result := &TriggerResult{TrapID: def.ID}

	if tile.Trap.Damage > 0 {
		result.Damage = victim.TakeDamage(tile.Trap.Damage)
	}

	if def.StatusEffect != "" {
		victim.ApplyStatus(def.StatusEffect, def.StatusDuration)
		result.StatusApplied = def.StatusEffect
	}

	if def.AlertRadius > 0 {
		result.AlertRadius = def.AlertRadius
		result.AlertOrigin = world.Point{X: tile.X, Y: tile.Y}
	}

	result.Message = describe(def, victim, result)
	return result
}

// describe builds the log line for a trigger.
func describe(def *gamedata.TrapDef, victim Victim, result *TriggerResult) string {
	switch {
	case result.AlertRadius > 0:
		return fmt.Sprintf("%s sets off %s! Something stirs in the dark.", victim.GetName(), def.Name)
	case result.StatusApplied != "":
		return fmt.Sprintf("%s stumbles into %s for %d damage and is %s!",
			victim.GetName(), def.Name, result.Damage, result.StatusApplied)
	default:
		return fmt.Sprintf("%s stumbles into %s for %d damage!", victim.GetName(), def.Name, result.Damage)
	}
}

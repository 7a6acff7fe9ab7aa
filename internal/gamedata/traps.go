package gamedata

import (
	"errors"
	"math/rand"
)

// TrapDef defines a trap type loaded from JSON.
type TrapDef struct {
	ID             string `json:"id"`                       // Unique identifier (e.g., "spike")
	Name           string `json:"name"`                     // Display name (e.g., "Spike Trap")
	Glyph          string `json:"glyph"`                    // Single character shown once revealed
	Color          string `json:"color"`                    // Hex color code (e.g., "#C0C0C0")
	BaseDamage     int    `json:"baseDamage"`               // Damage before depth scaling
	StatusEffect   string `json:"statusEffect,omitempty"`   // Status applied on trigger (e.g., "poisoned")
	StatusDuration int    `json:"statusDuration,omitempty"` // Turns the status lasts
	AlertRadius    int    `json:"alertRadius,omitempty"`    // For alarm traps: monster alert range
	SpawnWeight    int    `json:"spawnWeight"`              // Relative placement frequency
}

// ScaledDamage returns the trap's damage on the given floor depth.
// Damage ramps by one point per two depths.
func (d *TrapDef) ScaledDamage(depth int) int {
	if depth < 1 {
		depth = 1
	}
	return d.BaseDamage + (depth-1)/2
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *TrapDef) GlyphRune() rune {
	if len(d.Glyph) == 0 {
		return '^'
	}
	return rune(d.Glyph[0])
}

// TrapsFile represents the structure of traps.json.
type TrapsFile struct {
	Traps []TrapDef `json:"traps"`
}

// LoadTraps loads trap definitions from the embedded traps.json file.
func LoadTraps() ([]TrapDef, error) {
	file, err := Load[TrapsFile]("traps.json")
	if err != nil {
		return nil, err
	}
	return file.Traps, nil
}

// TrapRegistry holds loaded trap definitions and provides placement utilities.
type TrapRegistry struct {
	traps       []TrapDef
	totalWeight int
}

// NewTrapRegistry creates a registry from loaded trap definitions.
func NewTrapRegistry(traps []TrapDef) *TrapRegistry {
	totalWeight := 0
	for _, t := range traps {
		totalWeight += t.SpawnWeight
	}
	return &TrapRegistry{
		traps:       traps,
		totalWeight: totalWeight,
	}
}

// LoadTrapRegistry loads and creates a registry from the embedded traps.json.
func LoadTrapRegistry() (*TrapRegistry, error) {
	traps, err := LoadTraps()
	if err != nil {
		return nil, err
	}
	if len(traps) == 0 {
		return nil, errors.New("no traps loaded from traps.json")
	}
	return NewTrapRegistry(traps), nil
}

// MustLoadTrapRegistry loads a registry, panicking on error.
func MustLoadTrapRegistry() *TrapRegistry {
	registry, err := LoadTrapRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// PickRandom selects a random trap definition using weighted probability.
// Traps with higher spawnWeight are more likely to be selected.
func (r *TrapRegistry) PickRandom(rng *rand.Rand) *TrapDef {
	if r.totalWeight <= 0 || len(r.traps) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.traps {
		cumulative += r.traps[i].SpawnWeight
		if roll < cumulative {
			return &r.traps[i]
		}
	}

	// Fallback (shouldn't happen)
	return &r.traps[0]
}

// GetByID returns the trap definition with the given ID, or nil if not found.
func (r *TrapRegistry) GetByID(id string) *TrapDef {
	for i := range r.traps {
		if r.traps[i].ID == id {
			return &r.traps[i]
		}
	}
	return nil
}

// All returns all trap definitions.
func (r *TrapRegistry) All() []TrapDef {
	return r.traps
}

// Count returns the number of trap types in the registry.
func (r *TrapRegistry) Count() int {
	return len(r.traps)
}

package gamedata

import (
	"errors"
	"math/rand"
)

// ChestTierDef defines a chest loot tier loaded from JSON. The tier only
// tags the placed chest; actual loot tables belong to the game layer.
type ChestTierDef struct {
	Tier           int    `json:"tier"`           // Tier number, 1 is the lowest
	Name           string `json:"name"`           // Display name (e.g., "Gilded Chest")
	Color          string `json:"color"`          // Hex color code
	BaseWeight     int    `json:"baseWeight"`     // Selection weight on depth 1
	WeightPerDepth int    `json:"weightPerDepth"` // Weight delta per depth beyond 1 (may be negative)
	MinDepth       int    `json:"minDepth"`       // Tier never appears above this depth
}

// WeightAtDepth returns the tier's selection weight on the given depth.
// Weights below zero clamp to zero so a tier can fade out entirely.
func (d *ChestTierDef) WeightAtDepth(depth int) int {
	if depth < d.MinDepth {
		return 0
	}
	w := d.BaseWeight + d.WeightPerDepth*(depth-1)
	if w < 0 {
		return 0
	}
	return w
}

// ChestTiersFile represents the structure of chests.json.
type ChestTiersFile struct {
	Tiers []ChestTierDef `json:"tiers"`
}

// LoadChestTiers loads chest tier definitions from the embedded chests.json file.
func LoadChestTiers() ([]ChestTierDef, error) {
	file, err := Load[ChestTiersFile]("chests.json")
	if err != nil {
		return nil, err
	}
	return file.Tiers, nil
}

// ChestTierRegistry holds chest tier definitions and picks tiers weighted
// by floor depth: deeper floors shift the distribution toward higher tiers.
type ChestTierRegistry struct {
	tiers []ChestTierDef
}

// NewChestTierRegistry creates a registry from loaded tier definitions.
func NewChestTierRegistry(tiers []ChestTierDef) *ChestTierRegistry {
	return &ChestTierRegistry{tiers: tiers}
}

// LoadChestTierRegistry loads and creates a registry from the embedded chests.json.
func LoadChestTierRegistry() (*ChestTierRegistry, error) {
	tiers, err := LoadChestTiers()
	if err != nil {
		return nil, err
	}
	if len(tiers) == 0 {
		return nil, errors.New("no chest tiers loaded from chests.json")
	}
	return NewChestTierRegistry(tiers), nil
}

// MustLoadChestTierRegistry loads a registry, panicking on error.
func MustLoadChestTierRegistry() *ChestTierRegistry {
	registry, err := LoadChestTierRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// TierForDepth selects a loot tier for a chest on the given floor depth
// using depth-adjusted weighted probability. Falls back to the lowest tier
// when every weight is zero.
func (r *ChestTierRegistry) TierForDepth(rng *rand.Rand, depth int) int {
	totalWeight := 0
	for i := range r.tiers {
		totalWeight += r.tiers[i].WeightAtDepth(depth)
	}
	if totalWeight <= 0 {
		return r.lowestTier()
	}

	roll := rng.Intn(totalWeight)

	cumulative := 0
	for i := range r.tiers {
		cumulative += r.tiers[i].WeightAtDepth(depth)
		if roll < cumulative {
			return r.tiers[i].Tier
		}
	}

	return r.lowestTier()
}

// GetByTier returns the tier definition with the given tier number, or nil.
func (r *ChestTierRegistry) GetByTier(tier int) *ChestTierDef {
	for i := range r.tiers {
		if r.tiers[i].Tier == tier {
			return &r.tiers[i]
		}
	}
	return nil
}

// All returns all tier definitions.
func (r *ChestTierRegistry) All() []ChestTierDef {
	return r.tiers
}

// Count returns the number of tiers in the registry.
func (r *ChestTierRegistry) Count() int {
	return len(r.tiers)
}

func (r *ChestTierRegistry) lowestTier() int {
	if len(r.tiers) == 0 {
		return 1
	}
	lowest := r.tiers[0].Tier
	for _, t := range r.tiers[1:] {
		if t.Tier < lowest {
			lowest = t.Tier
		}
	}
	return lowest
}

package gamedata

import (
	"math/rand"
	"testing"
)

func TestLoadTraps(t *testing.T) {
	traps, err := LoadTraps()
	if err != nil {
		t.Fatalf("Failed to load traps: %v", err)
	}

	if len(traps) != 3 {
		t.Errorf("Expected 3 traps, got %d", len(traps))
	}

	expectedIDs := map[string]bool{"spike": false, "poison": false, "alarm": false}
	for _, trap := range traps {
		if _, ok := expectedIDs[trap.ID]; ok {
			expectedIDs[trap.ID] = true
		}
	}
	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected trap %q not found", id)
		}
	}
}

func TestTrapRegistry(t *testing.T) {
	registry, err := LoadTrapRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 3 {
		t.Errorf("Expected 3 trap types, got %d", registry.Count())
	}

	spike := registry.GetByID("spike")
	if spike == nil {
		t.Fatal("Spike trap not found by ID")
	}
	if spike.Name != "Spike Trap" {
		t.Errorf("Expected name 'Spike Trap', got %q", spike.Name)
	}

	// Weighted picking is deterministic with the same seed
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	for i := 0; i < 10; i++ {
		p1 := registry.PickRandom(rng1).ID
		p2 := registry.PickRandom(rng2).ID
		if p1 != p2 {
			t.Errorf("Pick %d mismatch: %s != %s", i, p1, p2)
		}
	}
}

func TestTrapDamageScaling(t *testing.T) {
	def := TrapDef{ID: "spike", BaseDamage: 5}

	cases := []struct {
		depth int
		want  int
	}{
		{1, 5},
		{2, 5},
		{3, 6},
		{5, 7},
		{10, 9},
	}
	for _, c := range cases {
		if got := def.ScaledDamage(c.depth); got != c.want {
			t.Errorf("ScaledDamage(%d) = %d, want %d", c.depth, got, c.want)
		}
	}

	// Depths below 1 clamp rather than reduce damage below base.
	if got := def.ScaledDamage(0); got != 5 {
		t.Errorf("ScaledDamage(0) = %d, want 5", got)
	}
}

func TestChestTierRegistry(t *testing.T) {
	registry, err := LoadChestTierRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 3 {
		t.Errorf("Expected 3 tiers, got %d", registry.Count())
	}

	// Same seed and depth must draw the same tiers.
	rng1 := rand.New(rand.NewSource(9))
	rng2 := rand.New(rand.NewSource(9))
	for i := 0; i < 10; i++ {
		t1 := registry.TierForDepth(rng1, 4)
		t2 := registry.TierForDepth(rng2, 4)
		if t1 != t2 {
			t.Errorf("Draw %d mismatch: %d != %d", i, t1, t2)
		}
	}
}

func TestChestTierDepthGating(t *testing.T) {
	registry := MustLoadChestTierRegistry()

	tier3 := registry.GetByTier(3)
	if tier3 == nil {
		t.Fatal("tier 3 not found")
	}

	// Below its minimum depth the top tier never appears.
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		if registry.TierForDepth(rng, tier3.MinDepth-1) == 3 {
			t.Fatal("tier 3 drawn above its minimum depth")
		}
	}

	// Deep enough, the top tier eventually appears.
	found := false
	for i := 0; i < 500 && !found; i++ {
		found = registry.TierForDepth(rng, 20) == 3
	}
	if !found {
		t.Error("tier 3 never drawn at depth 20 in 500 draws")
	}
}

func TestChestTierWeightShift(t *testing.T) {
	def := ChestTierDef{Tier: 1, BaseWeight: 60, WeightPerDepth: -4, MinDepth: 1}

	if w := def.WeightAtDepth(1); w != 60 {
		t.Errorf("WeightAtDepth(1) = %d, want 60", w)
	}
	if w := def.WeightAtDepth(6); w != 40 {
		t.Errorf("WeightAtDepth(6) = %d, want 40", w)
	}
	// A fading tier clamps to zero instead of going negative.
	if w := def.WeightAtDepth(50); w != 0 {
		t.Errorf("WeightAtDepth(50) = %d, want 0", w)
	}

	gated := ChestTierDef{Tier: 3, BaseWeight: 0, WeightPerDepth: 4, MinDepth: 3}
	if w := gated.WeightAtDepth(2); w != 0 {
		t.Errorf("gated WeightAtDepth(2) = %d, want 0", w)
	}
	if w := gated.WeightAtDepth(4); w != 12 {
		t.Errorf("gated WeightAtDepth(4) = %d, want 12", w)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000FF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

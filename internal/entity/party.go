// Package entity provides game entities like the party.
package entity

// Status is an active timed effect on the party (e.g., poison from a trap).
type Status struct {
	Effect         string
	RemainingTurns int
}

// Party represents the player's band of climbers, displayed as a single
// symbol and moved as one unit.
type Party struct {
	X, Y   int  // Current position on the floor
	Symbol rune // Display symbol ('@')

	Name  string
	HP    int
	MaxHP int

	statuses []Status
}

// NewParty creates a new party at the given position.
func NewParty(x, y int) *Party {
	return &Party{
		X:      x,
		Y:      y,
		Symbol: '@',
		Name:   "The party",
		HP:     30,
		MaxHP:  30,
	}
}

// Move updates the party position by the given delta.
func (p *Party) Move(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// Position returns the current x, y coordinates.
func (p *Party) Position() (int, int) {
	return p.X, p.Y
}

// GetName returns the party's display name.
func (p *Party) GetName() string {
	return p.Name
}

// IsAlive returns true while the party has hit points left.
func (p *Party) IsAlive() bool {
	return p.HP > 0
}

// TakeDamage reduces HP, flooring at zero, and returns the damage dealt.
func (p *Party) TakeDamage(amount int) int {
	if amount < 0 {
		amount = 0
	}
	if amount > p.HP {
		amount = p.HP
	}
	p.HP -= amount
	return amount
}

// Heal restores HP up to the maximum and returns the amount healed.
func (p *Party) Heal(amount int) int {
	if amount < 0 {
		amount = 0
	}
	if p.HP+amount > p.MaxHP {
		amount = p.MaxHP - p.HP
	}
	p.HP += amount
	return amount
}

// ApplyStatus adds a timed status effect, refreshing the duration if the
// effect is already active.
func (p *Party) ApplyStatus(effect string, turns int) {
	for i := range p.statuses {
		if p.statuses[i].Effect == effect {
			if turns > p.statuses[i].RemainingTurns {
				p.statuses[i].RemainingTurns = turns
			}
			return
		}
	}
	p.statuses = append(p.statuses, Status{Effect: effect, RemainingTurns: turns})
}

// Statuses returns the active status effects.
func (p *Party) Statuses() []Status {
	out := make([]Status, len(p.statuses))
	copy(out, p.statuses)
	return out
}

// TickStatuses advances all status effects by one turn, dropping the ones
// that expire, and returns the effects that were active this turn.
func (p *Party) TickStatuses() []Status {
	active := make([]Status, 0, len(p.statuses))
	remaining := p.statuses[:0]
	for _, s := range p.statuses {
		active = append(active, s)
		s.RemainingTurns--
		if s.RemainingTurns > 0 {
			remaining = append(remaining, s)
		}
	}
	p.statuses = remaining
	return active
}

package actor

// Stats are the numeric attributes of an actor.
type Stats struct {
	Health    float64
	MaxHealth float64
	Shield    float64
	MaxShield float64
	Damage    float64
	Speed     float64
}

// DefaultStats returns the baseline stats used when nothing else is
// configured.
func DefaultStats() Stats {
	return Stats{
		Health:    100,
		MaxHealth: 100,
		Shield:    50,
		MaxShield: 50,
		Damage:    20,
		Speed:     5,
	}
}

// Restored returns s with health and shield refilled to their maximums.
func (s Stats) Restored() Stats {
	s.Health = s.MaxHealth
	s.Shield = s.MaxShield
	return s
}

// absorb applies amount to the shield first and the remainder to health,
// which never drops below zero.
func (s *Stats) absorb(amount float64) {
	remaining := amount
	if s.Shield > 0 {
		if s.Shield >= remaining {
			s.Shield -= remaining
			return
		}
		remaining -= s.Shield
		s.Shield = 0
	}

	s.Health -= min(remaining, s.Health)
}

// Package movement decides how AI-controlled actors move relative to their
// target. A Strategy only picks a direction; applying speed and time is up
// to the actor.
package movement

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/tircore/internal/model"
)

// Strategy returns the unit direction self should move in to reach a good
// position relative to target, or the zero vector to stop.
type Strategy interface {
	Steer(self, target model.Vector3) model.Vector3
}

// Melee closes in on the target until within StopDistance.
type Melee struct {
	StopDistance float64
}

// DefaultMelee returns the stock melee strategy.
func DefaultMelee() Melee {
	return Melee{StopDistance: 0.5}
}

func (m Melee) Steer(self, target model.Vector3) model.Vector3 {
	toTarget := target.Sub(self)
	if toTarget.Length() > m.StopDistance {
		return toTarget.Normalize()
	}
	return model.ZeroVector
}

// Ranged keeps DesiredDistance from the target, give or take Tolerance:
// it backs off when too close and approaches when too far.
type Ranged struct {
	DesiredDistance float64
	Tolerance       float64
}

// DefaultRanged returns the stock ranged strategy.
func DefaultRanged() Ranged {
	return Ranged{DesiredDistance: 5, Tolerance: 2}
}

func (r Ranged) Steer(self, target model.Vector3) model.Vector3 {
	toTarget := target.Sub(self)
	distance := toTarget.Length()

	switch {
	case distance < r.DesiredDistance-r.Tolerance:
		return toTarget.Normalize().Scale(-1)
	case distance > r.DesiredDistance+r.Tolerance:
		return toTarget.Normalize()
	default:
		return model.ZeroVector
	}
}

// Stationary never moves.
type Stationary struct{}

func (Stationary) Steer(_, _ model.Vector3) model.Vector3 {
	return model.ZeroVector
}

// ParseStrategy maps a config name to a stock strategy. The empty string
// selects Stationary.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "", "none", "stationary":
		return Stationary{}, nil
	case "melee":
		return DefaultMelee(), nil
	case "ranged":
		return DefaultRanged(), nil
	default:
		return nil, fmt.Errorf("unknown movement strategy %q: must be 'melee', 'ranged', or 'stationary'", name)
	}
}

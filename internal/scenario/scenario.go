// Package scenario loads and plays scripted encounters written in HCL.
//
// A scenario file is a sequence of blocks that run in the order they appear:
//
//	actor "hero" {
//	  team     = "Player"
//	  location = [0, 0, 0]
//	  health   = 100
//	  shield   = 50
//	}
//
//	actor "grunt" {
//	  team     = "Enemy"
//	  location = [3, 4, 0]
//	  movement = "melee"
//	}
//
//	damage {
//	  instigator = "hero"
//	  amount     = 20
//	  type       = "Energy"
//	  tags       = ["Weapon.Type.PlasmaBeam"]
//	}
//
//	advance {
//	  steps = 5
//	  delta = 0.1
//	}
//
// An actor block spawns an actor from the pool. A damage block without a
// target hits the instigator's nearest hostile actor. An advance block moves
// every actor with a movement strategy toward its nearest hostile.
package scenario

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/tircore/internal/actor"
	"github.com/specialistvlad/tircore/internal/enums"
	"github.com/specialistvlad/tircore/internal/model"
	"github.com/specialistvlad/tircore/internal/movement"
)

// DefaultDelta is the simulation step, in seconds, used when an advance
// block does not set one.
const DefaultDelta = 0.1

// StepKind identifies the block a Step came from.
type StepKind uint8

const (
	StepSpawn StepKind = iota
	StepDamage
	StepAdvance
)

func (k StepKind) String() string {
	switch k {
	case StepSpawn:
		return "spawn"
	case StepDamage:
		return "damage"
	case StepAdvance:
		return "advance"
	default:
		return "unknown"
	}
}

// Scenario is an ordered list of steps.
type Scenario struct {
	Steps []Step
}

// Step is one scenario block. Exactly one of Spawn, Damage, or Advance is
// set, matching Kind.
type Step struct {
	Kind  StepKind
	Range hcl.Range

	Spawn   *SpawnStep
	Damage  *DamageStep
	Advance *AdvanceStep
}

// SpawnStep brings an actor into play.
type SpawnStep struct {
	Config   actor.Config
	Strategy movement.Strategy
}

// DamageStep deals damage on behalf of an actor. An empty Target selects the
// instigator's nearest hostile.
type DamageStep struct {
	Instigator string
	Target     string
	Causer     string

	Amount   float64
	Type     enums.DamageType
	Weapon   *enums.WeaponType
	TagPaths []string

	// HitLocation defaults to the target's location.
	HitLocation *model.Vector3
}

// AdvanceStep runs the movement simulation.
type AdvanceStep struct {
	Steps int
	Delta float64
}

// Package capability declares the cross-cutting behaviors an actor can opt
// into: taking damage, being pooled, and being targeted.
//
// The package only defines contracts. Behavior lives entirely in the types
// that implement them.
package capability

import (
	"github.com/specialistvlad/tircore/internal/enums"
	"github.com/specialistvlad/tircore/internal/model"
)

//go:generate go tool mockgen -destination=./mocks/capability_mock.go -package=mocks . Damageable,Poolable,Targetable

// Damageable is implemented by actors that can take damage and report
// their health.
//
// By convention IsDead agrees with CurrentHealth() <= 0, but the interface
// does not enforce it. How non-positive amounts and a nil instigator are
// treated is up to the implementation.
type Damageable interface {
	TakeDamage(amount float64, instigator model.ActorID)
	CurrentHealth() float64
	IsDead() bool
}

// Poolable is implemented by actors managed by an object pool.
//
// OnAcquireFromPool replaces construction-time setup and OnReturnToPool
// replaces teardown. Calls must alternate; the pool owns that invariant.
type Poolable interface {
	OnAcquireFromPool()
	OnReturnToPool()
}

// Targetable is implemented by entities that AI or homing projectiles may
// select as a target.
//
// TargetLocation is only meaningful while IsValidTarget returns true, so
// callers must check validity first.
type Targetable interface {
	TargetLocation() model.Vector3
	IsValidTarget() bool
	Team() enums.Team
}

// NopPoolable provides no-op pool callbacks. Embed it and override the
// callbacks you need.
type NopPoolable struct{}

func (NopPoolable) OnAcquireFromPool() {}

func (NopPoolable) OnReturnToPool() {}

// HealthDepleted applies the conventional death check to d.
func HealthDepleted(d Damageable) bool {
	return d.CurrentHealth() <= 0
}

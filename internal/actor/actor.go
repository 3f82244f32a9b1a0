// Package actor provides Actor, the stock gameplay entity. It implements
// every capability interface: it takes damage through a shield-then-health
// model, it can live in an object pool, and it can be targeted.
//
// An Actor is owned by a single game loop and is not safe for concurrent use.
package actor

import (
	"github.com/specialistvlad/tircore/internal/capability"
	"github.com/specialistvlad/tircore/internal/enums"
	"github.com/specialistvlad/tircore/internal/model"
	"github.com/specialistvlad/tircore/internal/nativetags"
	"github.com/specialistvlad/tircore/internal/tag"
)

var (
	_ capability.Damageable = (*Actor)(nil)
	_ capability.Poolable   = (*Actor)(nil)
	_ capability.Targetable = (*Actor)(nil)
)

// Config describes an actor's identity and starting attributes.
type Config struct {
	ID       model.ActorID
	Name     string
	Team     enums.Team
	Location model.Vector3
	Stats    Stats
}

// Actor is a damageable, poolable, targetable gameplay entity.
type Actor struct {
	id       model.ActorID
	name     string
	team     enums.Team
	location model.Vector3

	base  Stats
	stats Stats
	state tag.Container

	tags           *nativetags.Tags
	inPlay         bool
	lastInstigator model.ActorID
}

// New creates an actor that is immediately in play.
func New(tags *nativetags.Tags, cfg Config) *Actor {
	a := NewPooled(tags)
	a.Configure(cfg)
	a.inPlay = true
	return a
}

// NewPooled creates a dormant actor for use as a pool factory. It becomes
// targetable once acquired from the pool.
func NewPooled(tags *nativetags.Tags) *Actor {
	return &Actor{
		tags:  tags,
		base:  DefaultStats(),
		stats: DefaultStats(),
	}
}

// Configure replaces the actor's identity and attributes. A missing ID is
// derived from the name.
func (a *Actor) Configure(cfg Config) {
	a.id = cfg.ID
	if a.id.IsNil() {
		a.id = model.ActorIDFromName(cfg.Name)
	}
	a.name = cfg.Name
	a.team = cfg.Team
	a.location = cfg.Location
	a.base = cfg.Stats
	a.stats = cfg.Stats
	a.state.Reset()
	a.lastInstigator = model.NilActorID
}

func (a *Actor) ID() model.ActorID       { return a.id }
func (a *Actor) Name() string            { return a.name }
func (a *Actor) Location() model.Vector3 { return a.location }
func (a *Actor) Stats() Stats            { return a.stats }
func (a *Actor) InPlay() bool            { return a.inPlay }

// LastInstigator is the instigator of the most recent damage that landed.
func (a *Actor) LastInstigator() model.ActorID { return a.lastInstigator }

// SetLocation teleports the actor.
func (a *Actor) SetLocation(v model.Vector3) {
	a.location = v
}

// State returns a copy of the actor's state tags.
func (a *Actor) State() tag.Container {
	return a.state.Clone()
}

// AddState and RemoveState toggle state tags such as State.Invulnerable.
func (a *Actor) AddState(t tag.Tag) {
	a.state.Add(t)
}

func (a *Actor) RemoveState(t tag.Tag) {
	a.state.Remove(t)
}

// HasState reports whether the actor carries t.
func (a *Actor) HasState(t tag.Tag) bool {
	return a.state.Has(t)
}

// TakeDamage drains the shield first and then health. Non-positive amounts
// are ignored, as is any damage to an invulnerable or already dead actor.
// Reaching zero health adds State.Dead.
func (a *Actor) TakeDamage(amount float64, instigator model.ActorID) {
	if amount <= 0 || a.IsDead() || a.state.Has(a.tags.StateInvulnerable) {
		return
	}

	a.stats.absorb(amount)
	a.lastInstigator = instigator

	if a.IsDead() {
		a.state.Add(a.tags.StateDead)
	}
}

func (a *Actor) CurrentHealth() float64 {
	return a.stats.Health
}

func (a *Actor) IsDead() bool {
	return a.stats.Health <= 0
}

// OnAcquireFromPool restores the configured stats and puts the actor in
// play.
func (a *Actor) OnAcquireFromPool() {
	a.stats = a.base.Restored()
	a.state.Reset()
	a.lastInstigator = model.NilActorID
	a.inPlay = true
}

// OnReturnToPool takes the actor out of play.
func (a *Actor) OnReturnToPool() {
	a.inPlay = false
	a.lastInstigator = model.NilActorID
}

func (a *Actor) TargetLocation() model.Vector3 {
	return a.location
}

// IsValidTarget reports whether the actor is in play and alive.
func (a *Actor) IsValidTarget() bool {
	return a.inPlay && !a.IsDead()
}

func (a *Actor) Team() enums.Team {
	return a.team
}

// Move displaces the actor along direction at its speed for dt seconds.
// Stunned or dead actors do not move. It reports whether the actor moved.
func (a *Actor) Move(direction model.Vector3, dt float64) bool {
	if direction.IsZero() || dt <= 0 || a.IsDead() || a.state.Has(a.tags.StateStunned) {
		return false
	}
	a.location = a.location.Add(direction.Normalize().Scale(a.stats.Speed * dt))
	return true
}

// Package combat applies DamageInfo payloads to Damageable targets and
// records what happened.
package combat

import (
	"context"

	"github.com/specialistvlad/tircore/internal/capability"
	"github.com/specialistvlad/tircore/internal/ctxlog"
	"github.com/specialistvlad/tircore/internal/enums"
	"github.com/specialistvlad/tircore/internal/model"
	"github.com/specialistvlad/tircore/internal/nativetags"
	"github.com/specialistvlad/tircore/internal/tag"
)

// StateHolder is implemented by targets that expose gameplay state tags.
// Targets without it are never considered invulnerable.
type StateHolder interface {
	HasState(t tag.Tag) bool
}

// Outcome is the result of one Apply call.
type Outcome struct {
	HealthBefore float64
	HealthAfter  float64
	// Applied is false when the hit was skipped before reaching the target.
	Applied bool
	// Killed is true only for the hit that took the target from alive to
	// dead.
	Killed bool
}

// Resolver routes damage to targets. Tags must come from an initialized
// native tag registry.
type Resolver struct {
	Tags *nativetags.Tags
}

// Apply delivers info to target. Hits with a non-positive amount, hits on
// dead targets, and hits on targets in State.Invulnerable are skipped.
func (r *Resolver) Apply(ctx context.Context, target capability.Damageable, info model.DamageInfo) Outcome {
	logger := ctxlog.FromContext(ctx).With(
		"component", "combat",
		"instigator", info.Instigator.String(),
		"causer", info.DamageCauser.String(),
		"damage_type", info.DamageType,
		"damage_tags", info.DamageTags.String(),
	)

	out := Outcome{
		HealthBefore: target.CurrentHealth(),
	}
	out.HealthAfter = out.HealthBefore

	switch {
	case info.Amount <= 0:
		logger.Debug("Damage skipped: non-positive amount.", "amount", info.Amount)
		return out
	case target.IsDead():
		logger.Info("Damage ineffective: target is already dead.")
		return out
	case r.invulnerable(target):
		logger.Info("Damage ineffective: target is invulnerable.")
		return out
	}

	target.TakeDamage(info.Amount, info.Instigator)

	out.Applied = true
	out.HealthAfter = target.CurrentHealth()
	out.Killed = target.IsDead()

	logger.Info("Damage resolved.",
		"amount", info.Amount,
		"hp_before", out.HealthBefore,
		"hp_after", out.HealthAfter,
		"target_died", out.Killed,
	)
	return out
}

func (r *Resolver) invulnerable(target capability.Damageable) bool {
	holder, ok := target.(StateHolder)
	if !ok || r.Tags == nil {
		return false
	}
	return holder.HasState(r.Tags.StateInvulnerable)
}

// CanDamage reports whether a member of attacker may hurt a member of
// target. Only hostile teams damage each other; environment damage is
// handled by the caller.
func CanDamage(attacker, target enums.Team) bool {
	return attacker.IsHostileTo(target)
}

package scenario

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/tircore/internal/actor"
	"github.com/specialistvlad/tircore/internal/combat"
	"github.com/specialistvlad/tircore/internal/ctxlog"
	"github.com/specialistvlad/tircore/internal/enums"
	"github.com/specialistvlad/tircore/internal/model"
	"github.com/specialistvlad/tircore/internal/movement"
	"github.com/specialistvlad/tircore/internal/nativetags"
	"github.com/specialistvlad/tircore/internal/pool"
	"github.com/specialistvlad/tircore/internal/tag"
	"github.com/specialistvlad/tircore/internal/targeting"
)

// ErrUnknownTag is returned when a damage block names a tag that is not
// registered with the tag authority.
var ErrUnknownTag = errors.New("unknown gameplay tag")

// TagLookup resolves registered tag paths. *tag.Manager implements it.
type TagLookup interface {
	Request(path string) (tag.Tag, bool)
}

// Deps are the collaborators a scenario run needs.
type Deps struct {
	// Tags must come from an initialized native tag registry.
	Tags   *nativetags.Tags
	Lookup TagLookup
	// Pool supplies actors. A fresh pool is created when nil.
	Pool *pool.Pool[*actor.Actor]
}

// record tracks a spawned actor by name. actor is nil once the actor has
// been returned to the pool; the pooled object may be reused by a later
// spawn, so retired names must not reach it.
type record struct {
	name     string
	id       model.ActorID
	team     enums.Team
	strategy movement.Strategy
	actor    *actor.Actor
	lastSeen model.Vector3
}

type runner struct {
	deps     Deps
	resolver combat.Resolver
	pool     *pool.Pool[*actor.Actor]

	records map[string]*record
	order   []*record
	report  *Report
}

// Run plays the scenario and returns what happened. It stops at the first
// step that cannot be executed.
func (s *Scenario) Run(ctx context.Context, deps Deps) (*Report, error) {
	if deps.Tags == nil || deps.Lookup == nil {
		return nil, errors.New("scenario: native tags and tag lookup are required")
	}

	r := &runner{
		deps:     deps,
		resolver: combat.Resolver{Tags: deps.Tags},
		pool:     deps.Pool,
		records:  map[string]*record{},
		report:   &Report{},
	}
	if r.pool == nil {
		tags := deps.Tags
		r.pool = pool.New(ctxlog.FromContext(ctx), func() *actor.Actor {
			return actor.NewPooled(tags)
		})
	}

	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		stepCtx := ctxlog.With(ctx, "step", i, "kind", step.Kind.String())
		var err error
		switch step.Kind {
		case StepSpawn:
			r.spawn(stepCtx, step.Spawn)
		case StepDamage:
			err = r.damage(stepCtx, step.Damage)
		case StepAdvance:
			r.advance(stepCtx, step.Advance)
		default:
			err = fmt.Errorf("unsupported step kind %d", step.Kind)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Range, err)
		}
	}

	r.report.Survivors = r.survivors()
	return r.report, nil
}

func (r *runner) spawn(ctx context.Context, s *SpawnStep) {
	a := r.pool.Acquire()
	a.Configure(s.Config)

	rec := &record{
		name:     s.Config.Name,
		id:       a.ID(),
		team:     a.Team(),
		strategy: s.Strategy,
		actor:    a,
		lastSeen: a.Location(),
	}
	r.records[rec.name] = rec
	r.order = append(r.order, rec)

	ctxlog.FromContext(ctx).Info("Actor spawned.", "actor", rec.name, "team", rec.team, "location", a.Location().String())
	r.report.add(Event{Kind: EventSpawn, Actor: rec.name, Location: a.Location()})
}

func (r *runner) damage(ctx context.Context, d *DamageStep) error {
	logger := ctxlog.FromContext(ctx)
	instigator := r.records[d.Instigator]
	if instigator == nil {
		return fmt.Errorf("instigator %q has not been spawned", d.Instigator)
	}

	var tags tag.Container
	for _, path := range d.TagPaths {
		t, ok := r.deps.Lookup.Request(path)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownTag, path)
		}
		tags.Add(t)
	}

	target, skip := r.resolveTarget(instigator, d.Target)
	if skip == "" && !combat.CanDamage(instigator.team, target.team) {
		skip = fmt.Sprintf("target %q is not hostile", target.name)
	}
	if skip != "" {
		logger.Info("Damage skipped.", "instigator", d.Instigator, "reason", skip)
		r.report.add(Event{Kind: EventSkip, Actor: d.Instigator, Target: d.Target, Detail: skip})
		return nil
	}

	info := model.DamageInfo{
		Amount:      d.Amount,
		Instigator:  instigator.id,
		DamageType:  d.Type,
		DamageTags:  tags,
		HitLocation: target.actor.TargetLocation(),
	}
	if d.Causer != "" {
		info.DamageCauser = r.records[d.Causer].id
	}
	if d.HitLocation != nil {
		info.HitLocation = *d.HitLocation
	}

	detail := ""
	if d.Weapon != nil {
		detail = d.Weapon.String() + " weapon"
	}

	outcome := r.resolver.Apply(ctx, target.actor, info)
	r.report.add(Event{
		Kind:     EventDamage,
		Actor:    instigator.name,
		Target:   target.name,
		Detail:   detail,
		Damage:   &info,
		Outcome:  &outcome,
		Location: info.HitLocation,
	})

	if outcome.Killed {
		if err := r.retire(target); err != nil {
			return err
		}
		logger.Info("Actor despawned.", "actor", target.name, "killed_by", instigator.name)
		r.report.add(Event{Kind: EventDespawn, Actor: target.name, Location: target.lastSeen})
	}
	return nil
}

// resolveTarget returns the target record, or a reason to skip the hit.
func (r *runner) resolveTarget(instigator *record, name string) (*record, string) {
	if name != "" {
		rec := r.records[name]
		if rec == nil {
			return nil, fmt.Sprintf("target %q has not been spawned", name)
		}
		if rec.actor == nil {
			return nil, fmt.Sprintf("target %q is no longer in play", name)
		}
		return rec, ""
	}

	origin := instigator.lastSeen
	if instigator.actor != nil {
		origin = instigator.actor.Location()
	}
	nearest, ok := targeting.SelectNearest(origin, instigator.team, r.live())
	if !ok {
		return nil, "no hostile target in play"
	}
	return r.records[nearest.Name()], ""
}

func (r *runner) advance(ctx context.Context, a *AdvanceStep) {
	moved := map[*record]bool{}
	for range a.Steps {
		for _, rec := range r.order {
			if rec.actor == nil {
				continue
			}
			if _, still := rec.strategy.(movement.Stationary); still {
				continue
			}
			target, ok := targeting.SelectNearest(rec.actor.Location(), rec.team, r.live())
			if !ok {
				continue
			}
			dir := rec.strategy.Steer(rec.actor.Location(), target.TargetLocation())
			if rec.actor.Move(dir, a.Delta) {
				rec.lastSeen = rec.actor.Location()
				moved[rec] = true
			}
		}
	}

	ctxlog.FromContext(ctx).Debug("Simulation advanced.", "steps", a.Steps, "delta", a.Delta, "moved", len(moved))
	for _, rec := range r.order {
		if moved[rec] {
			r.report.add(Event{Kind: EventMove, Actor: rec.name, Location: rec.lastSeen})
		}
	}
}

func (r *runner) retire(rec *record) error {
	rec.lastSeen = rec.actor.Location()
	if err := r.pool.Release(rec.actor); err != nil {
		return fmt.Errorf("failed to return %q to the pool: %w", rec.name, err)
	}
	rec.actor = nil
	return nil
}

// live returns the actors in play, in spawn order.
func (r *runner) live() []*actor.Actor {
	var out []*actor.Actor
	for _, rec := range r.order {
		if rec.actor != nil {
			out = append(out, rec.actor)
		}
	}
	return out
}

func (r *runner) survivors() []Survivor {
	var out []Survivor
	for _, rec := range r.order {
		if rec.actor == nil {
			continue
		}
		stats := rec.actor.Stats()
		out = append(out, Survivor{
			Name:      rec.name,
			Team:      rec.team,
			Health:    stats.Health,
			MaxHealth: stats.MaxHealth,
			Shield:    stats.Shield,
			Location:  rec.actor.Location(),
			State:     rec.actor.State().Strings(),
		})
	}
	return out
}

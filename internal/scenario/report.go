package scenario

import (
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/tircore/internal/combat"
	"github.com/specialistvlad/tircore/internal/enums"
	"github.com/specialistvlad/tircore/internal/model"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// EventKind names a reported event.
type EventKind string

const (
	EventSpawn   EventKind = "spawn"
	EventDamage  EventKind = "damage"
	EventDespawn EventKind = "despawn"
	EventMove    EventKind = "move"
	EventSkip    EventKind = "skip"
)

// Event is one thing that happened during a run.
type Event struct {
	Kind   EventKind
	Actor  string
	Target string
	Detail string

	Damage   *model.DamageInfo
	Outcome  *combat.Outcome
	Location model.Vector3
}

// Survivor is an actor still in play when the run ended.
type Survivor struct {
	Name      string
	Team      enums.Team
	Health    float64
	MaxHealth float64
	Shield    float64
	Location  model.Vector3
	State     []string
}

// Report is the result of a scenario run.
type Report struct {
	Events    []Event
	Survivors []Survivor
}

func (r *Report) add(e Event) {
	r.Events = append(r.Events, e)
}

// Count returns the number of events of the given kind.
func (r *Report) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Survivor returns the named survivor, if it is still in play.
func (r *Report) Survivor(name string) (Survivor, bool) {
	for _, s := range r.Survivors {
		if s.Name == name {
			return s, true
		}
	}
	return Survivor{}, false
}

// WriteText renders the report for humans, one event per line.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder
	for _, e := range r.Events {
		fmt.Fprintf(&b, "%-8s %s\n", e.Kind, e.describe())
	}

	b.WriteString("survivors:\n")
	if len(r.Survivors) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, s := range r.Survivors {
		fmt.Fprintf(&b, "  %s [%s] hp=%g/%g shield=%g at %s", s.Name, s.Team, s.Health, s.MaxHealth, s.Shield, s.Location)
		if len(s.State) > 0 {
			fmt.Fprintf(&b, " state={%s}", strings.Join(s.State, ", "))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (e Event) describe() string {
	switch e.Kind {
	case EventSpawn, EventMove, EventDespawn:
		return fmt.Sprintf("%s at %s", e.Actor, e.Location)
	case EventDamage:
		s := fmt.Sprintf("%s -> %s: %g %s", e.Actor, e.Target, e.Damage.Amount, e.Damage.DamageType)
		if !e.Damage.DamageTags.IsEmpty() {
			s += " " + e.Damage.DamageTags.String()
		}
		if e.Detail != "" {
			s += " (" + e.Detail + ")"
		}
		if !e.Outcome.Applied {
			return s + ", no effect"
		}
		s += fmt.Sprintf(", hp %g -> %g", e.Outcome.HealthBefore, e.Outcome.HealthAfter)
		if e.Outcome.Killed {
			s += ", killed"
		}
		return s
	default:
		return fmt.Sprintf("%s: %s", e.Actor, e.Detail)
	}
}

var outcomeCtyType = cty.Object(map[string]cty.Type{
	"health_before": cty.Number,
	"health_after":  cty.Number,
	"applied":       cty.Bool,
	"killed":        cty.Bool,
})

// CtyValue returns the report as a cty object, the form WriteJSON encodes.
func (r *Report) CtyValue() cty.Value {
	events := make([]cty.Value, 0, len(r.Events))
	for _, e := range r.Events {
		events = append(events, e.ctyValue())
	}
	survivors := make([]cty.Value, 0, len(r.Survivors))
	for _, s := range r.Survivors {
		survivors = append(survivors, s.ctyValue())
	}

	return cty.ObjectVal(map[string]cty.Value{
		"events":    cty.TupleVal(events),
		"survivors": cty.TupleVal(survivors),
	})
}

// WriteJSON renders the report as a single JSON document.
func (r *Report) WriteJSON(w io.Writer) error {
	val := r.CtyValue()
	buf, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	buf = append(buf, '\n')
	_, err = w.Write(buf)
	return err
}

func (e Event) ctyValue() cty.Value {
	damage := cty.NullVal(model.DamageInfoCtyType)
	if e.Damage != nil {
		damage = e.Damage.CtyValue()
	}
	outcome := cty.NullVal(outcomeCtyType)
	if e.Outcome != nil {
		outcome = cty.ObjectVal(map[string]cty.Value{
			"health_before": cty.NumberFloatVal(e.Outcome.HealthBefore),
			"health_after":  cty.NumberFloatVal(e.Outcome.HealthAfter),
			"applied":       cty.BoolVal(e.Outcome.Applied),
			"killed":        cty.BoolVal(e.Outcome.Killed),
		})
	}

	return cty.ObjectVal(map[string]cty.Value{
		"kind":     cty.StringVal(string(e.Kind)),
		"actor":    optionalString(e.Actor),
		"target":   optionalString(e.Target),
		"detail":   optionalString(e.Detail),
		"damage":   damage,
		"outcome":  outcome,
		"location": e.Location.CtyValue(),
	})
}

func (s Survivor) ctyValue() cty.Value {
	state := cty.ListValEmpty(cty.String)
	if len(s.State) > 0 {
		vals := make([]cty.Value, 0, len(s.State))
		for _, st := range s.State {
			vals = append(vals, cty.StringVal(st))
		}
		state = cty.ListVal(vals)
	}

	return cty.ObjectVal(map[string]cty.Value{
		"name":       cty.StringVal(s.Name),
		"team":       cty.StringVal(s.Team.String()),
		"health":     cty.NumberFloatVal(s.Health),
		"max_health": cty.NumberFloatVal(s.MaxHealth),
		"shield":     cty.NumberFloatVal(s.Shield),
		"location":   s.Location.CtyValue(),
		"state":      state,
	})
}

func optionalString(s string) cty.Value {
	if s == "" {
		return cty.NullVal(cty.String)
	}
	return cty.StringVal(s)
}

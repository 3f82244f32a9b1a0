package scenario

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/tircore/internal/actor"
	"github.com/specialistvlad/tircore/internal/ctxlog"
	"github.com/specialistvlad/tircore/internal/enums"
	"github.com/specialistvlad/tircore/internal/fsutil"
	"github.com/specialistvlad/tircore/internal/model"
	"github.com/specialistvlad/tircore/internal/movement"
)

// ErrNoScenarioFiles is returned when the given paths contain no .hcl files.
var ErrNoScenarioFiles = errors.New("no .hcl scenario files found")

// fileSchema lists the top-level blocks. Content keeps them in source order,
// which is the order they run in.
var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "actor", LabelNames: []string{"name"}},
		{Type: "damage"},
		{Type: "advance"},
	},
}

type hclActor struct {
	Team     string         `hcl:"team"`
	Location hcl.Expression `hcl:"location,attr"`
	Health   *float64       `hcl:"health,optional"`
	Shield   *float64       `hcl:"shield,optional"`
	Speed    *float64       `hcl:"speed,optional"`
	Damage   *float64       `hcl:"damage,optional"`
	Movement *string        `hcl:"movement,optional"`
}

type hclDamage struct {
	Instigator  string         `hcl:"instigator"`
	Target      *string        `hcl:"target,optional"`
	Causer      *string        `hcl:"causer,optional"`
	Amount      float64        `hcl:"amount"`
	Type        *string        `hcl:"type,optional"`
	Weapon      *string        `hcl:"weapon,optional"`
	Tags        []string       `hcl:"tags,optional"`
	HitLocation hcl.Expression `hcl:"hit_location,attr"`
}

type hclAdvance struct {
	Steps *int     `hcl:"steps,optional"`
	Delta *float64 `hcl:"delta,optional"`
}

// Load parses every .hcl file found under paths into one Scenario. Files are
// read in lexical order within each path, and paths in the order given.
func Load(ctx context.Context, paths ...string) (*Scenario, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, p := range paths {
		found, err := fsutil.FindFilesByExtension(p, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to find scenario files in %s: %w", p, err)
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %v", ErrNoScenarioFiles, paths)
	}

	parser := hclparse.NewParser()
	l := &loader{
		scenario: &Scenario{},
		declared: map[string]struct{}{},
	}
	for _, file := range files {
		logger.Debug("Loading scenario file.", "path", file)

		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse scenario file %s: %w", file, diags)
		}
		if diags := l.loadBody(hclFile.Body); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode scenario file %s: %w", file, diags)
		}
	}

	logger.Debug("Scenario loaded.", "files", len(files), "steps", len(l.scenario.Steps))
	return l.scenario, nil
}

// Parse decodes a single scenario from source. filename is used in
// diagnostics only.
func Parse(src []byte, filename string) (*Scenario, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", filename, diags)
	}

	l := &loader{
		scenario: &Scenario{},
		declared: map[string]struct{}{},
	}
	if diags := l.loadBody(hclFile.Body); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode scenario %s: %w", filename, diags)
	}
	return l.scenario, nil
}

// loader accumulates steps across files and tracks the declared actors so
// references can be checked at load time.
type loader struct {
	scenario *Scenario
	declared map[string]struct{}
}

func (l *loader) loadBody(body hcl.Body) hcl.Diagnostics {
	content, diags := body.Content(fileSchema)
	if diags.HasErrors() {
		return diags
	}

	for _, block := range content.Blocks {
		var step Step
		var blockDiags hcl.Diagnostics
		switch block.Type {
		case "actor":
			step, blockDiags = l.decodeActor(block)
		case "damage":
			step, blockDiags = l.decodeDamage(block)
		case "advance":
			step, blockDiags = decodeAdvance(block)
		}
		diags = append(diags, blockDiags...)
		if blockDiags.HasErrors() {
			continue
		}
		step.Range = block.DefRange
		l.scenario.Steps = append(l.scenario.Steps, step)
	}
	return diags
}

func (l *loader) decodeActor(block *hcl.Block) (Step, hcl.Diagnostics) {
	name := block.Labels[0]

	var raw hclActor
	if diags := gohcl.DecodeBody(block.Body, nil, &raw); diags.HasErrors() {
		return Step{}, diags
	}

	if _, dup := l.declared[name]; dup {
		return Step{}, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Duplicate actor",
			Detail:   fmt.Sprintf("An actor named %q is already declared.", name),
			Subject:  block.LabelRanges[0].Ptr(),
		}}
	}

	var diags hcl.Diagnostics
	team, err := enums.ParseTeam(raw.Team)
	if err != nil {
		diags = append(diags, attrError(block, "Invalid team", err))
	}

	location, locDiags := decodeVector(raw.Location, model.ZeroVector)
	diags = append(diags, locDiags...)

	strategyName := ""
	if raw.Movement != nil {
		strategyName = *raw.Movement
	}
	strategy, err := movement.ParseStrategy(strategyName)
	if err != nil {
		diags = append(diags, attrError(block, "Invalid movement", err))
	}

	stats := actor.DefaultStats()
	if raw.Health != nil {
		stats.Health, stats.MaxHealth = *raw.Health, *raw.Health
	}
	if raw.Shield != nil {
		stats.Shield, stats.MaxShield = *raw.Shield, *raw.Shield
	}
	if raw.Speed != nil {
		stats.Speed = *raw.Speed
	}
	if raw.Damage != nil {
		stats.Damage = *raw.Damage
	}
	if stats.MaxHealth <= 0 {
		diags = append(diags, attrError(block, "Invalid health", fmt.Errorf("health must be positive, got %g", stats.MaxHealth)))
	}

	if diags.HasErrors() {
		return Step{}, diags
	}

	l.declared[name] = struct{}{}
	return Step{
		Kind: StepSpawn,
		Spawn: &SpawnStep{
			Config: actor.Config{
				ID:       model.ActorIDFromName(name),
				Name:     name,
				Team:     team,
				Location: location,
				Stats:    stats,
			},
			Strategy: strategy,
		},
	}, nil
}

func (l *loader) decodeDamage(block *hcl.Block) (Step, hcl.Diagnostics) {
	var raw hclDamage
	if diags := gohcl.DecodeBody(block.Body, nil, &raw); diags.HasErrors() {
		return Step{}, diags
	}

	var diags hcl.Diagnostics
	checkActor := func(role, name string) {
		if _, ok := l.declared[name]; !ok {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unknown actor",
				Detail:   fmt.Sprintf("The %s %q is not declared by an earlier actor block.", role, name),
				Subject:  block.DefRange.Ptr(),
			})
		}
	}

	d := &DamageStep{
		Instigator: raw.Instigator,
		Amount:     raw.Amount,
		TagPaths:   raw.Tags,
	}
	checkActor("instigator", d.Instigator)
	if raw.Target != nil {
		d.Target = *raw.Target
		checkActor("target", d.Target)
	}
	if raw.Causer != nil {
		d.Causer = *raw.Causer
		checkActor("causer", d.Causer)
	}

	if raw.Type != nil {
		dt, err := enums.ParseDamageType(*raw.Type)
		if err != nil {
			diags = append(diags, attrError(block, "Invalid damage type", err))
		}
		d.Type = dt
	}

	if raw.Weapon != nil {
		wt, err := enums.ParseWeaponType(*raw.Weapon)
		if err != nil {
			diags = append(diags, attrError(block, "Invalid weapon slot", err))
		}
		d.Weapon = &wt
	}

	hit, hitDiags := decodeOptionalVector(raw.HitLocation)
	diags = append(diags, hitDiags...)
	d.HitLocation = hit

	if diags.HasErrors() {
		return Step{}, diags
	}
	return Step{Kind: StepDamage, Damage: d}, nil
}

func decodeAdvance(block *hcl.Block) (Step, hcl.Diagnostics) {
	var raw hclAdvance
	if diags := gohcl.DecodeBody(block.Body, nil, &raw); diags.HasErrors() {
		return Step{}, diags
	}

	a := &AdvanceStep{Steps: 1, Delta: DefaultDelta}
	if raw.Steps != nil {
		a.Steps = *raw.Steps
	}
	if raw.Delta != nil {
		a.Delta = *raw.Delta
	}

	var diags hcl.Diagnostics
	if a.Steps < 1 {
		diags = append(diags, attrError(block, "Invalid steps", fmt.Errorf("steps must be at least 1, got %d", a.Steps)))
	}
	if a.Delta <= 0 {
		diags = append(diags, attrError(block, "Invalid delta", fmt.Errorf("delta must be positive, got %g", a.Delta)))
	}
	if diags.HasErrors() {
		return Step{}, diags
	}
	return Step{Kind: StepAdvance, Advance: a}, nil
}

func decodeVector(expr hcl.Expression, fallback model.Vector3) (model.Vector3, hcl.Diagnostics) {
	v, diags := decodeOptionalVector(expr)
	if diags.HasErrors() || v == nil {
		return fallback, diags
	}
	return *v, nil
}

// decodeOptionalVector returns nil when the attribute is absent.
func decodeOptionalVector(expr hcl.Expression) (*model.Vector3, hcl.Diagnostics) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}

	v, err := model.VectorFromCty(val)
	if err != nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid vector",
			Detail:   err.Error(),
			Subject:  expr.Range().Ptr(),
		}}
	}
	return &v, nil
}

func attrError(block *hcl.Block, summary string, err error) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   err.Error(),
		Subject:  block.DefRange.Ptr(),
	}
}

package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/tircore/internal/ctxlog"
	"github.com/specialistvlad/tircore/internal/nativetags"
	"github.com/specialistvlad/tircore/internal/scenario"
	"github.com/specialistvlad/tircore/internal/tag"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Run executes the main application logic based on the App's configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.ListTags {
		return a.listTags(ctx)
	}
	return a.runScenario(ctx)
}

func (a *App) runScenario(ctx context.Context) error {
	sc, err := scenario.Load(ctx, a.config.ScenarioPath)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	a.logger.Info("Running scenario.", "path", a.config.ScenarioPath, "steps", len(sc.Steps))
	report, err := sc.Run(ctx, scenario.Deps{
		Tags:   a.native.Get(),
		Lookup: a.tags,
		Pool:   a.actors,
	})
	if err != nil {
		return fmt.Errorf("scenario failed: %w", err)
	}
	a.logger.Info("Scenario finished.", "events", len(report.Events), "survivors", len(report.Survivors))

	if a.config.Output == OutputJSON {
		return report.WriteJSON(a.outW)
	}
	return report.WriteText(a.outW)
}

func (a *App) listTags(ctx context.Context) error {
	entries := a.native.Entries()

	if a.config.Category != "" {
		query, err := tag.Category(a.config.Category)
		if err != nil {
			return fmt.Errorf("invalid category: %w", err)
		}
		var filtered []nativetags.Entry
		for _, e := range entries {
			if e.Tag.MatchesTag(query) {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}
	ctxlog.FromContext(ctx).Debug("Listing native tags.", "category", a.config.Category, "count", len(entries))

	if a.config.Output == OutputJSON {
		return writeEntriesJSON(a.outW, entries)
	}
	return writeEntriesText(a.outW, entries)
}

func writeEntriesText(w io.Writer, entries []nativetags.Entry) error {
	width := 0
	for _, e := range entries {
		width = max(width, len(e.Path))
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%-*s  %s\n", width, e.Path, e.Description)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeEntriesJSON(w io.Writer, entries []nativetags.Entry) error {
	vals := make([]cty.Value, 0, len(entries))
	for _, e := range entries {
		vals = append(vals, cty.ObjectVal(map[string]cty.Value{
			"path":        cty.StringVal(e.Path),
			"category":    cty.StringVal(e.Category),
			"field":       cty.StringVal(e.Field),
			"description": cty.StringVal(e.Description),
		}))
	}

	list := cty.ListValEmpty(entryCtyType)
	if len(vals) > 0 {
		list = cty.ListVal(vals)
	}

	buf, err := ctyjson.Marshal(list, list.Type())
	if err != nil {
		return fmt.Errorf("failed to encode tag listing: %w", err)
	}
	_, err = w.Write(append(buf, '\n'))
	return err
}

var entryCtyType = cty.Object(map[string]cty.Type{
	"path":        cty.String,
	"category":    cty.String,
	"field":       cty.String,
	"description": cty.String,
})

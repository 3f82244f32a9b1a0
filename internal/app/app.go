package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/tircore/internal/actor"
	"github.com/specialistvlad/tircore/internal/ctxlog"
	"github.com/specialistvlad/tircore/internal/nativetags"
	"github.com/specialistvlad/tircore/internal/pool"
	"github.com/specialistvlad/tircore/internal/tag"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config

	tags   *tag.Manager
	native *nativetags.Registry
	actors *pool.Pool[*actor.Actor]
}

// NewApp is the constructor for the main application. Results are written to
// outW and logs to logW. It returns a fully initialized App with its own
// logger, tag authority, and native tag registry.
//
// A native tag registration failure means the binary's manifest and Go slots
// disagree, so NewApp panics instead of returning an error.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	manager := tag.NewManager(logger)
	native := nativetags.New(manager)
	if err := native.InitializeNativeTags(ctx); err != nil {
		panic(fmt.Errorf("failed to initialize native gameplay tags: %w", err))
	}

	slots := native.Get()
	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		tags:   manager,
		native: native,
		actors: pool.New(logger, func() *actor.Actor {
			return actor.NewPooled(slots)
		}),
	}
}

// Registry returns the application's native tag registry. This is primarily for testing.
func (a *App) Registry() *nativetags.Registry {
	return a.native
}

// Tags returns the application's tag authority.
func (a *App) Tags() *tag.Manager {
	return a.tags
}

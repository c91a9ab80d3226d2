package recaman

import (
	"context"
	"errors"

	"github.com/progdeck/progdeck/internal/console"
	"github.com/progdeck/progdeck/internal/ctxlog"
	"github.com/progdeck/progdeck/internal/registry"
)

const (
	// DefaultBatchSize is the number of new terms generated per run.
	DefaultBatchSize = 100
	// DefaultSizeLimit is the on-disk store size that triggers the reset
	// prompt: 10 MiB.
	DefaultSizeLimit = 10 << 20

	label = "Recaman's Sequence"
)

// Config carries the engine's injectable settings. Zero values fall back to
// the fixed defaults, so tests can shrink the batch or the size limit
// without touching production constants.
type Config struct {
	StorePath string
	BatchSize int
	SizeLimit int64
}

// Module registers the sequence engine as a built-in program.
type Module struct {
	Cfg Config
	Con *console.Console
}

// Register registers the engine's descriptor with the catalog.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterProgram(registry.Descriptor{
		ID:    "recaman",
		Label: label,
		Factory: func() registry.Program {
			return NewEngine(m.Cfg, m.Con)
		},
	})
}

// Engine is the runnable sequence generator. One Engine instance serves one
// menu invocation; all durable state lives in the store.
type Engine struct {
	cfg   Config
	con   *console.Console
	store *Store
}

// NewEngine creates an Engine with the given configuration.
func NewEngine(cfg Config, con *console.Console) *Engine {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.SizeLimit <= 0 {
		cfg.SizeLimit = DefaultSizeLimit
	}
	return &Engine{
		cfg:   cfg,
		con:   con,
		store: NewStore(cfg.StorePath),
	}
}

// Label implements registry.Program.
func (e *Engine) Label() string { return label }

// Run executes one generation cycle: health-check the store, load it,
// extend the sequence by one batch, print the new terms, persist.
func (e *Engine) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	if err := e.healthCheck(ctx); err != nil {
		return err
	}

	state, err := e.store.Load()
	if err != nil {
		if errors.Is(err, ErrCorrupt) {
			e.con.Printf("The sequence store could not be read: %v\n", err)
			e.con.Printf("No data was changed. To start over, delete %s and run again.\n", e.store.Path())
		}
		return err
	}
	logger.Debug("Sequence store loaded.", "path", e.store.Path(), "terms", state.Len())

	e.printRules()

	start := state.Len()
	terms := state.Extend(e.cfg.BatchSize)
	for i, v := range terms {
		e.con.Printf("a(%d) = %d\n", start+i, v)
	}

	if err := e.store.Save(state); err != nil {
		e.con.Printf("Could not persist the sequence; the previous store is unchanged: %v\n", err)
		return err
	}
	logger.Debug("Sequence store persisted.", "path", e.store.Path(), "terms", state.Len())

	e.con.Printf("\nSequence now holds %d terms, saved to %s\n", state.Len(), e.store.Path())
	return nil
}

// healthCheck measures the on-disk size left by the previous run. Over the
// limit it always asks; accumulation continues only if the user declines
// the reset.
func (e *Engine) healthCheck(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	size, exists, err := e.store.Size()
	if err != nil {
		return err
	}
	if !exists || size <= e.cfg.SizeLimit {
		return nil
	}

	e.con.Printf("The sequence store %s has grown to %.1f MiB (limit %.1f MiB).\n",
		e.store.Path(), mib(size), mib(e.cfg.SizeLimit))
	reset, err := e.con.Confirm("Discard it and restart the sequence from 0?")
	if err != nil {
		return err
	}
	if !reset {
		logger.Info("Store over size limit, user chose to keep accumulating.", "size", size)
		return nil
	}

	if err := e.store.Reset(); err != nil {
		return err
	}
	logger.Info("Store reset at user's request.", "path", e.store.Path())
	e.con.Println("Store discarded; the sequence restarts from 0.")
	return nil
}

func (e *Engine) printRules() {
	e.con.Printf("\n%s\n\n", label)
	e.con.Println("Rules:")
	e.con.Println("  1. a(n) = a(n-1) - n if the result is non-negative and not already in the sequence")
	e.con.Println("  2. otherwise a(n) = a(n-1) + n")
	e.con.Println("")
}

func mib(n int64) float64 {
	return float64(n) / float64(1<<20)
}

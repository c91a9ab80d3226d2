package registry

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/progdeck/progdeck/internal/ctxlog"
	"github.com/progdeck/progdeck/internal/fsutil"
)

// Errors surfaced for a single discovery candidate. A candidate failing with
// any of these is excluded from the catalog; discovery of the remaining
// candidates continues.
var (
	// ErrNoProgram means the candidate declares no exported entry point.
	ErrNoProgram = errors.New("no exported entry point of type func() error")
	// ErrAmbiguous means the candidate declares more than one entry point,
	// so picking one silently could execute the wrong unit.
	ErrAmbiguous = errors.New("more than one exported entry point of type func() error")
)

// DiscoverPrograms enumerates dir for drop-in program files whose base name
// starts with prefix and ends in ".go", evaluates each with the interpreter,
// and appends a Descriptor per valid candidate to the catalog.
//
// Each candidate file is a self-contained `package main` source declaring
// exactly one exported niladic function returning error; that function is
// the program's entry point. Candidates that fail to parse, evaluate, or
// satisfy the exactly-one rule are logged with their file name and skipped;
// a broken candidate never aborts discovery of the rest.
func (r *Registry) DiscoverPrograms(ctx context.Context, dir, prefix string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Discovering drop-in programs.", "path", dir, "prefix", prefix)

	files, err := fsutil.FindFilesByPrefix(dir, prefix, ".go")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("Programs directory does not exist, skipping discovery.", "path", dir)
			return nil
		}
		return fmt.Errorf("enumerating programs directory %s: %w", dir, err)
	}

	if len(files) == 0 {
		logger.Warn("No drop-in program files found in path.", "path", dir, "prefix", prefix)
		return nil
	}

	discovered := 0
	for _, path := range files {
		desc, err := r.loadCandidate(path, prefix)
		if err != nil {
			logger.Error("Skipping program candidate.", "file", path, "error", err)
			continue
		}
		if err := r.add(desc); err != nil {
			logger.Error("Skipping program candidate.", "file", path, "error", err)
			continue
		}
		logger.Debug("Discovered program.", "file", path, "id", desc.ID, "label", desc.Label)
		discovered++
	}

	logger.Info("Program discovery complete.", "candidates", len(files), "discovered", discovered)
	return nil
}

// loadCandidate evaluates one candidate file and builds its Descriptor.
func (r *Registry) loadCandidate(path, prefix string) (Descriptor, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Descriptor{}, fmt.Errorf("reading candidate: %w", err)
	}

	entry, err := evalProgramSource(string(src))
	if err != nil {
		return Descriptor{}, err
	}

	id := strings.TrimSuffix(strings.TrimPrefix(filepath.Base(path), prefix), ".go")
	label := labelFromID(id)
	return Descriptor{
		ID:    id,
		Label: label,
		Factory: func() Program {
			return &scriptProgram{label: label, entry: entry}
		},
	}, nil
}

// evalProgramSource evaluates a candidate source in a fresh interpreter and
// extracts its single exported entry point. A fresh interpreter per
// candidate keeps one broken file from poisoning the others.
func evalProgramSource(src string) (entry func() error, err error) {
	// The interpreter can panic on pathological input; contain it so the
	// candidate is merely skipped.
	defer func() {
		if rec := recover(); rec != nil {
			entry = nil
			err = fmt.Errorf("interpreter panic: %v", rec)
		}
	}()

	i := interp.New(interp.Options{})
	if uerr := i.Use(stdlib.Symbols); uerr != nil {
		return nil, fmt.Errorf("loading interpreter stdlib: %w", uerr)
	}

	if _, eerr := i.Eval(src); eerr != nil {
		return nil, fmt.Errorf("evaluating candidate: %w", eerr)
	}

	var entries []func() error
	for name, sym := range i.Symbols("main")["main"] {
		if !isExported(name) {
			continue
		}
		if fn, ok := sym.Interface().(func() error); ok {
			entries = append(entries, fn)
		}
	}

	switch len(entries) {
	case 0:
		return nil, ErrNoProgram
	case 1:
		return entries[0], nil
	default:
		return nil, ErrAmbiguous
	}
}

// scriptProgram adapts a discovered entry function to the Program contract.
type scriptProgram struct {
	label string
	entry func() error
}

func (p *scriptProgram) Label() string { return p.label }

func (p *scriptProgram) Run(ctx context.Context) (err error) {
	// Interpreted code runs with full trust, but a panic inside it should
	// surface as this unit's error, not kill the menu loop.
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("program panicked: %v", rec)
		}
	}()
	return p.entry()
}

// labelFromID turns a snake_case file identifier into a spaced, capitalized
// menu label: "fizz_buzz" becomes "Fizz Buzz".
func labelFromID(id string) string {
	var words []string
	for _, w := range strings.Split(id, "_") {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words = append(words, string(unicode.ToUpper(r))+w[size:])
	}
	return strings.Join(words, " ")
}

func isExported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

package menu

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/progdeck/progdeck/internal/console"
	"github.com/progdeck/progdeck/internal/registry"
)

type recordingProgram struct {
	label string
	runs  *int
	err   error
}

func (p *recordingProgram) Label() string { return p.label }
func (p *recordingProgram) Run(ctx context.Context) error {
	*p.runs++
	return p.err
}

func newMenu(t *testing.T, input string, progs ...*recordingProgram) (*Menu, *bytes.Buffer) {
	t.Helper()
	reg := registry.New()
	for _, p := range progs {
		prog := p
		reg.RegisterProgram(registry.Descriptor{
			ID:    strings.ToLower(prog.label),
			Label: prog.label,
			Factory: func() registry.Program {
				return prog
			},
		})
	}
	out := &bytes.Buffer{}
	return New(reg, console.New(strings.NewReader(input), out)), out
}

func TestLoop_RendersNumberedCatalog(t *testing.T) {
	runs := 0
	m, out := newMenu(t, "0\n",
		&recordingProgram{label: "Alpha", runs: &runs},
		&recordingProgram{label: "Beta", runs: &runs},
	)

	require.NoError(t, m.Loop(context.Background()))

	require.Contains(t, out.String(), "1. Alpha")
	require.Contains(t, out.String(), "2. Beta")
	require.Contains(t, out.String(), "0. Exit")
	require.Contains(t, out.String(), "Goodbye!")
	require.Equal(t, 0, runs)
}

func TestLoop_RunsSelectedProgram(t *testing.T) {
	runs := 0
	m, out := newMenu(t, "1\n0\n", &recordingProgram{label: "Alpha", runs: &runs})

	require.NoError(t, m.Loop(context.Background()))

	require.Equal(t, 1, runs)
	require.Contains(t, out.String(), "--- Finished ---")
}

func TestLoop_InvalidSelectionsReprompt(t *testing.T) {
	runs := 0
	m, out := newMenu(t, "abc\n9\n-3\n1\n0\n", &recordingProgram{label: "Alpha", runs: &runs})

	require.NoError(t, m.Loop(context.Background()))

	require.Equal(t, 1, runs)
	require.Equal(t, 3, strings.Count(out.String(), "Invalid selection."))
}

func TestLoop_ProgramErrorKeepsLoopAlive(t *testing.T) {
	failRuns, okRuns := 0, 0
	m, out := newMenu(t, "1\n2\n0\n",
		&recordingProgram{label: "Broken", runs: &failRuns, err: errors.New("boom")},
		&recordingProgram{label: "Fine", runs: &okRuns},
	)

	require.NoError(t, m.Loop(context.Background()))

	require.Equal(t, 1, failRuns)
	require.Equal(t, 1, okRuns)
	require.Contains(t, out.String(), `Program "Broken" failed: boom`)
}

func TestLoop_EndOfInputExits(t *testing.T) {
	runs := 0
	m, out := newMenu(t, "", &recordingProgram{label: "Alpha", runs: &runs})

	require.NoError(t, m.Loop(context.Background()))
	require.Contains(t, out.String(), "Goodbye!")
}

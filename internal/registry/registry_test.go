package registry

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type nopProgram struct{ label string }

func (p *nopProgram) Label() string                { return p.label }
func (p *nopProgram) Run(ctx context.Context) error { return nil }

func desc(id, label string) Descriptor {
	return Descriptor{
		ID:    id,
		Label: label,
		Factory: func() Program {
			return &nopProgram{label: label}
		},
	}
}

func TestRegistry_CatalogKeepsInsertionOrder(t *testing.T) {
	r := New()
	r.RegisterProgram(desc("b", "Bravo"))
	r.RegisterProgram(desc("a", "Alpha"))
	r.RegisterProgram(desc("c", "Charlie"))

	var labels []string
	for _, d := range r.Catalog() {
		labels = append(labels, d.Label)
	}
	if diff := cmp.Diff([]string{"Bravo", "Alpha", "Charlie"}, labels); diff != "" {
		t.Fatalf("unexpected catalog order (-want +got):\n%s", diff)
	}
}

func TestRegistry_DuplicateIDPanics(t *testing.T) {
	r := New()
	r.RegisterProgram(desc("dup", "First"))
	require.Panics(t, func() {
		r.RegisterProgram(desc("dup", "Second"))
	})
}

func TestRegistry_At(t *testing.T) {
	r := New()
	r.RegisterProgram(desc("one", "One"))

	d, ok := r.At(0)
	require.True(t, ok)
	require.Equal(t, "one", d.ID)

	_, ok = r.At(1)
	require.False(t, ok)
	_, ok = r.At(-1)
	require.False(t, ok)
}

func TestRegistry_CatalogIsACopy(t *testing.T) {
	r := New()
	r.RegisterProgram(desc("one", "One"))

	cat := r.Catalog()
	cat[0].Label = "Mutated"

	d, ok := r.At(0)
	require.True(t, ok)
	require.Equal(t, "One", d.Label)
}

// Package arithmetic is a trivial demonstration program: it prints a small
// multiplication table.
package arithmetic

import (
	"context"

	"github.com/progdeck/progdeck/internal/console"
	"github.com/progdeck/progdeck/internal/registry"
)

const tableSize = 10

// Module registers the demo with the catalog.
type Module struct {
	Con *console.Console
}

// Register implements registry.Module.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterProgram(registry.Descriptor{
		ID:    "arithmetic",
		Label: "Multiplication Table",
		Factory: func() registry.Program {
			return &program{con: m.Con}
		},
	})
}

type program struct {
	con *console.Console
}

func (p *program) Label() string { return "Multiplication Table" }

func (p *program) Run(ctx context.Context) error {
	p.con.Printf("\nMultiplication table up to %dx%d\n\n", tableSize, tableSize)
	for a := 1; a <= tableSize; a++ {
		for b := 1; b <= tableSize; b++ {
			p.con.Printf("%4d", a*b)
		}
		p.con.Println("")
	}
	return nil
}

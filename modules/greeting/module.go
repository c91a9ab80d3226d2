// Package greeting is a trivial demonstration program: it prints a literal
// greeting.
package greeting

import (
	"context"

	"github.com/progdeck/progdeck/internal/console"
	"github.com/progdeck/progdeck/internal/registry"
)

// Module registers the demo with the catalog.
type Module struct {
	Con *console.Console
}

// Register implements registry.Module.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterProgram(registry.Descriptor{
		ID:    "greeting",
		Label: "Greeting",
		Factory: func() registry.Program {
			return &program{con: m.Con}
		},
	})
}

type program struct {
	con *console.Console
}

func (p *program) Label() string { return "Greeting" }

func (p *program) Run(ctx context.Context) error {
	p.con.Println("Hello there! Welcome to progdeck.")
	return nil
}

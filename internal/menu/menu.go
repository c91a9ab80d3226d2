// Package menu implements the interactive driver: it renders the program
// catalog with stable 1-based numbering, reads a selection, and runs the
// chosen program. Invalid input is re-prompted; a failing program is
// reported and the loop keeps going.
package menu

import (
	"context"
	"io"
	"strconv"

	"github.com/progdeck/progdeck/internal/console"
	"github.com/progdeck/progdeck/internal/ctxlog"
	"github.com/progdeck/progdeck/internal/registry"
)

// Menu drives the selection loop over one registry's catalog.
type Menu struct {
	reg *registry.Registry
	con *console.Console
}

// New creates a Menu over the given registry and console.
func New(reg *registry.Registry, con *console.Console) *Menu {
	return &Menu{reg: reg, con: con}
}

const header = `
========================
        MAIN MENU
========================
`

// render prints the numbered catalog. Entry numbers come from catalog
// order, which is fixed for the process lifetime.
func (m *Menu) render() {
	m.con.Printf("%s\n", header)
	for i, desc := range m.reg.Catalog() {
		m.con.Printf("%d. %s\n", i+1, desc.Label)
	}
	m.con.Printf("0. Exit\n\n")
}

// Loop runs the menu until the user enters 0 or input ends. An error from a
// program terminates that program only, never the loop.
func (m *Menu) Loop(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	for {
		m.render()

		choice, err := m.con.Ask("Enter option: ")
		if err == io.EOF {
			m.con.Println("Goodbye!")
			return nil
		}
		if err != nil {
			return err
		}

		if choice == "0" {
			m.con.Println("Goodbye!")
			return nil
		}

		n, err := strconv.Atoi(choice)
		if err != nil {
			m.con.Println("Invalid selection.")
			continue
		}
		desc, ok := m.reg.At(n - 1)
		if !ok {
			m.con.Println("Invalid selection.")
			continue
		}

		logger.Debug("Running selected program.", "id", desc.ID, "label", desc.Label)
		if err := desc.Factory().Run(ctx); err != nil {
			logger.Error("Program failed.", "id", desc.ID, "error", err)
			m.con.Printf("Program %q failed: %v\n", desc.Label, err)
		}

		m.con.Printf("\n--- Finished ---\n")
	}
}

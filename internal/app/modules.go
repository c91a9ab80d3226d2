package app

import (
	"github.com/progdeck/progdeck/internal/config"
	"github.com/progdeck/progdeck/internal/console"
	"github.com/progdeck/progdeck/internal/registry"
	"github.com/progdeck/progdeck/modules/arithmetic"
	"github.com/progdeck/progdeck/modules/greeting"
	"github.com/progdeck/progdeck/modules/puzzle"
	"github.com/progdeck/progdeck/modules/recaman"
)

// builtinModules is the definitive list of programs compiled into the
// progdeck binary. Drop-in programs discovered at startup follow these in
// the catalog.
func builtinModules(cfg *config.Config, con *console.Console) []registry.Module {
	return []registry.Module{
		&greeting.Module{Con: con},
		&arithmetic.Module{Con: con},
		&recaman.Module{
			Cfg: recaman.Config{StorePath: cfg.StorePath},
			Con: con,
		},
		&puzzle.Module{
			Cfg: puzzle.Config{LeaderboardPath: cfg.LeaderboardPath},
			Con: con,
		},
	}
}

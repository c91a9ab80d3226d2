// Package puzzle is a terminal sliding puzzle with a persistent top-10
// leaderboard per grid size.
package puzzle

import (
	"context"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/progdeck/progdeck/internal/console"
	"github.com/progdeck/progdeck/internal/ctxlog"
	"github.com/progdeck/progdeck/internal/registry"
)

const label = "Sliding Puzzle"

// Config carries the puzzle's injectable settings.
type Config struct {
	LeaderboardPath string
}

// Module registers the puzzle as a built-in program.
type Module struct {
	Cfg Config
	Con *console.Console
}

// Register implements registry.Module.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterProgram(registry.Descriptor{
		ID:    "puzzle",
		Label: label,
		Factory: func() registry.Program {
			return &Game{
				cfg: m.Cfg,
				con: m.Con,
				rng: rand.New(rand.NewSource(time.Now().UnixNano())),
				now: time.Now,
			}
		},
	})
}

// Game runs one interactive puzzle session.
type Game struct {
	cfg Config
	con *console.Console
	rng *rand.Rand
	now func() time.Time
}

// Label implements registry.Program.
func (g *Game) Label() string { return label }

// Run prompts for a grid size, shuffles a board, and plays until the board
// is solved or the user quits. Solving records the time on the
// leaderboard. The timer starts on the first move, as in the original.
func (g *Game) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	rows, cols, err := g.promptGridSize()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}

	board, err := NewBoard(rows, cols)
	if err != nil {
		return err
	}
	board.Shuffle(g.rng)
	logger.Debug("Puzzle started.", "rows", rows, "cols", cols)

	g.con.Println("\nSlide tiles by number, or move the blank with w/a/s/d. 'q' quits.")

	moves := 0
	var started time.Time
	for !board.Solved() {
		g.con.Println("")
		board.Render(g.con.Out())

		input, err := g.con.Ask("Move: ")
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		var moved bool
		switch input {
		case "q":
			g.con.Println("Leaving the puzzle unsolved.")
			return nil
		case "w":
			moved = board.MoveBlank(-1, 0)
		case "s":
			moved = board.MoveBlank(1, 0)
		case "a":
			moved = board.MoveBlank(0, -1)
		case "d":
			moved = board.MoveBlank(0, 1)
		default:
			tile, err := strconv.Atoi(input)
			if err != nil {
				g.con.Println("Enter a tile number, w/a/s/d, or 'q'.")
				continue
			}
			moved = board.MoveTile(tile)
		}

		if !moved {
			g.con.Println("That move is not possible.")
			continue
		}
		if moves == 0 {
			started = g.now()
		}
		moves++
	}

	g.con.Println("")
	board.Render(g.con.Out())
	elapsed := g.now().Sub(started).Seconds()
	g.con.Printf("\nSolved in %d moves and %.2f seconds!\n", moves, elapsed)

	return g.recordScore(rows, cols, elapsed)
}

// promptGridSize asks for rows and columns within the allowed bounds.
func (g *Game) promptGridSize() (rows, cols int, err error) {
	rows, err = g.promptDim("Rows")
	if err != nil {
		return 0, 0, err
	}
	cols, err = g.promptDim("Columns")
	if err != nil {
		return 0, 0, err
	}
	return rows, cols, nil
}

func (g *Game) promptDim(name string) (int, error) {
	for {
		reply, err := g.con.Ask(name + " (3-8): ")
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(reply)
		if convErr != nil || n < MinDim || n > MaxDim {
			g.con.Printf("Enter a number between %d and %d.\n", MinDim, MaxDim)
			continue
		}
		return n, nil
	}
}

// recordScore asks for initials and updates the leaderboard; an empty reply
// skips recording, matching the original's cancelable dialog.
func (g *Game) recordScore(rows, cols int, seconds float64) error {
	initials, err := g.con.Ask("Enter initials for the leaderboard (blank to skip): ")
	if err == io.EOF || (err == nil && initials == "") {
		return nil
	}
	if err != nil {
		return err
	}

	lb := NewLeaderboard(g.cfg.LeaderboardPath)
	scores, err := lb.Record(rows, cols, seconds, initials)
	if err != nil {
		return err
	}

	g.con.Printf("\nTop times for %dx%d:\n", rows, cols)
	for i, e := range scores {
		g.con.Printf("%2d. %-3s  %.2fs\n", i+1, e.Initials, e.Seconds)
	}
	return nil
}

package puzzle

import (
	"bytes"
	"context"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/progdeck/progdeck/internal/console"
)

func newTestGame(t *testing.T, input, leaderboardPath string) (*Game, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return &Game{
		cfg: Config{LeaderboardPath: leaderboardPath},
		con: console.New(strings.NewReader(input), out),
		rng: rand.New(rand.NewSource(7)),
		now: time.Now,
	}, out
}

func TestGameRun_QuitLeavesNoScore(t *testing.T) {
	lbPath := filepath.Join(t.TempDir(), "leaderboard.json")
	g, out := newTestGame(t, "3\n3\nq\n", lbPath)

	require.NoError(t, g.Run(context.Background()))
	require.Contains(t, out.String(), "Leaving the puzzle unsolved.")

	scores, err := NewLeaderboard(lbPath).Top(3, 3)
	require.NoError(t, err)
	require.Empty(t, scores)
}

func TestGameRun_RepromptsBadDimensions(t *testing.T) {
	g, out := newTestGame(t, "2\nten\n9\n3\n3\nq\n", filepath.Join(t.TempDir(), "lb.json"))

	require.NoError(t, g.Run(context.Background()))
	require.Equal(t, 3, strings.Count(out.String(), "Enter a number between 3 and 8."))
}

func TestGameRun_RejectsNonsenseMoves(t *testing.T) {
	g, out := newTestGame(t, "3\n3\nxyz\nq\n", filepath.Join(t.TempDir(), "lb.json"))

	require.NoError(t, g.Run(context.Background()))
	require.Contains(t, out.String(), "Enter a tile number, w/a/s/d, or 'q'.")
}

func TestGameRun_EndOfInputExitsCleanly(t *testing.T) {
	g, _ := newTestGame(t, "3\n3\n", filepath.Join(t.TempDir(), "lb.json"))
	require.NoError(t, g.Run(context.Background()))
}

func TestRecordScore_BlankInitialsSkips(t *testing.T) {
	lbPath := filepath.Join(t.TempDir(), "leaderboard.json")
	g, _ := newTestGame(t, "\n", lbPath)

	require.NoError(t, g.recordScore(3, 3, 12.5))

	scores, err := NewLeaderboard(lbPath).Top(3, 3)
	require.NoError(t, err)
	require.Empty(t, scores)
}

func TestRecordScore_PrintsStandings(t *testing.T) {
	lbPath := filepath.Join(t.TempDir(), "leaderboard.json")
	g, out := newTestGame(t, "ZAK\n", lbPath)

	require.NoError(t, g.recordScore(3, 3, 12.5))

	require.Contains(t, out.String(), "Top times for 3x3:")
	require.Contains(t, out.String(), "ZAK")

	scores, err := NewLeaderboard(lbPath).Top(3, 3)
	require.NoError(t, err)
	require.Len(t, scores, 1)
}

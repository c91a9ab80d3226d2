package puzzle

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/progdeck/progdeck/internal/fsutil"
)

// keepTop is how many entries survive per grid size.
const keepTop = 10

// Entry is one leaderboard row.
type Entry struct {
	Initials string  `json:"initials"`
	Seconds  float64 `json:"time"`
}

// Leaderboard persists the best solve times per grid size as a JSON object
// keyed by "RxC". The file is rewritten atomically on every record.
type Leaderboard struct {
	path string
}

// NewLeaderboard creates a Leaderboard stored at path.
func NewLeaderboard(path string) *Leaderboard {
	return &Leaderboard{path: path}
}

// Record adds a solve to the table for the given grid size, keeps the top
// entries sorted by time, saves, and returns the updated table.
func (l *Leaderboard) Record(rows, cols int, seconds float64, initials string) ([]Entry, error) {
	data, err := l.load()
	if err != nil {
		return nil, err
	}

	if len(initials) > 3 {
		initials = initials[:3]
	}

	key := sizeKey(rows, cols)
	scores := append(data[key], Entry{Initials: initials, Seconds: seconds})
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Seconds < scores[j].Seconds })
	if len(scores) > keepTop {
		scores = scores[:keepTop]
	}
	data[key] = scores

	if err := l.save(data); err != nil {
		return nil, err
	}
	return scores, nil
}

// Top returns the stored entries for the given grid size.
func (l *Leaderboard) Top(rows, cols int) ([]Entry, error) {
	data, err := l.load()
	if err != nil {
		return nil, err
	}
	return data[sizeKey(rows, cols)], nil
}

func (l *Leaderboard) load() (map[string][]Entry, error) {
	raw, err := os.ReadFile(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string][]Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading leaderboard %s: %w", l.path, err)
	}
	data := map[string][]Entry{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing leaderboard %s: %w", l.path, err)
	}
	return data, nil
}

func (l *Leaderboard) save(data map[string][]Entry) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding leaderboard: %w", err)
	}
	raw = append(raw, '\n')
	if err := fsutil.WriteFileAtomic(l.path, raw, 0o644); err != nil {
		return fmt.Errorf("writing leaderboard %s: %w", l.path, err)
	}
	return nil
}

func sizeKey(rows, cols int) string {
	return fmt.Sprintf("%dx%d", rows, cols)
}

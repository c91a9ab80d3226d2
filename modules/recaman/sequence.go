package recaman

import (
	"fmt"
)

// SequenceState is the ordered sequence of generated terms plus the
// membership set enforcing uniqueness. The two are kept in lockstep: a term
// is appended to the order and added to the set before the next candidate
// is computed, so each candidate's "previous" is the immediately preceding
// accepted term.
type SequenceState struct {
	values []int
	seen   map[int]struct{}
}

// NewState builds a state from an existing ordered value list, validating
// the uniqueness and non-negativity invariants.
func NewState(values []int) (*SequenceState, error) {
	s := &SequenceState{
		values: make([]int, 0, len(values)),
		seen:   make(map[int]struct{}, len(values)),
	}
	for i, v := range values {
		if v < 0 {
			return nil, fmt.Errorf("value %d at position %d is negative", v, i)
		}
		if _, dup := s.seen[v]; dup {
			return nil, fmt.Errorf("value %d at position %d appears twice", v, i)
		}
		s.values = append(s.values, v)
		s.seen[v] = struct{}{}
	}
	return s, nil
}

// Empty returns the state of a run with no prior store. The seed value 0 is
// emitted as the first term of the first Extend, so a fresh Extend(n)
// yields a sequence of exactly n elements starting at 0.
func Empty() *SequenceState {
	return &SequenceState{seen: make(map[int]struct{})}
}

// Values returns a copy of the ordered sequence.
func (s *SequenceState) Values() []int {
	out := make([]int, len(s.values))
	copy(out, s.values)
	return out
}

// Len reports the number of terms generated so far.
func (s *SequenceState) Len() int {
	return len(s.values)
}

func (s *SequenceState) member(v int) bool {
	_, ok := s.seen[v]
	return ok
}

func (s *SequenceState) push(v int) {
	s.values = append(s.values, v)
	s.seen[v] = struct{}{}
}

// Extend appends exactly n new terms and returns them in generation order.
//
// Term k's candidate is prev-k, accepted if it is non-negative and not yet
// in the sequence; otherwise the term comes from the prev+k branch. That
// branch is still checked against the membership set rather than trusted:
// the textbook recurrence does collide there eventually (42 repeats at term
// 24), and this generator's contract is no duplicates, ever. On a
// collision the candidate keeps stepping by k until it lands on an unused
// value, which keeps Extend deterministic and always able to produce n
// fresh terms.
func (s *SequenceState) Extend(n int) []int {
	appended := make([]int, 0, n)
	for len(appended) < n {
		if len(s.values) == 0 {
			s.push(0)
			appended = append(appended, 0)
			continue
		}

		k := len(s.values)
		prev := s.values[k-1]

		next := prev - k
		if next < 0 || s.member(next) {
			next = prev + k
			for s.member(next) {
				next += k
			}
		}

		s.push(next)
		appended = append(appended, next)
	}
	return appended
}

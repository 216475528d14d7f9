// Package solver ranks the dictionary words that fit a set of hints, without
// any game state.
package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordle_solver/internal/constraints"
	"github.com/domino14/wordle_solver/internal/dictionary"
	"github.com/domino14/wordle_solver/internal/ranking"
)

var (
	ErrBadHint      = errors.New("bad hint")
	ErrTooManyHints = errors.New("more hints than letters")
	ErrBadDuds      = errors.New("duds must be lowercase letters")
)

// Hint is what is known about one position: a fixed letter, letters that
// are in the word but not here, or both.
type Hint struct {
	Fixed    byte
	Excluded string
}

func lettersOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// ParseHint reads a position hint: "" for nothing known, a single letter
// for a fixed letter, "!xyz" for letters known to be elsewhere, or a letter
// followed by "!xyz" for both.
func ParseHint(s string) (Hint, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	head, tail, _ := strings.Cut(s, "!")
	if len(head) > 1 || !lettersOnly(head) || !lettersOnly(tail) {
		return Hint{}, fmt.Errorf("%w: %q", ErrBadHint, s)
	}
	h := Hint{Excluded: tail}
	if head != "" {
		h.Fixed = head[0]
	}
	return h, nil
}

func (h Hint) String() string {
	var sb strings.Builder
	if h.Fixed != 0 {
		sb.WriteByte(h.Fixed)
	}
	if h.Excluded != "" {
		sb.WriteString("!" + h.Excluded)
	}
	return sb.String()
}

// ParseHints parses one hint per position. Missing trailing positions are
// left unconstrained.
func ParseHints(raw []string, length int) ([]Hint, error) {
	if len(raw) > length {
		return nil, fmt.Errorf("%w: %d hints for %d letters", ErrTooManyHints, len(raw), length)
	}
	hints := make([]Hint, length)
	for i, s := range raw {
		h, err := ParseHint(s)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i+1, err)
		}
		hints[i] = h
	}
	return hints, nil
}

// Result is the outcome of a single solve.
type Result struct {
	Pattern    *constraints.Pattern
	Model      *ranking.Model
	Candidates []string
}

// Top returns the n best candidates.
func (r *Result) Top(n int) []string {
	if len(r.Candidates) < n {
		n = len(r.Candidates)
	}
	return r.Candidates[:n]
}

type Solver struct {
	dict *dictionary.Dictionary
}

func New(dict *dictionary.Dictionary) *Solver {
	return &Solver{dict: dict}
}

// Solve filters and ranks the dictionary against hints and dud letters.
func (s *Solver) Solve(hints []Hint, duds string) (*Result, error) {
	length := s.dict.WordLength()
	if len(hints) > length {
		return nil, fmt.Errorf("%w: %d hints for %d letters", ErrTooManyHints, len(hints), length)
	}
	duds = strings.ToLower(strings.TrimSpace(duds))
	if !lettersOnly(duds) {
		return nil, fmt.Errorf("%w: %q", ErrBadDuds, duds)
	}
	set := constraints.NewSet(length)
	for i, h := range hints {
		set.Fix(i, h.Fixed)
		set.Exclude(i, h.Excluded)
	}
	set.Blackout(duds)
	return s.SolveSet(set), nil
}

// SolveSet filters and ranks the dictionary against an existing set.
func (s *Solver) SolveSet(set *constraints.Set) *Result {
	p := set.Compile()
	candidates := constraints.Filter(s.dict.Words(), p)
	m := ranking.NewModel(candidates)
	res := &Result{
		Pattern:    p,
		Model:      m,
		Candidates: m.Rank(candidates),
	}
	log.Debug().Stringer("pattern", p).Int("candidates", len(res.Candidates)).Msg("solved")
	return res
}

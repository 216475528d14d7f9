// Package game runs a single word-guessing session: it validates guesses,
// scores them against the secret word and keeps the candidate list of
// dictionary words that are still possible.
package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordle_solver/internal/constraints"
	"github.com/domino14/wordle_solver/internal/dictionary"
	"github.com/domino14/wordle_solver/internal/ranking"
)

const DefaultMaxGuesses = 6

var (
	ErrWrongLength     = errors.New("wrong word length")
	ErrNotInDictionary = errors.New("not in dictionary")
	ErrGameOver        = errors.New("game is over")
	ErrInvalidSecret   = errors.New("invalid secret word")
)

// State is where a game is in its lifecycle.
type State int

const (
	AwaitingGuess State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "awaiting guess"
	}
}

// Config controls how a game is set up. The zero value picks a random
// secret and allows DefaultMaxGuesses guesses.
type Config struct {
	// Secret forces the secret word. It is lowercased and must be a word of
	// the dictionary's length, but need not be in the dictionary.
	Secret     string
	MaxGuesses int
	// Rand is used to pick the secret and sample suggestions.
	Rand *rand.Rand
}

// Record is one evaluated guess.
type Record struct {
	Guess string
	Marks []constraints.Mark
}

type Game struct {
	dict       *dictionary.Dictionary
	secret     string
	maxGuesses int
	rng        *rand.Rand

	set        *constraints.Set
	pattern    *constraints.Pattern
	model      *ranking.Model
	candidates []string
	ranked     bool

	records []Record
	state   State
}

// New starts a game over dict.
func New(dict *dictionary.Dictionary, cfg Config) (*Game, error) {
	g := &Game{
		dict:       dict,
		maxGuesses: cfg.MaxGuesses,
		rng:        cfg.Rand,
		set:        constraints.NewSet(dict.WordLength()),
	}
	if g.maxGuesses <= 0 {
		g.maxGuesses = DefaultMaxGuesses
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if cfg.Secret != "" {
		secret := strings.ToLower(cfg.Secret)
		if !dictionary.IsWord(secret, dict.WordLength()) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSecret, cfg.Secret)
		}
		if !dict.Contains(secret) {
			log.Warn().Str("secret", secret).Msg("secret word is not in the dictionary")
		}
		g.secret = secret
	} else {
		g.secret = dict.Words()[g.rng.IntN(dict.Len())]
	}
	g.pattern = g.set.Compile()
	return g, nil
}

// Guess evaluates word against the secret. A word of the wrong length or one
// missing from the dictionary is rejected without using up a turn.
func (g *Game) Guess(word string) (Record, error) {
	if g.state != AwaitingGuess {
		return Record{}, ErrGameOver
	}
	if len(word) != g.dict.WordLength() {
		return Record{}, fmt.Errorf("%w: must be %d characters", ErrWrongLength, g.dict.WordLength())
	}
	if !g.dict.Contains(word) {
		return Record{}, fmt.Errorf("%w: %q", ErrNotInDictionary, word)
	}

	rec := Record{Guess: word, Marks: constraints.Classify(word, g.secret)}
	g.records = append(g.records, rec)
	g.set.Apply(word, rec.Marks)
	g.refresh()

	switch {
	case strings.EqualFold(word, g.secret):
		g.state = Won
	case len(g.records) >= g.maxGuesses:
		g.state = Lost
	}
	log.Debug().Str("guess", word).Int("turn", len(g.records)).
		Int("candidates", len(g.candidates)).Stringer("state", g.state).Msg("guess")
	return rec, nil
}

// refresh recompiles the pattern and rebuilds the ranked candidate list.
func (g *Game) refresh() {
	g.pattern = g.set.Compile()
	g.candidates = constraints.Filter(g.dict.Words(), g.pattern)
	g.model = ranking.NewModel(g.candidates)
	g.candidates = g.model.Rank(g.candidates)
	g.ranked = true
}

func (g *Game) State() State { return g.state }

func (g *Game) Over() bool { return g.state != AwaitingGuess }

func (g *Game) Secret() string { return g.secret }

// Turn is the number of valid guesses made so far.
func (g *Game) Turn() int { return len(g.records) }

func (g *Game) MaxGuesses() int { return g.maxGuesses }

func (g *Game) WordLength() int { return g.dict.WordLength() }

func (g *Game) Records() []Record { return g.records }

// Pattern is the search pattern compiled from the current constraints.
func (g *Game) Pattern() *constraints.Pattern { return g.pattern }

// Model is the frequency model behind the current ranking, or nil before
// anything has been ranked.
func (g *Game) Model() *ranking.Model { return g.model }

// Constraints returns a copy of the accumulated constraints.
func (g *Game) Constraints() *constraints.Set { return g.set.Clone() }

// Hints exports the constraints in solver notation.
func (g *Game) Hints() ([]string, string) { return g.set.Hints() }

// Candidates is the current candidate list. It is nil until something asked
// for it or a guess was made.
func (g *Game) Candidates() []string { return g.candidates }

// Sample returns up to n candidates picked at random. When no candidate
// list exists yet it is computed from the current constraints first.
func (g *Game) Sample(n int) []string {
	if len(g.candidates) == 0 {
		g.candidates = constraints.Filter(g.dict.Words(), g.pattern)
		g.ranked = false
	}
	if len(g.candidates) <= n {
		return append([]string(nil), g.candidates...)
	}
	out := make([]string, n)
	for i, idx := range g.rng.Perm(len(g.candidates))[:n] {
		out[i] = g.candidates[idx]
	}
	return out
}

func (g *Game) ensureRanked() {
	if !g.ranked {
		g.refresh()
	}
}

// Suggestions returns the n best ranked candidates.
func (g *Game) Suggestions(n int) []string {
	g.ensureRanked()
	if len(g.candidates) < n {
		n = len(g.candidates)
	}
	return append([]string(nil), g.candidates[:n]...)
}

// BestGuess returns the top ranked candidate, or "" if none is left.
func (g *Game) BestGuess() string {
	g.ensureRanked()
	if len(g.candidates) == 0 {
		return ""
	}
	return g.candidates[0]
}

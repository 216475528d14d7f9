package solver

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/wordle_solver/internal/dictionary"
	"github.com/domino14/wordle_solver/internal/game"
)

var testWords = []string{"crane", "slate", "plane", "shine", "grape",
	"least", "teals", "there", "geese", "proud", "ghost"}

func newDict(t *testing.T, words ...string) *dictionary.Dictionary {
	t.Helper()
	if len(words) == 0 {
		words = testWords
	}
	d, err := dictionary.New(words, 5)
	require.NoError(t, err)
	return d
}

type hintpair struct {
	raw  string
	hint Hint
	ok   bool
}

var hintTests = []hintpair{
	{"", Hint{}, true},
	{"a", Hint{Fixed: 'a'}, true},
	{" B ", Hint{Fixed: 'b'}, true},
	{"!xy", Hint{Excluded: "xy"}, true},
	{"a!xy", Hint{Fixed: 'a', Excluded: "xy"}, true},
	{"a!", Hint{Fixed: 'a'}, true},
	{"ab", Hint{}, false},
	{"!x1", Hint{}, false},
	{"?", Hint{}, false},
	{"a!b!c", Hint{}, false},
}

func TestParseHint(t *testing.T) {
	for _, tc := range hintTests {
		h, err := ParseHint(tc.raw)
		if !tc.ok {
			assert.ErrorIs(t, err, ErrBadHint, tc.raw)
			continue
		}
		assert.NoError(t, err, tc.raw)
		assert.Equal(t, tc.hint, h, tc.raw)
	}
}

func TestHintString(t *testing.T) {
	is := is.New(t)
	for _, s := range []string{"", "a", "!xy", "a!xy"} {
		h, err := ParseHint(s)
		is.NoErr(err)
		is.Equal(h.String(), s)
	}
}

func TestParseHints(t *testing.T) {
	is := is.New(t)
	hints, err := ParseHints([]string{"", "l"}, 5)
	is.NoErr(err)
	is.Equal(len(hints), 5)
	is.Equal(hints[1].Fixed, byte('l'))

	_, err = ParseHints([]string{"a", "b", "c", "d", "e", "f"}, 5)
	is.True(errors.Is(err, ErrTooManyHints))

	_, err = ParseHints([]string{"", "xx"}, 5)
	is.True(errors.Is(err, ErrBadHint))
}

func TestSolve(t *testing.T) {
	is := is.New(t)
	s := New(newDict(t))
	hints, err := ParseHints([]string{"", "l", "a", "", "e"}, 5)
	is.NoErr(err)
	res, err := s.Solve(hints, "st")
	is.NoErr(err)
	is.Equal(res.Candidates, []string{"plane"})
	is.Equal(res.Pattern.String(), "^(?:(?![st])[a-z])la(?:(?![st])[a-z])e$")
	is.Equal(res.Top(5), []string{"plane"})
}

func TestSolveNoHints(t *testing.T) {
	is := is.New(t)
	d := newDict(t, "crane", "slate", "plane", "shine", "grape")
	res, err := New(d).Solve(nil, "")
	is.NoErr(err)
	is.Equal(res.Candidates, []string{"crane", "plane", "grape", "slate", "shine"})
	is.Equal(res.Top(2), []string{"crane", "plane"})
}

func TestSolveHintsBeatDuds(t *testing.T) {
	is := is.New(t)
	hints, err := ParseHints([]string{"s"}, 5)
	is.NoErr(err)
	res, err := New(newDict(t)).Solve(hints, "s")
	is.NoErr(err)
	is.Equal(res.Candidates, []string{"slate", "shine"})
}

func TestSolveRequiredLetters(t *testing.T) {
	is := is.New(t)
	hints, err := ParseHints([]string{"!s", "!l", "a", "!t", "!e"}, 5)
	is.NoErr(err)
	res, err := New(newDict(t)).Solve(hints, "")
	is.NoErr(err)
	is.Equal(res.Candidates, []string{"least", "teals"})
}

func TestSolveErrors(t *testing.T) {
	is := is.New(t)
	s := New(newDict(t))
	_, err := s.Solve(make([]Hint, 6), "")
	is.True(errors.Is(err, ErrTooManyHints))
	_, err = s.Solve(nil, "a1")
	is.True(errors.Is(err, ErrBadDuds))
}

// Feeding the constraints of a real game back into the solver must never
// lose the secret.
func TestRoundTripFromGame(t *testing.T) {
	d := newDict(t)
	s := New(d)
	openers := [][]string{
		{"crane", "ghost"},
		{"slate", "proud", "geese"},
		{"there", "least"},
	}
	for _, secret := range testWords {
		for _, guesses := range openers {
			g, err := game.New(d, game.Config{Secret: secret})
			require.NoError(t, err)
			for _, w := range guesses {
				if g.Over() {
					break
				}
				_, err := g.Guess(w)
				require.NoError(t, err)
			}
			raw, duds := g.Hints()
			hints, err := ParseHints(raw, 5)
			require.NoError(t, err)
			res, err := s.Solve(hints, duds)
			require.NoError(t, err)
			assert.Contains(t, res.Candidates, secret, "secret %s, guesses %v", secret, guesses)
			assert.Equal(t, g.Candidates(), res.Candidates)
			assert.Equal(t, g.Candidates(), s.SolveSet(g.Constraints()).Candidates)
		}
	}
}

func TestPrompt(t *testing.T) {
	is := is.New(t)
	var out bytes.Buffer
	input := "\nl\nxy1\na\n\ne\nS T\nst\n"
	hints, duds, err := Prompt(strings.NewReader(input), &out, 5)
	is.NoErr(err)
	is.Equal(duds, "st")
	is.Equal(hints[1], Hint{Fixed: 'l'})
	is.Equal(hints[2], Hint{Fixed: 'a'})

	text := out.String()
	is.True(strings.HasPrefix(text, "first known letter: "))
	is.Equal(strings.Count(text, "third known letter: "), 2)
	is.Equal(strings.Count(text, "Known duds: "), 2)
	is.True(strings.Contains(text, "fifth known letter: "))

	res, err := New(newDict(t)).Solve(hints, duds)
	is.NoErr(err)
	is.Equal(res.Candidates, []string{"plane"})
}

func TestPromptEOF(t *testing.T) {
	is := is.New(t)
	_, _, err := Prompt(strings.NewReader("a\n"), io.Discard, 5)
	is.True(errors.Is(err, io.ErrUnexpectedEOF))
}

func TestPositionName(t *testing.T) {
	is := is.New(t)
	is.Equal(positionName(0), "first")
	is.Equal(positionName(4), "fifth")
	is.Equal(positionName(11), "position 12")
}

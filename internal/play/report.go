package play

import (
	"fmt"
	"io"
	"strings"

	"github.com/domino14/wordle_solver/internal/game"
	"github.com/domino14/wordle_solver/internal/ranking"
)

const SuggestionCount = 5

// Reporter prints extra information after every turn that did not win.
type Reporter interface {
	Turn(g *game.Game)
}

// NewReporter picks the reporter for the given settings. Verbose output
// already includes every suggestion, so it wins over assistance.
func NewReporter(w io.Writer, assist, verbose bool) Reporter {
	switch {
	case verbose:
		return &verboseReporter{w: w}
	case assist:
		return &assistReporter{w: w, n: SuggestionCount}
	}
	return nopReporter{}
}

type nopReporter struct{}

func (nopReporter) Turn(*game.Game) {}

type assistReporter struct {
	w io.Writer
	n int
}

func (r *assistReporter) Turn(g *game.Game) {
	fmt.Fprintf(r.w, "Suggestions: %s\n", strings.Join(g.Suggestions(r.n), ", "))
}

type verboseReporter struct {
	w io.Writer
}

func (r *verboseReporter) Turn(g *game.Game) {
	set := g.Constraints()
	fmt.Fprintf(r.w, "search: %s\n", g.Pattern())
	fmt.Fprintf(r.w, "known strays: %q\n", set.Required())
	fmt.Fprintf(r.w, "blacked out: %q\n", set.BlackedOut())
	if m := g.Model(); m != nil {
		fmt.Fprintf(r.w, "letter count: %s\n", letterCounts(m))
		fmt.Fprintf(r.w, "letter groups: %s\n", strings.Join(m.Tiers(), " | "))
	}
	fmt.Fprintf(r.w, "Suggestions (%d): %s\n", len(g.Candidates()),
		strings.Join(g.Candidates(), ", "))
}

func letterCounts(m *ranking.Model) string {
	letters := m.Letters()
	parts := make([]string, len(letters))
	for i := 0; i < len(letters); i++ {
		parts[i] = fmt.Sprintf("%c:%d", letters[i], m.Count(letters[i]))
	}
	return strings.Join(parts, " ")
}

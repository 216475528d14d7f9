package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/matryer/is"
	"github.com/muesli/termenv"

	"github.com/domino14/wordle_solver/internal/constraints"
)

func TestPlain(t *testing.T) {
	is := is.New(t)
	marks := constraints.Classify("crane", "plane")
	is.Equal(Plain{}.Tiles("crane", marks), " C  R [A][N][E]")

	marks = constraints.Classify("slate", "least")
	is.Equal(Plain{}.Tiles("slate", marks), "(S)(L)[A](T)(E)")
}

func TestNewPicksPlainForNonTerminals(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	is.True(!IsTerminal(&buf))
	_, ok := New(&buf).(Plain)
	is.True(ok)
}

func TestStyledKeepsLetters(t *testing.T) {
	is := is.New(t)
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.ANSI)
	s := NewStyled(r)
	out := s.Tiles("geese", constraints.Classify("geese", "there"))
	for _, c := range "GESE" {
		is.True(strings.ContainsRune(out, c))
	}
	// Each tile is padded to three cells.
	is.Equal(lipgloss.Width(out), 15)
	// Exact and present tiles must not look alike.
	exact := s.Tiles("e", []constraints.Mark{constraints.Exact})
	present := s.Tiles("e", []constraints.Mark{constraints.Present})
	is.True(exact != present)
}

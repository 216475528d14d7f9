// Package render draws evaluated guesses for the terminal.
package render

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/domino14/wordle_solver/internal/constraints"
)

// Renderer turns a guess and its marks into one line of output.
type Renderer interface {
	Tiles(guess string, marks []constraints.Mark) string
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// New picks colored tiles for terminals and plain text otherwise.
func New(w io.Writer) Renderer {
	if IsTerminal(w) {
		return NewStyled(lipgloss.NewRenderer(w))
	}
	return Plain{}
}

// Styled renders each letter as a colored tile: green for exact, yellow for
// present and dim for absent.
type Styled struct {
	exact   lipgloss.Style
	present lipgloss.Style
	absent  lipgloss.Style
}

func NewStyled(r *lipgloss.Renderer) *Styled {
	tile := r.NewStyle().Bold(true).Padding(0, 1)
	return &Styled{
		exact:   tile.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("2")),
		present: tile.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3")),
		absent:  tile.Foreground(lipgloss.Color("8")),
	}
}

func (s *Styled) Tiles(guess string, marks []constraints.Mark) string {
	var sb strings.Builder
	for i, m := range marks {
		if i >= len(guess) {
			break
		}
		letter := strings.ToUpper(guess[i : i+1])
		switch m {
		case constraints.Exact:
			sb.WriteString(s.exact.Render(letter))
		case constraints.Present:
			sb.WriteString(s.present.Render(letter))
		default:
			sb.WriteString(s.absent.Render(letter))
		}
	}
	return sb.String()
}

// Plain marks exact letters with [X], present letters with (X) and leaves
// absent letters bare.
type Plain struct{}

func (Plain) Tiles(guess string, marks []constraints.Mark) string {
	var sb strings.Builder
	for i, m := range marks {
		if i >= len(guess) {
			break
		}
		letter := strings.ToUpper(guess[i : i+1])
		switch m {
		case constraints.Exact:
			sb.WriteString("[" + letter + "]")
		case constraints.Present:
			sb.WriteString("(" + letter + ")")
		default:
			sb.WriteString(" " + letter + " ")
		}
	}
	return sb.String()
}

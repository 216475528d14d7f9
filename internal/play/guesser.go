package play

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/domino14/wordle_solver/internal/game"
)

const (
	// HelpInput asks for sampled suggestions instead of making a guess.
	HelpInput  = "?"
	SampleSize = 5
)

var ErrNoCandidates = errors.New("no candidate words left")

// Guesser supplies the next word to guess.
type Guesser interface {
	Next(ctx context.Context, g *game.Game) (string, error)
}

// Ordinal returns 1st, 2nd, 3rd, 4th...
func Ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

func promptText(g *game.Game) string {
	return fmt.Sprintf("Enter %s word: ", Ordinal(g.Turn()+1))
}

// Prompter reads guesses line by line. Lines are read on a separate
// goroutine so that a blocked read does not hold up cancellation.
type Prompter struct {
	out   io.Writer
	lines chan string
	err   error
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{out: out, lines: make(chan string)}
	go func() {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			p.lines <- sc.Text()
		}
		p.err = sc.Err()
		close(p.lines)
	}()
	return p
}

// ReadLine waits for the next input line. It returns io.EOF once the input
// is exhausted.
func (p *Prompter) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			if p.err != nil {
				return "", p.err
			}
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

// Next prompts until it gets something other than a request for help.
func (p *Prompter) Next(ctx context.Context, g *game.Game) (string, error) {
	for {
		fmt.Fprint(p.out, promptText(g))
		line, err := p.ReadLine(ctx)
		if err != nil {
			return "", err
		}
		if line == HelpInput {
			fmt.Fprintf(p.out, "Suggestions: %s\n", strings.Join(g.Sample(SampleSize), ", "))
			continue
		}
		return line, nil
	}
}

// AutoGuesser plays the top ranked candidate every turn.
type AutoGuesser struct {
	out io.Writer
}

// NewAutoGuesser echoes each chosen word to out, which may be nil.
func NewAutoGuesser(out io.Writer) *AutoGuesser {
	return &AutoGuesser{out: out}
}

func (a *AutoGuesser) Next(ctx context.Context, g *game.Game) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	w := g.BestGuess()
	if w == "" {
		return "", ErrNoCandidates
	}
	if a.out != nil {
		fmt.Fprintln(a.out, promptText(g)+w)
	}
	return w, nil
}

// firstGuesser plays a fixed word once, then defers to next.
type firstGuesser struct {
	first string
	used  bool
	out   io.Writer
	next  Guesser
}

// WithFirst makes first the opening guess. If the game rejects it, later
// turns come from next as usual.
func WithFirst(first string, out io.Writer, next Guesser) Guesser {
	if first == "" {
		return next
	}
	return &firstGuesser{first: first, out: out, next: next}
}

func (f *firstGuesser) Next(ctx context.Context, g *game.Game) (string, error) {
	if !f.used {
		f.used = true
		if f.out != nil {
			fmt.Fprintln(f.out, promptText(g)+f.first)
		}
		return f.first, nil
	}
	return f.next.Next(ctx, g)
}

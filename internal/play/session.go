// Package play drives a game turn by turn, reading guesses from a player or
// choosing them automatically, and prints the results.
package play

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordle_solver/internal/game"
	"github.com/domino14/wordle_solver/internal/render"
)

type Session struct {
	Game     *game.Game
	Guesser  Guesser
	Renderer render.Renderer
	Reporter Reporter
	Out      io.Writer
}

// Run plays until the game is won or lost. It returns early with the
// guesser's error, which is ctx.Err() on cancellation or io.EOF when the
// input runs out.
func (s *Session) Run(ctx context.Context) (game.State, error) {
	g := s.Game
	renderer := s.Renderer
	if renderer == nil {
		renderer = render.Plain{}
	}
	reporter := s.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}

	for !g.Over() {
		word, err := s.Guesser.Next(ctx, g)
		if err != nil {
			return g.State(), err
		}
		rec, err := g.Guess(word)
		switch {
		case errors.Is(err, game.ErrWrongLength):
			fmt.Fprintf(s.Out, "Word must be %d characters.\n", g.WordLength())
			continue
		case errors.Is(err, game.ErrNotInDictionary):
			fmt.Fprintln(s.Out, "That's not a word!")
			continue
		case err != nil:
			return g.State(), err
		}

		fmt.Fprintln(s.Out, renderer.Tiles(rec.Guess, rec.Marks))
		if g.State() == game.Won {
			fmt.Fprintln(s.Out, "Good job!")
			break
		}
		reporter.Turn(g)
	}
	if g.State() == game.Lost {
		fmt.Fprintf(s.Out, "Sorry, the answer is: %s\n", g.Secret())
	}
	log.Debug().Stringer("state", g.State()).Int("turns", g.Turn()).Msg("session over")
	return g.State(), nil
}

// Package simulator plays every first guess against every secret in the
// dictionary and reports how often each first guess wins.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/wordle_solver/internal/dictionary"
	"github.com/domino14/wordle_solver/internal/game"
)

const Header = "guess wins losses"

var ErrUnknownGuess = errors.New("first guess is not in the dictionary")

type Options struct {
	// Workers defaults to the number of CPUs.
	Workers int
	// Guesses restricts the first guesses; empty means the whole dictionary.
	Guesses    []string
	MaxGuesses int
	// Progress receives a progress bar when set.
	Progress io.Writer
}

// Tally is the outcome of one first guess against every other secret.
type Tally struct {
	Guess  string
	Wins   int
	Losses int
}

func (t Tally) String() string {
	return fmt.Sprintf("%s %d %d", t.Guess, t.Wins, t.Losses)
}

type task struct {
	first  string
	secret string
}

type result struct {
	first string
	won   bool
}

// PlayOne plays a whole game: first is guessed, then the top ranked
// candidate every turn after that.
func PlayOne(dict *dictionary.Dictionary, first, secret string, maxGuesses int) (game.State, error) {
	g, err := game.New(dict, game.Config{Secret: secret, MaxGuesses: maxGuesses})
	if err != nil {
		return game.AwaitingGuess, err
	}
	if _, err := g.Guess(first); err != nil {
		return g.State(), err
	}
	for !g.Over() {
		w := g.BestGuess()
		if w == "" {
			return game.Lost, nil
		}
		if _, err := g.Guess(w); err != nil {
			return g.State(), err
		}
	}
	return g.State(), nil
}

// Run simulates every (first guess, secret) pair on a pool of workers and
// writes the header followed by one line per first guess to out. A line is
// written as soon as all secrets for that guess are tallied, so lines come
// in completion order. The finished tallies are returned in the same order.
//
// When ctx is cancelled, in-flight games are abandoned, no partial lines are
// written and ctx.Err() is returned.
func Run(ctx context.Context, dict *dictionary.Dictionary, opts Options, out io.Writer) ([]Tally, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	guesses := opts.Guesses
	if len(guesses) == 0 {
		guesses = dict.Words()
	}
	for _, w := range guesses {
		if !dict.Contains(w) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownGuess, w)
		}
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	perGuess := dict.Len() - 1
	total := int64(len(guesses) * perGuess)

	log.Info().Int("guesses", len(guesses)).Int("secrets", perGuess).
		Int("workers", workers).Msg("starting simulation")
	start := time.Now()

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = progressbar.NewOptions64(total,
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription("simulating"),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
	}

	fmt.Fprintln(out, Header)

	tallies := make(map[string]*Tally, len(guesses))
	var done []Tally
	emit := func(t *Tally) {
		fmt.Fprintln(out, t.String())
		done = append(done, *t)
		delete(tallies, t.Guess)
	}
	for _, w := range guesses {
		tallies[w] = &Tally{Guess: w}
	}
	if perGuess == 0 {
		for _, w := range guesses {
			emit(tallies[w])
		}
		return done, nil
	}

	tasks := make(chan task)
	results := make(chan result, workers)
	eg, ectx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer close(tasks)
		for _, first := range guesses {
			for _, secret := range dict.Words() {
				if secret == first {
					continue
				}
				select {
				case tasks <- task{first: first, secret: secret}:
				case <-ectx.Done():
					return ectx.Err()
				}
			}
		}
		return nil
	})

	for i := 0; i < workers; i++ {
		eg.Go(func() error {
			for t := range tasks {
				state, err := PlayOne(dict, t.first, t.secret, opts.MaxGuesses)
				if err != nil {
					return fmt.Errorf("%s vs %s: %w", t.first, t.secret, err)
				}
				select {
				case results <- result{first: t.first, won: state == game.Won}:
				case <-ectx.Done():
					return ectx.Err()
				}
			}
			return nil
		})
	}

	errc := make(chan error, 1)
	go func() {
		errc <- eg.Wait()
		close(results)
	}()

	for r := range results {
		t, ok := tallies[r.first]
		if !ok {
			continue
		}
		if r.won {
			t.Wins++
		} else {
			t.Losses++
		}
		if bar != nil {
			_ = bar.Add(1)
		}
		if t.Wins+t.Losses == perGuess && ctx.Err() == nil {
			emit(t)
		}
	}
	if err := <-errc; err != nil {
		if ctx.Err() != nil {
			return done, ctx.Err()
		}
		return done, err
	}
	if bar != nil {
		_ = bar.Finish()
	}
	log.Info().Dur("elapsed", time.Since(start)).Int("lines", len(done)).Msg("simulation finished")
	return done, nil
}

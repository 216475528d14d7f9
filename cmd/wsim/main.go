// Plays every dictionary word as a first guess against every other word and
// prints the wins and losses per first guess.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/namsral/flag"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordle_solver/config"
	"github.com/domino14/wordle_solver/internal/dictionary"
	"github.com/domino14/wordle_solver/internal/game"
	"github.com/domino14/wordle_solver/internal/render"
	"github.com/domino14/wordle_solver/internal/simulator"
)

const ExitDictionary = 2

type Config struct {
	config.Config

	workers    int
	guesses    string
	maxGuesses int
	progress   bool
}

func (c *Config) Load(args []string) error {
	fs := config.NewFlagSet("wsim")
	c.Config.Register(fs)

	fs.IntVar(&c.workers, "workers", 0, "number of simulation workers (0 = one per CPU)")
	fs.StringVar(&c.guesses, "guesses", "", "comma-separated first guesses to simulate (default: every word)")
	fs.IntVar(&c.maxGuesses, "max-guesses", game.DefaultMaxGuesses, "guesses allowed per game")
	fs.BoolVar(&c.progress, "progress", true, "show a progress bar on a terminal")

	return fs.Parse(args)
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := cfg.Load(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	cfg.InitLogging()

	dict, err := dictionary.Load(cfg.WordsPath, cfg.WordLength)
	if err != nil {
		log.Error().Err(err).Msg("cannot load dictionary")
		return ExitDictionary
	}

	opts := simulator.Options{
		Workers:    cfg.workers,
		MaxGuesses: cfg.maxGuesses,
	}
	if cfg.guesses != "" {
		opts.Guesses = strings.Split(cfg.guesses, ",")
	}
	if cfg.progress && render.IsTerminal(os.Stderr) {
		opts.Progress = os.Stderr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = simulator.Run(ctx, dict, opts, os.Stdout)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		log.Info().Msg("got quit signal...")
	default:
		log.Error().Err(err).Msg("")
		return 1
	}
	return 0
}

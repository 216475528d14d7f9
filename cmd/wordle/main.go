// The game of Wordle. Use "?" at the prompt for suggestions.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/namsral/flag"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordle_solver/config"
	"github.com/domino14/wordle_solver/internal/dictionary"
	"github.com/domino14/wordle_solver/internal/game"
	"github.com/domino14/wordle_solver/internal/play"
	"github.com/domino14/wordle_solver/internal/render"
)

const ExitDictionary = 2

type Config struct {
	config.Config

	assist   bool
	secret   string
	first    string
	simulate bool
}

func (c *Config) Load(args []string) error {
	fs := config.NewFlagSet("wordle")
	c.Config.Register(fs)

	fs.BoolVar(&c.assist, "assist", false, "give word hints")
	fs.BoolVar(&c.assist, "a", false, "give word hints (shorthand)")
	fs.StringVar(&c.secret, "secret", "", "force the secret word")
	fs.StringVar(&c.first, "first", "", "force the first guess")
	fs.BoolVar(&c.simulate, "simulate", false, "play automatically using the ranked suggestions")
	fs.BoolVar(&c.simulate, "s", false, "play automatically (shorthand)")

	return fs.Parse(args)
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// A missing .env is fine.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := cfg.Load(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	cfg.InitLogging()
	log.Debug().Interface("config", cfg).Msg("input")

	dict, err := dictionary.Load(cfg.WordsPath, cfg.WordLength)
	if err != nil {
		log.Error().Err(err).Msg("cannot load dictionary")
		return ExitDictionary
	}

	g, err := game.New(dict, game.Config{Secret: cfg.secret})
	if err != nil {
		log.Error().Err(err).Msg("")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var guesser play.Guesser
	if cfg.simulate {
		guesser = play.NewAutoGuesser(os.Stdout)
	} else {
		guesser = play.NewPrompter(os.Stdin, os.Stdout)
	}
	s := &play.Session{
		Game:     g,
		Guesser:  play.WithFirst(cfg.first, os.Stdout, guesser),
		Renderer: render.New(os.Stdout),
		Reporter: play.NewReporter(os.Stdout, cfg.assist, cfg.Verbose),
		Out:      os.Stdout,
	}
	_, err = s.Run(ctx)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled), errors.Is(err, io.EOF):
		// Leave the prompt line tidy.
		fmt.Println()
	default:
		log.Error().Err(err).Msg("")
		return 1
	}
	return 0
}

// A tool to help solve Wordle.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/namsral/flag"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordle_solver/config"
	"github.com/domino14/wordle_solver/internal/dictionary"
	"github.com/domino14/wordle_solver/internal/solver"
)

const (
	ExitDictionary  = 2
	SuggestionCount = 5
)

// hintFlags are the per-position hint flags, first letter to fifth.
var hintFlags = []string{"a", "b", "c", "d", "e"}

type Config struct {
	config.Config

	hints       [5]string
	hintList    string
	interactive bool
	duds        string
}

func (c *Config) Load(args []string) error {
	fs := config.NewFlagSet("wsolver")
	c.Config.Register(fs)

	for i, name := range hintFlags {
		fs.StringVar(&c.hints[i], name, "",
			fmt.Sprintf("letter %d hint: a letter, or ! followed by letters not in that spot", i+1))
	}
	fs.StringVar(&c.hintList, "hints", "", "comma-separated hints for every position; overrides -a to -e")
	fs.BoolVar(&c.interactive, "interactive", false, "prompt for hints")
	fs.BoolVar(&c.interactive, "i", false, "prompt for hints (shorthand)")
	fs.StringVar(&c.duds, "dud", "", "characters not in word")
	fs.StringVar(&c.duds, "z", "", "characters not in word (shorthand)")

	return fs.Parse(args)
}

// rawHints returns the hint strings given on the command line.
func (c *Config) rawHints() []string {
	if c.hintList != "" {
		return strings.Split(c.hintList, ",")
	}
	n := min(len(c.hints), c.WordLength)
	return c.hints[:n]
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

	var hints []solver.Hint
	duds := cfg.duds
	if cfg.interactive {
		hints, duds, err = solver.Prompt(os.Stdin, os.Stdout, cfg.WordLength)
		if err != nil {
			// Interrupted or ran out of input; nothing to print.
			fmt.Println()
			return 0
		}
	} else {
		hints, err = solver.ParseHints(cfg.rawHints(), cfg.WordLength)
		if err != nil {
			log.Error().Err(err).Msg("")
			return 1
		}
	}
	log.Debug().Interface("hints", hints).Str("duds", duds).Msg("input")

	res, err := solver.New(dict).Solve(hints, duds)
	if err != nil {
		log.Error().Err(err).Msg("")
		return 1
	}

	if cfg.Verbose {
		fmt.Printf("search: %s\n", res.Pattern)
		fmt.Printf("letter groups: %s\n", strings.Join(res.Model.Tiers(), " | "))
		fmt.Printf("Suggestions: %s\n", strings.Join(res.Candidates, ", "))
	} else {
		fmt.Printf("Suggestions: %s\n", strings.Join(res.Top(SuggestionCount), ", "))
	}
	return 0
}

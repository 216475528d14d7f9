package config

import (
	"os"
	"strings"

	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// EnvPrefix is prepended to flag names when they are read from the
	// environment, e.g. WORDLE_WORDS or WORDLE_LOG_LEVEL.
	EnvPrefix = "WORDLE"

	DefaultWordsPath  = "/usr/share/dict/words"
	DefaultWordLength = 5
	DefaultLogLevel   = "warn"
)

// Config holds the settings every tool shares.
type Config struct {
	WordsPath  string
	WordLength int
	Verbose    bool
	LogLevel   string
}

// NewFlagSet returns a flag set that also reads WORDLE_* env vars.
func NewFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSetWithEnvPrefix(name, EnvPrefix, flag.ContinueOnError)
}

// Register adds the shared flags to fs.
func (c *Config) Register(fs *flag.FlagSet) {
	fs.StringVar(&c.WordsPath, "words", DefaultWordsPath, "path to dictionary")
	fs.StringVar(&c.WordsPath, "w", DefaultWordsPath, "path to dictionary (shorthand)")
	fs.IntVar(&c.WordLength, "length", DefaultWordLength, "word length")
	fs.BoolVar(&c.Verbose, "verbose", false, "print full diagnostic state")
	fs.BoolVar(&c.Verbose, "v", false, "print full diagnostic state (shorthand)")
	fs.StringVar(&c.LogLevel, "log-level", DefaultLogLevel, "log level")
}

// Load loads the configs from the given arguments
func (c *Config) Load(args []string) error {
	fs := NewFlagSet("wordle")
	c.Register(fs)
	return fs.Parse(args)
}

// InitLogging points the global logger at stderr and applies the configured
// level. An unknown level falls back to warn.
func (c *Config) InitLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || c.LogLevel == "" {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

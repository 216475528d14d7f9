package config

import (
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestLoadDefaults(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load(nil))
	is.Equal(c.WordsPath, DefaultWordsPath)
	is.Equal(c.WordLength, DefaultWordLength)
	is.Equal(c.LogLevel, DefaultLogLevel)
	is.True(!c.Verbose)
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load([]string{"-w", "/tmp/words.txt", "-length", "6", "-v"}))
	is.Equal(c.WordsPath, "/tmp/words.txt")
	is.Equal(c.WordLength, 6)
	is.True(c.Verbose)
}

func TestLoadFromEnv(t *testing.T) {
	is := is.New(t)
	t.Setenv("WORDLE_LOG_LEVEL", "debug")
	c := &Config{}
	is.NoErr(c.Load(nil))
	is.Equal(c.LogLevel, "debug")
}

func TestLoadBadFlag(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.True(c.Load([]string{"-nope"}) != nil)
}

func TestInitLogging(t *testing.T) {
	is := is.New(t)
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	c := &Config{LogLevel: "ERROR"}
	c.InitLogging()
	is.Equal(zerolog.GlobalLevel(), zerolog.ErrorLevel)

	c.LogLevel = "bogus"
	c.InitLogging()
	is.Equal(zerolog.GlobalLevel(), zerolog.WarnLevel)
}

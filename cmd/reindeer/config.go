package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/search"
)

// Environment keys read by loadConfig.
const (
	envMoveCost = "REINDEER_MOVE_COST"
	envTurnCost = "REINDEER_TURN_COST"
	envHeading  = "REINDEER_HEADING"
	envLogLevel = "REINDEER_LOG_LEVEL"
)

// config holds the CLI settings. Flags override the environment, which
// overrides the defaults.
type config struct {
	MoveCost int          // cost of one move
	TurnCost int          // extra cost of a heading change
	Heading  maze.Heading // heading on the start cell
	LogLevel logrus.Level // logger verbosity
}

// loadConfig reads an optional .env file from the working directory and then
// the process environment.
func loadConfig(envFile string) (config, error) {
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := config{
		MoveCost: search.DefaultMoveCost,
		TurnCost: search.DefaultTurnCost,
		Heading:  search.DefaultInitialHeading,
		LogLevel: logrus.InfoLevel,
	}
	var err error
	if cfg.MoveCost, err = getEnvAsInt(envMoveCost, cfg.MoveCost); err != nil {
		return config{}, err
	}
	if cfg.TurnCost, err = getEnvAsInt(envTurnCost, cfg.TurnCost); err != nil {
		return config{}, err
	}
	if v, ok := os.LookupEnv(envHeading); ok {
		h, ok := maze.ParseHeading(v)
		if !ok {
			return config{}, fmt.Errorf("%s: unknown heading %q", envHeading, v)
		}
		cfg.Heading = h
	}
	if v, ok := os.LookupEnv(envLogLevel); ok {
		lvl, err := logrus.ParseLevel(v)
		if err != nil {
			return config{}, fmt.Errorf("%s: %w", envLogLevel, err)
		}
		cfg.LogLevel = lvl
	}

	return cfg, nil
}

// getEnvAsInt returns the integer value of key, or def when key is unset.
func getEnvAsInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}

	return n, nil
}

// searchOptions converts the configuration into search options.
func (c config) searchOptions() []search.Option {
	return []search.Option{
		search.WithMoveCost(c.MoveCost),
		search.WithTurnCost(c.TurnCost),
		search.WithInitialHeading(c.Heading),
	}
}

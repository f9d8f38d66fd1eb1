package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nimbuschess/engine/difficulty"
)

type Config struct {
	Concurrency int
	DifficultyA string
	StyleA      string
	DifficultyB string
	StyleB      string
}

var config Config

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	flag.IntVar(&config.Concurrency, "concurrency", 4, "number of games to run concurrently")
	flag.StringVar(&config.DifficultyA, "difficultyA", "Expert", "difficulty for side A")
	flag.StringVar(&config.StyleA, "styleA", "Balanced", "style for side A")
	flag.StringVar(&config.DifficultyB, "difficultyB", "Hard", "difficulty for side B")
	flag.StringVar(&config.StyleB, "styleB", "Balanced", "style for side B")
	flag.Parse()

	var configA = playerConfig{Difficulty: difficulty.Level(config.DifficultyA), Style: difficulty.Style(config.StyleA)}
	var configB = playerConfig{Difficulty: difficulty.Level(config.DifficultyB), Style: difficulty.Style(config.StyleB)}

	if err := run(context.Background(), config.Concurrency, configA, configB); err != nil {
		log.Fatal().Err(err).Msg("arena run failed")
	}
}

package main

import (
	"context"
	"runtime"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// run pits configA against configB over the opening pool,
// gameConcurrency games at a time: one goroutine feeds openings, one
// drains results, and a pool of workers plays games concurrently,
// stopping as soon as any of them errors.
func run(
	ctx context.Context,
	gameConcurrency int,
	configA, configB playerConfig,
) error {
	log.Info().Msg("arena started")
	defer log.Info().Msg("arena finished")

	log.Info().
		Int("numCPU", runtime.NumCPU()).
		Int("gameConcurrency", gameConcurrency).
		Interface("configA", configA).
		Interface("configB", configB).
		Msg("arena configuration")

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)

	g.Go(func() error {
		defer close(gameInfos)
		return loadOpenings(ctx, gameInfos)
	})

	g.Go(func() error {
		return showResults(ctx, gameResults)
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < gameConcurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return playGames(ctx, configA, configB, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	return g.Wait()
}

func playGames(
	ctx context.Context,
	configA, configB playerConfig,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	for info := range gameInfos {
		var res, err = playGame(ctx, configA, configB, info)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}

package main

import (
	"context"
)

// loadOpenings feeds one gameInfo per opening per side, so each
// position is played once with A as White and once with B as White.
func loadOpenings(
	ctx context.Context,
	gameInfos chan<- gameInfo,
) error {
	for i, opening := range openings {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: opening, engineAIsWhite: true, gameNumber: 1 + 2*i}:
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: opening, engineAIsWhite: false, gameNumber: 1 + 2*i + 1}:
		}
	}
	return nil
}

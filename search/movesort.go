// Package search implements the engine's iterative-deepening
// alpha-beta driver: move ordering, killer/history tables,
// quiescence, the transposition table, and Zobrist hashing.
//
// The driver is strictly single-threaded: one Searcher owns its
// transposition, killer, and history tables, and a single Search call
// runs to completion or to a time budget before returning.
package search

import (
	"sort"

	"github.com/nimbuschess/engine/chess"
)

var victimRank = map[chess.PieceKind]int{
	chess.Pawn: 1, chess.Knight: 2, chess.Bishop: 3,
	chess.Rook: 4, chess.Queen: 5, chess.King: 6,
}

var attackerRank = map[chess.PieceKind]int{
	chess.King: 1, chess.Queen: 2, chess.Rook: 3,
	chess.Bishop: 4, chess.Knight: 5, chess.Pawn: 6,
}

func mvvLva(victim, attacker chess.PieceKind) int {
	return 10*victimRank[victim] + attackerRank[attacker]
}

// scoredMove pairs a move with its ordering key for one ply.
type scoredMove struct {
	move  chess.Move
	score int
}

// orderMoves scores and sorts moves (descending) for a single ply,
// given the hash move (if any) and this ply's killer/history state.
func (s *Searcher) orderMoves(moves []chess.Move, hashMove chess.Move, color chess.Color, ply int) []scoredMove {
	var scored = make([]scoredMove, len(moves))
	var killer0 = s.killers.slot(ply, 0)
	var killer1 = s.killers.slot(ply, 1)

	for i, mv := range moves {
		scored[i] = scoredMove{move: mv, score: scoreMove(s, mv, hashMove, killer0, killer1, color)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	return scored
}

func scoreMove(s *Searcher, mv, hashMove, killer0, killer1 chess.Move, color chess.Color) int {
	if hashMove != chess.MoveEmpty && mv.From == hashMove.From && mv.To == hashMove.To {
		return 1000000
	}
	if mv.IsPromotion() {
		return 80000 + chess.PieceValue[mv.Promotion]
	}
	if mv.IsCapture() {
		var victimValue = chess.PieceValue[mv.Captured.Kind]
		var attackerValue = chess.PieceValue[mv.Piece.Kind]
		var mvvlva = mvvLva(mv.Captured.Kind, mv.Piece.Kind)
		switch {
		case victimValue > attackerValue:
			return 100000 + mvvlva
		case victimValue == attackerValue:
			return 50000 + mvvlva
		default:
			return 30000 + mvvlva
		}
	}
	if mv == killer0 {
		return 40000
	}
	if mv == killer1 {
		return 39000
	}
	return s.history.score(color, mv)
}

// orderCapturesByMVVLVA sorts a quiescence-search capture list
// descending by victim/attacker value.
func orderCapturesByMVVLVA(moves []chess.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return mvvLva(moves[i].Captured.Kind, moves[i].Piece.Kind) >
			mvvLva(moves[j].Captured.Kind, moves[j].Piece.Kind)
	})
}

package search

import (
	"fmt"
	"math"
	"time"

	"github.com/nimbuschess/engine/chess"
	"github.com/nimbuschess/engine/eval"
)

// Search runs iterative deepening from pos, returning the best move
// found within opts.MaxDepth/opts.MaxTimeMs. It never fails: on time
// exhaustion it degrades to the best move from the most recently
// completed depth, and if even depth 1 never completed it falls back to
// the first legal move with a warning appended to the explanation.
func (s *Searcher) Search(pos chess.Position, opts SearchOptions) SearchResult {
	s.startTime = time.Now()
	s.stop = false
	s.nodes = 0
	s.killers.clear()

	if opts.MaxTimeMs > 0 {
		s.budget = time.Duration(opts.MaxTimeMs) * time.Millisecond
	} else {
		s.budget = 0
	}

	var maxDepth = opts.MaxDepth
	if maxDepth < 1 {
		maxDepth = 1
	}

	var bestMove = chess.MoveEmpty
	var bestPV []chess.Move
	var completedDepth = 0
	var rawScore = 0
	var degraded = false

	for d := 1; d <= maxDepth; d++ {
		var pv []chess.Move
		var score = s.alphaBeta(pos, d, -valueInfinite, valueInfinite, 0, &pv)

		if s.stop && d > 1 {
			break
		}

		if len(pv) > 0 {
			bestMove = pv[0]
			bestPV = pv
			completedDepth = d
			rawScore = score
		}

		if abs(score) >= chess.MateScore-100 {
			break
		}
	}

	if bestMove == chess.MoveEmpty {
		var legalMoves = chess.GenerateLegal(pos)
		if len(legalMoves) > 0 {
			bestMove = legalMoves[0]
			bestPV = []chess.Move{bestMove}
		}
		rawScore = relativeEval(pos)
		completedDepth = 0
		degraded = true
	}

	var whiteEval = signedToWhite(rawScore, pos.SideToMove)
	var breakdown = eval.EvaluationBreakdown(pos)

	var result = SearchResult{
		BestMove:           bestMove,
		Evaluation:         whiteEval,
		Breakdown:          breakdown,
		PrincipalVariation: bestPV,
		Depth:              completedDepth,
		NodesSearched:      s.nodes,
		ElapsedMs:          time.Since(s.startTime).Milliseconds(),
	}

	result.Explanation = buildExplanation(pos, bestMove, whiteEval, breakdown)
	if degraded {
		result.Explanation = append([]string{"search degraded to the first legal move before depth 1 completed"}, result.Explanation...)
	}

	return result
}

// signedToWhite converts a negamax score (relative to the side to move)
// into a centipawn evaluation from White's point of view.
func signedToWhite(score int, sideToMove chess.Color) int {
	if sideToMove == chess.Black {
		return -score
	}
	return score
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// buildExplanation assembles human-readable lines keyed off the
// evaluation and its breakdown components.
func buildExplanation(pos chess.Position, mv chess.Move, whiteEval int, b eval.Breakdown) []string {
	var lines []string

	if abs(whiteEval) >= chess.MateScore-100 {
		var side = "White"
		if whiteEval < 0 {
			side = "Black"
		}
		var n = int(math.Ceil(float64(chess.MateScore-abs(whiteEval)) / 2))
		lines = append(lines, fmt.Sprintf("Checkmate for %s in %d moves", side, n))
	} else {
		switch {
		case whiteEval > 200:
			lines = append(lines, "White has a winning advantage")
		case whiteEval > 50:
			lines = append(lines, "White has a slight advantage")
		case whiteEval < -200:
			lines = append(lines, "Black has a winning advantage")
		case whiteEval < -50:
			lines = append(lines, "Black has a slight advantage")
		default:
			lines = append(lines, "the position is roughly equal")
		}
	}

	if abs(b.Material) > 100 {
		var side = "White"
		var value = b.Material
		if value < 0 {
			side = "Black"
			value = -value
		}
		lines = append(lines, fmt.Sprintf("%s is up %.1f pawns worth of material", side, float64(value)/100))
	}

	if abs(b.KingSafety) > 30 {
		lines = append(lines, fmt.Sprintf("%s has better king safety", advantageSide(b.KingSafety)))
	}
	if abs(b.Center) > 20 {
		lines = append(lines, fmt.Sprintf("%s controls the center", advantageSide(b.Center)))
	}
	if abs(b.Mobility) > 30 {
		lines = append(lines, fmt.Sprintf("%s has better piece mobility", advantageSide(b.Mobility)))
	}

	if mv != chess.MoveEmpty {
		switch {
		case mv.IsCapture():
			lines = append(lines, fmt.Sprintf("Captures %s", pieceName(mv.Captured.Kind)))
		case mv.IsPromotion():
			lines = append(lines, fmt.Sprintf("Promotes pawn to %s", pieceName(mv.Promotion)))
		case mv.IsCastle():
			lines = append(lines, "Castles for king safety")
		}
	}

	return lines
}

func advantageSide(v int) string {
	if v > 0 {
		return "White"
	}
	return "Black"
}

func pieceName(kind chess.PieceKind) string {
	switch kind {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	default:
		return "piece"
	}
}

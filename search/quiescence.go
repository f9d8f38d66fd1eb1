package search

import (
	"github.com/nimbuschess/engine/chess"
	"github.com/nimbuschess/engine/eval"
)

// quiesce extends the search past the nominal horizon along capture
// lines only, until no capture improves on a quiet stand-pat score.
func (s *Searcher) quiesce(pos chess.Position, alpha, beta int) int {
	s.incNode()
	if s.stop {
		return 0
	}

	var standPat = relativeEval(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	var captures []chess.Move
	for _, mv := range chess.GenerateLegal(pos) {
		if mv.IsCapture() {
			captures = append(captures, mv)
		}
	}
	orderCapturesByMVVLVA(captures)

	for _, mv := range captures {
		var child = chess.MakeMove(pos, mv)
		var score = -s.quiesce(child, -beta, -alpha)
		if s.stop {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// relativeEval evaluates pos from the side-to-move's point of view,
// the sign negamax search works in, by flipping eval.Evaluate's
// White-POV result for Black.
func relativeEval(pos chess.Position) int {
	var v = eval.Evaluate(pos)
	if pos.SideToMove == chess.Black {
		return -v
	}
	return v
}

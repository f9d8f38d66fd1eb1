package search

import "github.com/nimbuschess/engine/chess"

// alphaBeta is the negamax alpha-beta driver: it probes and stores the
// transposition table, drops to quiescence at the horizon, and orders
// moves by hash move, MVV-LVA, killers, and history before recursing.
// pvOut receives the principal variation from this node down, in
// move order (empty if alpha was never raised).
func (s *Searcher) alphaBeta(pos chess.Position, depth, alpha, beta, ply int, pvOut *[]chess.Move) int {
	if s.stop {
		return 0
	}

	var key = Hash(pos)
	var ttEntry, ttHit = s.tt.Probe(key)
	if ttHit && ttEntry.Depth >= depth {
		switch ttEntry.NodeType {
		case Exact:
			return ttEntry.Evaluation
		case LowerBound:
			if ttEntry.Evaluation >= beta {
				return beta
			}
		case UpperBound:
			if ttEntry.Evaluation <= alpha {
				return alpha
			}
		}
	}

	if depth <= 0 {
		return s.quiesce(pos, alpha, beta)
	}

	s.incNode()

	var legalMoves = chess.GenerateLegal(pos)
	if len(legalMoves) == 0 {
		if chess.IsInCheck(pos.Board, pos.SideToMove) {
			return -chess.MateScore + ply
		}
		return chess.DrawScore
	}

	if pos.HalfmoveClock >= 100 {
		return chess.DrawScore
	}

	var hashMove = chess.MoveEmpty
	if ttHit {
		hashMove = ttEntry.BestMove
	}

	var ordered = s.orderMoves(legalMoves, hashMove, pos.SideToMove, ply)

	var bestScore = -valueInfinite
	var bestMove = chess.MoveEmpty
	var nodeType = UpperBound

	for _, sm := range ordered {
		var mv = sm.move
		var child = chess.MakeMove(pos, mv)

		var childPV []chess.Move
		var score = -s.alphaBeta(child, depth-1, -beta, -alpha, ply+1, &childPV)

		if s.stop {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = mv
			var localPV = make([]chess.Move, 0, len(childPV)+1)
			localPV = append(localPV, mv)
			localPV = append(localPV, childPV...)

			if score > alpha {
				alpha = score
				nodeType = Exact
				*pvOut = localPV
			}

			if alpha >= beta {
				nodeType = LowerBound
				if mv.IsQuiet() {
					s.killers.add(ply, mv)
					s.history.update(pos.SideToMove, mv, depth)
				}
				break
			}
		}
	}

	s.tt.Store(key, depth, bestScore, nodeType, bestMove)

	return bestScore
}

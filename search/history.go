package search

import "github.com/nimbuschess/engine/chess"

// historyMax is the halving threshold: once any cell exceeds it, every
// cell is halved, keeping the table's magnitude bounded across a long
// search without ever clearing it outright.
const historyMax = 10000

// historyTable is a (color, piece kind, destination square) -> score
// map used to order quiet moves that have previously caused beta
// cutoffs.
type historyTable struct {
	scores [2][7][64]uint32
}

func newHistoryTable() *historyTable {
	return &historyTable{}
}

func (h *historyTable) clear() {
	*h = historyTable{}
}

// update adds depth^2 to the (color, piece, to) cell for a quiet move
// that produced a beta cutoff, halving the whole table if any cell
// would exceed historyMax.
func (h *historyTable) update(color chess.Color, mv chess.Move, depth int) {
	var bonus = uint32(depth * depth)
	var c, p, to = int(color), int(mv.Piece.Kind), int(mv.To)
	if h.scores[c][p][to]+bonus > historyMax {
		h.halve()
	}
	h.scores[c][p][to] += bonus
}

func (h *historyTable) halve() {
	for c := range h.scores {
		for p := range h.scores[c] {
			for to := range h.scores[c][p] {
				h.scores[c][p][to] /= 2
			}
		}
	}
}

// score returns the clamped [0, 38999] ordering contribution for a
// quiet move that is neither the hash move, a promotion, nor a killer.
func (h *historyTable) score(color chess.Color, mv chess.Move) int {
	var raw = int(h.scores[int(color)][int(mv.Piece.Kind)][int(mv.To)])
	if raw > 38999 {
		return 38999
	}
	return raw
}

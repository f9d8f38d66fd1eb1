// Package eval implements static position evaluation: material,
// piece-square tables, mobility, king safety, center control, pawn
// structure, and piece activity, combined into a single White-POV
// centipawn score. King piece-square lookups use either a midgame or
// an endgame table, chosen by IsEndgame from remaining material, and the
// piece-square constants are the published Tomasz Michniewski
// "simplified evaluation function" values.
package eval

import "github.com/nimbuschess/engine/chess"

const (
	MateScore = chess.MateScore
	DrawScore = chess.DrawScore
)

// Breakdown exposes each scoring component separately, in centipawns
// from White's point of view, for explanation text and for the
// symmetry property test.
type Breakdown struct {
	Material      int
	Positioning   int
	Mobility      int
	KingSafety    int
	Center        int
	PawnStructure int
	PieceActivity int
}

// Total sums the components into the final evaluation.
func (b Breakdown) Total() int {
	return b.Material + b.Positioning + b.Mobility + b.KingSafety +
		b.Center + b.PawnStructure + b.PieceActivity
}

// IsEndgame reports whether king PST lookups should use the endgame
// table: true when there are no queens on the board, or when there
// are at most two queens and at most two non-pawn non-king minor or
// major pieces total.
func IsEndgame(board chess.Board) bool {
	var queens, otherPieces int
	for sq := chess.SquareIndex(0); sq < 64; sq++ {
		var p = board[sq]
		switch p.Kind {
		case chess.Queen:
			queens++
		case chess.Knight, chess.Bishop, chess.Rook:
			otherPieces++
		}
	}
	if queens == 0 {
		return true
	}
	return queens <= 2 && otherPieces <= 2
}

// Evaluate returns the static centipawn score of pos from White's POV.
// If the side to move has no legal moves, it returns ±MateScore
// (signed against the side to move) when in check, else DrawScore.
func Evaluate(pos chess.Position) int {
	if len(chess.GenerateLegal(pos)) == 0 {
		if chess.IsInCheck(pos.Board, pos.SideToMove) {
			if pos.SideToMove == chess.White {
				return -MateScore
			}
			return MateScore
		}
		return DrawScore
	}
	return EvaluationBreakdown(pos).Total()
}

// EvaluationBreakdown computes every scoring component for pos. It
// assumes the side to move has at least one legal move; callers that
// need the mate/draw special cases should go through Evaluate.
func EvaluationBreakdown(pos chess.Position) Breakdown {
	var endgame = IsEndgame(pos.Board)
	return Breakdown{
		Material:      materialScore(pos.Board),
		Positioning:   positioningScore(pos.Board, endgame),
		Mobility:      mobilityScore(pos),
		KingSafety:    kingSafetyScore(pos.Board),
		Center:        centerScore(pos.Board),
		PawnStructure: pawnStructureScore(pos.Board),
		PieceActivity: pieceActivityScore(pos.Board),
	}
}

func signOf(color chess.Color) int {
	if color == chess.White {
		return 1
	}
	return -1
}

func materialScore(board chess.Board) int {
	var total int
	for sq := chess.SquareIndex(0); sq < 64; sq++ {
		var p = board[sq]
		if p.IsEmpty() || p.Kind == chess.King {
			continue
		}
		total += signOf(p.Color) * chess.PieceValue[p.Kind]
	}
	return total
}

func positioningScore(board chess.Board, endgame bool) int {
	var total int
	for sq := chess.SquareIndex(0); sq < 64; sq++ {
		var p = board[sq]
		if p.IsEmpty() {
			continue
		}
		var table = pstFor(p.Kind, endgame)
		total += signOf(p.Color) * pstLookup(table, sq, p.Color)
	}
	return total
}

// mobilityScore counts legal moves for each side by hypothetically
// handing the other side the move. It never recurses into Evaluate,
// only into move generation, which breaks the circular dependency
// between evaluation and move generation (mobility needs legal moves,
// legal moves need check detection, check detection never needs
// evaluation).
func mobilityScore(pos chess.Position) int {
	var white, black int
	if pos.SideToMove == chess.White {
		white = len(chess.GenerateLegal(pos))
		black = len(chess.GenerateLegal(flipSideToMove(pos)))
	} else {
		black = len(chess.GenerateLegal(pos))
		white = len(chess.GenerateLegal(flipSideToMove(pos)))
	}
	return (white - black) * 5
}

func flipSideToMove(pos chess.Position) chess.Position {
	var flipped = pos
	flipped.SideToMove = pos.SideToMove.Opposite()
	flipped.EnPassant = chess.NoSquare
	return flipped
}

func kingSafetyScore(board chess.Board) int {
	var total int
	for _, color := range [2]chess.Color{chess.White, chess.Black} {
		total += signOf(color) * kingSafetyForColor(board, color)
	}
	return total
}

func kingSafetyForColor(board chess.Board, color chess.Color) int {
	var kingSq = findKingSquare(board, color)
	if kingSq == chess.NoSquare {
		return 0
	}
	var homeRank = 0
	if color == chess.Black {
		homeRank = 7
	}
	var score int
	if chess.Rank(kingSq) == homeRank {
		var file = chess.File(kingSq)
		if file <= 1 || file >= 6 {
			score += 30
		} else if file == 3 || file == 4 {
			score -= 20
		}
	}

	var enemy = color.Opposite()
	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			var file = chess.File(kingSq) + df
			var rank = chess.Rank(kingSq) + dr
			if !chess.IsOnBoard(file, rank) {
				continue
			}
			var sq = chess.MakeSquare(file, rank)
			if chess.IsSquareAttacked(board, sq, enemy) {
				score -= 10
			}
		}
	}
	return score
}

func findKingSquare(board chess.Board, color chess.Color) chess.SquareIndex {
	for sq := chess.SquareIndex(0); sq < 64; sq++ {
		var p = board[sq]
		if p.Kind == chess.King && p.Color == color {
			return sq
		}
	}
	return chess.NoSquare
}

var centerSquares = [4]chess.SquareIndex{
	chess.MakeSquare(3, 3), // d4
	chess.MakeSquare(4, 3), // e4
	chess.MakeSquare(3, 4), // d5
	chess.MakeSquare(4, 4), // e5
}

var extendedCenterSquares = buildExtendedCenter()

func buildExtendedCenter() []chess.SquareIndex {
	var result []chess.SquareIndex
	for file := 2; file <= 5; file++ {
		for rank := 2; rank <= 5; rank++ {
			var isInner = (file == 3 || file == 4) && (rank == 3 || rank == 4)
			if isInner {
				continue
			}
			result = append(result, chess.MakeSquare(file, rank))
		}
	}
	return result
}

func centerScore(board chess.Board) int {
	var total int
	for _, sq := range centerSquares {
		var p = board[sq]
		if !p.IsEmpty() && p.Kind != chess.King {
			total += signOf(p.Color) * 15
		}
		for _, color := range [2]chess.Color{chess.White, chess.Black} {
			if chess.IsSquareAttacked(board, sq, color) {
				total += signOf(color) * 5
			}
		}
	}
	for _, sq := range extendedCenterSquares {
		var p = board[sq]
		if !p.IsEmpty() && p.Kind != chess.Pawn && p.Kind != chess.King {
			total += signOf(p.Color) * 5
		}
	}
	return total
}

func pawnStructureScore(board chess.Board) int {
	var total int
	for _, color := range [2]chess.Color{chess.White, chess.Black} {
		var filesCount [8]int
		for sq := chess.SquareIndex(0); sq < 64; sq++ {
			var p = board[sq]
			if p.Kind == chess.Pawn && p.Color == color {
				filesCount[chess.File(sq)]++
			}
		}
		var colorScore int
		for file := 0; file < 8; file++ {
			if filesCount[file] > 1 {
				colorScore -= 20 * (filesCount[file] - 1)
			}
			if filesCount[file] > 0 {
				var hasNeighbor = (file > 0 && filesCount[file-1] > 0) ||
					(file < 7 && filesCount[file+1] > 0)
				if !hasNeighbor {
					colorScore -= 15 * filesCount[file]
				}
			}
		}
		total += signOf(color) * colorScore
	}
	return total
}

func pieceActivityScore(board chess.Board) int {
	var total int
	var pawnFiles [8]bool
	for sq := chess.SquareIndex(0); sq < 64; sq++ {
		if board[sq].Kind == chess.Pawn {
			pawnFiles[chess.File(sq)] = true
		}
	}
	for _, color := range [2]chess.Color{chess.White, chess.Black} {
		var bishops, rooksOnOpenFiles int
		for sq := chess.SquareIndex(0); sq < 64; sq++ {
			var p = board[sq]
			if p.Color != color || p.IsEmpty() {
				continue
			}
			if p.Kind == chess.Bishop {
				bishops++
			}
			if p.Kind == chess.Rook && !pawnFiles[chess.File(sq)] {
				rooksOnOpenFiles++
			}
		}
		var colorScore int
		if bishops >= 2 {
			colorScore += 30
		}
		colorScore += 20 * rooksOnOpenFiles
		total += signOf(color) * colorScore
	}
	return total
}

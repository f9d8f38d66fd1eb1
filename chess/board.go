package chess

import "fmt"

// File returns sq's file, a=0..h=7.
func File(sq SquareIndex) int {
	return int(sq) & 7
}

// Rank returns sq's rank, rank1=0..rank8=7.
func Rank(sq SquareIndex) int {
	return int(sq) >> 3
}

// MakeSquare builds a SquareIndex from file/rank, both in [0,7].
func MakeSquare(file, rank int) SquareIndex {
	return SquareIndex(rank*8 + file)
}

// IsOnBoard reports whether file/rank both lie in [0,7].
func IsOnBoard(file, rank int) bool {
	return file >= 0 && file < 8 && rank >= 0 && rank < 8
}

// Direction offsets, as signed deltas between SquareIndexes under the
// rank-major encoding.
const (
	DirN  = 8
	DirS  = -8
	DirE  = 1
	DirW  = -1
	DirNE = 9
	DirNW = 7
	DirSE = -7
	DirSW = -9
)

var orthogonalDirs = [4]int{DirN, DirS, DirE, DirW}
var diagonalDirs = [4]int{DirNE, DirNW, DirSE, DirSW}

// KnightOffsets are the eight knight move deltas; each must still be
// validated against file/rank deltas of {1,2} or {2,1} to reject
// wrap-around at the board edge.
var KnightOffsets = [8]int{17, 15, -15, -17, 10, -6, 6, -10}

// KingOffsets are the eight orthogonal+diagonal king deltas.
var KingOffsets = [8]int{DirN, DirS, DirE, DirW, DirNE, DirNW, DirSE, DirSW}

// knightDelta and kingDelta validate that applying an offset to sq
// stays on the board and moves by the expected file/rank delta,
// rejecting the horizontal wrap that a raw index add/subtract cannot
// detect on its own.
func knightDelta(sq SquareIndex, offset int) (SquareIndex, bool) {
	var to = int(sq) + offset
	if to < 0 || to > 63 {
		return 0, false
	}
	var df = abs(File(SquareIndex(to)) - File(sq))
	var dr = abs(Rank(SquareIndex(to)) - Rank(sq))
	if (df == 1 && dr == 2) || (df == 2 && dr == 1) {
		return SquareIndex(to), true
	}
	return 0, false
}

func kingDelta(sq SquareIndex, offset int) (SquareIndex, bool) {
	var to = int(sq) + offset
	if to < 0 || to > 63 {
		return 0, false
	}
	var df = abs(File(SquareIndex(to)) - File(sq))
	var dr = abs(Rank(SquareIndex(to)) - Rank(sq))
	if df <= 1 && dr <= 1 {
		return SquareIndex(to), true
	}
	return 0, false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// SquareName renders a1..h8-style algebraic notation for sq.
func SquareName(sq SquareIndex) string {
	return fmt.Sprintf("%c%c", 'a'+byte(File(sq)), '1'+byte(Rank(sq)))
}

// ParseSquareName parses algebraic notation ("e4") into a SquareIndex.
func ParseSquareName(s string) (SquareIndex, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("chess: malformed square %q", s)
	}
	var file = int(s[0] - 'a')
	var rank = int(s[1] - '1')
	if !IsOnBoard(file, rank) {
		return NoSquare, fmt.Errorf("chess: malformed square %q", s)
	}
	return MakeSquare(file, rank), nil
}

// castleSide identifies king-side vs queen-side for geometry lookups.
type castleSide int

const (
	kingSide castleSide = iota
	queenSide
)

// castlingGeometry describes one (color, wing) castling move.
type castlingGeometry struct {
	KingFrom, KingTo SquareIndex
	RookFrom, RookTo SquareIndex
	// EmptySquares must all be vacant for the move to be pseudo-legal.
	EmptySquares []SquareIndex
	// SafeSquares are the squares the king passes through, inclusive of
	// its start and destination; none may be attacked by the enemy.
	SafeSquares []SquareIndex
}

var castlingTable = map[Color]map[castleSide]castlingGeometry{
	White: {
		kingSide: {
			KingFrom: SquareIndex(4), KingTo: SquareIndex(6),
			RookFrom: SquareIndex(7), RookTo: SquareIndex(5),
			EmptySquares: []SquareIndex{5, 6},
			SafeSquares:  []SquareIndex{4, 5, 6},
		},
		queenSide: {
			KingFrom: SquareIndex(4), KingTo: SquareIndex(2),
			RookFrom: SquareIndex(0), RookTo: SquareIndex(3),
			EmptySquares: []SquareIndex{1, 2, 3},
			SafeSquares:  []SquareIndex{4, 3, 2},
		},
	},
	Black: {
		kingSide: {
			KingFrom: SquareIndex(60), KingTo: SquareIndex(62),
			RookFrom: SquareIndex(63), RookTo: SquareIndex(61),
			EmptySquares: []SquareIndex{61, 62},
			SafeSquares:  []SquareIndex{60, 61, 62},
		},
		queenSide: {
			KingFrom: SquareIndex(60), KingTo: SquareIndex(58),
			RookFrom: SquareIndex(56), RookTo: SquareIndex(59),
			EmptySquares: []SquareIndex{57, 58, 59},
			SafeSquares:  []SquareIndex{60, 59, 58},
		},
	},
}

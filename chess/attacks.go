package chess

// IsSquareAttacked reports whether sq is attacked by a piece of color
// byColor, checking pawn, knight, and king attacks first, then sliding
// attacks along the four orthogonal and four diagonal rays.
func IsSquareAttacked(board Board, sq SquareIndex, byColor Color) bool {
	for _, from := range pawnAttackers(sq, byColor) {
		var p = board[from]
		if p.Kind == Pawn && p.Color == byColor {
			return true
		}
	}

	for _, offset := range KnightOffsets {
		if to, ok := knightDelta(sq, offset); ok {
			var p = board[to]
			if p.Kind == Knight && p.Color == byColor {
				return true
			}
		}
	}

	for _, offset := range KingOffsets {
		if to, ok := kingDelta(sq, offset); ok {
			var p = board[to]
			if p.Kind == King && p.Color == byColor {
				return true
			}
		}
	}

	for _, dir := range orthogonalDirs {
		if slidingAttack(board, sq, dir, byColor, Rook) {
			return true
		}
	}
	for _, dir := range diagonalDirs {
		if slidingAttack(board, sq, dir, byColor, Bishop) {
			return true
		}
	}

	return false
}

// pawnAttackers returns the (up to two) squares from which a pawn of
// byColor would attack sq, i.e. the diagonal predecessors of sq along
// byColor's advance direction.
func pawnAttackers(sq SquareIndex, byColor Color) []SquareIndex {
	var backRank = -1
	if byColor == White {
		backRank = -1
	} else {
		backRank = 1
	}
	var rank = Rank(sq) + backRank
	if rank < 0 || rank > 7 {
		return nil
	}
	var result []SquareIndex
	for _, df := range [2]int{-1, 1} {
		var file = File(sq) + df
		if IsOnBoard(file, rank) {
			result = append(result, MakeSquare(file, rank))
		}
	}
	return result
}

func slidingAttack(board Board, sq SquareIndex, dir int, byColor Color, orthoOrDiag PieceKind) bool {
	var cur = int(sq)
	var curFile = File(sq)
	for {
		var next = cur + dir
		if next < 0 || next > 63 {
			return false
		}
		var nextFile = File(SquareIndex(next))
		// a horizontal/diagonal step must change file by exactly one;
		// anything else means the ray wrapped around the board edge.
		if abs(nextFile-curFile) > 1 {
			return false
		}
		var p = board[next]
		if !p.IsEmpty() {
			if p.Color != byColor {
				return false
			}
			if orthoOrDiag == Rook && (p.Kind == Rook || p.Kind == Queen) {
				return true
			}
			if orthoOrDiag == Bishop && (p.Kind == Bishop || p.Kind == Queen) {
				return true
			}
			return false
		}
		cur = next
		curFile = nextFile
	}
}

// IsInCheck locates color's king and tests whether the opposite color
// attacks it.
func IsInCheck(board Board, color Color) bool {
	var kingSq = findKing(board, color)
	if kingSq == NoSquare {
		return false
	}
	return IsSquareAttacked(board, kingSq, color.Opposite())
}

func findKing(board Board, color Color) SquareIndex {
	for sq := SquareIndex(0); sq < 64; sq++ {
		var p = board[sq]
		if p.Kind == King && p.Color == color {
			return sq
		}
	}
	return NoSquare
}

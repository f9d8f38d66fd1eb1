package chess

// MakeMove returns the successor Position after applying mv to pos.
// mv is expected to come from GenerateLegal(pos); MakeMove is total
// over the Move type and never panics, but passing a move that did
// not originate from this position yields an unspecified (though
// memory-safe) result.
func MakeMove(pos Position, mv Move) Position {
	var next = pos

	next.Board[mv.From] = NoPiece
	next.Board[mv.To] = mv.Piece

	if mv.Kind == EnPassantMove {
		var capturedSq = MakeSquare(File(mv.To), Rank(mv.From))
		next.Board[capturedSq] = NoPiece
	}

	if mv.IsCastle() {
		var side = kingSide
		if mv.Kind == CastleQueen {
			side = queenSide
		}
		var geom = castlingTable[mv.Piece.Color][side]
		next.Board[geom.RookFrom] = NoPiece
		next.Board[geom.RookTo] = Piece{Rook, mv.Piece.Color}
	}

	if mv.IsPromotion() {
		next.Board[mv.To] = Piece{mv.Promotion, mv.Piece.Color}
	}

	next.EnPassant = NoSquare
	if mv.Piece.Kind == Pawn {
		var delta = Rank(mv.To) - Rank(mv.From)
		if delta == 2 || delta == -2 {
			next.EnPassant = MakeSquare(File(mv.From), (Rank(mv.From)+Rank(mv.To))/2)
		}
	}

	next.Castling = pos.Castling
	clearCastlingRight(&next.Castling, mv.From)
	clearCastlingRight(&next.Castling, mv.To)
	if mv.Piece.Kind == King {
		if mv.Piece.Color == White {
			next.Castling.WhiteKing = false
			next.Castling.WhiteQueen = false
		} else {
			next.Castling.BlackKing = false
			next.Castling.BlackQueen = false
		}
	}

	if mv.Piece.Kind == Pawn || mv.IsCapture() {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock = pos.HalfmoveClock + 1
	}

	if pos.SideToMove == Black {
		next.FullmoveNumber = pos.FullmoveNumber + 1
	}

	next.SideToMove = pos.SideToMove.Opposite()

	return next
}

// clearCastlingRight drops the right tied to a home rook/king square
// whenever that square is touched, either by moving from it or by
// being captured on.
func clearCastlingRight(c *CastlingRights, sq SquareIndex) {
	switch sq {
	case SquareIndex(0):
		c.WhiteQueen = false
	case SquareIndex(4):
		c.WhiteKing = false
		c.WhiteQueen = false
	case SquareIndex(7):
		c.WhiteKing = false
	case SquareIndex(56):
		c.BlackQueen = false
	case SquareIndex(60):
		c.BlackKing = false
		c.BlackQueen = false
	case SquareIndex(63):
		c.BlackKing = false
	}
}

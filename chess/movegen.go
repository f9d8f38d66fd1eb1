package chess

// promotionKinds lists the four pieces a pawn may promote to, in the
// order new moves are generated.
var promotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

// GeneratePseudoLegal enumerates every move reachable by piece
// movement rules alone, without checking whether the mover's own king
// ends up in check. Output order is unspecified; callers that care
// about ordering must sort via the search package's move ordering.
func GeneratePseudoLegal(pos Position) []Move {
	var moves = make([]Move, 0, 48)
	var board = pos.Board
	var side = pos.SideToMove

	for sq := SquareIndex(0); sq < 64; sq++ {
		var p = board[sq]
		if p.IsEmpty() || p.Color != side {
			continue
		}
		switch p.Kind {
		case Pawn:
			genPawnMoves(pos, sq, &moves)
		case Knight:
			genLeaperMoves(board, sq, p, KnightOffsets[:], knightDelta, &moves)
		case King:
			genLeaperMoves(board, sq, p, KingOffsets[:], kingDelta, &moves)
			genCastleMoves(pos, &moves)
		case Bishop:
			genSliderMoves(board, sq, p, diagonalDirs[:], &moves)
		case Rook:
			genSliderMoves(board, sq, p, orthogonalDirs[:], &moves)
		case Queen:
			genSliderMoves(board, sq, p, orthogonalDirs[:], &moves)
			genSliderMoves(board, sq, p, diagonalDirs[:], &moves)
		}
	}
	return moves
}

func genPawnMoves(pos Position, sq SquareIndex, moves *[]Move) {
	var board = pos.Board
	var piece = board[sq]
	var advance = 1
	var startRank = 1
	var promoteRank = 7
	if piece.Color == Black {
		advance = -1
		startRank = 6
		promoteRank = 0
	}

	var addMove = func(to SquareIndex, captured Piece, kind MoveKind) {
		if Rank(to) == promoteRank {
			for _, pk := range promotionKinds {
				var k = Promotion
				if kind == CaptureMove {
					k = PromotionCapture
				}
				*moves = append(*moves, Move{From: sq, To: to, Piece: piece, Kind: k, Captured: captured, Promotion: pk})
			}
			return
		}
		*moves = append(*moves, Move{From: sq, To: to, Piece: piece, Kind: kind, Captured: captured})
	}

	var oneStep = MakeSquare(File(sq), Rank(sq)+advance)
	if IsOnBoard(File(sq), Rank(sq)+advance) && board[oneStep].IsEmpty() {
		addMove(oneStep, NoPiece, Normal)
		if Rank(sq) == startRank {
			var twoStep = MakeSquare(File(sq), Rank(sq)+2*advance)
			if board[twoStep].IsEmpty() {
				*moves = append(*moves, Move{From: sq, To: twoStep, Piece: piece, Kind: Normal})
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		var file = File(sq) + df
		var rank = Rank(sq) + advance
		if !IsOnBoard(file, rank) {
			continue
		}
		var to = MakeSquare(file, rank)
		var target = board[to]
		if !target.IsEmpty() && target.Color != piece.Color {
			addMove(to, target, CaptureMove)
		} else if to == pos.EnPassant {
			var capturedSq = MakeSquare(File(to), Rank(sq))
			*moves = append(*moves, Move{From: sq, To: to, Piece: piece, Kind: EnPassantMove, Captured: board[capturedSq]})
		}
	}
}

func genLeaperMoves(board Board, sq SquareIndex, piece Piece, offsets []int,
	delta func(SquareIndex, int) (SquareIndex, bool), moves *[]Move) {
	for _, offset := range offsets {
		var to, ok = delta(sq, offset)
		if !ok {
			continue
		}
		var target = board[to]
		if target.IsEmpty() {
			*moves = append(*moves, Move{From: sq, To: to, Piece: piece, Kind: Normal})
		} else if target.Color != piece.Color {
			*moves = append(*moves, Move{From: sq, To: to, Piece: piece, Kind: CaptureMove, Captured: target})
		}
	}
}

func genSliderMoves(board Board, sq SquareIndex, piece Piece, dirs []int, moves *[]Move) {
	for _, dir := range dirs {
		var cur = sq
		var curFile = File(sq)
		for {
			var next = int(cur) + dir
			if next < 0 || next > 63 {
				break
			}
			var nextFile = File(SquareIndex(next))
			if abs(nextFile-curFile) > 1 {
				break
			}
			var to = SquareIndex(next)
			var target = board[to]
			if target.IsEmpty() {
				*moves = append(*moves, Move{From: sq, To: to, Piece: piece, Kind: Normal})
			} else {
				if target.Color != piece.Color {
					*moves = append(*moves, Move{From: sq, To: to, Piece: piece, Kind: CaptureMove, Captured: target})
				}
				break
			}
			cur = to
			curFile = nextFile
		}
	}
}

func genCastleMoves(pos Position, moves *[]Move) {
	var board = pos.Board
	var side = pos.SideToMove
	var homeKingSq = SquareIndex(4)
	if side == Black {
		homeKingSq = SquareIndex(60)
	}
	var king = board[homeKingSq]
	if king.Kind != King || king.Color != side {
		return
	}
	if IsSquareAttacked(board, homeKingSq, side.Opposite()) {
		return
	}

	var tryWing = func(wing castleSide, hasRight bool, kind MoveKind) {
		if !hasRight {
			return
		}
		var geom = castlingTable[side][wing]
		for _, sq := range geom.EmptySquares {
			if !board[sq].IsEmpty() {
				return
			}
		}
		for _, sq := range geom.SafeSquares {
			if IsSquareAttacked(board, sq, side.Opposite()) {
				return
			}
		}
		*moves = append(*moves, Move{From: geom.KingFrom, To: geom.KingTo, Piece: king, Kind: kind})
	}

	if side == White {
		tryWing(kingSide, pos.Castling.WhiteKing, CastleKing)
		tryWing(queenSide, pos.Castling.WhiteQueen, CastleQueen)
	} else {
		tryWing(kingSide, pos.Castling.BlackKing, CastleKing)
		tryWing(queenSide, pos.Castling.BlackQueen, CastleQueen)
	}
}

// GenerateLegal filters GeneratePseudoLegal's output, keeping only
// moves that do not leave the mover's own king in check.
func GenerateLegal(pos Position) []Move {
	var pseudo = GeneratePseudoLegal(pos)
	var legal = make([]Move, 0, len(pseudo))
	for _, mv := range pseudo {
		var next = MakeMove(pos, mv)
		if !IsInCheck(next.Board, pos.SideToMove) {
			legal = append(legal, mv)
		}
	}
	return legal
}

// IsCheckmate reports whether pos has no legal moves while the side to
// move is in check.
func IsCheckmate(pos Position) bool {
	return IsInCheck(pos.Board, pos.SideToMove) && len(GenerateLegal(pos)) == 0
}

// IsStalemate reports whether pos has no legal moves while the side to
// move is not in check.
func IsStalemate(pos Position) bool {
	return !IsInCheck(pos.Board, pos.SideToMove) && len(GenerateLegal(pos)) == 0
}

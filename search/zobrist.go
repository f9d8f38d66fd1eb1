package search

import "github.com/nimbuschess/engine/chess"

// Zobrist keys are generated from a fixed seeded LCG so that hashing
// is reproducible across processes and platforms, rather than from
// math/rand (whose output is not guaranteed stable across Go
// versions). Constants are the widely used PCG/Knuth LCG multiplier
// and increment.
const (
	lcgMultiplier uint64 = 6364136223846793005
	lcgIncrement  uint64 = 1442695040888963407
)

type lcg struct {
	state uint64
}

func newLCG(seed uint64) *lcg {
	return &lcg{state: seed}
}

func (g *lcg) next() uint64 {
	g.state = g.state*lcgMultiplier + lcgIncrement
	return g.state
}

var (
	pieceSquareKeys [12][64]uint64
	blackToMoveKey  uint64
	castlingKeys    [4]uint64 // WK, WQ, BK, BQ
	enPassantKeys   [8]uint64
)

func init() {
	var gen = newLCG(1)
	for piece := 0; piece < 12; piece++ {
		for sq := 0; sq < 64; sq++ {
			pieceSquareKeys[piece][sq] = gen.next()
		}
	}
	blackToMoveKey = gen.next()
	for i := range castlingKeys {
		castlingKeys[i] = gen.next()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = gen.next()
	}
}

func pieceIndex(kind chess.PieceKind, color chess.Color) int {
	var idx = int(kind) - 1 // Pawn=1..King=6 -> 0..5
	if color == chess.Black {
		idx += 6
	}
	return idx
}

// Hash computes pos's 64-bit Zobrist fingerprint from scratch by
// XOR-ing one piece-square value per occupied square, the
// side-to-move value iff Black to move, each held castling-right
// value, and the en-passant-file value iff set.
func Hash(pos chess.Position) uint64 {
	var key uint64
	for sq := chess.SquareIndex(0); sq < 64; sq++ {
		var p = pos.Board[sq]
		if p.IsEmpty() {
			continue
		}
		key ^= pieceSquareKeys[pieceIndex(p.Kind, p.Color)][sq]
	}
	if pos.SideToMove == chess.Black {
		key ^= blackToMoveKey
	}
	if pos.Castling.WhiteKing {
		key ^= castlingKeys[0]
	}
	if pos.Castling.WhiteQueen {
		key ^= castlingKeys[1]
	}
	if pos.Castling.BlackKing {
		key ^= castlingKeys[2]
	}
	if pos.Castling.BlackQueen {
		key ^= castlingKeys[3]
	}
	if pos.EnPassant != chess.NoSquare {
		key ^= enPassantKeys[chess.File(pos.EnPassant)]
	}
	return key
}

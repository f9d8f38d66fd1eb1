package eval

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nimbuschess/engine/chess"
)

// mirrorPosition swaps colors and flips every square vertically, the
// standard symmetry transform for checking that evaluation has no
// built-in side bias.
func mirrorPosition(pos chess.Position) chess.Position {
	var mirrored = pos
	for sq := chess.SquareIndex(0); sq < 64; sq++ {
		var file = chess.File(sq)
		var rank = chess.Rank(sq)
		var flipped = chess.MakeSquare(file, 7-rank)
		var p = pos.Board[sq]
		if p.IsEmpty() {
			mirrored.Board[flipped] = chess.NoPiece
		} else {
			mirrored.Board[flipped] = chess.Piece{Kind: p.Kind, Color: p.Color.Opposite()}
		}
	}
	mirrored.SideToMove = pos.SideToMove.Opposite()
	mirrored.Castling = chess.CastlingRights{
		WhiteKing:  pos.Castling.BlackKing,
		WhiteQueen: pos.Castling.BlackQueen,
		BlackKing:  pos.Castling.WhiteKing,
		BlackQueen: pos.Castling.WhiteQueen,
	}
	mirrored.EnPassant = chess.NoSquare
	if pos.EnPassant != chess.NoSquare {
		mirrored.EnPassant = chess.MakeSquare(chess.File(pos.EnPassant), 7-chess.Rank(pos.EnPassant))
	}
	return mirrored
}

func TestEvaluationIsSymmetricUnderColorSwap(t *testing.T) {
	var fens = []string{
		chess.StartingFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4",
	}
	for _, fen := range fens {
		var pos, err = chess.ParseFEN(fen)
		require.NoError(t, err, fen)

		var mirrored = mirrorPosition(pos)
		var v1 = Evaluate(pos)
		var v2 = Evaluate(mirrored)

		require.InDelta(t, -v1, v2, 1, "evaluation should flip sign (within 1cp) under color-swap mirroring for %q", fen)
	}
}

func TestMaterialScoreIgnoresKings(t *testing.T) {
	var pos, err = chess.ParseFEN(chess.StartingFEN)
	require.NoError(t, err)
	var b = EvaluationBreakdown(pos)
	require.Equal(t, 0, b.Material, "starting position material should be balanced")
}

func TestEvaluateHandlesCheckmate(t *testing.T) {
	var pos, err = chess.ParseFEN("rnb1kbnr/pppp1ppp/4p3/8/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	require.Equal(t, -MateScore, Evaluate(pos))
}

package notation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nimbuschess/engine/chess"
)

func TestMoveToCoord(t *testing.T) {
	var e2, _ = chess.ParseSquareName("e2")
	var e4, _ = chess.ParseSquareName("e4")
	var mv = chess.Move{From: e2, To: e4, Piece: chess.Piece{Kind: chess.Pawn, Color: chess.White}, Kind: chess.Normal}
	require.Equal(t, "e2e4", MoveToCoord(mv))

	var a7, _ = chess.ParseSquareName("a7")
	var a8, _ = chess.ParseSquareName("a8")
	var promo = chess.Move{From: a7, To: a8, Piece: chess.Piece{Kind: chess.Pawn, Color: chess.White}, Kind: chess.Promotion, Promotion: chess.Queen}
	require.Equal(t, "a7a8q", MoveToCoord(promo))
}

func TestMoveToSANCastling(t *testing.T) {
	var pos, err = chess.ParseFEN("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	for _, mv := range chess.GenerateLegal(pos) {
		if mv.Kind == chess.CastleKing {
			require.Equal(t, "O-O", MoveToSAN(pos, mv))
		}
		if mv.Kind == chess.CastleQueen {
			require.Equal(t, "O-O-O", MoveToSAN(pos, mv))
		}
	}
}

func TestMoveToSANPromotion(t *testing.T) {
	var pos, err = chess.ParseFEN("8/P7/8/8/8/8/8/4K2k w - - 0 1")
	require.NoError(t, err)

	for _, mv := range chess.GenerateLegal(pos) {
		if mv.Promotion == chess.Queen {
			require.Equal(t, "a8=Q", MoveToSAN(pos, mv))
		}
	}
}

func TestSANDisambiguatesByFile(t *testing.T) {
	// Two White knights can both reach d2: one from b1, one from f3.
	var pos, err = chess.ParseFEN("4k3/8/8/8/8/5N2/8/1N2K3 w - - 0 1")
	require.NoError(t, err)
	var d2, _ = chess.ParseSquareName("d2")

	for _, mv := range chess.GenerateLegal(pos) {
		if mv.Piece.Kind == chess.Knight && mv.To == d2 {
			var san = MoveToSAN(pos, mv)
			require.Contains(t, san, "N")
			var fromFile = chess.SquareName(mv.From)[:1]
			require.Contains(t, san, fromFile, "disambiguation should name the originating file")
		}
	}
}

func TestParseSANRoundTrip(t *testing.T) {
	var pos, err = chess.ParseFEN(chess.StartingFEN)
	require.NoError(t, err)

	for _, mv := range chess.GenerateLegal(pos) {
		var san = MoveToSAN(pos, mv)
		var parsed, ok = ParseSAN(pos, san)
		require.True(t, ok, "failed to parse back %q", san)
		require.Equal(t, mv, parsed)
	}
}

func TestParseCoordRejectsIllegalMoves(t *testing.T) {
	var pos, err = chess.ParseFEN(chess.StartingFEN)
	require.NoError(t, err)

	var _, ok = ParseCoord(pos, "f1a6")
	require.False(t, ok)

	var mv, ok2 = ParseCoord(pos, "e2e4")
	require.True(t, ok2)
	require.Equal(t, "e2e4", MoveToCoord(mv))
}

package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nimbuschess/engine/chess"
)

func TestHashDependsOnlyOnResultingPosition(t *testing.T) {
	var viaA, err = chess.ParseFEN(chess.StartingFEN)
	require.NoError(t, err)
	var e2, _ = chess.ParseSquareName("e2")
	var e3, _ = chess.ParseSquareName("e3")
	var g1, _ = chess.ParseSquareName("g1")
	var f3, _ = chess.ParseSquareName("f3")

	// A single pawn push leaves no en-passant square, so both orders end
	// in the same position.
	var m1 = chess.Move{From: e2, To: e3, Piece: chess.Piece{Kind: chess.Pawn, Color: chess.White}, Kind: chess.Normal}
	var m2 = chess.Move{From: g1, To: f3, Piece: chess.Piece{Kind: chess.Knight, Color: chess.White}, Kind: chess.Normal}

	var a = chess.MakeMove(chess.MakeMove(viaA, m1), m2)

	var viaB, _ = chess.ParseFEN(chess.StartingFEN)
	var b = chess.MakeMove(chess.MakeMove(viaB, m2), m1)

	require.Equal(t, Hash(a), Hash(b), "two move orders reaching the same position must hash equal")

	var viaC, _ = chess.ParseFEN(chess.StartingFEN)
	var c = chess.MakeMove(viaC, m1)
	require.NotEqual(t, Hash(a), Hash(c), "distinct positions should not usually collide")
}

func TestTranspositionTableStoreAndProbe(t *testing.T) {
	var tt = NewTranspositionTable(1)
	var key = uint64(12345)

	var _, ok = tt.Probe(key)
	require.False(t, ok)

	tt.Store(key, 4, 250, Exact, chess.MoveEmpty)
	var entry, ok2 = tt.Probe(key)
	require.True(t, ok2)
	require.Equal(t, 4, entry.Depth)
	require.Equal(t, 250, entry.Evaluation)
	require.Equal(t, Exact, entry.NodeType)
}

func TestTranspositionTableDeclinesShallowerReplacement(t *testing.T) {
	var tt = NewTranspositionTable(1)
	var key = uint64(99)

	tt.Store(key, 6, 100, Exact, chess.MoveEmpty)
	tt.Store(key, 2, 999, Exact, chess.MoveEmpty)

	var entry, ok = tt.Probe(key)
	require.True(t, ok)
	require.Equal(t, 6, entry.Depth, "a shallower store must not overwrite a deeper entry")
	require.Equal(t, 100, entry.Evaluation)
}

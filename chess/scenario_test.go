package chess

import "testing"

func hasMove(moves []Move, fromName, toName string) bool {
	var from, _ = ParseSquareName(fromName)
	var to, _ = ParseSquareName(toName)
	for _, mv := range moves {
		if mv.From == from && mv.To == to {
			return true
		}
	}
	return false
}

func TestStartingPositionLegalMoves(t *testing.T) {
	var pos, err = ParseFEN(StartingFEN)
	if err != nil {
		t.Fatal(err)
	}
	var moves = GenerateLegal(pos)
	if len(moves) != 20 {
		t.Fatalf("got %d legal moves, want 20", len(moves))
	}
	if !hasMove(moves, "e2", "e4") {
		t.Error("expected e2e4 to be legal")
	}
	if !hasMove(moves, "g1", "f3") {
		t.Error("expected g1f3 to be legal")
	}
	if hasMove(moves, "f1", "a6") {
		t.Error("expected f1a6 to be illegal")
	}
}

func TestEnPassantCapture(t *testing.T) {
	var pos, err = ParseFEN("rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !hasMove(GenerateLegal(pos), "f5", "e6") {
		t.Error("expected f5e6 en-passant capture to be legal")
	}

	var posNoEP, err2 = ParseFEN("rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq - 0 1")
	if err2 != nil {
		t.Fatal(err2)
	}
	if hasMove(GenerateLegal(posNoEP), "f5", "e6") {
		t.Error("expected f5e6 to be illegal without an en-passant target")
	}
}

func TestCastlingRights(t *testing.T) {
	var pos, err = ParseFEN("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var moves = GenerateLegal(pos)
	if !hasMove(moves, "e1", "g1") {
		t.Error("expected e1g1 (kingside castle) to be legal")
	}
	if !hasMove(moves, "e1", "c1") {
		t.Error("expected e1c1 (queenside castle) to be legal")
	}

	var posNoWhiteCastle, err2 = ParseFEN("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w kq - 0 1")
	if err2 != nil {
		t.Fatal(err2)
	}
	var moves2 = GenerateLegal(posNoWhiteCastle)
	if hasMove(moves2, "e1", "g1") || hasMove(moves2, "e1", "c1") {
		t.Error("expected White castling to be illegal once rights are cleared")
	}
}

func TestCastleOutOfCheckIsIllegal(t *testing.T) {
	var pos, err = ParseFEN("r3k2r/pppp1ppp/8/4r3/8/8/PPPP1PPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if hasMove(GenerateLegal(pos), "e1", "g1") {
		t.Error("expected e1g1 to be illegal while the rook on e5 checks the king on e1")
	}
}

func TestPromotionGeneratesAllKinds(t *testing.T) {
	var pos, err = ParseFEN("8/P7/8/8/8/8/8/4K2k w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var moves = GenerateLegal(pos)
	var promotions = make(map[PieceKind]bool)
	for _, mv := range moves {
		if mv.From == MustSquare("a7") && mv.To == MustSquare("a8") {
			promotions[mv.Promotion] = true
		}
	}
	for _, kind := range []PieceKind{Queen, Rook, Bishop, Knight} {
		if !promotions[kind] {
			t.Errorf("expected a7a8 promotion to %v to be present", kind)
		}
	}
}

func TestFoolsMateIsCheckmate(t *testing.T) {
	var pos, err = ParseFEN("rnb1kbnr/pppp1ppp/4p3/8/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !IsCheckmate(pos) {
		t.Error("expected fool's mate position to be checkmate")
	}
	if len(GenerateLegal(pos)) != 0 {
		t.Error("expected no legal moves in checkmate")
	}
}

// MustSquare is a test helper wrapping ParseSquareName for known-good names.
func MustSquare(name string) SquareIndex {
	var sq, err = ParseSquareName(name)
	if err != nil {
		panic(err)
	}
	return sq
}

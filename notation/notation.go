// Package notation converts between Move values and the two textual
// forms external callers use: coordinate notation (e2e4, e7e8q) and
// Standard Algebraic Notation (Nf3, exd5, O-O, e8=Q). Disambiguation
// for SAN tries file, then rank, then the full origin square; neither
// rendering function appends "+" or "#" since only a caller holding
// the resulting position knows the check status.
package notation

import (
	"fmt"
	"strings"

	"github.com/nimbuschess/engine/chess"
)

var promotionLetters = map[chess.PieceKind]byte{
	chess.Knight: 'n', chess.Bishop: 'b', chess.Rook: 'r', chess.Queen: 'q',
}

var letterToPromotion = map[byte]chess.PieceKind{
	'n': chess.Knight, 'b': chess.Bishop, 'r': chess.Rook, 'q': chess.Queen,
}

var pieceLetters = map[chess.PieceKind]byte{
	chess.Knight: 'N', chess.Bishop: 'B', chess.Rook: 'R', chess.Queen: 'Q', chess.King: 'K',
}

// MoveToCoord renders mv as "from"+"to"+optional promotion letter.
func MoveToCoord(mv chess.Move) string {
	if mv == (chess.Move{}) {
		return "0000"
	}
	var s = chess.SquareName(mv.From) + chess.SquareName(mv.To)
	if mv.IsPromotion() {
		s += string(promotionLetters[mv.Promotion])
	}
	return s
}

// ParseCoord parses 4- or 5-character coordinate notation against
// pos's legal moves, returning the matching Move, or false if no legal
// move matches.
func ParseCoord(pos chess.Position, s string) (chess.Move, bool) {
	if len(s) != 4 && len(s) != 5 {
		return chess.Move{}, false
	}
	var from, err1 = chess.ParseSquareName(s[0:2])
	var to, err2 = chess.ParseSquareName(s[2:4])
	if err1 != nil || err2 != nil {
		return chess.Move{}, false
	}
	var promotion = chess.NoPieceKind
	if len(s) == 5 {
		var pk, ok = letterToPromotion[s[4]]
		if !ok {
			return chess.Move{}, false
		}
		promotion = pk
	}
	for _, mv := range chess.GenerateLegal(pos) {
		if mv.From == from && mv.To == to && mv.Promotion == promotion {
			return mv, true
		}
	}
	return chess.Move{}, false
}

// MoveToSAN renders mv in Standard Algebraic Notation relative to pos.
// It does not append "+" or "#"; the caller, who already knows the
// resulting position, appends those.
func MoveToSAN(pos chess.Position, mv chess.Move) string {
	if mv.Kind == chess.CastleKing {
		return "O-O"
	}
	if mv.Kind == chess.CastleQueen {
		return "O-O-O"
	}

	var legal = chess.GenerateLegal(pos)

	var pieceLetter string
	var fromDisambig string
	if mv.Piece.Kind != chess.Pawn {
		pieceLetter = string(pieceLetters[mv.Piece.Kind])
		fromDisambig = disambiguate(legal, mv)
	}

	var capture string
	if mv.IsCapture() {
		capture = "x"
		if mv.Piece.Kind == chess.Pawn {
			fromDisambig = chess.SquareName(mv.From)[:1]
		}
	}

	var promotion string
	if mv.IsPromotion() {
		promotion = "=" + string(pieceLetters[mv.Promotion])
	}

	return pieceLetter + fromDisambig + capture + chess.SquareName(mv.To) + promotion
}

func disambiguate(legal []chess.Move, mv chess.Move) string {
	var sameFile, sameRank, ambiguous bool
	for _, other := range legal {
		if other.From == mv.From || other.To != mv.To || other.Piece.Kind != mv.Piece.Kind {
			continue
		}
		ambiguous = true
		if chess.File(other.From) == chess.File(mv.From) {
			sameFile = true
		}
		if chess.Rank(other.From) == chess.Rank(mv.From) {
			sameRank = true
		}
	}
	if !ambiguous {
		return ""
	}
	var name = chess.SquareName(mv.From)
	if !sameFile {
		return name[:1]
	}
	if !sameRank {
		return name[1:2]
	}
	return name
}

// ParseSAN resolves a SAN string (with any trailing +/#/!/? trimmed)
// against pos's legal moves.
func ParseSAN(pos chess.Position, san string) (chess.Move, bool) {
	san = strings.TrimRight(san, "+#!?")
	for _, mv := range chess.GenerateLegal(pos) {
		if MoveToSAN(pos, mv) == san {
			return mv, true
		}
	}
	return chess.Move{}, false
}

// DescribeMove is a small debugging helper that renders mv as its SAN
// followed by its coordinate form in parentheses.
func DescribeMove(pos chess.Position, mv chess.Move) string {
	return fmt.Sprintf("%s (%s)", MoveToSAN(pos, mv), MoveToCoord(mv))
}

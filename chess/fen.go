package chess

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
)

// StartingFEN is the FEN of the standard chess starting position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var pieceLetters = map[rune]Piece{
	'P': {Pawn, White}, 'N': {Knight, White}, 'B': {Bishop, White},
	'R': {Rook, White}, 'Q': {Queen, White}, 'K': {King, White},
	'p': {Pawn, Black}, 'n': {Knight, Black}, 'b': {Bishop, Black},
	'r': {Rook, Black}, 'q': {Queen, Black}, 'k': {King, Black},
}

var pieceToLetter = map[Piece]rune{}

func init() {
	for letter, piece := range pieceLetters {
		pieceToLetter[piece] = letter
	}
}

// ParseFEN parses the six space-separated FEN fields into a Position.
// The last two fields (halfmove clock, fullmove number) default to 0
// and 1 when absent. ParseFEN fails fast on any malformed input; use
// ParseFENSafe to recover to the starting position instead.
func ParseFEN(fen string) (Position, error) {
	var fields = strings.Fields(fen)
	if len(fields) < 4 {
		return Position{}, fmt.Errorf("chess: fen %q has %d fields, need at least 4", fen, len(fields))
	}

	var board Board
	var ranks = strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Position{}, fmt.Errorf("chess: fen %q has %d ranks, need 8", fen, len(ranks))
	}
	for r, rankStr := range ranks {
		var rank = 7 - r // FEN is rank-8-down to rank-1
		var file = 0
		for _, ch := range rankStr {
			if unicode.IsDigit(ch) {
				var n = int(ch - '0')
				if n < 1 || n > 8 || file+n > 8 {
					return Position{}, fmt.Errorf("chess: fen %q has a bad run in rank %d", fen, r+1)
				}
				file += n
			} else {
				var piece, ok = pieceLetters[ch]
				if !ok {
					return Position{}, fmt.Errorf("chess: fen %q has unknown piece letter %q", fen, ch)
				}
				if file >= 8 {
					return Position{}, fmt.Errorf("chess: fen %q overflows rank %d", fen, r+1)
				}
				board[MakeSquare(file, rank)] = piece
				file++
			}
		}
		if file != 8 {
			return Position{}, fmt.Errorf("chess: fen %q underflows rank %d", fen, r+1)
		}
	}

	var side Color
	switch fields[1] {
	case "w":
		side = White
	case "b":
		side = Black
	default:
		return Position{}, fmt.Errorf("chess: fen %q has bad side to move %q", fen, fields[1])
	}

	var castling CastlingRights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				castling.WhiteKing = true
			case 'Q':
				castling.WhiteQueen = true
			case 'k':
				castling.BlackKing = true
			case 'q':
				castling.BlackQueen = true
			default:
				return Position{}, fmt.Errorf("chess: fen %q has bad castling field %q", fen, fields[2])
			}
		}
	}

	var epSquare = NoSquare
	if fields[3] != "-" {
		var sq, err = ParseSquareName(fields[3])
		if err != nil {
			return Position{}, fmt.Errorf("chess: fen %q has bad en passant field: %w", fen, err)
		}
		epSquare = sq
	}

	var halfmove = 0
	if len(fields) > 4 {
		var n, err = strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return Position{}, fmt.Errorf("chess: fen %q has bad halfmove clock %q", fen, fields[4])
		}
		halfmove = n
	}

	var fullmove = 1
	if len(fields) > 5 {
		var n, err = strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return Position{}, fmt.Errorf("chess: fen %q has bad fullmove number %q", fen, fields[5])
		}
		fullmove = n
	}

	var pos = Position{
		Board:          board,
		SideToMove:     side,
		Castling:       castling,
		EnPassant:      epSquare,
		HalfmoveClock:  halfmove,
		FullmoveNumber: fullmove,
	}

	if err := validatePosition(pos); err != nil {
		return Position{}, fmt.Errorf("chess: fen %q is ill-formed: %w", fen, err)
	}

	return pos, nil
}

// ParseFENSafe recovers from a parse failure by falling back to the
// starting position and logging a diagnostic, instead of returning an
// error to the caller.
func ParseFENSafe(fen string) Position {
	var pos, err = ParseFEN(fen)
	if err != nil {
		log.Warn().Err(err).Str("fen", fen).Msg("falling back to starting position")
		pos, _ = ParseFEN(StartingFEN)
	}
	return pos
}

// IsValidFEN reports whether fen parses into a well-formed Position.
func IsValidFEN(fen string) bool {
	var _, err = ParseFEN(fen)
	return err == nil
}

func validatePosition(pos Position) error {
	var whiteKings, blackKings int
	for sq := SquareIndex(0); sq < 64; sq++ {
		var p = pos.Board[sq]
		if p.IsEmpty() {
			continue
		}
		if p.Kind == King {
			if p.Color == White {
				whiteKings++
			} else {
				blackKings++
			}
		}
		if p.Kind == Pawn && (Rank(sq) == 0 || Rank(sq) == 7) {
			return fmt.Errorf("pawn on back rank at %s", SquareName(sq))
		}
	}
	if whiteKings != 1 || blackKings != 1 {
		return fmt.Errorf("found %d white kings and %d black kings, need exactly one each", whiteKings, blackKings)
	}
	if pos.EnPassant != NoSquare {
		var expectedRank = 5 // rank 6, Black just pushed a pawn two squares, White to capture
		var pawnRank = Rank(pos.EnPassant) - 1
		var pawnColor = Black
		if pos.SideToMove == Black {
			expectedRank = 2 // rank 3
			pawnRank = Rank(pos.EnPassant) + 1
			pawnColor = White
		}
		if Rank(pos.EnPassant) != expectedRank {
			return fmt.Errorf("en passant square %s on wrong rank for side to move", SquareName(pos.EnPassant))
		}
		var pawnSq = MakeSquare(File(pos.EnPassant), pawnRank)
		var p = pos.Board[pawnSq]
		if p.Kind != Pawn || p.Color != pawnColor {
			return fmt.Errorf("en passant square %s has no capturable pawn at %s", SquareName(pos.EnPassant), SquareName(pawnSq))
		}
	}
	return nil
}

// ToFEN renders pos in Forsyth-Edwards Notation.
func ToFEN(pos Position) string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		var empty = 0
		for f := 0; f < 8; f++ {
			var piece = pos.Board[MakeSquare(f, r)]
			if piece.IsEmpty() {
				empty++
				continue
			}
			if empty != 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteRune(pieceToLetter[piece])
		}
		if empty != 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if pos.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if !pos.Castling.Any() {
		sb.WriteByte('-')
	} else {
		if pos.Castling.WhiteKing {
			sb.WriteByte('K')
		}
		if pos.Castling.WhiteQueen {
			sb.WriteByte('Q')
		}
		if pos.Castling.BlackKing {
			sb.WriteByte('k')
		}
		if pos.Castling.BlackQueen {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	if pos.EnPassant == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(SquareName(pos.EnPassant))
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.FullmoveNumber))

	return sb.String()
}

package main

// openings is a fixed pool of balanced middlegame FENs used to seed
// self-play games, so every matchup starts from varied, roughly equal
// positions rather than always from the initial position.
var openings = []string{
	"rn1q1rk1/1p2ppbp/p1p2np1/3p4/2PP2b1/1PNBPN2/P4PPP/R1BQ1RK1 w - - 1 9",
	"r1b1kb1r/1pq2ppp/p1nppn2/8/3NP1P1/2N4P/PPP2PB1/R1BQK2R w KQkq - 2 9",
	"r1bq1rk1/pp1nppbp/3p1np1/8/P2p1B2/4PN1P/1PP1BPP1/RN1Q1RK1 w - - 0 9",
	"r1bqk2r/p3bpp1/1pn1pn1p/2pp4/3P3B/2PBPN2/PP1N1PPP/R2QK2R w KQkq - 0 9",
	"r2qk2r/p1pp1ppp/b1p2n2/8/2P5/6P1/PP1QPP1P/RN2KB1R w KQkq - 1 9",
	"r1bqr1k1/pppp1ppp/2n2n2/2bN4/2P1p2N/6P1/PP1PPPBP/R1BQ1RK1 w - - 6 9",
	"r1bq1rk1/1p3ppp/2n1pn2/p1bp4/2P5/P3PN2/1P1NBPPP/R1BQK2R w KQ - 2 9",
	"r1bqk1nr/1pp2pbp/p2p2p1/1N1P4/2PpP3/8/PP3PPP/R1BQKB1R w KQkq - 0 9",
	"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
	"rnbqkb1r/pppp1ppp/5n2/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
	StartingFENAlias,
}

// StartingFENAlias keeps the plain initial position in the pool so
// matches also include the canonical opening.
const StartingFENAlias = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

package chess

import "testing"

func perft(pos Position, depth int) int {
	if depth == 0 {
		return 1
	}
	var nodes = 0
	for _, mv := range GenerateLegal(pos) {
		nodes += perft(MakeMove(pos, mv), depth-1)
	}
	return nodes
}

func TestPerft(t *testing.T) {
	const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	var tests = []struct {
		name  string
		fen   string
		depth int
		nodes int
	}{
		{"starting depth 1", StartingFEN, 1, 20},
		{"starting depth 2", StartingFEN, 2, 400},
		{"starting depth 3", StartingFEN, 3, 8902},
		{"starting depth 4", StartingFEN, 4, 197281},
		{"kiwipete depth 1", kiwipete, 1, 48},
		{"kiwipete depth 2", kiwipete, 2, 2039},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var pos, err = ParseFEN(test.fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q): %v", test.fen, err)
			}
			var nodes = perft(pos, test.depth)
			if nodes != test.nodes {
				t.Errorf("perft(%s, %d) = %d, want %d", test.name, test.depth, nodes, test.nodes)
			}
		})
	}
}

package search

import (
	"github.com/nimbuschess/engine/chess"
	"github.com/nimbuschess/engine/eval"
)

// SearchOptions configures one call to Search. Difficulty, Style, and
// MistakeProbability are carried here for API symmetry with the
// difficulty package; Search itself only consults MaxDepth and
// MaxTimeMs — move perturbation is layered on afterward by package
// difficulty.
type SearchOptions struct {
	MaxDepth           int
	MaxTimeMs          int
	Difficulty         string
	Style              string
	MistakeProbability float64
}

// SearchResult is what Search (and, after perturbation,
// calculate_ai_move) hands back to a caller.
type SearchResult struct {
	BestMove           chess.Move
	Evaluation         int
	Breakdown          eval.Breakdown
	PrincipalVariation []chess.Move
	Depth              int
	NodesSearched      int64
	ElapsedMs          int64
	Explanation        []string
}

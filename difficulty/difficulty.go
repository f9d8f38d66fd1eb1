// Package difficulty layers a configurable amount of imperfection onto
// an otherwise-full-strength search: each tier bounds search depth and
// think time, then substitutes a weaker move with some probability to
// simulate a fallible opponent rather than relying on reduced search
// depth alone.
package difficulty

import (
	"math/rand"
	"sort"
	"time"

	"github.com/nimbuschess/engine/chess"
	"github.com/nimbuschess/engine/eval"
	"github.com/nimbuschess/engine/search"
)

// Level names a difficulty tier.
type Level string

const (
	Beginner Level = "Beginner"
	Easy     Level = "Easy"
	Medium   Level = "Medium"
	Hard     Level = "Hard"
	Expert   Level = "Expert"
)

// Style names a move-preference bias.
type Style string

const (
	Aggressive Style = "Aggressive"
	Defensive  Style = "Defensive"
	Balanced   Style = "Balanced"
)

// Settings is one row of the difficulty table: search bounds plus the
// mistake/blunder substitution parameters for that tier.
type Settings struct {
	MaxDepth   int
	MaxTimeMs  int
	MistakeP   float64
	BlunderP   float64
	PoolSize   int
	Noise      float64
}

var table = map[Level]Settings{
	Beginner: {MaxDepth: 2, MaxTimeMs: 500, MistakeP: 0.40, BlunderP: 0.15, PoolSize: 5, Noise: 150},
	Easy:     {MaxDepth: 3, MaxTimeMs: 1000, MistakeP: 0.25, BlunderP: 0.05, PoolSize: 4, Noise: 80},
	Medium:   {MaxDepth: 4, MaxTimeMs: 2000, MistakeP: 0.10, BlunderP: 0.02, PoolSize: 3, Noise: 40},
	Hard:     {MaxDepth: 5, MaxTimeMs: 3000, MistakeP: 0.03, BlunderP: 0, PoolSize: 2, Noise: 15},
	Expert:   {MaxDepth: 6, MaxTimeMs: 5000, MistakeP: 0, BlunderP: 0, PoolSize: 1, Noise: 0},
}

// SettingsFor returns the table row for a level, defaulting to Medium
// for an unrecognized level rather than panicking.
func SettingsFor(level Level) Settings {
	if s, ok := table[level]; ok {
		return s
	}
	return table[Medium]
}

// styleBias scores how much a style favors a candidate move, evaluated
// from the position the move is played from.
func styleBias(style Style, pos chess.Position, mv chess.Move) float64 {
	var bias float64
	switch style {
	case Aggressive:
		if mv.IsCapture() {
			bias += 40
		}
	case Defensive:
		if mv.IsCapture() {
			bias -= 10
		}
	}

	var toFile = int(chess.File(mv.To))
	var toRank = int(chess.Rank(mv.To))
	if toFile >= 2 && toFile <= 5 && toRank >= 2 && toRank <= 5 {
		if style == Aggressive {
			bias += 15
		} else {
			bias += 5
		}
	}

	var fromRank = int(chess.Rank(mv.From))
	var backRank = 0
	if pos.SideToMove == chess.Black {
		backRank = 7
	}
	if fromRank == backRank && toRank != backRank {
		if style == Aggressive {
			bias += 10
		} else {
			bias += 3
		}
	}

	return bias
}

// rng is process-global and seeded from the clock; it is intentionally
// not exposed for deterministic testing. Tests that need determinism
// construct their own *rand.Rand and call the internal scoring helpers
// directly.
var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// CalculateAIMove runs a full search, then with configured probability
// substitutes a weaker move to simulate a fallible opponent.
func CalculateAIMove(s *search.Searcher, pos chess.Position, level Level, style Style) search.SearchResult {
	var settings = SettingsFor(level)
	var result = s.Search(pos, search.SearchOptions{
		MaxDepth:           settings.MaxDepth,
		MaxTimeMs:          settings.MaxTimeMs,
		Difficulty:         string(level),
		Style:              string(style),
		MistakeProbability: settings.MistakeP,
	})

	var legalMoves = chess.GenerateLegal(pos)
	if len(legalMoves) <= 1 {
		return result
	}

	if rng.Float64() < settings.BlunderP {
		if mv, ok := pickBlunder(pos, legalMoves, rng); ok {
			result.BestMove = mv
			result.PrincipalVariation = []chess.Move{mv}
			result.Explanation = append(result.Explanation, "AI made an inaccurate move")
		}
		return result
	}

	if rng.Float64() < settings.MistakeP {
		if mv, ok := pickMistake(pos, legalMoves, style, settings, rng); ok {
			result.BestMove = mv
			result.PrincipalVariation = []chess.Move{mv}
			result.Explanation = append(result.Explanation, "slightly suboptimal")
		}
		return result
	}

	return result
}

type candidate struct {
	move  chess.Move
	score float64
}

// moverScore evaluates a one-ply lookahead from the mover's point of
// view: apply the move, then statically evaluate, flipped so higher is
// always better for whoever just moved.
func moverScore(pos chess.Position, mv chess.Move) float64 {
	var child = chess.MakeMove(pos, mv)
	var v = eval.Evaluate(child)
	if pos.SideToMove == chess.Black {
		return float64(-v)
	}
	return float64(v)
}

// pickBlunder keeps the three worst one-ply moves and picks uniformly.
func pickBlunder(pos chess.Position, moves []chess.Move, r *rand.Rand) (chess.Move, bool) {
	if len(moves) == 0 {
		return chess.MoveEmpty, false
	}
	var scored = make([]candidate, len(moves))
	for i, mv := range moves {
		scored[i] = candidate{move: mv, score: moverScore(pos, mv)}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score < scored[j].score })

	var worstN = 3
	if worstN > len(scored) {
		worstN = len(scored)
	}
	var pick = r.Intn(worstN)
	return scored[pick].move, true
}

// pickMistake scores every move by one-ply eval plus style bias plus
// uniform noise, skips the top move, and picks from the next PoolSize
// candidates using triangular weighting (rank i gets weight
// PoolSize - i, so the best of the remaining pool is favored).
func pickMistake(pos chess.Position, moves []chess.Move, style Style, settings Settings, r *rand.Rand) (chess.Move, bool) {
	if len(moves) == 0 {
		return chess.MoveEmpty, false
	}
	var scored = make([]candidate, len(moves))
	for i, mv := range moves {
		var noise = (r.Float64()*2 - 1) * settings.Noise
		scored[i] = candidate{move: mv, score: moverScore(pos, mv) + styleBias(style, pos, mv) + noise}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	if len(scored) <= 1 {
		return scored[0].move, true
	}
	var pool = scored[1:]
	if len(pool) > settings.PoolSize {
		pool = pool[:settings.PoolSize]
	}

	var totalWeight = 0
	var weights = make([]int, len(pool))
	for i := range pool {
		weights[i] = settings.PoolSize - i
		if weights[i] < 1 {
			weights[i] = 1
		}
		totalWeight += weights[i]
	}

	var target = r.Intn(totalWeight)
	var cursor = 0
	for i, w := range weights {
		cursor += w
		if target < cursor {
			return pool[i].move, true
		}
	}
	return pool[len(pool)-1].move, true
}

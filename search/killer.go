package search

import "github.com/nimbuschess/engine/chess"

// MaxPlies bounds the killer table to a fixed number of search plies.
const MaxPlies = 64

// killerTable holds up to two quiet killer moves per ply. Captures are
// never stored here; move ordering scores them by MVV-LVA instead.
type killerTable struct {
	slots [MaxPlies][2]chess.Move
}

func newKillerTable() *killerTable {
	return &killerTable{}
}

func (k *killerTable) clear() {
	*k = killerTable{}
}

// add inserts mv at slot 0 of ply, shifting the previous slot-0 killer
// down. Duplicates of an already-stored killer are not reinserted.
func (k *killerTable) add(ply int, mv chess.Move) {
	if ply >= MaxPlies {
		return
	}
	if k.slots[ply][0] == mv || k.slots[ply][1] == mv {
		return
	}
	k.slots[ply][1] = k.slots[ply][0]
	k.slots[ply][0] = mv
}

// slot returns the killer move in slot i (0 or 1) of ply.
func (k *killerTable) slot(ply, i int) chess.Move {
	if ply >= MaxPlies {
		return chess.MoveEmpty
	}
	return k.slots[ply][i]
}

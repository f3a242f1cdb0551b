package hanoi

import (
	"fmt"

	"github.com/katalvlaran/retrosolve/puzzle"
)

// Limits and defaults, ported from ToH's MIN_RODS/MIN_DISKS/MAX_RODS/
// MAX_DISKS/DEFAULT_RODS/DEFAULT_DISKS.
const (
	MinRods = 1
	MaxRods = 10

	MinDisks = 1
	MaxDisks = 19

	DefaultRods  = 3
	DefaultDisks = 3
)

// State is a decimal-digit-packed Hanoi position: the i-th
// least-significant base-10 digit is the rod index holding disk i.
type State uint64

// Hash returns the position verbatim.
func (s State) Hash() uint64 { return uint64(s) }

// Equal reports whether other is the same Hanoi position.
func (s State) Equal(other puzzle.State) bool {
	o, ok := other.(State)
	return ok && s == o
}

// Move moves the disk at index Disk onto rod Rod.
type Move struct {
	Disk uint64
	Rod  uint64
}

// String renders the move as "Move disk D to rod R", matching the
// original ToHMove::toString.
func (m Move) String() string {
	return fmt.Sprintf("Move disk %d to rod %d", m.Disk, m.Rod)
}

// Puzzle is a Tower of Hanoi instance over a fixed number of rods and
// disks.
type Puzzle struct {
	rods  uint64
	disks uint64
}

// New constructs a Tower of Hanoi puzzle with the given disk and rod
// counts. Invalid combinations (disks outside [MinDisks,MaxDisks] or
// rods outside [MinRods,MaxRods]) fall back to the documented defaults
// (3 disks, 3 rods), matching the original ToH constructor rather than
// returning an error — this is a puzzle-configuration default, not a
// solver-visible failure.
func New(disks, rods uint64) *Puzzle {
	if disks < MinDisks || disks > MaxDisks || rods < MinRods || rods > MaxRods {
		disks, rods = DefaultDisks, DefaultRods
	}
	return &Puzzle{rods: rods, disks: disks}
}

// InitialState returns the position with every disk on rod 1 — the
// decimal integer consisting of `disks` copies of the digit 1, matching
// ToH::getInitialPosition.
func (p *Puzzle) InitialState() puzzle.State {
	var pos uint64
	for i := uint64(0); i < p.disks; i++ {
		pos = pos*10 + 1
	}
	return State(pos)
}

// IsPrimitive reports whether every disk is on rod 0.
func (*Puzzle) IsPrimitive(s puzzle.State) bool {
	return s.(State).Hash() == 0
}

func tenToThe(power uint64) uint64 {
	res := uint64(1)
	for i := uint64(0); i < power; i++ {
		res *= 10
	}
	return res
}

// smallestDiskOnRod returns the index of the smallest disk on rod, or
// MaxDisks if rod is empty — ToH's smallestDiskOnRod helper.
func smallestDiskOnRod(pos uint64, rod uint64) uint64 {
	diskIdx := uint64(0)
	for v := pos; v > 0; v /= 10 {
		if v%10 == rod {
			return diskIdx
		}
		diskIdx++
	}
	return MaxDisks
}

func rodIdxOf(pos uint64, diskIdx uint64) uint64 {
	shift := tenToThe(diskIdx)
	return (pos / shift) % 10
}

// isValidMove reports whether m is legal at pos: the disk is the
// smallest on its current rod, and the destination rod holds no smaller
// disk.
func isValidMove(pos uint64, m Move) bool {
	currRod := rodIdxOf(pos, m.Disk)
	return smallestDiskOnRod(pos, currRod) == m.Disk &&
		smallestDiskOnRod(pos, m.Rod) > m.Disk
}

// Moves enumerates, for each rod in ascending order, every legal
// destination rod for that rod's topmost disk — matching ToH::getMoves.
func (p *Puzzle) Moves(s puzzle.State) []puzzle.Move {
	pos := s.(State).Hash()
	var moves []puzzle.Move
	for i := uint64(0); i < p.rods; i++ {
		topDisk := smallestDiskOnRod(pos, i)
		if topDisk == MaxDisks {
			continue
		}
		for j := uint64(0); j < p.rods; j++ {
			m := Move{Disk: topDisk, Rod: j}
			if isValidMove(pos, m) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// DoMove applies m at s, returning ok=false if m is illegal there.
func (*Puzzle) DoMove(s puzzle.State, move puzzle.Move) (puzzle.State, bool) {
	pos := s.(State).Hash()
	m := move.(Move)
	if !isValidMove(pos, m) {
		return nil, false
	}
	shift := tenToThe(m.Disk)
	oldDigit := (pos / shift) % 10
	return State(pos + (m.Rod-oldDigit)*shift), true
}

// HashSize returns 0: Hanoi's state space has no useful dense bound, so
// it is solved with graphsolver (matching ToH::hashSize, which the
// original never overrides beyond "unbounded").
func (*Puzzle) HashSize() uint64 { return 0 }

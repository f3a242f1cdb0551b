package mummymaze

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/retrosolve/puzzle"
)

// Puzzle is a Mummy Maze board parsed from a map file: a grid of cells
// separated by walls and gates, with an initial placement of NPCs and
// the player baked into its initial position.
type Puzzle struct {
	rows, cols           uint64
	worldRows, worldCols uint64
	world                []byte // worldRows*worldCols cells, row-major
	initPos              uint64
}

// New reads a Mummy Maze board from the file at path.
func New(path string) (*Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a Mummy Maze board from r. The format is a header line
// "rows cols" followed by (2*rows+1) lines of (2*cols+1) characters:
// '_' empty, 'W' wall, 'G'/'U' closed/open gate, 'K' key, 'T' trap,
// 'E' exit, '0'-'3' an NPC (odd = red, 2-3 = walking), '4' the player.
func Parse(r io.Reader) (*Puzzle, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return nil, ErrEmptyMap
	}
	var rows, cols uint64
	if _, err := fmt.Sscan(scanner.Text(), &rows, &cols); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHeader, err)
	}

	worldRows := 2*rows + 1
	worldCols := 2*cols + 1
	world := make([]byte, worldRows*worldCols)
	var initPos uint64

	for i := uint64(0); i < worldRows; i++ {
		if !scanner.Scan() {
			return nil, ErrTruncatedGrid
		}
		line := strings.TrimRight(scanner.Text(), "\r")
		if uint64(len(line)) < worldCols {
			return nil, ErrTruncatedGrid
		}
		for j := uint64(0); j < worldCols; j++ {
			c := line[j]
			loc := i*worldCols + j
			switch {
			case isChr(c):
				gloc := toGridLocFromWorld(loc, worldCols)
				if !addChr(&initPos, c, gloc) {
					return nil, ErrTooManyCharacters
				}
				world[loc] = cellEmpty
			case isGate(c):
				setGateClosed(&initPos, c == cellGateClosed)
				world[loc] = cellGateClosed
			default:
				world[loc] = c
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !playerIsAlive(initPos) {
		return nil, ErrNoPlayer
	}

	return &Puzzle{
		rows: rows, cols: cols,
		worldRows: worldRows, worldCols: worldCols,
		world: world, initPos: initPos,
	}, nil
}

// InitialState returns the position parsed from the map file.
func (p *Puzzle) InitialState() puzzle.State { return State(p.initPos) }

// IsPrimitive reports whether the player is alive and standing on the
// exit cell.
func (p *Puzzle) IsPrimitive(s puzzle.State) bool {
	pos := uint64(s.(State))
	loc := playerLoc(pos)
	unit := p.world[toWorldLocFromGrid(loc, p.cols, p.worldCols)]
	return playerIsAlive(pos) && isExit(unit)
}

// Moves enumerates every direction (including WAIT) the player may
// legally take from s.
func (p *Puzzle) Moves(s puzzle.State) []puzzle.Move {
	pos := uint64(s.(State))
	moves := make([]puzzle.Move, 0, numDirections)
	for d := Wait; d <= Right; d++ {
		if p.isValidMove(pos, d) {
			moves = append(moves, Move{Direction: d})
		}
	}
	return moves
}

// DoMove resolves one full turn: the player step, then three NPC
// sub-phases (scorpions once, mummies twice), as described in the
// package doc.
func (p *Puzzle) DoMove(s puzzle.State, move puzzle.Move) (puzzle.State, bool) {
	pos := uint64(s.(State))
	m := move.(Move)
	if !p.isValidMove(pos, m.Direction) {
		return nil, false
	}

	ploc := playerLoc(pos)
	newPloc := p.movePlayer(&pos, m.Direction)
	newPlayerCell := p.world[toWorldLocFromGrid(newPloc, p.cols, p.worldCols)]
	if isTrap(newPlayerCell) {
		killPlayer(&pos)
		return State(pos), true
	}
	if newPloc != ploc && isKey(newPlayerCell) {
		toggleGate(&pos)
	}

	for phase := 0; phase < 3; phase++ {
		walking := phase != 0
		died, gateToggled := p.moveNPCs(&pos, walking)
		if died {
			return State(pos), true
		}
		if gateToggled {
			toggleGate(&pos)
		}
	}
	return State(pos), true
}

// HashSize returns 0: the reachable-position count depends on the
// board layout and has no useful dense bound, so graphsolver is used.
func (*Puzzle) HashSize() uint64 { return 0 }

func (p *Puzzle) getDestLoc(pos uint64, chrIdx uint64, dir Direction) (uint64, bool) {
	loc := chrLoc(pos, chrIdx)
	worldLoc := toWorldLocFromGrid(loc, p.cols, p.worldCols)
	iOfs, jOfs := offsets(dir)
	wallLoc := int64(worldLoc) + int64(iOfs)*int64(p.worldCols) + int64(jOfs)
	wallCell := p.world[wallLoc]
	if wallCell == cellWall {
		return 0, false
	}
	if wallCell == cellGateClosed && gateIsClosed(pos) {
		return 0, false
	}
	destLoc := wallLoc + int64(iOfs)*int64(p.worldCols) + int64(jOfs)
	return uint64(destLoc), true
}

func (p *Puzzle) isValidMove(pos uint64, dir Direction) bool {
	if !playerIsAlive(pos) {
		return false
	}
	destWorldLoc, ok := p.getDestLoc(pos, playerIdx, dir)
	if !ok {
		return false
	}
	return !isNPC(p.world[destWorldLoc])
}

// moveChr moves the character at chrIdx one grid cell in dir, with no
// legality check, and returns its new grid location.
func (p *Puzzle) moveChr(pos *uint64, chrIdx uint64, dir Direction) uint64 {
	loc := chrLoc(*pos, chrIdx)
	row := int64(loc / p.cols)
	col := int64(loc % p.cols)
	iOfs, jOfs := offsets(dir)
	newLoc := uint64((row+int64(iOfs))*int64(p.cols) + col + int64(jOfs))
	chrSetLoc(pos, newLoc, chrIdx)
	return newLoc
}

func (p *Puzzle) movePlayer(pos *uint64, dir Direction) uint64 {
	return p.moveChr(pos, playerIdx, dir)
}

// moveNPC steps one NPC toward the player and reports whether its new
// cell toggles the gate. Red NPCs prefer vertical movement, white NPCs
// prefer horizontal movement; if no move in the preferred order is
// legal the NPC stays put.
func (p *Puzzle) moveNPC(pos *uint64, chrIdx uint64) bool {
	ploc := playerLoc(*pos)
	nloc := chrLoc(*pos, chrIdx)
	pRow, pCol := int64(ploc/p.cols), int64(ploc%p.cols)
	nRow, nCol := int64(nloc/p.cols), int64(nloc%p.cols)

	newNloc := nloc
	tryDir := func(dir Direction) bool {
		destWorldLoc, ok := p.getDestLoc(*pos, chrIdx, dir)
		if !ok {
			return false
		}
		newNloc = toGridLocFromWorld(destWorldLoc, p.worldCols)
		return true
	}

	if chrIsRed(*pos, chrIdx) {
		switch {
		case nRow > pRow && tryDir(Up):
		case nRow < pRow && tryDir(Down):
		case nCol > pCol && tryDir(Left):
		case nCol < pCol && tryDir(Right):
		}
	} else {
		switch {
		case nCol > pCol && tryDir(Left):
		case nCol < pCol && tryDir(Right):
		case nRow > pRow && tryDir(Up):
		case nRow < pRow && tryDir(Down):
		}
	}

	chrSetLoc(pos, newNloc, chrIdx)
	return newNloc != nloc && isKey(p.world[toWorldLocFromGrid(newNloc, p.cols, p.worldCols)])
}

// moveNPCs moves every alive NPC whose walking flag matches walking,
// then resolves kills. It reports whether the player died and whether
// any moved NPC stepped onto the key cell; the caller only applies the
// gate toggle when the player survived the phase, matching the
// original's `else if (gateToggled) toggleGate` control flow.
func (p *Puzzle) moveNPCs(pos *uint64, walking bool) (died, gateToggled bool) {
	for i := uint64(0); i < maxNPCs; i++ {
		if chrIsAlive(*pos, i) && chrIsWalking(*pos, i) == walking {
			if p.moveNPC(pos, i) {
				gateToggled = true
			}
		}
	}
	died = collect(pos)
	return died, gateToggled
}

// Render draws the board with s's characters superimposed on the
// static map, matching the original MMz::asString.
func (p *Puzzle) Render(s puzzle.State) string {
	pos := uint64(s.(State))
	var sb strings.Builder
	walker := uint64(0)
	for i := uint64(0); i < p.worldRows; i++ {
		for j := uint64(0); j < p.worldCols; j++ {
			replaced := false
			if i%2 == 1 && j%2 == 1 {
				gloc := toGridLocFromWorld(walker, p.worldCols)
				for chrIdx := uint64(0); chrIdx <= playerIdx; chrIdx++ {
					if chrIsAlive(pos, chrIdx) && chrLoc(pos, chrIdx) == gloc {
						if chrIdx == playerIdx {
							sb.WriteByte(cellPlayerGlyph)
						} else {
							sb.WriteByte('0' + byte(chrStrength(pos, chrIdx)))
						}
						replaced = true
						break
					}
				}
			}
			if !replaced {
				sb.WriteByte(p.world[walker])
			}
			walker++
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

package mummymaze

const (
	maxNPCs        = 4
	playerIdx      = maxNPCs
	playerStrength = 4

	characterLocLength     = 10
	characterAliveShift    = characterLocLength
	characterColorShift    = characterAliveShift + 1
	characterStrengthShift = characterColorShift
	characterWalkingShift  = characterColorShift + 1
	characterInfoLength    = characterWalkingShift + 1
	playerInfoLength       = characterAliveShift + 1

	characterLocMask      = uint64(1)<<characterLocLength - 1
	characterAliveMask    = uint64(1) << characterAliveShift
	characterColorMask    = uint64(1) << characterColorShift
	characterWalkingMask  = uint64(1) << characterWalkingShift
	characterStrengthMask = characterColorMask | characterWalkingMask

	gateShift = maxNPCs*characterInfoLength + playerInfoLength
	gateMask  = uint64(1) << gateShift
)

func chrShift(chrIdx uint64) uint64 { return chrIdx * characterInfoLength }

func chrLoc(pos uint64, chrIdx uint64) uint64 {
	return (pos >> chrShift(chrIdx)) & characterLocMask
}

func chrIsAlive(pos uint64, chrIdx uint64) bool {
	return pos&(characterAliveMask<<chrShift(chrIdx)) != 0
}

func chrIsWalking(pos uint64, chrIdx uint64) bool {
	return pos&(characterWalkingMask<<chrShift(chrIdx)) != 0
}

func chrIsRed(pos uint64, chrIdx uint64) bool {
	return pos&(characterColorMask<<chrShift(chrIdx)) != 0
}

func chrStrength(pos uint64, chrIdx uint64) uint64 {
	return ((pos >> chrShift(chrIdx)) & characterStrengthMask) >> characterStrengthShift
}

func playerLoc(pos uint64) uint64   { return chrLoc(pos, playerIdx) }
func playerIsAlive(pos uint64) bool { return chrIsAlive(pos, playerIdx) }
func gateIsClosed(pos uint64) bool  { return pos&gateMask != 0 }

func chrSetAlive(pos *uint64, chrIdx uint64) {
	*pos |= characterAliveMask << chrShift(chrIdx)
}

func chrSetLoc(pos *uint64, loc uint64, chrIdx uint64) {
	shift := chrShift(chrIdx)
	*pos &^= characterLocMask << shift
	*pos |= loc << shift
}

func chrSetStrength(pos *uint64, strength uint64, chrIdx uint64) {
	shift := chrShift(chrIdx)
	*pos &^= characterStrengthMask << shift
	*pos |= strength << (shift + characterStrengthShift)
}

func killChr(pos *uint64, chrIdx uint64) {
	*pos &^= characterAliveMask << chrShift(chrIdx)
}

func killPlayer(pos *uint64) { killChr(pos, playerIdx) }

func setGateClosed(pos *uint64, closed bool) {
	if closed {
		*pos |= gateMask
	} else {
		*pos &^= gateMask
	}
}

func toggleGate(pos *uint64) { *pos ^= gateMask }

// addChr places a character read from the maze file at loc (a grid
// location) into pos. chr is one of the digit glyphs '0'..'4'; '4' is
// the player, '0'..'3' an NPC whose two low bits encode color (odd =
// red) and walking speed (2-3 = walking/mummy, 0-1 = non-walking/
// scorpion). It reports false if the slot is already occupied (a
// second player) or no NPC slot remains free.
func addChr(pos *uint64, chr byte, loc uint64) bool {
	strength := uint64(chr - '0')
	if strength == playerStrength {
		if playerIsAlive(*pos) {
			return false
		}
		chrSetAlive(pos, playerIdx)
		chrSetLoc(pos, loc, playerIdx)
		return true
	}
	for i := uint64(0); i < maxNPCs; i++ {
		if !chrIsAlive(*pos, i) {
			chrSetAlive(pos, i)
			chrSetLoc(pos, loc, i)
			chrSetStrength(pos, strength, i)
			return true
		}
	}
	return false
}

// collect lets NPCs kill the player and each other after a movement
// sub-phase, and reports whether the player died. For every pair of
// NPCs sharing a cell, the weaker one dies; a tie kills the
// higher-indexed NPC. An NPC already marked dead earlier in the same
// pass is still compared against (matching the reference resolution
// order), so a stale location can still register a collision.
func collect(pos *uint64) bool {
	ploc := playerLoc(*pos)
	for i := uint64(0); i < maxNPCs; i++ {
		if !chrIsAlive(*pos, i) {
			continue
		}
		iloc := chrLoc(*pos, i)
		if iloc == ploc {
			killPlayer(pos)
		}
		for j := i + 1; j < maxNPCs; j++ {
			jloc := chrLoc(*pos, j)
			if iloc == jloc {
				if chrStrength(*pos, i) < chrStrength(*pos, j) {
					killChr(pos, i)
					break
				}
				killChr(pos, j)
			}
		}
	}
	return !playerIsAlive(*pos)
}

// Package mummymaze implements a Mummy Maze style puzzle: a player
// navigates an r-by-c grid of cells separated by walls and gates,
// avoiding traps and up to four non-player characters (NPCs) that
// chase it every turn, trying to reach an exit cell alive.
//
// A position packs the whole board into one uint64: four 13-bit NPC
// fields (location, alive flag, a 2-bit strength/color/walking code)
// at bit offsets 0, 13, 26, 39, an 11-bit player field (location, alive
// flag) at offset 52, and a single gate-open/closed bit at offset 63.
// Because the reachable position space has no useful dense bound, it
// is solved with graphsolver.
//
// A turn resolves in five steps: the player moves one cell; stepping
// on a trap kills the player; stepping on a key toggles every gate;
// scorpions (non-walking NPCs) then take one step each, mummies
// (walking NPCs) take two steps each in two identical sub-phases. After
// each sub-phase any NPC sharing a cell with the player or a weaker NPC
// resolves a kill; only if the player survived that sub-phase does a
// step onto the key by any NPC toggle the gates. White NPCs prefer
// horizontal movement toward the player, red NPCs prefer vertical
// movement; ties in a shared cell are broken in ascending NPC-slot
// order.
package mummymaze

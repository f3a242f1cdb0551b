package mummymaze

import "testing"

// TestPursuitFightKillsWeakerNPC is a white-box companion to the
// external package's TestPursuitMazeSolvesInThreeMoves: it walks the
// same forced solving path and inspects the packed position directly
// to confirm the scorpion (non-walking, strength 0) loses its fight
// with the mummy (walking, strength 2) rather than merely assuming it
// from the aggregate remoteness.
func TestPursuitFightKillsWeakerNPC(t *testing.T) {
	p, err := New("testdata/pursuit.maze")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	state := p.InitialState()
	for i := 0; i < 3; i++ {
		next, ok := p.DoMove(state, Move{Direction: Right})
		if !ok {
			t.Fatalf("move %d: RIGHT rejected", i)
		}
		state = next
	}

	pos := uint64(state.(State))
	if chrIsAlive(pos, 0) {
		t.Errorf("scorpion (slot 0) expected dead after the pursuit, still alive")
	}
	if !chrIsAlive(pos, 1) {
		t.Errorf("mummy (slot 1) expected alive after the pursuit, found dead")
	}
	if !playerIsAlive(pos) {
		t.Errorf("player expected alive at the exit")
	}
	if !p.IsPrimitive(state) {
		t.Errorf("final state expected primitive (player on exit)")
	}
}

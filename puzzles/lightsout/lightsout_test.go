package lightsout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/retrosolve/puzzles/lightsout"
)

func TestInvalidDimensionsFallBackToDefault(t *testing.T) {
	p := lightsout.New(0, 5)
	assert.Equal(t, uint64(512), p.HashSize())

	p = lightsout.New(9, 9) // 81 > 64 cells
	assert.Equal(t, uint64(512), p.HashSize())
}

func TestAllOffIsInitialAndPrimitive(t *testing.T) {
	p := lightsout.New(3, 3)
	initial := p.InitialState()
	assert.Equal(t, uint64(0), initial.Hash())
	assert.True(t, p.IsPrimitive(initial))
}

func TestHashSizeIsPowerOfTwoOfCellCount(t *testing.T) {
	p := lightsout.New(3, 3)
	assert.Equal(t, uint64(512), p.HashSize())
}

func TestMovesCoverEveryCellExactlyOnce(t *testing.T) {
	p := lightsout.New(3, 3)
	moves := p.Moves(p.InitialState())
	require.Len(t, moves, 9)
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	p := lightsout.New(3, 3)
	s := p.InitialState()
	m := lightsout.Move{I: 1, J: 1}
	next, ok := p.DoMove(s, m)
	require.True(t, ok)
	assert.NotEqual(t, s.Hash(), next.Hash())

	back, ok := p.DoMove(next, m)
	require.True(t, ok)
	assert.Equal(t, s.Hash(), back.Hash())
}

func TestCornerToggleAffectsOnlyThreeCells(t *testing.T) {
	p := lightsout.New(3, 3)
	next, ok := p.DoMove(p.InitialState(), lightsout.Move{I: 0, J: 0})
	require.True(t, ok)
	// bit 0 (0,0), bit 1 (0,1), bit 3 (1,0) flip; nothing else.
	assert.Equal(t, uint64(0b1011), next.Hash())
}

func TestOutOfRangeMoveIsRejected(t *testing.T) {
	p := lightsout.New(3, 3)
	_, ok := p.DoMove(p.InitialState(), lightsout.Move{I: 3, J: 0})
	assert.False(t, ok)
}

package mummymaze_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/retrosolve/graphsolver"
	"github.com/katalvlaran/retrosolve/puzzles/mummymaze"
)

func TestParseRejectsEmptyInput(t *testing.T) {
	_, err := mummymaze.Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, mummymaze.ErrEmptyMap)
}

func TestParseRejectsMapWithNoPlayer(t *testing.T) {
	_, err := mummymaze.Parse(strings.NewReader("1 1\nWWW\nW_W\nWWW\n"))
	assert.ErrorIs(t, err, mummymaze.ErrNoPlayer)
}

func TestParseRejectsTruncatedGrid(t *testing.T) {
	_, err := mummymaze.Parse(strings.NewReader("1 2\nWWWWW\n"))
	assert.ErrorIs(t, err, mummymaze.ErrTruncatedGrid)
}

func TestSimpleCorridorInitialState(t *testing.T) {
	p, err := mummymaze.New("testdata/simple.maze")
	require.NoError(t, err)

	initial := p.InitialState()
	assert.False(t, p.IsPrimitive(initial))

	moves := p.Moves(initial)
	var directions []string
	for _, m := range moves {
		directions = append(directions, m.String())
	}
	assert.Contains(t, directions, "RIGHT")
	assert.Contains(t, directions, "WAIT")
	assert.NotContains(t, directions, "LEFT")
}

func TestSteppingOntoExitIsPrimitive(t *testing.T) {
	p, err := mummymaze.New("testdata/simple.maze")
	require.NoError(t, err)

	initial := p.InitialState()
	next, ok := p.DoMove(initial, mummymaze.Move{Direction: mummymaze.Right})
	require.True(t, ok)
	assert.True(t, p.IsPrimitive(next))
}

func TestSimpleCorridorSolvesInOneMove(t *testing.T) {
	p, err := mummymaze.New("testdata/simple.maze")
	require.NoError(t, err)

	s, err := graphsolver.New(p)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Solve())
}

func TestSteppingOnTrapKillsPlayer(t *testing.T) {
	p, err := mummymaze.New("testdata/trapped.maze")
	require.NoError(t, err)

	initial := p.InitialState()
	next, ok := p.DoMove(initial, mummymaze.Move{Direction: mummymaze.Right})
	require.True(t, ok)
	assert.False(t, p.IsPrimitive(next))

	// Once dead, the player has no further moves.
	assert.Empty(t, p.Moves(next))
}

func TestTrappedCorridorHasNoSolution(t *testing.T) {
	p, err := mummymaze.New("testdata/trapped.maze")
	require.NoError(t, err)

	s, err := graphsolver.New(p)
	require.NoError(t, err)
	assert.Equal(t, graphsolver.Unreachable, s.Solve())
}

func TestPursuitMazeSolvesInThreeMoves(t *testing.T) {
	p, err := mummymaze.New("testdata/pursuit.maze")
	require.NoError(t, err)

	s, err := graphsolver.New(p)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Solve())

	var buf strings.Builder
	require.NoError(t, s.ShortestPathFrom(p.InitialState(), &buf))
	assert.Equal(t, "[rmt 3: RIGHT]->[rmt 2: RIGHT]->[rmt 1: RIGHT]->[END]\n", buf.String())
}

func TestRenderPlacesPlayerGlyph(t *testing.T) {
	p, err := mummymaze.New("testdata/simple.maze")
	require.NoError(t, err)

	out := p.Render(p.InitialState())
	assert.Contains(t, out, "4")
	assert.Contains(t, out, "E")
}

package hashlife

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenteredSubnode4x4(t *testing.T) {
	ds := NewNodeStore()
	n, err := ds.FromStateMap(mustStateMap(t, "0000"+"0110"+"0110"+"0000"))
	require.NoError(t, err)

	sub, err := ds.CenteredSubnode(n)
	require.NoError(t, err)
	sm, err := ds.AsStateMap(sub, nil)
	require.NoError(t, err)
	assert.Equal(t, "1111", boardString(sm))
}

func TestCenteredSubnodeRequiresLevel2(t *testing.T) {
	ds := NewNodeStore()
	n, err := ds.FromStateMap(mustStateMap(t, "0110"))
	require.NoError(t, err)
	_, err = ds.CenteredSubnode(n)
	assert.ErrorIs(t, err, ErrLevelTooLow)
}

func TestCenteredHorizontal2x2(t *testing.T) {
	ds := NewNodeStore()
	west, err := ds.FromStateMap(mustStateMap(t, "01"+"01"))
	require.NoError(t, err)
	east, err := ds.FromStateMap(mustStateMap(t, "10"+"10"))
	require.NoError(t, err)

	centered, err := ds.CenteredHorizontal(west, east)
	require.NoError(t, err)
	sm, err := ds.AsStateMap(centered, nil)
	require.NoError(t, err)
	assert.Equal(t, "1111", boardString(sm))
}

func TestCenteredVertical2x2(t *testing.T) {
	ds := NewNodeStore()
	north, err := ds.FromStateMap(mustStateMap(t, "00"+"11"))
	require.NoError(t, err)
	south, err := ds.FromStateMap(mustStateMap(t, "11"+"00"))
	require.NoError(t, err)

	centered, err := ds.CenteredVertical(north, south)
	require.NoError(t, err)
	sm, err := ds.AsStateMap(centered, nil)
	require.NoError(t, err)
	assert.Equal(t, "1111", boardString(sm))
}

func TestExpand2x2Blinker(t *testing.T) {
	ds := NewNodeStore()
	n, err := ds.FromStateMap(mustStateMap(t, "11"+"11"))
	require.NoError(t, err)

	expanded, err := ds.Expand(n)
	require.NoError(t, err)
	sm, err := ds.AsStateMap(expanded, nil)
	require.NoError(t, err)
	assert.Equal(t, "0000"+"0110"+"0110"+"0000", boardString(sm))
}

func TestShrinkInverseOfExpand(t *testing.T) {
	ds := NewNodeStore()
	n, err := ds.FromStateMap(mustStateMap(t, "0000"+"0110"+"0110"+"0000"))
	require.NoError(t, err)

	shrunk, err := ds.Shrink(n)
	require.NoError(t, err)
	sm, err := ds.AsStateMap(shrunk, nil)
	require.NoError(t, err)
	assert.Equal(t, "1111", boardString(sm))
}

func TestShrinkFailsOnNonEmptyRing(t *testing.T) {
	ds := NewNodeStore()
	n, err := ds.FromStateMap(mustStateMap(t, "0000"+"0110"+"0111"+"0000"))
	require.NoError(t, err)

	_, err = ds.Shrink(n)
	assert.ErrorIs(t, err, ErrCannotShrink)
}

func TestExpandShrinkIdempotence(t *testing.T) {
	ds := NewNodeStore()
	n, err := ds.FromStateMap(mustStateMap(t, "0110"+"1001"+"1001"+"0110"))
	require.NoError(t, err)

	expanded, err := ds.Expand(n)
	require.NoError(t, err)
	shrunk, err := ds.Shrink(expanded)
	require.NoError(t, err)
	assert.Same(t, n, shrunk)
}

func TestShrinkRejectsLevelBelow2(t *testing.T) {
	ds := NewNodeStore()
	n, err := ds.FromStateMap(mustStateMap(t, "0110"))
	require.NoError(t, err)
	_, err = ds.Shrink(n)
	assert.ErrorIs(t, err, ErrLevelTooLow)
}

func TestExpandRejectsLevel0(t *testing.T) {
	ds := NewNodeStore()
	_, err := ds.Expand(ds.Leaf(true))
	assert.ErrorIs(t, err, ErrLevelTooLow)
}

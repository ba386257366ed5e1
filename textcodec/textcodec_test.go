package textcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lauhayden/hashlife"
)

func TestDecodeRejectsEmptyInput(t *testing.T) {
	_, err := DecodeDefault("")
	assert.ErrorIs(t, err, ErrBadTextInput)
}

func TestDecodeRejectsInvalidMarkers(t *testing.T) {
	_, err := Decode("0110", "", "0")
	assert.ErrorIs(t, err, ErrInvalidMarker)

	_, err = Decode("0110", "1", "")
	assert.ErrorIs(t, err, ErrInvalidMarker)

	_, err = Decode("0110", "12", "0")
	assert.ErrorIs(t, err, ErrInvalidMarker)

	_, err = Decode("0110", "1", "01")
	assert.ErrorIs(t, err, ErrInvalidMarker)
}

func TestDecodeRejectsSideOne(t *testing.T) {
	// "123" filters down to a single "1" - side 1, rejected (< 2).
	_, err := DecodeDefault("123")
	assert.ErrorIs(t, err, ErrBadTextInput)

	// "123456789" filters down to a single "1" as well.
	_, err = DecodeDefault("123456789")
	assert.ErrorIs(t, err, ErrBadTextInput)
}

func TestDecodeRejectsEvenNonPowerOfTwoSide(t *testing.T) {
	// 36 marker characters filter to a 6x6 grid: a perfect square
	// with an even side, but not a power of two. The Python original
	// this codec is grounded on accepts this (a looseness this module
	// resolves); this implementation must reject it.
	raw := ""
	for i := 0; i < 36; i++ {
		raw += "0"
	}
	_, err := DecodeDefault(raw)
	assert.ErrorIs(t, err, ErrBadTextInput)
}

func TestDecodeStripsNonMarkerCharacters(t *testing.T) {
	sm, err := DecodeDefault("01 10")
	require.NoError(t, err)
	assert.Equal(t, uint(1), sm.Level())
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	raw := "0110"
	sm, err := DecodeDefault(raw)
	require.NoError(t, err)
	assert.Equal(t, hashlife.Dead, sm.Cells()[0][0])

	out, err := EncodeDefault(sm)
	require.NoError(t, err)
	assert.Equal(t, raw, out)
}

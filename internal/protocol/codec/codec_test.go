package codec_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meesudzu/ocelot/internal/protocol/codec"
)

func TestBoundedStringRejectsOverLength(t *testing.T) {
	_, err := codec.NewBoundedString(strings.Repeat("a", 17), 16)
	require.Error(t, err)
	assert.True(t, errors.Is(err, codec.ErrInvalidData))
}

func TestBoundedStringRoundTrip(t *testing.T) {
	bs, err := codec.NewBoundedString("localhost", 255)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, bs.EncodeTo(&buf))
	got, err := codec.DecodeBoundedString(&buf, 255)
	require.NoError(t, err)
	assert.Equal(t, "localhost", got.Value)
}

func TestBoolDecodeRejectsInvalidByte(t *testing.T) {
	_, err := codec.DecodeBool(bytes.NewReader([]byte{0x02}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, codec.ErrInvalidData))
}

func TestBoundedPrefixedArrayRejectsBeforeDecodingElements(t *testing.T) {
	// Declares length 2 (max+1) but only supplies garbage for one element;
	// the length check must fail before any element decode is attempted.
	data := []byte{0x02, 0xAA}
	_, err := codec.DecodeBoundedPrefixedArray(bytes.NewReader(data), 1, codec.DecodeUnsignedByte)
	require.Error(t, err)
	assert.True(t, errors.Is(err, codec.ErrInvalidData))
}

func TestPositionRoundTrip(t *testing.T) {
	cases := []codec.Position{
		{X: 0, Y: 0, Z: 0},
		{X: -33554432, Y: -2048, Z: -33554432},
		{X: 33554431, Y: 2047, Z: 33554431},
		{X: 18, Y: 64, Z: -200},
	}
	for _, p := range cases {
		var buf bytes.Buffer
		require.NoError(t, p.EncodeTo(&buf))
		got, err := codec.DecodePosition(&buf)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}

func TestIdentifierDefaultNamespace(t *testing.T) {
	id, err := codec.NewIdentifier("overworld")
	require.NoError(t, err)
	assert.Equal(t, "minecraft", id.Namespace)
	assert.Equal(t, "minecraft:overworld", id.String())
}

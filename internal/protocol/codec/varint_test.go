package codec_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meesudzu/ocelot/internal/protocol/codec"
)

func TestVarIntEncodeSpotChecks(t *testing.T) {
	cases := []struct {
		value codec.VarInt
		want  []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{2, []byte{0x02}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{255, []byte{0xff, 0x01}},
		{25565, []byte{0xdd, 0xc7, 0x01}},
		{2097151, []byte{0xff, 0xff, 0x7f}},
		{2147483647, []byte{0xff, 0xff, 0xff, 0xff, 0x07}},
		{-1, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
		{-2147483648, []byte{0x80, 0x80, 0x80, 0x80, 0x08}},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		require.NoError(t, tc.value.EncodeTo(&buf))
		assert.Equal(t, tc.want, buf.Bytes())
		assert.Equal(t, len(tc.want), tc.value.Len())
	}
}

func TestVarIntRoundTrip(t *testing.T) {
	values := []int32{0, 1, -1, 127, 128, -128, 25565, 2147483647, -2147483648}
	for _, v := range values {
		var buf bytes.Buffer
		require.NoError(t, codec.VarInt(v).EncodeTo(&buf))
		got, err := codec.DecodeVarInt(&buf)
		require.NoError(t, err)
		assert.Equal(t, v, int32(got))
	}
}

func TestVarIntTooBig(t *testing.T) {
	// Five continuation bytes followed by a terminator: six bytes in all,
	// exceeding the 5-byte cap.
	data := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0x01}
	_, err := codec.DecodeVarInt(bytes.NewReader(data))
	require.Error(t, err)
	assert.True(t, errors.Is(err, codec.ErrInvalidData))
}

func TestVarLongEncodeSpotChecks(t *testing.T) {
	cases := []struct {
		value codec.VarLong
		want  []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{2, []byte{0x02}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{255, []byte{0xff, 0x01}},
		{2147483647, []byte{0xff, 0xff, 0xff, 0xff, 0x07}},
		{9223372036854775807, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}},
		{-1, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}},
		{-2147483648, []byte{0x80, 0x80, 0x80, 0x80, 0xf8, 0xff, 0xff, 0xff, 0xff, 0x01}},
		{-9223372036854775808, []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		require.NoError(t, tc.value.EncodeTo(&buf))
		assert.Equal(t, tc.want, buf.Bytes())
	}
}

func TestVarLongRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 127, 2147483647, -2147483648, 9223372036854775807, -9223372036854775808}
	for _, v := range values {
		var buf bytes.Buffer
		require.NoError(t, codec.VarLong(v).EncodeTo(&buf))
		got, err := codec.DecodeVarLong(&buf)
		require.NoError(t, err)
		assert.Equal(t, v, int64(got))
	}
}

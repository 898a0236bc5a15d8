package nbt_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meesudzu/ocelot/internal/protocol/nbt"
)

func TestDecodeHelloWorld(t *testing.T) {
	raw, err := hex.DecodeString("0a000b68656c6c6f20776f726c640800046e616d65000942616e616e72616d6100")
	require.NoError(t, err)

	got, err := nbt.DecodeTraditional(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "hello world", got.Name)

	want := nbt.Compound{"name": nbt.String("Bananrama")}
	assert.True(t, nbt.Equal(want, got.Tag))
}

func TestEncodeHelloWorldRoundTrip(t *testing.T) {
	nt := nbt.NamedTag{Name: "hello world", Tag: nbt.Compound{"name": nbt.String("Bananrama")}}
	var buf bytes.Buffer
	require.NoError(t, nbt.EncodeTraditional(&buf, nt))

	got, err := nbt.DecodeTraditional(&buf)
	require.NoError(t, err)
	assert.Equal(t, nt.Name, got.Name)
	assert.True(t, nbt.Equal(nt.Tag, got.Tag))
}

func TestNetworkFramingOmitsRootName(t *testing.T) {
	tag := nbt.Compound{"name": nbt.String("Bananrama")}
	var traditional bytes.Buffer
	require.NoError(t, nbt.EncodeTraditional(&traditional, nbt.NamedTag{Name: "hello world", Tag: tag}))

	var network bytes.Buffer
	require.NoError(t, nbt.EncodeNetwork(&network, tag))

	// Network framing is strictly shorter: no name-length/name slot.
	assert.Less(t, network.Len(), traditional.Len())

	got, err := nbt.DecodeNetwork(&network)
	require.NoError(t, err)
	assert.Equal(t, "", got.Name)
	assert.True(t, nbt.Equal(tag, got.Tag))
}

func TestDecodeRejectsRootEnd(t *testing.T) {
	_, err := nbt.DecodeTraditional(bytes.NewReader([]byte{0x00}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, nbt.ErrInvalidData))

	_, err = nbt.DecodeNetwork(bytes.NewReader([]byte{0x00}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, nbt.ErrInvalidData))
}

func TestListOfCompoundsRoundTrip(t *testing.T) {
	tag := nbt.List{
		ElementType: nbt.TagCompound,
		Items: []nbt.Tag{
			nbt.Compound{"a": nbt.Int(1)},
			nbt.Compound{"b": nbt.Int(2)},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, nbt.EncodeNetwork(&buf, tag))
	got, err := nbt.DecodeNetwork(&buf)
	require.NoError(t, err)
	assert.True(t, nbt.Equal(tag, got.Tag))
}

func TestNumericTagsRoundTrip(t *testing.T) {
	tag := nbt.Compound{
		"byte":      nbt.Byte(-12),
		"short":     nbt.Short(-3000),
		"int":       nbt.Int(123456),
		"long":      nbt.Long(-123456789012),
		"float":     nbt.Float(3.5),
		"double":    nbt.Double(-2.25),
		"bytearray": nbt.ByteArray{1, -2, 3},
		"intarray":  nbt.IntArray{1, -2, 3},
		"longarray": nbt.LongArray{1, -2, 3},
	}
	var buf bytes.Buffer
	require.NoError(t, nbt.EncodeNetwork(&buf, tag))
	got, err := nbt.DecodeNetwork(&buf)
	require.NoError(t, err)
	assert.True(t, nbt.Equal(tag, got.Tag))
}

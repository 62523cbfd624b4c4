package atom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGidEncode2Part(t *testing.T) {
	// mat_object_id <32-105> -> 20 00 69
	g := NewGid2(32, 105)
	b, err := EncodeGid(g)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x20, 0x00, 0x69}, b)
}

func TestGidEncode3Part(t *testing.T) {
	// dod_gid <1-0-21029> -> 01 00 52 25
	g := NewGid3(1, 0, 21029)
	b, err := EncodeGid(g)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x00, 0x52, 0x25}, b)
}

func TestGidRoundTrip2Part(t *testing.T) {
	g := NewGid2(32, 105)
	b, err := EncodeGid(g)
	require.NoError(t, err)
	got, err := DecodeGid(b, false)
	require.NoError(t, err)
	assert.True(t, g.Equal(got))
}

func TestGidRoundTrip3PartNonzero(t *testing.T) {
	g := NewGid3(1, 0, 21029)
	b, err := EncodeGid(g)
	require.NoError(t, err)
	got, err := DecodeGid(b, false)
	require.NoError(t, err)
	assert.True(t, g.Equal(got))
}

func TestGidThreePartZeroDistinctFromTwoPart(t *testing.T) {
	two := NewGid2(1, 5)
	three := NewGid3(1, 0, 5)
	assert.False(t, two.Equal(three))
	assert.True(t, two.HasSubtype() == false)
	assert.True(t, three.HasSubtype())
}

func TestGidDecodeThreeBytePrefersThreePartZero(t *testing.T) {
	data := []byte{0x05, 0x00, 0x7B}
	got, err := DecodeGid(data, true)
	require.NoError(t, err)
	assert.True(t, got.Equal(NewGid3(0, 5, 123)))

	got2, err := DecodeGid(data, false)
	require.NoError(t, err)
	assert.True(t, got2.Equal(NewGid2(5, 123)))
}

func TestParseGid(t *testing.T) {
	g, err := ParseGid("32-105")
	require.NoError(t, err)
	assert.True(t, g.Equal(NewGid2(32, 105)))

	g3, err := ParseGid("1-0-21029")
	require.NoError(t, err)
	assert.True(t, g3.Equal(NewGid3(1, 0, 21029)))

	_, err = ParseGid("not-a-gid")
	assert.Error(t, err)
}

func TestGidString(t *testing.T) {
	assert.Equal(t, "32-105", NewGid2(32, 105).String())
	assert.Equal(t, "1-0-21029", NewGid3(1, 0, 21029).String())
}

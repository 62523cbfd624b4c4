package atom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryFullStyleWorkedExampleS1(t *testing.T) {
	// uni_start_stream -> 00 01 00 (protocol 0, atom 1, zero-length payload)
	enc := NewBinaryEncoder(false)
	out := enc.EncodeFrame(nil, protocolUNI, 1, nil)
	assert.Equal(t, []byte{0x00, 0x01, 0x00}, out)
}

func TestBinaryFullStyleRoundTrip(t *testing.T) {
	enc := NewBinaryEncoder(false)
	payload := []byte("TOSAdvisor")
	out := enc.EncodeFrame(nil, protocolDE, 1, payload)

	dec := NewBinaryDecoder()
	frame, n, err := dec.DecodeFrame(out)
	require.NoError(t, err)
	assert.Equal(t, len(out), n)
	assert.Equal(t, protocolDE, frame.Protocol)
	assert.Equal(t, 1, frame.AtomNumber)
	assert.Equal(t, payload, frame.Payload)
	assert.Equal(t, StyleFull, frame.Style)
}

func TestBinaryCompactStylesRoundTrip(t *testing.T) {
	enc := NewBinaryEncoder(true)
	var out []byte
	out = enc.EncodeFrame(out, protocolUNI, 1, nil)               // FULL (no current_protocol yet)
	out = enc.EncodeFrame(out, protocolUNI, 2, []byte{0x7})       // DATA (1-byte payload <= 7, atom < 32)
	out = enc.EncodeFrame(out, protocolDE, 1, []byte("hi"))       // LENGTH (2-byte payload, atom < 32)
	out = enc.EncodeFrame(out, protocolDE, 1, []byte("hi again")) // CURRENT (8-byte payload, same protocol)
	out = enc.EncodeFrame(out, protocolDE, 2, []byte("x"))        // LENGTH (1-byte payload, atom < 32)

	dec := NewBinaryDecoder()
	frames, err := dec.DecodeAll(out)
	require.NoError(t, err)
	require.Len(t, frames, 5)

	want := []struct {
		protocol, atom int
		payload        string
	}{
		{protocolUNI, 1, ""},
		{protocolUNI, 2, "\x07"},
		{protocolDE, 1, "hi"},
		{protocolDE, 1, "hi again"},
		{protocolDE, 2, "x"},
	}
	for i, w := range want {
		assert.Equal(t, w.protocol, frames[i].Protocol, "frame %d", i)
		assert.Equal(t, w.atom, frames[i].AtomNumber, "frame %d", i)
		assert.Equal(t, []byte(w.payload), frames[i].Payload, "frame %d", i)
	}
}

func TestBinaryPrefixStyleWorkedExampleHighProtocol(t *testing.T) {
	// protocol=40 (>= maxSmallProtocol, needs PREFIX), atom=200, payload="Z".
	// byte1 = 111|PP|AA|S: PP = protocol bits 6-5 = (40>>5)&3 = 1, AA = 0
	// (FULL inner), S = 0 -> 0b111_01_00_0 = 0xE8.
	// byte2 = (FULL=0)<<5 | protocol low 5 bits (40&0x1F=8) = 0x08.
	// byte3 = full 8-bit atom number (200 = 0xC8).
	// byte4 = length field (1) = 0x01.
	// byte5 = payload ('Z' = 0x5A).
	enc := NewBinaryEncoder(false)
	out := enc.EncodeFrame(nil, 40, 200, []byte("Z"))
	assert.Equal(t, []byte{0xE8, 0x08, 0xC8, 0x01, 0x5A}, out)

	dec := NewBinaryDecoder()
	frame, n, err := dec.DecodeFrame(out)
	require.NoError(t, err)
	assert.Equal(t, len(out), n)
	assert.Equal(t, 40, frame.Protocol)
	assert.Equal(t, 200, frame.AtomNumber)
	assert.Equal(t, []byte("Z"), frame.Payload)
	assert.Equal(t, StylePrefix, frame.Style)
}

func TestBinaryLargeAtomContinuationReassembly(t *testing.T) {
	// Build a continuation sequence by hand: start names (protocolDE, 9),
	// carries "AB", one segment carries "CD", end carries "EF".
	enc := NewBinaryEncoder(false)
	var out []byte
	out = enc.EncodeFrame(out, protocolUNI, 4, []byte{byte(protocolDE), 9, 'A', 'B'})
	out = enc.EncodeFrame(out, protocolUNI, 5, []byte("CD"))
	out = enc.EncodeFrame(out, protocolUNI, 6, []byte("EF"))

	dec := NewBinaryDecoder()
	frames, err := dec.DecodeAll(out)
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, protocolDE, frames[0].Protocol)
	assert.Equal(t, 9, frames[0].AtomNumber)
	assert.Equal(t, []byte("ABCDEF"), frames[0].Payload)
}

func TestBinaryStraySegmentPassesThrough(t *testing.T) {
	enc := NewBinaryEncoder(false)
	out := enc.EncodeFrame(nil, protocolUNI, 5, []byte("orphan"))

	dec := NewBinaryDecoder()
	frames, err := dec.DecodeAll(out)
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, protocolUNI, frames[0].Protocol)
	assert.Equal(t, 5, frames[0].AtomNumber)
	assert.Equal(t, []byte("orphan"), frames[0].Payload)
}

func TestBinaryCompactOutputDecodesEqualToFullOutput(t *testing.T) {
	type in struct {
		protocol, atom int
		payload        []byte
	}
	inputs := []in{
		{protocolUNI, 1, nil},
		{protocolDE, 1, []byte("payload")},
		{protocolDE, 2, []byte{0}},
		{protocolDE, 3, []byte{1}},
		{protocolDE, 4, nil},
		{protocolMAT, 12, []byte{0x20, 0x00, 0x69}},
		{protocolIDB, 1, []byte{0x01, 0x02, 0x03}},
		{protocolUNI, 2, nil},
	}

	full := NewBinaryEncoder(false)
	compact := NewBinaryEncoder(true)
	var fullBytes, compactBytes []byte
	for _, i := range inputs {
		fullBytes = full.EncodeFrame(fullBytes, i.protocol, i.atom, i.payload)
		compactBytes = compact.EncodeFrame(compactBytes, i.protocol, i.atom, i.payload)
	}
	assert.Less(t, len(compactBytes), len(fullBytes))

	fullFrames, err := NewBinaryDecoder().DecodeAll(fullBytes)
	require.NoError(t, err)
	compactFrames, err := NewBinaryDecoder().DecodeAll(compactBytes)
	require.NoError(t, err)
	require.Equal(t, len(fullFrames), len(compactFrames))
	for i := range fullFrames {
		assert.Equal(t, fullFrames[i].Protocol, compactFrames[i].Protocol, "frame %d", i)
		assert.Equal(t, fullFrames[i].AtomNumber, compactFrames[i].AtomNumber, "frame %d", i)
		assert.Equal(t, fullFrames[i].Payload, compactFrames[i].Payload, "frame %d", i)
	}
}

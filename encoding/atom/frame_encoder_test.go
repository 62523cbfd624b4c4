package atom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectFrames(t *testing.T, maxFrameSize int, atoms [][3]interface{}) [][]byte {
	t.Helper()
	var frames [][]byte
	fe := NewFrameAwareEncoder(maxFrameSize, func(b []byte, idx int, isLast bool) {
		cp := append([]byte(nil), b...)
		frames = append(frames, cp)
		if isLast {
			assert.Equal(t, idx, len(frames)-1)
		}
	})
	for _, a := range atoms {
		err := fe.Encode(a[0].(int), a[1].(int), a[2].([]byte))
		require.NoError(t, err)
	}
	fe.Finish()
	return frames
}

func TestFrameAwareEncoderPacksMultipleAtomsIntoOneBucket(t *testing.T) {
	frames := collectFrames(t, 64, [][3]interface{}{
		{protocolUNI, 1, []byte(nil)},
		{protocolDE, 1, []byte("hi")},
	})
	require.Len(t, frames, 1)

	dec := NewBinaryDecoder()
	decoded, err := dec.DecodeAll(frames[0])
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, protocolUNI, decoded[0].Protocol)
	assert.Equal(t, protocolDE, decoded[1].Protocol)
}

func TestFrameAwareEncoderFlushesWhenBucketWouldOverflow(t *testing.T) {
	frames := collectFrames(t, 8, [][3]interface{}{
		{protocolDE, 1, []byte("hello")},
		{protocolDE, 2, []byte("world")},
	})
	require.Len(t, frames, 2)
	require.NotEmpty(t, frames[0])
	require.NotEmpty(t, frames[1])
}

func TestFrameAwareEncoderEmitsEmptyFinalFrameForEmptyStream(t *testing.T) {
	frames := collectFrames(t, 64, nil)
	require.Len(t, frames, 1)
	assert.Empty(t, frames[0])
}

func TestFrameAwareEncoderSplitsOversizedAtomIntoContinuationFrames(t *testing.T) {
	payload := make([]byte, 50)
	for i := range payload {
		payload[i] = byte(i)
	}
	frames := collectFrames(t, 16, [][3]interface{}{
		{protocolDE, 1, payload},
	})
	require.True(t, len(frames) > 1)

	var joined []byte
	for _, f := range frames {
		joined = append(joined, f...)
	}
	dec := NewBinaryDecoder()
	decoded, err := dec.DecodeAll(joined)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, protocolDE, decoded[0].Protocol)
	assert.Equal(t, 1, decoded[0].AtomNumber)
	assert.Equal(t, payload, decoded[0].Payload)
}

package atom

// FrameAwareEncoder buckets encoded atoms into transport-sized chunks,
// calling onFrame(bytes, frameIndex, isLast) as each bucket fills. No
// atom is split across a bucket boundary unless the atom's own
// FULL-frame encoding already exceeds maxFrameSize, in which case it is
// split via the UNI large-atom continuation sub-protocol
// (uni_large_atom_start/segment/end, atom numbers 4/5/6 of protocol 0)
// and each continuation chunk is emitted as its own frame.
type FrameAwareEncoder struct {
	maxFrameSize int
	onFrame      func(bytes []byte, frameIndex int, isLast bool)
	bucket       []byte
	frameIndex   int
}

// continuationOverhead is the worst-case byte cost of a FULL-style
// frame's framing: 1 style/protocol header byte, 1 atom-number byte,
// and a 2-byte length field. Chunks small enough for a 1-byte length
// field come in a byte under budget.
const continuationOverhead = 4

func NewFrameAwareEncoder(maxFrameSize int, onFrame func([]byte, int, bool)) *FrameAwareEncoder {
	return &FrameAwareEncoder{maxFrameSize: maxFrameSize, onFrame: onFrame}
}

// Encode adds one atom to the stream being framed.
func (fe *FrameAwareEncoder) Encode(protocol, atomNumber int, payload []byte) error {
	frame := fullFrameBytes(protocol, atomNumber, payload)
	if len(frame) > fe.maxFrameSize {
		return fe.encodeLargeAtom(protocol, atomNumber, payload)
	}
	if len(fe.bucket)+len(frame) > fe.maxFrameSize {
		fe.emit(false)
	}
	fe.bucket = append(fe.bucket, frame...)
	return nil
}

// Finish flushes any buffered bytes as the final frame, guaranteeing at
// least one callback invocation with isLast=true even for an entirely
// empty stream.
func (fe *FrameAwareEncoder) Finish() {
	fe.emit(true)
}

func (fe *FrameAwareEncoder) emit(isLast bool) {
	fe.onFrame(fe.bucket, fe.frameIndex, isLast)
	fe.frameIndex++
	fe.bucket = nil
}

func fullFrameBytes(protocol, atomNumber int, payload []byte) []byte {
	style := StyleFull
	if protocol >= maxSmallProtocol {
		style = StylePrefix
	}
	return appendFrame(nil, style, protocol, atomNumber, payload, false)
}

// encodeLargeAtom splits an oversized atom into UNI continuation
// frames, flushing any pending bucket first so the continuation
// sequence starts on a frame boundary.
func (fe *FrameAwareEncoder) encodeLargeAtom(protocol, atomNumber int, payload []byte) error {
	Logger.Debugw("splitting oversized atom into continuation frames",
		"protocol", protocol, "atomNumber", atomNumber, "payloadLen", len(payload), "maxFrameSize", fe.maxFrameSize)
	if len(fe.bucket) > 0 {
		fe.emit(false)
	}
	chunkSize := fe.maxFrameSize - continuationOverhead
	if chunkSize <= 2 {
		return newError(ErrInvalidBinaryFormat, 0, 0, "max_frame_size too small to carry a large-atom continuation")
	}

	startChunkSize := chunkSize - 2 // uni_large_atom_start payload also carries protocol+atom number
	if startChunkSize < 0 {
		startChunkSize = 0
	}
	remaining := payload
	first := remaining
	if len(first) > startChunkSize {
		first = first[:startChunkSize]
	}
	remaining = remaining[len(first):]
	startPayload := append([]byte{byte(protocol), byte(atomNumber)}, first...)
	fe.bucket = fullFrameBytes(protocolUNI, 4, startPayload)
	fe.emit(false)

	for len(remaining) > chunkSize {
		chunk := remaining[:chunkSize]
		remaining = remaining[chunkSize:]
		fe.bucket = fullFrameBytes(protocolUNI, 5, chunk)
		fe.emit(false)
	}

	fe.bucket = fullFrameBytes(protocolUNI, 6, remaining)
	fe.emit(false)
	return nil
}

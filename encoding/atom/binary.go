package atom

import (
	"fmt"
)

// Style names the wire encoding style of one atom frame, selected by
// the top 3 bits of its header byte. Styles let the encoder omit fields
// that repeat the decoder's running current_protocol state instead of
// writing every field explicitly on every frame.
type Style uint8

const (
	StyleFull    Style = 0 // [000 PPPPP] header; explicit atom byte, length field, data
	StyleLength  Style = 1 // [001 PPPPP] header; trailing [LLL AAAAA][data], data.len 1..7, atom < 32
	StyleData    Style = 2 // [010 PPPPP] header; trailing [DDD AAAAA], data = [d], d <= 7, atom < 32
	StyleAtom    Style = 3 // [011 AAAAA] header; no trailing bytes, data empty, same protocol
	StyleCurrent Style = 4 // [100 AAAAA] header; trailing [len][data], same protocol
	StyleZero    Style = 5 // [101 AAAAA] header; no trailing bytes, data = [0], same protocol
	StyleOne     Style = 6 // [110 AAAAA] header; no trailing bytes, data = [1], same protocol
	StylePrefix  Style = 7 // [111 PP AA S] header, used when protocol >= maxSmallProtocol
)

func (s Style) String() string {
	switch s {
	case StyleFull:
		return "FULL"
	case StyleLength:
		return "LENGTH"
	case StyleData:
		return "DATA"
	case StyleAtom:
		return "ATOM"
	case StyleCurrent:
		return "CURRENT"
	case StyleZero:
		return "ZERO"
	case StyleOne:
		return "ONE"
	case StylePrefix:
		return "PREFIX"
	default:
		return fmt.Sprintf("Style(%d)", uint8(s))
	}
}

// maxSmallProtocol is one more than the largest protocol value (31)
// StyleFull/StyleLength/StyleData can pack into their header's low 5
// bits. Protocols at or
// above this use StylePrefix instead, which carries the protocol split
// across two bytes. The non-FULL/non-PREFIX styles (3-6) address atoms
// with the same 5-bit field width, so the bound doubles as their
// atom-number limit.
const maxSmallProtocol = 32

// AtomFrame is one decoded (or about-to-be-encoded) wire frame: an
// atom's protocol and atom number, the style it was carried in, and its
// payload bytes. For a reassembled large atom, Style reports the
// logical style (always StyleFull) rather than the UNI 4/5/6 frames
// actually seen on the wire. A frame carried in PREFIX reports
// StylePrefix regardless of which inner style the second byte selected.
type AtomFrame struct {
	Protocol   int
	AtomNumber int
	Style      Style
	Payload    []byte
}

// BinaryEncoder turns a sequence of (protocol, atom number, payload)
// triples into wire bytes, tracking the decoder-side current_protocol
// register so it can choose compact styles. It dispatches on Style the
// same way a fixed TLV codec dispatches on tag, generalized to an
// 8-style frame format instead of one fixed header shape.
type BinaryEncoder struct {
	compact         bool
	currentProtocol int
	haveCurrent     bool
}

// NewBinaryEncoder creates an encoder. In FULL-only mode every frame is
// written with an explicit protocol, atom number and length field (or
// PREFIX/FULL-inner for protocols that don't fit in 5 bits); in compact
// mode the encoder greedily picks the smallest applicable style.
func NewBinaryEncoder(compact bool) *BinaryEncoder {
	return &BinaryEncoder{compact: compact}
}

// Reset clears the encoder's running current_protocol register,
// starting a fresh context (used between independent nested streams).
func (e *BinaryEncoder) Reset() {
	e.haveCurrent = false
}

// EncodeFrame appends the wire bytes for one atom to dst and returns
// the extended slice.
func (e *BinaryEncoder) EncodeFrame(dst []byte, protocol, atomNumber int, payload []byte) []byte {
	style := e.chooseStyle(protocol, atomNumber, payload)
	dst = appendFrame(dst, style, protocol, atomNumber, payload, e.compact)
	e.currentProtocol = protocol
	e.haveCurrent = true
	return dst
}

func (e *BinaryEncoder) chooseStyle(protocol, atomNumber int, payload []byte) Style {
	style := e.pickStyle(protocol, atomNumber, payload)
	Logger.Debugw("binary style chosen", "protocol", protocol, "atomNumber", atomNumber,
		"payloadLen", len(payload), "style", style.String())
	return style
}

// pickStyle chooses the outer style from each style's applicability
// conditions.
// Non-compact mode emits FULL exclusively (PREFIX only when protocol
// doesn't fit in 5 bits), the reference-compatible default; compact
// mode greedily picks the smallest style whose conditions hold.
func (e *BinaryEncoder) pickStyle(protocol, atomNumber int, payload []byte) Style {
	if protocol >= maxSmallProtocol {
		return StylePrefix
	}
	if !e.compact {
		return StyleFull
	}
	n := len(payload)
	smallAtom := atomNumber < maxSmallProtocol
	sameProtocol := e.haveCurrent && protocol == e.currentProtocol
	switch {
	case n == 0 && smallAtom && sameProtocol:
		return StyleAtom
	case n == 1 && payload[0] == 0 && smallAtom && sameProtocol:
		return StyleZero
	case n == 1 && payload[0] == 1 && smallAtom && sameProtocol:
		return StyleOne
	case n == 1 && payload[0] <= 7 && smallAtom:
		return StyleData
	case n >= 1 && n <= 7 && smallAtom:
		return StyleLength
	case smallAtom && sameProtocol:
		return StyleCurrent
	default:
		return StyleFull
	}
}

// pickPrefixInnerStyle chooses PREFIX's second-byte inner style. The
// inner style can only be one of the non-PREFIX styles, and only a
// style whose atom-number field is 7 bits wide (AA's 2 bits plus the
// atom byte's low 5 bits) can address an atom number at all, so any
// candidate needs bit 5 of the atom number clear. Non-compact mode
// always uses FULL, matching the reference-compatible default.
func pickPrefixInnerStyle(compact bool, atomNumber int, payload []byte) Style {
	if !compact {
		return StyleFull
	}
	n := len(payload)
	fitsAA := atomNumber&0x20 == 0 && atomNumber < 128
	switch {
	case n == 0 && fitsAA:
		return StyleAtom
	case n == 1 && payload[0] == 0 && fitsAA:
		return StyleZero
	case n == 1 && payload[0] == 1 && fitsAA:
		return StyleOne
	case n == 1 && payload[0] <= 7 && fitsAA:
		return StyleData
	case n >= 1 && n <= 7 && fitsAA:
		return StyleLength
	default:
		return StyleFull
	}
}

// appendFrame writes one wire frame for (protocol, atomNumber, payload)
// in the given outer style, following that style's first-byte and
// trailing-byte layout exactly. compact only affects StylePrefix,
// whose inner style depends on the encoder's mode.
func appendFrame(dst []byte, style Style, protocol, atomNumber int, payload []byte, compact bool) []byte {
	switch style {
	case StyleFull:
		dst = append(dst, encodeHeader(style, uint8(protocol)), byte(atomNumber))
		dst = appendLenField(dst, len(payload))
		return append(dst, payload...)
	case StyleLength:
		dst = append(dst, encodeHeader(style, uint8(protocol)))
		dst = append(dst, byte(len(payload))<<5|byte(atomNumber)&0x1F)
		return append(dst, payload...)
	case StyleData:
		dst = append(dst, encodeHeader(style, uint8(protocol)))
		return append(dst, payload[0]<<5|byte(atomNumber)&0x1F)
	case StyleAtom:
		return append(dst, encodeHeader(style, uint8(atomNumber)))
	case StyleCurrent:
		dst = append(dst, encodeHeader(style, uint8(atomNumber)))
		dst = appendLenField(dst, len(payload))
		return append(dst, payload...)
	case StyleZero, StyleOne:
		return append(dst, encodeHeader(style, uint8(atomNumber)))
	case StylePrefix:
		return appendPrefixFrame(dst, protocol, atomNumber, payload, compact)
	}
	return dst
}

// appendPrefixFrame writes the two PREFIX header bytes - [111|PP|AA|S]
// then the inner style/protocol-low-5 byte - followed by whatever
// trailing bytes the chosen inner style needs. AA (and so the inner
// style's atom byte) is only meaningful for the non-FULL/non-CURRENT
// inner styles; FULL/CURRENT instead carry the full 8-bit atom number
// in an explicit byte right after the header, exactly as they would as
// outer styles.
func appendPrefixFrame(dst []byte, protocol, atomNumber int, payload []byte, compact bool) []byte {
	inner := pickPrefixInnerStyle(compact, atomNumber, payload)
	Logger.Debugw("prefix inner style chosen", "protocol", protocol, "atomNumber", atomNumber,
		"payloadLen", len(payload), "inner", inner.String())

	pp := uint8(protocol>>5) & 0x3
	var aa uint8
	if inner != StyleFull && inner != StyleCurrent {
		aa = uint8(atomNumber>>6) & 0x3
	}
	dst = append(dst, 0xE0|pp<<3|aa<<1) // 111 | PP | AA | S(=0)
	dst = append(dst, uint8(inner)<<5|uint8(protocol)&0x1F)

	switch inner {
	case StyleFull, StyleCurrent:
		dst = append(dst, byte(atomNumber))
		dst = appendLenField(dst, len(payload))
		return append(dst, payload...)
	case StyleLength:
		dst = append(dst, byte(len(payload))<<5|uint8(atomNumber)&0x1F)
		return append(dst, payload...)
	case StyleData:
		return append(dst, payload[0]<<5|uint8(atomNumber)&0x1F)
	case StyleAtom, StyleZero, StyleOne:
		return append(dst, uint8(atomNumber)&0x1F)
	}
	return dst
}

// appendLenField writes n as a single literal byte when it fits in
// 0-127, or as two bytes - 0x80|(n>>8) then n&0xFF - otherwise,
// supporting lengths up to 32 KiB.
func appendLenField(dst []byte, n int) []byte {
	if n <= 0x7F {
		return append(dst, byte(n))
	}
	return append(dst, 0x80|byte(n>>8), byte(n))
}

func encodeHeader(style Style, low5 uint8) byte {
	return byte(style)<<5 | (low5 & 0x1F)
}

// BinaryDecoder reads wire bytes back into AtomFrame values, maintaining
// the same current_protocol register the encoder used, and
// reassembling UNI large-atom continuation sequences (atom numbers
// 4/5/6 of protocol 0) into single logical frames.
type BinaryDecoder struct {
	currentProtocol int
	haveCurrent     bool
}

func NewBinaryDecoder() *BinaryDecoder {
	return &BinaryDecoder{}
}

// DecodeFrame decodes exactly one wire frame starting at data[0],
// returning the frame and the number of bytes consumed.
func (d *BinaryDecoder) DecodeFrame(data []byte) (AtomFrame, int, error) {
	if len(data) == 0 {
		return AtomFrame{}, 0, newError(ErrUnexpectedEOF, 0, 0, "no bytes remaining for frame header")
	}
	header := data[0]
	style := Style(header >> 5)
	low5 := header & 0x1F

	if style == StylePrefix {
		return d.decodePrefixFrame(data)
	}

	pos := 1
	var protocol, atomNum, n int
	var payload []byte

	switch style {
	case StyleFull:
		protocol = int(low5)
		if len(data) < pos+1 {
			return AtomFrame{}, 0, newError(ErrUnexpectedEOF, 0, 0, "truncated FULL frame header")
		}
		atomNum = int(data[pos])
		pos++
		var err error
		n, pos, err = readLenField(data, pos)
		if err != nil {
			return AtomFrame{}, 0, err
		}
	case StyleLength:
		protocol = int(low5)
		if len(data) < pos+1 {
			return AtomFrame{}, 0, newError(ErrUnexpectedEOF, 0, 0, "truncated LENGTH frame")
		}
		lb := data[pos]
		pos++
		n = int(lb >> 5)
		atomNum = int(lb & 0x1F)
	case StyleData:
		protocol = int(low5)
		if len(data) < pos+1 {
			return AtomFrame{}, 0, newError(ErrUnexpectedEOF, 0, 0, "truncated DATA frame")
		}
		db := data[pos]
		pos++
		atomNum = int(db & 0x1F)
		payload = []byte{db >> 5}
	case StyleAtom:
		if !d.haveCurrent {
			return AtomFrame{}, 0, newError(ErrInvalidBinaryFormat, 0, 0, "ATOM frame with no current_protocol set")
		}
		protocol = d.currentProtocol
		atomNum = int(low5)
		payload = []byte{}
	case StyleCurrent:
		if !d.haveCurrent {
			return AtomFrame{}, 0, newError(ErrInvalidBinaryFormat, 0, 0, "CURRENT frame with no current_protocol set")
		}
		protocol = d.currentProtocol
		atomNum = int(low5)
		var err error
		n, pos, err = readLenField(data, pos)
		if err != nil {
			return AtomFrame{}, 0, err
		}
	case StyleZero:
		if !d.haveCurrent {
			return AtomFrame{}, 0, newError(ErrInvalidBinaryFormat, 0, 0, "ZERO frame with no current_protocol set")
		}
		protocol = d.currentProtocol
		atomNum = int(low5)
		payload = []byte{0}
	case StyleOne:
		if !d.haveCurrent {
			return AtomFrame{}, 0, newError(ErrInvalidBinaryFormat, 0, 0, "ONE frame with no current_protocol set")
		}
		protocol = d.currentProtocol
		atomNum = int(low5)
		payload = []byte{1}
	default:
		return AtomFrame{}, 0, newError(ErrInvalidBinaryFormat, 0, 0, "unknown frame style %d", style)
	}

	if payload == nil {
		if len(data) < pos+n {
			return AtomFrame{}, 0, newError(ErrUnexpectedEOF, 0, 0, "truncated payload for %s frame", style)
		}
		payload = data[pos : pos+n]
		pos += n
	}

	d.currentProtocol = protocol
	d.haveCurrent = true

	return AtomFrame{Protocol: protocol, AtomNumber: atomNum, Style: style, Payload: payload}, pos, nil
}

// decodePrefixFrame mirrors appendPrefixFrame: it reads the PP/AA
// header bits and the inner-style/protocol-low-5 second byte, then
// dispatches on the inner style to read the rest of the frame,
// reconstructing the atom number from AA plus the inner style's atom
// byte where that style doesn't carry a full 8-bit atom number.
func (d *BinaryDecoder) decodePrefixFrame(data []byte) (AtomFrame, int, error) {
	if len(data) < 2 {
		return AtomFrame{}, 0, newError(ErrUnexpectedEOF, 0, 0, "truncated PREFIX frame header")
	}
	b0, b1 := data[0], data[1]
	pp := (b0 >> 3) & 0x3
	aa := (b0 >> 1) & 0x3
	inner := Style(b1 >> 5)
	protocol := int(pp)<<5 | int(b1&0x1F)
	pos := 2

	var atomNum, n int
	var payload []byte

	switch inner {
	case StyleFull, StyleCurrent:
		if len(data) < pos+1 {
			return AtomFrame{}, 0, newError(ErrUnexpectedEOF, 0, 0, "truncated PREFIX/%s frame", inner)
		}
		atomNum = int(data[pos])
		pos++
		var err error
		n, pos, err = readLenField(data, pos)
		if err != nil {
			return AtomFrame{}, 0, err
		}
	case StyleLength:
		if len(data) < pos+1 {
			return AtomFrame{}, 0, newError(ErrUnexpectedEOF, 0, 0, "truncated PREFIX/LENGTH frame")
		}
		ab := data[pos]
		pos++
		n = int(ab >> 5)
		atomNum = int(aa)<<6 | int(ab&0x1F)
	case StyleData:
		if len(data) < pos+1 {
			return AtomFrame{}, 0, newError(ErrUnexpectedEOF, 0, 0, "truncated PREFIX/DATA frame")
		}
		ab := data[pos]
		pos++
		atomNum = int(aa)<<6 | int(ab&0x1F)
		payload = []byte{ab >> 5}
	case StyleAtom:
		if len(data) < pos+1 {
			return AtomFrame{}, 0, newError(ErrUnexpectedEOF, 0, 0, "truncated PREFIX/ATOM frame")
		}
		ab := data[pos]
		pos++
		atomNum = int(aa)<<6 | int(ab&0x1F)
		payload = []byte{}
	case StyleZero:
		if len(data) < pos+1 {
			return AtomFrame{}, 0, newError(ErrUnexpectedEOF, 0, 0, "truncated PREFIX/ZERO frame")
		}
		ab := data[pos]
		pos++
		atomNum = int(aa)<<6 | int(ab&0x1F)
		payload = []byte{0}
	case StyleOne:
		if len(data) < pos+1 {
			return AtomFrame{}, 0, newError(ErrUnexpectedEOF, 0, 0, "truncated PREFIX/ONE frame")
		}
		ab := data[pos]
		pos++
		atomNum = int(aa)<<6 | int(ab&0x1F)
		payload = []byte{1}
	default:
		return AtomFrame{}, 0, newError(ErrInvalidBinaryFormat, 0, 0, "unknown PREFIX inner style %d", inner)
	}

	if payload == nil {
		if len(data) < pos+n {
			return AtomFrame{}, 0, newError(ErrUnexpectedEOF, 0, 0, "truncated payload for PREFIX/%s frame", inner)
		}
		payload = data[pos : pos+n]
		pos += n
	}

	d.currentProtocol = protocol
	d.haveCurrent = true

	return AtomFrame{Protocol: protocol, AtomNumber: atomNum, Style: StylePrefix, Payload: payload}, pos, nil
}

// readLenField mirrors appendLenField: a byte with its top bit clear is
// the length itself (0-127); a byte with its top bit set combines its
// low 7 bits with the following byte as a big-endian 15-bit length.
func readLenField(data []byte, pos int) (n, newPos int, err error) {
	if len(data) < pos+1 {
		return 0, 0, newError(ErrUnexpectedEOF, 0, 0, "truncated length field")
	}
	b0 := data[pos]
	if b0&0x80 == 0 {
		return int(b0), pos + 1, nil
	}
	if len(data) < pos+2 {
		return 0, 0, newError(ErrUnexpectedEOF, 0, 0, "truncated extended length field")
	}
	return int(b0&0x7F)<<8 | int(data[pos+1]), pos + 2, nil
}

// DecodeAll decodes every frame in data, transparently reassembling UNI
// large-atom continuation sequences: a
// uni_large_atom_start frame (protocol 0, atom 4) names the real
// protocol/atom number being split in the first two bytes of its
// payload, and the rest of that payload is initial data; any number of
// uni_large_atom_segment frames (atom 5) contribute payload bytes; a
// uni_large_atom_end frame (atom 6) closes the sequence. A stray
// segment/end frame with no open sequence passes through unchanged,
// since a decoder may encounter one outside of a continuation context.
func (d *BinaryDecoder) DecodeAll(data []byte) ([]AtomFrame, error) {
	var frames []AtomFrame
	var reassembling bool
	var bigProtocol, bigAtom int
	var bigPayload []byte

	pos := 0
	for pos < len(data) {
		f, n, err := d.DecodeFrame(data[pos:])
		if err != nil {
			return nil, err
		}
		pos += n

		switch {
		case f.Protocol == protocolUNI && f.AtomNumber == 4:
			if len(f.Payload) < 2 {
				return nil, newError(ErrInvalidBinaryFormat, 0, 0, "uni_large_atom_start payload must carry protocol+atom number")
			}
			reassembling = true
			bigProtocol, bigAtom = int(f.Payload[0]), int(f.Payload[1])
			bigPayload = append([]byte(nil), f.Payload[2:]...)
		case f.Protocol == protocolUNI && f.AtomNumber == 5 && reassembling:
			bigPayload = append(bigPayload, f.Payload...)
		case f.Protocol == protocolUNI && f.AtomNumber == 6 && reassembling:
			bigPayload = append(bigPayload, f.Payload...)
			frames = append(frames, AtomFrame{Protocol: bigProtocol, AtomNumber: bigAtom, Style: StyleFull, Payload: bigPayload})
			reassembling = false
			bigPayload = nil
		default:
			if f.Protocol == protocolUNI && (f.AtomNumber == 5 || f.AtomNumber == 6) {
				Logger.Debugw("stray large-atom continuation frame passed through",
					"atomNumber", f.AtomNumber)
			}
			frames = append(frames, f)
		}
	}
	if reassembling {
		return nil, newError(ErrUnexpectedEOF, 0, 0, "unterminated large-atom continuation sequence")
	}
	return frames, nil
}

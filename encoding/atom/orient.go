package atom

import "fmt"

// Orientation is the decoded form of an ORIENT atom: one byte where bit
// 6 marks vertical vs. horizontal layout, bits 5-3 give the horizontal
// justification code and bits 2-0 give the vertical justification code.
type Orientation struct {
	Vertical bool
	HJust    int // 0-7
	VJust    int // 0-7
}

// justCodes maps a 3-bit justification value to its letter in the
// textual 3-letter orientation code, and back. Only a handful of named
// combinations are pinned down precisely (e.g. "vcf" <-> 0x43); this
// module fixes one self-consistent mapping and uses it for every
// combination, valid or not, so that decode(encode(x)) == x holds for
// the full byte range. See DESIGN.md for this open-question resolution.
var justCodes = [8]byte{'c', 'l', 'r', 'f', 't', 'b', 's', 'e'}

var justCodeIndex = func() map[byte]int {
	m := make(map[byte]int, len(justCodes))
	for i, c := range justCodes {
		m[c] = i
	}
	return m
}()

// EncodeOrientation renders o as its single payload byte.
func EncodeOrientation(o Orientation) byte {
	var b byte
	if o.Vertical {
		b |= 1 << 6
	}
	b |= byte(o.HJust&0x7) << 3
	b |= byte(o.VJust & 0x7)
	return b
}

// DecodeOrientation parses the payload byte into an Orientation.
func DecodeOrientation(b byte) Orientation {
	return Orientation{
		Vertical: b&(1<<6) != 0,
		HJust:    int(b>>3) & 0x7,
		VJust:    int(b) & 0x7,
	}
}

// String renders the 3-letter orientation code, e.g. "vcf".
func (o Orientation) String() string {
	dir := byte('h')
	if o.Vertical {
		dir = 'v'
	}
	return fmt.Sprintf("%c%c%c", dir, justCodes[o.HJust&0x7], justCodes[o.VJust&0x7])
}

// ParseOrientation parses a 3-letter orientation code such as "vcf".
func ParseOrientation(code string) (Orientation, error) {
	if len(code) != 3 {
		return Orientation{}, fmt.Errorf("invalid orientation code %q: must be 3 letters", code)
	}
	var o Orientation
	switch code[0] {
	case 'v':
		o.Vertical = true
	case 'h':
		o.Vertical = false
	default:
		return Orientation{}, fmt.Errorf("invalid orientation code %q: first letter must be 'v' or 'h'", code)
	}
	hj, ok := justCodeIndex[code[1]]
	if !ok {
		return Orientation{}, fmt.Errorf("invalid orientation code %q: unknown justification letter %q", code, code[1])
	}
	vj, ok := justCodeIndex[code[2]]
	if !ok {
		return Orientation{}, fmt.Errorf("invalid orientation code %q: unknown justification letter %q", code, code[2])
	}
	o.HJust, o.VJust = hj, vj
	return o, nil
}

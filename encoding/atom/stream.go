package atom

import (
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
)

// Atom is one decoded atom in the object model: its identity (name,
// protocol, atom number), its declared type, and its decoded Value.
// Raw always holds the original payload bytes regardless of Type, so
// callers needing the bytes verbatim never have to re-encode Value.
type Atom struct {
	Name       string
	Protocol   int
	AtomNumber int
	Type       AtomType
	Value      Value
	Raw        []byte
}

// Stream is the decoded object model form of an atom sequence, the
// decompile-side counterpart to StreamNode. It is what Stream.Decode
// and the binary decoder produce, and what query methods like
// FindFirst walk.
type Stream struct {
	Atoms []Atom
}

// Decode decodes data using table to resolve atom names/types, wiring
// BinaryDecoder (wire framing + large-atom reassembly) into
// DecodeValue (payload interpretation).
func (s *Stream) Decode(data []byte, table *AtomTable) error {
	dec := NewBinaryDecoder()
	frames, err := dec.DecodeAll(data)
	if err != nil {
		return err
	}
	atoms := make([]Atom, 0, len(frames))
	for _, f := range frames {
		a, err := decodeFrameToAtom(f, table)
		if err != nil {
			return err
		}
		atoms = append(atoms, a)
	}
	s.Atoms = atoms
	return nil
}

func decodeFrameToAtom(f AtomFrame, table *AtomTable) (Atom, error) {
	def, ok := table.ByProtocolAtom(f.Protocol, f.AtomNumber)
	name := fmt.Sprintf("protocol_%d_atom_%d", f.Protocol, f.AtomNumber)
	typ := RAW
	if ok {
		name = def.Name
		typ = def.Type
	} else {
		def = AtomDefinition{Name: name, Protocol: f.Protocol, AtomNumber: f.AtomNumber, Type: RAW}
	}
	val, err := DecodeValue(def, f.Payload)
	if err != nil {
		return Atom{}, errors.Wrapf(err, "decoding atom %q", name)
	}
	return Atom{
		Name:       name,
		Protocol:   f.Protocol,
		AtomNumber: f.AtomNumber,
		Type:       typ,
		Value:      val,
		Raw:        f.Payload,
	}, nil
}

// decodeStreamValue decodes a STREAM-typed payload into a StreamValue,
// using the default atom table. It is the counterpart to encodeStream
// in codec.go. A payload too short to decode as framed atoms may still
// be the raw single-atom form [protocol, atom_number, data...]; when
// the leading pair matches a known atom, decode it as that one atom
// instead of failing.
func decodeStreamValue(data []byte) (Value, error) {
	st := &Stream{}
	err := st.Decode(data, DefaultAtomTable)
	if err == nil {
		return StreamValue{Stream: st}, nil
	}
	if len(data) >= 2 {
		if def, ok := DefaultAtomTable.ByProtocolAtom(int(data[0]), int(data[1])); ok {
			val, verr := DecodeValue(def, data[2:])
			if verr == nil {
				Logger.Debugw("nested stream decoded as raw single-atom form",
					"protocol", def.Protocol, "atomNumber", def.AtomNumber, "name", def.Name)
				return StreamValue{Stream: &Stream{Atoms: []Atom{{
					Name:       def.Name,
					Protocol:   def.Protocol,
					AtomNumber: def.AtomNumber,
					Type:       def.Type,
					Value:      val,
					Raw:        data[2:],
				}}}}, nil
			}
		}
	}
	return nil, errors.Wrap(err, "decoding nested stream")
}

// DecodeHex decodes a hex string directly into a Stream, a convenience
// for tests and tools that hold wire bytes as a hex literal.
func DecodeHex(s string, table *AtomTable) (*Stream, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "decoding hex string")
	}
	st := &Stream{}
	if err := st.Decode(data, table); err != nil {
		return nil, err
	}
	return st, nil
}

// EncodeHex renders the stream's already-decoded atoms back into a hex
// string, via EncodeBytes.
func (s *Stream) EncodeHex() (string, error) {
	b, err := s.EncodeBytes()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// EncodeBytes renders the stream's already-decoded atoms back into wire
// bytes. Each atom's Raw bytes are used when present - the common case,
// since Raw always holds what Stream.Decode actually saw on the wire -
// and payload bytes are re-derived from Value via EncodeValueDirect
// when Raw is nil, e.g. for an Atom built programmatically rather than
// by decoding. This mirrors compileAtom's table-lookup-then-encode
// pattern in codec.go, but starting from a Value instead of an AST
// node's arguments.
func (s *Stream) EncodeBytes() ([]byte, error) {
	enc := NewBinaryEncoder(false)
	var out []byte
	for _, a := range s.Atoms {
		payload := a.Raw
		if payload == nil {
			def, ok := DefaultAtomTable.ByProtocolAtom(a.Protocol, a.AtomNumber)
			if !ok {
				def = AtomDefinition{Name: a.Name, Protocol: a.Protocol, AtomNumber: a.AtomNumber, Type: a.Type}
			}
			p, err := EncodeValueDirect(def, a.Value)
			if err != nil {
				return nil, errors.Wrapf(err, "encoding atom %q", a.Name)
			}
			payload = p
		}
		out = enc.EncodeFrame(out, a.Protocol, a.AtomNumber, payload)
	}
	return out, nil
}

// FindFirst returns the first atom named name, if any.
func (s *Stream) FindFirst(name string) (*Atom, bool) {
	for i := range s.Atoms {
		if s.Atoms[i].Name == name {
			return &s.Atoms[i], true
		}
	}
	return nil, false
}

// FindAll returns every atom named name, in order.
func (s *Stream) FindAll(name string) []Atom {
	return s.Filter(func(a Atom) bool { return a.Name == name })
}

// FindByProtocol returns every atom belonging to protocol, in order.
func (s *Stream) FindByProtocol(protocol int) []Atom {
	return s.Filter(func(a Atom) bool { return a.Protocol == protocol })
}

// Filter returns every atom for which pred returns true, in order,
// recursing into nested streams so a predicate sees the whole tree.
func (s *Stream) Filter(pred func(Atom) bool) []Atom {
	var out []Atom
	for _, a := range s.Atoms {
		out = append(out, a)
		if sv, ok := a.Value.(StreamValue); ok && sv.Stream != nil {
			out = append(out, sv.Stream.Filter(pred)...)
		}
	}
	var matched []Atom
	for _, a := range out {
		if pred(a) {
			matched = append(matched, a)
		}
	}
	return matched
}

// AsString returns the atom's value as a string, or a WrongTypeError if
// it isn't a StringValue.
func (a Atom) AsString() (string, error) {
	if sv, ok := a.Value.(StringValue); ok {
		return sv.Text, nil
	}
	return "", &WrongTypeError{AtomName: a.Name, Want: "string", Got: fmt.Sprintf("%T", a.Value)}
}

// StringOr returns the atom's string value, or def if it isn't one.
func (a Atom) StringOr(def string) string {
	if s, err := a.AsString(); err == nil {
		return s
	}
	return def
}

// AsNumber returns the atom's value as an int64, or a WrongTypeError if
// it isn't a NumberValue.
func (a Atom) AsNumber() (int64, error) {
	if nv, ok := a.Value.(NumberValue); ok {
		return nv.N, nil
	}
	return 0, &WrongTypeError{AtomName: a.Name, Want: "number", Got: fmt.Sprintf("%T", a.Value)}
}

// NumberOr returns the atom's numeric value, or def if it isn't one.
func (a Atom) NumberOr(def int64) int64 {
	if n, err := a.AsNumber(); err == nil {
		return n
	}
	return def
}

// AsGid returns the atom's value as a Gid, or a WrongTypeError if it
// isn't a GidValue.
func (a Atom) AsGid() (Gid, error) {
	if gv, ok := a.Value.(GidValue); ok {
		return gv.G, nil
	}
	return Gid{}, &WrongTypeError{AtomName: a.Name, Want: "gid", Got: fmt.Sprintf("%T", a.Value)}
}

// AsStream returns the atom's value as a nested *Stream, or a
// WrongTypeError if it isn't a StreamValue.
func (a Atom) AsStream() (*Stream, error) {
	if sv, ok := a.Value.(StreamValue); ok {
		return sv.Stream, nil
	}
	return nil, &WrongTypeError{AtomName: a.Name, Want: "stream", Got: fmt.Sprintf("%T", a.Value)}
}

// AsBool returns the atom's value as a bool, or a WrongTypeError if it
// isn't a BoolValue.
func (a Atom) AsBool() (bool, error) {
	if bv, ok := a.Value.(BoolValue); ok {
		return bv.B, nil
	}
	return false, &WrongTypeError{AtomName: a.Name, Want: "bool", Got: fmt.Sprintf("%T", a.Value)}
}

// BoolOr returns the atom's bool value, or def if it isn't one.
func (a Atom) BoolOr(def bool) bool {
	if b, err := a.AsBool(); err == nil {
		return b
	}
	return def
}

// GidOr returns the atom's GID value, or def if it isn't one.
func (a Atom) GidOr(def Gid) Gid {
	if g, err := a.AsGid(); err == nil {
		return g
	}
	return def
}

// AsOrientation returns the atom's value as an Orientation, or a
// WrongTypeError if it isn't an OrientValue.
func (a Atom) AsOrientation() (Orientation, error) {
	if ov, ok := a.Value.(OrientValue); ok {
		return ov.O, nil
	}
	return Orientation{}, &WrongTypeError{AtomName: a.Name, Want: "orientation", Got: fmt.Sprintf("%T", a.Value)}
}

// AsObjectStart returns the atom's value as an ObjectStartValue, or a
// WrongTypeError if it isn't one.
func (a Atom) AsObjectStart() (ObjectStartValue, error) {
	if ov, ok := a.Value.(ObjectStartValue); ok {
		return ov, nil
	}
	return ObjectStartValue{}, &WrongTypeError{AtomName: a.Name, Want: "object start", Got: fmt.Sprintf("%T", a.Value)}
}

// AsRaw returns the atom's value as raw bytes, or a WrongTypeError if
// it isn't a RawValue.
func (a Atom) AsRaw() ([]byte, error) {
	if rv, ok := a.Value.(RawValue); ok {
		return rv.Data, nil
	}
	return nil, &WrongTypeError{AtomName: a.Name, Want: "raw bytes", Got: fmt.Sprintf("%T", a.Value)}
}

// AsList returns the atom's value as a list of component values, or a
// WrongTypeError if it isn't a ListValue.
func (a Atom) AsList() ([]Value, error) {
	if lv, ok := a.Value.(ListValue); ok {
		return lv.Values, nil
	}
	return nil, &WrongTypeError{AtomName: a.Name, Want: "list", Got: fmt.Sprintf("%T", a.Value)}
}

// Each walks the stream's atoms in order, recursing into nested stream
// values, until fn returns false. It is the lazy counterpart to Filter:
// no intermediate slice is built, and fn can stop the walk early.
func (s *Stream) Each(fn func(Atom) bool) bool {
	for _, a := range s.Atoms {
		if !fn(a) {
			return false
		}
		if sv, ok := a.Value.(StreamValue); ok && sv.Stream != nil {
			if !sv.Stream.Each(fn) {
				return false
			}
		}
	}
	return true
}

// Complete reports whether the stream is properly terminated: its last
// top-level atom carries the end-of-stream flag (e.g. uni_end_stream).
func (s *Stream) Complete(table *AtomTable) bool {
	if len(s.Atoms) == 0 {
		return false
	}
	last := s.Atoms[len(s.Atoms)-1]
	def, ok := table.ByProtocolAtom(last.Protocol, last.AtomNumber)
	return ok && def.Flags.Has(FlagEOS)
}

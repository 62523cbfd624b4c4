package atom

import (
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
)

// Value is the closed tagged union of decoded atom payload values.
// Implementations are StringValue, NumberValue, GidValue, BoolValue,
// OrientValue, ObjectStartValue, StreamValue, RawValue, ListValue and
// EmptyValue.
type Value interface {
	valueNode()
}

// StringValue holds ISO-8859-1 text content (STRING, TOKEN family and
// ATOM-reference payloads all decode to this).
type StringValue struct {
	Text string
}

// NumberValue holds a signed integer (DWORD, ENUM-like and CRITERION
// payloads decode to this).
type NumberValue struct {
	N int64
}

// GidValue holds a decoded global identifier.
type GidValue struct {
	G Gid
}

// BoolValue holds a decoded BOOL payload.
type BoolValue struct {
	B bool
}

// OrientValue holds a decoded ORIENT payload.
type OrientValue struct {
	O Orientation
}

// ObjectStartValue holds a decoded OBJSTART payload.
type ObjectStartValue struct {
	TypeName string
	Title    string
	HasTitle bool
}

// StreamValue holds a nested decoded atom stream.
type StreamValue struct {
	Stream *Stream
}

// RawValue holds an opaque byte payload (used for RAW and as the
// fallback for any type with no declared atom definition).
type RawValue struct {
	Data []byte
}

// ListValue holds a composite payload decoded into several component
// values, e.g. a VAR atom's "letter + number" payload.
type ListValue struct {
	Values []Value
}

// EmptyValue marks an atom with a zero-length payload and no meaningful
// decoded value (e.g. uni_start_stream).
type EmptyValue struct{}

func (StringValue) valueNode()      {}
func (NumberValue) valueNode()      {}
func (GidValue) valueNode()         {}
func (BoolValue) valueNode()        {}
func (OrientValue) valueNode()      {}
func (ObjectStartValue) valueNode() {}
func (StreamValue) valueNode()      {}
func (RawValue) valueNode()         {}
func (ListValue) valueNode()        {}
func (EmptyValue) valueNode()       {}

// EncodeValue converts a parsed argument into payload bytes for the
// given atom definition, applying the per-atom override table from
// overrides.go.
func EncodeValue(def AtomDefinition, args []ArgumentNode) ([]byte, error) {
	var arg ArgumentNode
	if len(args) > 0 {
		arg = args[0]
	}

	if usesByteListShape(def) {
		return encodeByteList(arg)
	}

	switch def.Type {
	case RAW:
		return encodeRaw(arg)
	case DWORD:
		return encodeDword(def, arg)
	case STRING, TOKEN, TOKENARG:
		return encodeString(arg)
	case GID:
		return encodeGidArg(arg)
	case OBJSTART:
		return encodeObjStart(arg)
	case STREAM:
		return encodeStream(arg)
	case ATOMREF:
		return encodeAtomRef(arg)
	case BOOL:
		return encodeBool(arg)
	case ORIENT:
		return encodeOrient(arg)
	case CRITERION:
		return encodeCriterion(arg)
	case VARSTRING:
		return encodeVarString(arg)
	case VAR, VARDWORD, VARLOOKUP:
		return encodeVarDword(arg)
	default:
		return nil, fmt.Errorf("no value encoder registered for atom type %q", def.Type)
	}
}

// EncodeValueDirect converts an already-decoded Value back into payload
// bytes for the given atom definition, the inverse of DecodeValue. It
// exists for callers holding a Value with no surviving AST (e.g. a
// Stream atom whose Raw bytes are absent) and so can't go through
// EncodeValue's ArgumentNode path.
func EncodeValueDirect(def AtomDefinition, v Value) ([]byte, error) {
	if _, ok := v.(EmptyValue); ok {
		return nil, nil
	}
	if usesByteListShape(def) {
		lv, ok := v.(ListValue)
		if !ok {
			return nil, fmt.Errorf("byte-list atom requires a ListValue, got %T", v)
		}
		out := make([]byte, 0, len(lv.Values))
		for _, vv := range lv.Values {
			n, ok := vv.(NumberValue)
			if !ok {
				return nil, fmt.Errorf("byte-list atom requires NumberValue elements, got %T", vv)
			}
			out = append(out, byte(n.N))
		}
		return out, nil
	}
	switch def.Type {
	case RAW:
		rv, ok := v.(RawValue)
		if !ok {
			return nil, fmt.Errorf("RAW atom requires a RawValue, got %T", v)
		}
		return append([]byte(nil), rv.Data...), nil
	case DWORD:
		nv, ok := v.(NumberValue)
		if !ok {
			return nil, fmt.Errorf("DWORD atom requires a NumberValue, got %T", v)
		}
		if def.DwordWidth > 0 {
			return encodeBigEndianWidth(nv.N, def.DwordWidth), nil
		}
		return encodeBigEndianMinimal(nv.N), nil
	case STRING, TOKEN, TOKENARG:
		sv, ok := v.(StringValue)
		if !ok {
			return nil, fmt.Errorf("STRING/TOKEN atom requires a StringValue, got %T", v)
		}
		return stringToLatin1(sv.Text)
	case GID:
		gv, ok := v.(GidValue)
		if !ok {
			return nil, fmt.Errorf("GID atom requires a GidValue, got %T", v)
		}
		return EncodeGid(gv.G)
	case OBJSTART:
		ov, ok := v.(ObjectStartValue)
		if !ok {
			return nil, fmt.Errorf("OBJSTART atom requires an ObjectStartValue, got %T", v)
		}
		tv, ok := ObjectTypeValue(ov.TypeName)
		if !ok {
			return nil, fmt.Errorf("unknown object type %q", ov.TypeName)
		}
		title, err := stringToLatin1(ov.Title)
		if err != nil {
			return nil, err
		}
		return append([]byte{byte(tv)}, title...), nil
	case STREAM:
		sv, ok := v.(StreamValue)
		if !ok {
			return nil, fmt.Errorf("STREAM atom requires a StreamValue, got %T", v)
		}
		if sv.Stream == nil {
			return nil, nil
		}
		return sv.Stream.EncodeBytes()
	case ATOMREF:
		sv, ok := v.(StringValue)
		if !ok {
			return nil, fmt.Errorf("ATOM atom requires a StringValue, got %T", v)
		}
		rdef, ok := DefaultAtomTable.ByName(sv.Text)
		if !ok {
			return nil, fmt.Errorf("unknown atom name %q used as atom reference", sv.Text)
		}
		return []byte{byte(rdef.Protocol), byte(rdef.AtomNumber)}, nil
	case BOOL:
		bv, ok := v.(BoolValue)
		if !ok {
			return nil, fmt.Errorf("BOOL atom requires a BoolValue, got %T", v)
		}
		if bv.B {
			return []byte{1}, nil
		}
		return []byte{0}, nil
	case ORIENT:
		ov, ok := v.(OrientValue)
		if !ok {
			return nil, fmt.Errorf("ORIENT atom requires an OrientValue, got %T", v)
		}
		return []byte{EncodeOrientation(ov.O)}, nil
	case CRITERION:
		nv, ok := v.(NumberValue)
		if !ok {
			return nil, fmt.Errorf("CRITERION atom requires a NumberValue, got %T", v)
		}
		return []byte{byte(nv.N)}, nil
	case VARSTRING:
		lv, ok := v.(ListValue)
		if !ok || len(lv.Values) != 2 {
			return nil, fmt.Errorf("VARSTRING atom requires a 2-element ListValue")
		}
		letter, ok := lv.Values[0].(StringValue)
		if !ok || len(letter.Text) != 1 {
			return nil, fmt.Errorf("VARSTRING atom's first element must be a single-letter StringValue")
		}
		str, ok := lv.Values[1].(StringValue)
		if !ok {
			return nil, fmt.Errorf("VARSTRING atom's second element must be a StringValue")
		}
		strBytes, err := stringToLatin1(str.Text)
		if err != nil {
			return nil, err
		}
		return append([]byte{letter.Text[0]}, strBytes...), nil
	case VAR, VARDWORD, VARLOOKUP:
		lv, ok := v.(ListValue)
		if !ok || len(lv.Values) != 2 {
			return nil, fmt.Errorf("VAR atom requires a 2-element ListValue")
		}
		letter, ok := lv.Values[0].(StringValue)
		if !ok || len(letter.Text) != 1 {
			return nil, fmt.Errorf("VAR atom's first element must be a single-letter StringValue")
		}
		num, ok := lv.Values[1].(NumberValue)
		if !ok {
			return nil, fmt.Errorf("VAR atom's second element must be a NumberValue")
		}
		return append([]byte{letter.Text[0]}, encodeBigEndianWidth(num.N, 4)...), nil
	default:
		return nil, fmt.Errorf("no direct value encoder registered for atom type %q", def.Type)
	}
}

// DecodeValue converts payload bytes into a decoded Value for the given
// atom definition, applying the same override table.
func DecodeValue(def AtomDefinition, data []byte) (Value, error) {
	if len(data) == 0 {
		return EmptyValue{}, nil
	}
	if usesByteListShape(def) {
		return decodeByteList(data), nil
	}
	switch def.Type {
	case RAW:
		return RawValue{Data: append([]byte(nil), data...)}, nil
	case DWORD:
		return NumberValue{N: decodeBigEndianInt(data)}, nil
	case STRING, TOKEN, TOKENARG:
		return StringValue{Text: latin1ToString(data)}, nil
	case GID:
		g, err := DecodeGid(data, preferThreePartZero(def.Name))
		if err != nil {
			return nil, errors.Wrapf(err, "decoding GID atom %q", def.Name)
		}
		return GidValue{G: g}, nil
	case OBJSTART:
		return decodeObjStart(data)
	case STREAM:
		return decodeStreamValue(data)
	case ATOMREF:
		return decodeAtomRef(data)
	case BOOL:
		return BoolValue{B: data[0] != 0}, nil
	case ORIENT:
		return OrientValue{O: DecodeOrientation(data[0])}, nil
	case CRITERION:
		return NumberValue{N: int64(data[0])}, nil
	case VARSTRING:
		return decodeVarString(data)
	case VAR, VARDWORD, VARLOOKUP:
		return decodeVarDword(data)
	default:
		return RawValue{Data: append([]byte(nil), data...)}, nil
	}
}

func encodeRaw(arg ArgumentNode) ([]byte, error) {
	if arg == nil {
		return nil, nil
	}
	h, ok := arg.(HexArg)
	if !ok {
		return nil, fmt.Errorf("RAW atom requires a hex argument, got %T", arg)
	}
	data, err := hex.DecodeString(h.Text)
	if err != nil {
		return nil, errors.Wrap(err, "decoding RAW hex argument")
	}
	return data, nil
}

func encodeDword(def AtomDefinition, arg ArgumentNode) ([]byte, error) {
	n, ok := arg.(NumberArg)
	if !ok {
		return nil, fmt.Errorf("DWORD atom requires a number argument, got %T", arg)
	}
	if def.DwordWidth > 0 {
		return encodeBigEndianWidth(n.Value, def.DwordWidth), nil
	}
	return encodeBigEndianMinimal(n.Value), nil
}

// encodeByteList implements the IF protocol's list-of-bytes payload
// shape: each comma-separated number argument becomes one payload byte.
func encodeByteList(arg ArgumentNode) ([]byte, error) {
	switch a := arg.(type) {
	case nil:
		return nil, nil
	case NumberArg:
		if a.Value < 0 || a.Value > 0xFF {
			return nil, fmt.Errorf("byte-list value %d out of range", a.Value)
		}
		return []byte{byte(a.Value)}, nil
	case ListArg:
		out := make([]byte, 0, len(a.Parts))
		for _, part := range a.Parts {
			n, ok := part.(NumberArg)
			if !ok {
				return nil, fmt.Errorf("byte-list atom requires number arguments, got %T", part)
			}
			if n.Value < 0 || n.Value > 0xFF {
				return nil, fmt.Errorf("byte-list value %d out of range", n.Value)
			}
			out = append(out, byte(n.Value))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("byte-list atom requires number arguments, got %T", arg)
	}
}

func decodeByteList(data []byte) Value {
	vals := make([]Value, len(data))
	for i, b := range data {
		vals[i] = NumberValue{N: int64(b)}
	}
	return ListValue{Values: vals}
}

func encodeString(arg ArgumentNode) ([]byte, error) {
	switch a := arg.(type) {
	case nil:
		return nil, nil
	case StringArg:
		return stringToLatin1(a.Text)
	case IdentifierArg:
		// An unquoted bareword is valid source for TOKEN-family atoms
		// whose forceNoQuoteNames override means they're normally
		// written and printed without quotes (e.g. act_do_action).
		return stringToLatin1(a.Text)
	default:
		return nil, fmt.Errorf("STRING/TOKEN atom requires a string or bareword argument, got %T", arg)
	}
}

func encodeGidArg(arg ArgumentNode) ([]byte, error) {
	g, ok := arg.(GidArg)
	if !ok {
		return nil, fmt.Errorf("GID atom requires a GID argument, got %T", arg)
	}
	return EncodeGid(g.Value)
}

func encodeObjStart(arg ArgumentNode) ([]byte, error) {
	var obj ObjectTypeArg
	switch a := arg.(type) {
	case ObjectTypeArg:
		obj = a
	case IdentifierArg:
		// The no-title form `<ind_group>` parses as a bare identifier.
		obj = ObjectTypeArg{TypeName: a.Text}
	default:
		return nil, fmt.Errorf("OBJSTART atom requires an object-type argument, got %T", arg)
	}
	v, ok := ObjectTypeValue(obj.TypeName)
	if !ok {
		return nil, fmt.Errorf("unknown object type %q", obj.TypeName)
	}
	title, err := stringToLatin1(obj.Title)
	if err != nil {
		return nil, err
	}
	return append([]byte{byte(v)}, title...), nil
}

func decodeObjStart(data []byte) (Value, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("OBJSTART payload must have at least one byte")
	}
	name, ok := ObjectTypeName(int(data[0]))
	if !ok {
		name = fmt.Sprintf("object_type_%d", data[0])
	}
	return ObjectStartValue{TypeName: name, Title: latin1ToString(data[1:]), HasTitle: len(data) > 1}, nil
}

func encodeAtomRef(arg ArgumentNode) ([]byte, error) {
	id, ok := arg.(IdentifierArg)
	if !ok {
		return nil, fmt.Errorf("ATOM atom requires an identifier argument naming an atom, got %T", arg)
	}
	def, ok := DefaultAtomTable.ByName(id.Text)
	if !ok {
		return nil, fmt.Errorf("unknown atom name %q used as atom reference", id.Text)
	}
	return []byte{byte(def.Protocol), byte(def.AtomNumber)}, nil
}

func decodeAtomRef(data []byte) (Value, error) {
	if len(data) != 2 {
		return nil, fmt.Errorf("ATOM reference payload must be 2 bytes, got %d", len(data))
	}
	if def, ok := DefaultAtomTable.ByProtocolAtom(int(data[0]), int(data[1])); ok {
		return StringValue{Text: def.Name}, nil
	}
	return StringValue{Text: fmt.Sprintf("0x%02x%02x", data[0], data[1])}, nil
}

func encodeBool(arg ArgumentNode) ([]byte, error) {
	if arg == nil {
		return []byte{1}, nil // missing argument defaults to true
	}
	id, ok := arg.(IdentifierArg)
	if !ok {
		return nil, fmt.Errorf("BOOL atom requires yes/no argument, got %T", arg)
	}
	switch id.Text {
	case "yes":
		return []byte{1}, nil
	case "no":
		return []byte{0}, nil
	default:
		return nil, fmt.Errorf("invalid BOOL value %q, expected yes/no", id.Text)
	}
}

func encodeOrient(arg ArgumentNode) ([]byte, error) {
	id, ok := arg.(IdentifierArg)
	if !ok {
		return nil, fmt.Errorf("ORIENT atom requires a 3-letter code argument, got %T", arg)
	}
	o, err := ParseOrientation(id.Text)
	if err != nil {
		return nil, err
	}
	return []byte{EncodeOrientation(o)}, nil
}

func encodeCriterion(arg ArgumentNode) ([]byte, error) {
	var text string
	switch a := arg.(type) {
	case IdentifierArg:
		text = a.Text
	case NumberArg:
		return []byte{byte(a.Value)}, nil
	default:
		return nil, fmt.Errorf("CRITERION atom requires a name or number argument, got %T", arg)
	}
	v, err := ParseCriterion(text)
	if err != nil {
		return nil, errors.Wrap(err, "parsing CRITERION value")
	}
	return []byte{byte(v)}, nil
}

// encodeVarString implements the "composite letter + string" payload
// shape for var_set_string. The parser collapses any [IDENTIFIER,
// STRING] argument pair into ObjectTypeArg (the same shape an OBJSTART
// atom's `<type_name, "title">` form produces), so a VARSTRING atom's
// `<a, "value">` argument arrives the same way; here TypeName holds the
// single letter and Title holds the string.
func encodeVarString(arg ArgumentNode) ([]byte, error) {
	obj, ok := arg.(ObjectTypeArg)
	if !ok || len(obj.TypeName) != 1 {
		return nil, fmt.Errorf("VARSTRING atom requires [letter, string] arguments")
	}
	payload := []byte{obj.TypeName[0]}
	strBytes, err := stringToLatin1(obj.Title)
	if err != nil {
		return nil, err
	}
	return append(payload, strBytes...), nil
}

func decodeVarString(data []byte) (Value, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("VARSTRING payload must have at least one byte")
	}
	return ListValue{Values: []Value{
		StringValue{Text: string(data[0])},
		StringValue{Text: latin1ToString(data[1:])},
	}}, nil
}

// encodeVarDword implements the "composite letter + number" payload
// shape shared by several VAR atoms.
func encodeVarDword(arg ArgumentNode) ([]byte, error) {
	list, ok := arg.(ListArg)
	if !ok || len(list.Parts) != 2 {
		return nil, fmt.Errorf("VAR atom requires [letter, number] arguments")
	}
	letter, ok := list.Parts[0].(IdentifierArg)
	if !ok || len(letter.Text) != 1 {
		return nil, fmt.Errorf("VAR atom's first argument must be a single letter")
	}
	num, ok := list.Parts[1].(NumberArg)
	if !ok {
		return nil, fmt.Errorf("VAR atom's second argument must be a number")
	}
	return append([]byte{letter.Text[0]}, encodeBigEndianWidth(num.Value, 4)...), nil
}

func decodeVarDword(data []byte) (Value, error) {
	if len(data) < 1 {
		return nil, fmt.Errorf("VAR payload must have at least one byte")
	}
	return ListValue{Values: []Value{
		StringValue{Text: string(data[0])},
		NumberValue{N: decodeBigEndianInt(data[1:])},
	}}, nil
}

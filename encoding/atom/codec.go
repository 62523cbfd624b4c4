package atom

import (
	"github.com/pkg/errors"
)

// Options configures Compile and Decompile, set via functional options
// rather than environment variables or flags.
type Options struct {
	Table   *AtomTable
	Compact bool
}

// Option adjusts Options.
type Option func(*Options)

// WithTable overrides the atom table used to resolve names, protocols
// and atom numbers. Defaults to DefaultAtomTable.
func WithTable(t *AtomTable) Option {
	return func(o *Options) { o.Table = t }
}

// WithCompactEncoding enables the compact frame-style encoder instead
// of always writing FULL/PREFIX frames.
func WithCompactEncoding() Option {
	return func(o *Options) { o.Compact = true }
}

func buildOptions(opts []Option) Options {
	o := Options{Table: DefaultAtomTable}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Compile parses FDO source text and encodes it to binary wire bytes,
// wiring ParseStream (text -> AST) into compileAtom/EncodeValue
// (AST -> wire bytes) and BinaryEncoder (frame assembly).
func Compile(src string, opts ...Option) ([]byte, error) {
	o := buildOptions(opts)
	ast, err := ParseStream(src, o.Table)
	if err != nil {
		return nil, err
	}
	enc := NewBinaryEncoder(o.Compact)
	var out []byte
	for _, node := range ast.Atoms {
		protocol, atomNumber, payload, err := compileAtom(node)
		if err != nil {
			return nil, err
		}
		out = enc.EncodeFrame(out, protocol, atomNumber, payload)
	}
	return out, nil
}

// CompileFramed parses FDO source text and streams its encoded atoms
// through a FrameAwareEncoder, so no emitted transport frame exceeds
// maxFrameSize and oversized atoms are split via the UNI large-atom
// continuation sub-protocol. onFrame receives each bucket in order; the
// final call has isLast set.
func CompileFramed(src string, maxFrameSize int, onFrame func(bytes []byte, frameIndex int, isLast bool), opts ...Option) error {
	o := buildOptions(opts)
	ast, err := ParseStream(src, o.Table)
	if err != nil {
		return err
	}
	fe := NewFrameAwareEncoder(maxFrameSize, onFrame)
	for _, node := range ast.Atoms {
		protocol, atomNumber, payload, err := compileAtom(node)
		if err != nil {
			return err
		}
		if err := fe.Encode(protocol, atomNumber, payload); err != nil {
			return err
		}
	}
	fe.Finish()
	return nil
}

// Decompile decodes binary wire bytes and renders them back to FDO
// source text, wiring Stream.Decode (wire bytes -> object model) into
// the pretty-printer (object model -> text).
func Decompile(data []byte, opts ...Option) (string, error) {
	o := buildOptions(opts)
	st := &Stream{}
	if err := st.Decode(data, o.Table); err != nil {
		return "", err
	}
	return PrettyPrint(st, o.Table), nil
}

// compileAtom resolves one parsed atom node to its wire identity and
// payload bytes. An atom whose name the table couldn't resolve at
// parse time is where ErrUnrecognizedAtom is finally raised: for an
// atom in atom position the parser only records Def == nil (it raises
// the error itself only when an unknown name opens an argument block
// at the start of another atom's block).
func compileAtom(node *AtomNode) (protocol, atomNumber int, payload []byte, err error) {
	if node.Def == nil {
		return 0, 0, nil, newError(ErrUnrecognizedAtom, node.Pos.Line, node.Pos.Column,
			"unrecognized atom %q", node.Name)
	}
	payload, err = EncodeValue(*node.Def, node.Arguments)
	if err != nil {
		return 0, 0, nil, errors.Wrapf(err, "encoding atom %q", node.Name)
	}
	return node.Def.Protocol, node.Def.AtomNumber, payload, nil
}

// encodeStream implements the STREAM atom type: a NestedStreamArg's
// atoms are compiled and framed with their own BinaryEncoder, whose
// current_protocol register starts fresh for the nested stream, then
// any trailing hex/number arguments are appended verbatim as extra raw
// bytes after the nested frames.
func encodeStream(arg ArgumentNode) ([]byte, error) {
	nested, ok := arg.(NestedStreamArg)
	if !ok {
		return nil, errors.Errorf("STREAM atom requires a nested atom block, got %T", arg)
	}
	enc := NewBinaryEncoder(false)
	var out []byte
	for _, node := range nested.Stream.Atoms {
		protocol, atomNumber, payload, err := compileAtom(node)
		if err != nil {
			return nil, err
		}
		out = enc.EncodeFrame(out, protocol, atomNumber, payload)
	}
	for _, t := range nested.Trailing {
		switch v := t.(type) {
		case HexArg:
			b, err := encodeRaw(v)
			if err != nil {
				return nil, err
			}
			out = append(out, b...)
		case NumberArg:
			out = append(out, encodeBigEndianMinimal(v.Value)...)
		default:
			return nil, errors.Errorf("unsupported trailing argument type %T in nested stream", t)
		}
	}
	return out, nil
}

// Package atom implements the FDO atom codec: a textual description
// language for named, typed atoms and the compact tagged binary stream it
// compiles to.
//
// The pipeline is layered end to end: AtomTable backs the
// Lexer and Parser that build a StreamNode AST from FDO source text; a
// ValueEncoder converts AST arguments into atom payload bytes; a
// BinaryEncoder (optionally wrapped in a FrameAwareEncoder) serializes
// atom frames; and on the way back, a BinaryDecoder produces AtomFrame
// values that a ValueDecoder turns into a Stream of Atom values for
// querying and pretty-printing.
package atom

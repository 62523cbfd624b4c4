package atom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexBasicTokens(t *testing.T) {
	toks, err := lex(`de_data<"hello">`)
	require.NoError(t, err)
	var typs []tokenType
	for _, tk := range toks {
		typs = append(typs, tk.typ)
	}
	assert.Equal(t, []tokenType{
		tokenAtomName, tokenAngleOpen, tokenString, tokenAngleClose, tokenEOF,
	}, typs)
}

func TestLexGid(t *testing.T) {
	toks, err := lex(`mat_object_id<32-105>`)
	require.NoError(t, err)
	require.Len(t, toks, 5) // name, <, gid, >, eof
	assert.Equal(t, tokenGid, toks[2].typ)
	assert.Equal(t, "32-105", toks[2].value)
}

func TestLexThreePartGid(t *testing.T) {
	toks, err := lex(`dod_gid<1-0-21029>`)
	require.NoError(t, err)
	assert.Equal(t, tokenGid, toks[2].typ)
	assert.Equal(t, "1-0-21029", toks[2].value)
}

func TestLexHexLiteralStartingWithDigit(t *testing.T) {
	toks, err := lex(`mat_size<0Ax>`)
	require.NoError(t, err)
	assert.Equal(t, tokenHex, toks[2].typ)
	assert.Equal(t, "0Ax", toks[2].value)
}

func TestLexHexLiteralStartingWithLetter(t *testing.T) {
	toks, err := lex(`mat_size<deadx>`)
	require.NoError(t, err)
	assert.Equal(t, tokenHex, toks[2].typ)
	assert.Equal(t, "deadx", toks[2].value)
}

func TestLexNegativeNumber(t *testing.T) {
	toks, err := lex(`act_set_criterion<-1>`)
	require.NoError(t, err)
	assert.Equal(t, tokenNumber, toks[2].typ)
	assert.Equal(t, "-1", toks[2].value)
}

func TestLexUnterminatedStringErrors(t *testing.T) {
	_, err := lex(`de_data<"hello`)
	require.Error(t, err)
	ce, ok := err.(*CodecError)
	require.True(t, ok)
	assert.Equal(t, ErrMissingQuote, ce.Code)
}

func TestLexComment(t *testing.T) {
	toks, err := lex("de_data<\"x\"> ; trailing comment\n")
	require.NoError(t, err)
	var typs []tokenType
	for _, tk := range toks {
		typs = append(typs, tk.typ)
	}
	assert.Equal(t, []tokenType{
		tokenAtomName, tokenAngleOpen, tokenString, tokenAngleClose, tokenNewline, tokenEOF,
	}, typs)
}

func TestLexPipe(t *testing.T) {
	toks, err := lex(`mat_orientation<left|top>`)
	require.NoError(t, err)
	assert.Equal(t, tokenPipe, toks[3].typ)
}

func TestLexDigitLeadingHexLiteral(t *testing.T) {
	toks, err := lex(`de_typed_data<0a1fx>`)
	require.NoError(t, err)
	require.Len(t, toks, 5)
	assert.Equal(t, tokenHex, toks[2].typ)
	assert.Equal(t, "0a1fx", toks[2].value)
}

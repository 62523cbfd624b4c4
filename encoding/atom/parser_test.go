package atom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleStringAtom(t *testing.T) {
	ast, err := ParseStream(`de_data<"TOSAdvisor">`, DefaultAtomTable)
	require.NoError(t, err)
	require.Len(t, ast.Atoms, 1)
	a := ast.Atoms[0]
	assert.Equal(t, "de_data", a.Name)
	require.Len(t, a.Arguments, 1)
	s, ok := a.Arguments[0].(StringArg)
	require.True(t, ok)
	assert.Equal(t, "TOSAdvisor", s.Text)
}

func TestParseAtomWithNoArguments(t *testing.T) {
	ast, err := ParseStream(`uni_start_stream`, DefaultAtomTable)
	require.NoError(t, err)
	require.Len(t, ast.Atoms, 1)
	assert.False(t, ast.Atoms[0].HasArguments())
}

func TestParseEmptyBlockCanonicalizesToNoArguments(t *testing.T) {
	ast, err := ParseStream(`uni_start_stream<>`, DefaultAtomTable)
	require.NoError(t, err)
	assert.False(t, ast.Atoms[0].HasArguments())
}

func TestParseNestedStreamArgument(t *testing.T) {
	src := `act_replace_select_action<
  act_set_criterion<select>
  act_do_action<do_something>
>`
	ast, err := ParseStream(src, DefaultAtomTable)
	require.NoError(t, err)
	require.Len(t, ast.Atoms, 1)
	nested, ok := ast.Atoms[0].Arguments[0].(NestedStreamArg)
	require.True(t, ok)
	require.Len(t, nested.Stream.Atoms, 2)
	assert.Equal(t, "act_set_criterion", nested.Stream.Atoms[0].Name)
	assert.Equal(t, "act_do_action", nested.Stream.Atoms[1].Name)
}

func TestParseGidArgument(t *testing.T) {
	ast, err := ParseStream(`mat_object_id<32-105>`, DefaultAtomTable)
	require.NoError(t, err)
	g, ok := ast.Atoms[0].Arguments[0].(GidArg)
	require.True(t, ok)
	assert.True(t, g.Value.Equal(NewGid2(32, 105)))
}

func TestParseObjectTypeCollapse(t *testing.T) {
	// Register a separate OBJSTART atom in a copy of the default table,
	// without disturbing DefaultAtomTable.
	tbl := NewAtomTable()
	for _, d := range DefaultAtomTable.All() {
		tbl.Register(d)
	}
	tbl.Register(AtomDefinition{Name: "obj_start", Protocol: 99, AtomNumber: 1, Type: OBJSTART})

	ast, err := ParseStream(`obj_start<ind_group, "My Group">`, tbl)
	require.NoError(t, err)
	obj, ok := ast.Atoms[0].Arguments[0].(ObjectTypeArg)
	require.True(t, ok)
	assert.Equal(t, "ind_group", obj.TypeName)
	assert.Equal(t, "My Group", obj.Title)
	assert.True(t, obj.HasTitle)
}

func TestParseUnrecognizedAtomInBlockErrors(t *testing.T) {
	_, err := ParseStream(`act_replace_select_action<
  totally_unknown_atom<1>
>`, DefaultAtomTable)
	require.Error(t, err)
	ce, ok := err.(*CodecError)
	require.True(t, ok)
	assert.Equal(t, ErrUnrecognizedAtom, ce.Code)
}

func TestParseMissingCloseBracketErrors(t *testing.T) {
	_, err := ParseStream(`de_data<"x"`, DefaultAtomTable)
	require.Error(t, err)
	ce, ok := err.(*CodecError)
	require.True(t, ok)
	assert.Equal(t, ErrMissingCloseBracket, ce.Code)
}

func TestParsePipedIdentifierArgument(t *testing.T) {
	ast, err := ParseStream(`act_do_action<left|top>`, DefaultAtomTable)
	require.NoError(t, err)
	p, ok := ast.Atoms[0].Arguments[0].(PipedArg)
	require.True(t, ok)
	require.Len(t, p.Parts, 2)
}

func TestParseMissingOpenBracketErrors(t *testing.T) {
	_, err := ParseStream(`de_data "oops"`, DefaultAtomTable)
	require.Error(t, err)
	ce, ok := err.(*CodecError)
	require.True(t, ok)
	assert.Equal(t, ErrMissingOpenBracket, ce.Code)
}

func TestParseMissingCommaErrors(t *testing.T) {
	_, err := ParseStream(`if_cond_equal<1 2>`, DefaultAtomTable)
	require.Error(t, err)
	ce, ok := err.(*CodecError)
	require.True(t, ok)
	assert.Equal(t, ErrMissingComma, ce.Code)
	assert.Equal(t, 1, ce.Line)
}

package atom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyPrintSimpleAtom(t *testing.T) {
	st := &Stream{Atoms: []Atom{
		{Name: "de_data", Protocol: protocolDE, AtomNumber: 1, Type: STRING, Value: StringValue{Text: "TOSAdvisor"}},
	}}
	got := PrettyPrint(st, DefaultAtomTable)
	assert.Equal(t, "de_data<\"TOSAdvisor\">\n", got)
}

func TestPrettyPrintEmptyValueOmitsAngleBrackets(t *testing.T) {
	st := &Stream{Atoms: []Atom{
		{Name: "uni_start_stream", Protocol: protocolUNI, AtomNumber: 1, Type: RAW, Value: EmptyValue{}},
	}}
	got := PrettyPrint(st, DefaultAtomTable)
	assert.Equal(t, "uni_start_stream\n", got)
}

func TestPrettyPrintIndentsNestedStream(t *testing.T) {
	inner := &Stream{Atoms: []Atom{
		{Name: "act_set_criterion", Protocol: protocolACT, AtomNumber: 5, Type: CRITERION, Value: NumberValue{N: 1}},
	}}
	st := &Stream{Atoms: []Atom{
		{Name: "act_replace_select_action", Protocol: protocolACT, AtomNumber: 4, Type: STREAM, Value: StreamValue{Stream: inner}},
	}}
	got := PrettyPrint(st, DefaultAtomTable)
	assert.Equal(t, "act_replace_select_action<\n  act_set_criterion<select>\n>\n", got)
}

func TestPrettyPrintQuotingOverridesApply(t *testing.T) {
	quoted := &Stream{Atoms: []Atom{
		{Name: "chat_add_user", Protocol: protocolCHAT, AtomNumber: 1, Type: TOKEN, Value: StringValue{Text: "bob"}},
	}}
	assert.Equal(t, "chat_add_user<\"bob\">\n", PrettyPrint(quoted, DefaultAtomTable))

	unquoted := &Stream{Atoms: []Atom{
		{Name: "act_do_action", Protocol: protocolACT, AtomNumber: 6, Type: TOKEN, Value: StringValue{Text: "next"}},
	}}
	assert.Equal(t, "act_do_action<next>\n", PrettyPrint(unquoted, DefaultAtomTable))
}

func TestPrettyPrintObjectStartWithAndWithoutTitle(t *testing.T) {
	withTitle := &Stream{Atoms: []Atom{
		{Name: "protocol_1_atom_1", Type: OBJSTART, Value: ObjectStartValue{TypeName: "ind_group", Title: "root", HasTitle: true}},
	}}
	assert.Equal(t, "protocol_1_atom_1<ind_group, \"root\">\n", PrettyPrint(withTitle, DefaultAtomTable))

	noTitle := &Stream{Atoms: []Atom{
		{Name: "protocol_1_atom_1", Type: OBJSTART, Value: ObjectStartValue{TypeName: "ind_group"}},
	}}
	assert.Equal(t, "protocol_1_atom_1<ind_group>\n", PrettyPrint(noTitle, DefaultAtomTable))
}

func TestPrettyPrintRawValueRendersHex(t *testing.T) {
	st := &Stream{Atoms: []Atom{
		{Name: "mat_size", Protocol: protocolMAT, AtomNumber: 14, Type: RAW, Value: RawValue{Data: []byte{0xDE, 0xAD}}},
	}}
	assert.Equal(t, "mat_size<deadx>\n", PrettyPrint(st, DefaultAtomTable))
}

func TestPrettyPrintListValueSingleLetterUnquoted(t *testing.T) {
	st := &Stream{Atoms: []Atom{
		{Name: "var_set_dword", Protocol: protocolVAR, AtomNumber: 3, Type: VARDWORD, Value: ListValue{Values: []Value{
			StringValue{Text: "a"},
			NumberValue{N: 5},
		}}},
	}}
	assert.Equal(t, "var_set_dword<a, 5>\n", PrettyPrint(st, DefaultAtomTable))
}

func TestPrettyPrintListValueLetterStringNoSpace(t *testing.T) {
	st := &Stream{Atoms: []Atom{
		{Name: "var_set_string", Protocol: protocolVAR, AtomNumber: 4, Type: VARSTRING, Value: ListValue{Values: []Value{
			StringValue{Text: "a"},
			StringValue{Text: "hello"},
		}}},
	}}
	assert.Equal(t, "var_set_string<a,\"hello\">\n", PrettyPrint(st, DefaultAtomTable))
}

func TestPrettyPrintOutdentFlagDecrementsBeforeLine(t *testing.T) {
	st := &Stream{Atoms: []Atom{
		{Name: "uni_start_stream", Protocol: protocolUNI, AtomNumber: 1, Type: RAW, Value: EmptyValue{}},
		{Name: "de_data", Protocol: protocolDE, AtomNumber: 1, Type: STRING, Value: StringValue{Text: "x"}},
		{Name: "uni_end_stream", Protocol: protocolUNI, AtomNumber: 2, Type: RAW, Value: EmptyValue{}},
	}}
	got := PrettyPrint(st, DefaultAtomTable)
	require.Equal(t, "uni_start_stream\n  de_data<\"x\">\nuni_end_stream\n", got)
}

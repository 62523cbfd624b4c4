package atom

// This file holds the small closed tables of per-atom and per-protocol
// overrides that can't be derived from an atom's declared type alone;
// they're evaluated during encode and decode, adjacent to the
// type-based default.

// forceQuoteNames must be quoted as strings despite their declared
// type's default.
var forceQuoteNames = map[string]bool{
	"chat_add_user":      true,
	"sm_send_token_raw":  true,
	"sm_send_token_arg":  true,
	"buf_set_token":      true,
	"vid_set_token":      true,
}

// forceNoQuoteNames must NOT be quoted despite their declared type's
// default.
var forceNoQuoteNames = map[string]bool{
	"act_set_criterion":        true,
	"act_do_action":            true,
	"uni_use_last_atom_string": true,
	"uni_use_last_atom_value":  true,
	"de_validate":              true,
}

// shouldQuote applies the override table on top of the type default.
func shouldQuote(name string, typeDefault bool) bool {
	if forceQuoteNames[name] {
		return true
	}
	if forceNoQuoteNames[name] {
		return false
	}
	return typeDefault
}

// threeByteGidNames prefer the 3-part-with-type-0 interpretation of a
// 3-byte GID payload on decode: these DOD/IDB/LM atoms use a 3-byte GID
// form that reads as (0, subtype, id) rather than the generic 2-part
// (type, id) reading most other GID atoms use for a 3-byte payload.
var threeByteGidNames = map[string]bool{
	"idb_set_context":    true,
	"lm_table_use_table": true,
	"dod_gid":            true,
	"dod_form_id":        true,
}

func preferThreePartZero(name string) bool {
	return threeByteGidNames[name]
}

// usesByteListShape reports whether an atom carries the list-of-bytes
// payload shape: a comma-separated list of small numbers, one byte
// each. Every atom of the IF protocol uses it, regardless of type.
func usesByteListShape(def AtomDefinition) bool {
	return def.Protocol == protocolIF
}

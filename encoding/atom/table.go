package atom

import "strings"

// AtomDefinition is the immutable record backing one entry of the atom
// table: canonical name, wire position (protocol/atom number), declared
// semantic type, and pretty-printer formatting flags.
type AtomDefinition struct {
	Name       string
	Protocol   int
	AtomNumber int
	Type       AtomType
	Flags      FormatFlag

	// DwordWidth, when nonzero, fixes the encoded byte width of a
	// DWORD-typed atom instead of the minimal-width default. The
	// reference table declares a handful of atoms that always write 4
	// bytes regardless of value magnitude.
	DwordWidth int
}

// AtomTable is the static, process-lifetime-immutable registry of known
// atoms, keyed for lookup both by name and by (protocol, atom number).
//
// The embedded table below is a representative subset of the full
// multi-thousand-entry, dozens-of-protocols reference table a production
// deployment would load: it carries every atom needed to exercise every
// AtomType and every per-atom override, across enough protocols to be
// representative. AtomTable's lookup and registration surface is
// general — ByName, ByProtocolAtom and Register work the same whether
// the table holds 80 entries or 8000.
type AtomTable struct {
	byName           map[string]AtomDefinition
	byProtocolAndNum map[protocolAtomKey]AtomDefinition
	order            []string
}

type protocolAtomKey struct {
	protocol int
	atom     int
}

// NewAtomTable returns an empty, mutable table. Use DefaultAtomTable for
// the embedded registry.
func NewAtomTable() *AtomTable {
	return &AtomTable{
		byName:           make(map[string]AtomDefinition),
		byProtocolAndNum: make(map[protocolAtomKey]AtomDefinition),
	}
}

// Register adds or replaces an atom definition. Names are stored and
// looked up case-insensitively in lowercase snake_case.
func (t *AtomTable) Register(def AtomDefinition) {
	key := strings.ToLower(def.Name)
	if _, exists := t.byName[key]; !exists {
		t.order = append(t.order, key)
	}
	t.byName[key] = def
	t.byProtocolAndNum[protocolAtomKey{def.Protocol, def.AtomNumber}] = def
}

// ByName looks up an atom definition by name, case-insensitively.
func (t *AtomTable) ByName(name string) (AtomDefinition, bool) {
	def, ok := t.byName[strings.ToLower(name)]
	return def, ok
}

// ByProtocolAtom looks up an atom definition by its wire position.
func (t *AtomTable) ByProtocolAtom(protocol, atomNumber int) (AtomDefinition, bool) {
	def, ok := t.byProtocolAndNum[protocolAtomKey{protocol, atomNumber}]
	return def, ok
}

// PrefixOf returns the conventional short name prefix used by atoms in
// the given protocol (e.g. "mat", "dod"), if any atom in that protocol
// has been registered.
func (t *AtomTable) PrefixOf(protocol int) (string, bool) {
	for _, name := range t.order {
		def := t.byName[name]
		if def.Protocol == protocol {
			if idx := strings.IndexByte(def.Name, '_'); idx > 0 {
				return def.Name[:idx], true
			}
		}
	}
	return "", false
}

// All returns every registered definition in registration order.
func (t *AtomTable) All() []AtomDefinition {
	defs := make([]AtomDefinition, 0, len(t.order))
	for _, name := range t.order {
		defs = append(defs, t.byName[name])
	}
	return defs
}

// Protocol name constants for the protocols carried by the embedded
// table.
const (
	protocolUNI   = 0  // uni_* stream-structure and large-atom-continuation atoms
	protocolMAN   = 1  // man_* display-manager atoms
	protocolACT   = 2  // act_* action atoms
	protocolDE    = 3  // de_* data-element atoms
	protocolVIEW  = 4  // view_* view-control atoms
	protocolASYNC = 5  // async_* host-request atoms
	protocolXFER  = 6  // xfer_* file-transfer atoms
	protocolMIP   = 7  // mip_* printing atoms
	protocolFM    = 8  // fm_* file-manager atoms
	protocolVAR   = 9  // var_* variable atoms
	protocolIMAGE = 10 // image_* picture-display atoms
	protocolCHART = 11 // chart_* charting atoms
	protocolMMI   = 12 // mmi_* multimedia-interface atoms
	protocolMORG  = 13 // morg_* mail-organization atoms
	protocolDICT  = 14 // dict_* dictionary atoms
	protocolEXAPI = 15 // exapi_* external-application atoms
	protocolMAT   = 16 // mat_* layout/metric atoms
	protocolIRC   = 17 // irc_* chat-relay atoms
	protocolMF    = 18 // mf_* mail-form atoms
	protocolPIC   = 19 // pic_* picture-resource atoms
	protocolRADIO = 20 // radio_* audio-stream atoms
	protocolRICH  = 21 // rich_* rich-text atoms
	protocolTOD   = 22 // tod_* time-of-day atoms
	protocolWWW   = 23 // www_* browser-integration atoms
	protocolCCL   = 24 // ccl_* connection-script atoms
	protocolCOS   = 25 // cos_* customer-service atoms
	protocolGAUGE = 26 // gauge_* progress-gauge atoms
	protocolDOD   = 27 // dod_* demand-object-directory atoms
	protocolHFS   = 28 // hfs_* host-file-system atoms
	protocolNUM   = 29 // num_* numeric-field atoms
	protocolPAT   = 30 // pat_* pattern atoms
	protocolSEC   = 31 // sec_* security atoms

	// Protocols at or above 32 exercise the PREFIX frame style.
	protocolIF     = 33 // if_* conditional atoms; list-of-bytes payload shape
	protocolAD     = 34 // ad_* advertising atoms
	protocolGL     = 35 // gl_* graphics-library atoms
	protocolSLIDE  = 36 // slide_* slideshow atoms
	protocolSPELL  = 37 // spell_* spell-check atoms
	protocolIDB    = 40 // idb_* index-database atoms
	protocolLM     = 41 // lm_* list-manager atoms
	protocolTOOL   = 42 // tool_* toolbar atoms
	protocolTICKER = 43 // ticker_* stock-ticker atoms
	protocolWMI    = 44 // wmi_* window-management-interface atoms
	protocolCHAT   = 45 // chat_* atoms
	protocolSM     = 46 // sm_* (state machine) token atoms
	protocolBUF    = 47 // buf_* buffer atoms
	protocolVID    = 48 // vid_* video atoms
)

// DefaultAtomTable is the process-wide embedded registry, built once at
// package init and safe for concurrent read access by any number of
// goroutines.
var DefaultAtomTable = buildDefaultAtomTable()

func buildDefaultAtomTable() *AtomTable {
	t := NewAtomTable()
	for _, def := range defaultAtomDefs {
		t.Register(def)
	}
	return t
}

var defaultAtomDefs = []AtomDefinition{
	// UNI protocol: stream structure and large-atom continuation.
	{Name: "uni_start_stream", Protocol: protocolUNI, AtomNumber: 1, Type: RAW, Flags: FlagIndent},
	{Name: "uni_end_stream", Protocol: protocolUNI, AtomNumber: 2, Type: RAW, Flags: FlagOutdent | FlagEOS},
	{Name: "uni_abort_stream", Protocol: protocolUNI, AtomNumber: 3, Type: RAW, Flags: FlagOutdent | FlagEOS},
	{Name: "uni_large_atom_start", Protocol: protocolUNI, AtomNumber: 4, Type: RAW},
	{Name: "uni_large_atom_segment", Protocol: protocolUNI, AtomNumber: 5, Type: RAW},
	{Name: "uni_large_atom_end", Protocol: protocolUNI, AtomNumber: 6, Type: RAW},
	{Name: "uni_use_last_atom_string", Protocol: protocolUNI, AtomNumber: 7, Type: STRING},
	{Name: "uni_use_last_atom_value", Protocol: protocolUNI, AtomNumber: 8, Type: DWORD},
	{Name: "uni_start_loop", Protocol: protocolUNI, AtomNumber: 9, Type: DWORD, Flags: FlagIndent},
	{Name: "uni_end_loop", Protocol: protocolUNI, AtomNumber: 10, Type: RAW, Flags: FlagOutdent},
	{Name: "uni_wait_on", Protocol: protocolUNI, AtomNumber: 11, Type: RAW},
	{Name: "uni_wait_off", Protocol: protocolUNI, AtomNumber: 12, Type: RAW},
	{Name: "uni_sync_skip", Protocol: protocolUNI, AtomNumber: 13, Type: DWORD},
	{Name: "uni_invoke_local", Protocol: protocolUNI, AtomNumber: 14, Type: DWORD},
	{Name: "uni_invoke_remote", Protocol: protocolUNI, AtomNumber: 15, Type: ATOMREF},
	{Name: "uni_force_update", Protocol: protocolUNI, AtomNumber: 16, Type: BOOL},
	{Name: "uni_save_result", Protocol: protocolUNI, AtomNumber: 17, Type: BOOL},
	{Name: "uni_get_result", Protocol: protocolUNI, AtomNumber: 18, Type: RAW},
	{Name: "uni_hold_updates", Protocol: protocolUNI, AtomNumber: 19, Type: BOOL},
	{Name: "uni_version", Protocol: protocolUNI, AtomNumber: 20, Type: DWORD},
	{Name: "uni_convert_last_atom_string", Protocol: protocolUNI, AtomNumber: 21, Type: STRING},
	{Name: "uni_command", Protocol: protocolUNI, AtomNumber: 22, Type: TOKEN},

	// MAN protocol: display manager, window/context bookkeeping.
	{Name: "man_start_object", Protocol: protocolMAN, AtomNumber: 1, Type: OBJSTART, Flags: FlagIndent},
	{Name: "man_end_object", Protocol: protocolMAN, AtomNumber: 2, Type: RAW, Flags: FlagOutdent},
	{Name: "man_close_update", Protocol: protocolMAN, AtomNumber: 3, Type: RAW},
	{Name: "man_update_display", Protocol: protocolMAN, AtomNumber: 4, Type: RAW},
	{Name: "man_set_context_globalid", Protocol: protocolMAN, AtomNumber: 5, Type: GID},
	{Name: "man_set_context_relative", Protocol: protocolMAN, AtomNumber: 6, Type: DWORD},
	{Name: "man_set_context_index", Protocol: protocolMAN, AtomNumber: 7, Type: DWORD},
	{Name: "man_end_context", Protocol: protocolMAN, AtomNumber: 8, Type: RAW},
	{Name: "man_item_get", Protocol: protocolMAN, AtomNumber: 9, Type: DWORD},
	{Name: "man_item_set", Protocol: protocolMAN, AtomNumber: 10, Type: STRING},
	{Name: "man_change_window_title", Protocol: protocolMAN, AtomNumber: 11, Type: STRING},
	{Name: "man_delete_object", Protocol: protocolMAN, AtomNumber: 12, Type: GID},
	{Name: "man_close_window", Protocol: protocolMAN, AtomNumber: 13, Type: RAW},
	{Name: "man_open_window", Protocol: protocolMAN, AtomNumber: 14, Type: GID},
	{Name: "man_enable_one_way", Protocol: protocolMAN, AtomNumber: 15, Type: BOOL},
	{Name: "man_force_off", Protocol: protocolMAN, AtomNumber: 16, Type: RAW},
	{Name: "man_preset_title", Protocol: protocolMAN, AtomNumber: 17, Type: STRING},
	{Name: "man_set_response_id", Protocol: protocolMAN, AtomNumber: 18, Type: DWORD, DwordWidth: 4},
	{Name: "man_append_data", Protocol: protocolMAN, AtomNumber: 19, Type: STRING},
	{Name: "man_clear_object", Protocol: protocolMAN, AtomNumber: 20, Type: RAW},

	// ACT protocol: actions bound to UI criteria.
	// No FlagIndent on the STREAM-typed atoms: writeAtomLine's
	// StreamValue branch manages the child indent level itself, since a
	// STREAM atom's bracketing is structural rather than flag-driven
	// like uni_start_stream/uni_end_stream.
	{Name: "act_set_inheritance", Protocol: protocolACT, AtomNumber: 1, Type: BOOL},
	{Name: "act_clear_action", Protocol: protocolACT, AtomNumber: 2, Type: CRITERION},
	{Name: "act_append_select_action", Protocol: protocolACT, AtomNumber: 3, Type: STREAM},
	{Name: "act_replace_select_action", Protocol: protocolACT, AtomNumber: 4, Type: STREAM},
	{Name: "act_set_criterion", Protocol: protocolACT, AtomNumber: 5, Type: CRITERION},
	{Name: "act_do_action", Protocol: protocolACT, AtomNumber: 6, Type: TOKEN},
	{Name: "act_replace_action", Protocol: protocolACT, AtomNumber: 7, Type: STREAM},
	{Name: "act_append_action", Protocol: protocolACT, AtomNumber: 8, Type: STREAM},
	{Name: "act_prepend_action", Protocol: protocolACT, AtomNumber: 9, Type: STREAM},
	{Name: "act_set_precedence", Protocol: protocolACT, AtomNumber: 10, Type: DWORD},
	{Name: "act_copy_stream", Protocol: protocolACT, AtomNumber: 11, Type: GID},
	{Name: "act_do_stream", Protocol: protocolACT, AtomNumber: 12, Type: STREAM},
	{Name: "act_set_double_click", Protocol: protocolACT, AtomNumber: 13, Type: BOOL},
	{Name: "act_modal_start", Protocol: protocolACT, AtomNumber: 14, Type: RAW},
	{Name: "act_modal_end", Protocol: protocolACT, AtomNumber: 15, Type: RAW},

	// DE protocol: data elements, field extraction and validation.
	{Name: "de_data", Protocol: protocolDE, AtomNumber: 1, Type: STRING},
	{Name: "de_validate", Protocol: protocolDE, AtomNumber: 2, Type: TOKEN},
	{Name: "de_start_extraction", Protocol: protocolDE, AtomNumber: 3, Type: RAW},
	{Name: "de_end_extraction", Protocol: protocolDE, AtomNumber: 4, Type: RAW},
	{Name: "de_get_data", Protocol: protocolDE, AtomNumber: 5, Type: DWORD},
	{Name: "de_set_data_type", Protocol: protocolDE, AtomNumber: 6, Type: DWORD},
	{Name: "de_typed_data", Protocol: protocolDE, AtomNumber: 7, Type: RAW},
	{Name: "de_min_length", Protocol: protocolDE, AtomNumber: 8, Type: DWORD},
	{Name: "de_max_length", Protocol: protocolDE, AtomNumber: 9, Type: DWORD},
	{Name: "de_use_default", Protocol: protocolDE, AtomNumber: 10, Type: BOOL},
	{Name: "de_zero_data", Protocol: protocolDE, AtomNumber: 11, Type: RAW},
	{Name: "de_set_data_length", Protocol: protocolDE, AtomNumber: 12, Type: DWORD, DwordWidth: 4},

	// VIEW protocol: scrolling and selection of list views.
	{Name: "view_scroll_to_top", Protocol: protocolVIEW, AtomNumber: 1, Type: RAW},
	{Name: "view_scroll_to_bottom", Protocol: protocolVIEW, AtomNumber: 2, Type: RAW},
	{Name: "view_select_item", Protocol: protocolVIEW, AtomNumber: 3, Type: DWORD},
	{Name: "view_deselect_item", Protocol: protocolVIEW, AtomNumber: 4, Type: DWORD},
	{Name: "view_get_selection", Protocol: protocolVIEW, AtomNumber: 5, Type: RAW},
	{Name: "view_set_columns", Protocol: protocolVIEW, AtomNumber: 6, Type: DWORD},
	{Name: "view_sort_by_column", Protocol: protocolVIEW, AtomNumber: 7, Type: DWORD},
	{Name: "view_show_headers", Protocol: protocolVIEW, AtomNumber: 8, Type: BOOL},

	// ASYNC protocol: host requests issued off the display path.
	{Name: "async_exec_online_host", Protocol: protocolASYNC, AtomNumber: 1, Type: TOKEN},
	{Name: "async_alert", Protocol: protocolASYNC, AtomNumber: 2, Type: STRING},
	{Name: "async_go_keyword", Protocol: protocolASYNC, AtomNumber: 3, Type: STRING},
	{Name: "async_exit", Protocol: protocolASYNC, AtomNumber: 4, Type: RAW},
	{Name: "async_online_notify", Protocol: protocolASYNC, AtomNumber: 5, Type: BOOL},
	{Name: "async_get_version", Protocol: protocolASYNC, AtomNumber: 6, Type: RAW},
	{Name: "async_play_sound", Protocol: protocolASYNC, AtomNumber: 7, Type: STRING},
	{Name: "async_set_timer", Protocol: protocolASYNC, AtomNumber: 8, Type: DWORD, DwordWidth: 4},
	{Name: "async_kill_timer", Protocol: protocolASYNC, AtomNumber: 9, Type: RAW},

	// XFER protocol: file transfer control.
	{Name: "xfer_start_download", Protocol: protocolXFER, AtomNumber: 1, Type: STRING},
	{Name: "xfer_start_upload", Protocol: protocolXFER, AtomNumber: 2, Type: STRING},
	{Name: "xfer_abort", Protocol: protocolXFER, AtomNumber: 3, Type: RAW},
	{Name: "xfer_set_file_size", Protocol: protocolXFER, AtomNumber: 4, Type: DWORD, DwordWidth: 4},
	{Name: "xfer_set_file_name", Protocol: protocolXFER, AtomNumber: 5, Type: STRING},
	{Name: "xfer_block_received", Protocol: protocolXFER, AtomNumber: 6, Type: DWORD},
	{Name: "xfer_resume", Protocol: protocolXFER, AtomNumber: 7, Type: BOOL},

	// MIP protocol: printing.
	{Name: "mip_print_form", Protocol: protocolMIP, AtomNumber: 1, Type: RAW},
	{Name: "mip_page_setup", Protocol: protocolMIP, AtomNumber: 2, Type: RAW},
	{Name: "mip_set_header", Protocol: protocolMIP, AtomNumber: 3, Type: STRING},
	{Name: "mip_set_footer", Protocol: protocolMIP, AtomNumber: 4, Type: STRING},
	{Name: "mip_allow_print", Protocol: protocolMIP, AtomNumber: 5, Type: BOOL},

	// FM protocol: local file manager.
	{Name: "fm_open_file", Protocol: protocolFM, AtomNumber: 1, Type: STRING},
	{Name: "fm_save_file", Protocol: protocolFM, AtomNumber: 2, Type: STRING},
	{Name: "fm_delete_file", Protocol: protocolFM, AtomNumber: 3, Type: STRING},
	{Name: "fm_file_exists", Protocol: protocolFM, AtomNumber: 4, Type: STRING},
	{Name: "fm_make_directory", Protocol: protocolFM, AtomNumber: 5, Type: STRING},
	{Name: "fm_confirm_overwrite", Protocol: protocolFM, AtomNumber: 6, Type: BOOL},

	// VAR protocol: variable get/set, composite payload shapes.
	{Name: "var_set_byte", Protocol: protocolVAR, AtomNumber: 1, Type: VARDWORD},
	{Name: "var_set_word", Protocol: protocolVAR, AtomNumber: 2, Type: VARDWORD},
	{Name: "var_set_dword", Protocol: protocolVAR, AtomNumber: 3, Type: VARDWORD},
	{Name: "var_set_string", Protocol: protocolVAR, AtomNumber: 4, Type: VARSTRING},
	{Name: "var_lookup", Protocol: protocolVAR, AtomNumber: 5, Type: VARLOOKUP},
	{Name: "var_number_zero", Protocol: protocolVAR, AtomNumber: 6, Type: VAR},
	{Name: "var_number_increment", Protocol: protocolVAR, AtomNumber: 7, Type: VAR},
	{Name: "var_number_decrement", Protocol: protocolVAR, AtomNumber: 8, Type: VAR},
	{Name: "var_string_clear", Protocol: protocolVAR, AtomNumber: 9, Type: VAR},
	{Name: "var_number_save", Protocol: protocolVAR, AtomNumber: 10, Type: VAR},
	{Name: "var_string_save", Protocol: protocolVAR, AtomNumber: 11, Type: VAR},

	// IMAGE protocol: inline picture display.
	{Name: "image_set_url", Protocol: protocolIMAGE, AtomNumber: 1, Type: STRING},
	{Name: "image_set_scale", Protocol: protocolIMAGE, AtomNumber: 2, Type: DWORD},
	{Name: "image_show_border", Protocol: protocolIMAGE, AtomNumber: 3, Type: BOOL},
	{Name: "image_set_placeholder", Protocol: protocolIMAGE, AtomNumber: 4, Type: GID},
	{Name: "image_refresh", Protocol: protocolIMAGE, AtomNumber: 5, Type: RAW},

	// CHART protocol.
	{Name: "chart_set_type", Protocol: protocolCHART, AtomNumber: 1, Type: DWORD},
	{Name: "chart_add_point", Protocol: protocolCHART, AtomNumber: 2, Type: DWORD, DwordWidth: 4},
	{Name: "chart_clear", Protocol: protocolCHART, AtomNumber: 3, Type: RAW},
	{Name: "chart_set_label", Protocol: protocolCHART, AtomNumber: 4, Type: STRING},

	// MMI protocol: multimedia interface.
	{Name: "mmi_play", Protocol: protocolMMI, AtomNumber: 1, Type: RAW},
	{Name: "mmi_stop", Protocol: protocolMMI, AtomNumber: 2, Type: RAW},
	{Name: "mmi_pause", Protocol: protocolMMI, AtomNumber: 3, Type: RAW},
	{Name: "mmi_set_volume", Protocol: protocolMMI, AtomNumber: 4, Type: DWORD},
	{Name: "mmi_set_source", Protocol: protocolMMI, AtomNumber: 5, Type: STRING},
	{Name: "mmi_loop", Protocol: protocolMMI, AtomNumber: 6, Type: BOOL},

	// MORG protocol: mail organization.
	{Name: "morg_open_folder", Protocol: protocolMORG, AtomNumber: 1, Type: STRING},
	{Name: "morg_move_to_folder", Protocol: protocolMORG, AtomNumber: 2, Type: STRING},
	{Name: "morg_delete_item", Protocol: protocolMORG, AtomNumber: 3, Type: DWORD},
	{Name: "morg_item_count", Protocol: protocolMORG, AtomNumber: 4, Type: RAW},
	{Name: "morg_mark_read", Protocol: protocolMORG, AtomNumber: 5, Type: BOOL},

	// DICT protocol.
	{Name: "dict_lookup", Protocol: protocolDICT, AtomNumber: 1, Type: STRING},
	{Name: "dict_set_language", Protocol: protocolDICT, AtomNumber: 2, Type: DWORD},

	// EXAPI protocol: external application bridge.
	{Name: "exapi_launch", Protocol: protocolEXAPI, AtomNumber: 1, Type: STRING},
	{Name: "exapi_send_message", Protocol: protocolEXAPI, AtomNumber: 2, Type: STRING},
	{Name: "exapi_register_protocol", Protocol: protocolEXAPI, AtomNumber: 3, Type: STRING},
	{Name: "exapi_close", Protocol: protocolEXAPI, AtomNumber: 4, Type: RAW},

	// MAT protocol: layout and metrics for the current object.
	{Name: "mat_bool_relative_tag", Protocol: protocolMAT, AtomNumber: 1, Type: BOOL},
	{Name: "mat_art_id", Protocol: protocolMAT, AtomNumber: 2, Type: DWORD, DwordWidth: 4},
	{Name: "mat_title_pos", Protocol: protocolMAT, AtomNumber: 3, Type: ORIENT},
	{Name: "mat_bool_invisible", Protocol: protocolMAT, AtomNumber: 4, Type: BOOL},
	{Name: "mat_bool_disabled", Protocol: protocolMAT, AtomNumber: 5, Type: BOOL},
	{Name: "mat_font_sid", Protocol: protocolMAT, AtomNumber: 6, Type: DWORD},
	{Name: "mat_font_size", Protocol: protocolMAT, AtomNumber: 7, Type: DWORD},
	{Name: "mat_color_face", Protocol: protocolMAT, AtomNumber: 8, Type: DWORD, DwordWidth: 4},
	{Name: "mat_color_text", Protocol: protocolMAT, AtomNumber: 9, Type: DWORD, DwordWidth: 4},
	{Name: "mat_spacing", Protocol: protocolMAT, AtomNumber: 10, Type: DWORD},
	{Name: "mat_border_style", Protocol: protocolMAT, AtomNumber: 11, Type: DWORD},
	{Name: "mat_object_id", Protocol: protocolMAT, AtomNumber: 12, Type: GID},
	{Name: "mat_orientation", Protocol: protocolMAT, AtomNumber: 13, Type: ORIENT},
	{Name: "mat_size", Protocol: protocolMAT, AtomNumber: 14, Type: RAW},
	{Name: "mat_precise_width", Protocol: protocolMAT, AtomNumber: 15, Type: DWORD},
	{Name: "mat_precise_height", Protocol: protocolMAT, AtomNumber: 16, Type: DWORD},
	{Name: "mat_bool_resize_vertical", Protocol: protocolMAT, AtomNumber: 17, Type: BOOL},
	{Name: "mat_bool_resize_horizontal", Protocol: protocolMAT, AtomNumber: 18, Type: BOOL},
	{Name: "mat_bool_default", Protocol: protocolMAT, AtomNumber: 19, Type: BOOL},
	{Name: "mat_bool_secure", Protocol: protocolMAT, AtomNumber: 20, Type: BOOL},
	{Name: "mat_capacity", Protocol: protocolMAT, AtomNumber: 21, Type: DWORD},
	{Name: "mat_ruler", Protocol: protocolMAT, AtomNumber: 22, Type: ORIENT},

	// IRC protocol: relay chat rooms.
	{Name: "irc_join_room", Protocol: protocolIRC, AtomNumber: 1, Type: STRING},
	{Name: "irc_leave_room", Protocol: protocolIRC, AtomNumber: 2, Type: RAW},
	{Name: "irc_send_text", Protocol: protocolIRC, AtomNumber: 3, Type: STRING},
	{Name: "irc_set_nickname", Protocol: protocolIRC, AtomNumber: 4, Type: STRING},
	{Name: "irc_room_census", Protocol: protocolIRC, AtomNumber: 5, Type: RAW},

	// MF protocol: mail forms.
	{Name: "mf_set_subject", Protocol: protocolMF, AtomNumber: 1, Type: STRING},
	{Name: "mf_set_recipient", Protocol: protocolMF, AtomNumber: 2, Type: STRING},
	{Name: "mf_set_body", Protocol: protocolMF, AtomNumber: 3, Type: STRING},
	{Name: "mf_attach_file", Protocol: protocolMF, AtomNumber: 4, Type: STRING},
	{Name: "mf_send", Protocol: protocolMF, AtomNumber: 5, Type: RAW},
	{Name: "mf_return_receipt", Protocol: protocolMF, AtomNumber: 6, Type: BOOL},

	// PIC protocol: picture resources addressed by GID.
	{Name: "pic_set_picture", Protocol: protocolPIC, AtomNumber: 1, Type: GID},
	{Name: "pic_set_selected_picture", Protocol: protocolPIC, AtomNumber: 2, Type: GID},
	{Name: "pic_clear", Protocol: protocolPIC, AtomNumber: 3, Type: RAW},

	// RADIO protocol.
	{Name: "radio_tune", Protocol: protocolRADIO, AtomNumber: 1, Type: STRING},
	{Name: "radio_stop", Protocol: protocolRADIO, AtomNumber: 2, Type: RAW},
	{Name: "radio_set_buffer", Protocol: protocolRADIO, AtomNumber: 3, Type: DWORD},

	// RICH protocol: rich text attributes in the current buffer.
	{Name: "rich_set_bold", Protocol: protocolRICH, AtomNumber: 1, Type: BOOL},
	{Name: "rich_set_italic", Protocol: protocolRICH, AtomNumber: 2, Type: BOOL},
	{Name: "rich_set_underline", Protocol: protocolRICH, AtomNumber: 3, Type: BOOL},
	{Name: "rich_set_color", Protocol: protocolRICH, AtomNumber: 4, Type: DWORD, DwordWidth: 4},
	{Name: "rich_insert_text", Protocol: protocolRICH, AtomNumber: 5, Type: STRING},
	{Name: "rich_insert_link", Protocol: protocolRICH, AtomNumber: 6, Type: STRING},
	{Name: "rich_set_alignment", Protocol: protocolRICH, AtomNumber: 7, Type: ORIENT},

	// TOD protocol.
	{Name: "tod_get_time", Protocol: protocolTOD, AtomNumber: 1, Type: RAW},
	{Name: "tod_set_format", Protocol: protocolTOD, AtomNumber: 2, Type: STRING},

	// WWW protocol: embedded browser integration.
	{Name: "www_open_url", Protocol: protocolWWW, AtomNumber: 1, Type: STRING},
	{Name: "www_reload", Protocol: protocolWWW, AtomNumber: 2, Type: RAW},
	{Name: "www_go_back", Protocol: protocolWWW, AtomNumber: 3, Type: RAW},
	{Name: "www_go_forward", Protocol: protocolWWW, AtomNumber: 4, Type: RAW},
	{Name: "www_set_home", Protocol: protocolWWW, AtomNumber: 5, Type: STRING},
	{Name: "www_allow_popups", Protocol: protocolWWW, AtomNumber: 6, Type: BOOL},

	// CCL protocol: connection scripting.
	{Name: "ccl_run_script", Protocol: protocolCCL, AtomNumber: 1, Type: STRING},
	{Name: "ccl_abort_script", Protocol: protocolCCL, AtomNumber: 2, Type: RAW},
	{Name: "ccl_set_modem_port", Protocol: protocolCCL, AtomNumber: 3, Type: DWORD},

	// COS protocol: customer service hooks.
	{Name: "cos_open_ticket", Protocol: protocolCOS, AtomNumber: 1, Type: STRING},
	{Name: "cos_log_event", Protocol: protocolCOS, AtomNumber: 2, Type: STRING},

	// GAUGE protocol: progress display.
	{Name: "gauge_set_range", Protocol: protocolGAUGE, AtomNumber: 1, Type: DWORD, DwordWidth: 4},
	{Name: "gauge_set_value", Protocol: protocolGAUGE, AtomNumber: 2, Type: DWORD, DwordWidth: 4},
	{Name: "gauge_reset", Protocol: protocolGAUGE, AtomNumber: 3, Type: RAW},

	// DOD protocol: demand object directory; 3-byte GID override applies.
	{Name: "dod_start", Protocol: protocolDOD, AtomNumber: 1, Type: RAW, Flags: FlagIndent},
	{Name: "dod_gid", Protocol: protocolDOD, AtomNumber: 2, Type: GID},
	{Name: "dod_form_id", Protocol: protocolDOD, AtomNumber: 3, Type: GID},
	{Name: "dod_end", Protocol: protocolDOD, AtomNumber: 4, Type: RAW, Flags: FlagOutdent},
	{Name: "dod_data", Protocol: protocolDOD, AtomNumber: 5, Type: RAW},
	{Name: "dod_close_form", Protocol: protocolDOD, AtomNumber: 6, Type: RAW},
	{Name: "dod_version", Protocol: protocolDOD, AtomNumber: 7, Type: DWORD},

	// HFS protocol: host file system.
	{Name: "hfs_open", Protocol: protocolHFS, AtomNumber: 1, Type: STRING},
	{Name: "hfs_read_block", Protocol: protocolHFS, AtomNumber: 2, Type: DWORD},
	{Name: "hfs_close", Protocol: protocolHFS, AtomNumber: 3, Type: RAW},

	// NUM protocol: numeric entry fields.
	{Name: "num_set_minimum", Protocol: protocolNUM, AtomNumber: 1, Type: DWORD, DwordWidth: 4},
	{Name: "num_set_maximum", Protocol: protocolNUM, AtomNumber: 2, Type: DWORD, DwordWidth: 4},
	{Name: "num_set_value", Protocol: protocolNUM, AtomNumber: 3, Type: DWORD, DwordWidth: 4},
	{Name: "num_allow_negative", Protocol: protocolNUM, AtomNumber: 4, Type: BOOL},

	// PAT protocol.
	{Name: "pat_set_pattern", Protocol: protocolPAT, AtomNumber: 1, Type: STRING},
	{Name: "pat_match", Protocol: protocolPAT, AtomNumber: 2, Type: STRING},

	// SEC protocol.
	{Name: "sec_require_password", Protocol: protocolSEC, AtomNumber: 1, Type: BOOL},
	{Name: "sec_set_level", Protocol: protocolSEC, AtomNumber: 2, Type: DWORD},

	// IF protocol: conditionals. Every atom in this protocol carries the
	// list-of-bytes payload shape (see overrides.go).
	{Name: "if_cond_equal", Protocol: protocolIF, AtomNumber: 1, Type: RAW},
	{Name: "if_cond_not_equal", Protocol: protocolIF, AtomNumber: 2, Type: RAW},
	{Name: "if_cond_less", Protocol: protocolIF, AtomNumber: 3, Type: RAW},
	{Name: "if_cond_greater", Protocol: protocolIF, AtomNumber: 4, Type: RAW},
	{Name: "if_then_jump", Protocol: protocolIF, AtomNumber: 5, Type: RAW},
	{Name: "if_else_jump", Protocol: protocolIF, AtomNumber: 6, Type: RAW},
	{Name: "if_end", Protocol: protocolIF, AtomNumber: 7, Type: RAW},

	// AD protocol.
	{Name: "ad_set_slot", Protocol: protocolAD, AtomNumber: 1, Type: DWORD},
	{Name: "ad_rotate", Protocol: protocolAD, AtomNumber: 2, Type: BOOL},

	// GL protocol: low-level graphics.
	{Name: "gl_move_to", Protocol: protocolGL, AtomNumber: 1, Type: DWORD, DwordWidth: 4},
	{Name: "gl_line_to", Protocol: protocolGL, AtomNumber: 2, Type: DWORD, DwordWidth: 4},
	{Name: "gl_set_pen", Protocol: protocolGL, AtomNumber: 3, Type: DWORD},

	// SLIDE protocol.
	{Name: "slide_next", Protocol: protocolSLIDE, AtomNumber: 1, Type: RAW},
	{Name: "slide_previous", Protocol: protocolSLIDE, AtomNumber: 2, Type: RAW},
	{Name: "slide_set_interval", Protocol: protocolSLIDE, AtomNumber: 3, Type: DWORD},

	// SPELL protocol.
	{Name: "spell_check_buffer", Protocol: protocolSPELL, AtomNumber: 1, Type: RAW},
	{Name: "spell_add_word", Protocol: protocolSPELL, AtomNumber: 2, Type: STRING},

	// IDB / LM protocols: context and list lookups, 3-byte GID override.
	{Name: "idb_set_context", Protocol: protocolIDB, AtomNumber: 1, Type: GID},
	{Name: "idb_get_data", Protocol: protocolIDB, AtomNumber: 2, Type: DWORD},
	{Name: "idb_append_data", Protocol: protocolIDB, AtomNumber: 3, Type: STRING},
	{Name: "idb_delete_record", Protocol: protocolIDB, AtomNumber: 4, Type: DWORD},
	{Name: "idb_close_context", Protocol: protocolIDB, AtomNumber: 5, Type: RAW},
	{Name: "lm_table_use_table", Protocol: protocolLM, AtomNumber: 1, Type: GID},
	{Name: "lm_table_add_row", Protocol: protocolLM, AtomNumber: 2, Type: STRING},
	{Name: "lm_table_delete_row", Protocol: protocolLM, AtomNumber: 3, Type: DWORD},
	{Name: "lm_table_clear", Protocol: protocolLM, AtomNumber: 4, Type: RAW},
	{Name: "lm_list_use_list", Protocol: protocolLM, AtomNumber: 5, Type: GID},

	// TOOL / TICKER / WMI protocols.
	{Name: "tool_add_button", Protocol: protocolTOOL, AtomNumber: 1, Type: GID},
	{Name: "tool_remove_button", Protocol: protocolTOOL, AtomNumber: 2, Type: GID},
	{Name: "tool_set_tooltip", Protocol: protocolTOOL, AtomNumber: 3, Type: STRING},
	{Name: "ticker_add_symbol", Protocol: protocolTICKER, AtomNumber: 1, Type: STRING},
	{Name: "ticker_remove_symbol", Protocol: protocolTICKER, AtomNumber: 2, Type: STRING},
	{Name: "ticker_set_speed", Protocol: protocolTICKER, AtomNumber: 3, Type: DWORD},
	{Name: "wmi_bring_to_front", Protocol: protocolWMI, AtomNumber: 1, Type: GID},
	{Name: "wmi_send_to_back", Protocol: protocolWMI, AtomNumber: 2, Type: GID},
	{Name: "wmi_cascade", Protocol: protocolWMI, AtomNumber: 3, Type: RAW},

	// CHAT / SM / BUF / VID protocols: token atoms, several with
	// forced-quote overrides.
	{Name: "chat_add_user", Protocol: protocolCHAT, AtomNumber: 1, Type: TOKEN},
	{Name: "chat_remove_user", Protocol: protocolCHAT, AtomNumber: 2, Type: TOKEN},
	{Name: "chat_send_text", Protocol: protocolCHAT, AtomNumber: 3, Type: STRING},
	{Name: "chat_clear_window", Protocol: protocolCHAT, AtomNumber: 4, Type: RAW},
	{Name: "sm_send_token_raw", Protocol: protocolSM, AtomNumber: 1, Type: TOKEN},
	{Name: "sm_send_token_arg", Protocol: protocolSM, AtomNumber: 2, Type: TOKENARG},
	{Name: "sm_send_er", Protocol: protocolSM, AtomNumber: 3, Type: RAW},
	{Name: "sm_set_timeout", Protocol: protocolSM, AtomNumber: 4, Type: DWORD},
	{Name: "buf_set_token", Protocol: protocolBUF, AtomNumber: 1, Type: TOKEN},
	{Name: "buf_start_buffer", Protocol: protocolBUF, AtomNumber: 2, Type: RAW, Flags: FlagIndent},
	{Name: "buf_end_buffer", Protocol: protocolBUF, AtomNumber: 3, Type: RAW, Flags: FlagOutdent},
	{Name: "buf_clear", Protocol: protocolBUF, AtomNumber: 4, Type: RAW},
	{Name: "vid_set_token", Protocol: protocolVID, AtomNumber: 1, Type: TOKEN},
	{Name: "vid_play", Protocol: protocolVID, AtomNumber: 2, Type: RAW},
	{Name: "vid_stop", Protocol: protocolVID, AtomNumber: 3, Type: RAW},
}

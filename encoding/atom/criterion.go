package atom

import "strconv"

// criterionNames is the closed table of named CRITERION byte values.
// Values outside this table still encode/decode, falling back to their
// decimal numeric form.
var criterionNames = map[int]string{
	1:  "select",
	2:  "close",
	4:  "gain_focus",
	5:  "lose_focus",
	7:  "change",
	8:  "double_click",
	10: "key_press",
	11: "mouse_over",
	18: "timer",
	20: "right_click",
	23: "drag_drop",
	24: "resize",
	25: "scroll",
}

var criterionValues = func() map[string]int {
	m := make(map[string]int, len(criterionNames))
	for v, name := range criterionNames {
		m[name] = v
	}
	return m
}()

// CriterionString renders a CRITERION byte value using its named form
// when known, otherwise its decimal value.
func CriterionString(v int) string {
	if name, ok := criterionNames[v]; ok {
		return name
	}
	return strconv.Itoa(v)
}

// ParseCriterion parses either a named criterion or a decimal integer.
func ParseCriterion(s string) (int, error) {
	if v, ok := criterionValues[s]; ok {
		return v, nil
	}
	return strconv.Atoi(s)
}

package atom

import "fmt"

// objectTypeNames is the closed, fixed table of OBJSTART type-byte names
// (0..28). Only "ind_group" (type 0) has a settled name; the remaining
// 28 are filled in with stable placeholder names so the table is total
// over its declared range (see DESIGN.md).
var objectTypeNames = buildObjectTypeNames()

func buildObjectTypeNames() map[int]string {
	m := map[int]string{0: "ind_group"}
	for i := 1; i <= 28; i++ {
		m[i] = fmt.Sprintf("object_type_%d", i)
	}
	return m
}

var objectTypeValues = func() map[string]int {
	m := make(map[string]int, len(objectTypeNames))
	for v, name := range objectTypeNames {
		m[name] = v
	}
	return m
}()

// ObjectTypeName returns the name for an object-type byte value.
func ObjectTypeName(v int) (string, bool) {
	name, ok := objectTypeNames[v]
	return name, ok
}

// ObjectTypeValue returns the byte value for an object-type name.
func ObjectTypeValue(name string) (int, bool) {
	v, ok := objectTypeValues[name]
	return v, ok
}

package atom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// absentSubtype is the sentinel stored in Gid.Subtype for the 2-part
// form. It is distinct from subtype 0, which is a valid, meaningful
// 3-part value.
const absentSubtype = -1

// Gid is a global identifier: a 2-part (Type, ID) or 3-part
// (Type, Subtype, ID) reference. The 3-part form with Subtype == 0 is
// semantically distinct from the 2-part form and must round-trip as
// such; HasSubtype reports which form a value holds.
type Gid struct {
	Type    int
	Subtype int // absentSubtype for the 2-part form
	ID      int
}

// NewGid2 constructs the 2-part form (Type, ID).
func NewGid2(typ, id int) Gid {
	return Gid{Type: typ, Subtype: absentSubtype, ID: id}
}

// NewGid3 constructs the 3-part form (Type, Subtype, ID), including the
// Subtype == 0 case, which must be preserved distinct from NewGid2.
func NewGid3(typ, subtype, id int) Gid {
	return Gid{Type: typ, Subtype: subtype, ID: id}
}

// HasSubtype reports whether g is the 3-part form.
func (g Gid) HasSubtype() bool {
	return g.Subtype != absentSubtype
}

// String renders the GID in its canonical "T-I" or "T-S-I" textual form.
func (g Gid) String() string {
	if !g.HasSubtype() {
		return fmt.Sprintf("%d-%d", g.Type, g.ID)
	}
	return fmt.Sprintf("%d-%d-%d", g.Type, g.Subtype, g.ID)
}

// Equal reports whether two GIDs are identical, including subtype
// presence: NewGid2(1, 5) and NewGid3(1, 0, 5) are NOT equal.
func (g Gid) Equal(o Gid) bool {
	return g.Type == o.Type && g.Subtype == o.Subtype && g.ID == o.ID
}

// ParseGid parses a "T-I" or "T-S-I" string into a Gid.
func ParseGid(s string) (Gid, error) {
	parts := strings.Split(s, "-")
	nums := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Gid{}, errors.Wrapf(err, "invalid GID segment %q in %q", p, s)
		}
		nums = append(nums, n)
	}
	switch len(nums) {
	case 2:
		return NewGid2(nums[0], nums[1]), nil
	case 3:
		return NewGid3(nums[0], nums[1], nums[2]), nil
	default:
		return Gid{}, fmt.Errorf("GID must have 2 or 3 segments, got %d in %q", len(nums), s)
	}
}

// EncodeGid renders g to its payload bytes, choosing length by its
// type/subtype/id magnitudes.
func EncodeGid(g Gid) ([]byte, error) {
	if !g.HasSubtype() {
		// 2-part (T, I) -> 3 bytes [T, I>>8, I&0xFF]
		if g.Type < 0 || g.Type > 0xFF || g.ID < 0 || g.ID > 0xFFFF {
			return nil, fmt.Errorf("GID %s out of range for 2-part encoding", g)
		}
		return []byte{byte(g.Type), byte(g.ID >> 8), byte(g.ID)}, nil
	}

	switch {
	case g.Type == 0 && g.Subtype == 0 && g.ID <= 255:
		return []byte{byte(g.ID)}, nil
	case g.Type == 0 && g.Subtype == 0:
		return []byte{byte(g.ID >> 8), byte(g.ID)}, nil
	case g.Type == 0 && g.Subtype > 0:
		return []byte{byte(g.Subtype), byte(g.ID >> 8), byte(g.ID)}, nil
	case g.Type > 0:
		return []byte{byte(g.Type), byte(g.Subtype), byte(g.ID >> 8), byte(g.ID)}, nil
	default:
		return nil, fmt.Errorf("GID %s does not match any encoding rule", g)
	}
}

// DecodeGid selects a GID form by payload length. preferThreePartZero,
// when true, prefers the 3-part-with-type-0 interpretation of a 3-byte
// payload, producing NewGid3(0, S, I) instead of NewGid2(T, I).
func DecodeGid(data []byte, preferThreePartZero bool) (Gid, error) {
	switch len(data) {
	case 1:
		return NewGid3(0, 0, int(data[0])), nil
	case 2:
		return NewGid3(0, 0, int(data[0])<<8|int(data[1])), nil
	case 3:
		if preferThreePartZero {
			return NewGid3(0, int(data[0]), int(data[1])<<8|int(data[2])), nil
		}
		return NewGid2(int(data[0]), int(data[1])<<8|int(data[2])), nil
	case 4:
		return NewGid3(int(data[0]), int(data[1]), int(data[2])<<8|int(data[3])), nil
	default:
		return Gid{}, fmt.Errorf("invalid GID payload length %d", len(data))
	}
}

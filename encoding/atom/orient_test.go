package atom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrientationWorkedExampleS7(t *testing.T) {
	// mat_orientation <vcf> -> payload byte 0x43.
	o, err := ParseOrientation("vcf")
	if err != nil {
		t.Fatalf("ParseOrientation: %v", err)
	}
	assert.Equal(t, byte(0x43), EncodeOrientation(o))
	assert.Equal(t, "vcf", o.String())
}

func TestOrientationRoundTripFullByteRange(t *testing.T) {
	for b := 0; b < 256; b++ {
		o := DecodeOrientation(byte(b))
		got := EncodeOrientation(o)
		// bit 7 is never set by DecodeOrientation/EncodeOrientation, so
		// only bits 6-0 are guaranteed to round-trip.
		assert.Equal(t, byte(b)&0x7F, got&0x7F, "byte %d", b)
	}
}

func TestParseOrientationRejectsBadCode(t *testing.T) {
	_, err := ParseOrientation("xyz")
	assert.Error(t, err)
	_, err = ParseOrientation("zz")
	assert.Error(t, err)
}

package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateRangeMembership(t *testing.T) {
	m := RangeMapping{FromBase: 100000, ToBase: 50000000, RangeSize: 65536}

	tests := []struct {
		name string
		id   uint32
		want uint32
	}{
		{"below range", 99999, 99999},
		{"range start", 100000, 50000000},
		{"inside range", 100005, 50000005},
		{"last in range", 100000 + 65535, 50000000 + 65535},
		{"first past range", 100000 + 65536, 100000 + 65536},
		{"zero", 0, 0},
		{"max id", math.MaxUint32, math.MaxUint32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Translate(tt.id))
		})
	}
}

func TestContains(t *testing.T) {
	m := RangeMapping{FromBase: 1000, ToBase: 2000, RangeSize: 10}

	assert.False(t, m.Contains(999))
	assert.True(t, m.Contains(1000))
	assert.True(t, m.Contains(1009))
	assert.False(t, m.Contains(1010))
}

func TestTranslateRoundTrip(t *testing.T) {
	m := RangeMapping{FromBase: 100000, ToBase: 50000000, RangeSize: 65536}
	inv := m.Inverse()

	for _, id := range []uint32{100000, 100001, 132768, 165535} {
		assert.Equal(t, id, inv.Translate(m.Translate(id)), "id %d", id)
	}

	// Out-of-range IDs pass through both ways.
	assert.Equal(t, uint32(42), inv.Translate(m.Translate(42)))
}

func TestTranslateRangeAtIDSpaceCeiling(t *testing.T) {
	// The largest range validation accepts has from+size == MaxUint32,
	// covering IDs up to MaxUint32-1.
	m := RangeMapping{FromBase: math.MaxUint32 - 10, ToBase: 0, RangeSize: 10}

	assert.True(t, m.Contains(math.MaxUint32-1))
	assert.Equal(t, uint32(9), m.Translate(math.MaxUint32-1))
	assert.False(t, m.Contains(math.MaxUint32))
	assert.False(t, m.Contains(math.MaxUint32-11))
}

func TestTranslateSingleIDRange(t *testing.T) {
	m := RangeMapping{FromBase: 5, ToBase: 50, RangeSize: 1}

	assert.Equal(t, uint32(50), m.Translate(5))
	assert.Equal(t, uint32(4), m.Translate(4))
	assert.Equal(t, uint32(6), m.Translate(6))
}

package engine

// RangeMapping is a linear translation of IDs from the half-open range
// [FromBase, FromBase+RangeSize) onto [ToBase, ToBase+RangeSize). IDs
// outside the source range pass through unchanged.
//
// Callers must validate that neither FromBase+RangeSize nor
// ToBase+RangeSize exceeds the maximum 32-bit ID; Config.validate does
// this once, so Translate itself is total and overflow-free.
type RangeMapping struct {
	FromBase  uint32
	ToBase    uint32
	RangeSize uint32
}

// Contains reports whether id falls inside the source range.
func (m RangeMapping) Contains(id uint32) bool {
	return id >= m.FromBase && id-m.FromBase < m.RangeSize
}

// Translate maps id into the target range, or returns it unchanged when
// it lies outside the source range.
func (m RangeMapping) Translate(id uint32) uint32 {
	if !m.Contains(id) {
		return id
	}
	return m.ToBase + (id - m.FromBase)
}

// Inverse returns the mapping with source and target ranges swapped.
// For any id in the source range, m.Inverse().Translate(m.Translate(id))
// recovers id exactly.
func (m RangeMapping) Inverse() RangeMapping {
	return RangeMapping{FromBase: m.ToBase, ToBase: m.FromBase, RangeSize: m.RangeSize}
}

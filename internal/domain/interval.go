package domain

// Overlaps reports whether two half-open minute intervals [aStart, aEnd)
// and [bStart, bEnd) intersect. Touching boundaries do not overlap:
// a booking ending at 11:30 does not conflict with a slot starting at 11:30.
// A zero-length interval never overlaps anything.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

package visit

// LargeChange reports whether a proposed inventory count is a large change
// against the approved quantity. Previously unstocked products are judged on
// the absolute move (more than 10 units); stocked products on the relative
// move (more than half of the approved quantity).
func LargeChange(approved, proposed int) bool {
	diff := proposed - approved
	if diff < 0 {
		diff = -diff
	}
	if approved == 0 {
		return diff > 10
	}
	return float64(diff)/float64(approved) > 0.5
}

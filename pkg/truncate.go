package pkg

// Truncate caps items at max entries and returns the number left out.
// A non-positive max keeps nothing.
func Truncate[T any](items []T, max int) (kept []T, more int) {
	if max < 0 {
		max = 0
	}

	if len(items) <= max {
		return items, 0
	}

	return items[:max], len(items) - max
}

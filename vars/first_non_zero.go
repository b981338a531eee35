package vars

// FirstNonZero returns the first value that is not the zero value of T.
// Flags, config file entries and defaults are resolved through it in that order.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}

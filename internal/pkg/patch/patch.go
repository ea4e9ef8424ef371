package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Apply overwrites *dst only when src is non-nil.
func Apply[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

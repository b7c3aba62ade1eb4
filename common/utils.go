package common

// Coalesce returns the first value that is not the zero value of T.
// Configuration loaders use it to fall back to defaults for omitted numeric fields.
//
// Parameters:
//   - values: candidates in priority order
//
// Returns:
//   - T: the first non-zero candidate, or the zero value if there is none
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// ValueOr dereferences p, or returns fallback when p is nil.
// Optional YAML sections decode to nil pointers; this keeps an explicit zero distinct from "omitted".
func ValueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

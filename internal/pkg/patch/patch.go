// Package patch merges partial update payloads onto stored values.
package patch

// Value keeps current unless the payload set the field.
func Value[T any](set *T, current T) T {
	if set != nil {
		return *set
	}
	return current
}

// Optional is Value for nullable columns: an absent field keeps current,
// which may itself be nil.
func Optional[T any](set, current *T) *T {
	if set != nil {
		return set
	}
	return current
}

package valueobject

// MinItems fails with ListTooShort for a slice holding fewer than min items.
func MinItems[E any](min int) Rule[[]E] {
	return Rule[[]E]{
		Check: func(v []E) bool {
			return len(v) >= min
		},
		Fail: func(v []E) Failure[[]E] {
			return ListTooShort[[]E]{FailedValue: v, Min: min}
		},
	}
}

// MaxItems fails with ListTooLong for a slice holding more than max items.
func MaxItems[E any](max int) Rule[[]E] {
	return Rule[[]E]{
		Check: func(v []E) bool {
			return len(v) <= max
		},
		Fail: func(v []E) Failure[[]E] {
			return ListTooLong[[]E]{FailedValue: v, Max: max}
		},
	}
}

// EachItem applies a per-item rule across the slice. The first failing item
// determines the failure, reported as an InvalidValue over the whole slice
// with the item rule's message.
func EachItem[E any](rule Rule[E]) Rule[[]E] {
	return Rule[[]E]{
		Check: func(v []E) bool {
			for _, item := range v {
				if !rule.Check(item) {
					return false
				}
			}
			return true
		},
		Fail: func(v []E) Failure[[]E] {
			for _, item := range v {
				if !rule.Check(item) {
					return InvalidValue[[]E]{FailedValue: v, Message: rule.Fail(item).Error()}
				}
			}
			return InvalidValue[[]E]{FailedValue: v, Message: "invalid item"}
		},
	}
}

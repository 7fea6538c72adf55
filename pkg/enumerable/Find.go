package enumerable

// Find returns the first element for which pred holds, and stops the traversal there.
func Find[T any](e Enumerable[T], pred func(T) bool) (T, bool, error) {
	var (
		found T
		ok    bool
	)
	err := traverse(e, func(v T) error {
		if !pred(v) {
			return nil
		}
		found, ok = v, true
		return Break
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return found, ok, nil
}

// First returns the first element of e.
func First[T any](e Enumerable[T]) (T, bool, error) {
	return Find(e, func(T) bool { return true })
}

// Any tells whether pred holds for at least one element.
func Any[T any](e Enumerable[T], pred func(T) bool) (bool, error) {
	_, ok, err := Find(e, pred)
	return ok, err
}

// All tells whether pred holds for every element.
// It is true for an empty Enumerable.
func All[T any](e Enumerable[T], pred func(T) bool) (bool, error) {
	ok, err := Any(e, func(v T) bool { return !pred(v) })
	return !ok, err
}

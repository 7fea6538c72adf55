package enumerable

// Filter returns an Enumerable that only visits the elements for which pred holds.
// It is lazy: pred runs when the result is traversed.
func Filter[T any](e Enumerable[T], pred func(T) bool) Enumerable[T] {
	return Func[T](func(visit func(T) error) error {
		return e.ForEach(func(v T) error {
			if !pred(v) {
				return nil
			}
			return visit(v)
		})
	})
}

// Reject is the inverse of Filter.
func Reject[T any](e Enumerable[T], pred func(T) bool) Enumerable[T] {
	return Filter(e, func(v T) bool { return !pred(v) })
}

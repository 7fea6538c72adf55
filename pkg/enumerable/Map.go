package enumerable

// Map returns an Enumerable of the transformed elements.
// It is lazy: transform runs when the result is traversed.
func Map[To, From any](e Enumerable[From], transform func(From) To) Enumerable[To] {
	return Func[To](func(visit func(To) error) error {
		return e.ForEach(func(v From) error {
			return visit(transform(v))
		})
	})
}

// MapErr is like Map, but the transformation can fail.
// The first failure stops the traversal and is returned as is.
func MapErr[To, From any](e Enumerable[From], transform func(From) (To, error)) Enumerable[To] {
	return Func[To](func(visit func(To) error) error {
		return e.ForEach(func(v From) error {
			out, err := transform(v)
			if err != nil {
				return err
			}
			return visit(out)
		})
	})
}

package enumerable

import (
	"iter"

	"go.llib.dev/frameless/pkg/iterkit"
)

// Seq bridges an Enumerable into a range-over-func iterator.
// A traversal failure is yielded as the last element.
func Seq[T any](e Enumerable[T]) iterkit.SeqE[T] {
	return func(yield func(T, error) bool) {
		err := traverse(e, func(v T) error {
			if !yield(v, nil) {
				return Break
			}
			return nil
		})
		if err != nil {
			var zero T
			yield(zero, err)
		}
	}
}

// FromSeq makes an Enumerable out of an iter.Seq.
func FromSeq[T any](i iter.Seq[T]) Enumerable[T] {
	return Func[T](func(visit func(T) error) error {
		var err error
		for v := range i {
			if err = visit(v); err != nil {
				break
			}
		}
		return err
	})
}

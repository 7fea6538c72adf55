package enumerable

import (
	"go.llib.dev/frameless/pkg/iterkit"
)

// Collect visits every element and returns them in traversal order.
func Collect[T any](e Enumerable[T]) ([]T, error) {
	vs, err := iterkit.CollectE(Seq(e))
	if err != nil {
		return nil, err
	}
	return vs, nil
}

// Take collects the first n elements and stops the traversal after them.
func Take[T any](e Enumerable[T], n int) ([]T, error) {
	if n <= 0 {
		return make([]T, 0), nil
	}
	vs, err := iterkit.CollectE(iterkit.HeadE(Seq(e), n))
	if err != nil {
		return nil, err
	}
	return vs, nil
}

func Count[T any](e Enumerable[T]) (int, error) {
	return Reduce(e, 0, func(n int, _ T) int { return n + 1 })
}

func Reduce[R, T any](e Enumerable[T], initial R, fn func(R, T) R) (R, error) {
	return iterkit.Reduce[R, T](Seq(e), initial, fn)
}

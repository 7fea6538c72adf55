// Package enumerable turns a single traversal primitive into a set of query operations.
//
// # Summary
//
// Any type that can visit its elements in order through ForEach is an Enumerable.
// The functions of this package (Filter, Map, Find, Collect, and the rest) are written purely
// in terms of ForEach, so an Enumerable gains them without exposing how it stores its data.
// Derived operations call ForEach at most once per call and never reorder the visited elements.
package enumerable

import (
	"errors"

	"go.llib.dev/frameless/pkg/errorkit"
)

// Break can be returned by a visitor to stop the traversal early.
// The operations of this package consume it, so it never reaches the caller.
const Break errorkit.Error = `enumerable:break`

// Enumerable is the capability set of this package.
type Enumerable[T any] interface {
	// ForEach must call visit once per element in a stable order,
	// and return the error of visit when it fails, either as is or wrapped.
	ForEach(visit func(T) error) error
}

// Func is an adapter that allows the use of ordinary functions as Enumerable.
type Func[T any] func(visit func(T) error) error

// ForEach implements the Enumerable interface.
func (fn Func[T]) ForEach(visit func(T) error) error { return fn(visit) }

// Slice is an Enumerable backed by a slice.
type Slice[T any] []T

func (s Slice[T]) ForEach(visit func(T) error) error {
	for _, v := range s {
		if err := visit(v); err != nil {
			return err
		}
	}
	return nil
}

// traverse runs the ForEach of e and swallows Break, even when ForEach wrapped it.
func traverse[T any](e Enumerable[T], visit func(T) error) error {
	err := e.ForEach(visit)
	if errors.Is(err, Break) {
		return nil
	}
	return err
}

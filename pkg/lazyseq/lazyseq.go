// Package lazyseq provides on-demand, potentially infinite sequences.
//
// # Summary
//
// A Source is an explicit state machine: it holds the current state and a step rule,
// and every pull runs the step rule exactly once to produce the next value and the next state.
// Nothing is computed ahead of the consumer and nothing is cached,
// so the length of a Source can range from zero to infinity.
//
// The consumer drives the computation, and cancellation is simply to stop pulling.
// There is no timeout: searching an infinite Source for a value that never appears will not return.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Lazy_evaluation
// https://en.wikipedia.org/wiki/Iterator_pattern
package lazyseq

import (
	"errors"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"
)

const (
	// ErrExhausted is returned when a finite Source ran out of values before the request could be fulfilled.
	ErrExhausted errorkit.Error = "lazyseq: source is exhausted"
	// ErrInvalidCount is returned for a negative count or index.
	ErrInvalidCount errorkit.Error = "lazyseq: invalid count"
	// End can be returned by a StepFunc to signal that the sequence is finite and has no more values.
	End errorkit.Error = "lazyseq: end of sequence"
)

// StepFunc is the generation rule of a Source.
// It receives the state so far and returns the value to emit together with the next state.
// A StepFunc must not mutate the received state.
type StepFunc[S, V any] func(state S) (value V, next S, err error)

// Source is a lazily evaluated sequence.
// It implements the iterkit.PullIter protocol (Next, Value, Err, Close).
// A Source is not safe for concurrent use.
type Source[S, V any] struct {
	state S
	step  StepFunc[S, V]

	value  V
	err    error
	done   bool
	pulled int
}

var _ iterkit.PullIter[int] = (*Source[int, int])(nil)

// New creates an unrealized Source.
// No computation happens until the first pull.
// The Source takes ownership of initial and never exposes its state,
// only the values the step rule emits.
func New[S, V any](initial S, step StepFunc[S, V]) *Source[S, V] {
	if step == nil {
		panic("lazyseq: nil StepFunc")
	}
	return &Source[S, V]{state: initial, step: step}
}

// Next runs the step rule once and makes the produced value available through Value.
// It returns false when the sequence has ended, the Source is closed, or the step rule failed.
func (s *Source[S, V]) Next() bool {
	if s.done {
		return false
	}
	value, next, err := s.step(s.state)
	if err != nil {
		s.done = true
		if !errors.Is(err, End) {
			s.err = err
		}
		var zero V
		s.value = zero
		return false
	}
	s.state = next
	s.value = value
	s.pulled++
	return true
}

// Value returns the value produced by the last successful Next call.
func (s *Source[S, V]) Value() V {
	return s.value
}

// Err returns the error of the step rule that stopped the Source, if any.
func (s *Source[S, V]) Err() error {
	return s.err
}

// Close abandons the Source, further Next calls return false.
func (s *Source[S, V]) Close() error {
	s.done = true
	return nil
}

// Pulled reports how many values the Source produced so far.
func (s *Source[S, V]) Pulled() int {
	return s.pulled
}

// Take pulls the next n values.
// Exactly n steps are run, so Take(0) leaves the Source untouched.
// A finite Source may yield fewer than n values.
// When the step rule fails, the values produced so far are returned along with the error.
func (s *Source[S, V]) Take(n int) ([]V, error) {
	var vs = make([]V, 0, max(n, 0))
	for i := 0; i < n; i++ {
		if !s.Next() {
			return vs, s.err
		}
		vs = append(vs, s.value)
	}
	return vs, nil
}

// TakeWhile pulls values as long as pred holds.
// The first value that fails pred is consumed and discarded.
// On an infinite Source where pred always holds, TakeWhile never returns.
func (s *Source[S, V]) TakeWhile(pred func(V) bool) ([]V, error) {
	var vs = make([]V, 0)
	for s.Next() {
		if !pred(s.value) {
			return vs, nil
		}
		vs = append(vs, s.value)
	}
	return vs, s.err
}

// DetectFirst pulls values one at a time and returns the first one for which pred holds.
// On an infinite Source without a matching value, DetectFirst never returns.
func (s *Source[S, V]) DetectFirst(pred func(V) bool) (V, error) {
	for s.Next() {
		if pred(s.value) {
			return s.value, nil
		}
	}
	var zero V
	return zero, s.stopReason()
}

// Drop advances the Source past the next n values without keeping them.
func (s *Source[S, V]) Drop(n int) error {
	if n < 0 {
		return ErrInvalidCount.F("drop %d", n)
	}
	for i := 0; i < n; i++ {
		if !s.Next() {
			return s.stopReason()
		}
	}
	return nil
}

// At returns the value at the given 0-based index, counted from the current position.
func (s *Source[S, V]) At(index int) (V, error) {
	var zero V
	if index < 0 {
		return zero, ErrInvalidCount.F("index %d", index)
	}
	if err := s.Drop(index); err != nil {
		return zero, err
	}
	if !s.Next() {
		return zero, s.stopReason()
	}
	return s.value, nil
}

// All returns a single-use iterator that continues from the current position.
// A step error is yielded as the last element.
// The Source is closed when the iteration finishes or the loop is left early.
func (s *Source[S, V]) All() iterkit.SingleUseSeqE[V] {
	return iterkit.FromPullIter[V](s)
}

// Values returns a single-use iterator that continues from the current position.
// It stops at the first step error, which remains available through Err.
func (s *Source[S, V]) Values() iterkit.SingleUseSeq[V] {
	return iterkit.FromPull(func() (V, bool) {
		if !s.Next() {
			var zero V
			return zero, false
		}
		return s.value, true
	})
}

func (s *Source[S, V]) stopReason() error {
	if s.err != nil {
		return s.err
	}
	return ErrExhausted
}

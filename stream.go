package nlattr

import "iter"

// Values converts a stream of fallible per-attribute decode results
// into a plain stream of values of one shape. f projects each decoded
// value; a false return from f ends the stream, as does the first
// error or the end of seq. Items past a failure are never yielded,
// even if they would decode cleanly.
//
// Generated bindings use Values to expose one concrete variant out of
// a union of payload shapes for a repeated attribute: repeats of the
// wrong shape terminate enumeration rather than being skipped.
func Values[T, V any](seq iter.Seq2[T, *ErrorContext], f func(T) (V, bool)) iter.Seq[V] {
	return func(yield func(V) bool) {
		for v, err := range seq {
			if err != nil {
				return
			}
			out, ok := f(v)
			if !ok {
				return
			}
			if !yield(out) {
				return
			}
		}
	}
}

// Array converts a stream of fallible per-attribute decode results
// into a plain stream of values, ending permanently at the first
// error. Generated bindings use it for plain repeated-attribute
// lists.
func Array[T any](seq iter.Seq2[T, *ErrorContext]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, err := range seq {
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

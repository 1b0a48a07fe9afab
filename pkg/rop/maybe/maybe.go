// Package maybe provides Maybe[T], an optional value that is either Just a
// present value or Nothing. It replaces nil checks in lookups such as "first
// matching provider".
package maybe

import (
	"iter"

	"github.com/ib-77/svcresp/pkg/rop"
	"github.com/ib-77/svcresp/pkg/rop/fault"
)

type Maybe[T any] struct {
	value T
	ok    bool
}

// Just wraps v. A nil pointer, map, slice, chan, func or interface is absent
// and yields Nothing.
func Just[T any](v T) Maybe[T] {
	if rop.IsNil(v) {
		return Nothing[T]()
	}
	return Maybe[T]{value: v, ok: true}
}

func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// ToMaybe converts a possibly absent value.
func ToMaybe[T any](v T) Maybe[T] {
	return Just(v)
}

// FromOk adapts the comma-ok idiom: FromOk(m[key]).
func FromOk[T any](v T, ok bool) Maybe[T] {
	if !ok {
		return Nothing[T]()
	}
	return Just(v)
}

func (m Maybe[T]) IsJust() bool {
	return m.ok
}

func (m Maybe[T]) IsNothing() bool {
	return !m.ok
}

func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.ok
}

// Value returns the wrapped value and panics on Nothing.
func (m Maybe[T]) Value() T {
	if !m.ok {
		panic("maybe: Value called on Nothing")
	}
	return m.value
}

func (m Maybe[T]) OrElse(def T) T {
	if !m.ok {
		return def
	}
	return m.value
}

// Bind applies f to a present value and returns its result as is.
func Bind[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	if !m.ok {
		return Nothing[U]()
	}
	return f(m.value)
}

func Map[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if !m.ok {
		return Nothing[U]()
	}
	return Just(f(m.value))
}

// Let calls action with a present value and returns m unchanged.
func Let[T any](m Maybe[T], action func(T)) Maybe[T] {
	if m.ok {
		action(m.value)
	}
	return m
}

// First returns the first element of seq. Only one element is pulled, so seq
// may be infinite.
func First[T any](seq iter.Seq[T]) Maybe[T] {
	for v := range seq {
		return Just(v)
	}
	return Nothing[T]()
}

// FirstMatch returns the first element of seq satisfying match and stops
// pulling there.
func FirstMatch[T any](seq iter.Seq[T], match func(T) bool) Maybe[T] {
	for v := range seq {
		if match(v) {
			return Just(v)
		}
	}
	return Nothing[T]()
}

// ToResponse turns Just into a data response and Nothing into an error
// response carrying onNothing.
func ToResponse[T any](m Maybe[T], onNothing *fault.Error) rop.ServiceResponse[T] {
	if !m.ok {
		return rop.Fail[T](onNothing)
	}
	return rop.Success(m.value)
}

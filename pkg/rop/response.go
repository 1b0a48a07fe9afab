package rop

import (
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/svcresp/pkg/rop/fault"
)

// ServiceResponse is either a data response holding one T or an error
// response holding one *fault.Error. A cancelled error response is still an
// error response; IsCancel tells it apart.
type ServiceResponse[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	data      T
	err       *fault.Error
	isCancel  bool
}

func Success[T any](data T) ServiceResponse[T] {
	return ServiceResponse[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		data:      data,
	}
}

// Fail builds an error response. A nil error is replaced by an internal one
// so that exactly one branch is always populated.
func Fail[T any](err *fault.Error) ServiceResponse[T] {
	return ServiceResponse[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       orInternal(err),
	}
}

func Cancel[T any](err *fault.Error) ServiceResponse[T] {
	return ServiceResponse[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       orInternal(err),
		isCancel:  true,
	}
}

// Forward re-types an error response, keeping its error, id, creation time
// and cancel flag. It must only be called on an error response.
func Forward[In, Out any](from ServiceResponse[In]) ServiceResponse[Out] {
	if !from.IsLeft() {
		panic("rop: Forward called on a data response")
	}
	return ServiceResponse[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		err:       from.err,
		isCancel:  from.isCancel,
	}
}

// FoldCancel turns a cancelled response into a plain error response carrying
// the same error. Other responses are returned unchanged.
func FoldCancel[T any](r ServiceResponse[T]) ServiceResponse[T] {
	if r.isCancel {
		r.isCancel = false
	}
	return r
}

// IsLeft reports whether r is an error response.
func (r ServiceResponse[T]) IsLeft() bool {
	return r.err != nil
}

func (r ServiceResponse[T]) IsRight() bool {
	return r.err == nil && !r.IsEmpty()
}

func (r ServiceResponse[T]) IsCancel() bool {
	return r.isCancel
}

// IsEmpty reports whether r is the zero value, which no constructor produces.
func (r ServiceResponse[T]) IsEmpty() bool {
	return r.id == uuid.Nil && r.err == nil
}

// Data returns the wrapped value. Check IsLeft first: calling Data on an
// error response panics.
func (r ServiceResponse[T]) Data() T {
	if r.err != nil {
		panic("rop: Data called on an error response: " + r.err.Error())
	}
	return r.data
}

// Err returns the error of an error response, or nil for a data response.
func (r ServiceResponse[T]) Err() *fault.Error {
	return r.err
}

// Get returns the value and the error; exactly one of them is meaningful.
func (r ServiceResponse[T]) Get() (T, *fault.Error) {
	return r.data, r.err
}

func (r ServiceResponse[T]) Id() uuid.UUID {
	return r.id
}

func (r ServiceResponse[T]) CreatedAt() time.Time {
	return r.createdAt
}

// Equal reports whether both responses are the same variant with equal
// payloads. Ids and creation times are ignored.
func (r ServiceResponse[T]) Equal(other ServiceResponse[T]) bool {
	if r.IsLeft() != other.IsLeft() || r.isCancel != other.isCancel {
		return false
	}
	if r.IsLeft() {
		return r.err.Equal(other.err)
	}
	return reflect.DeepEqual(r.data, other.data)
}

func orInternal(err *fault.Error) *fault.Error {
	if err != nil {
		return err
	}
	return fault.E(fault.CodeInternal, "error response built without an error",
		fault.WithKind(fault.KindFault))
}

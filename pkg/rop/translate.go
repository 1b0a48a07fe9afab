package rop

import (
	"errors"

	"github.com/ib-77/svcresp/pkg/rop/fault"
)

// Guard runs f and returns its response. A panic raised by f is recovered and
// translated into an error response, and so is an empty response returned by
// f. Guard never panics itself.
func Guard[T any](f func() ServiceResponse[T]) (out ServiceResponse[T]) {
	defer func() {
		if v := recover(); v != nil {
			out = FromPanic[T](v)
		}
	}()

	out = f()
	if out.IsEmpty() {
		out = Fail[T](fault.E(fault.CodeInternal, "continuation returned an empty response",
			fault.WithKind(fault.KindFault)))
	}
	return out
}

// FromPanic translates a recovered panic value into an error response.
func FromPanic[T any](v any) ServiceResponse[T] {
	return fromFault[T](fault.FromRecovered(v))
}

// FromError translates err into an error response. Joined errors keep one
// message per member. A nil err yields an internal error response.
func FromError[T any](err error) ServiceResponse[T] {
	errs := GetErrors(err)
	if len(errs) > 1 {
		var e *fault.Error
		if !errors.As(err, &e) && !IsCancellationError(err) {
			messages := make([]string, 0, len(errs))
			for _, m := range errs {
				messages = append(messages, m.Error())
			}
			if joined, buildErr := fault.New(fault.CodeInternal, messages,
				fault.WithKind(fault.KindFault), fault.WithCause(err)); buildErr == nil {
				return Fail[T](joined)
			}
		}
	}
	return fromFault[T](fault.FromError(err))
}

func fromFault[T any](e *fault.Error) ServiceResponse[T] {
	if e.IsCanceled() {
		return Cancel[T](e)
	}
	return Fail[T](e)
}

package solo

import (
	"context"
	"fmt"
	"iter"
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/ib-77/svcresp/pkg/rop"
	"github.com/ib-77/svcresp/pkg/rop/fault"
)

var defaultValidator = validator.New(validator.WithRequiredStructEnabled())

func Succeed[T any](input T) rop.ServiceResponse[T] {
	return rop.Success(input)
}

func Fail[T any](err *fault.Error) rop.ServiceResponse[T] {
	return rop.Fail[T](err)
}

// Fmap maps the value of a data response. An error response is forwarded
// with the same error and f is not called. Fmap does not recover panics
// raised by f.
func Fmap[In, Out any](ctx context.Context,
	input rop.ServiceResponse[In],
	f func(ctx context.Context, r In) Out) rop.ServiceResponse[Out] {

	if input.IsLeft() {
		return rop.Forward[In, Out](input)
	}
	return rop.Success(f(ctx, input.Data()))
}

// FmapEach maps every element of a slice payload, keeping order and count.
func FmapEach[E, E2 any](ctx context.Context,
	input rop.ServiceResponse[[]E],
	f func(ctx context.Context, e E) E2) rop.ServiceResponse[[]E2] {

	return Fmap(ctx, input, func(ctx context.Context, in []E) []E2 {
		out := make([]E2, len(in))
		for i, e := range in {
			out[i] = f(ctx, e)
		}
		return out
	})
}

// FmapSeq maps a sequence payload lazily; f runs as the result is ranged.
func FmapSeq[E, E2 any](ctx context.Context,
	input rop.ServiceResponse[iter.Seq[E]],
	f func(ctx context.Context, e E) E2) rop.ServiceResponse[iter.Seq[E2]] {

	return Fmap(ctx, input, func(ctx context.Context, seq iter.Seq[E]) iter.Seq[E2] {
		return func(yield func(E2) bool) {
			if seq == nil {
				return
			}
			for e := range seq {
				if !yield(f(ctx, e)) {
					return
				}
			}
		}
	})
}

// Cast converts a slice payload element by element, e.g. a []*Circle declared
// as []Shape back to []*Circle, or []*Circle to []Shape. Nil elements become
// the zero E2. The first element that does not convert yields a type_mismatch
// error response.
func Cast[E, E2 any](ctx context.Context,
	input rop.ServiceResponse[[]E]) rop.ServiceResponse[[]E2] {

	if input.IsLeft() {
		return rop.Forward[[]E, []E2](input)
	}

	src := input.Data()
	out := make([]E2, len(src))
	for i, e := range src {
		if rop.IsNil(e) {
			continue
		}
		v, ok := any(e).(E2)
		if !ok {
			return rop.Fail[[]E2](fault.E(fault.CodeTypeMismatch,
				fmt.Sprintf("element %d: %T is not %s", i, e, reflect.TypeFor[E2]()),
				fault.WithKind(fault.KindFault)))
		}
		out[i] = v
	}
	return rop.Success(out)
}

// Bind chains a continuation that returns its own response. An error response
// short-circuits; a panic in onSuccess becomes an error response.
func Bind[In, Out any](ctx context.Context,
	input rop.ServiceResponse[In],
	onSuccess func(ctx context.Context, r In) rop.ServiceResponse[Out]) rop.ServiceResponse[Out] {

	if input.IsLeft() {
		return rop.Forward[In, Out](input)
	}
	return rop.Guard(func() rop.ServiceResponse[Out] {
		return onSuccess(ctx, input.Data())
	})
}

// Let runs a side effect on a data response and returns input unchanged. A
// panic in onSuccess replaces the data with an error response.
func Let[T any](ctx context.Context,
	input rop.ServiceResponse[T],
	onSuccess func(ctx context.Context, r T)) rop.ServiceResponse[T] {

	if input.IsLeft() {
		return input
	}
	return rop.Guard(func() rop.ServiceResponse[T] {
		onSuccess(ctx, input.Data())
		return input
	})
}

// Try calls an (Out, error) function; the error is translated into an error
// response.
func Try[In, Out any](ctx context.Context, input rop.ServiceResponse[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.ServiceResponse[Out] {

	if input.IsLeft() {
		return rop.Forward[In, Out](input)
	}
	return rop.Guard(func() rop.ServiceResponse[Out] {
		out, err := onTryExecute(ctx, input.Data())
		if err != nil {
			return rop.FromError[Out](err)
		}
		return rop.Success(out)
	})
}

func FailOnError[T any](ctx context.Context, input rop.ServiceResponse[T],
	maybeErr func(ctx context.Context, in T) error) rop.ServiceResponse[T] {

	if input.IsLeft() {
		return input
	}
	return rop.Guard(func() rop.ServiceResponse[T] {
		if err := maybeErr(ctx, input.Data()); err != nil {
			return rop.FromError[T](err)
		}
		return input
	})
}

// Validate checks a struct payload with go-playground/validator tags. A nil v
// uses a shared validator.
func Validate[T any](ctx context.Context, input rop.ServiceResponse[T],
	v *validator.Validate) rop.ServiceResponse[T] {

	if v == nil {
		v = defaultValidator
	}
	return FailOnError(ctx, input, func(ctx context.Context, in T) error {
		return v.StructCtx(ctx, in)
	})
}

func AndValidate[T any](ctx context.Context, input rop.ServiceResponse[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.ServiceResponse[T] {

	return ValidateAll(ctx, input, true, validate)
}

// ValidateAll runs checks in order and gathers the messages of the failing
// ones into a single validation error. With breakOnError it stops at the
// first failure.
func ValidateAll[T any](ctx context.Context,
	input rop.ServiceResponse[T],
	breakOnError bool, // exit on first error
	checks ...func(ctx context.Context, in T) (valid bool, errMsg string)) rop.ServiceResponse[T] {

	if input.IsLeft() || len(checks) == 0 {
		return input
	}

	return rop.Guard(func() rop.ServiceResponse[T] {
		var messages []string
		for i, check := range checks {
			if err := ctx.Err(); err != nil {
				return rop.FromError[T](err)
			}

			if valid, msg := check(ctx, input.Data()); !valid {
				if msg == "" {
					msg = fmt.Sprintf("check %d failed", i)
				}
				messages = append(messages, msg)
				if breakOnError {
					break
				}
			}
		}

		if len(messages) == 0 {
			return input
		}
		return rop.Fail[T](fault.Must(fault.CodeValidation, messages, fault.WithStatus(400)))
	})
}

// Finally collapses a response into a value at a boundary.
func Finally[In, Out any](ctx context.Context, input rop.ServiceResponse[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err *fault.Error) Out,
	onCancel func(ctx context.Context, err *fault.Error) Out) Out {

	if !input.IsLeft() {
		return onSuccess(ctx, input.Data())
	} else if input.IsCancel() {
		return onCancel(ctx, input.Err())
	} else {
		return onError(ctx, input.Err())
	}
}

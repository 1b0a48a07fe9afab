package stream

import (
	"context"

	"github.com/ib-77/svcresp/pkg/rop"
	"github.com/ib-77/svcresp/pkg/rop/async"
	"github.com/ib-77/svcresp/pkg/rop/fault"
	"github.com/ib-77/svcresp/pkg/rop/solo"
)

// Engine is one pipeline stage as run by Turnout.
type Engine[In, Out any] func(ctx context.Context, input rop.ServiceResponse[In]) *async.Future[Out]

func Validate[T any](breakOnError bool,
	checks ...func(ctx context.Context, in T) (valid bool, errMsg string)) Engine[T, T] {
	return func(ctx context.Context, input rop.ServiceResponse[T]) *async.Future[T] {
		return async.Resolved(solo.ValidateAll(ctx, input, breakOnError, checks...))
	}
}

func Bind[In, Out any](onSuccess func(ctx context.Context, r In) rop.ServiceResponse[Out]) Engine[In, Out] {
	return func(ctx context.Context, input rop.ServiceResponse[In]) *async.Future[Out] {
		return async.Resolved(solo.Bind(ctx, input, onSuccess))
	}
}

// Map lifts solo.Fmap. The stage runs under recovery so a panicking mapper
// cannot take down a worker.
func Map[In, Out any](mapOnSuccess func(ctx context.Context, r In) Out) Engine[In, Out] {
	return func(ctx context.Context, input rop.ServiceResponse[In]) *async.Future[Out] {
		return async.Resolved(rop.Guard(func() rop.ServiceResponse[Out] {
			return solo.Fmap(ctx, input, mapOnSuccess)
		}))
	}
}

func Let[T any](action func(ctx context.Context, r T)) Engine[T, T] {
	return func(ctx context.Context, input rop.ServiceResponse[T]) *async.Future[T] {
		return async.Resolved(solo.Let(ctx, input, action))
	}
}

// Observe sees every response, data or error, without changing it.
func Observe[T any](onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err *fault.Error),
	onCancel func(ctx context.Context, err *fault.Error)) Engine[T, T] {
	return func(ctx context.Context, input rop.ServiceResponse[T]) *async.Future[T] {
		return async.Resolved(rop.Guard(func() rop.ServiceResponse[T] {
			return solo.Finally(ctx, input,
				func(ctx context.Context, r T) rop.ServiceResponse[T] {
					if onSuccess != nil {
						onSuccess(ctx, r)
					}
					return input
				},
				func(ctx context.Context, err *fault.Error) rop.ServiceResponse[T] {
					if onError != nil {
						onError(ctx, err)
					}
					return input
				},
				func(ctx context.Context, err *fault.Error) rop.ServiceResponse[T] {
					if onCancel != nil {
						onCancel(ctx, err)
					}
					return input
				})
		}))
	}
}

func Try[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) Engine[In, Out] {
	return func(ctx context.Context, input rop.ServiceResponse[In]) *async.Future[Out] {
		return async.Resolved(solo.Try(ctx, input, onTryExecute))
	}
}

// Async lifts a pending continuation, see async.BindAsync.
func Async[In, Out any](f func(ctx context.Context, r In) *async.Future[Out]) Engine[In, Out] {
	return func(ctx context.Context, input rop.ServiceResponse[In]) *async.Future[Out] {
		return async.BindAsync(ctx, input, f)
	}
}

package async

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/svcresp/pkg/rop"
	"github.com/ib-77/svcresp/pkg/rop/core"
	"github.com/ib-77/svcresp/pkg/rop/solo"
)

// BindAsync chains a continuation returning a pending response. An error
// response resolves immediately and f is never invoked. Otherwise f is
// invoked on the calling goroutine and its future is returned; a panic in f
// or a nil future becomes an error response.
func BindAsync[In, Out any](ctx context.Context,
	input rop.ServiceResponse[In],
	f func(ctx context.Context, r In) *Future[Out]) *Future[Out] {

	if input.IsLeft() {
		return Resolved(rop.Forward[In, Out](input))
	}

	var next *Future[Out]
	invoked := rop.Guard(func() rop.ServiceResponse[Unit] {
		next = f(ctx, input.Data())
		return rop.Success(Unit{})
	})
	if invoked.IsLeft() {
		return Resolved(rop.Forward[Unit, Out](invoked))
	}
	if next == nil {
		return Resolved(rop.Fail[Out](errNilFuture()))
	}
	return next
}

// LetAsync runs a pending side effect on a data response and resolves to
// input unchanged, or to the side effect's error.
func LetAsync[T any](ctx context.Context,
	input rop.ServiceResponse[T],
	action func(ctx context.Context, r T) *Future[Unit]) *Future[T] {

	if input.IsLeft() {
		return Resolved(input)
	}

	effect := BindAsync(ctx, input, action)
	if r, ok := effect.peek(); ok {
		return Resolved(letResult(input, r))
	}
	return Go(ctx, func(ctx context.Context) rop.ServiceResponse[T] {
		return letResult(input, effect.Await(ctx))
	})
}

// AwaitBindAsync waits for pending and then behaves like BindAsync. If
// pending resolves to an error response f is never invoked.
func AwaitBindAsync[In, Out any](ctx context.Context,
	pending *Future[In],
	f func(ctx context.Context, r In) *Future[Out]) *Future[Out] {

	if r, ok := pending.peek(); ok {
		return BindAsync(ctx, withPolicy(ctx, r), f)
	}
	return Go(ctx, func(ctx context.Context) rop.ServiceResponse[Out] {
		return BindAsync(ctx, pending.Await(ctx), f).Await(ctx)
	})
}

// AwaitLetAsync waits for pending and then behaves like LetAsync.
func AwaitLetAsync[T any](ctx context.Context,
	pending *Future[T],
	action func(ctx context.Context, r T) *Future[Unit]) *Future[T] {

	if r, ok := pending.peek(); ok {
		return LetAsync(ctx, withPolicy(ctx, r), action)
	}
	return Go(ctx, func(ctx context.Context) rop.ServiceResponse[T] {
		return LetAsync(ctx, pending.Await(ctx), action).Await(ctx)
	})
}

// AwaitFmap waits for pending and maps its data. f runs on a goroutine, so a
// panic in f resolves to an error response instead of crashing the process.
func AwaitFmap[In, Out any](ctx context.Context,
	pending *Future[In],
	f func(ctx context.Context, r In) Out) *Future[Out] {

	return Go(ctx, func(ctx context.Context) rop.ServiceResponse[Out] {
		return solo.Fmap(ctx, pending.Await(ctx), f)
	})
}

// All waits for every future in order. The first error response wins.
func All[T any](ctx context.Context, futures ...*Future[T]) *Future[[]T] {
	return Go(ctx, func(ctx context.Context) rop.ServiceResponse[[]T] {
		out := make([]T, len(futures))
		for i, f := range futures {
			r := f.Await(ctx)
			if r.IsLeft() {
				return rop.Forward[T, []T](r)
			}
			out[i] = r.Data()
		}
		return rop.Success(out)
	})
}

// Traverse binds f over items with at most limit continuations in flight
// (limit <= 0 takes core.GetWorkerMaxCount, defaulting to no limit). Results
// keep the order of items. The first error response cancels the context of
// the remaining continuations and becomes the result.
func Traverse[In, Out any](ctx context.Context, items []In,
	f func(ctx context.Context, r In) *Future[Out], limit int) *Future[[]Out] {

	return Go(ctx, func(ctx context.Context) rop.ServiceResponse[[]Out] {
		out := make([]Out, len(items))
		if len(items) == 0 {
			return rop.Success(out)
		}

		if limit <= 0 {
			limit = core.GetWorkerMaxCount(ctx, -1)
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(limit)

		for i, item := range items {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				r := BindAsync(gctx, rop.Success(item), f).Await(gctx)
				if r.IsLeft() {
					return leftError[Out]{r: r}
				}
				out[i] = r.Data()
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			var left leftError[Out]
			if errors.As(err, &left) {
				return rop.Forward[Out, []Out](left.r)
			}
			return rop.FromError[[]Out](err)
		}
		if err := ctx.Err(); err != nil {
			return canceled[[]Out](ctx)
		}
		return rop.Success(out)
	})
}

type leftError[T any] struct {
	r rop.ServiceResponse[T]
}

func (e leftError[T]) Error() string {
	return e.r.Err().Error()
}

func letResult[T any](input rop.ServiceResponse[T], effect rop.ServiceResponse[Unit]) rop.ServiceResponse[T] {
	if effect.IsLeft() {
		return rop.Forward[Unit, T](effect)
	}
	return input
}

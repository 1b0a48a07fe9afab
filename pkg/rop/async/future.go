package async

import (
	"context"

	"github.com/ib-77/svcresp/pkg/rop"
	"github.com/ib-77/svcresp/pkg/rop/core"
	"github.com/ib-77/svcresp/pkg/rop/fault"
)

// Unit is the payload of a pending computation run only for its side effect.
type Unit struct{}

// Future is a pending ServiceResponse. It resolves once and may then be
// awaited any number of times from any goroutine.
type Future[T any] struct {
	done chan struct{}
	res  rop.ServiceResponse[T]
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

func (f *Future[T]) resolve(r rop.ServiceResponse[T]) {
	f.res = r
	close(f.done)
}

// Go runs fn on a new goroutine. A panic in fn resolves the future to an
// error response. If ctx is already done fn is not started.
func Go[T any](ctx context.Context, fn func(ctx context.Context) rop.ServiceResponse[T]) *Future[T] {
	if ctx.Err() != nil {
		return Resolved(canceled[T](ctx))
	}

	f := newFuture[T]()
	go func() {
		f.resolve(rop.Guard(func() rop.ServiceResponse[T] {
			return fn(ctx)
		}))
	}()
	return f
}

// Resolved returns an already completed future; no goroutine is started.
func Resolved[T any](r rop.ServiceResponse[T]) *Future[T] {
	f := newFuture[T]()
	f.resolve(rop.Guard(func() rop.ServiceResponse[T] { return r }))
	return f
}

// FromChan adapts a channel that yields one response, as returned by
// channel-based engines. A channel closed without a value resolves to an
// internal error.
func FromChan[T any](ctx context.Context, ch <-chan rop.ServiceResponse[T]) *Future[T] {
	return Go(ctx, func(ctx context.Context) rop.ServiceResponse[T] {
		select {
		case r, ok := <-ch:
			if !ok {
				return rop.Fail[T](fault.E(fault.CodeInternal,
					"pending computation closed without a result", fault.WithKind(fault.KindFault)))
			}
			return r
		case <-ctx.Done():
			return canceled[T](ctx)
		}
	})
}

// Task runs an error-returning side effect.
func Task(ctx context.Context, fn func(ctx context.Context) error) *Future[Unit] {
	return Go(ctx, func(ctx context.Context) rop.ServiceResponse[Unit] {
		if err := fn(ctx); err != nil {
			return rop.FromError[Unit](err)
		}
		return rop.Success(Unit{})
	})
}

// Done is closed once the future is resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future resolves or ctx is done. It never panics:
// a done ctx yields a cancel response (or a plain error response under
// core.FoldCancel) and a nil future yields an internal error response.
func (f *Future[T]) Await(ctx context.Context) rop.ServiceResponse[T] {
	if f == nil {
		return rop.Fail[T](errNilFuture())
	}

	select {
	case <-f.done:
		return withPolicy(ctx, f.res)
	case <-ctx.Done():
		if r, ok := f.peek(); ok {
			return withPolicy(ctx, r)
		}
		return canceled[T](ctx)
	}
}

func (f *Future[T]) peek() (rop.ServiceResponse[T], bool) {
	if f == nil {
		return rop.ServiceResponse[T]{}, false
	}
	select {
	case <-f.done:
		return f.res, true
	default:
		return rop.ServiceResponse[T]{}, false
	}
}

func canceled[T any](ctx context.Context) rop.ServiceResponse[T] {
	return withPolicy(ctx, rop.FromError[T](ctx.Err()))
}

func withPolicy[T any](ctx context.Context, r rop.ServiceResponse[T]) rop.ServiceResponse[T] {
	if core.GetCancelPolicy(ctx) == core.FoldCancel {
		return rop.FoldCancel(r)
	}
	return r
}

func errNilFuture() *fault.Error {
	return fault.E(fault.CodeInternal, "continuation returned a nil pending computation",
		fault.WithKind(fault.KindFault))
}

package chain

import (
	"context"

	"github.com/ib-77/svcresp/pkg/rop"
	"github.com/ib-77/svcresp/pkg/rop/async"
	"github.com/ib-77/svcresp/pkg/rop/fault"
	"github.com/ib-77/svcresp/pkg/rop/solo"
)

// Chain wraps a rop.ServiceResponse with context to enable fluent chaining
type Chain[T any] struct {
	ctx      context.Context
	response rop.ServiceResponse[T]
}

// Start creates a new chain from a rop.ServiceResponse
func Start[T any](ctx context.Context, response rop.ServiceResponse[T]) *Chain[T] {
	return &Chain[T]{
		ctx:      ctx,
		response: response,
	}
}

// FromValue creates a new chain from a data value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rop.Success(value))
}

// FromPending waits for a pending response and starts a chain from it.
func FromPending[T any](ctx context.Context, pending *async.Future[T]) *Chain[T] {
	return Start(ctx, pending.Await(ctx))
}

// Result returns the underlying rop.ServiceResponse
func (c *Chain[T]) Result() rop.ServiceResponse[T] {
	return c.response
}

// Then chains a function that returns rop.ServiceResponse[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.ServiceResponse[U]) *Chain[U] {
	return Start(c.ctx, solo.Bind(c.ctx, c.response, onSuccess))
}

// ThenAsync chains a function returning a pending response and waits for it.
func ThenAsync[T, U any](c *Chain[T], onSuccess func(context.Context, T) *async.Future[U]) *Chain[U] {
	return Start(c.ctx, async.BindAsync(c.ctx, c.response, onSuccess).Await(c.ctx))
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return Start(c.ctx, solo.Try(c.ctx, c.response, tryOnSuccess))
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return Start(c.ctx, solo.Fmap(c.ctx, c.response, onSuccess))
}

// Let performs a side effect on data without changing the response. A panic
// in action replaces the data with an error response.
func (c *Chain[T]) Let(action func(context.Context, T)) *Chain[T] {
	return Start(c.ctx, solo.Let(c.ctx, c.response, action))
}

// LetAsync runs a pending side effect and waits for it, see async.LetAsync.
func (c *Chain[T]) LetAsync(action func(context.Context, T) *async.Future[async.Unit]) *Chain[T] {
	return Start(c.ctx, async.LetAsync(c.ctx, c.response, action).Await(c.ctx))
}

// Validate runs checks in order, see solo.ValidateAll.
func (c *Chain[T]) Validate(breakOnError bool,
	checks ...func(ctx context.Context, in T) (bool, string)) *Chain[T] {
	return Start(c.ctx, solo.ValidateAll(c.ctx, c.response, breakOnError, checks...))
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, *fault.Error) U, onCancel func(context.Context, *fault.Error) U) U {
	return solo.Finally(c.ctx, c.response, onSuccess, onFailure, onCancel)
}

package chain

import (
	"context"

	"github.com/ib-77/svcresp/pkg/rop"
)

// RepeatUntil applies onSuccess at least once and keeps going while until
// holds for the new data. The first error response stops the loop.
func (c *Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) rop.ServiceResponse[T],
	until func(ctx context.Context, t T) bool) *Chain[T] {

	if c.response.IsLeft() {
		return c
	}

	for {
		c = Then(c, onSuccess)

		if c.response.IsLeft() || !until(c.ctx, c.response.Data()) {
			return c
		}
	}
}

// While applies onSuccess as long as while holds; it may not run at all.
func (c *Chain[T]) While(onSuccess func(ctx context.Context, t T) rop.ServiceResponse[T],
	while func(ctx context.Context, t T) bool) *Chain[T] {

	for !c.response.IsLeft() && while(c.ctx, c.response.Data()) {
		c = Then(c, onSuccess)
	}
	return c
}

// Or returns the first chain holding data. With none, a cancel response is
// preferred over a plain error so cancellation is not hidden.
func Or[T any](first *Chain[T], alternatives ...*Chain[T]) *Chain[T] {
	var cancelled, failed *Chain[T]

	for _, ch := range append([]*Chain[T]{first}, alternatives...) {
		switch {
		case ch.response.IsRight():
			return ch
		case ch.response.IsCancel():
			if cancelled == nil {
				cancelled = ch
			}
		default:
			if failed == nil {
				failed = ch
			}
		}
	}

	if cancelled != nil {
		return cancelled
	}
	return failed
}

// And returns the first chain holding an error, or the last one.
func And[T any](first *Chain[T], required ...*Chain[T]) *Chain[T] {
	last := first
	for _, ch := range append([]*Chain[T]{first}, required...) {
		if ch.response.IsLeft() {
			return ch
		}
		last = ch
	}
	return last
}

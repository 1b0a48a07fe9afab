package stream

import (
	"context"

	"github.com/ib-77/svcresp/pkg/rop"
	"github.com/ib-77/svcresp/pkg/rop/core"
)

// DrainHandlers reports everything left behind by a cancellation, so a
// consumer sees one response per input.
func DrainHandlers[In, Out any]() CancellationHandlers[In, Out] {
	return CancellationHandlers[In, Out]{
		OnCancel:            CancelRemainingResults[In, Out],
		OnCancelUnprocessed: CancelRemainingResult[In, Out],
		OnCancelProcessed:   CancelProcessedResult[In, Out],
	}
}

func CancelRemainingResults[In, Out any](ctx context.Context,
	inputCh <-chan rop.ServiceResponse[In], outCh chan<- rop.ServiceResponse[Out]) {

	if core.IsProcessRemainingEnabled(ctx, true) {
		for in := range inputCh {
			outCh <- cancelled[In, Out](ctx, in)
		}
	}
}

func CancelRemainingResult[In, Out any](ctx context.Context, in rop.ServiceResponse[In],
	outCh chan<- rop.ServiceResponse[Out]) {

	if core.IsProcessRemainingEnabled(ctx, true) {
		outCh <- cancelled[In, Out](ctx, in)
	}
}

func CancelProcessedResult[In, Out any](ctx context.Context, _ rop.ServiceResponse[In],
	processed rop.ServiceResponse[Out], outCh chan<- rop.ServiceResponse[Out]) {

	if core.IsProcessRemainingEnabled(ctx, true) {
		outCh <- processed
	}
}

// cancelled keeps an input error as is and turns unprocessed data into a
// cancel response.
func cancelled[In, Out any](ctx context.Context, in rop.ServiceResponse[In]) rop.ServiceResponse[Out] {
	if in.IsLeft() {
		return rop.Forward[In, Out](in)
	}
	return rop.FromError[Out](ctx.Err())
}

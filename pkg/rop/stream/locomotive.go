package stream

import (
	"context"
	"sync"

	"github.com/ib-77/svcresp/pkg/rop"
)

type CancellationHandlers[In, Out any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan rop.ServiceResponse[In], outCh chan<- rop.ServiceResponse[Out])
	OnCancelUnprocessed func(ctx context.Context, unprocessed rop.ServiceResponse[In], outCh chan<- rop.ServiceResponse[Out])
	OnCancelProcessed   func(ctx context.Context, in rop.ServiceResponse[In], processed rop.ServiceResponse[Out], outCh chan<- rop.ServiceResponse[Out])
}

// Locomotive pulls responses from inputCh, runs engine on each and pushes the
// awaited result to outCh until inputCh closes or ctx is done.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan rop.ServiceResponse[In],
	outCh chan<- rop.ServiceResponse[Out],
	engine Engine[In, Out],
	handlers CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, out rop.ServiceResponse[Out]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			if ctx.Err() != nil {
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			}

			pr := engine(ctx, in).Await(ctx)

			select {
			case <-ctx.Done():
				if handlers.OnCancelProcessed != nil {
					handlers.OnCancelProcessed(ctx, in, pr, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			case outCh <- pr:
				if onSuccess != nil {
					onSuccess(ctx, pr)
				}
			}
		}
	}
}

package stream

import (
	"context"
	"sync"

	"github.com/ib-77/svcresp/pkg/rop"
	"github.com/ib-77/svcresp/pkg/rop/async"
	"github.com/ib-77/svcresp/pkg/rop/core"
	"github.com/ib-77/svcresp/pkg/rop/fault"
	"github.com/ib-77/svcresp/pkg/rop/solo"
)

// Run binds f over every response of inputCh with the given number of
// workers (lines <= 0 takes core.GetWorkerMaxCount, default 1). Error
// responses pass through untouched. On cancellation the remaining inputs are
// drained as cancel responses unless core.WithProcessOptions disabled it.
func Run[In, Out any](ctx context.Context, inputCh <-chan rop.ServiceResponse[In],
	f func(ctx context.Context, r In) *async.Future[Out],
	lines int) <-chan rop.ServiceResponse[Out] {

	return Turnout(ctx, inputCh, Async(f), DrainHandlers[In, Out](), nil, lines)
}

// Turnout runs engine over inputCh on lines workers with explicit
// cancellation handlers. The output channel closes once every worker stops.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan rop.ServiceResponse[In],
	engine Engine[In, Out],
	handlers CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, out rop.ServiceResponse[Out]), lines int) <-chan rop.ServiceResponse[Out] {

	if lines <= 0 {
		lines = core.GetWorkerMaxCount(ctx, 1)
	}

	out := make(chan rop.ServiceResponse[Out])
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go Locomotive(ctx, inputCh, out, engine, handlers, onSuccess, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

type FinallyHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnError   func(ctx context.Context, err *fault.Error) Out
	OnCancel  func(ctx context.Context, err *fault.Error) Out
}

// Finally collapses every response of inputCh into a value. It reads until
// inputCh closes, so cancel responses drained upstream are finalized too;
// the caller must consume the returned channel until it closes.
func Finally[In, Out any](ctx context.Context, inputCh <-chan rop.ServiceResponse[In],
	handlers FinallyHandlers[In, Out]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for in := range inputCh {
			out <- solo.Finally(ctx, in, handlers.OnSuccess, handlers.OnError, handlers.OnCancel)
		}
	}()

	return out
}

package stream

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/svcresp/pkg/rop"
	"github.com/ib-77/svcresp/pkg/rop/async"
	"github.com/ib-77/svcresp/pkg/rop/core"
	"github.com/ib-77/svcresp/pkg/rop/fault"
	"github.com/ib-77/svcresp/pkg/rop/solo"
)

func TestRun_URLPipeline(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	urls := []string{
		"https://www.example.com",
		"https://www.test.org",
		"https://www.google.com",
		"https://www.micros---oft.com",
		"invalid-url",
		"ftp://invalid-protocol.com",
	}

	validated := Run(ctx, core.ToChanManyResults(ctx, urls),
		func(ctx context.Context, url string) *async.Future[string] {
			return async.Go(ctx, func(ctx context.Context) rop.ServiceResponse[string] {
				return solo.ValidateAll(ctx, rop.Success(url), false, validateURL)
			})
		}, 2)

	fetched := Run(ctx, validated,
		func(ctx context.Context, url string) *async.Future[string] {
			return async.Go(ctx, func(ctx context.Context) rop.ServiceResponse[string] {
				return solo.Try(ctx, rop.Success(url), mockFetchTitle)
			})
		}, 2)

	lengths := Run(ctx, fetched,
		func(ctx context.Context, title string) *async.Future[int] {
			return async.Resolved(rop.Success(len(title)))
		}, 2)

	results := core.FromChanMany(ctx, Finally(ctx, lengths, FinallyHandlers[int, string]{
		OnSuccess: func(ctx context.Context, r int) string { return fmt.Sprintf("title length: %d", r) },
		OnError:   func(ctx context.Context, err *fault.Error) string { return "invalid" },
		OnCancel:  func(ctx context.Context, err *fault.Error) string { return "canceled" },
	}))

	require.Len(t, results, len(urls))

	invalid := 0
	for _, r := range results {
		if r == "invalid" {
			invalid++
		} else {
			assert.True(t, strings.HasPrefix(r, "title length: "))
		}
	}
	assert.Equal(t, 3, invalid)
}

func TestTurnout_Steps(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	urls := []string{"https://a.org", "https://b---c.org", "nope"}

	var seenErrors atomic.Int32
	lengths := Turnout(ctx,
		Turnout(ctx,
			Turnout(ctx,
				Turnout(ctx, core.ToChanManyResults(ctx, urls),
					Validate[string](true, validateURL), DrainHandlers[string, string](), nil, 2),
				Try(mockFetchTitle), DrainHandlers[string, string](), nil, 2),
			Observe[string](nil, func(ctx context.Context, err *fault.Error) { seenErrors.Add(1) }, nil),
			DrainHandlers[string, string](), nil, 1),
		Map(func(ctx context.Context, title string) int { return len(title) }),
		DrainHandlers[string, int](), nil, 2)

	var codes []fault.Code
	ok := 0
	for r := range lengths {
		if r.IsLeft() {
			codes = append(codes, r.Err().Code())
			continue
		}
		ok++
		assert.Equal(t, len("Mock Page Title for https://a.org"), r.Data())
	}

	assert.Equal(t, 1, ok)
	assert.ElementsMatch(t, []fault.Code{fault.CodeValidation, fault.CodeInternal}, codes)
	assert.Equal(t, int32(2), seenErrors.Load())
}

func TestRun_ErrorsPassThrough(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	in := make(chan rop.ServiceResponse[int], 2)
	in <- rop.Fail[int](fault.E(fault.CodeNotFound, "missing"))
	in <- rop.Success(2)
	close(in)

	var calls atomic.Int32
	out := Run(ctx, in, func(ctx context.Context, r int) *async.Future[int] {
		calls.Add(1)
		return async.Resolved(rop.Success(r * 10))
	}, 1)

	var got []rop.ServiceResponse[int]
	for r := range out {
		got = append(got, r)
	}

	require.Len(t, got, 2)
	assert.Equal(t, fault.CodeNotFound, got[0].Err().Code())
	assert.Equal(t, 20, got[1].Data())
	assert.Equal(t, int32(1), calls.Load())
}

func TestRun_CancelDrainsRemaining(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := make(chan rop.ServiceResponse[int], 3)
	in <- rop.Success(1)
	in <- rop.Fail[int](fault.E(fault.CodeConflict, "taken"))
	in <- rop.Success(3)
	close(in)

	out := Run(ctx, in, func(ctx context.Context, r int) *async.Future[int] {
		t.Error("continuation must not run after cancellation")
		return async.Resolved(rop.Success(r))
	}, 1)

	var got []rop.ServiceResponse[int]
	for r := range out {
		got = append(got, r)
	}

	require.Len(t, got, 3)
	assert.True(t, got[0].IsCancel())
	assert.False(t, got[1].IsCancel())
	assert.Equal(t, fault.CodeConflict, got[1].Err().Code())
	assert.True(t, got[2].IsCancel())
	assert.Equal(t, fault.CodeCanceled, got[2].Err().Code())
}

func TestRun_CancelWithoutDraining(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(core.WithProcessOptions(context.Background(), false))
	cancel()

	in := make(chan rop.ServiceResponse[int], 2)
	in <- rop.Success(1)
	in <- rop.Success(2)
	close(in)

	out := Run(ctx, in, func(ctx context.Context, r int) *async.Future[int] {
		return async.Resolved(rop.Success(r))
	}, 2)

	count := 0
	for range out {
		count++
	}
	assert.Zero(t, count)
}

func TestTurnout_OnSuccessAndPanics(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var delivered atomic.Int32
	out := Turnout(ctx, core.ToChanManyResults(ctx, []int{1, 2, 3, 4}),
		func(ctx context.Context, input rop.ServiceResponse[int]) *async.Future[int] {
			return async.BindAsync(ctx, input, func(ctx context.Context, r int) *async.Future[int] {
				if r == 3 {
					panic(errors.New("three"))
				}
				return async.Resolved(rop.Success(r))
			})
		},
		DrainHandlers[int, int](),
		func(ctx context.Context, out rop.ServiceResponse[int]) { delivered.Add(1) },
		0)

	faults := 0
	for r := range out {
		if r.IsLeft() {
			faults++
			assert.Equal(t, fault.CodePanic, r.Err().Code())
		}
	}
	assert.Equal(t, 1, faults)
	assert.Equal(t, int32(4), delivered.Load())
}

func mockFetchTitle(ctx context.Context, url string) (string, error) {
	if strings.Contains(url, "---") {
		return "", errors.New("host not found")
	}
	return "Mock Page Title for " + url, nil
}

func validateURL(_ context.Context, url string) (bool, string) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return false, "URL must start with http:// or https://"
	}
	return true, ""
}

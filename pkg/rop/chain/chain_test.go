package chain

import (
	"context"
	"testing"

	"github.com/ib-77/svcresp/pkg/rop"
	"github.com/ib-77/svcresp/pkg/rop/fault"
)

func nonNegative(ctx context.Context, v int) (bool, string) {
	return v >= 0, "negative"
}

func even(ctx context.Context, v int) (bool, string) {
	return v%2 == 0, "odd"
}

func TestValidate_AllSuccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	res := FromValue(ctx, 10).Validate(true, nonNegative, even).Result()

	if res.IsLeft() {
		t.Fatalf("expected data, got error: %v", res.Err())
	}
	if res.Data() != 10 {
		t.Fatalf("expected 10, got %d", res.Data())
	}
}

func TestValidate_FailBreakOnFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	executed := 0
	count := func(check func(context.Context, int) (bool, string)) func(context.Context, int) (bool, string) {
		return func(ctx context.Context, v int) (bool, string) {
			executed++
			return check(ctx, v)
		}
	}

	res := FromValue(ctx, -1).Validate(true, count(nonNegative), count(even)).Result()

	if !res.IsLeft() {
		t.Fatalf("expected error, got data: %v", res.Data())
	}
	if executed != 1 {
		t.Fatalf("expected only first check to execute, got %d", executed)
	}
	if res.Err().Code() != fault.CodeValidation || res.Err().Message() != "negative" {
		t.Fatalf("expected validation error 'negative', got: %v", res.Err())
	}
}

func TestValidate_AccumulateMessages_NoBreak(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	res := FromValue(ctx, -3).Validate(false, nonNegative, nonNegative, even).Result()

	if !res.IsLeft() {
		t.Fatalf("expected error, got data: %v", res.Data())
	}

	msgs := res.Err().Messages()
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if msgs[0] != "negative" || msgs[1] != "negative" || msgs[2] != "odd" {
		t.Fatalf("expected ['negative', 'negative', 'odd'], got %q", msgs)
	}
	if status, ok := res.Err().StatusHint(); !ok || status != 400 {
		t.Fatalf("expected status hint 400, got %d (%v)", status, ok)
	}
}

func TestValidate_InitialInputFail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	initial := fault.E(fault.CodeNotFound, "initial")
	called := false

	res := Start(ctx, rop.Fail[int](initial)).Validate(true, func(ctx context.Context, v int) (bool, string) {
		called = true
		return true, ""
	}).Result()

	if !res.IsLeft() || res.Err() != initial {
		t.Fatalf("expected initial error to pass through, got: %v", res.Err())
	}
	if called {
		t.Fatalf("checks must not run on an error response")
	}
}

func TestValidate_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := FromValue(ctx, 42).Validate(false, nonNegative, even).Result()

	if !res.IsCancel() {
		t.Fatalf("expected cancel response, got: %v", res.Err())
	}
	if res.Err().Code() != fault.CodeCanceled {
		t.Fatalf("expected %s, got %s", fault.CodeCanceled, res.Err().Code())
	}
}

func TestValidate_NoChecks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	res := FromValue(ctx, 7).Validate(false).Result()

	if res.IsLeft() || res.Data() != 7 {
		t.Fatalf("expected data 7, got left=%v err=%v", res.IsLeft(), res.Err())
	}
}

package core

import "context"

type OptionKey string

const (
	ProcessOptionKey OptionKey = "process_options"
	WorkerOptionKey  OptionKey = "worker_options"
	CancelOptionKey  OptionKey = "cancel_options"
)

// CancelPolicy decides how a cancelled context observed while awaiting is
// reported.
type CancelPolicy int

const (
	// PropagateCancel reports cancellation as a cancel response (IsCancel).
	PropagateCancel CancelPolicy = iota
	// FoldCancel reports cancellation as a plain error response.
	FoldCancel
)

type MaxLimitOption struct {
	Value int
}
type WorkerOptions struct {
	MaxCount MaxLimitOption
}

type ProcessOptions struct {
	ProcessRemaining bool
}

type CancelOptions struct {
	Policy CancelPolicy
}

func WithProcessOptions(ctx context.Context, processRemaining bool) context.Context {
	return context.WithValue(ctx, ProcessOptionKey, ProcessOptions{ProcessRemaining: processRemaining})
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

func WithCancelPolicy(ctx context.Context, policy CancelPolicy) context.Context {
	return context.WithValue(ctx, CancelOptionKey, CancelOptions{Policy: policy})
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount.Value > 0 {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

func IsProcessRemainingEnabled(ctx context.Context, defaultProcessRemaining bool) bool {
	options, ok := ctx.Value(ProcessOptionKey).(ProcessOptions)
	if ok {
		return options.ProcessRemaining
	}
	return defaultProcessRemaining
}

func GetCancelPolicy(ctx context.Context) CancelPolicy {
	options, ok := ctx.Value(CancelOptionKey).(CancelOptions)
	if ok {
		return options.Policy
	}
	return PropagateCancel
}

// Package apitest provides an in-memory api.FeeAPI for tests.
package apitest

import (
	"context"
	"sync"

	"feeboard/internal/api"
)

// Fake is a scriptable api.FeeAPI. Unset funcs return zero values. Every
// call is counted per operation.
type Fake struct {
	RecommendFunc    func(ctx context.Context, p api.Priority, e api.ExplainMode) (api.Recommendation, error)
	CompareFunc      func(ctx context.Context, e api.ExplainMode) (api.CompareResult, error)
	EstimateFunc     func(ctx context.Context, fee float64, e api.ExplainMode) (api.Recommendation, error)
	LiveStatusFunc   func(ctx context.Context) (api.LiveStatus, error)
	MiningTargetFunc func(ctx context.Context, q api.MiningTargetQuery) (api.MinerTargetResult, error)
	HistoryFunc      func(ctx context.Context) (api.HistoryResult, error)
	HealthFunc       func(ctx context.Context) (api.HealthStatus, error)

	mu    sync.Mutex
	calls map[string]int
}

var _ api.FeeAPI = (*Fake)(nil)

func (f *Fake) record(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[op]++
}

// Calls returns how many times op ("recommend", "compare", ...) was invoked.
func (f *Fake) Calls(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *Fake) Recommend(ctx context.Context, p api.Priority, e api.ExplainMode) (api.Recommendation, error) {
	f.record("recommend")
	if f.RecommendFunc == nil {
		return api.Recommendation{Priority: string(p)}, nil
	}
	return f.RecommendFunc(ctx, p, e)
}

func (f *Fake) Compare(ctx context.Context, e api.ExplainMode) (api.CompareResult, error) {
	f.record("compare")
	if f.CompareFunc == nil {
		return api.CompareResult{}, nil
	}
	return f.CompareFunc(ctx, e)
}

func (f *Fake) Estimate(ctx context.Context, fee float64, e api.ExplainMode) (api.Recommendation, error) {
	f.record("estimate")
	if f.EstimateFunc == nil {
		return api.Recommendation{Priority: "custom", InputFeeSatVB: api.Some(fee)}, nil
	}
	return f.EstimateFunc(ctx, fee, e)
}

func (f *Fake) LiveStatus(ctx context.Context) (api.LiveStatus, error) {
	f.record("live")
	if f.LiveStatusFunc == nil {
		return api.LiveStatus{}, nil
	}
	return f.LiveStatusFunc(ctx)
}

func (f *Fake) MiningTarget(ctx context.Context, q api.MiningTargetQuery) (api.MinerTargetResult, error) {
	f.record("mining_target")
	if f.MiningTargetFunc == nil {
		return api.MinerTargetResult{}, nil
	}
	return f.MiningTargetFunc(ctx, q)
}

func (f *Fake) History(ctx context.Context) (api.HistoryResult, error) {
	f.record("history")
	if f.HistoryFunc == nil {
		return api.HistoryResult{}, nil
	}
	return f.HistoryFunc(ctx)
}

func (f *Fake) Health(ctx context.Context) (api.HealthStatus, error) {
	f.record("health")
	if f.HealthFunc == nil {
		return api.HealthStatus{Status: "ok"}, nil
	}
	return f.HealthFunc(ctx)
}

package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/biggame27/stock-checker/internal/domain/entity"
	"github.com/biggame27/stock-checker/internal/feature/historical/domain"
)

// fetchState is a step of the historical fetch.
// The attempt states are visited in declaration order until one succeeds.
type fetchState int

const (
	stateTryDateRange fetchState = iota
	stateTryPeriodKeyword
	stateTryBareCall
	stateFailed
	stateSucceeded
)

func (s fetchState) String() string {
	switch s {
	case stateTryDateRange:
		return "date_range"
	case stateTryPeriodKeyword:
		return "period_keyword"
	case stateTryBareCall:
		return "bare_call"
	case stateFailed:
		return "failed"
	case stateSucceeded:
		return "succeeded"
	default:
		return "unknown"
	}
}

// attempt is one request of the fallback plan.
type attempt struct {
	state fetchState
	opts  entity.HistoricalOptions
}

// fallbackPlan returns the requests to try for p, most specific first:
// an explicit date range, then the provider's range keyword, then no parameters at all.
func fallbackPlan(p domain.Period, now time.Time) []attempt {
	start, end := p.Window(now)
	interval := p.Interval()
	return []attempt{
		{state: stateTryDateRange, opts: entity.HistoricalOptions{Period1: start, Period2: end, Interval: interval}},
		{state: stateTryPeriodKeyword, opts: entity.HistoricalOptions{Range: p.RangeKeyword(), Interval: interval}},
		{state: stateTryBareCall, opts: entity.HistoricalOptions{}},
	}
}

// runPlan tries each attempt in order and returns the first successful series.
// When every attempt fails it returns stateFailed and the error of the last attempt.
// A canceled context stops the plan early.
func (u *HistoricalUsecase) runPlan(ctx context.Context, symbol string, plan []attempt) ([]entity.Candle, fetchState, error) {
	var lastErr error
	for _, a := range plan {
		candles, err := u.market.GetHistorical(ctx, symbol, a.opts)
		if err == nil {
			if a.state != stateTryDateRange {
				slog.Info("historical data fetched with fallback", "symbol", symbol, "attempt", a.state.String())
			}
			return candles, stateSucceeded, nil
		}
		lastErr = err
		slog.Warn("historical attempt failed", "symbol", symbol, "attempt", a.state.String(), "error", err)

		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, stateFailed, ctxErr
		}
	}
	return nil, stateFailed, lastErr
}

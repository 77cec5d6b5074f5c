// Package domain defines the chart periods served by the historical feature.
package domain

import (
	"strings"
	"time"
)

// Period is a chart timeframe code such as "1mo".
type Period string

const (
	Period1D  Period = "1d"
	Period5D  Period = "5d"
	Period1Mo Period = "1mo"
	Period3Mo Period = "3mo"
	Period6Mo Period = "6mo"
	Period1Y  Period = "1y"
	Period2Y  Period = "2y"
	Period5Y  Period = "5y"
	Period10Y Period = "10y"
	PeriodYTD Period = "ytd"
	PeriodMax Period = "max"
)

// DefaultPeriod is used when the request does not name a period.
const DefaultPeriod = Period1Mo

// defaultLookbackDays applies to every valid period without an entry in lookbackDays.
const defaultLookbackDays = 30

// validPeriods lists the accepted codes in display order.
var validPeriods = []Period{
	Period1D, Period5D, Period1Mo, Period3Mo, Period6Mo,
	Period1Y, Period2Y, Period5Y, Period10Y, PeriodYTD, PeriodMax,
}

// lookbackDays maps a period to how far before now its window starts.
// 10y, ytd and max are accepted but have no entry and fall back to 30 days.
var lookbackDays = map[Period]int{
	Period1D:  2,
	Period5D:  7,
	Period1Mo: 30,
	Period3Mo: 90,
	Period6Mo: 180,
	Period1Y:  365,
	Period2Y:  730,
	Period5Y:  1825,
}

// ParsePeriod returns the Period for s and whether s is a valid code.
func ParsePeriod(s string) (Period, bool) {
	for _, p := range validPeriods {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// ValidPeriods returns the accepted codes in display order.
func ValidPeriods() []Period {
	out := make([]Period, len(validPeriods))
	copy(out, validPeriods)
	return out
}

// ValidPeriodsList returns the accepted codes joined for error messages, e.g. "1d, 5d, ...".
func ValidPeriodsList() string {
	ss := make([]string, len(validPeriods))
	for i, p := range validPeriods {
		ss[i] = string(p)
	}
	return strings.Join(ss, ", ")
}

// Lookback returns the length of the window requested for p.
func (p Period) Lookback() time.Duration {
	days, ok := lookbackDays[p]
	if !ok {
		days = defaultLookbackDays
	}
	return time.Duration(days) * 24 * time.Hour
}

// Window returns the [start, end] range of p ending at now.
func (p Period) Window(now time.Time) (start, end time.Time) {
	return now.Add(-p.Lookback()), now
}

// Interval returns the bar size for p: 5 minutes for 1d, 15 minutes for 5d, daily otherwise.
func (p Period) Interval() string {
	switch p {
	case Period1D:
		return "5m"
	case Period5D:
		return "15m"
	default:
		return "1d"
	}
}

// RangeKeyword returns the provider range keyword used when a date range request fails.
// Periods without a lookback entry are requested as "1mo".
func (p Period) RangeKeyword() string {
	if _, ok := lookbackDays[p]; ok {
		return string(p)
	}
	return string(Period1Mo)
}

// Package view builds the display values of the dashboard templates.
package view

import (
	"github.com/shopspring/decimal"
)

// NA is shown for values the provider did not report.
const NA = "N/A"

type scale struct {
	min    decimal.Decimal
	suffix string
}

var (
	moneyScales = []scale{
		{decimal.New(1, 12), "T"},
		{decimal.New(1, 9), "B"},
		{decimal.New(1, 6), "M"},
		{decimal.New(1, 3), "K"},
	}
	volumeScales = moneyScales[1:]
	hundred      = decimal.NewFromInt(100)
)

// FormatMoney formats v as dollars with two decimals and a T/B/M/K suffix,
// e.g. "$2.90T", "-$1.25". It returns NA for nil.
func FormatMoney(v *float64) string {
	if v == nil {
		return NA
	}
	d := decimal.NewFromFloat(*v)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	num, suffix := scaled(d, moneyScales)
	return sign + "$" + num.StringFixed(2) + suffix
}

// FormatPrice is FormatMoney for a value that is always present.
func FormatPrice(v float64) string {
	return FormatMoney(&v)
}

// FormatVolume formats v with a B/M/K suffix, e.g. "51.23M".
// Values below one thousand are printed as is.
func FormatVolume(v *float64) string {
	if v == nil {
		return NA
	}
	d := decimal.NewFromFloat(*v)
	num, suffix := scaled(d.Abs(), volumeScales)
	if suffix == "" {
		return d.String()
	}
	if d.IsNegative() {
		return "-" + num.StringFixed(2) + suffix
	}
	return num.StringFixed(2) + suffix
}

// FormatRatio formats v with two decimals. Zero is treated as unreported.
func FormatRatio(v *float64) string {
	if v == nil || *v == 0 {
		return NA
	}
	return decimal.NewFromFloat(*v).StringFixed(2)
}

// FormatPercent formats an already scaled percentage, e.g. -0.65 -> "-0.65%".
func FormatPercent(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2) + "%"
}

// FormatFraction formats a ratio as a percentage, e.g. 0.0051 -> "0.51%".
func FormatFraction(v float64) string {
	return decimal.NewFromFloat(v).Mul(hundred).StringFixed(2) + "%"
}

func scaled(d decimal.Decimal, scales []scale) (decimal.Decimal, string) {
	for _, s := range scales {
		if d.GreaterThanOrEqual(s.min) {
			return d.Div(s.min), s.suffix
		}
	}
	return d, ""
}

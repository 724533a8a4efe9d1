package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"feeboard/internal/api"

	"github.com/dustin/go-humanize"
)

// Placeholder stands in for any absent value.
const Placeholder = "-"

// Number prints v in its shortest decimal form.
func Number(v float64) string {
	return api.FormatNumber(v)
}

// Grouped prints an integer with thousands separators ("15,000").
func Grouped(n int64) string {
	return humanize.Comma(n)
}

// GroupedFloat groups the integer part and keeps up to three decimals.
func GroupedFloat(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
		return humanize.Comma(int64(v))
	}
	return humanize.CommafWithDigits(v, 3)
}

// SatPerVByte appends the fee unit.
func SatPerVByte(v float64) string {
	return Number(v) + " sat/vB"
}

// OptionalNumber prints v or the placeholder.
func OptionalNumber(v api.Optional[float64]) string {
	if f, ok := v.Get(); ok {
		return Number(f)
	}
	return Placeholder
}

// FeeLabel prints a fee with at most four decimals and no trailing zeros.
func FeeLabel(fee float64) string {
	s := strconv.FormatFloat(fee, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// RecommendTitle titles a single recommendation ("fast priority").
func RecommendTitle(p api.Priority) string {
	return fmt.Sprintf("%s priority", p)
}

// EstimateTitle titles a custom-fee estimate ("Custom fee 12.5 sat/vB").
func EstimateTitle(fee float64) string {
	return fmt.Sprintf("Custom fee %s sat/vB", FeeLabel(fee))
}

func nonEmpty(o api.Optional[string]) api.Optional[string] {
	if s, ok := o.Get(); ok && strings.TrimSpace(s) != "" {
		return o
	}
	return api.None[string]()
}

// Package params validates and clamps the raw text of user-entered query
// parameters before any request is issued.
package params

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"feeboard/internal/api"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

const (
	MinResultCount     = 1
	MaxResultCount     = 6
	DefaultResultCount = 3
	DefaultTarget      = "1"
)

var (
	leadingIntRe   = regexp.MustCompile(`^[+-]?\d+`)
	leadingFloatRe = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// ParseLeadingInt reads the integer at the start of raw, ignoring leading
// whitespace and anything after the digits: "7abc" is 7, "3.9" is 3.
func ParseLeadingInt(raw string) (int, bool) {
	m := leadingIntRe.FindString(strings.TrimLeft(raw, " \t\r\n"))
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseLeadingFloat reads the decimal number at the start of raw: "12.5x"
// is 12.5, ".5" is 0.5.
func ParseLeadingFloat(raw string) (float64, bool) {
	m := leadingFloatRe.FindString(strings.TrimLeft(raw, " \t\r\n"))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ClampResultCount returns the number of miner blocks to show, in [1,6].
// Blank or non-numeric input means 3.
func ClampResultCount(raw string) int {
	if raw == "" {
		raw = strconv.Itoa(DefaultResultCount)
	}
	n, ok := ParseLeadingInt(raw)
	if !ok {
		return DefaultResultCount
	}
	if validate.Var(n, fmt.Sprintf("gte=%d", MinResultCount)) != nil {
		return MinResultCount
	}
	if validate.Var(n, fmt.Sprintf("lte=%d", MaxResultCount)) != nil {
		return MaxResultCount
	}
	return n
}

// ValidateFeeFilter returns the miner fee filter, or false when the input
// is non-numeric or not positive and the parameter must be omitted.
func ValidateFeeFilter(raw string) (float64, bool) {
	v, ok := ParseLeadingFloat(raw)
	if !ok || validate.Var(v, "gt=0") != nil {
		return 0, false
	}
	return v, true
}

// ValidateTargetBlocks returns the target block count. Blank input means 1;
// non-numeric input or values below 1 are absent.
func ValidateTargetBlocks(raw string) (int, bool) {
	if raw == "" {
		raw = DefaultTarget
	}
	n, ok := ParseLeadingInt(raw)
	if !ok || validate.Var(n, "gte=1") != nil {
		return 0, false
	}
	return n, true
}

// ValidateCustomFee returns the fee to estimate, or api.ErrInvalidFee.
func ValidateCustomFee(raw string) (float64, error) {
	v, ok := ParseLeadingFloat(raw)
	if !ok || validate.Var(v, "gt=0") != nil {
		return 0, api.ErrInvalidFee
	}
	return v, nil
}

// MinerQuery validates the three miner-target inputs together.
func MinerQuery(countRaw, feeRaw, targetRaw string) (int, api.MiningTargetQuery) {
	var q api.MiningTargetQuery
	if fee, ok := ValidateFeeFilter(feeRaw); ok {
		q.Fee = api.Some(fee)
	}
	if target, ok := ValidateTargetBlocks(targetRaw); ok {
		q.TargetBlocks = api.Some(target)
	}
	return ClampResultCount(countRaw), q
}

// ParsePriority accepts fast, medium or slow.
func ParsePriority(raw string) (api.Priority, error) {
	p := strings.ToLower(strings.TrimSpace(raw))
	if err := validate.Var(p, "required,oneof=fast medium slow"); err != nil {
		return "", &api.InvalidInput{Message: fmt.Sprintf("invalid priority %q: expected fast, medium or slow", raw)}
	}
	return api.Priority(p), nil
}

// ParseExplainMode accepts "", none or llm.
func ParseExplainMode(raw string) (api.ExplainMode, error) {
	e := strings.ToLower(strings.TrimSpace(raw))
	if err := validate.Var(e, "omitempty,oneof=none llm"); err != nil {
		return "", &api.InvalidInput{Message: fmt.Sprintf("invalid explain mode %q: expected none or llm", raw)}
	}
	return api.ExplainMode(e), nil
}

package params

import (
	"testing"

	"feeboard/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampResultCount(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"0", 1},
		{"7", 6},
		{"abc", 3},
		{"", 3},
		{"1", 1},
		{"2", 2},
		{"3", 3},
		{"4", 4},
		{"5", 5},
		{"6", 6},
		{"-2", 1},
		{"4.8", 4},
		{" 5 blocks", 5},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampResultCount(tt.raw))
		})
	}
}

func TestValidateFeeFilter(t *testing.T) {
	tests := []struct {
		raw    string
		want   float64
		wantOK bool
	}{
		{"", 0, false},
		{"abc", 0, false},
		{"0", 0, false},
		{"-1", 0, false},
		{"10", 10, true},
		{"12.5x", 12.5, true},
		{".5", 0.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ValidateFeeFilter(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateTargetBlocks(t *testing.T) {
	tests := []struct {
		raw    string
		want   int
		wantOK bool
	}{
		{"", 1, true},
		{"3", 3, true},
		{"12", 12, true},
		{"0", 0, false},
		{"-4", 0, false},
		{"x", 0, false},
		{"2.7", 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ValidateTargetBlocks(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateCustomFee(t *testing.T) {
	for _, raw := range []string{"0", "-5", "abc", ""} {
		t.Run("reject "+raw, func(t *testing.T) {
			_, err := ValidateCustomFee(raw)
			require.Error(t, err)
			assert.True(t, api.IsInvalidInput(err))
			assert.Equal(t, "Enter a fee > 0", err.Error())
		})
	}

	fee, err := ValidateCustomFee("12.5")
	require.NoError(t, err)
	assert.Equal(t, 12.5, fee)
}

func TestMinerQuery(t *testing.T) {
	count, q := MinerQuery("9", "abc", "")
	assert.Equal(t, 6, count)
	assert.False(t, q.Fee.IsPresent())
	assert.Equal(t, 1, q.TargetBlocks.OrElse(0))

	count, q = MinerQuery("2", "8.5", "0")
	assert.Equal(t, 2, count)
	assert.Equal(t, 8.5, q.Fee.OrElse(0))
	assert.False(t, q.TargetBlocks.IsPresent())
}

func TestParseLeadingNumbers(t *testing.T) {
	n, ok := ParseLeadingInt("7abc")
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	_, ok = ParseLeadingInt("abc7")
	assert.False(t, ok)

	v, ok := ParseLeadingFloat("1e2sat")
	assert.True(t, ok)
	assert.Equal(t, 100.0, v)

	_, ok = ParseLeadingFloat(".")
	assert.False(t, ok)
}

func TestParsePriority(t *testing.T) {
	for _, raw := range []string{"fast", "Medium", " slow "} {
		_, err := ParsePriority(raw)
		assert.NoError(t, err, raw)
	}
	p, _ := ParsePriority("FAST")
	assert.Equal(t, api.PriorityFast, p)

	for _, raw := range []string{"", "urgent"} {
		_, err := ParsePriority(raw)
		assert.True(t, api.IsInvalidInput(err), raw)
	}
}

func TestParseExplainMode(t *testing.T) {
	tests := []struct {
		raw     string
		want    api.ExplainMode
		wantErr bool
	}{
		{"", api.ExplainDefault, false},
		{"none", api.ExplainNone, false},
		{"LLM", api.ExplainLLM, false},
		{"verbose", "", true},
	}
	for _, tt := range tests {
		got, err := ParseExplainMode(tt.raw)
		if tt.wantErr {
			assert.Error(t, err)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

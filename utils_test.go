package drills

import (
	"errors"
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireParam(t *testing.T) {
	q := url.Values{"a": {"1"}, "empty": {""}}

	v, err := requireParam(q, "a")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	for _, field := range []string{"empty", "missing"} {
		_, err := requireParam(q, field)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
		assert.Equal(t, field+" is required", err.Error())
	}
}

func TestParseNumber(t *testing.T) {
	tt := []struct {
		Input   string
		Want    float64
		WantErr bool
	}{
		{Input: "3", Want: 3},
		{Input: " -2.5 ", Want: -2.5},
		{Input: "1e3", Want: 1000},
		{Input: "abc", WantErr: true},
		{Input: "12abc", WantErr: true},
		{Input: "NaN", WantErr: true},
		{Input: "Inf", WantErr: true},
		{Input: "-Infinity", WantErr: true},
		{Input: "", WantErr: true},
	}

	for _, tc := range tt {
		t.Run(tc.Input, func(t *testing.T) {
			got, err := parseNumber("a", tc.Input)
			if tc.WantErr {
				require.Error(t, err)
				assert.Equal(t, "a must be a number", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Want, got)
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tt := []struct {
		Input float64
		Want  string
	}{
		{Input: 0, Want: "0"},
		{Input: math.Copysign(0, -1), Want: "0"},
		{Input: 5, Want: "5"},
		{Input: -1.5, Want: "-1.5"},
		{Input: 0.1 + 0.2, Want: "0.30000000000000004"},
		{Input: 1e20, Want: "100000000000000000000"},
		{Input: 1e21, Want: "1e+21"},
		{Input: 1e-7, Want: "1e-07"},
		{Input: math.Inf(1), Want: "Infinity"},
		{Input: math.Inf(-1), Want: "-Infinity"},
	}

	for _, tc := range tt {
		t.Run(tc.Want, func(t *testing.T) {
			assert.Equal(t, tc.Want, formatNumber(tc.Input))
		})
	}
}

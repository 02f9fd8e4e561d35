package number

import (
	stderrors "errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkasting/wuffs/errors"
)

func TestParseU64(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
		kind errors.Kind
	}{
		{"0", 0, ""},
		{"1", 1, ""},
		{"12345", 12345, ""},
		{"1_000_000", 1000000, ""},
		{"__1__", 1, ""},
		{"0_", 0, ""},
		{"_0", 0, ""},
		{"0x0", 0, ""},
		{"0xff", 255, ""},
		{"0XFF", 255, ""},
		{"0x_dead_BEEF", 0xdeadbeef, ""},
		{"0x00ff", 255, ""},
		{"0d123", 123, ""},
		{"0D0123", 123, ""},
		{"_0D_1_002", 1002, ""},
		{"18446744073709551615", math.MaxUint64, ""},
		{"0xffffffffffffffff", math.MaxUint64, ""},

		{"", 0, errors.KindBadArgument},
		{"_", 0, errors.KindBadArgument},
		{" 1", 0, errors.KindBadArgument},
		{"1 ", 0, errors.KindBadArgument},
		{"00", 0, errors.KindBadArgument},
		{"007", 0, errors.KindBadArgument},
		{"0644", 0, errors.KindBadArgument},
		{"0_1", 0, errors.KindBadArgument},
		{"0x", 0, errors.KindBadArgument},
		{"0x_", 0, errors.KindBadArgument},
		{"0xg", 0, errors.KindBadArgument},
		{"0d", 0, errors.KindBadArgument},
		{"0dff", 0, errors.KindBadArgument},
		{"0_x1", 0, errors.KindBadArgument},
		{"+1", 0, errors.KindBadArgument},
		{"-1", 0, errors.KindBadArgument},
		{"1.0", 0, errors.KindBadArgument},

		{"18446744073709551616", 0, errors.KindOverflow},
		{"0x1_0000_0000_0000_0000", 0, errors.KindOverflow},
		{"99999999999999999999999", 0, errors.KindOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseU64([]byte(tt.in))
			if tt.kind == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			var e *errors.Error
			require.True(t, stderrors.As(err, &e), "err = %v", err)
			assert.Equal(t, tt.kind, e.Kind)
			assert.Equal(t, errors.PhaseParse, e.Phase)
		})
	}
}

func TestParseI64(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		kind errors.Kind
	}{
		{"0", 0, ""},
		{"-0", 0, ""},
		{"+0", 0, ""},
		{"42", 42, ""},
		{"-42", -42, ""},
		{"+42", 42, ""},
		{"-_4_2", -42, ""},
		{"-0x10", -16, ""},
		{"9223372036854775807", math.MaxInt64, ""},
		{"-9223372036854775808", math.MinInt64, ""},
		{"-0x8000000000000000", math.MinInt64, ""},

		{"", 0, errors.KindBadArgument},
		{"-", 0, errors.KindBadArgument},
		{"+", 0, errors.KindBadArgument},
		{"--1", 0, errors.KindBadArgument},
		{"_-1", 0, errors.KindBadArgument},
		{"1-", 0, errors.KindBadArgument},
		{"-007", 0, errors.KindBadArgument},

		{"9223372036854775808", 0, errors.KindOverflow},
		{"-9223372036854775809", 0, errors.KindOverflow},
		{"18446744073709551616", 0, errors.KindOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseI64([]byte(tt.in))
			if tt.kind == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			var e *errors.Error
			require.True(t, stderrors.As(err, &e), "err = %v", err)
			assert.Equal(t, tt.kind, e.Kind)
		})
	}
}

func TestParseErrorReportsWholeText(t *testing.T) {
	_, err := ParseI64([]byte("-12x"))
	var e *errors.Error
	require.True(t, stderrors.As(err, &e))
	assert.Equal(t, "-12x", e.Value)
	assert.Equal(t, "i64", e.Type)
}

func TestParseDoesNotRetainInput(t *testing.T) {
	buf := []byte("12z")
	_, err := ParseU64(buf)
	var e *errors.Error
	require.True(t, stderrors.As(err, &e))
	buf[0] = 'X'
	assert.Equal(t, "12z", e.Value)
}

package number

import (
	"math"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderU64(t *testing.T) {
	tests := []struct {
		v    uint64
		opts RenderOptions
		want string
	}{
		{0, RenderOptions{}, "0"},
		{7, RenderOptions{}, "7"},
		{1234567890, RenderOptions{}, "1234567890"},
		{math.MaxUint64, RenderOptions{}, "18446744073709551615"},
		{math.MaxUint64, RenderOptions{LeadingPlus: true}, "+18446744073709551615"},
		{0, RenderOptions{LeadingPlus: true}, "+0"},
	}

	for _, tt := range tests {
		buf := make([]byte, MaxU64Len)
		n := RenderU64(buf, tt.v, tt.opts)
		assert.Equal(t, tt.want, string(buf[:n]))
	}
}

func TestRenderI64(t *testing.T) {
	tests := []struct {
		v    int64
		opts RenderOptions
		want string
	}{
		{0, RenderOptions{}, "0"},
		{-1, RenderOptions{}, "-1"},
		{-1, RenderOptions{LeadingPlus: true}, "-1"},
		{42, RenderOptions{LeadingPlus: true}, "+42"},
		{math.MaxInt64, RenderOptions{LeadingPlus: true}, "+9223372036854775807"},
		{math.MinInt64, RenderOptions{}, "-9223372036854775808"},
	}

	for _, tt := range tests {
		buf := make([]byte, MaxI64Len)
		n := RenderI64(buf, tt.v, tt.opts)
		assert.Equal(t, tt.want, string(buf[:n]))
	}
}

func TestRenderIntMatchesStrconv(t *testing.T) {
	buf := make([]byte, MaxU64Len)
	for v := uint64(1); v != 0; v = v*3 + 1 {
		n := RenderU64(buf, v, RenderOptions{})
		assert.Equal(t, strconv.FormatUint(v, 10), string(buf[:n]))

		n = RenderI64(buf, -int64(v>>1), RenderOptions{})
		assert.Equal(t, strconv.FormatInt(-int64(v>>1), 10), string(buf[:n]))
		if v > math.MaxUint64/3 {
			break
		}
	}
}

func TestRenderIntShortBuffer(t *testing.T) {
	buf := []byte("xxxx")
	assert.Zero(t, RenderU64(buf[:3], 1234, RenderOptions{}))
	assert.Equal(t, "xxxx", string(buf))

	assert.Zero(t, RenderI64(buf[:1], -1, RenderOptions{}))
	assert.Equal(t, "xxxx", string(buf))
}

func TestRenderIntAlignRight(t *testing.T) {
	buf := []byte("........")
	n := RenderI64(buf, -12, RenderOptions{AlignRight: true})
	assert.Equal(t, 3, n)
	assert.Equal(t, ".....-12", string(buf))

	buf = []byte("....")
	n = RenderU64(buf, 5, RenderOptions{})
	assert.Equal(t, 1, n)
	assert.Equal(t, "5...", string(buf))
}

func TestIntRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))

	signed := []int64{math.MinInt64, math.MinInt64 + 1, -1, 0, 1, math.MaxInt64}
	for i := 0; i < 10000; i++ {
		signed = append(signed, int64(rng.Uint64()>>rng.UintN(64)))
		signed = append(signed, -int64(rng.Uint64()>>rng.UintN(64)))
	}
	for _, opts := range []RenderOptions{{}, {LeadingPlus: true}} {
		for _, v := range signed {
			buf := make([]byte, MaxI64Len)
			n := RenderI64(buf, v, opts)
			require.NotZero(t, n)
			got, err := ParseI64(buf[:n])
			require.NoError(t, err, "%q", buf[:n])
			require.Equal(t, v, got, "%q", buf[:n])
		}
	}

	// The unsigned grammar has no sign, so LeadingPlus output is not
	// valid ParseU64 input.
	unsigned := []uint64{0, 1, math.MaxInt64, math.MaxInt64 + 1, math.MaxUint64}
	for i := 0; i < 10000; i++ {
		unsigned = append(unsigned, rng.Uint64()>>rng.UintN(64))
	}
	for _, v := range unsigned {
		buf := make([]byte, MaxU64Len)
		n := RenderU64(buf, v, RenderOptions{})
		got, err := ParseU64(buf[:n])
		require.NoError(t, err, "%q", buf[:n])
		require.Equal(t, v, got)

		n = RenderU64(buf, v, RenderOptions{LeadingPlus: true})
		require.Equal(t, byte('+'), buf[0])
		got, err = ParseU64(buf[1:n])
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

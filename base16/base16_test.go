package base16

import (
	"bytes"
	"encoding/hex"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkasting/wuffs/status"
	"github.com/pkasting/wuffs/transform"
)

func TestDecode2(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		dstLen    int
		srcClosed bool
		want      string
		numSrc    int
		status    status.Status
	}{
		{"empty", "", 4, true, "", 0, status.OK},
		{"lower", "0a1b", 4, true, "\x0a\x1b", 4, status.OK},
		{"upper", "FF80", 4, true, "\xff\x80", 4, status.OK},
		{"odd open", "abc", 4, false, "\xab", 2, status.ShortRead},
		{"odd closed", "abc", 4, true, "\xab", 2, status.BadData},
		{"short dst", "010203", 2, true, "\x01\x02", 4, status.ShortWrite},
		{"invalid digits decode as zero", "zz1g", 4, true, "\x00\x10", 4, status.OK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, tt.dstLen)
			r := Decode2(dst, []byte(tt.src), tt.srcClosed)
			assert.Equal(t, tt.want, string(dst[:r.NumDst]))
			assert.Equal(t, tt.numSrc, r.NumSrc)
			assert.Equal(t, tt.status, r.Status)
		})
	}
}

func TestDecode4(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		dstLen    int
		srcClosed bool
		want      string
		numSrc    int
		status    status.Status
	}{
		{"escaped", `\x41\x62`, 4, true, "Ab", 8, status.OK},
		{"prefix ignored", "??7e..00", 4, true, "\x7e\x00", 8, status.OK},
		{"partial open", `\x41\x6`, 4, false, "A", 4, status.ShortRead},
		{"partial closed", `\x41\x6`, 4, true, "A", 4, status.BadData},
		{"short dst", `\x01\x02`, 1, true, "\x01", 4, status.ShortWrite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, tt.dstLen)
			r := Decode4(dst, []byte(tt.src), tt.srcClosed)
			assert.Equal(t, tt.want, string(dst[:r.NumDst]))
			assert.Equal(t, tt.numSrc, r.NumSrc)
			assert.Equal(t, tt.status, r.Status)
		})
	}
}

func TestEncode(t *testing.T) {
	src := []byte{0x00, 0x7f, 0xab, 0xff}

	dst := make([]byte, 16)
	r := Encode2(dst, src, true)
	require.True(t, r.Status.IsOK())
	assert.Equal(t, "007fabff", string(dst[:r.NumDst]))

	r = Encode4(dst, src, true)
	require.True(t, r.Status.IsOK())
	assert.Equal(t, `\x00\x7f\xab\xff`, string(dst[:r.NumDst]))

	r = Encode2(dst[:5], src, false)
	assert.Equal(t, status.ShortWrite, r.Status)
	assert.Equal(t, 2, r.NumSrc)
	assert.Equal(t, 4, r.NumDst)

	r = Encode4(dst[:3], src, false)
	assert.Equal(t, status.ShortWrite, r.Status)
	assert.Zero(t, r.NumSrc)
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		src := make([]byte, rng.IntN(300))
		for j := range src {
			src[j] = byte(rng.Uint32())
		}

		enc := make([]byte, 2*len(src))
		r := transform.Run(Encoder2, enc, src, true)
		require.True(t, r.Status.IsOK())
		require.Equal(t, hex.EncodeToString(src), string(enc[:r.NumDst]))

		dec := make([]byte, len(src))
		r = transform.Run(Decoder2, dec, enc, true)
		require.True(t, r.Status.IsOK())
		require.True(t, bytes.Equal(src, dec[:r.NumDst]))

		enc4 := make([]byte, 4*len(src))
		r = transform.Run(Encoder4, enc4, src, true)
		require.True(t, r.Status.IsOK())
		r = transform.Run(Decoder4, dec, enc4[:r.NumDst], true)
		require.True(t, r.Status.IsOK())
		require.True(t, bytes.Equal(src, dec[:r.NumDst]))
	}
}

// Decoding never reads or writes out of range, whatever the input.
func TestDecodeArbitraryBytes(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 500; i++ {
		src := make([]byte, rng.IntN(40))
		for j := range src {
			src[j] = byte(rng.Uint32())
		}
		dst := make([]byte, rng.IntN(12))
		for _, f := range []transform.Func{Decode2, Decode4} {
			r := f(dst, src, rng.IntN(2) == 0)
			assert.LessOrEqual(t, r.NumDst, len(dst))
			assert.LessOrEqual(t, r.NumSrc, len(src))
		}
	}
}

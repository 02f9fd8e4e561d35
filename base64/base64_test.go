package base64

import (
	"bytes"
	"context"
	stdbase64 "encoding/base64"
	stderrors "errors"
	"io"
	"math/rand/v2"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkasting/wuffs/errors"
	"github.com/pkasting/wuffs/status"
	"github.com/pkasting/wuffs/transform"
)

func oracle(o Options) *stdbase64.Encoding {
	switch {
	case o.URLAlphabet && o.EmitPadding:
		return stdbase64.URLEncoding
	case o.URLAlphabet:
		return stdbase64.RawURLEncoding
	case o.EmitPadding:
		return stdbase64.StdEncoding
	default:
		return stdbase64.RawStdEncoding
	}
}

var allOptions = []Options{
	{},
	{EmitPadding: true, AllowPadding: true},
	{URLAlphabet: true},
	{URLAlphabet: true, EmitPadding: true, AllowPadding: true},
}

func TestEncodeMatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for _, o := range allOptions {
		for i := 0; i < 100; i++ {
			src := make([]byte, rng.IntN(100))
			for j := range src {
				src[j] = byte(rng.Uint32())
			}
			dst := make([]byte, EncodedLen(len(src), o.EmitPadding))
			r := transform.Run(o.Encoder(), dst, src, true)
			require.True(t, r.Status.IsOK(), "%+v: %v", o, r)
			require.Equal(t, oracle(o).EncodeToString(src), string(dst[:r.NumDst]))
			require.Equal(t, len(dst), r.NumDst)
		}
	}
}

func TestDecodeMatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	for _, o := range allOptions {
		for i := 0; i < 100; i++ {
			src := make([]byte, rng.IntN(100))
			for j := range src {
				src[j] = byte(rng.Uint32())
			}
			text := oracle(o).EncodeToString(src)
			dst := make([]byte, DecodedLen(len(text)))
			r := transform.Run(o.Decoder(), dst, []byte(text), true)
			require.True(t, r.Status.IsComplete(), "%+v %q: %v", o, text, r)
			require.Equal(t, src, dst[:r.NumDst])
			require.Equal(t, len(text), r.NumSrc)
		}
	}
}

func TestDecode(t *testing.T) {
	pad := Options{AllowPadding: true}
	tests := []struct {
		name      string
		src       string
		srcClosed bool
		opts      Options
		want      string
		status    status.Status
	}{
		{"full groups", "QUJD", true, Options{}, "ABC", status.OK},
		{"unpadded two", "QQ", true, Options{}, "A", status.OK},
		{"unpadded three", "QUI", true, Options{}, "AB", status.OK},
		{"padded needs option", "QQ==", true, Options{}, "", status.BadData},
		{"padded two", "QQ==", true, pad, "A", status.EndOfData},
		{"padded three", "QUI=", true, pad, "AB", status.EndOfData},
		{"padded open", "QQ==", false, pad, "A", status.EndOfData},
		{"full groups then padded", "QUJDQQ==", false, pad, "ABCA", status.EndOfData},
		{"unpadded tail open", "QUJDQQ", false, Options{}, "ABC", status.ShortRead},
		{"partial padding open", "QQ=", false, pad, "", status.ShortRead},
		{"partial padding closed", "QQ=", true, pad, "", status.BadData},
		{"excess padding", "QQ===", true, pad, "", status.BadData},
		{"excess padding one char", "A===", true, pad, "", status.BadData},
		{"padding only", "====", true, pad, "", status.BadData},
		{"data after padding", "QQ==QUJD", true, pad, "", status.BadData},
		{"lone trailing char", "QUJDQ", true, Options{}, "ABC", status.BadData},
		{"invalid char", "QU!D", true, Options{}, "", status.BadData},
		{"invalid char in tail", "Q!", false, Options{}, "", status.BadData},
		{"url chars rejected by std", "-_-_", true, Options{}, "", status.BadData},
		{"url alphabet", "-_-_", true, Options{URLAlphabet: true}, "\xfb\xff\xbf", status.OK},
		{"std chars rejected by url", "+/+/", true, Options{URLAlphabet: true}, "", status.BadData},
		{"empty", "", true, Options{}, "", status.OK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, 16)
			r := Decode(dst, []byte(tt.src), tt.srcClosed, tt.opts)
			assert.Equal(t, tt.want, string(dst[:r.NumDst]))
			assert.Equal(t, tt.status, r.Status)
		})
	}
}

func TestDecodeShortWrite(t *testing.T) {
	dst := make([]byte, 4)
	r := Decode(dst, []byte("QUJDREVG"), true, Options{})
	assert.Equal(t, status.ShortWrite, r.Status)
	assert.Equal(t, 4, r.NumSrc)
	assert.Equal(t, "ABC", string(dst[:r.NumDst]))

	r = Decode(dst[:1], []byte("QUI"), true, Options{})
	assert.Equal(t, status.ShortWrite, r.Status)
	assert.Zero(t, r.NumSrc)
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		srcClosed bool
		opts      Options
		dstLen    int
		want      string
		numSrc    int
		status    status.Status
	}{
		{"group", "ABC", false, Options{}, 8, "QUJD", 3, status.OK},
		{"tail open", "ABCD", false, Options{}, 8, "QUJD", 3, status.ShortRead},
		{"tail closed", "ABCD", true, Options{}, 8, "QUJDRA", 4, status.OK},
		{"tail padded", "ABCD", true, Options{EmitPadding: true}, 8, "QUJDRA==", 4, status.OK},
		{"no room for group", "ABC", true, Options{}, 3, "", 0, status.ShortWrite},
		{"no room for padding", "A", true, Options{EmitPadding: true}, 3, "", 0, status.ShortWrite},
		{"url", "\xfb\xff", true, Options{URLAlphabet: true}, 8, "-_8", 2, status.OK},
		{"empty", "", true, Options{}, 0, "", 0, status.OK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, tt.dstLen)
			r := Encode(dst, []byte(tt.src), tt.srcClosed, tt.opts)
			assert.Equal(t, tt.want, string(dst[:r.NumDst]))
			assert.Equal(t, tt.numSrc, r.NumSrc)
			assert.Equal(t, tt.status, r.Status)
		})
	}
}

// Feeding the encoder and decoder through tiny buffers gives the same
// bytes as one call.
func TestSmallBuffers(t *testing.T) {
	src := []byte("Many hands make light work.")
	want := "TWFueSBoYW5kcyBtYWtlIGxpZ2h0IHdvcmsu"

	var enc []byte
	in := src
	for {
		var dst [5]byte
		closed := len(in) < 4
		chunk := in[:min(len(in), 4)]
		r := Encode(dst[:], chunk, closed, Options{})
		enc = append(enc, dst[:r.NumDst]...)
		in = in[r.NumSrc:]
		if closed && r.Status.IsOK() && len(in) == 0 {
			break
		}
		require.False(t, r.Status.IsError(), "%v", r)
	}
	require.Equal(t, want, string(enc))

	var dec []byte
	text := []byte(want)
	for len(text) > 0 {
		var dst [3]byte
		r := Decode(dst[:], text, true, Options{})
		require.False(t, r.Status.IsError(), "%v", r)
		dec = append(dec, dst[:r.NumDst]...)
		text = text[r.NumSrc:]
	}
	require.Equal(t, string(src), string(dec))
}

func TestLengths(t *testing.T) {
	for n := 0; n < 20; n++ {
		assert.Equal(t, stdbase64.StdEncoding.EncodedLen(n), EncodedLen(n, true))
		assert.Equal(t, stdbase64.RawStdEncoding.EncodedLen(n), EncodedLen(n, false))
		assert.Equal(t, stdbase64.RawStdEncoding.DecodedLen(n), DecodedLen(n))
	}
}

// Bytes after a padded group are rejected however the input is split.
func TestStreamDataAfterPadding(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
		ok   bool
	}{
		{"single padded group", "QQ==", "A", true},
		{"groups then padding", "QUJDQUI=", "ABCAB", true},
		{"second padded group", "QQ==QQ==", "", false},
		{"group after padding", "QQ==QUJD", "", false},
		{"one byte after padding", "QUI=Q", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/whole", func(t *testing.T) {
			checkStream(t, strings.NewReader(tt.src), tt.want, tt.ok)
		})
		t.Run(tt.name+"/one byte reads", func(t *testing.T) {
			checkStream(t, iotest.OneByteReader(strings.NewReader(tt.src)), tt.want, tt.ok)
		})
	}
}

func checkStream(t *testing.T, r io.Reader, want string, ok bool) {
	t.Helper()
	var out bytes.Buffer
	s := &transform.Stream{T: Options{AllowPadding: true}.Decoder(), BufferSize: 8}
	_, err := s.Copy(context.Background(), &out, r)
	if ok {
		require.NoError(t, err)
		assert.Equal(t, want, out.String())
		return
	}
	require.Error(t, err)
	var e *errors.Error
	require.True(t, stderrors.As(err, &e))
	assert.Equal(t, errors.KindBadData, e.Kind)
}

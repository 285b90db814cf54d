package crack

import (
	"context"
	"math/rand"
	"sync/atomic"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provide-io/cryptokit/pkg/codec"
	"github.com/provide-io/cryptokit/pkg/codec/base64"
	"github.com/provide-io/cryptokit/pkg/codec/hex"
	ckerrors "github.com/provide-io/cryptokit/pkg/errors"
)

const (
	cookingHex    = "1b37373331363f78151b7f2b783431333d78397828372d363c78373e783a393b3736"
	cookingBase64 = "Gzc3MzE2P3gVG38reDQxMz14OXgoNy02PHg3Png6OTs3Ng=="
	cookingPlain  = "Cooking MC's like a pound of bacon"
)

func TestBruteForceSingleByteKey(t *testing.T) {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "crack_test",
		Level: hclog.Debug,
	})

	testCases := []struct {
		name    string
		codec   codec.Codec
		content string
		opts    []Option
	}{
		{name: "hex", codec: hex.New(), content: cookingHex},
		{name: "base64", codec: base64.New(), content: cookingBase64},
		{name: "bounded workers", codec: hex.New(), content: cookingHex, opts: []Option{WithWorkers(4)}},
		{name: "single worker", codec: hex.New(), content: cookingHex, opts: []Option{WithWorkers(1)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts := append([]Option{WithLogger(logger)}, tc.opts...)
			r, err := BruteForceSingleByteKey(context.Background(), tc.codec, []byte(tc.content), opts...)
			require.NoError(t, err)

			assert.Equal(t, byte(0x58), r.Key)
			assert.Equal(t, cookingPlain, string(r.Plaintext))
			assert.Equal(t, Score([]byte(cookingPlain)), r.Score)
		})
	}
}

func TestBruteForceEvaluatesEveryKey(t *testing.T) {
	var calls atomic.Int32
	scorer := func(b []byte) int {
		calls.Add(1)
		return Score(b)
	}

	_, err := BruteForceSingleByteKey(context.Background(), hex.New(), []byte(cookingHex), WithScorer(scorer))
	require.NoError(t, err)
	assert.EqualValues(t, KeySpace, calls.Load())
}

func TestBruteForceTieKeepsFirst(t *testing.T) {
	r, err := BruteForceSingleByteKey(context.Background(), hex.New(), []byte(cookingHex),
		WithScorer(func([]byte) int { return 7 }),
	)
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), r.Key)
	assert.Equal(t, 7, r.Score)
}

func TestBruteForceWorkerPanic(t *testing.T) {
	scorer := func(b []byte) int {
		if string(b) == cookingPlain {
			panic("scorer exploded")
		}
		return Score(b)
	}

	r, err := BruteForceSingleByteKey(context.Background(), hex.New(), []byte(cookingHex), WithScorer(scorer))
	assert.Nil(t, r)
	require.ErrorIs(t, err, ckerrors.ErrWorkerPanic)
	assert.Contains(t, err.Error(), "key 0x58")
	assert.Contains(t, err.Error(), "scorer exploded")
}

func TestBruteForceCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := BruteForceSingleByteKey(ctx, hex.New(), []byte(cookingHex))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBruteForceEmptyContent(t *testing.T) {
	r, err := BruteForceSingleByteKey(context.Background(), hex.New(), nil)
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), r.Key)
	assert.Zero(t, r.Score)
	assert.Empty(t, r.Plaintext)
}

func TestResultHelpers(t *testing.T) {
	r := &Result{Key: 0x58, Plaintext: []byte("hi"), Score: 40}

	assert.Equal(t, "58", string(r.EncodedKey(hex.New())))
	assert.Equal(t, "WA==", string(r.EncodedKey(base64.New())))
	assert.Equal(t, `key=0x58 score=40 plaintext="hi"`, r.String())

	assert.True(t, r.Better(nil))
	assert.False(t, r.Better(&Result{Score: 40}))
	assert.True(t, r.Better(&Result{Score: 39}))
}

func TestDetectSingleByteXOR(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	c := hex.New()

	var lines [][]byte
	for i := 0; i < 6; i++ {
		noise := make([]byte, len(cookingPlain))
		rng.Read(noise)
		lines = append(lines, codec.Encode(c, noise))
	}
	lines[3] = []byte(cookingHex)

	best, err := DetectSingleByteXOR(context.Background(), c, lines, WithWorkers(16))
	require.NoError(t, err)
	assert.Equal(t, 3, best.Line)
	assert.Equal(t, byte(0x58), best.Result.Key)
	assert.Equal(t, cookingPlain, string(best.Result.Plaintext))
}

func TestDetectSingleByteXORNoLines(t *testing.T) {
	_, err := DetectSingleByteXOR(context.Background(), hex.New(), nil)
	assert.ErrorIs(t, err, ckerrors.ErrNoCandidate)
}

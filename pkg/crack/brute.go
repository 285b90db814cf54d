package crack

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/provide-io/cryptokit/pkg/codec"
	ckerrors "github.com/provide-io/cryptokit/pkg/errors"
)

// KeySpace is the number of single-byte keys tried by BruteForceSingleByteKey
const KeySpace = 256

// BruteForceSingleByteKey recovers a single-byte XOR key. Every one of the
// 256 keys is tried concurrently against encodedContent and the candidate
// whose raw plaintext scores highest is returned.
//
// All candidates are always evaluated. Among exactly tied top scores the
// lowest key wins. A panicking worker fails the whole search with
// ErrWorkerPanic.
func BruteForceSingleByteKey(ctx context.Context, c codec.Codec, encodedContent []byte, opts ...Option) (*Result, error) {
	o := newOptions(opts)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	o.logger.Debug("🔍 Starting single-byte key search",
		"codec", c.Name(),
		"content_len", len(encodedContent),
		"workers", o.workers,
	)

	// Each worker owns exactly one slot, so no lock is needed.
	var results [KeySpace]*Result

	g, gctx := errgroup.WithContext(ctx)
	if o.workers > 0 {
		g.SetLimit(o.workers)
	}

	for k := 0; k < KeySpace; k++ {
		key := byte(k)
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: key 0x%02x: %v", ckerrors.ErrWorkerPanic, key, r)
				}
			}()

			if err := gctx.Err(); err != nil {
				return err
			}
			results[key] = o.evaluate(c, encodedContent, key)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		o.logger.Error("❌ Key search failed", "error", err)
		return nil, err
	}

	var leader *Result
	for _, r := range results {
		if r.Better(leader) {
			leader = r
		}
	}

	o.logger.Debug("✅ Key search finished",
		"key", fmt.Sprintf("0x%02x", leader.Key),
		"score", leader.Score,
	)
	return leader, nil
}

// evaluate decrypts encodedContent with one candidate key and scores it.
func (o *options) evaluate(c codec.Codec, encodedContent []byte, key byte) *Result {
	encodedKey := codec.Encode(c, []byte{key})
	lines := decryptLines(c, encodedContent, codec.Decode(c, encodedKey), o.lineReset)
	plaintext := joinLines(lines)

	r := &Result{
		Key:       key,
		Plaintext: plaintext,
		Score:     o.scorer(plaintext),
	}
	o.logger.Trace("🔑 Scored candidate", "key", fmt.Sprintf("0x%02x", key), "score", r.Score)
	return r
}

package crack

import (
	"context"
	"fmt"

	"github.com/provide-io/cryptokit/pkg/codec"
	ckerrors "github.com/provide-io/cryptokit/pkg/errors"
)

// DetectSingleByteXOR finds which of many encoded lines was encrypted with
// single-byte XOR. Every line is brute-forced on its own and the line whose
// best candidate scores highest is returned. Ties keep the earlier line.
func DetectSingleByteXOR(ctx context.Context, c codec.Codec, lines [][]byte, opts ...Option) (*LineResult, error) {
	if len(lines) == 0 {
		return nil, ckerrors.ErrNoCandidate
	}

	var best *LineResult
	for i, line := range lines {
		r, err := BruteForceSingleByteKey(ctx, c, line, opts...)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if best == nil || r.Better(best.Result) {
			best = &LineResult{Line: i, Result: r}
		}
	}

	return best, nil
}

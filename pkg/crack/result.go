package crack

import (
	"fmt"

	"github.com/provide-io/cryptokit/pkg/codec"
)

// Result is one brute-force candidate: the key byte that was tried, the raw
// plaintext it produced and that plaintext's Score.
//
// Plaintext is raw bytes, not the codec's encoded form.
type Result struct {
	Key       byte
	Plaintext []byte
	Score     int
}

// EncodedKey returns the key in the given codec's representation, as
// accepted by Decrypt and Encrypt.
func (r *Result) EncodedKey(c codec.Codec) []byte {
	return codec.Encode(c, []byte{r.Key})
}

// Better reports whether r beats other. Only a strictly higher score wins,
// so among equal scores the result already held is kept.
func (r *Result) Better(other *Result) bool {
	if other == nil {
		return true
	}
	return r.Score > other.Score
}

func (r *Result) String() string {
	return fmt.Sprintf("key=0x%02x score=%d plaintext=%q", r.Key, r.Score, r.Plaintext)
}

// LineResult is the outcome of DetectSingleByteXOR: the line that most
// likely hides single-byte XOR plaintext.
type LineResult struct {
	Line   int
	Result *Result
}

// Package crack implements repeating-key XOR and recovers single-byte XOR
// keys by scoring every candidate plaintext.
package crack

import (
	"bytes"

	"github.com/provide-io/cryptokit/pkg/codec"
	ckerrors "github.com/provide-io/cryptokit/pkg/errors"
)

var newline = []byte{'\n'}

// RepeatingKeyXOR writes src XOR the cycled key into dst. The key position
// starts at offset, so a stream split across calls can be continued.
// dst must be at least as long as src; an empty key panics.
func RepeatingKeyXOR(dst, src, key []byte, offset int) {
	for i := range src {
		dst[i] = src[i] ^ key[(offset+i)%len(key)]
	}
}

// FixedXOR decodes two encoded buffers, XORs them byte by byte and
// re-encodes the result. The longer buffer is truncated to the shorter one.
func FixedXOR(c codec.Codec, a, b []byte) []byte {
	da := codec.Decode(c, a)
	db := codec.Decode(c, b)

	n := min(len(da), len(db))
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = da[i] ^ db[i]
	}
	return codec.Encode(c, out)
}

// Encrypt XORs raw plaintext with the cycled key and returns the ciphertext
// encoded with c. encodedKey is in c's representation.
//
// Newlines in plaintext are encrypted like any other byte. With
// WithLineReset the plaintext is split on newlines, each line is encrypted
// from the start of the key and the encoded lines are joined with '\n'.
func Encrypt(c codec.Codec, plaintext, encodedKey []byte, opts ...Option) ([]byte, error) {
	o := newOptions(opts)

	key, err := decodeKey(c, encodedKey)
	if err != nil {
		return nil, err
	}

	if !o.lineReset {
		out := make([]byte, len(plaintext))
		RepeatingKeyXOR(out, plaintext, key, 0)
		return codec.Encode(c, out), nil
	}

	lines := bytes.Split(plaintext, newline)
	encoded := make([][]byte, len(lines))
	for i, line := range lines {
		out := make([]byte, len(line))
		RepeatingKeyXOR(out, line, key, 0)
		encoded[i] = codec.Encode(c, out)
	}
	return joinLines(encoded), nil
}

// Decrypt decrypts encoded ciphertext with an encoded key and returns the
// plaintext encoded with c; decode it before reading it as text.
//
// Content may span several newline-separated lines. Each line is decoded
// on its own and the results are re-joined with '\n'. The key cycle runs on
// across lines unless WithLineReset is given.
func Decrypt(c codec.Codec, encodedContent, encodedKey []byte, opts ...Option) ([]byte, error) {
	o := newOptions(opts)

	key, err := decodeKey(c, encodedKey)
	if err != nil {
		return nil, err
	}

	lines := decryptLines(c, encodedContent, key, o.lineReset)
	for i, line := range lines {
		lines[i] = codec.Encode(c, line)
	}
	return joinLines(lines), nil
}

// decryptLines returns the raw plaintext of every line of encodedContent.
func decryptLines(c codec.Codec, encodedContent, key []byte, lineReset bool) [][]byte {
	lines := bytes.Split(encodedContent, newline)
	out := make([][]byte, len(lines))

	offset := 0
	for i, line := range lines {
		raw := codec.Decode(c, line)
		RepeatingKeyXOR(raw, raw, key, offset)
		out[i] = raw
		if !lineReset {
			offset += len(raw)
		}
	}
	return out
}

// joinLines joins lines with '\n'. Empty output is an empty slice, never
// nil, matching what codec.Encode returns for empty input.
func joinLines(lines [][]byte) []byte {
	out := bytes.Join(lines, newline)
	if out == nil {
		out = []byte{}
	}
	return out
}

func decodeKey(c codec.Codec, encodedKey []byte) ([]byte, error) {
	key := codec.Decode(c, encodedKey)
	if len(key) == 0 {
		return nil, ckerrors.ErrEmptyKey
	}
	return key, nil
}

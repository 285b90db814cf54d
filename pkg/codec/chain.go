package codec

import (
	"fmt"
	"strings"

	ckerrors "github.com/provide-io/cryptokit/pkg/errors"
)

// ParseChain parses a pipe-separated list of codec names ("hex|base64")
// into codec IDs, in order.
func ParseChain(chain string) ([]uint8, error) {
	var ids []uint8
	for _, part := range strings.Split(chain, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		c, err := Lookup(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, c.ID())
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: %q", ckerrors.ErrEmptyChain, chain)
	}
	return ids, nil
}

// ChainToString converts codec IDs to the pipe format accepted by ParseChain
func ChainToString(ids []uint8) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = strings.ToLower(GetName(id))
	}
	return strings.Join(names, "|")
}

// Transcode decodes data with the codec registered as from, and re-encodes
// the raw bytes with the codec registered as to.
func Transcode(data []byte, from, to uint8) ([]byte, error) {
	return TranscodeChain(data, []uint8{from, to})
}

// TranscodeChain walks data through a chain of codecs. The first codec
// decodes the input; every following codec encodes the output of the
// previous step, so "hex|base64|hex" yields hex(base64(unhex(data))).
func TranscodeChain(data []byte, ids []uint8) ([]byte, error) {
	if len(ids) == 0 {
		return nil, ckerrors.ErrEmptyChain
	}

	current := data
	for i, id := range ids {
		c, err := Get(id)
		if err != nil {
			return nil, fmt.Errorf("codec 0x%02x: %w", id, err)
		}
		if i == 0 {
			current = Decode(c, current)
			continue
		}
		current = Encode(c, current)
	}

	return current, nil
}

// ReverseChain undoes TranscodeChain: the codecs after the first are
// decoded in reverse order and the result is encoded with the first codec.
func ReverseChain(data []byte, ids []uint8) ([]byte, error) {
	if len(ids) == 0 {
		return nil, ckerrors.ErrEmptyChain
	}

	current := data
	for i := len(ids) - 1; i >= 0; i-- {
		c, err := Get(ids[i])
		if err != nil {
			return nil, fmt.Errorf("codec 0x%02x: %w", ids[i], err)
		}
		if i == 0 {
			current = Encode(c, current)
			continue
		}
		current = Decode(c, current)
	}

	return current, nil
}

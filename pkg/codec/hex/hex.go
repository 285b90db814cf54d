// Package hex implements the hexadecimal codec: two lowercase characters
// per byte, case-insensitive on decode.
package hex

import (
	"github.com/provide-io/cryptokit/pkg/codec"
)

func init() {
	codec.Register(New())
}

// Codec implements hexadecimal encoding
type Codec struct {
	codec.BaseCodec
}

// New creates a hex codec
func New() *Codec {
	return &Codec{
		BaseCodec: codec.BaseCodec{
			CodecID:   codec.CODEC_HEX,
			CodecName: "hex",
		},
	}
}

// ChunkSize returns 2: hex has no padding, but chunks stay byte-aligned.
func (c *Codec) ChunkSize() int {
	return 2
}

func (c *Codec) MapValueToChar(v byte) (byte, bool) {
	switch {
	case v <= 9:
		return '0' + v, true
	case v <= 15:
		return 'a' + v - 10, true
	default:
		return 0, false
	}
}

func (c *Codec) MapCharToValue(ch byte) (byte, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0', true
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10, true
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10, true
	default:
		return 0, false
	}
}

// EncodeChunk splits every byte into its high and low nibble
func (c *Codec) EncodeChunk(chunk []byte) []byte {
	values := make([]byte, 0, len(chunk)*2)
	for _, b := range chunk {
		values = append(values, (b&0b11110000)>>4, b&0b00001111)
	}
	return codec.MapChars(c, values)
}

// DecodeChunk joins consecutive nibble pairs; an odd trailing nibble is dropped
func (c *Codec) DecodeChunk(window []byte) []byte {
	values := codec.MapValues(c, window)

	out := make([]byte, 0, len(values)/2)
	for i := 0; i+1 < len(values); i += 2 {
		out = append(out, (values[i]&0b00001111)<<4|values[i+1]&0b00001111)
	}
	return out
}

// Package base64 implements the standard Base64 codec (RFC 4648 alphabet,
// '=' padding).
package base64

import (
	"github.com/provide-io/cryptokit/pkg/codec"
)

// Padding fills short final chunks up to four characters
const Padding = '='

const (
	upperOffset = 'A'      // 'A' is value 0
	lowerOffset = 'a' - 26 // 'a' is value 26
	digitOffset = '0' - 52 // '0' is value 52, so the offset is negative
)

func init() {
	codec.Register(New())
}

// Codec implements Base64 encoding
type Codec struct {
	codec.BaseCodec
}

// New creates a Base64 codec
func New() *Codec {
	return &Codec{
		BaseCodec: codec.BaseCodec{
			CodecID:   codec.CODEC_BASE64,
			CodecName: "base64",
		},
	}
}

// ChunkSize returns 3: three bytes fill exactly four sextets.
func (c *Codec) ChunkSize() int {
	return 3
}

func (c *Codec) MapValueToChar(v byte) (byte, bool) {
	switch {
	case v <= 25:
		return v + upperOffset, true
	case v <= 51:
		return v + lowerOffset, true
	case v <= 61:
		return byte(int(v) + digitOffset), true
	case v == 62:
		return '+', true
	case v == 63:
		return '/', true
	default:
		return 0, false
	}
}

func (c *Codec) MapCharToValue(ch byte) (byte, bool) {
	switch {
	case ch >= 'A' && ch <= 'Z':
		return ch - upperOffset, true
	case ch >= 'a' && ch <= 'z':
		return ch - lowerOffset, true
	case ch >= '0' && ch <= '9':
		return byte(int(ch) - digitOffset), true
	case ch == '+':
		return 62, true
	case ch == '/':
		return 63, true
	default:
		return 0, false
	}
}

// EncodeChunk repacks up to three bytes into sextets, maps them and pads
// the result to four characters.
func (c *Codec) EncodeChunk(chunk []byte) []byte {
	var values []byte
	switch len(chunk) {
	case 0:
		return nil
	case 1:
		values = []byte{
			(chunk[0] & 0b11111100) >> 2,
			(chunk[0] & 0b00000011) << 4,
		}
	case 2:
		values = []byte{
			(chunk[0] & 0b11111100) >> 2,
			(chunk[0]&0b00000011)<<4 | (chunk[1]&0b11110000)>>4,
			(chunk[1] & 0b00001111) << 2,
		}
	default:
		values = []byte{
			(chunk[0] & 0b11111100) >> 2,
			(chunk[0]&0b00000011)<<4 | (chunk[1]&0b11110000)>>4,
			(chunk[1]&0b00001111)<<2 | (chunk[2]&0b11000000)>>6,
			chunk[2] & 0b00111111,
		}
	}

	out := codec.MapChars(c, values)
	for len(out) < 4 {
		out = append(out, Padding)
	}
	return out
}

// DecodeChunk strips padding and foreign characters, then packs the
// remaining sextets back into bytes. One stray sextet carries fewer than
// eight bits and is dropped.
func (c *Codec) DecodeChunk(window []byte) []byte {
	v := codec.MapValues(c, window)

	switch len(v) {
	case 0, 1:
		return nil
	case 2:
		return []byte{
			v[0]<<2 | v[1]>>4,
		}
	case 3:
		return []byte{
			v[0]<<2 | v[1]>>4,
			v[1]<<4 | v[2]>>2,
		}
	default:
		return []byte{
			v[0]<<2 | v[1]>>4,
			v[1]<<4 | v[2]>>2,
			v[2]<<6 | v[3],
		}
	}
}

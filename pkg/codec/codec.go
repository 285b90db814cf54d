// Package codec converts raw byte buffers to and from a textual encoding.
//
// A Codec only describes how a single chunk is repacked and how a single
// code point maps to its value; the chunked whole-buffer Encode and Decode
// are shared by every implementation.
package codec

// Codec identifiers, taken from the encoding operation range (0x50-0x6F)
const (
	CODEC_NONE   uint8 = 0x00
	CODEC_BASE64 uint8 = 0x50
	CODEC_HEX    uint8 = 0x54
)

// DecodeWindow is the fixed number of encoded bytes handed to DecodeChunk.
const DecodeWindow = 4

// Codec describes one textual encoding
type Codec interface {
	// ID returns the codec identifier (e.g., CODEC_HEX)
	ID() uint8

	// Name returns the human-readable name
	Name() string

	// ChunkSize returns the number of raw bytes consumed by one EncodeChunk call
	ChunkSize() int

	// MapValueToChar maps an encoding-space value to its ASCII code point
	MapValueToChar(v byte) (byte, bool)

	// MapCharToValue maps an ASCII code point back to its encoding-space value.
	// Padding characters are not part of the alphabet and report false.
	MapCharToValue(c byte) (byte, bool)

	// EncodeChunk repacks at most ChunkSize raw bytes into encoded characters
	EncodeChunk(chunk []byte) []byte

	// DecodeChunk turns one window of at most DecodeWindow encoded
	// characters back into raw bytes, dropping unmappable characters
	DecodeChunk(window []byte) []byte
}

// BaseCodec provides the identity half of a Codec
type BaseCodec struct {
	CodecID   uint8
	CodecName string
}

func (c BaseCodec) ID() uint8 {
	return c.CodecID
}

func (c BaseCodec) Name() string {
	return c.CodecName
}

// Encode splits data into ChunkSize chunks and concatenates the encoded chunks.
// The last chunk may be shorter than ChunkSize.
func Encode(c Codec, data []byte) []byte {
	size := c.ChunkSize()
	out := make([]byte, 0, EstimateEncodedSize(c, len(data)))
	for start := 0; start < len(data); start += size {
		end := min(start+size, len(data))
		out = append(out, c.EncodeChunk(data[start:end])...)
	}
	return out
}

// Decode splits encoded into DecodeWindow windows and concatenates the
// decoded windows. Characters outside the alphabet are dropped and values
// that cannot complete a byte are truncated, so Decode never fails.
func Decode(c Codec, encoded []byte) []byte {
	out := make([]byte, 0, len(encoded))
	for start := 0; start < len(encoded); start += DecodeWindow {
		end := min(start+DecodeWindow, len(encoded))
		out = append(out, c.DecodeChunk(encoded[start:end])...)
	}
	return out
}

// EncodeToString encodes data and returns the result as a string
func EncodeToString(c Codec, data []byte) string {
	return string(Encode(c, data))
}

// DecodeString decodes an encoded string
func DecodeString(c Codec, s string) []byte {
	return Decode(c, []byte(s))
}

// DecodeToString decodes encoded and returns the raw bytes as a string
func DecodeToString(c Codec, encoded []byte) string {
	return string(Decode(c, encoded))
}

// MapValues maps every value through MapCharToValue, keeping only the mappable ones
func MapValues(c Codec, window []byte) []byte {
	values := make([]byte, 0, len(window))
	for _, ch := range window {
		if v, ok := c.MapCharToValue(ch); ok {
			values = append(values, v)
		}
	}
	return values
}

// MapChars maps every value through MapValueToChar, dropping out-of-range values
func MapChars(c Codec, values []byte) []byte {
	chars := make([]byte, 0, len(values))
	for _, v := range values {
		if ch, ok := c.MapValueToChar(v); ok {
			chars = append(chars, ch)
		}
	}
	return chars
}

// EstimateEncodedSize estimates the encoded size given the raw input size
func EstimateEncodedSize(c Codec, rawSize int) int {
	size := c.ChunkSize()
	chunks := (rawSize + size - 1) / size
	return chunks * len(c.EncodeChunk(make([]byte, size)))
}

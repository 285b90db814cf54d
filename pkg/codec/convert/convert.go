// Package convert offers direct conversions between the built-in codecs.
package convert

import (
	"github.com/provide-io/cryptokit/pkg/codec"
	"github.com/provide-io/cryptokit/pkg/codec/base64"
	"github.com/provide-io/cryptokit/pkg/codec/hex"
)

var (
	hexCodec    = hex.New()
	base64Codec = base64.New()
)

// HexToBase64 decodes a hex string and returns it Base64-encoded.
func HexToBase64(s string) string {
	return codec.EncodeToString(base64Codec, codec.DecodeString(hexCodec, s))
}

// Base64ToHex decodes a Base64 string and returns it hex-encoded.
func Base64ToHex(s string) string {
	return codec.EncodeToString(hexCodec, codec.DecodeString(base64Codec, s))
}

package input

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dsnet/compress/bzip2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ckerrors "github.com/provide-io/cryptokit/pkg/errors"
)

const sample = "1b37373331363f78\r\n\n7b5a4215415d544115415d5015455447414c155c46155f4058455c5b523f\n"

var sampleLines = []string{"1b37373331363f78", "", "7b5a4215415d544115415d5015455447414c155c46155f4058455c5b523f"}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func gzipped(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write(data)
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func bzipped(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	bw, err := bzip2.NewWriter(&buf, &bzip2.WriterConfig{Level: 9})
	require.NoError(t, err)
	_, err = bw.Write(data)
	require.NoError(t, err)
	require.NoError(t, bw.Close())
	return buf.Bytes()
}

func TestDetect(t *testing.T) {
	assert.Equal(t, CompressionGzip, Detect([]byte{0x1f, 0x8b, 0x08}))
	assert.Equal(t, CompressionBzip2, Detect([]byte("BZh9")))
	assert.Equal(t, CompressionNone, Detect([]byte("1b3")))
	assert.Equal(t, CompressionNone, Detect(nil))
}

func TestReadLines(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{name: "plain", data: []byte(sample)},
		{name: "gzip", data: gzipped(t, []byte(sample))},
		{name: "bzip2", data: bzipped(t, []byte(sample))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lines, err := ReadLines(writeFile(t, "input", tc.data))
			require.NoError(t, err)

			got := make([]string, len(lines))
			for i, line := range lines {
				got[i] = string(line)
			}
			assert.Equal(t, sampleLines, got)
		})
	}
}

func TestReadAll(t *testing.T) {
	data, err := ReadAll(writeFile(t, "input.gz", gzipped(t, []byte(sample))))
	require.NoError(t, err)
	assert.Equal(t, sample, string(data))

	data, err = ReadAll(writeFile(t, "tiny", []byte("a")))
	require.NoError(t, err)
	assert.Equal(t, "a", string(data))
}

func TestReadStdin(t *testing.T) {
	old := Stdin
	t.Cleanup(func() { Stdin = old })

	Stdin = strings.NewReader("from stdin\n")
	data, err := ReadAll("-")
	require.NoError(t, err)
	assert.Equal(t, "from stdin\n", string(data))

	Stdin = strings.NewReader("one\ntwo")
	lines, err := ReadLines("")
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestReadMissingFile(t *testing.T) {
	_, err := ReadAll(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, ckerrors.ErrInputRead)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCorruptGzip(t *testing.T) {
	_, err := ReadAll(writeFile(t, "bad.gz", []byte{0x1f, 0x8b, 0x00}))
	assert.Error(t, err)
}

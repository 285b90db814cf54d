// Package input reads encoded ciphertext from files or stdin. Gzip and
// bzip2 compressed input is recognised by its magic bytes and inflated
// transparently.
package input

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/dsnet/compress/bzip2"

	ckerrors "github.com/provide-io/cryptokit/pkg/errors"
)

// Compression formats recognised by Open
const (
	CompressionNone  = "none"
	CompressionGzip  = "gzip"
	CompressionBzip2 = "bzip2"
)

var (
	gzipMagic  = []byte{0x1f, 0x8b}
	bzip2Magic = []byte("BZh")
)

// maxLineSize bounds a single line handed out by ReadLines
const maxLineSize = 16 << 20

// Stdin is used when the path is empty or "-"
var Stdin io.Reader = os.Stdin

// Open opens path for reading, or stdin for "" and "-", and unwraps any
// compression layer.
func Open(path string) (io.ReadCloser, error) {
	var src io.ReadCloser
	if path == "" || path == "-" {
		src = io.NopCloser(Stdin)
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ckerrors.ErrInputRead, err)
		}
		src = f
	}

	r, err := Decompress(src)
	if err != nil {
		src.Close()
		return nil, err
	}
	return r, nil
}

// Decompress sniffs the first bytes of src and returns a reader yielding
// the decompressed content. Closing it closes src.
func Decompress(src io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReader(src)

	switch Detect(peek(br, 3)) {
	case CompressionGzip:
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("creating gzip reader: %w", err)
		}
		return &stackedCloser{Reader: gr, closers: []io.Closer{gr, src}}, nil
	case CompressionBzip2:
		bz, err := bzip2.NewReader(br, &bzip2.ReaderConfig{})
		if err != nil {
			return nil, fmt.Errorf("creating bzip2 reader: %w", err)
		}
		return &stackedCloser{Reader: bz, closers: []io.Closer{bz, src}}, nil
	default:
		return &stackedCloser{Reader: br, closers: []io.Closer{src}}, nil
	}
}

// Detect names the compression format whose magic bytes prefix head
func Detect(head []byte) string {
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		return CompressionGzip
	case bytes.HasPrefix(head, bzip2Magic):
		return CompressionBzip2
	default:
		return CompressionNone
	}
}

// ReadAll returns the whole (decompressed) content of path
func ReadAll(path string) ([]byte, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ckerrors.ErrInputRead, err)
	}
	return data, nil
}

// ReadLines returns every line of path without its line terminator.
// Empty lines are kept so line numbers match the file.
func ReadLines(path string) ([][]byte, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var lines [][]byte
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := bytes.TrimSuffix(scanner.Bytes(), []byte{'\r'})
		lines = append(lines, bytes.Clone(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ckerrors.ErrInputRead, err)
	}
	return lines, nil
}

func peek(br *bufio.Reader, n int) []byte {
	// A short read just means a short file; Detect copes with fewer bytes.
	head, _ := br.Peek(n)
	return head
}

type stackedCloser struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedCloser) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

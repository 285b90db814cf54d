package logging

import (
	"bytes"
	"io"
	"sync"
)

// PrefixWriter prepends a fixed marker to the start of every line written
// through it. Nothing is buffered: a partial line is passed through at
// once and the next write continues it without a second marker.
type PrefixWriter struct {
	mu      sync.Mutex
	prefix  []byte
	writer  io.Writer
	midLine bool
}

// NewPrefixWriter creates a new PrefixWriter.
func NewPrefixWriter(prefix string, w io.Writer) *PrefixWriter {
	return &PrefixWriter{
		prefix: []byte(prefix),
		writer: w,
	}
}

// Write implements io.Writer.
func (pw *PrefixWriter) Write(p []byte) (int, error) {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	rest := p
	for len(rest) > 0 {
		if !pw.midLine {
			if _, err := pw.writer.Write(pw.prefix); err != nil {
				return len(p) - len(rest), err
			}
			pw.midLine = true
		}

		end := len(rest)
		if i := bytes.IndexByte(rest, '\n'); i >= 0 {
			end = i + 1
			pw.midLine = false
		}
		if _, err := pw.writer.Write(rest[:end]); err != nil {
			return len(p) - len(rest), err
		}
		rest = rest[end:]
	}

	return len(p), nil
}

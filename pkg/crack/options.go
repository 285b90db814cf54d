package crack

import (
	"github.com/hashicorp/go-hclog"
)

// Option configures Encrypt, Decrypt and the brute-force searches
type Option func(*options)

type options struct {
	lineReset bool
	workers   int
	scorer    func([]byte) int
	logger    hclog.Logger
}

func newOptions(opts []Option) *options {
	o := &options{
		scorer: Score,
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLineReset restarts the key cycle at every newline instead of
// continuing it across the whole buffer.
func WithLineReset() Option {
	return func(o *options) {
		o.lineReset = true
	}
}

// WithWorkers bounds how many candidates are evaluated at once.
// Zero or less means one goroutine per candidate.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithScorer replaces Score for ranking candidates
func WithScorer(fn func([]byte) int) Option {
	return func(o *options) {
		if fn != nil {
			o.scorer = fn
		}
	}
}

// WithLogger sets the logger used by the brute-force searches
func WithLogger(logger hclog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

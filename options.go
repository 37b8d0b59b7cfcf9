package forte

import (
	"github.com/rs/zerolog"

	"github.com/alexanderspevak/forte/internal/logio"
)

// Option configures a Forth interpreter; see New.
type Option interface{ apply(f *Forth) }

// Options combines any number of options into one, skipping nils.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	return res
}

// WithLogger directs trace and debug logging to the given logger.
func WithLogger(log zerolog.Logger) Option { return loggerOption(log) }

// WithLogf directs logging through a printf-style function such as
// log.Printf or testing.T.Logf, one call per log line. Trace events are
// still subject to zerolog's global level.
func WithLogf(logfn func(mess string, args ...interface{})) Option {
	return loggerOption(zerolog.New(zerolog.ConsoleWriter{
		Out:          &logio.Writer{Logf: logfn},
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}).Level(zerolog.TraceLevel))
}

// WithStack pushes values onto the stack, bottom first.
func WithStack(values ...int) Option { return stackOption(values) }

var defaultOptions = Options(
	loggerOption(zerolog.Nop()),
)

type options []Option
type loggerOption zerolog.Logger
type stackOption []int

func (opts options) apply(f *Forth) {
	for _, opt := range opts {
		opt.apply(f)
	}
}

func (log loggerOption) apply(f *Forth) {
	f.log = zerolog.Logger(log)
}

func (values stackOption) apply(f *Forth) {
	f.stack = append(f.stack, values...)
}

package logger

import (
	"io"
	"log/slog"
	"os"
)

type options struct {
	level   slog.Level
	json    bool
	output  io.Writer
	attrs   []slog.Attr
	service string
}

// Option configures the logger factory.
type Option func(*options)

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(o *options) { o.level = level }
}

// WithJSONFormatter switches output to JSON records.
func WithJSONFormatter() Option {
	return func(o *options) { o.json = true }
}

// WithTextFormatter switches output to human-readable text records.
func WithTextFormatter() Option {
	return func(o *options) { o.json = false }
}

// WithOutput redirects log output.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithAttr attaches a static attribute to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) { o.attrs = append(o.attrs, attrs...) }
}

// WithDevelopment configures text output at debug level tagged with the
// service name.
func WithDevelopment(service string) Option {
	return func(o *options) {
		o.service = service
		o.json = false
		o.level = slog.LevelDebug
	}
}

// WithProduction configures JSON output at info level tagged with the
// service name.
func WithProduction(service string) Option {
	return func(o *options) {
		o.service = service
		o.json = true
		o.level = slog.LevelInfo
	}
}

// New creates a slog.Logger. Defaults: text format, info level, stdout.
func New(opts ...Option) *slog.Logger {
	o := options{
		level:  slog.LevelInfo,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	handlerOpts := &slog.HandlerOptions{Level: o.level}

	var handler slog.Handler
	if o.json {
		handler = slog.NewJSONHandler(o.output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(o.output, handlerOpts)
	}

	attrs := o.attrs
	if o.service != "" {
		attrs = append([]slog.Attr{slog.String("service", o.service)}, attrs...)
	}
	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}

	return slog.New(handler)
}

// Discard returns a logger that drops all records. Useful as a default for
// components where logging is optional.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

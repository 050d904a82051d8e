package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// WithComponent returns a logger that tags every record with the component name.
	WithComponent(name string) Logger

	Printf(format string, args ...any)
}

type Opts struct {
	Env       string
	SentryUrl string
	Writer    io.Writer
}

type Impl struct {
	*slog.Logger
}

var _ Logger = (*Impl)(nil)

func New(opts Opts) *Impl {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}

	level := slog.LevelInfo
	var zl zerolog.Logger
	if opts.Env == "" || opts.Env == "development" {
		level = slog.LevelDebug
		zl = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})
	} else {
		zl = zerolog.New(w)
	}
	zl = zl.With().Timestamp().Logger()

	handlers := []slog.Handler{
		slogzerolog.Option{Level: level, Logger: &zl}.NewZerologHandler(),
	}

	if opts.SentryUrl != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         opts.SentryUrl,
			Environment: opts.Env,
		})
		if err == nil {
			handlers = append(handlers, slogsentry.Option{Level: slog.LevelError}.NewSentryHandler())
		} else {
			fmt.Fprintf(w, "sentry init failed: %v\n", err)
		}
	}

	return &Impl{Logger: slog.New(slogmulti.Fanout(handlers...))}
}

// NewNop discards everything. Used by tests.
func NewNop() *Impl {
	return &Impl{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func (l *Impl) WithComponent(name string) Logger {
	return &Impl{Logger: l.Logger.With("component", name)}
}

func (l *Impl) Printf(format string, args ...any) {
	l.Logger.Info(fmt.Sprintf(format, args...))
}

package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"
)

// Logger is the process-wide structured logger. It is usable before Init
// (writes JSON to stderr) so packages can log from tests without setup.
var Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Init initializes the global logger for a service binary.
// Development mode uses the human readable console writer.
func Init(serviceName string, isDevelopment bool) {
	var output io.Writer = os.Stdout
	if isDevelopment {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		}
	}
	InitWithWriter(output, serviceName)
}

// InitWithWriter initializes the global logger on an arbitrary writer.
func InitWithWriter(w io.Writer, serviceName string) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	Logger = zerolog.New(w).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()

	log.Logger = Logger
}

// WithContext returns a logger carrying the trace and span ids of the
// active span in ctx, if any.
func WithContext(ctx context.Context) *zerolog.Logger {
	l := Logger.With().Logger()

	sc := trace.SpanFromContext(ctx).SpanContext()
	if sc.IsValid() {
		l = l.With().
			Str("trace_id", sc.TraceID().String()).
			Str("span_id", sc.SpanID().String()).
			Logger()
	}

	return &l
}

func Info(ctx context.Context) *zerolog.Event {
	return WithContext(ctx).Info()
}

func Error(ctx context.Context) *zerolog.Event {
	return WithContext(ctx).Error()
}

func Debug(ctx context.Context) *zerolog.Event {
	return WithContext(ctx).Debug()
}

func Warn(ctx context.Context) *zerolog.Event {
	return WithContext(ctx).Warn()
}

func Fatal(ctx context.Context) *zerolog.Event {
	return WithContext(ctx).Fatal()
}

// SetLevel sets the global log level. Unknown values fall back to info.
func SetLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// Package log is the process-wide leveled logger, backed by zerolog.
//
// Keys and values passed to the *w functions alternate, as in
// Infow("exchange finished", "curve", 3, "secret", y).
package log

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"

	// logTestWriterName selects logTestWriter as the output; tests only.
	logTestWriterName = "log_test_writer"
)

var (
	log zerolog.Logger

	logTestWriter io.Writer

	// panicOnInvalidChars makes the logger panic on a message that is not
	// valid UTF-8. Set from LOG_PANIC_ON_INVALIDCHARS.
	panicOnInvalidChars = os.Getenv("LOG_PANIC_ON_INVALIDCHARS") == "true"
)

func init() {
	// Usable before Init, mostly for tests.
	_ = Init(LogLevelError, "stderr", nil)
}

type invalidCharChecker struct{}

func (invalidCharChecker) Write(p []byte) (int, error) {
	if bytes.Contains(p, []byte(`\ufffd`)) || !utf8.Valid(p) {
		panic(fmt.Sprintf("log line has invalid characters: %q", p))
	}
	return len(p), nil
}

type errorLevelWriter struct {
	io.Writer
}

func (w *errorLevelWriter) Write(p []byte) (int, error) { return len(p), nil }

func (w *errorLevelWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < zerolog.ErrorLevel {
		return len(p), nil
	}
	return w.Writer.Write(p)
}

// Init sets the level and output of the package logger. output is "stdout",
// "stderr" or a file path. When errOutput is not nil, error-level lines are
// also copied there.
func Init(level, output string, errOutput io.Writer) error {
	var out io.Writer
	switch output {
	case "stdout":
		out = os.Stdout
	case "stderr":
		out = os.Stderr
	case logTestWriterName:
		out = logTestWriter
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log output: %w", err)
		}
		out = f
	}
	if output == "stdout" || output == "stderr" {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339Nano,
			FormatLevel: func(i any) string {
				if i == nil {
					return ""
				}
				return strings.ToUpper(fmt.Sprint(i))[:3]
			},
		}
	}

	outputs := []io.Writer{out}
	if errOutput != nil {
		outputs = append(outputs, &errorLevelWriter{Writer: errOutput})
	}
	if panicOnInvalidChars {
		outputs = append(outputs, invalidCharChecker{})
	}

	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}
	log = zerolog.New(zerolog.MultiLevelWriter(outputs...)).
		With().Timestamp().Logger().
		Level(lvl)
	return nil
}

func parseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(level) {
	case LogLevelDebug:
		return zerolog.DebugLevel, nil
	case LogLevelInfo, "":
		return zerolog.InfoLevel, nil
	case LogLevelWarn:
		return zerolog.WarnLevel, nil
	case LogLevelError:
		return zerolog.ErrorLevel, nil
	}
	return zerolog.NoLevel, fmt.Errorf("invalid log level %q", level)
}

// Level returns the current level as a string.
func Level() string { return log.GetLevel().String() }

// Logger returns the underlying zerolog logger.
func Logger() *zerolog.Logger { return &log }

func Debug(args ...any) { log.Debug().Msg(fmt.Sprint(args...)) }
func Info(args ...any)  { log.Info().Msg(fmt.Sprint(args...)) }
func Warn(args ...any)  { log.Warn().Msg(fmt.Sprint(args...)) }

// Error logs err, or a message built from args, at error level.
func Error(args ...any) {
	if len(args) == 1 {
		if err, ok := args[0].(error); ok {
			log.Error().Err(err).Send()
			return
		}
	}
	log.Error().Msg(fmt.Sprint(args...))
}

func Debugf(template string, args ...any) { log.Debug().Msgf(template, args...) }
func Infof(template string, args ...any)  { log.Info().Msgf(template, args...) }
func Warnf(template string, args ...any)  { log.Warn().Msgf(template, args...) }
func Errorf(template string, args ...any) { log.Error().Msgf(template, args...) }

// Fatalf logs at fatal level and exits the process.
func Fatalf(template string, args ...any) { log.Fatal().Msgf(template, args...) }

func Debugw(msg string, keyvalues ...any) { log.Debug().Fields(keyvalues).Msg(msg) }
func Infow(msg string, keyvalues ...any)  { log.Info().Fields(keyvalues).Msg(msg) }
func Warnw(msg string, keyvalues ...any)  { log.Warn().Fields(keyvalues).Msg(msg) }
func Errorw(err error, msg string)        { log.Error().Err(err).Msg(msg) }

package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"userapi/internal/common/constants"
)

// Fields carries structured key=value pairs for a single log line.
type Fields map[string]interface{}

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARNING
	ERROR
	CRITICAL
)

var levelNames = [...]string{
	DEBUG:    "DEBUG",
	INFO:     "INFO",
	WARNING:  "WARNING",
	ERROR:    "ERROR",
	CRITICAL: "CRITICAL",
}

type Logger struct {
	level       LogLevel
	out         *log.Logger
	serviceName string
}

// New builds a logger for the given service. When logDir is non-empty the
// output is duplicated into a size-rotated file under it.
func New(logDir, serviceName, level string) (*Logger, error) {
	writer := io.Writer(os.Stdout)

	if logDir != "" {
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		fileWriter := &lumberjack.Logger{
			Filename:   filepath.Join(logDir, "app.log"),
			MaxSize:    constants.LoggerMaxSize,
			MaxBackups: constants.LoggerMaxBackups,
			MaxAge:     constants.LoggerMaxAge,
			Compress:   true,
		}
		writer = io.MultiWriter(os.Stdout, fileWriter)
	}

	return &Logger{
		level:       parseLevel(level),
		out:         log.New(writer, "", log.LstdFlags),
		serviceName: serviceName,
	}, nil
}

// ShouldLog reports whether level would be emitted. Callers use it to skip
// building expensive field sets for suppressed levels.
func (l *Logger) ShouldLog(level LogLevel) bool {
	return level >= l.level
}

func (l *Logger) Debug(msg string)    { l.emit(DEBUG, msg) }
func (l *Logger) Info(msg string)     { l.emit(INFO, msg) }
func (l *Logger) Warn(msg string)     { l.emit(WARNING, msg) }
func (l *Logger) Error(msg string)    { l.emit(ERROR, msg) }
func (l *Logger) Critical(msg string) { l.emit(CRITICAL, msg) }

func (l *Logger) Debugf(format string, args ...any)    { l.emitf(DEBUG, format, args...) }
func (l *Logger) Infof(format string, args ...any)     { l.emitf(INFO, format, args...) }
func (l *Logger) Warnf(format string, args ...any)     { l.emitf(WARNING, format, args...) }
func (l *Logger) Errorf(format string, args ...any)    { l.emitf(ERROR, format, args...) }
func (l *Logger) Criticalf(format string, args ...any) { l.emitf(CRITICAL, format, args...) }

func (l *Logger) Fatal(msg string) {
	l.emit(CRITICAL, msg)
	os.Exit(1)
}

func (l *Logger) Fatalf(format string, args ...any) {
	l.emitf(CRITICAL, format, args...)
	os.Exit(1)
}

// WithFields returns an entry whose lines end with the given pairs in sorted
// key order. The request trace id is appended automatically when ctx has one.
func (l *Logger) WithFields(ctx context.Context, fields Fields) *Entry {
	return &Entry{
		logger: l,
		ctx:    ctx,
		fields: fields,
	}
}

func (l *Logger) emit(level LogLevel, msg string) {
	l.write(level, nil, msg, nil)
}

func (l *Logger) emitf(level LogLevel, format string, args ...any) {
	l.write(level, nil, fmt.Sprintf(format, args...), nil)
}

// write renders one line: [LEVEL] [service] file:line msg key=value...
// Every exported method reaches it through exactly one shim so the caller
// lookup lands on the user's call site.
func (l *Logger) write(level LogLevel, ctx context.Context, msg string, fields Fields) {
	if level < l.level {
		return
	}

	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(levelNames[level])
	b.WriteByte(']')

	if l.serviceName != "" {
		b.WriteString(" [")
		b.WriteString(l.serviceName)
		b.WriteByte(']')
	}

	if _, file, line, ok := runtime.Caller(3); ok {
		fmt.Fprintf(&b, " %s:%d", filepath.Base(file), line)
	} else {
		b.WriteString(" unknown:0")
	}

	b.WriteByte(' ')
	b.WriteString(msg)

	if ctx != nil {
		if traceID, ok := ctx.Value(constants.TraceIDKey).(string); ok && traceID != "" {
			b.WriteString(" trace_id=")
			b.WriteString(traceID)
		}
	}

	if len(fields) > 0 {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, fields[k])
		}
	}

	l.out.Output(0, b.String())
}

// Entry is a Logger bound to a context and field set.
type Entry struct {
	logger *Logger
	ctx    context.Context
	fields Fields
}

func (e *Entry) Debug(msg string)    { e.emit(DEBUG, msg) }
func (e *Entry) Info(msg string)     { e.emit(INFO, msg) }
func (e *Entry) Warn(msg string)     { e.emit(WARNING, msg) }
func (e *Entry) Error(msg string)    { e.emit(ERROR, msg) }
func (e *Entry) Critical(msg string) { e.emit(CRITICAL, msg) }

func (e *Entry) Debugf(format string, args ...any)    { e.emitf(DEBUG, format, args...) }
func (e *Entry) Infof(format string, args ...any)     { e.emitf(INFO, format, args...) }
func (e *Entry) Warnf(format string, args ...any)     { e.emitf(WARNING, format, args...) }
func (e *Entry) Errorf(format string, args ...any)    { e.emitf(ERROR, format, args...) }
func (e *Entry) Criticalf(format string, args ...any) { e.emitf(CRITICAL, format, args...) }

func (e *Entry) emit(level LogLevel, msg string) {
	e.logger.write(level, e.ctx, msg, e.fields)
}

func (e *Entry) emitf(level LogLevel, format string, args ...any) {
	e.logger.write(level, e.ctx, fmt.Sprintf(format, args...), e.fields)
}

func parseLevel(value string) LogLevel {
	switch strings.TrimSpace(strings.ToUpper(value)) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARNING", "WARN":
		return WARNING
	case "ERROR":
		return ERROR
	case "CRITICAL", "FATAL":
		return CRITICAL
	default:
		return INFO
	}
}

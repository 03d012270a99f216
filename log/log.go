package log

import (
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Logger is the interface for logging.
type Logger interface {
	// Printf prints a formatted message to the log.
	Printf(format string, v ...interface{})

	// Print prints a message to the log.
	Print(v ...interface{})

	// Level returns the logging level.
	Level() Level
}

// Level represents the log level.
type Level int

const (
	// DebugLevel reports every step of an evaluation.
	DebugLevel Level = iota
	// InfoLevel reports evaluation outcomes.
	InfoLevel
	// ErrorLevel reports failures only.
	ErrorLevel
	// DisabledLevel represents that the logger is disabled.
	DisabledLevel
)

var levelNames = map[string]Level{
	"debug":    DebugLevel,
	"info":     InfoLevel,
	"error":    ErrorLevel,
	"disabled": DisabledLevel,
}

func (l Level) String() string {
	for name, level := range levelNames {
		if level == l {
			return name
		}
	}
	return "unknown"
}

var (
	// Debug is a debug-level logger.
	Debug = &logger{level: DebugLevel, tag: "debug: "}
	// Info is an info-level logger.
	Info = &logger{level: InfoLevel, tag: "info: "}
	// Error is an error-level logger.
	Error = &logger{level: ErrorLevel, tag: "error: "}
)

var mu sync.RWMutex

var currentLogger = &defaultLogger{
	level:  ErrorLevel,
	Logger: log.New(os.Stderr, "quadeq: ", 0),
}

type logger struct {
	level Level
	tag   string
}

func getCurrentLogger() *defaultLogger {
	mu.RLock()
	defer mu.RUnlock()
	return currentLogger
}

func (l logger) enabled() (*defaultLogger, bool) {
	cLogger := getCurrentLogger()
	return cLogger, l.level < DisabledLevel && l.level >= cLogger.Level()
}

func (l logger) Printf(format string, v ...interface{}) {
	if cLogger, ok := l.enabled(); ok {
		cLogger.Printf(l.tag+format, v...)
	}
}

func (l logger) Print(v ...interface{}) {
	if cLogger, ok := l.enabled(); ok {
		cLogger.Print(append([]interface{}{l.tag}, v...)...)
	}
}

func (l logger) Level() Level {
	return l.level
}

type defaultLogger struct {
	level Level
	*log.Logger
}

func (l *defaultLogger) Level() Level {
	mu.RLock()
	defer mu.RUnlock()
	return l.level
}

// SetLevel sets the current logging level.
func SetLevel(level Level) {
	mu.Lock()
	currentLogger.level = level
	mu.Unlock()
}

// SetLevelByName sets the current logging level with a name.
// It reports whether the name is known.
func SetLevelByName(name string) bool {
	level, ok := levelNames[strings.ToLower(name)]
	if ok {
		SetLevel(level)
	}
	return ok
}

// SetOutput redirects log output, which defaults to stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	currentLogger.SetOutput(w)
	mu.Unlock()
}

// GetLevel returns the current logging level.
func GetLevel() Level {
	return getCurrentLogger().Level()
}

package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = map[string]LogLevel{
	"debug": DEBUG,
	"info":  INFO,
	"warn":  WARN,
	"error": ERROR,
	"fatal": FATAL,
}

// ParseLevel maps a config string such as "debug" to a LogLevel. Unknown values yield INFO.
func ParseLevel(s string) LogLevel {
	if lvl, ok := levelNames[s]; ok {
		return lvl
	}
	return INFO
}

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case DEBUG:
		return zapcore.DebugLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	case FATAL:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// Logger wraps a zap sugared logger behind the package-level helpers.
type Logger struct {
	level  zap.AtomicLevel
	sugar  *zap.SugaredLogger
	prefix string
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// Config describes how the logger should be initialised.
type Config struct {
	Level      LogLevel
	LogDir     string
	MaxSize    int // megabytes
	MaxAge     int // days
	MaxBackups int
	UseColor   bool
	ShowCaller bool
	Prefix     string
}

// Initialize boots the global logger instance if it has not been created yet.
func Initialize(config Config) error {
	var err error
	once.Do(func() {
		level := zap.NewAtomicLevelAt(config.Level.zapLevel())

		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

		consoleCfg := encCfg
		if config.UseColor {
			consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}

		cores := []zapcore.Core{
			zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(os.Stdout), level),
		}

		// File output with rotation handled by lumberjack.
		if config.LogDir != "" {
			if err = os.MkdirAll(config.LogDir, 0755); err != nil {
				return
			}
			fileWriter := &lumberjack.Logger{
				Filename:   filepath.Join(config.LogDir, "console.log"),
				MaxSize:    config.MaxSize,
				MaxAge:     config.MaxAge,
				MaxBackups: config.MaxBackups,
			}
			cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(fileWriter), level))
		}

		opts := []zap.Option{}
		if config.ShowCaller {
			// Skip the package-level helper and Logger.log frames.
			opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(2))
		}

		defaultLogger = &Logger{
			level:  level,
			sugar:  zap.New(zapcore.NewTee(cores...), opts...).Sugar(),
			prefix: config.Prefix,
		}
	})

	return err
}

// Sync flushes buffered entries.
func Sync() {
	if defaultLogger != nil {
		_ = defaultLogger.sugar.Sync()
	}
}

// log writes the formatted entry to the underlying logger.
func (l *Logger) log(level LogLevel, fields []interface{}, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	if l.prefix != "" {
		message = l.prefix + " " + message
	}

	sugar := l.sugar
	if len(fields) > 0 {
		sugar = sugar.With(fields...)
	}

	switch level {
	case DEBUG:
		sugar.Debug(message)
	case INFO:
		sugar.Info(message)
	case WARN:
		sugar.Warn(message)
	case ERROR:
		sugar.Error(message)
	case FATAL:
		// Exits the process.
		sugar.Fatal(message)
	}
}

// Public helper methods for the default logger.
func Debug(format string, args ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.log(DEBUG, nil, format, args...)
	}
}

func Info(format string, args ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.log(INFO, nil, format, args...)
	} else {
		log.Printf("[INFO] "+format, args...)
	}
}

func Warn(format string, args ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.log(WARN, nil, format, args...)
	} else {
		log.Printf("[WARN] "+format, args...)
	}
}

func Error(format string, args ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.log(ERROR, nil, format, args...)
	} else {
		log.Printf("[ERROR] "+format, args...)
	}
}

func Fatal(format string, args ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.log(FATAL, nil, format, args...)
	} else {
		log.Fatalf("[FATAL] "+format, args...)
	}
}

// WithFields attaches structured fields to the log entry.
func WithFields(fields map[string]interface{}) *LogEntry {
	return &LogEntry{
		fields: fields,
		logger: defaultLogger,
	}
}

// LogEntry represents a structured log entry builder.
type LogEntry struct {
	fields map[string]interface{}
	logger *Logger
}

func (e *LogEntry) Debug(format string, args ...interface{}) {
	e.log(DEBUG, format, args...)
}

func (e *LogEntry) Info(format string, args ...interface{}) {
	e.log(INFO, format, args...)
}

func (e *LogEntry) Warn(format string, args ...interface{}) {
	e.log(WARN, format, args...)
}

func (e *LogEntry) Error(format string, args ...interface{}) {
	e.log(ERROR, format, args...)
}

func (e *LogEntry) Fatal(format string, args ...interface{}) {
	e.log(FATAL, format, args...)
}

func (e *LogEntry) log(level LogLevel, format string, args ...interface{}) {
	if e.logger == nil {
		if level >= WARN {
			log.Printf("[%s] %s %v", levelLabel(level), fmt.Sprintf(format, args...), e.fields)
		}
		return
	}

	// Stable key order keeps console output readable.
	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	kv := make([]interface{}, 0, len(keys)*2)
	for _, k := range keys {
		kv = append(kv, k, e.fields[k])
	}

	e.logger.log(level, kv, format, args...)
}

// Log allows emitting a message with an explicit level via the entry.
func (e *LogEntry) Log(level LogLevel, format string, args ...interface{}) {
	e.log(level, format, args...)
}

func levelLabel(level LogLevel) string {
	for name, lvl := range levelNames {
		if lvl == level {
			return name
		}
	}
	return "info"
}

// SetLevel updates the global logging level.
func SetLevel(level LogLevel) {
	if defaultLogger != nil {
		defaultLogger.level.SetLevel(level.zapLevel())
	}
}

// GetLevel returns the current global logging level.
func GetLevel() LogLevel {
	if defaultLogger == nil {
		return INFO
	}
	switch defaultLogger.level.Level() {
	case zapcore.DebugLevel:
		return DEBUG
	case zapcore.WarnLevel:
		return WARN
	case zapcore.ErrorLevel:
		return ERROR
	case zapcore.FatalLevel:
		return FATAL
	default:
		return INFO
	}
}

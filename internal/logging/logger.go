package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	mu          sync.Mutex
	logger      zerolog.Logger
	initialized bool
)

// ParseLevel maps a level name onto a zerolog level, defaulting to info
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Init configures the global logger. Pretty output is meant for a terminal;
// otherwise one JSON object is written per line.
func Init(level string, pretty bool) {
	InitWithWriter(os.Stderr, level, pretty)
}

// InitWithWriter is Init with an explicit destination
func InitWithWriter(w io.Writer, level string, pretty bool) {
	mu.Lock()
	defer mu.Unlock()

	zerolog.SetGlobalLevel(ParseLevel(level))

	if pretty {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}
	logger = zerolog.New(w).With().Timestamp().Logger()
	log.Logger = logger
	initialized = true
}

// Get returns the global logger, initializing it with defaults if needed
func Get() zerolog.Logger {
	mu.Lock()
	ok := initialized
	mu.Unlock()
	if !ok {
		Init("info", false)
	}

	mu.Lock()
	defer mu.Unlock()
	return logger
}

// With returns the global logger annotated with fields
func With(fields map[string]interface{}) zerolog.Logger {
	return Get().With().Fields(fields).Logger()
}

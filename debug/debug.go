package debug

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"sync"
)

type debug struct {
	Build bool
	Alloc bool
	Patch bool
	Diff  bool
}

var (
	d *debug

	mu     sync.Mutex
	logger *slog.Logger
)

func init() {
	d = &debug{}
	d.Build = boolEnv("JV_DEBUG_BUILD")
	d.Alloc = boolEnv("JV_DEBUG_ALLOC")
	d.Patch = boolEnv("JV_DEBUG_PATCH")
	d.Diff = boolEnv("JV_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Build() bool {
	return d.Build
}
func Alloc() bool {
	return d.Alloc
}
func Patch() bool {
	return d.Patch
}
func Diff() bool {
	return d.Diff
}

// Logger returns the logger used for debug output. Unless replaced with
// SetOutput, it writes text records at debug level to stderr.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = newLogger(os.Stderr)
	}
	return logger
}

// SetOutput redirects debug output to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w)
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// Logf logs a formatted debug message when any debug toggle is on.
func Logf(msg string, args ...any) {
	if !d.Build && !d.Alloc && !d.Patch && !d.Diff {
		return
	}
	Logger().Debug(fmt.Sprintf(msg, args...))
}

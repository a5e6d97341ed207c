package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	enabled bool
	out     io.Writer
	closer  io.Closer
	mu      sync.Mutex
)

// DefaultPath returns the debug log location under the user cache dir.
func DefaultPath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return filepath.Join(cacheDir, "tabula", "debug.log")
}

// Enable turns on debug logging to the specified file, truncating it.
func Enable(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	mu.Lock()
	closeLocked()
	out, closer, enabled = f, f, true
	mu.Unlock()

	Log("Debug logging enabled (%s)", path)
	return nil
}

// EnableWriter sends debug output to w. The caller keeps ownership of w.
func EnableWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	out, enabled = w, true
}

// Close stops debug logging and closes the log file if one was opened.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

func closeLocked() {
	if closer != nil {
		_ = closer.Close()
	}
	out, closer, enabled = nil, nil, false
}

// IsEnabled returns whether debug logging is enabled.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Log writes a debug message if debugging is enabled.
func Log(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if !enabled || out == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(out, "[%s] %s\n", timestamp, msg)
}

// Timed logs the duration of an operation. Usage:
//
//	defer debug.Timed("operation name")()
func Timed(name string) func() {
	if !IsEnabled() {
		return func() {}
	}

	start := time.Now()
	return func() {
		Log("%s took %v", name, time.Since(start))
	}
}

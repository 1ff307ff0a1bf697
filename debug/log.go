package debug

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gbln-format/go-gbln/encode"
	"github.com/gbln-format/go-gbln/ir"
)

var (
	mu     sync.Mutex
	logger = newLogger(os.Stderr)
)

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.DebugLevel,
		Prefix:          "gbln",
	})
}

// SetOutput redirects debug logging to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w)
}

// Logf logs msg with alternating key/value pairs. *ir.Value values are
// rendered as compact GBLN.
func Logf(msg string, keyvals ...any) {
	for i := range keyvals {
		if x, ok := keyvals[i].(*ir.Value); ok {
			if x == nil {
				keyvals[i] = "<nil>"
				continue
			}
			keyvals[i] = encode.Compact(x)
		}
	}
	mu.Lock()
	l := logger
	mu.Unlock()
	l.Debug(msg, keyvals...)
}

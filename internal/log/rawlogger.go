package log

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// RawLogger dumps generated sources before formatting, for debugging the
// generator output independently of the formatter.
type RawLogger interface {
	Log(name string, data []byte)
}

// rawLogger implements RawLogger with thread-safe writes.
type rawLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewRaw creates a new RawLogger. If writer is nil, returns a no-op logger.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w}
}

// Log writes a header line with timestamp, file name and size followed by the
// raw content. Concurrent calls never interleave.
func (r *rawLogger) Log(name string, data []byte) {
	if r.w == nil {
		return
	}

	header := fmt.Sprintf("%s ==> %s: %d bytes\n",
		time.Now().Format("2006/01/02 15:04:05"),
		name,
		len(data))

	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = io.WriteString(r.w, header)
	_, _ = r.w.Write(data)
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, _ = io.WriteString(r.w, "\n")
	}
}

package log

import (
	"bytes"
	"strings"
	"sync"
)

// CaptureBuffer is a concurrency-safe buffer that receives log output
// during tests.
type CaptureBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (c *CaptureBuffer) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Write(p)
}

// String returns everything logged so far.
func (c *CaptureBuffer) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

// Lines returns the logged output split into non-empty lines, one JSON
// object per line.
func (c *CaptureBuffer) Lines() []string {
	var lines []string
	for _, l := range strings.Split(c.String(), "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// Capture installs a buffer-backed JSON logger at the given level and
// returns the buffer together with a function restoring the previous
// logger.
func Capture(level string) (*CaptureBuffer, func()) {
	mu.RLock()
	prev := logger
	mu.RUnlock()

	buf := &CaptureBuffer{}
	Configure(buf, level, false)

	return buf, func() {
		mu.Lock()
		logger = prev
		mu.Unlock()
	}
}

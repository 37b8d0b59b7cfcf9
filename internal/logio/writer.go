package logio

import (
	"bytes"
	"sync"
)

// Writer implements an io.Writer around a printf-style logging function,
// such as log.Printf or testing.T.Logf.
type Writer struct {
	Logf func(mess string, args ...interface{})

	mu  sync.Mutex
	buf bytes.Buffer
}

// Write buffers p, then passes every completed line through Logf, without
// its trailing line feed. Always consumes all of p.
func (lw *Writer) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.buf.Write(p)
	lw.flushLines(false)
	return len(p), nil
}

// Sync passes any final partial line through Logf.
func (lw *Writer) Sync() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.flushLines(true)
	return nil
}

// Close calls Sync.
func (lw *Writer) Close() error {
	return lw.Sync()
}

func (lw *Writer) flushLines(all bool) {
	for lw.buf.Len() > 0 {
		line := lw.buf.Bytes()
		i := bytes.IndexByte(line, '\n')
		if i < 0 && !all {
			break
		} else if i < 0 {
			i = len(line)
		}
		if lw.Logf != nil {
			lw.Logf("%s", bytes.TrimRight(line[:i], "\r"))
		}
		lw.buf.Next(i + 1)
	}
}

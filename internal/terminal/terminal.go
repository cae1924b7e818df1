// Package terminal provides a non-blocking source of input lines read from
// a reader (typically os.Stdin) on a background goroutine.
package terminal

import (
	"bufio"
	"io"
)

// Terminal reads lines from an io.Reader on a dedicated goroutine and makes
// them available for non-blocking polling.
type Terminal struct {
	lines chan string
	done  chan struct{}
}

// New starts a goroutine scanning r line by line and returns a Terminal
// that buffers those lines for Read to drain.
func New(r io.Reader) *Terminal {
	t := &Terminal{
		lines: make(chan string, 64),
		done:  make(chan struct{}),
	}
	go t.run(r)
	return t
}

func (t *Terminal) run(r io.Reader) {
	defer close(t.done)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		t.lines <- scanner.Text()
	}
	close(t.lines)
}

// Read returns the next buffered line and true, or "" and false if no line
// is currently available. It never blocks.
func (t *Terminal) Read() (string, bool) {
	select {
	case line, ok := <-t.lines:
		if !ok {
			return "", false
		}
		return line, true
	default:
		return "", false
	}
}

// Closed reports whether the underlying reader has reached end-of-stream
// and every buffered line has been drained.
func (t *Terminal) Closed() bool {
	select {
	case <-t.done:
		return len(t.lines) == 0
	default:
		return false
	}
}

package crikey

import (
	"bufio"
	stderrors "errors"
	"io"
	"log"
	"net"
	"time"

	"github.com/pkg/errors"
)

// pollDeadline is the short read deadline used to simulate a non-blocking
// read on a net.Conn. Go has no portable would-block error; a timeout-class
// error on this short a deadline stands in for "no data available yet".
const pollDeadline = 10 * time.Millisecond

// Connection is a line-framed duplex over an injected byte stream. It reads
// one Message per Poll call and writes Commands (or raw lines) terminated
// with CRLF.
type Connection struct {
	reader *bufio.Reader
	writer io.Writer
	deadliner interface {
		SetReadDeadline(time.Time) error
	}
	logger  *log.Logger
	partial string // bytes read so far toward the next line, across timeouts
}

// NewConnection builds a Connection over rw. If rw also implements a
// SetReadDeadline method (as net.Conn does), Poll uses it to drive
// non-blocking reads; otherwise Poll blocks until a line or error arrives.
// A nil logger defaults to log.Default().
func NewConnection(rw io.ReadWriter, logger *log.Logger) *Connection {
	if logger == nil {
		logger = log.Default()
	}
	c := &Connection{reader: bufio.NewReader(rw), writer: rw, logger: logger}
	if d, ok := rw.(interface {
		SetReadDeadline(time.Time) error
	}); ok {
		c.deadliner = d
	}
	return c
}

// Poll attempts to read and parse one line.
//
//   - A complete line that parses successfully returns the decoded Message.
//   - A complete line that fails to parse is dropped (logged) and Poll
//     returns (nil, nil) — framing is not disturbed, so the next call reads
//     the following line.
//   - If no data is currently available (the injected reader reports a
//     timeout), Poll returns (nil, nil).
//   - End-of-stream or any other read error is fatal and is returned.
func (c *Connection) Poll() (*Message, error) {
	if c.deadliner != nil {
		if err := c.deadliner.SetReadDeadline(time.Now().Add(pollDeadline)); err != nil {
			return nil, errors.Wrap(err, "connection: set read deadline")
		}
	}

	chunk, err := c.reader.ReadString('\n')
	c.partial += chunk
	if err != nil {
		if isTimeout(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "connection: read")
	}

	line := c.partial
	c.partial = ""

	msg, perr := ParseMessage(line)
	if perr != nil {
		c.logger.Printf("connection: dropping unparseable line %q: %v", line, perr)
		return nil, nil
	}
	return &msg, nil
}

// Send serializes cmd to its wire form and writes it followed by CRLF.
func (c *Connection) Send(cmd Command) error {
	return c.SendRaw(cmd.String())
}

// SendRaw writes line verbatim, followed by CRLF.
func (c *Connection) SendRaw(line string) error {
	_, err := io.WriteString(c.writer, line+"\r\n")
	if err != nil {
		return errors.Wrap(err, "connection: write")
	}
	return nil
}

func isTimeout(err error) bool {
	var netErr net.Error
	return stderrors.As(err, &netErr) && netErr.Timeout()
}

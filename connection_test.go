package crikey

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// pipeConn adapts an io.Pipe pair into a single io.ReadWriter, without a
// SetReadDeadline method, for tests that exercise the blocking-read path.
type pipeConn struct {
	r *io.PipeReader
	w *io.PipeWriter
}

func (p *pipeConn) Read(b []byte) (int, error)  { return p.r.Read(b) }
func (p *pipeConn) Write(b []byte) (int, error) { return p.w.Write(b) }

func TestConnectionPollParsesLine(t *testing.T) {
	pr, pw := io.Pipe()
	conn := NewConnection(&pipeConn{r: pr, w: new(io.PipeWriter)}, nil)

	go func() {
		_, _ = pw.Write([]byte(":irc.example.org 001 spudly :Welcome\r\n"))
	}()

	msg, err := conn.Poll()
	require.NoError(t, err)
	require.NotNil(t, msg)
	require.Equal(t, ReplyWelcome, msg.Body.Reply.Type)
}

func TestConnectionPollDropsUnparseableLine(t *testing.T) {
	pr, pw := io.Pipe()
	conn := NewConnection(&pipeConn{r: pr, w: new(io.PipeWriter)}, nil)

	go func() {
		_, _ = pw.Write([]byte(":bad\r\n"))
	}()

	msg, err := conn.Poll()
	require.NoError(t, err)
	require.Nil(t, msg)
}

func TestConnectionSendWritesCRLF(t *testing.T) {
	var buf bytes.Buffer
	conn := NewConnection(struct {
		io.Reader
		io.Writer
	}{Reader: bytes.NewReader(nil), Writer: &buf}, nil)

	require.NoError(t, conn.Send(NewNick("spudly")))
	require.Equal(t, "NICK spudly\r\n", buf.String())

	require.NoError(t, conn.SendRaw("PING :keepalive"))
	require.Equal(t, "NICK spudly\r\nPING :keepalive\r\n", buf.String())
}

// deadlineReader implements SetReadDeadline but never has data ready within
// the deadline, exercising Poll's "no data" path.
type deadlineReader struct {
	deadline time.Time
}

func (d *deadlineReader) SetReadDeadline(t time.Time) error { d.deadline = t; return nil }
func (d *deadlineReader) Read(p []byte) (int, error) {
	time.Sleep(pollDeadline * 2)
	return 0, errTimeout{}
}
func (d *deadlineReader) Write(p []byte) (int, error) { return len(p), nil }

type errTimeout struct{}

func (errTimeout) Error() string   { return "i/o timeout" }
func (errTimeout) Timeout() bool   { return true }
func (errTimeout) Temporary() bool { return true }

func TestConnectionPollTimeoutReturnsNil(t *testing.T) {
	conn := NewConnection(&deadlineReader{}, nil)
	msg, err := conn.Poll()
	require.NoError(t, err)
	require.Nil(t, msg)
}

/*
Package ircdebug contains helper functions for tracing the messages crikey
exchanges with a server, useful while developing against a new server or
chasing a protocol-level bug.
*/
package ircdebug

import (
	"bytes"
	"io"
	"strings"

	"github.com/crikeyirc/crikey"
)

// WriteTo returns a new io.ReadWriteCloser that copies all reads/writes for
// rwc to w, one decoded line at a time. Each traced line is prefixed with
// inPrefix or outPrefix and, when the line parses as a Message, annotated
// with its Command kind or Reply type — e.g. "<- [PRIVMSG] :nick!user@host
// PRIVMSG #chan :hi". Lines that fail to parse are traced unannotated.
// This is mainly useful while developing an IRC client like a bot, e.g. for
// writing to os.Stderr or a file.
// todo: it's not safe for concurrent usage, so traced lines are sometimes
// interleaved between a connection's reads and writes.
func WriteTo(w io.Writer, rwc io.ReadWriteCloser, outPrefix string, inPrefix string) io.ReadWriteCloser {
	return &debugConn{
		ReadWriteCloser: rwc,
		r:               io.TeeReader(rwc, &lineAnnotator{w: w, prefix: inPrefix}),
		w:               io.MultiWriter(rwc, &lineAnnotator{w: w, prefix: outPrefix}),
	}
}

type debugConn struct {
	io.ReadWriteCloser
	r io.Reader
	w io.Writer
}

func (dc *debugConn) Read(p []byte) (int, error) {
	return dc.r.Read(p)
}
func (dc *debugConn) Write(p []byte) (int, error) {
	return dc.w.Write(p)
}

// lineAnnotator buffers bytes until a full CRLF-terminated line is seen,
// then writes the line to w prefixed with its tag and, when the line
// decodes, its Message kind. It always reports the full input as written so
// that it can sit behind an io.MultiWriter or io.TeeReader without causing a
// short-write error on its sibling.
type lineAnnotator struct {
	w      io.Writer
	prefix string
	buf    []byte
}

func (la *lineAnnotator) Write(p []byte) (int, error) {
	la.buf = append(la.buf, p...)
	for {
		idx := bytes.IndexByte(la.buf, '\n')
		if idx < 0 {
			break
		}
		line := la.buf[:idx+1]
		la.buf = la.buf[idx+1:]
		if _, err := io.WriteString(la.w, la.prefix+annotation(line)+string(line)); err != nil {
			return len(p), err
		}
	}
	return len(p), nil
}

// annotation returns a "[KIND] " tag describing line's decoded Message, or
// "" if line does not parse as one.
func annotation(line []byte) string {
	msg, err := crikey.ParseMessage(strings.TrimRight(string(line), "\r\n"))
	if err != nil {
		return ""
	}
	switch {
	case msg.Body.Command != nil:
		return "[" + msg.Body.Command.Kind + "] "
	case msg.Body.Reply != nil:
		return "[" + msg.Body.Reply.Type.String() + "] "
	}
	return ""
}

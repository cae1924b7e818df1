// Package irctest provides a mock IRC server for exercising crikey's
// Connection against a real duplex byte stream rather than a mocked
// io.ReadWriter.
package irctest

import (
	"bufio"
	"io"
	"strings"
)

// NewServer creates a mock IRC server. The returned Server implements
// io.ReadWriter so it can be passed directly to crikey.NewConnection: Read
// delivers bytes queued by WriteString, and Write captures bytes the
// client under test sends (drained via Lines).
func NewServer() *Server {
	s := &Server{}
	s.sendReader, s.sendWriter = io.Pipe()
	s.recvReader, s.recvWriter = io.Pipe()
	s.lines = make(chan string, 16)
	go s.scan()
	return s
}

// Server is one end of a mock client/server pipe pair.
type Server struct {
	sendReader *io.PipeReader
	sendWriter *io.PipeWriter

	recvReader *io.PipeReader
	recvWriter *io.PipeWriter

	lines chan string
}

// Read implements io.Reader: delivers the next bytes queued by WriteString.
func (s *Server) Read(p []byte) (int, error) {
	return s.sendReader.Read(p)
}

// Write implements io.Writer: captures bytes written by the client under
// test. Complete lines become available via Lines.
func (s *Server) Write(p []byte) (int, error) {
	return s.recvWriter.Write(p)
}

// Close releases both pipe halves.
func (s *Server) Close() error {
	_ = s.sendWriter.Close()
	_ = s.recvWriter.Close()
	return nil
}

// WriteString delivers str to the client under test, appending a CRLF
// terminator if not already present. It blocks until the client reads it,
// since the underlying pipe is unbuffered; call it from its own goroutine
// in a test driving a blocking read loop.
func (s *Server) WriteString(str string) error {
	if !strings.HasSuffix(str, "\r\n") {
		str += "\r\n"
	}
	_, err := s.sendWriter.Write([]byte(str))
	return err
}

// Lines returns the channel of complete lines the client under test has
// written, CRLF stripped.
func (s *Server) Lines() <-chan string {
	return s.lines
}

func (s *Server) scan() {
	scanner := bufio.NewScanner(s.recvReader)
	for scanner.Scan() {
		s.lines <- strings.TrimRight(scanner.Text(), "\r")
	}
	close(s.lines)
}

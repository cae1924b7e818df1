package terminal

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReadDrainsLines(t *testing.T) {
	term := New(strings.NewReader("hello\nworld\n"))

	require.Eventually(t, func() bool {
		line, ok := term.Read()
		return ok && line == "hello"
	}, time.Second, time.Millisecond)

	line, ok := term.Read()
	require.True(t, ok)
	require.Equal(t, "world", line)
}

func TestReadEmptyIsNonBlocking(t *testing.T) {
	term := New(strings.NewReader(""))
	_, ok := term.Read()
	require.False(t, ok)
}

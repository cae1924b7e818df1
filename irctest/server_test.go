package irctest

import (
	"testing"
	"time"

	"github.com/crikeyirc/crikey"
	"github.com/stretchr/testify/require"
)

func TestServerRoundTrip(t *testing.T) {
	srv := NewServer()
	defer srv.Close()

	conn := crikey.NewConnection(srv, nil)

	go func() {
		require.NoError(t, srv.WriteString(":irc.example.org 001 spudly :Welcome"))
	}()

	var msg *crikey.Message
	require.Eventually(t, func() bool {
		m, err := conn.Poll()
		require.NoError(t, err)
		if m != nil {
			msg = m
			return true
		}
		return false
	}, 2*time.Second, 5*time.Millisecond)

	require.NotNil(t, msg.Body.Reply)
	require.Equal(t, crikey.ReplyWelcome, msg.Body.Reply.Type)

	require.NoError(t, conn.Send(crikey.NewNick("spudly")))
	select {
	case line := <-srv.Lines():
		require.Equal(t, "NICK spudly", line)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for client line")
	}
}

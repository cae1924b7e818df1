package dispatcher

import (
	"testing"

	"github.com/crikeyirc/crikey"
	"github.com/stretchr/testify/require"
)

func TestCommandListenerMatch(t *testing.T) {
	d := New()
	var got crikey.Command
	calls := 0
	d.RegisterCommandListener("PING", func(c crikey.Command) {
		got = c
		calls++
	})

	d.HandleCommand(crikey.NewPing("irc.example.org"))

	require.Equal(t, 1, calls)
	require.Equal(t, "irc.example.org", got.To)
}

func TestCommandListenerNoMatch(t *testing.T) {
	d := New()
	calls := 0
	d.RegisterCommandListener("PING", func(crikey.Command) { calls++ })

	d.HandleCommand(crikey.NewQuit("bye"))

	require.Equal(t, 0, calls)
}

func TestReplyListenerRuns(t *testing.T) {
	d := New()
	calls := 0
	d.RegisterReplyListener(func(crikey.Reply) bool {
		calls++
		return true
	})

	d.HandleReply(crikey.Reply{Type: crikey.ReplyWelcome})

	require.Equal(t, 1, calls)
}

func TestReplyListenerPersists(t *testing.T) {
	d := New()
	calls := 0
	d.RegisterReplyListener(func(crikey.Reply) bool {
		calls++
		return true
	})

	d.HandleReply(crikey.Reply{Type: crikey.ReplyWelcome})
	d.HandleReply(crikey.Reply{Type: crikey.ReplyYourHost})

	require.Equal(t, 2, calls)
}

func TestReplyListenerUnregistersItself(t *testing.T) {
	d := New()
	calls := 0
	d.RegisterReplyListener(func(crikey.Reply) bool {
		calls++
		return false
	})

	d.HandleReply(crikey.Reply{Type: crikey.ReplyWelcome})
	d.HandleReply(crikey.Reply{Type: crikey.ReplyYourHost})

	require.Equal(t, 1, calls)
}

package auth

import (
	"testing"

	"github.com/crikeyirc/crikey"
	"github.com/stretchr/testify/require"
)

func TestCommandsWithoutPassword(t *testing.T) {
	nick, err := crikey.ParseNickname("spudly")
	require.NoError(t, err)
	user, err := crikey.ParseUsername("spud")
	require.NoError(t, err)

	tok := Token{Nickname: nick, Username: user, Mode: 0, Realname: "Spud Boy"}
	cmds := tok.Commands()

	require.Len(t, cmds, 2)
	require.Equal(t, "NICK spudly", cmds[0].String())
	require.Equal(t, "USER spud 0 * :Spud Boy", cmds[1].String())
}

func TestCommandsWithPassword(t *testing.T) {
	nick, err := crikey.ParseNickname("spudly")
	require.NoError(t, err)
	user, err := crikey.ParseUsername("spud")
	require.NoError(t, err)

	tok := Token{Nickname: nick, Username: user, Mode: 8, Realname: "Spud Boy", Password: "sekrit"}
	cmds := tok.Commands()

	require.Len(t, cmds, 3)
	require.Equal(t, "PASS sekrit", cmds[0].String())
	require.Equal(t, "NICK spudly", cmds[1].String())
	require.Equal(t, "USER spud 8 * :Spud Boy", cmds[2].String())
}

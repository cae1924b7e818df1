package crikey

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSenderServer(t *testing.T) {
	s, err := ParseSender("irc.example.org")
	require.NoError(t, err)
	require.Equal(t, SenderServer, s.Kind)
	require.Equal(t, "irc.example.org", s.String())
}

func TestParseSenderBareNick(t *testing.T) {
	s, err := ParseSender("spudly")
	require.NoError(t, err)
	require.Equal(t, SenderUser, s.Kind)
	require.False(t, s.HasUsername())
	require.False(t, s.HasHost())
	require.Equal(t, "spudly", s.String())
}

func TestParseSenderNickHost(t *testing.T) {
	s, err := ParseSender("spudly@example.org")
	require.NoError(t, err)
	require.True(t, s.HasHost())
	require.False(t, s.HasUsername())
	require.Equal(t, "spudly@example.org", s.String())
}

func TestParseSenderNickUserHost(t *testing.T) {
	s, err := ParseSender("spudly!potato@example.org")
	require.NoError(t, err)
	require.True(t, s.HasUsername())
	require.True(t, s.HasHost())
	require.Equal(t, "spudly!potato@example.org", s.String())
}

func TestParseSenderMissingHost(t *testing.T) {
	_, err := ParseSender("spudly!potato")
	require.Error(t, err)
}

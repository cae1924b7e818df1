package crikey

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseNickname(t *testing.T) {
	n, err := ParseNickname("spudly-9")
	require.NoError(t, err)
	require.Equal(t, "spudly-9", n.String())

	_, err = ParseNickname("9spudly")
	require.Error(t, err)

	_, err = ParseNickname("")
	require.Error(t, err)

	n2, err := ParseNickname("[square]")
	require.NoError(t, err)
	require.Equal(t, "[square]", n2.String())
}

func TestNicknameIs(t *testing.T) {
	n, err := ParseNickname("Spudly")
	require.NoError(t, err)
	require.True(t, n.Is("spudly"))
	require.False(t, n.Is("other"))
}

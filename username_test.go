package crikey

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseUsername(t *testing.T) {
	u, err := ParseUsername("spudly")
	require.NoError(t, err)
	require.Equal(t, "spudly", u.String())

	_, err = ParseUsername("")
	require.Error(t, err)

	_, err = ParseUsername("has space")
	require.Error(t, err)

	_, err = ParseUsername("has@at")
	require.Error(t, err)
}

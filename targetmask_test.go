package crikey

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTargetMask(t *testing.T) {
	m, err := ParseTargetMask("#*.example.org")
	require.NoError(t, err)
	require.Equal(t, HostMaskKind, m.Kind)
	require.Equal(t, "#*.example.org", m.String())

	m2, err := ParseTargetMask("$*.example.com")
	require.NoError(t, err)
	require.Equal(t, ServerMaskKind, m2.Kind)

	_, err = ParseTargetMask("#nodomain")
	require.Error(t, err)

	_, err = ParseTargetMask("#*.*")
	require.Error(t, err, "final label must not carry a wildcard")

	_, err = ParseTargetMask("%bad")
	require.Error(t, err)
}

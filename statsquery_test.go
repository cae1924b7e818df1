package crikey

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStatsQuery(t *testing.T) {
	q, err := ParseStatsQuery("l")
	require.NoError(t, err)
	require.Equal(t, StatsLinks, q.Kind)
	require.Equal(t, "l", q.String())

	q2, err := ParseStatsQuery("z")
	require.NoError(t, err)
	require.Equal(t, StatsUnknown, q2.Kind)
	require.Equal(t, "z", q2.String())

	_, err = ParseStatsQuery("lo")
	require.Error(t, err)

	_, err = ParseStatsQuery("!")
	require.Error(t, err)
}

package crikey

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKeywordListEmpty(t *testing.T) {
	list, err := ParseKeywordList("", ParseNickname)
	require.NoError(t, err)
	require.Len(t, list, 0)
}

func TestParseKeywordListMultiple(t *testing.T) {
	list, err := ParseKeywordList("spudly,potato,carrot", ParseNickname)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "spudly,potato,carrot", list.String())
}

func TestParseKeywordListRejectsEmptyElement(t *testing.T) {
	_, err := ParseKeywordList("spudly,,carrot", ParseNickname)
	require.Error(t, err)

	_, err = ParseKeywordList("spudly,", ParseNickname)
	require.Error(t, err)
}

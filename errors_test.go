package crikey

import (
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestIsParseError(t *testing.T) {
	_, err := ParseNickname("")
	require.True(t, IsParseError(err, "Nickname"))
	require.False(t, IsParseError(err, "Username"))
	require.True(t, IsParseError(err, ""))
}

func TestIsParseErrorThroughWrap(t *testing.T) {
	_, err := ParseNickname("")
	wrapped := pkgerrors.Wrap(err, "registering")
	require.True(t, IsParseError(wrapped, "Nickname"))
}

func TestIsParseErrorFalseForOtherErrors(t *testing.T) {
	require.False(t, IsParseError(pkgerrors.New("boom"), ""))
}

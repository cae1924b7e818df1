package crikey

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRecipientChannel(t *testing.T) {
	r, err := ParseRecipient("#general")
	require.NoError(t, err)
	require.Equal(t, RecipientChannelKind, r.Kind)
	require.Equal(t, "#general", r.String())
}

func TestParseRecipientNickname(t *testing.T) {
	r, err := ParseRecipient("spudly")
	require.NoError(t, err)
	require.Equal(t, RecipientNicknameKind, r.Kind)
	require.Equal(t, "spudly", r.String())
}

func TestParseRecipientTargetMask(t *testing.T) {
	r, err := ParseRecipient("#*.example.org")
	require.NoError(t, err)
	require.Equal(t, RecipientTargetMaskKind, r.Kind)
}

func TestParseRecipientNicknameUserHost(t *testing.T) {
	r, err := ParseRecipient("spudly!potato@example.org")
	require.NoError(t, err)
	require.Equal(t, RecipientNicknameUserHostKind, r.Kind)
	require.Equal(t, "spudly!potato@example.org", r.String())
}

func TestParseRecipientUserHostServername(t *testing.T) {
	r, err := ParseRecipient("potato%example.org@irc.example.net")
	require.NoError(t, err)
	require.Equal(t, RecipientUserHostServernameKind, r.Kind)
}

func TestParseRecipientUserHost(t *testing.T) {
	r, err := ParseRecipient("potato%example.org")
	require.NoError(t, err)
	require.Equal(t, RecipientUserHostKind, r.Kind)
}

func TestParseRecipientUserServername(t *testing.T) {
	r, err := ParseRecipient("potato@irc.example.net")
	require.NoError(t, err)
	require.Equal(t, RecipientUserServernameKind, r.Kind)
}

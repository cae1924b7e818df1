package crikey

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, verb, wire string) Command {
	t.Helper()
	params, err := ParseMessageParams(wire)
	require.NoError(t, err)
	cmd, err := ParseCommand(verb, params)
	require.NoError(t, err)
	gotVerb, gotParams := cmd.Render()
	require.Equal(t, verb, gotVerb)
	require.Equal(t, wire, gotParams.String())
	return cmd
}

func TestCommandPass(t *testing.T) {
	cmd := roundTrip(t, "PASS", "secretpasswordhere")
	require.Equal(t, "secretpasswordhere", cmd.Password)
}

func TestCommandNick(t *testing.T) {
	cmd := roundTrip(t, "NICK", "Wiz")
	require.Equal(t, Nickname("Wiz"), cmd.Nickname)
}

func TestCommandUser(t *testing.T) {
	cmd := roundTrip(t, "USER", "guest 8 * :Ronnie Reagan")
	require.Equal(t, Username("guest"), cmd.Username)
	require.Equal(t, uint8(8), cmd.Mode)
	require.Equal(t, "Ronnie Reagan", cmd.Realname)
}

func TestCommandJoinSingle(t *testing.T) {
	cmd := roundTrip(t, "JOIN", "#foo-bar")
	require.Len(t, cmd.Channels, 1)
	require.Equal(t, "#foo-bar", cmd.Channels[0].String())
}

func TestCommandJoinWithKeys(t *testing.T) {
	cmd := roundTrip(t, "JOIN", "#foo,#bar fubar,foobar")
	require.Len(t, cmd.Channels, 2)
	require.Len(t, cmd.Keys, 2)
}

func TestCommandJoinZero(t *testing.T) {
	cmd := roundTrip(t, "JOIN", "0")
	require.True(t, cmd.JoinAll)
}

func TestCommandChannelMode(t *testing.T) {
	params, err := ParseMessageParams("#foobar +o Kilroy")
	require.NoError(t, err)
	cmd, err := ParseCommand("MODE", params)
	require.NoError(t, err)
	require.True(t, cmd.IsChannelMode)
	require.Equal(t, "#foobar", cmd.Channel.String())
	require.Equal(t, "+o Kilroy", cmd.Modes)

	verb, rendered := cmd.Render()
	require.Equal(t, "MODE", verb)
	require.Equal(t, "#foobar +o Kilroy", rendered.String())
}

func TestCommandUserMode(t *testing.T) {
	params, err := ParseMessageParams("WiZ -w")
	require.NoError(t, err)
	cmd, err := ParseCommand("MODE", params)
	require.NoError(t, err)
	require.False(t, cmd.IsChannelMode)
	require.Equal(t, Nickname("WiZ"), cmd.Nickname)
	require.Equal(t, "-w", cmd.Modes)
}

func TestCommandTopicQueryVsSet(t *testing.T) {
	query := roundTrip(t, "TOPIC", "#test")
	require.False(t, query.HasTopic)

	set := roundTrip(t, "TOPIC", "#test :New topic here")
	require.True(t, set.HasTopic)
	require.Equal(t, "New topic here", set.Topic)
}

func TestCommandPrivmsg(t *testing.T) {
	cmd := roundTrip(t, "PRIVMSG", "Angel,Wiz :Hello everyone!")
	require.Len(t, cmd.Recipients, 2)
	require.Equal(t, "Hello everyone!", cmd.Text)
}

func TestCommandStats(t *testing.T) {
	cmd := roundTrip(t, "STATS", "m irc.example.org")
	require.True(t, cmd.HasStatsQuery)
	require.Equal(t, StatsCommands, cmd.StatsQuery.Kind)
	require.Equal(t, "irc.example.org", cmd.Target)
}

func TestCommandLinksTwoArg(t *testing.T) {
	cmd := roundTrip(t, "LINKS", "*.edu *.bu.edu")
	require.Equal(t, "*.edu", cmd.Target)
	require.Equal(t, "*.bu.edu", cmd.Mask)
}

func TestCommandWhowas(t *testing.T) {
	cmd := roundTrip(t, "WHOWAS", "Wiz,Angel 10")
	require.Len(t, cmd.Nicknames, 2)
	require.True(t, cmd.HasCount)
	require.Equal(t, uint16(10), cmd.Count)
}

func TestCommandPingOneArg(t *testing.T) {
	cmd := roundTrip(t, "PING", "irc.example.org")
	require.True(t, cmd.HasTo)
	require.False(t, cmd.HasFrom)
}

func TestCommandUserhostSpaceSeparated(t *testing.T) {
	params, err := ParseMessageParams("Wiz Michael syrk")
	require.NoError(t, err)
	cmd, err := ParseCommand("USERHOST", params)
	require.NoError(t, err)
	require.Len(t, cmd.Nicknames, 3)
	_, rendered := cmd.Render()
	require.Equal(t, "Wiz Michael syrk", rendered.String())
}

func TestCommandOperAndSquit(t *testing.T) {
	cmd := roundTrip(t, "OPER", "AzureDiamond hunter2")
	require.Equal(t, "AzureDiamond", cmd.Name)
	require.Equal(t, "hunter2", cmd.Password)

	sq := roundTrip(t, "SQUIT", "tolsun.oulu.fi :Bad Link")
	require.Equal(t, "tolsun.oulu.fi", sq.Server)
}

func TestCommandUnknownVerbRejected(t *testing.T) {
	params, err := ParseMessageParams("")
	require.NoError(t, err)
	_, err = ParseCommand("BOGUS", params)
	require.Error(t, err)
}

func TestCommandArityOutOfRangeRejected(t *testing.T) {
	params, err := ParseMessageParams("too many extra params here for pass")
	require.NoError(t, err)
	_, err = ParseCommand("PASS", params)
	require.Error(t, err)
}

// Package auth holds the registration token consumed to synthesize the
// PASS/NICK/USER commands sent at connection start.
package auth

import "github.com/crikeyirc/crikey"

// Token is a plain record of the fields needed to register with a server.
// Password is optional; a zero-value (empty) Password means no PASS
// command is sent.
type Token struct {
	Nickname crikey.Nickname
	Username crikey.Username
	Mode     uint8
	Realname string
	Password string
}

// Commands renders the registration command sequence: PASS (if Password is
// set), then NICK, then USER.
func (t Token) Commands() []crikey.Command {
	cmds := make([]crikey.Command, 0, 3)
	if t.Password != "" {
		cmds = append(cmds, crikey.NewPass(t.Password))
	}
	cmds = append(cmds, crikey.NewNick(t.Nickname))
	cmds = append(cmds, crikey.NewUser(t.Username, t.Mode, t.Realname))
	return cmds
}

package crikey

import "strings"

// SenderKind distinguishes the two Sender shapes.
type SenderKind int

const (
	SenderUser SenderKind = iota
	SenderServer
)

// Sender is the optional ":"-introduced originator of a message: either a
// server or a user, optionally carrying username/host detail.
type Sender struct {
	Kind     SenderKind
	Server   Servername
	Nickname Nickname
	Username Username // set only when present
	Host     Host
	hasUser  bool
	hasHost  bool
}

// HasUsername reports whether the user-shaped Sender carried a username.
func (s Sender) HasUsername() bool { return s.hasUser }

// HasHost reports whether the user-shaped Sender carried a host.
func (s Sender) HasHost() bool { return s.hasHost }

// ParseSender disambiguates raw as a Server or a User, per the precedence
// rule: if the text contains '.' and parses as a Servername, it is a
// Server; otherwise split by {'!', '@'}. "nick!user@host" and "nick@host"
// are accepted; "nick!user" (a '!' with no following '@') is rejected;
// plain text with neither punctuation is a bare Nickname.
func ParseSender(raw string) (Sender, error) {
	if strings.Contains(raw, ".") {
		if srv, err := ParseServername(raw); err == nil {
			return Sender{Kind: SenderServer, Server: srv}, nil
		}
	}

	bang := strings.IndexByte(raw, '!')
	at := strings.IndexByte(raw, '@')

	switch {
	case bang >= 0 && at > bang:
		nick, err := ParseNickname(raw[:bang])
		if err != nil {
			return Sender{}, newParseError("Sender")
		}
		user, err := ParseUsername(raw[bang+1 : at])
		if err != nil {
			return Sender{}, newParseError("Sender")
		}
		host, err := ParseHost(raw[at+1:])
		if err != nil {
			return Sender{}, newParseError("Sender")
		}
		return Sender{Kind: SenderUser, Nickname: nick, Username: user, hasUser: true, Host: host, hasHost: true}, nil
	case bang >= 0:
		// '!' present without a following '@' — missing host, reject.
		return Sender{}, newParseError("Sender")
	case at >= 0:
		nick, err := ParseNickname(raw[:at])
		if err != nil {
			return Sender{}, newParseError("Sender")
		}
		host, err := ParseHost(raw[at+1:])
		if err != nil {
			return Sender{}, newParseError("Sender")
		}
		return Sender{Kind: SenderUser, Nickname: nick, Host: host, hasHost: true}, nil
	default:
		nick, err := ParseNickname(raw)
		if err != nil {
			return Sender{}, newParseError("Sender")
		}
		return Sender{Kind: SenderUser, Nickname: nick}, nil
	}
}

// String renders the canonical form: the sole Server form, or one of the
// three User forms "nick", "nick@host", "nick!user@host".
func (s Sender) String() string {
	if s.Kind == SenderServer {
		return s.Server.String()
	}
	switch {
	case s.hasUser && s.hasHost:
		return s.Nickname.String() + "!" + s.Username.String() + "@" + s.Host.String()
	case s.hasHost:
		return s.Nickname.String() + "@" + s.Host.String()
	default:
		return s.Nickname.String()
	}
}

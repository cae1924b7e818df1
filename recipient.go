package crikey

import "strings"

// RecipientKind distinguishes the seven Recipient shapes.
type RecipientKind int

const (
	RecipientChannelKind RecipientKind = iota
	RecipientNicknameKind
	RecipientNicknameUserHostKind
	RecipientTargetMaskKind
	RecipientUserHostKind
	RecipientUserHostServernameKind
	RecipientUserServernameKind
)

// Recipient is the disjoint union of every addressable PRIVMSG/NOTICE/
// SQUERY target shape.
type Recipient struct {
	Kind RecipientKind

	Channel    Channel
	Nickname   Nickname
	Username   Username
	Host       Host
	TargetMask TargetMask
	Servername Servername
}

// ParseRecipient disambiguates raw using the fixed precedence order:
//
//  1. '#' prefix containing a wildcard -> attempt TargetMask.
//  2. Attempt Channel.
//  3. Attempt TargetMask.
//  4. Attempt Nickname.
//  5. Split on the punctuation set {'!', '@', '%'} and match the exact
//     multiset of punctuation characters found.
func ParseRecipient(raw string) (Recipient, error) {
	if strings.HasPrefix(raw, "#") && (strings.ContainsRune(raw, '*') || strings.ContainsRune(raw, '?')) {
		if m, err := ParseTargetMask(raw); err == nil {
			return Recipient{Kind: RecipientTargetMaskKind, TargetMask: m}, nil
		}
	}

	if c, err := ParseChannel(raw); err == nil {
		return Recipient{Kind: RecipientChannelKind, Channel: c}, nil
	}

	if m, err := ParseTargetMask(raw); err == nil {
		return Recipient{Kind: RecipientTargetMaskKind, TargetMask: m}, nil
	}

	if n, err := ParseNickname(raw); err == nil {
		return Recipient{Kind: RecipientNicknameKind, Nickname: n}, nil
	}

	bang := strings.IndexByte(raw, '!')
	at := strings.IndexByte(raw, '@')
	pct := strings.IndexByte(raw, '%')

	switch {
	case bang >= 0 && at > bang && pct < 0 && strings.Count(raw, "!") == 1:
		nick, err := ParseNickname(raw[:bang])
		if err != nil {
			return Recipient{}, newParseError("Recipient")
		}
		user, err := ParseUsername(raw[bang+1 : at])
		if err != nil {
			return Recipient{}, newParseError("Recipient")
		}
		host, err := ParseHost(raw[at+1:])
		if err != nil {
			return Recipient{}, newParseError("Recipient")
		}
		return Recipient{Kind: RecipientNicknameUserHostKind, Nickname: nick, Username: user, Host: host}, nil

	case pct >= 0 && at > pct && bang < 0:
		user, err := ParseUsername(raw[:pct])
		if err != nil {
			return Recipient{}, newParseError("Recipient")
		}
		host, err := ParseHost(raw[pct+1 : at])
		if err != nil {
			return Recipient{}, newParseError("Recipient")
		}
		srv, err := ParseServername(raw[at+1:])
		if err != nil {
			return Recipient{}, newParseError("Recipient")
		}
		return Recipient{Kind: RecipientUserHostServernameKind, Username: user, Host: host, Servername: srv}, nil

	case pct >= 0 && at < 0 && bang < 0:
		user, err := ParseUsername(raw[:pct])
		if err != nil {
			return Recipient{}, newParseError("Recipient")
		}
		host, err := ParseHost(raw[pct+1:])
		if err != nil {
			return Recipient{}, newParseError("Recipient")
		}
		return Recipient{Kind: RecipientUserHostKind, Username: user, Host: host}, nil

	case at >= 0 && bang < 0 && pct < 0:
		user, err := ParseUsername(raw[:at])
		if err != nil {
			return Recipient{}, newParseError("Recipient")
		}
		srv, err := ParseServername(raw[at+1:])
		if err != nil {
			return Recipient{}, newParseError("Recipient")
		}
		return Recipient{Kind: RecipientUserServernameKind, Username: user, Servername: srv}, nil

	default:
		return Recipient{}, newParseError("Recipient")
	}
}

func (r Recipient) String() string {
	switch r.Kind {
	case RecipientChannelKind:
		return r.Channel.String()
	case RecipientNicknameKind:
		return r.Nickname.String()
	case RecipientNicknameUserHostKind:
		return r.Nickname.String() + "!" + r.Username.String() + "@" + r.Host.String()
	case RecipientTargetMaskKind:
		return r.TargetMask.String()
	case RecipientUserHostKind:
		return r.Username.String() + "%" + r.Host.String()
	case RecipientUserHostServernameKind:
		return r.Username.String() + "%" + r.Host.String() + "@" + r.Servername.String()
	default: // RecipientUserServernameKind
		return r.Username.String() + "@" + r.Servername.String()
	}
}

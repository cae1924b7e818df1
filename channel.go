package crikey

import "strings"

// ChannelID is the 5-character server-generated identifier used by Safe
// channels.
type ChannelID string

// ParseChannelID validates raw as exactly 5 characters, each in {A-Z, 0-9}.
func ParseChannelID(raw string) (ChannelID, error) {
	if len(raw) != 5 {
		return "", newParseError("ChannelID")
	}
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if !((c >= 'A' && c <= 'Z') || isDigit(c)) {
			return "", newParseError("ChannelID")
		}
	}
	return ChannelID(raw), nil
}

func (id ChannelID) String() string { return string(id) }

// ChannelName is the free-text portion of a Channel, following its type
// prefix (and, for Safe channels, its ChannelID).
type ChannelName string

// ParseChannelName validates raw as non-empty text containing no NUL, BELL
// (0x07), CR, LF, space, ',', or ':'.
func ParseChannelName(raw string) (ChannelName, error) {
	if raw == "" {
		return "", newParseError("ChannelName")
	}
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case 0x00, 0x07, '\r', '\n', ' ', ',', ':':
			return "", newParseError("ChannelName")
		}
	}
	return ChannelName(raw), nil
}

func (n ChannelName) String() string { return string(n) }

// ChannelTypeKind distinguishes the four Channel prefix shapes.
type ChannelTypeKind int

const (
	ChannelLocal ChannelTypeKind = iota
	ChannelNoMode
	ChannelPublic
	ChannelSafe
)

// ChannelType is the type prefix of a Channel, carrying a ChannelID when
// the kind is ChannelSafe.
type ChannelType struct {
	Kind ChannelTypeKind
	ID   ChannelID // only meaningful when Kind == ChannelSafe
}

func (t ChannelType) String() string {
	switch t.Kind {
	case ChannelLocal:
		return "&"
	case ChannelNoMode:
		return "+"
	case ChannelSafe:
		return "!" + t.ID.String()
	default:
		return "#"
	}
}

// Channel is a channel type prefix plus name, with an optional ServerMask
// suffix.
type Channel struct {
	Type       ChannelType
	Name       ChannelName
	ServerMask *TargetMask // non-nil only when the ":<mask>" suffix was present
}

// ParseChannel validates raw as "<ChannelType><ChannelName>" with an
// optional ":<ServerMask>" suffix. The body (suffix excluded) must be 2-50
// characters long.
func ParseChannel(raw string) (Channel, error) {
	body := raw
	var mask *TargetMask
	if idx := strings.IndexByte(raw, ':'); idx >= 0 {
		body = raw[:idx]
		m, err := ParseTargetMask(raw[idx+1:])
		if err != nil {
			return Channel{}, newParseError("Channel")
		}
		mask = &m
	}

	if len(body) < 2 || len(body) > 50 {
		return Channel{}, newParseError("Channel")
	}

	var typ ChannelType
	var nameRaw string
	switch {
	case body[0] == '!' && len(body) >= 7:
		id, err := ParseChannelID(body[1:6])
		if err != nil {
			return Channel{}, newParseError("Channel")
		}
		typ = ChannelType{Kind: ChannelSafe, ID: id}
		nameRaw = body[6:]
	case body[0] == '&':
		typ = ChannelType{Kind: ChannelLocal}
		nameRaw = body[1:]
	case body[0] == '+':
		typ = ChannelType{Kind: ChannelNoMode}
		nameRaw = body[1:]
	case body[0] == '#':
		typ = ChannelType{Kind: ChannelPublic}
		nameRaw = body[1:]
	default:
		return Channel{}, newParseError("Channel")
	}

	name, err := ParseChannelName(nameRaw)
	if err != nil {
		return Channel{}, newParseError("Channel")
	}

	return Channel{Type: typ, Name: name, ServerMask: mask}, nil
}

func (c Channel) String() string {
	s := c.Type.String() + c.Name.String()
	if c.ServerMask != nil {
		s += ":" + c.ServerMask.String()
	}
	return s
}

// ChannelKey is a validated channel key (the argument to MODE +k and JOIN's
// key list).
type ChannelKey string

// ParseChannelKey validates raw as 1-23 ASCII characters, forbidding NUL,
// ACK (0x06), TAB (0x09), LF, VT (0x0B), CR, and space.
func ParseChannelKey(raw string) (ChannelKey, error) {
	if len(raw) < 1 || len(raw) > 23 || !isASCII(raw) {
		return "", newParseError("ChannelKey")
	}
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case 0x00, 0x06, 0x09, '\n', 0x0B, '\r', ' ':
			return "", newParseError("ChannelKey")
		}
	}
	return ChannelKey(raw), nil
}

func (k ChannelKey) String() string { return string(k) }

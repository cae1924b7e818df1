package crikey

// StatsQueryKind names the well-known STATS query letters.
type StatsQueryKind int

const (
	StatsLinks StatsQueryKind = iota
	StatsCommands
	StatsOperators
	StatsUptime
	StatsUnknown
)

// StatsQuery is the single-character argument to the STATS command.
type StatsQuery struct {
	Kind StatsQueryKind
	Char byte // only meaningful when Kind == StatsUnknown
}

// ParseStatsQuery validates raw as a single ASCII alphanumeric character.
// The letters l, m, o, u map to named variants; any other alphanumeric
// becomes StatsUnknown carrying the raw character.
func ParseStatsQuery(raw string) (StatsQuery, error) {
	if len(raw) != 1 {
		return StatsQuery{}, newParseError("StatsQuery")
	}
	c := raw[0]
	switch c {
	case 'l':
		return StatsQuery{Kind: StatsLinks}, nil
	case 'm':
		return StatsQuery{Kind: StatsCommands}, nil
	case 'o':
		return StatsQuery{Kind: StatsOperators}, nil
	case 'u':
		return StatsQuery{Kind: StatsUptime}, nil
	default:
		if !isAlphaNumeric(c) {
			return StatsQuery{}, newParseError("StatsQuery")
		}
		return StatsQuery{Kind: StatsUnknown, Char: c}, nil
	}
}

func (q StatsQuery) String() string {
	switch q.Kind {
	case StatsLinks:
		return "l"
	case StatsCommands:
		return "m"
	case StatsOperators:
		return "o"
	case StatsUptime:
		return "u"
	default:
		return string(q.Char)
	}
}

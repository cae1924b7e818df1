package crikey

import (
	"net"
	"strings"
)

// Hostname is a validated dot-separated DNS-style name.
type Hostname string

// Servername is a validated server name, sharing Hostname's grammar.
type Servername string

// ParseHostname validates raw as one or more dot-separated labels, each of
// which begins and ends with an ASCII alphanumeric and otherwise contains
// only alphanumerics, '-', or '_'. Empty labels and a trailing dot are
// rejected.
func ParseHostname(raw string) (Hostname, error) {
	if !validDottedLabels(raw) {
		return "", newParseError("Hostname")
	}
	return Hostname(raw), nil
}

func (h Hostname) String() string { return string(h) }

// ParseServername validates raw using the same grammar as Hostname.
func ParseServername(raw string) (Servername, error) {
	if !validDottedLabels(raw) {
		return "", newParseError("Servername")
	}
	return Servername(raw), nil
}

func (s Servername) String() string { return string(s) }

func validDottedLabels(raw string) bool {
	if raw == "" {
		return false
	}
	labels := strings.Split(raw, ".")
	for _, label := range labels {
		if !validHostLabel(label) {
			return false
		}
	}
	return true
}

func validHostLabel(label string) bool {
	if label == "" {
		return false
	}
	if !isAlphaNumeric(label[0]) || !isAlphaNumeric(label[len(label)-1]) {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		if !isAlphaNumeric(c) && c != '-' && c != '_' {
			return false
		}
	}
	return true
}

// Host is either an IP address (v4 or v6) or a Hostname.
type Host struct {
	IP       net.IP
	Hostname Hostname
}

// ParseHost parses raw as an IP address first, falling through to the
// Hostname grammar only when IP parsing fails. This order matters because
// some hostnames (e.g. "1.2.3.4") are ambiguous; IP is always preferred.
func ParseHost(raw string) (Host, error) {
	if ip := net.ParseIP(raw); ip != nil {
		return Host{IP: ip}, nil
	}
	h, err := ParseHostname(raw)
	if err != nil {
		return Host{}, newParseError("Host")
	}
	return Host{Hostname: h}, nil
}

// IsIP reports whether the host is an IP address rather than a hostname.
func (h Host) IsIP() bool { return h.IP != nil }

func (h Host) String() string {
	if h.IsIP() {
		return h.IP.String()
	}
	return h.Hostname.String()
}

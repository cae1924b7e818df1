package crikey

import "strings"

// parameterLimit is the maximum number of parameters a message may contain.
const parameterLimit = 15

// MessageParams is an ordered sequence of up to 15 parameter strings,
// implementing RFC 2812's "trailing parameter" tokenization: the final
// parameter may be introduced by ':' and contain spaces, but once such a
// parameter has been pushed, no further parameters may follow it.
type MessageParams struct {
	args     []string
	hasSpace bool
}

// NewMessageParams builds a MessageParams from already-split arguments,
// validating them the same way Push would.
func NewMessageParams(args ...string) (MessageParams, error) {
	var p MessageParams
	for _, a := range args {
		if err := p.Push(a); err != nil {
			return MessageParams{}, err
		}
	}
	return p, nil
}

// Push appends param to the list. It fails if the list already has 15
// parameters, or if a previous parameter contained a space (meaning it must
// be the final one).
func (p *MessageParams) Push(param string) error {
	if len(p.args) >= parameterLimit {
		return newParseError("MessageParams")
	}
	if p.hasSpace {
		return newParseError("MessageParams")
	}
	if strings.Contains(param, " ") {
		p.hasSpace = true
	}
	p.args = append(p.args, param)
	return nil
}

// Len returns the number of parameters.
func (p MessageParams) Len() int { return len(p.args) }

// Get returns the nth parameter (1-indexed), or "" if out of range.
func (p MessageParams) Get(n int) string {
	if n < 1 || n > len(p.args) {
		return ""
	}
	return p.args[n-1]
}

// All returns the parameters as a plain slice.
func (p MessageParams) All() []string {
	out := make([]string, len(p.args))
	copy(out, p.args)
	return out
}

// ParseMessageParams tokenizes raw (everything following the verb/reply
// code, with the separating space already stripped) into a MessageParams.
//
// Runs of consecutive spaces are collapsed (empty tokens between them are
// skipped). A token beginning with ':' ends the walk: the remainder of the
// input, starting with the character after ':', becomes the trailing
// parameter verbatim. If 14 parameters have already been accumulated without
// encountering ':', the 15th parameter is the remainder of the input with
// any leading ':' stripped.
func ParseMessageParams(raw string) (MessageParams, error) {
	var p MessageParams
	i := 0
	for i < len(raw) {
		for i < len(raw) && raw[i] == ' ' {
			i++
		}
		if i >= len(raw) {
			break
		}

		if p.Len() == parameterLimit-1 {
			rest := strings.TrimPrefix(raw[i:], ":")
			if err := p.Push(rest); err != nil {
				return MessageParams{}, err
			}
			break
		}

		if raw[i] == ':' {
			if err := p.Push(raw[i+1:]); err != nil {
				return MessageParams{}, err
			}
			break
		}

		j := i
		for j < len(raw) && raw[j] != ' ' {
			j++
		}
		if err := p.Push(raw[i:j]); err != nil {
			return MessageParams{}, err
		}
		i = j
	}
	return p, nil
}

// String renders the parameter list: parameters are separated by single
// spaces, the final parameter is prefixed with ':' if it contains a space,
// and an empty final parameter renders as a bare ':' so that an explicitly
// empty trailing parameter (e.g. "TOPIC #test :") round-trips.
func (p MessageParams) String() string {
	if len(p.args) == 0 {
		return ""
	}
	parts := make([]string, len(p.args))
	copy(parts, p.args)
	last := len(parts) - 1
	switch {
	case strings.Contains(parts[last], " "):
		parts[last] = ":" + parts[last]
	case parts[last] == "":
		parts[last] = ":"
	}
	return strings.Join(parts, " ")
}

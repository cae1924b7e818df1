package crikey

import "strings"

// MessageBody is exactly one of a Command or a Reply. RFC 2812 messages
// beginning with a command verb carry Command; those beginning with a
// three-digit numeric carry Reply.
type MessageBody struct {
	Command *Command
	Reply   *Reply
}

// Message is one complete IRC protocol line: an optional Sender prefix and
// a body.
type Message struct {
	Sender *Sender
	Body   MessageBody
}

// ParseMessage parses a single line (CRLF already stripped by the caller,
// though a trailing "\r\n" or "\n" is tolerated and trimmed here too).
func ParseMessage(line string) (Message, error) {
	line = strings.TrimRight(line, "\r\n")

	var sender *Sender
	if strings.HasPrefix(line, ":") {
		sp := strings.IndexByte(line, ' ')
		if sp < 0 {
			return Message{}, newParseError("Message")
		}
		s, err := ParseSender(line[1:sp])
		if err != nil {
			return Message{}, newParseError("Message")
		}
		sender = &s
		line = strings.TrimLeft(line[sp+1:], " ")
	}

	sp := strings.IndexByte(line, ' ')
	var verb, rest string
	if sp < 0 {
		verb, rest = line, ""
	} else {
		verb, rest = line[:sp], line[sp+1:]
	}
	if verb == "" || !(isDigit(verb[0]) || (verb[0] >= 'A' && verb[0] <= 'Z')) {
		return Message{}, newParseError("Message")
	}

	params, err := ParseMessageParams(rest)
	if err != nil {
		return Message{}, newParseError("Message")
	}

	if isDigit(verb[0]) {
		replyType, err := ParseReplyType(verb)
		if err != nil {
			return Message{}, newParseError("Message")
		}
		return Message{Sender: sender, Body: MessageBody{Reply: &Reply{Type: replyType, Params: params}}}, nil
	}

	cmd, err := ParseCommand(verb, params)
	if err != nil {
		return Message{}, newParseError("Message")
	}
	return Message{Sender: sender, Body: MessageBody{Command: &cmd}}, nil
}

// String renders the message's canonical wire form, without a trailing
// CRLF.
func (m Message) String() string {
	var b strings.Builder
	if m.Sender != nil {
		b.WriteByte(':')
		b.WriteString(m.Sender.String())
		b.WriteByte(' ')
	}
	switch {
	case m.Body.Command != nil:
		b.WriteString(m.Body.Command.String())
	case m.Body.Reply != nil:
		b.WriteString(m.Body.Reply.String())
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (m Message) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Message) UnmarshalText(text []byte) error {
	parsed, err := ParseMessage(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

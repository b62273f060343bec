package twitch

import "strings"

// ircMessage is one parsed IRC line: optional tags, optional prefix, a
// command, and its params with the trailing param unpacked.
type ircMessage struct {
	Tags    map[string]string
	Prefix  string
	Command string
	Params  []string
}

// Nick extracts the sender's nick from the prefix ("nick!user@host").
func (m ircMessage) Nick() string {
	if i := strings.IndexByte(m.Prefix, '!'); i >= 0 {
		return m.Prefix[:i]
	}
	return m.Prefix
}

// Trailing returns the last param, which carries the message text for
// PRIVMSG.
func (m ircMessage) Trailing() string {
	if len(m.Params) == 0 {
		return ""
	}
	return m.Params[len(m.Params)-1]
}

// parseIRCMessage parses one IRC line. Malformed lines yield a message
// with an empty command.
func parseIRCMessage(line string) ircMessage {
	var msg ircMessage
	line = strings.TrimRight(line, "\r\n")

	if strings.HasPrefix(line, "@") {
		rawTags, rest, found := strings.Cut(line[1:], " ")
		if !found {
			return msg
		}
		msg.Tags = parseTags(rawTags)
		line = rest
	}

	if strings.HasPrefix(line, ":") {
		prefix, rest, found := strings.Cut(line[1:], " ")
		if !found {
			return msg
		}
		msg.Prefix = prefix
		line = rest
	}

	head, trailing, hasTrailing := strings.Cut(line, " :")
	fields := strings.Fields(head)
	if len(fields) == 0 {
		return msg
	}
	msg.Command = fields[0]
	msg.Params = fields[1:]
	if hasTrailing {
		msg.Params = append(msg.Params, trailing)
	}
	return msg
}

func parseTags(raw string) map[string]string {
	tags := make(map[string]string)
	for _, pair := range strings.Split(raw, ";") {
		key, value, _ := strings.Cut(pair, "=")
		tags[key] = value
	}
	return tags
}

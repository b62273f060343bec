package twitch

import "testing"

func TestParseIRCMessage(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		command  string
		prefix   string
		params   []string
		trailing string
	}{
		{
			name:     "privmsg",
			line:     ":alice!alice@alice.tmi.twitch.tv PRIVMSG #channel :!adbot attack",
			command:  "PRIVMSG",
			prefix:   "alice!alice@alice.tmi.twitch.tv",
			params:   []string{"#channel", "!adbot attack"},
			trailing: "!adbot attack",
		},
		{
			name:     "ping",
			line:     "PING :tmi.twitch.tv",
			command:  "PING",
			params:   []string{"tmi.twitch.tv"},
			trailing: "tmi.twitch.tv",
		},
		{
			name:    "join",
			line:    ":bob!bob@bob.tmi.twitch.tv JOIN #channel",
			command: "JOIN",
			prefix:  "bob!bob@bob.tmi.twitch.tv",
			params:  []string{"#channel"},
		},
		{
			name:     "crlf stripped",
			line:     "PING :tmi.twitch.tv\r\n",
			command:  "PING",
			params:   []string{"tmi.twitch.tv"},
			trailing: "tmi.twitch.tv",
		},
		{
			name:     "tagged privmsg",
			line:     "@badge-info=;color=#FF0000 :alice!alice@host PRIVMSG #channel :hi",
			command:  "PRIVMSG",
			prefix:   "alice!alice@host",
			params:   []string{"#channel", "hi"},
			trailing: "hi",
		},
		{
			name:    "bare command",
			line:    "RECONNECT",
			command: "RECONNECT",
		},
		{
			name: "prefix only",
			line: ":tmi.twitch.tv",
		},
		{
			name: "empty",
			line: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := parseIRCMessage(tt.line)
			if msg.Command != tt.command {
				t.Errorf("command = %q, want %q", msg.Command, tt.command)
			}
			if msg.Prefix != tt.prefix {
				t.Errorf("prefix = %q, want %q", msg.Prefix, tt.prefix)
			}
			if len(msg.Params) != len(tt.params) {
				t.Fatalf("params = %q, want %q", msg.Params, tt.params)
			}
			for i := range tt.params {
				if msg.Params[i] != tt.params[i] {
					t.Errorf("param %d = %q, want %q", i, msg.Params[i], tt.params[i])
				}
			}
			if msg.Trailing() != tt.trailing {
				t.Errorf("trailing = %q, want %q", msg.Trailing(), tt.trailing)
			}
		})
	}
}

func TestParseIRCMessageTags(t *testing.T) {
	msg := parseIRCMessage("@color=#FF0000;display-name=Alice;turbo= :alice!a@h PRIVMSG #c :hi")
	if got := msg.Tags["color"]; got != "#FF0000" {
		t.Errorf("color = %q", got)
	}
	if got := msg.Tags["display-name"]; got != "Alice" {
		t.Errorf("display-name = %q", got)
	}
	if got, ok := msg.Tags["turbo"]; !ok || got != "" {
		t.Errorf("turbo = %q, ok = %v", got, ok)
	}
}

func TestNick(t *testing.T) {
	tests := []struct {
		prefix string
		want   string
	}{
		{"alice!alice@alice.tmi.twitch.tv", "alice"},
		{"tmi.twitch.tv", "tmi.twitch.tv"},
		{"", ""},
	}
	for _, tt := range tests {
		msg := ircMessage{Prefix: tt.prefix}
		if got := msg.Nick(); got != tt.want {
			t.Errorf("Nick(%q) = %q, want %q", tt.prefix, got, tt.want)
		}
	}
}

func TestChunkMessage(t *testing.T) {
	tests := []struct {
		name    string
		message string
		limit   int
		want    []string
	}{
		{"short", "hello world", 500, []string{"hello world"}},
		{"empty", "", 500, nil},
		{"splits at space", "aaa bbb ccc", 8, []string{"aaa bbb", "ccc"}},
		{"hard cut without spaces", "aaaaaaaaaa", 4, []string{"aaaa", "aaaa", "aa"}},
		{"exact limit", "12345", 5, []string{"12345"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := chunkMessage(tt.message, tt.limit)
			if len(got) != len(tt.want) {
				t.Fatalf("chunks = %q, want %q", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("chunk %d = %q, want %q", i, got[i], tt.want[i])
				}
				if len(got[i]) > tt.limit {
					t.Errorf("chunk %d length %d exceeds limit %d", i, len(got[i]), tt.limit)
				}
			}
		})
	}
}

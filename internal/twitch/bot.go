// Package twitch connects the game controller to a Twitch chat channel
// over IRC-on-WebSocket.
package twitch

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/askorupa/adbot/internal/config"
	"github.com/askorupa/adbot/internal/controller"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

// ircURL is Twitch's IRC WebSocket gateway.
const ircURL = "wss://irc-ws.chat.twitch.tv:443"

// maxMessageLength is Twitch's chat message limit; longer responses are
// chunked.
const maxMessageLength = 500

// Bot is the Twitch chat frontend: inbound chat commands go to the
// controller, outbound controller responses go to the channel as /me
// action messages.
type Bot struct {
	cfg  config.Twitch
	ctrl *controller.Controller
	ts   oauth2.TokenSource

	mu   sync.Mutex
	conn *websocket.Conn

	excluded map[string]struct{}
}

// NewBot creates a bot for the configured channel.
func NewBot(cfg config.Twitch, ctrl *controller.Controller, ts oauth2.TokenSource) *Bot {
	excluded := make(map[string]struct{}, len(cfg.ExcludedUsers)+1)
	excluded[strings.ToLower(cfg.Nick)] = struct{}{}
	for _, user := range cfg.ExcludedUsers {
		excluded[strings.ToLower(strings.TrimSpace(user))] = struct{}{}
	}
	return &Bot{cfg: cfg, ctrl: ctrl, ts: ts, excluded: excluded}
}

// Run connects, joins the channel, and pumps inbound messages until the
// context is canceled or the connection drops.
func (b *Bot) Run(ctx context.Context) error {
	token, err := b.ts.Token()
	if err != nil {
		return fmt.Errorf("obtain chat token: %w", err)
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, ircURL, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", ircURL, err)
	}
	b.mu.Lock()
	b.conn = conn
	b.mu.Unlock()

	stop := context.AfterFunc(ctx, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
	})
	defer stop()
	defer conn.Close()

	if err := b.handshake(token.AccessToken); err != nil {
		return err
	}
	log.Info().Str("channel", b.cfg.Channel).Msg("Connected to Twitch chat")

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read chat: %w", err)
		}
		for _, line := range strings.Split(string(payload), "\r\n") {
			if line == "" {
				continue
			}
			b.handleLine(line)
		}
	}
}

func (b *Bot) handshake(token string) error {
	lines := []string{
		"PASS oauth:" + token,
		"NICK " + strings.ToLower(b.cfg.Nick),
		"CAP REQ :twitch.tv/membership twitch.tv/commands twitch.tv/tags",
		"JOIN #" + strings.ToLower(b.cfg.Channel),
	}
	for _, line := range lines {
		if err := b.writeLine(line); err != nil {
			return fmt.Errorf("handshake: %w", err)
		}
	}
	return nil
}

func (b *Bot) handleLine(line string) {
	msg := parseIRCMessage(line)
	switch msg.Command {
	case "PING":
		if err := b.writeLine("PONG :" + msg.Trailing()); err != nil {
			log.Error().Err(err).Msg("Failed to answer PING")
		}
	case "JOIN":
		if user := strings.ToLower(msg.Nick()); !b.isExcluded(user) {
			b.ctrl.AddActivePlayer(user)
		}
	case "PART":
		if user := strings.ToLower(msg.Nick()); !b.isExcluded(user) {
			b.ctrl.RemoveActivePlayer(user)
		}
	case "PRIVMSG":
		b.handleChatMessage(strings.ToLower(msg.Nick()), msg.Trailing())
	case "NOTICE":
		log.Warn().Str("notice", msg.Trailing()).Msg("Twitch notice")
	}
}

// handleChatMessage routes prefixed chat commands into the controller.
func (b *Bot) handleChatMessage(user, text string) {
	if b.isExcluded(user) {
		return
	}
	rest, found := strings.CutPrefix(strings.TrimSpace(text), b.cfg.CommandPrefix)
	if !found {
		return
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return
	}
	log.Debug().Str("player", user).Str("command", fields[0]).Msg("Chat command")
	b.ctrl.HandleUserAction(user, fields[0], fields[1:])
}

func (b *Bot) isExcluded(user string) bool {
	_, ok := b.excluded[user]
	return ok
}

// SendResponse delivers one controller message to the channel, chunked to
// the chat length limit. It is the controller's response handler.
func (b *Bot) SendResponse(message string) bool {
	for _, chunk := range chunkMessage(message, maxMessageLength) {
		line := "PRIVMSG #" + strings.ToLower(b.cfg.Channel) + " :/me " + chunk
		if err := b.writeLine(line); err != nil {
			log.Error().Err(err).Msg("Failed to send chat message")
			return false
		}
	}
	return true
}

func (b *Bot) writeLine(line string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.conn == nil {
		return fmt.Errorf("not connected")
	}
	return b.conn.WriteMessage(websocket.TextMessage, []byte(line+"\r\n"))
}

// chunkMessage splits a message into limit-sized chunks, breaking at
// spaces where possible.
func chunkMessage(message string, limit int) []string {
	var chunks []string
	for len(message) > limit {
		cut := strings.LastIndexByte(message[:limit], ' ')
		if cut <= 0 {
			cut = limit
		}
		chunks = append(chunks, strings.TrimSpace(message[:cut]))
		message = strings.TrimSpace(message[cut:])
	}
	if message != "" {
		chunks = append(chunks, message)
	}
	return chunks
}

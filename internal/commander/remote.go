package commander

import (
	"context"
	"net"
	"strings"

	"github.com/askorupa/adbot/internal/controller"

	"github.com/rs/zerolog/log"
)

// Remote is the UDP admin listener. Every datagram is one command line
// `@player command [args...]`, injected as admin; there is no response
// channel.
type Remote struct {
	ctrl *controller.Controller
	addr string
}

// NewRemote creates a listener for the given UDP address.
func NewRemote(ctrl *controller.Controller, addr string) *Remote {
	return &Remote{ctrl: ctrl, addr: addr}
}

// Run listens until the context is canceled.
func (r *Remote) Run(ctx context.Context) error {
	conn, err := net.ListenPacket("udp", r.addr)
	if err != nil {
		return err
	}
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()
	defer conn.Close()
	log.Info().Str("addr", r.addr).Msg("Command server listening")

	buf := make([]byte, 2048)
	for {
		n, sender, err := conn.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		line := string(buf[:n])
		log.Info().Str("command", line).Stringer("sender", sender).Msg("Received remote command")
		r.handleCommandLine(line)
	}
}

// handleCommandLine validates and dispatches one datagram. Malformed lines
// and unknown players are logged and ignored.
func (r *Remote) handleCommandLine(line string) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		log.Warn().Str("command", line).Msg("Too short remote command")
		return
	}
	player := fields[0]
	if !strings.HasPrefix(player, "@") {
		log.Warn().Msg(`Player name needs to start with "@" character`)
		return
	}
	player = strings.TrimLeft(player, "@")
	if !r.ctrl.DoesPlayerExist(player) {
		log.Warn().Str("player", player).Err(controller.ErrPlayerNotFound).
			Msg("Dropping remote command")
		return
	}
	log.Info().Str("player", player).Str("command", fields[1]).
		Strs("args", fields[2:]).Msg("Dispatching remote command")
	r.ctrl.HandleAdminAction(player, fields[1], fields[2:])
}

// Package commander provides the operator surfaces: an interactive stdin
// commander and a UDP listener for remote admin commands.
package commander

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/askorupa/adbot/internal/controller"

	"github.com/rs/zerolog/log"
)

// Built-in commander words handled before the controller sees anything.
const (
	exitCommand  = "exit"
	joinCommand  = "join"
	partCommand  = "part"
	adminKeyword = "admin"
)

// errInvalidCommand marks a rejected command line; the reason is printed
// and the prompt repeats.
var errInvalidCommand = errors.New("invalid command")

// command is one parsed commander line.
type command struct {
	player  string
	isAdmin bool
	name    string
	args    []string
	isExit  bool
}

// parseCommandLine parses `@player [admin] command [args...]` and the bare
// `exit`.
func parseCommandLine(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{}, fmt.Errorf("%w: Cannot be empty.", errInvalidCommand)
	}
	if fields[0] == exitCommand {
		return command{isExit: true}, nil
	}
	if len(fields) == 1 {
		return command{}, fmt.Errorf("%w: Too short.", errInvalidCommand)
	}
	player := fields[0]
	if !strings.HasPrefix(player, "@") {
		return command{}, fmt.Errorf(`%w: Player name needs to start with "@" character.`, errInvalidCommand)
	}
	cmd := command{
		player: strings.TrimLeft(player, "@"),
		name:   fields[1],
		args:   fields[2:],
	}
	if cmd.name == adminKeyword {
		if len(cmd.args) == 0 {
			return command{}, fmt.Errorf("%w: Too short.", errInvalidCommand)
		}
		cmd.isAdmin = true
		cmd.name = cmd.args[0]
		cmd.args = cmd.args[1:]
	}
	return cmd, nil
}

// Local is the interactive stdin commander, the development stand-in for
// the chat frontend.
type Local struct {
	ctrl *controller.Controller
	in   io.Reader
	out  io.Writer
}

// NewLocal creates a commander reading command lines from in and printing
// responses to out.
func NewLocal(ctrl *controller.Controller, in io.Reader, out io.Writer) *Local {
	return &Local{ctrl: ctrl, in: in, out: out}
}

// SendResponse prints one controller message. It is the controller's
// response handler for the local frontend.
func (l *Local) SendResponse(message string) bool {
	fmt.Fprintln(l.out, message)
	return true
}

// Run pumps command lines until `exit`, EOF, or context cancellation.
func (l *Local) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(l.in)
	for {
		fmt.Fprint(l.out, "Enter command [@player_name command arg1 arg2 arg3 ...]: ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		cmd, err := parseCommandLine(scanner.Text())
		if err != nil {
			fmt.Fprintf(l.out, "Invalid command: %s\n", strings.TrimPrefix(err.Error(), errInvalidCommand.Error()+": "))
			continue
		}
		if cmd.isExit {
			return nil
		}
		l.execute(cmd)
	}
}

func (l *Local) execute(cmd command) {
	switch cmd.name {
	case joinCommand:
		l.ctrl.AddActivePlayer(cmd.player)
	case partCommand:
		l.ctrl.RemoveActivePlayer(cmd.player)
	default:
		if cmd.isAdmin {
			l.ctrl.HandleAdminAction(cmd.player, cmd.name, cmd.args)
		} else {
			l.ctrl.HandleUserAction(cmd.player, cmd.name, cmd.args)
		}
	}
	log.Debug().Str("player", cmd.player).Str("command", cmd.name).
		Bool("admin", cmd.isAdmin).Msg("Commander dispatched")
}

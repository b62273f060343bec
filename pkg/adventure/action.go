package adventure

import "strings"

// Action is one command routed into a state machine. ByAdmin marks actions
// issued by an operator or generated by states themselves; user commands
// never carry it.
type Action struct {
	Command string
	Args    []string
	ByAdmin bool
}

// UserAction builds an unprivileged action.
func UserAction(command string, args ...string) Action {
	return Action{Command: command, Args: args}
}

// AdminAction builds an admin-qualified action.
func AdminAction(command string, args ...string) Action {
	return Action{Command: command, Args: args, ByAdmin: true}
}

func (a Action) String() string {
	if len(a.Args) == 0 {
		return a.Command
	}
	return a.Command + " " + strings.Join(a.Args, " ")
}

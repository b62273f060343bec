package adventure

import (
	"strconv"
	"strings"

	"github.com/askorupa/adbot/pkg/tower"
)

// trapEffect applies one trap to the context and returns the follow-up
// command plus the effect narration.
type trapEffect func(ctx *Context) (string, string)

func poisonTrap(ctx *Context) (string, string) {
	familiar := ctx.Familiar()
	lost := familiar.HP / 5
	if lost < 1 {
		lost = 1
	}
	if lost >= familiar.HP {
		lost = familiar.HP - 1
	}
	familiar.DealDamage(lost)
	return CmdEventFinished, "You lose " + strconv.Itoa(lost) + " HP."
}

func sleepTrap(ctx *Context) (string, string) {
	ctx.Familiar().SetStatus(tower.StatusSleep)
	return CmdEventFinished, "You feel a bit drowsy."
}

func upheavalTrap(ctx *Context) (string, string) {
	ctx.Familiar().SetStatus(tower.StatusUpheaval)
	return CmdEventFinished, "Suddenly ground raises."
}

func crackTrap(ctx *Context) (string, string) {
	ctx.Familiar().SetStatus(tower.StatusCrack)
	return CmdEventFinished, "Suddenly ground lowers down."
}

func goUpTrap(*Context) (string, string) {
	return CmdGoUp, "Giant spring shoots you up to the next floor."
}

func paralyzeTrap(ctx *Context) (string, string) {
	ctx.Familiar().SetStatus(tower.StatusParalyze)
	return CmdEventFinished, "Your movement is affected."
}

func blinderTrap(ctx *Context) (string, string) {
	ctx.Familiar().SetStatus(tower.StatusBlind)
	return CmdEventFinished, "You cannot see clearly."
}

// trapNames is the fixed selection order; selection is uniform.
var trapNames = []string{"Poison", "Sleep", "Upheaval", "Crack", "Go up", "Paralyze", "Blinder"}

var trapEffects = map[string]trapEffect{
	"Poison":   poisonTrap,
	"Sleep":    sleepTrap,
	"Upheaval": upheavalTrap,
	"Crack":    crackTrap,
	"Go up":    goUpTrap,
	"Paralyze": paralyzeTrap,
	"Blinder":  blinderTrap,
}

// stateTrapEvent springs a trap, uniformly random unless injected with an
// explicit trap name.
type stateTrapEvent struct {
	trapName string
}

func newStateTrapEvent(_ *Context, args []string) (State, error) {
	if len(args) == 0 {
		return stateTrapEvent{}, nil
	}
	name := capitalizeFirst(strings.Join(args, " "))
	if _, ok := trapEffects[name]; !ok {
		return nil, ArgsParseErrorf("Unknown trap.")
	}
	return stateTrapEvent{trapName: name}, nil
}

// capitalizeFirst lower-cases the query and capitalizes the first letter,
// matching the trap and character catalogs' naming.
func capitalizeFirst(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func (stateTrapEvent) Name() string { return StateNameTrapEvent }

func (s stateTrapEvent) Args() []string {
	if s.trapName == "" {
		return nil
	}
	return []string{s.trapName}
}

func (s stateTrapEvent) OnEnter(ctx *Context) error {
	name := s.trapName
	if name == "" {
		name = trapNames[ctx.RNG().Intn(len(trapNames))]
	}
	command, effect := trapEffects[name](ctx)
	ctx.AddResponse("You stepped on %s trap. %s", name, effect)
	return ctx.GenerateAction(command)
}

package adventure

import (
	"github.com/askorupa/adbot/pkg/tower"
)

// stateFamiliarEvent meets a wild monster at the familiar's level, random
// unless the event was injected with an explicit monster name.
type stateFamiliarEvent struct {
	monsterName string
}

func newStateFamiliarEvent(ctx *Context, args []string) (State, error) {
	if len(args) == 0 {
		return stateFamiliarEvent{}, nil
	}
	name := args[0]
	if _, ok := ctx.Config().MonstersTraits[name]; !ok {
		return nil, ArgsParseErrorf("Unknown monster %q.", name)
	}
	return stateFamiliarEvent{monsterName: name}, nil
}

func (stateFamiliarEvent) Name() string { return StateNameFamiliarEvent }

func (s stateFamiliarEvent) Args() []string {
	if s.monsterName == "" {
		return nil
	}
	return []string{s.monsterName}
}

func (s stateFamiliarEvent) OnEnter(ctx *Context) error {
	cfg := ctx.Config()
	name := s.monsterName
	if name == "" {
		names := cfg.MonsterNames()
		name = names[ctx.RNG().Intn(len(names))]
	}
	familiar := ctx.Familiar()
	met := tower.NewUnit(cfg.MonstersTraits[name], familiar.Level, familiar.Levels())
	if err := ctx.BufferUnit(met); err != nil {
		return err
	}
	ctx.AddResponse("You come across a lonely %s (%s). "+
		"It looks like it wants to join you. But you already have a familiar...",
		met.Name, met.StatsString())
	return nil
}

// stateMetFamiliarIgnore walks away from the wild monster.
type stateMetFamiliarIgnore struct{}

func (stateMetFamiliarIgnore) Name() string   { return StateNameMetFamiliarIgnore }
func (stateMetFamiliarIgnore) Args() []string { return nil }

func (stateMetFamiliarIgnore) OnEnter(ctx *Context) error {
	met, err := ctx.TakeBufferedUnit()
	if err != nil {
		return err
	}
	ctx.AddResponse("As you are walking away you can see %s's sad face.", met.Name)
	return ctx.GenerateAction(CmdEventFinished)
}

// stateFamiliarFusion fuses the wild monster into the familiar.
type stateFamiliarFusion struct{}

func (stateFamiliarFusion) Name() string   { return StateNameFamiliarFusion }
func (stateFamiliarFusion) Args() []string { return nil }

func (stateFamiliarFusion) OnEnter(ctx *Context) error {
	met, err := ctx.TakeBufferedUnit()
	if err != nil {
		return err
	}
	familiar := ctx.Familiar()
	familiar.Fuse(met)
	ctx.AddResponse("Fusion of %s and %s results in %s.", familiar.Name, met.Name, familiar.String())
	return ctx.GenerateAction(CmdEventFinished)
}

// stateFamiliarReplacement swaps the familiar for the wild monster.
type stateFamiliarReplacement struct{}

func (stateFamiliarReplacement) Name() string   { return StateNameFamiliarReplacement }
func (stateFamiliarReplacement) Args() []string { return nil }

func (stateFamiliarReplacement) OnEnter(ctx *Context) error {
	met, err := ctx.TakeBufferedUnit()
	if err != nil {
		return err
	}
	previous := ctx.Familiar()
	ctx.SetFamiliar(met)
	ctx.AddResponse("You took %s with you, leaving sad %s behind.", met.Name, previous.Name)
	return ctx.GenerateAction(CmdEventFinished)
}

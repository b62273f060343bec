package adventure

import (
	"github.com/askorupa/adbot/pkg/tower"
)

const tutorialText = "To interact with AD bot, type '!adbot command'. " +
	"Some commands require additional parameter(s). In such case you need to specify those after command, " +
	"e.g. '!adbot use_item Medicinal Herb'. " +
	"If you want to see what commands you can use at given moment type '!adbot help'. " +
	"Have fun and good luck!"

const openingText = "While wandering in the desert, you suddenly notice a huge tower. " +
	"Could it be the legendary Monster Tower?! As the legend says, there are great treasures in the tower, " +
	"but, as the name suggests, dangerous monsters lurk within. Do you dare to enter the tower?"

// stateStart is the empty pre-game state; only admin `started` leaves it.
type stateStart struct{}

func (stateStart) Name() string               { return StateNameStart }
func (stateStart) Args() []string             { return nil }
func (stateStart) OnEnter(ctx *Context) error { return nil }

// stateInitialize resets the adventure: floor zero, a fresh familiar
// (named or uniformly random), the starting inventory, cleared buffers.
type stateInitialize struct {
	familiarName string
}

func newStateInitialize(ctx *Context, args []string) (State, error) {
	if len(args) == 0 {
		return stateInitialize{}, nil
	}
	name := args[0]
	if _, ok := ctx.Config().MonstersTraits[name]; !ok {
		return nil, ArgsParseErrorf("Unknown monster %q.", name)
	}
	return stateInitialize{familiarName: name}, nil
}

func (stateInitialize) Name() string { return StateNameInitialize }

func (s stateInitialize) Args() []string {
	if s.familiarName == "" {
		return nil
	}
	return []string{s.familiarName}
}

func (s stateInitialize) OnEnter(ctx *Context) error {
	cfg := ctx.Config()
	ctx.SetFloor(0)

	name := s.familiarName
	if name == "" {
		names := cfg.MonsterNames()
		name = names[ctx.RNG().Intn(len(names))]
	}
	traits := cfg.MonstersTraits[name]
	ctx.SetFamiliar(tower.NewUnit(traits, 1, cfg.Levels))

	inventory := ctx.Inventory()
	inventory.Clear()
	if err := inventory.AddItem(tower.Pita{}); err != nil {
		return err
	}
	if err := inventory.AddItem(tower.MedicinalHerb{}); err != nil {
		return err
	}

	ctx.ClearBattle()
	ctx.ClearItemBuffer()
	ctx.ClearUnitBuffer()

	if !ctx.IsTutorialDone() {
		ctx.AddResponse(tutorialText)
		ctx.SetTutorialDone()
		ctx.AddResponseLineBreak()
	}
	ctx.AddResponse(openingText)
	return ctx.GenerateAction(CmdInitialized)
}

// stateEnterTower narrates meeting the familiar and walks into the tower.
type stateEnterTower struct{}

func (stateEnterTower) Name() string   { return StateNameEnterTower }
func (stateEnterTower) Args() []string { return nil }

func (stateEnterTower) OnEnter(ctx *Context) error {
	ctx.AddResponse(
		"At the entrance to Monster Tower you found a newborn %s. "+
			"It smiles at you and wants to join you in your adventure. "+
			"You enter the Tower with your new friend "+
			"(who is definitely not going to betray you once you reach the top floor...).",
		ctx.Familiar().Name)
	ctx.AddResponseLineBreak()
	return ctx.GenerateAction(CmdEnteredTower)
}

// stateWaitForEvent is the idle state awaiting the next event command.
type stateWaitForEvent struct{}

func (stateWaitForEvent) Name() string               { return StateNameWaitForEvent }
func (stateWaitForEvent) Args() []string             { return nil }
func (stateWaitForEvent) OnEnter(ctx *Context) error { return nil }

// stateGenerateEvent picks a concrete event by the configured weights and
// chains straight into it.
type stateGenerateEvent struct{}

func (stateGenerateEvent) Name() string   { return StateNameGenerateEvent }
func (stateGenerateEvent) Args() []string { return nil }

func (stateGenerateEvent) OnEnter(ctx *Context) error {
	command, err := selectEventCommand(ctx.Config().EventsWeights, ctx.RNG())
	if err != nil {
		return err
	}
	return ctx.GenerateAction(command)
}

// selectEventCommand picks one of the event commands by weight.
func selectEventCommand(weights tower.EventsWeights, rng tower.RNG) (string, error) {
	commands := []string{
		CmdBattleEvent, CmdCharacterEvent, CmdElevatorEvent,
		CmdItemEvent, CmdTrapEvent, CmdFamiliarEvent,
	}
	index, err := tower.WeightedChoice(rng, []int{
		weights.Battle, weights.Character, weights.Elevator,
		weights.Item, weights.Trap, weights.Familiar,
	})
	if err != nil {
		return "", err
	}
	return commands[index], nil
}

// stateGameOver is the rest state after death. The controller re-enters
// finished machines with an admin restart.
type stateGameOver struct{}

func (stateGameOver) Name() string               { return StateNameGameOver }
func (stateGameOver) Args() []string             { return nil }
func (stateGameOver) OnEnter(ctx *Context) error { return nil }

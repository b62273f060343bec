package adventure

import (
	"github.com/askorupa/adbot/pkg/tower"
)

// encounterHandler applies one character encounter and returns the
// follow-up command plus the encounter narration.
type encounterHandler func(ctx *Context) (string, string, error)

func cherrlEncounter(ctx *Context) (string, string, error) {
	familiar := ctx.Familiar()
	familiar.RestoreHP()
	familiar.RestoreMP()
	return CmdEventFinished, "You are fully healed.", nil
}

func nicoEncounter(*Context) (string, string, error) {
	return CmdEventFinished, "You are cultured. You gain 100 channel points.", nil
}

func pattyEncounter(ctx *Context) (string, string, error) {
	ctx.Familiar().SetStatus(tower.StatusStatsBoost)
	return CmdEventFinished, "Your familiar stats are boosted.", nil
}

func furEncounter(ctx *Context) (string, string, error) {
	if ctx.Inventory().IsEmpty() {
		return CmdEventFinished, "She offers you an item exchange. You have nothing to offer though.", nil
	}
	items := tower.AllItems()
	item := items[ctx.RNG().Intn(len(items))]
	if err := ctx.BufferItem(item); err != nil {
		return "", "", err
	}
	return CmdStartItemTrade, "She offers you an item exchange.", nil
}

func selfiEncounter(ctx *Context) (string, string, error) {
	familiar := ctx.Familiar()
	names := make([]string, 0, len(ctx.Config().MonstersTraits))
	for _, name := range ctx.Config().MonsterNames() {
		if name != familiar.Name {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return CmdEventFinished, "She offers you a familiar trade, but has nothing to offer.", nil
	}
	traits := ctx.Config().MonstersTraits[names[ctx.RNG().Intn(len(names))]]
	offered := tower.NewUnit(traits, familiar.Level, familiar.Levels())
	offered.Exp = familiar.Exp
	if err := ctx.BufferUnit(offered); err != nil {
		return "", "", err
	}
	return CmdStartFamiliarTrade, "She offers you a familiar trade.", nil
}

func miaEncounter(*Context) (string, string, error) {
	return CmdEventFinished, "She gazes upon you while mumbling indefinitely...", nil
}

func vivianneEncounter(*Context) (string, string, error) {
	return CmdEventFinished, "She started dancing.", nil
}

func ghoshEncounter(ctx *Context) (string, string, error) {
	traits := ctx.Config().SpecialUnits.Ghosh
	if traits == nil {
		return "", "", tower.InvalidOperationf("Ghosh traits not configured.")
	}
	familiar := ctx.Familiar()
	if err := ctx.BufferUnit(tower.NewUnit(traits, familiar.Level, familiar.Levels())); err != nil {
		return "", "", err
	}
	return CmdStartBattle, "He wants to fight you!", nil
}

func beldoEncounter(ctx *Context) (string, string, error) {
	floor := ctx.Floor() + 1
	if highest := ctx.Config().HighestFloor(); floor > highest {
		floor = highest
	}
	monster, err := tower.GenerateMonster(ctx.Config(), ctx.RNG(), floor, 1)
	if err != nil {
		return "", "", err
	}
	if err := ctx.BufferUnit(monster); err != nil {
		return "", "", err
	}
	return CmdStartBattle, "A strong monster appears!", nil
}

// characterNames is the fixed selection order; selection is uniform.
var characterNames = []string{
	"Cherrl", "Nico", "Patty", "Fur", "Selfi", "Mia", "Vivianne", "Ghosh", "Beldo",
}

var encounters = map[string]encounterHandler{
	"Cherrl":   cherrlEncounter,
	"Nico":     nicoEncounter,
	"Patty":    pattyEncounter,
	"Fur":      furEncounter,
	"Selfi":    selfiEncounter,
	"Mia":      miaEncounter,
	"Vivianne": vivianneEncounter,
	"Ghosh":    ghoshEncounter,
	"Beldo":    beldoEncounter,
}

// stateCharacterEvent meets a tower dweller, uniformly random unless
// injected with an explicit character name.
type stateCharacterEvent struct {
	characterName string
}

func newStateCharacterEvent(_ *Context, args []string) (State, error) {
	if len(args) == 0 {
		return stateCharacterEvent{}, nil
	}
	name := capitalizeFirst(args[0])
	if _, ok := encounters[name]; !ok {
		return nil, ArgsParseErrorf("Unknown character.")
	}
	return stateCharacterEvent{characterName: name}, nil
}

func (stateCharacterEvent) Name() string { return StateNameCharacterEvent }

func (s stateCharacterEvent) Args() []string {
	if s.characterName == "" {
		return nil
	}
	return []string{s.characterName}
}

func (s stateCharacterEvent) OnEnter(ctx *Context) error {
	name := s.characterName
	if name == "" {
		name = characterNames[ctx.RNG().Intn(len(characterNames))]
	}
	command, line, err := encounters[name](ctx)
	if err != nil {
		return err
	}
	ctx.AddResponse("You met %s. %s", name, line)
	return ctx.GenerateAction(command)
}

// stateItemTrade presents the exchange offer: the buffered item for any
// inventory item of the player's choice.
type stateItemTrade struct{}

func (stateItemTrade) Name() string   { return StateNameItemTrade }
func (stateItemTrade) Args() []string { return nil }

func (stateItemTrade) OnEnter(ctx *Context) error {
	offered := ctx.BufferedItem()
	if offered == nil {
		return tower.InvalidOperationf("No item buffered.")
	}
	ctx.AddResponse("She wants to give you %s for one of your items. You have: %s. Do you accept?",
		offered.Name(), ctx.Inventory().NamesString())
	return nil
}

// stateItemTradeAccepted swaps a named inventory item for the offered one.
type stateItemTradeAccepted struct {
	itemIndex int
	rawArgs   []string
}

func newStateItemTradeAccepted(ctx *Context, args []string) (State, error) {
	index, err := parseInventoryItemArg(ctx, args, "trade")
	if err != nil {
		return nil, err
	}
	return stateItemTradeAccepted{itemIndex: index, rawArgs: args}, nil
}

func (stateItemTradeAccepted) Name() string     { return StateNameItemTradeAccepted }
func (s stateItemTradeAccepted) Args() []string { return s.rawArgs }

func (s stateItemTradeAccepted) OnEnter(ctx *Context) error {
	given, err := ctx.Inventory().TakeItem(s.itemIndex)
	if err != nil {
		return err
	}
	received, err := ctx.TakeBufferedItem()
	if err != nil {
		return err
	}
	if err := ctx.Inventory().AddItem(received); err != nil {
		return err
	}
	ctx.AddResponse("You traded %s for %s.", given.Name(), received.Name())
	return ctx.GenerateAction(CmdEventFinished)
}

// stateItemTradeRejected walks away from the exchange.
type stateItemTradeRejected struct{}

func (stateItemTradeRejected) Name() string   { return StateNameItemTradeRejected }
func (stateItemTradeRejected) Args() []string { return nil }

func (stateItemTradeRejected) OnEnter(ctx *Context) error {
	ctx.ClearItemBuffer()
	ctx.AddResponse("You rejected the trade and went away.")
	return ctx.GenerateAction(CmdEventFinished)
}

// stateFamiliarTrade presents the familiar exchange offer.
type stateFamiliarTrade struct{}

func (stateFamiliarTrade) Name() string   { return StateNameFamiliarTrade }
func (stateFamiliarTrade) Args() []string { return nil }

func (stateFamiliarTrade) OnEnter(ctx *Context) error {
	offered := ctx.BufferedUnit()
	if offered == nil {
		return tower.InvalidOperationf("No unit buffered.")
	}
	ctx.AddResponse("She wants to give you %s (%s) for your %s. Do you accept?",
		offered.Name, offered.StatsString(), ctx.Familiar().Name)
	return nil
}

// stateFamiliarTradeAccepted swaps the familiar for the offered unit.
type stateFamiliarTradeAccepted struct{}

func (stateFamiliarTradeAccepted) Name() string   { return StateNameFamiliarTradeAccepted }
func (stateFamiliarTradeAccepted) Args() []string { return nil }

func (stateFamiliarTradeAccepted) OnEnter(ctx *Context) error {
	offered, err := ctx.TakeBufferedUnit()
	if err != nil {
		return err
	}
	previous := ctx.Familiar()
	ctx.SetFamiliar(offered)
	ctx.AddResponse("You took %s with you, leaving sad %s behind.", offered.Name, previous.Name)
	return ctx.GenerateAction(CmdEventFinished)
}

// stateFamiliarTradeRejected walks away from the familiar exchange.
type stateFamiliarTradeRejected struct{}

func (stateFamiliarTradeRejected) Name() string   { return StateNameFamiliarTradeRejected }
func (stateFamiliarTradeRejected) Args() []string { return nil }

func (stateFamiliarTradeRejected) OnEnter(ctx *Context) error {
	offered, err := ctx.TakeBufferedUnit()
	if err != nil {
		return err
	}
	ctx.AddResponse("You rejected the trade. As you are walking away you can see %s's sad face.",
		offered.Name)
	return ctx.GenerateAction(CmdEventFinished)
}

// stateEvolveFamiliar replaces the familiar with a uniformly chosen
// evolved variant at the same level and EXP. Only reachable by admin.
type stateEvolveFamiliar struct{}

func (stateEvolveFamiliar) Name() string   { return StateNameEvolveFamiliar }
func (stateEvolveFamiliar) Args() []string { return nil }

func (stateEvolveFamiliar) OnEnter(ctx *Context) error {
	familiar := ctx.Familiar()
	var candidates []string
	for _, name := range ctx.Config().EvolvedMonsterNames() {
		if name != familiar.Name {
			candidates = append(candidates, name)
		}
	}
	if len(candidates) == 0 {
		ctx.AddResponse("%s glows for a moment, but nothing happens.", familiar.Name)
		return ctx.GenerateAction(CmdEventFinished)
	}
	traits := ctx.Config().MonstersTraits[candidates[ctx.RNG().Intn(len(candidates))]]
	evolved := tower.NewUnit(traits, familiar.Level, familiar.Levels())
	evolved.Exp = familiar.Exp
	ctx.SetFamiliar(evolved)
	ctx.AddResponse("Your %s evolved into %s (%s)!", familiar.Name, evolved.Name, evolved.StatsString())
	return ctx.GenerateAction(CmdEventFinished)
}

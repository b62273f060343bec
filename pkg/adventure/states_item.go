package adventure

import (
	"strings"

	"github.com/askorupa/adbot/pkg/tower"
)

// stateItemEvent offers a found item. The item is weighted-random unless
// the event was injected with an explicit item name.
type stateItemEvent struct {
	itemName string
}

func newStateItemEvent(_ *Context, args []string) (State, error) {
	if len(args) == 0 {
		return stateItemEvent{}, nil
	}
	item, found := tower.FindCatalogItem(strings.Join(args, " "))
	if !found {
		return nil, ArgsParseErrorf("Unknown item.")
	}
	return stateItemEvent{itemName: item.Name()}, nil
}

func (stateItemEvent) Name() string { return StateNameItemEvent }

func (s stateItemEvent) Args() []string {
	if s.itemName == "" {
		return nil
	}
	return []string{s.itemName}
}

func (s stateItemEvent) OnEnter(ctx *Context) error {
	item, err := s.selectItem(ctx)
	if err != nil {
		return err
	}
	if err := ctx.BufferItem(item); err != nil {
		return err
	}
	ctx.AddResponse("You come across %s. Do you want to pick it up?", item.Name())
	return nil
}

func (s stateItemEvent) selectItem(ctx *Context) (tower.Item, error) {
	if s.itemName != "" {
		item, found := tower.FindCatalogItem(s.itemName)
		if !found {
			return nil, tower.InvalidOperationf("Unknown item - %s.", s.itemName)
		}
		return item, nil
	}
	items := tower.AllItems()
	weights := make([]int, len(items))
	for i, item := range items {
		weights[i] = ctx.Config().FoundItemsWeights[item.Name()]
	}
	index, err := tower.WeightedChoice(ctx.RNG(), weights)
	if err != nil {
		return nil, err
	}
	return items[index], nil
}

// stateItemPickUp stores the offered item, or prompts for a drop when the
// inventory is full.
type stateItemPickUp struct{}

func (stateItemPickUp) Name() string   { return StateNameItemPickUp }
func (stateItemPickUp) Args() []string { return nil }

func (stateItemPickUp) OnEnter(ctx *Context) error {
	inventory := ctx.Inventory()
	if inventory.IsFull() {
		ctx.AddResponse(
			"Your inventory is full. You need to drop one of your current items first. You have: %s.",
			inventory.NamesString())
		return nil
	}
	item, err := ctx.TakeBufferedItem()
	if err != nil {
		return err
	}
	if err := inventory.AddItem(item); err != nil {
		return err
	}
	ctx.AddResponse("You picked up %s.", item.Name())
	return ctx.GenerateAction(CmdItemPickedUp)
}

// stateItemPickUpFullInventory drops a named inventory item and stores the
// offered one in its place.
type stateItemPickUpFullInventory struct {
	itemIndex int
	rawArgs   []string
}

func newStateItemPickUpFullInventory(ctx *Context, args []string) (State, error) {
	index, err := parseInventoryItemArg(ctx, args, "drop")
	if err != nil {
		return nil, err
	}
	return stateItemPickUpFullInventory{itemIndex: index, rawArgs: args}, nil
}

func (stateItemPickUpFullInventory) Name() string     { return StateNameItemPickUpFullInventory }
func (s stateItemPickUpFullInventory) Args() []string { return s.rawArgs }

func (s stateItemPickUpFullInventory) OnEnter(ctx *Context) error {
	dropped, err := ctx.Inventory().TakeItem(s.itemIndex)
	if err != nil {
		return err
	}
	pickedUp, err := ctx.TakeBufferedItem()
	if err != nil {
		return err
	}
	if err := ctx.Inventory().AddItem(pickedUp); err != nil {
		return err
	}
	ctx.AddResponse("You dropped %s and picked up %s.", dropped.Name(), pickedUp.Name())
	return ctx.GenerateAction(CmdItemPickedUp)
}

// stateItemPickUpIgnored walks away from the offered item.
type stateItemPickUpIgnored struct{}

func (stateItemPickUpIgnored) Name() string   { return StateNameItemPickUpIgnored }
func (stateItemPickUpIgnored) Args() []string { return nil }

func (stateItemPickUpIgnored) OnEnter(ctx *Context) error {
	item, err := ctx.TakeBufferedItem()
	if err != nil {
		return err
	}
	ctx.AddResponse("You left %s behind and went away.", item.Name())
	return ctx.GenerateAction(CmdEventFinished)
}

// stateItemEventFinished clears any leftover offer and finishes the event.
type stateItemEventFinished struct{}

func (stateItemEventFinished) Name() string   { return StateNameItemEventFinished }
func (stateItemEventFinished) Args() []string { return nil }

func (stateItemEventFinished) OnEnter(ctx *Context) error {
	ctx.ClearItemBuffer()
	return ctx.GenerateAction(CmdEventFinished)
}

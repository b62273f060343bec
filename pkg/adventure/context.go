package adventure

import (
	"fmt"

	"github.com/askorupa/adbot/pkg/tower"

	"github.com/rs/zerolog/log"
)

// ResponseLineBreak is a sentinel in the response queue. The chat layer
// splits the queued responses at these markers and sends each group as one
// message.
const ResponseLineBreak = "\x00line-break"

// BattleContext is the state of one ongoing battle. It exists from
// StartBattle until the battle finishes or is cleared.
type BattleContext struct {
	Enemy *tower.Unit
	// PreparePhaseCounter is the remaining approach distance; while it is
	// positive the battle is in the prepare phase.
	PreparePhaseCounter int
	// HolyScrollCounter is the remaining invulnerability turns.
	HolyScrollCounter int
	IsPlayerTurn      bool
	finished          bool
}

// Finish marks the battle as over without destroying the context.
func (bc *BattleContext) Finish() {
	bc.finished = true
}

// IsFinished reports whether the battle was explicitly ended.
func (bc *BattleContext) IsFinished() bool {
	return bc.finished
}

// InPreparePhase reports whether the enemy is still approaching.
func (bc *BattleContext) InPreparePhase() bool {
	return bc.PreparePhaseCounter > 0
}

// Context is the full mutable state of one player's adventure. States
// borrow it during OnEnter to mutate state, queue responses, and stage the
// next generated action.
type Context struct {
	cfg          *tower.Config
	floor        int
	familiar     *tower.Unit
	inventory    *tower.Inventory
	battle       *BattleContext
	itemBuffer   tower.Item
	unitBuffer   *tower.Unit
	rng          tower.RNG
	responses    []string
	generated    *Action
	tutorialDone bool
}

// NewContext creates a fresh context with its own RNG.
func NewContext(cfg *tower.Config) *Context {
	return &Context{
		cfg:       cfg,
		inventory: tower.NewInventory(),
		rng:       tower.NewRNG(),
	}
}

func (c *Context) Config() *tower.Config {
	return c.cfg
}

func (c *Context) Floor() int {
	return c.floor
}

// SetFloor sets the current floor, clamped to [0, highest floor].
func (c *Context) SetFloor(floor int) {
	if floor < 0 {
		floor = 0
	}
	if highest := c.cfg.HighestFloor(); floor > highest {
		floor = highest
	}
	c.floor = floor
}

// Familiar returns the player's unit. Also satisfies tower.ItemUser.
func (c *Context) Familiar() *tower.Unit {
	return c.familiar
}

func (c *Context) SetFamiliar(familiar *tower.Unit) {
	c.familiar = familiar
}

func (c *Context) Inventory() *tower.Inventory {
	return c.inventory
}

// RNG returns the per-player random source.
func (c *Context) RNG() tower.RNG {
	return c.rng
}

// SetRNG replaces the random source; used for seeded determinism.
func (c *Context) SetRNG(rng tower.RNG) {
	c.rng = rng
}

// DoesActionSucceed samples a Bernoulli outcome with the given chance.
func (c *Context) DoesActionSucceed(chance float64) bool {
	if chance >= 1 {
		return true
	}
	return c.rng.Float64() < chance
}

func (c *Context) IsTutorialDone() bool {
	return c.tutorialDone
}

func (c *Context) SetTutorialDone() {
	c.tutorialDone = true
}

// Battle returns the current battle context, nil outside battle states.
func (c *Context) Battle() *BattleContext {
	return c.battle
}

// StartBattle creates the battle context for an enemy.
func (c *Context) StartBattle(enemy *tower.Unit) (*BattleContext, error) {
	if c.battle != nil {
		return nil, tower.InvalidOperationf("Battle already started - %s.", c.battle.Enemy.Name)
	}
	c.battle = &BattleContext{Enemy: enemy}
	return c.battle, nil
}

// FinishBattle destroys the battle context.
func (c *Context) FinishBattle() error {
	if c.battle == nil {
		return tower.InvalidOperationf("Battle not started.")
	}
	c.battle = nil
	return nil
}

// ClearBattle drops any battle context unconditionally.
func (c *Context) ClearBattle() {
	c.battle = nil
}

// IsInBattle reports active combat. It is false during the prepare phase,
// which keeps battle-only items unusable until the enemy is in range.
// Satisfies tower.ItemUser.
func (c *Context) IsInBattle() bool {
	return c.battle != nil && !c.battle.InPreparePhase()
}

// EnemyUnit returns the battle enemy, nil outside battle. Satisfies
// tower.ItemUser.
func (c *Context) EnemyUnit() *tower.Unit {
	if c.battle == nil {
		return nil
	}
	return c.battle.Enemy
}

// EndBattle marks the ongoing battle finished. Satisfies tower.ItemUser.
func (c *Context) EndBattle() {
	if c.battle != nil {
		c.battle.Finish()
	}
}

// SetInvulnerability sets the remaining invulnerability turns. Satisfies
// tower.ItemUser.
func (c *Context) SetInvulnerability(turns int) {
	if c.battle != nil {
		c.battle.HolyScrollCounter = turns
	}
}

// BufferItem stages an item in flight between states: a pickup offer or a
// trade offering. At most one item can be buffered.
func (c *Context) BufferItem(item tower.Item) error {
	if c.itemBuffer != nil {
		return tower.InvalidOperationf("Item already buffered - %s.", c.itemBuffer.Name())
	}
	c.itemBuffer = item
	return nil
}

// TakeBufferedItem removes and returns the buffered item.
func (c *Context) TakeBufferedItem() (tower.Item, error) {
	if c.itemBuffer == nil {
		return nil, tower.InvalidOperationf("No item buffered.")
	}
	item := c.itemBuffer
	c.itemBuffer = nil
	return item, nil
}

// BufferedItem returns the buffered item without removing it.
func (c *Context) BufferedItem() tower.Item {
	return c.itemBuffer
}

func (c *Context) ClearItemBuffer() {
	c.itemBuffer = nil
}

// BufferUnit stages a unit in flight between states: a wild familiar, a
// trade offering, an enemy about to be fought. At most one unit can be
// buffered.
func (c *Context) BufferUnit(unit *tower.Unit) error {
	if c.unitBuffer != nil {
		return tower.InvalidOperationf("Unit already buffered - %s.", c.unitBuffer.Name)
	}
	c.unitBuffer = unit
	return nil
}

// TakeBufferedUnit removes and returns the buffered unit.
func (c *Context) TakeBufferedUnit() (*tower.Unit, error) {
	if c.unitBuffer == nil {
		return nil, tower.InvalidOperationf("No unit buffered.")
	}
	unit := c.unitBuffer
	c.unitBuffer = nil
	return unit, nil
}

// BufferedUnit returns the buffered unit without removing it.
func (c *Context) BufferedUnit() *tower.Unit {
	return c.unitBuffer
}

func (c *Context) ClearUnitBuffer() {
	c.unitBuffer = nil
}

// AddResponse queues a formatted response line.
func (c *Context) AddResponse(format string, args ...any) {
	c.responses = append(c.responses, fmt.Sprintf(format, args...))
}

// AddResponseLineBreak queues a message-break marker.
func (c *Context) AddResponseLineBreak() {
	c.responses = append(c.responses, ResponseLineBreak)
}

// TakeResponses drains the queued responses atomically.
func (c *Context) TakeResponses() []string {
	responses := c.responses
	c.responses = nil
	return responses
}

// GenerateAction stages the follow-up admin action the machine consumes
// after OnEnter returns. At most one action can be pending.
func (c *Context) GenerateAction(command string, args ...string) error {
	if c.generated != nil {
		return tower.InvalidOperationf("Action already generated - %s.", c.generated.Command)
	}
	action := AdminAction(command, args...)
	c.generated = &action
	return nil
}

// HasAction reports whether a generated action is pending.
func (c *Context) HasAction() bool {
	return c.generated != nil
}

// TakeAction removes and returns the pending generated action.
func (c *Context) TakeAction() Action {
	if c.generated == nil {
		log.Error().Msg("Taking generated action but none is pending")
		return Action{}
	}
	action := *c.generated
	c.generated = nil
	return action
}

package adventure

import (
	"sort"
	"strings"
	"time"

	"github.com/askorupa/adbot/pkg/tower"

	"github.com/rs/zerolog/log"
)

// maxChainDepth bounds the admin action chain a single dispatched action
// may generate. Overflow indicates a cycle in the state graph.
const maxChainDepth = 64

// genericHandler is a state-independent command handler.
type genericHandler struct {
	command string
	admin   bool
	handle  func(m *Machine, a Action)
}

// genericHandlers applies regardless of the current state, checked before
// the transition table. Order defines the help listing.
var genericHandlers []genericHandler

// init populates genericHandlers; a composite-literal initializer would form
// an initialization cycle because handleHelp iterates genericHandlers.
func init() {
	genericHandlers = []genericHandler{
		{CmdHelp, false, (*Machine).handleHelp},
		{CmdRestart, true, (*Machine).handleRestart},
		{CmdFamiliarStats, false, (*Machine).handleFamiliarStats},
		{CmdInventory, false, (*Machine).handleInventory},
		{CmdFloor, false, (*Machine).handleFloor},
		{CmdState, false, (*Machine).handleStateQuery},
		{CmdEnemyStats, false, (*Machine).handleEnemyStats},
		{CmdGiveItem, true, (*Machine).handleGiveItem},
		{CmdRestoreHP, true, (*Machine).handleRestoreHP},
		{CmdRestoreMP, true, (*Machine).handleRestoreMP},
	}
}

// Machine is one player's game: a context plus the current state, driven
// through the transition table by dispatched actions.
type Machine struct {
	ctx        *Context
	state      State
	player     string
	penaltyEnd time.Time

	// Now is the machine's clock, replaceable in tests.
	Now func() time.Time
}

// NewMachine creates a machine for a player in the pre-game Start state.
func NewMachine(cfg *tower.Config, player string) *Machine {
	return &Machine{
		ctx:    NewContext(cfg),
		state:  stateStart{},
		player: player,
		Now:    time.Now,
	}
}

func (m *Machine) Player() string {
	return m.player
}

// Context exposes the machine's context, mainly for tests and admin
// tooling.
func (m *Machine) Context() *Context {
	return m.ctx
}

// StateName returns the current state's name.
func (m *Machine) StateName() string {
	return m.state.Name()
}

// IsStarted reports whether the game has left the pre-game state.
func (m *Machine) IsStarted() bool {
	return m.state.Name() != StateNameStart
}

// IsFinished reports whether the game has ended.
func (m *Machine) IsFinished() bool {
	return m.state.Name() == StateNameGameOver
}

// IsWaitingForEvent reports whether the machine can accept an event.
func (m *Machine) IsWaitingForEvent() bool {
	return m.state.Name() == StateNameWaitForEvent
}

// HasEventSelectionPenalty reports whether a selection penalty is active.
// An expired penalty is cleared on read.
func (m *Machine) HasEventSelectionPenalty() bool {
	if m.penaltyEnd.IsZero() {
		return false
	}
	if m.Now().After(m.penaltyEnd) {
		m.penaltyEnd = time.Time{}
		return false
	}
	return true
}

// SetEventSelectionPenalty arms the selection penalty for the duration.
func (m *Machine) SetEventSelectionPenalty(d time.Duration) {
	m.penaltyEnd = m.Now().Add(d)
}

// ClearEventSelectionPenalty drops any selection penalty.
func (m *Machine) ClearEventSelectionPenalty() {
	m.penaltyEnd = time.Time{}
}

// StartRandomEvent picks an event by the configured weights and dispatches
// it. Fails unless the machine is waiting for an event.
func (m *Machine) StartRandomEvent() ([]string, error) {
	if !m.IsWaitingForEvent() {
		return nil, tower.InvalidOperationf("Not waiting for event.")
	}
	command, err := selectEventCommand(m.ctx.Config().EventsWeights, m.ctx.RNG())
	if err != nil {
		return nil, err
	}
	return m.OnAction(AdminAction(command)), nil
}

// OnAction dispatches one action and returns the accumulated responses.
// It never fails: errors raised during dispatch become response lines.
func (m *Machine) OnAction(a Action) []string {
	if !m.handleGenericAction(a) {
		if err := m.dispatch(a, 0); err != nil {
			m.ctx.AddResponse("%s", err.Error())
		}
	}
	return m.ctx.TakeResponses()
}

// handleGenericAction runs a matching generic handler. It reports whether
// the action was consumed, including admin commands denied to users.
func (m *Machine) handleGenericAction(a Action) bool {
	for _, h := range genericHandlers {
		if h.command == a.Command {
			if !h.admin || a.ByAdmin {
				h.handle(m, a)
			}
			return true
		}
	}
	return false
}

// dispatch routes one action through the transition table and consumes the
// generated action chain.
func (m *Machine) dispatch(a Action, depth int) error {
	if depth >= maxChainDepth {
		return tower.InvalidOperationf("Action chain exceeded depth limit at %q.", a.Command)
	}
	row, ok := transitions[m.state.Name()]
	if !ok {
		log.Error().Str("player", m.player).Str("state", m.state.Name()).
			Msg("No transitions for state")
		return nil
	}
	t, ok := row[a.Command]
	if !ok {
		log.Warn().Str("player", m.player).Str("state", m.state.Name()).
			Str("command", a.Command).Msg("No transition for command")
		return nil
	}
	if !t.allowed(a) {
		return nil
	}
	next, err := stateFactories[t.next](m.ctx, a.Args)
	if err != nil {
		return err
	}
	m.state = next
	log.Debug().Str("player", m.player).Str("state", next.Name()).Msg("Changed state")
	if err := next.OnEnter(m.ctx); err != nil {
		return err
	}
	if m.ctx.HasAction() {
		return m.dispatch(m.ctx.TakeAction(), depth+1)
	}
	return nil
}

func (m *Machine) handleHelp(a Action) {
	var specific []string
	for command, t := range transitions[m.state.Name()] {
		if t.allowed(Action{Command: command, ByAdmin: a.ByAdmin}) {
			specific = append(specific, command)
		}
	}
	sort.Strings(specific)
	if len(specific) > 0 {
		m.ctx.AddResponse("Specific commands: %s.", strings.Join(specific, ", "))
	}
	var generic []string
	for _, h := range genericHandlers {
		if !h.admin || a.ByAdmin {
			generic = append(generic, h.command)
		}
	}
	if len(generic) > 0 {
		m.ctx.AddResponse("Generic commands: %s.", strings.Join(generic, ", "))
	}
}

func (m *Machine) handleRestart(Action) {
	m.state = stateStart{}
}

func (m *Machine) handleFamiliarStats(Action) {
	if m.ctx.Familiar() == nil {
		m.ctx.AddResponse("You do not have a familiar yet.")
		return
	}
	m.ctx.AddResponse("%s.", m.ctx.Familiar().String())
}

func (m *Machine) handleInventory(Action) {
	m.ctx.AddResponse("You have: %s.", m.ctx.Inventory().NamesString())
}

func (m *Machine) handleFloor(Action) {
	m.ctx.AddResponse("You are on %dF.", m.ctx.Floor()+1)
}

func (m *Machine) handleStateQuery(Action) {
	m.ctx.AddResponse("%s.", m.state.Name())
}

func (m *Machine) handleEnemyStats(Action) {
	enemy := m.ctx.EnemyUnit()
	if enemy == nil {
		m.ctx.AddResponse("You are not in battle.")
		return
	}
	m.ctx.AddResponse("%s.", enemy.String())
}

func (m *Machine) handleGiveItem(a Action) {
	if len(a.Args) == 0 {
		m.ctx.AddResponse("You need to specify item to give.")
		return
	}
	item, found := tower.FindCatalogItem(strings.Join(a.Args, " "))
	if !found {
		m.ctx.AddResponse("Unknown item.")
		return
	}
	if err := m.ctx.Inventory().AddItem(item); err != nil {
		m.ctx.AddResponse("%s", err.Error())
		return
	}
	m.ctx.AddResponse("You received %s.", item.Name())
}

func (m *Machine) handleRestoreHP(Action) {
	if m.ctx.Familiar() == nil {
		m.ctx.AddResponse("You do not have a familiar yet.")
		return
	}
	m.ctx.Familiar().RestoreHP()
	m.ctx.AddResponse("Your HP has been restored to max.")
}

func (m *Machine) handleRestoreMP(Action) {
	if m.ctx.Familiar() == nil {
		m.ctx.AddResponse("You do not have a familiar yet.")
		return
	}
	m.ctx.Familiar().RestoreMP()
	m.ctx.AddResponse("Your MP has been restored to max.")
}

// Package controller orchestrates the per-player game machines: chat
// actions in, grouped responses out, and the shared event timer that
// drives idle adventures forward.
package controller

import (
	"bytes"
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/askorupa/adbot/internal/observe"
	"github.com/askorupa/adbot/internal/persist"
	"github.com/askorupa/adbot/pkg/adventure"
	"github.com/askorupa/adbot/pkg/tower"

	"github.com/rs/zerolog/log"
)

var (
	// ErrPlayerNotFound is returned when an operation names a player
	// without a game.
	ErrPlayerNotFound = errors.New("player does not exist")

	// ErrNoEligiblePlayer is returned by an event tick that found nobody
	// to play.
	ErrNoEligiblePlayer = errors.New("no eligible player for event")
)

// ResponseHandler delivers one outbound chat message. It reports whether
// the message was accepted; rejections are logged and dropped.
type ResponseHandler func(message string) bool

// Controller owns every player's machine and the active player set. A
// single mutex serializes all mutation; outbound messages are delivered
// outside the lock.
type Controller struct {
	gameCfg *tower.Config
	store   persist.Store
	metrics *observe.Metrics

	mu       sync.Mutex
	rng      tower.RNG
	machines map[string]*adventure.Machine
	active   map[string]struct{}
	handler  ResponseHandler
	timer    *time.Timer
	stopped  bool

	// afterFunc arms the event timer, replaceable in tests.
	afterFunc func(d time.Duration, f func()) *time.Timer
}

// New creates a controller without any players.
func New(gameCfg *tower.Config, store persist.Store, metrics *observe.Metrics) *Controller {
	return &Controller{
		gameCfg:   gameCfg,
		store:     store,
		metrics:   metrics,
		rng:       tower.NewRNG(),
		machines:  make(map[string]*adventure.Machine),
		active:    make(map[string]struct{}),
		afterFunc: time.AfterFunc,
	}
}

// SetResponseEventHandler installs the outbound message sink. Must be set
// before any action is handled.
func (c *Controller) SetResponseEventHandler(handler ResponseHandler) {
	c.mu.Lock()
	c.handler = handler
	c.mu.Unlock()
}

// HandleUserAction routes a chat command from a player into their machine,
// activating them first.
func (c *Controller) HandleUserAction(player, command string, args []string) {
	c.handleAction(player, adventure.UserAction(command, args...), "user")
}

// HandleAdminAction routes an operator command into a player's machine.
func (c *Controller) HandleAdminAction(player, command string, args []string) {
	c.handleAction(player, adventure.AdminAction(command, args...), "admin")
}

func (c *Controller) handleAction(player string, action adventure.Action, origin string) {
	c.mu.Lock()
	var messages []string
	c.addActivePlayerLocked(player, &messages)
	machine := c.machines[player]

	started := time.Now()
	responses := machine.OnAction(action)
	c.metrics.ActionDuration.Record(context.Background(), time.Since(started).Seconds())
	c.metrics.RecordAction(context.Background(), action.Command, origin)

	messages = append(messages, groupResponses(player, responses)...)
	c.finishIfGameOverLocked(machine)
	c.persistLocked(machine)
	c.mu.Unlock()

	c.deliver(messages)
}

// AddActivePlayer marks the player eligible for events. Idempotent.
func (c *Controller) AddActivePlayer(player string) {
	c.mu.Lock()
	var messages []string
	c.addActivePlayerLocked(player, &messages)
	c.mu.Unlock()
	c.deliver(messages)
}

// addActivePlayerLocked activates a player, lazily creating their machine.
// The first active player gets an immediate tick and arms the timer.
func (c *Controller) addActivePlayerLocked(player string, messages *[]string) {
	if _, active := c.active[player]; active {
		return
	}
	machine, exists := c.machines[player]
	if !exists {
		machine = adventure.NewMachine(c.gameCfg, player)
		c.machines[player] = machine
	}
	first := len(c.active) == 0
	c.active[player] = struct{}{}
	c.metrics.ActivePlayers.Add(context.Background(), 1)
	log.Info().Str("player", player).Msg("Player became active")

	if first {
		log.Info().Msg("First player became active. Starting event timer.")
		c.tickPlayerLocked(player, messages)
		c.armTimerLocked()
	}
}

// tickPlayerLocked pushes one player's adventure forward right away: the
// start command for an unstarted game, a random event otherwise.
func (c *Controller) tickPlayerLocked(player string, messages *[]string) {
	machine := c.machines[player]
	var responses []string
	if !machine.IsStarted() {
		responses = machine.OnAction(adventure.AdminAction(adventure.CmdStarted))
	} else {
		var err error
		responses, err = machine.StartRandomEvent()
		if err != nil {
			log.Debug().Err(err).Str("player", player).Msg("Skipping immediate event")
			return
		}
	}
	machine.SetEventSelectionPenalty(c.gameCfg.Timers.EventPenalty)
	*messages = append(*messages, groupResponses(player, responses)...)
	c.finishIfGameOverLocked(machine)
	c.persistLocked(machine)
}

// RemoveActivePlayer removes the player from the active set. Idempotent.
// The last player leaving cancels the event timer.
func (c *Controller) RemoveActivePlayer(player string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, active := c.active[player]; !active {
		return
	}
	delete(c.active, player)
	c.metrics.ActivePlayers.Add(context.Background(), -1)
	log.Info().Str("player", player).Msg("Player became inactive")
	if len(c.active) == 0 {
		log.Info().Msg("All players became inactive. Stopping event timer.")
		c.stopTimerLocked()
	}
}

// DoesPlayerExist reports whether the player has a game, active or not.
func (c *Controller) DoesPlayerExist(player string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.machines[player]
	return ok
}

// LoadPlayers registers restored machines without activating them.
func (c *Controller) LoadPlayers(machines []*adventure.Machine) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, machine := range machines {
		c.machines[machine.Player()] = machine
		log.Info().Str("player", machine.Player()).Str("state", machine.StateName()).
			Msg("Restored player")
	}
}

// Stop cancels the event timer. Pending persistence is the store's to
// finish.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = true
	c.stopTimerLocked()
}

func (c *Controller) armTimerLocked() {
	c.stopTimerLocked()
	c.timer = c.afterFunc(c.gameCfg.Timers.EventInterval, c.onEventTimer)
}

func (c *Controller) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// onEventTimer fires on the shared event interval: re-arm, pick one
// eligible player by weight, and push their adventure forward.
func (c *Controller) onEventTimer() {
	c.mu.Lock()
	if c.stopped || len(c.active) == 0 {
		c.mu.Unlock()
		return
	}
	log.Debug().Msg("Event timer expired")
	c.armTimerLocked()

	messages, err := c.dispatchEventLocked()
	if err != nil {
		if errors.Is(err, ErrNoEligiblePlayer) {
			log.Info().Msg("No eligible players for event.")
		} else {
			log.Warn().Err(err).Msg("Cannot start event")
		}
		c.metrics.RecordEventTick(context.Background(), "idle")
		c.mu.Unlock()
		return
	}
	c.metrics.RecordEventTick(context.Background(), "dispatched")
	c.mu.Unlock()

	c.deliver(messages)
}

// dispatchEventLocked selects a player and dispatches their event: admin
// `started` for unstarted games, a random event otherwise. A successful
// dispatch arms the player's selection penalty.
func (c *Controller) dispatchEventLocked() ([]string, error) {
	player, err := c.selectPlayerForEventLocked()
	if err != nil {
		return nil, err
	}
	machine := c.machines[player]

	var responses []string
	if !machine.IsStarted() {
		responses = machine.OnAction(adventure.AdminAction(adventure.CmdStarted))
	} else {
		responses, err = machine.StartRandomEvent()
		if err != nil {
			return nil, err
		}
	}
	machine.SetEventSelectionPenalty(c.gameCfg.Timers.EventPenalty)

	messages := groupResponses(player, responses)
	c.finishIfGameOverLocked(machine)
	c.persistLocked(machine)
	return messages, nil
}

// selectPlayerForEventLocked picks an eligible player by weight. A player
// with an active penalty is weighted WithoutPenalty, everyone else
// WithPenalty; the inverted naming follows the config file.
func (c *Controller) selectPlayerForEventLocked() (string, error) {
	var eligible []string
	for player := range c.active {
		machine := c.machines[player]
		if !machine.IsStarted() || machine.IsWaitingForEvent() {
			eligible = append(eligible, player)
		}
	}
	if len(eligible) == 0 {
		return "", ErrNoEligiblePlayer
	}
	sort.Strings(eligible)

	weights := make([]int, len(eligible))
	for i, player := range eligible {
		if c.machines[player].HasEventSelectionPenalty() {
			weights[i] = c.gameCfg.PlayerSelectionWeights.WithoutPenalty
		} else {
			weights[i] = c.gameCfg.PlayerSelectionWeights.WithPenalty
		}
	}
	index, err := tower.WeightedChoice(c.rng, weights)
	if err != nil {
		return "", ErrNoEligiblePlayer
	}
	return eligible[index], nil
}

// finishIfGameOverLocked restarts a finished game and clears the player's
// penalty so they are not deprioritized after death.
func (c *Controller) finishIfGameOverLocked(machine *adventure.Machine) {
	if !machine.IsFinished() {
		return
	}
	log.Info().Str("player", machine.Player()).Msg("Game over. Restarting.")
	machine.OnAction(adventure.AdminAction(adventure.CmdRestart))
	machine.ClearEventSelectionPenalty()
}

func (c *Controller) persistLocked(machine *adventure.Machine) {
	var buf bytes.Buffer
	if err := machine.Save(&buf); err != nil {
		log.Error().Err(err).Str("player", machine.Player()).Msg("Failed to encode snapshot")
		c.metrics.PersistenceErrors.Add(context.Background(), 1)
		return
	}
	c.store.Save(machine.Player(), buf.Bytes())
}

// deliver pushes messages through the response handler outside the lock.
func (c *Controller) deliver(messages []string) {
	c.mu.Lock()
	handler := c.handler
	c.mu.Unlock()
	if handler == nil {
		if len(messages) > 0 {
			log.Error().Msg("No response handler installed. Dropping messages.")
		}
		return
	}
	for _, message := range messages {
		if !handler(message) {
			log.Warn().Str("message", message).Msg("Response handler rejected message")
			continue
		}
		c.metrics.OutboundMessages.Add(context.Background(), 1)
	}
}

// groupResponses splits the machine's responses at line-break markers and
// renders each group as one "@player: ..." message. Empty groups are
// dropped.
func groupResponses(player string, responses []string) []string {
	var messages []string
	var group []string
	flush := func() {
		if len(group) == 0 {
			return
		}
		messages = append(messages, "@"+player+": "+strings.Join(group, " "))
		group = group[:0]
	}
	for _, response := range responses {
		if response == adventure.ResponseLineBreak {
			flush()
			continue
		}
		if response != "" {
			group = append(group, response)
		}
	}
	flush()
	return messages
}

package adventure

// State is one node of the per-player state machine. OnEnter runs the
// state's effects: context mutation, queued responses, and at most one
// generated follow-up action. An OnEnter error is converted into a single
// response line by the machine.
//
// Args returns the raw string arguments the state was created from; they
// are persisted so the state can be reconstructed on load without
// re-running OnEnter.
type State interface {
	Name() string
	OnEnter(ctx *Context) error
	Args() []string
}

// Stable state names, used in the transition table and in persistence.
const (
	StateNameStart                   = "Start"
	StateNameInitialize              = "Initialize"
	StateNameEnterTower              = "EnterTower"
	StateNameWaitForEvent            = "WaitForEvent"
	StateNameGenerateEvent           = "GenerateEvent"
	StateNameBattleEvent             = "BattleEvent"
	StateNameStartBattle             = "StartBattle"
	StateNameBattlePreparePhase      = "BattlePreparePhase"
	StateNameBattleApproach          = "BattleApproach"
	StateNameBattlePhase             = "BattlePhase"
	StateNameBattlePlayerTurn        = "BattlePlayerTurn"
	StateNameBattleAttack            = "BattleAttack"
	StateNameBattleUseSpell          = "BattleUseSpell"
	StateNameBattleUseItem           = "BattleUseItem"
	StateNameBattleTryToFlee         = "BattleTryToFlee"
	StateNameBattleEnemyTurn         = "BattleEnemyTurn"
	StateNameItemEvent               = "ItemEvent"
	StateNameItemPickUp              = "ItemPickUp"
	StateNameItemPickUpFullInventory = "ItemPickUpFullInventory"
	StateNameItemPickUpIgnored       = "ItemPickUpIgnored"
	StateNameItemEventFinished       = "ItemEventFinished"
	StateNameTrapEvent               = "TrapEvent"
	StateNameElevatorEvent           = "ElevatorEvent"
	StateNameGoUp                    = "GoUp"
	StateNameElevatorOmitted         = "ElevatorOmitted"
	StateNameNextFloor               = "NextFloor"
	StateNameCharacterEvent          = "CharacterEvent"
	StateNameItemTrade               = "ItemTrade"
	StateNameItemTradeAccepted       = "ItemTradeAccepted"
	StateNameItemTradeRejected       = "ItemTradeRejected"
	StateNameFamiliarTrade           = "FamiliarTrade"
	StateNameFamiliarTradeAccepted   = "FamiliarTradeAccepted"
	StateNameFamiliarTradeRejected   = "FamiliarTradeRejected"
	StateNameEvolveFamiliar          = "EvolveFamiliar"
	StateNameFamiliarEvent           = "FamiliarEvent"
	StateNameMetFamiliarIgnore       = "MetFamiliarIgnore"
	StateNameFamiliarFusion          = "FamiliarFusion"
	StateNameFamiliarReplacement     = "FamiliarReplacement"
	StateNameGameOver                = "GameOver"
)

// stateFactory instantiates a state from raw string args. Factories that
// parse args return *ArgsParseError on rejection, which aborts the
// transition and surfaces the reason to the user.
type stateFactory func(ctx *Context, args []string) (State, error)

// noArgs wraps a zero-argument state constructor into a factory.
func noArgs(create func() State) stateFactory {
	return func(*Context, []string) (State, error) {
		return create(), nil
	}
}

// stateFactories maps every state name to its factory. Used both for
// transitions and for reconstructing the current state on load.
var stateFactories = map[string]stateFactory{
	StateNameStart:                   noArgs(func() State { return stateStart{} }),
	StateNameInitialize:              newStateInitialize,
	StateNameEnterTower:              noArgs(func() State { return stateEnterTower{} }),
	StateNameWaitForEvent:            noArgs(func() State { return stateWaitForEvent{} }),
	StateNameGenerateEvent:           noArgs(func() State { return stateGenerateEvent{} }),
	StateNameBattleEvent:             noArgs(func() State { return stateBattleEvent{} }),
	StateNameStartBattle:             noArgs(func() State { return stateStartBattle{} }),
	StateNameBattlePreparePhase:      noArgs(func() State { return stateBattlePreparePhase{} }),
	StateNameBattleApproach:          noArgs(func() State { return stateBattleApproach{} }),
	StateNameBattlePhase:             noArgs(func() State { return stateBattlePhase{} }),
	StateNameBattlePlayerTurn:        noArgs(func() State { return stateBattlePlayerTurn{} }),
	StateNameBattleAttack:            noArgs(func() State { return stateBattleAttack{} }),
	StateNameBattleUseSpell:          noArgs(func() State { return stateBattleUseSpell{} }),
	StateNameBattleUseItem:           newStateBattleUseItem,
	StateNameBattleTryToFlee:         noArgs(func() State { return stateBattleTryToFlee{} }),
	StateNameBattleEnemyTurn:         noArgs(func() State { return stateBattleEnemyTurn{} }),
	StateNameItemEvent:               newStateItemEvent,
	StateNameItemPickUp:              noArgs(func() State { return stateItemPickUp{} }),
	StateNameItemPickUpFullInventory: newStateItemPickUpFullInventory,
	StateNameItemPickUpIgnored:       noArgs(func() State { return stateItemPickUpIgnored{} }),
	StateNameItemEventFinished:       noArgs(func() State { return stateItemEventFinished{} }),
	StateNameTrapEvent:               newStateTrapEvent,
	StateNameElevatorEvent:           noArgs(func() State { return stateElevatorEvent{} }),
	StateNameGoUp:                    noArgs(func() State { return stateGoUp{} }),
	StateNameElevatorOmitted:         noArgs(func() State { return stateElevatorOmitted{} }),
	StateNameNextFloor:               noArgs(func() State { return stateNextFloor{} }),
	StateNameCharacterEvent:          newStateCharacterEvent,
	StateNameItemTrade:               noArgs(func() State { return stateItemTrade{} }),
	StateNameItemTradeAccepted:       newStateItemTradeAccepted,
	StateNameItemTradeRejected:       noArgs(func() State { return stateItemTradeRejected{} }),
	StateNameFamiliarTrade:           noArgs(func() State { return stateFamiliarTrade{} }),
	StateNameFamiliarTradeAccepted:   noArgs(func() State { return stateFamiliarTradeAccepted{} }),
	StateNameFamiliarTradeRejected:   noArgs(func() State { return stateFamiliarTradeRejected{} }),
	StateNameEvolveFamiliar:          noArgs(func() State { return stateEvolveFamiliar{} }),
	StateNameFamiliarEvent:           newStateFamiliarEvent,
	StateNameMetFamiliarIgnore:       noArgs(func() State { return stateMetFamiliarIgnore{} }),
	StateNameFamiliarFusion:          noArgs(func() State { return stateFamiliarFusion{} }),
	StateNameFamiliarReplacement:     noArgs(func() State { return stateFamiliarReplacement{} }),
	StateNameGameOver:                noArgs(func() State { return stateGameOver{} }),
}

package adventure

// transition is one edge of the state machine: the target state and
// whether the command requires admin privilege.
type transition struct {
	next  string
	admin bool
}

func byAdmin(next string) transition { return transition{next: next, admin: true} }
func byUser(next string) transition  { return transition{next: next} }

// allowed reports whether the action passes the transition's guard.
func (t transition) allowed(a Action) bool {
	return !t.admin || a.ByAdmin
}

// transitions is the full state x command table. The machine treats a
// missing row or a missing command as a logged no-op.
var transitions = map[string]map[string]transition{
	StateNameStart: {
		CmdStarted: byAdmin(StateNameInitialize),
	},
	StateNameInitialize: {
		CmdInitialized: byAdmin(StateNameEnterTower),
	},
	StateNameEnterTower: {
		CmdEnteredTower: byAdmin(StateNameWaitForEvent),
	},
	StateNameWaitForEvent: {
		CmdGenerateEvent:  byAdmin(StateNameGenerateEvent),
		CmdBattleEvent:    byAdmin(StateNameBattleEvent),
		CmdItemEvent:      byAdmin(StateNameItemEvent),
		CmdTrapEvent:      byAdmin(StateNameTrapEvent),
		CmdCharacterEvent: byAdmin(StateNameCharacterEvent),
		CmdElevatorEvent:  byAdmin(StateNameElevatorEvent),
		CmdFamiliarEvent:  byAdmin(StateNameFamiliarEvent),
	},
	StateNameGenerateEvent: {
		CmdBattleEvent:    byAdmin(StateNameBattleEvent),
		CmdItemEvent:      byAdmin(StateNameItemEvent),
		CmdTrapEvent:      byAdmin(StateNameTrapEvent),
		CmdCharacterEvent: byAdmin(StateNameCharacterEvent),
		CmdElevatorEvent:  byAdmin(StateNameElevatorEvent),
		CmdFamiliarEvent:  byAdmin(StateNameFamiliarEvent),
		CmdEventGenerated: byAdmin(StateNameWaitForEvent),
	},
	StateNameBattleEvent: {
		CmdStartBattle: byAdmin(StateNameStartBattle),
	},
	StateNameStartBattle: {
		CmdBattlePreparePhase: byAdmin(StateNameBattlePreparePhase),
	},
	StateNameBattlePreparePhase: {
		CmdUseItem:                    byUser(StateNameBattleUseItem),
		CmdApproach:                   byUser(StateNameBattleApproach),
		CmdBattlePreparePhaseFinished: byAdmin(StateNameBattlePhase),
	},
	StateNameBattleApproach: {
		CmdBattlePreparePhase:         byAdmin(StateNameBattlePreparePhase),
		CmdBattlePreparePhaseFinished: byAdmin(StateNameBattlePhase),
	},
	StateNameBattlePhase: {
		CmdPlayerTurn:    byAdmin(StateNameBattlePlayerTurn),
		CmdEnemyTurn:     byAdmin(StateNameBattleEnemyTurn),
		CmdEventFinished: byAdmin(StateNameWaitForEvent),
		CmdYouDied:       byAdmin(StateNameGameOver),
	},
	StateNameBattlePlayerTurn: {
		CmdAttack:   byUser(StateNameBattleAttack),
		CmdUseSpell: byUser(StateNameBattleUseSpell),
		CmdUseItem:  byUser(StateNameBattleUseItem),
		CmdFlee:     byUser(StateNameBattleTryToFlee),
	},
	StateNameBattleAttack: {
		CmdBattleActionPerformed: byAdmin(StateNameBattlePhase),
	},
	StateNameBattleUseSpell: {
		CmdBattleActionPerformed: byAdmin(StateNameBattlePhase),
		CmdCannotUseSpell:        byAdmin(StateNameBattlePlayerTurn),
	},
	StateNameBattleUseItem: {
		CmdBattlePreparePhaseActionPerformed: byAdmin(StateNameBattlePreparePhase),
		CmdBattleActionPerformed:             byAdmin(StateNameBattlePhase),
		CmdCannotUseItemPreparePhase:         byAdmin(StateNameBattlePreparePhase),
		CmdCannotUseItemBattlePhase:          byAdmin(StateNameBattlePlayerTurn),
	},
	StateNameBattleTryToFlee: {
		CmdCannotFlee:            byAdmin(StateNameBattlePlayerTurn),
		CmdBattleActionPerformed: byAdmin(StateNameBattlePhase),
		CmdEventFinished:         byAdmin(StateNameWaitForEvent),
	},
	StateNameBattleEnemyTurn: {
		CmdBattleActionPerformed: byAdmin(StateNameBattlePhase),
	},
	StateNameItemEvent: {
		CmdYes: byUser(StateNameItemPickUp),
		CmdNo:  byUser(StateNameItemEventFinished),
	},
	StateNameItemPickUp: {
		CmdItemPickedUp: byAdmin(StateNameItemEventFinished),
		CmdDropItem:     byUser(StateNameItemPickUpFullInventory),
		CmdIgnore:       byUser(StateNameItemPickUpIgnored),
	},
	StateNameItemPickUpFullInventory: {
		CmdItemPickedUp: byAdmin(StateNameItemEventFinished),
	},
	StateNameItemPickUpIgnored: {
		CmdEventFinished: byAdmin(StateNameItemEventFinished),
	},
	StateNameItemEventFinished: {
		CmdEventFinished: byAdmin(StateNameWaitForEvent),
	},
	StateNameTrapEvent: {
		CmdGoUp:          byAdmin(StateNameGoUp),
		CmdEventFinished: byAdmin(StateNameWaitForEvent),
	},
	StateNameElevatorEvent: {
		CmdYes: byUser(StateNameGoUp),
		CmdNo:  byUser(StateNameElevatorOmitted),
	},
	StateNameGoUp: {
		CmdEnteredNextFloor: byAdmin(StateNameNextFloor),
	},
	StateNameElevatorOmitted: {
		CmdEventFinished: byAdmin(StateNameWaitForEvent),
	},
	StateNameNextFloor: {
		CmdEventFinished: byAdmin(StateNameWaitForEvent),
		CmdRestart:       byAdmin(StateNameStart),
	},
	StateNameCharacterEvent: {
		CmdStartItemTrade:     byAdmin(StateNameItemTrade),
		CmdStartFamiliarTrade: byAdmin(StateNameFamiliarTrade),
		CmdEvolveFamiliar:     byAdmin(StateNameEvolveFamiliar),
		CmdStartBattle:        byAdmin(StateNameStartBattle),
		CmdEventFinished:      byAdmin(StateNameWaitForEvent),
	},
	StateNameItemTrade: {
		CmdYes: byUser(StateNameItemTradeAccepted),
		CmdNo:  byUser(StateNameItemTradeRejected),
	},
	StateNameItemTradeAccepted: {
		CmdEventFinished: byAdmin(StateNameWaitForEvent),
	},
	StateNameItemTradeRejected: {
		CmdEventFinished: byAdmin(StateNameWaitForEvent),
	},
	StateNameFamiliarTrade: {
		CmdYes: byUser(StateNameFamiliarTradeAccepted),
		CmdNo:  byUser(StateNameFamiliarTradeRejected),
	},
	StateNameFamiliarTradeAccepted: {
		CmdEventFinished: byAdmin(StateNameWaitForEvent),
	},
	StateNameFamiliarTradeRejected: {
		CmdEventFinished: byAdmin(StateNameWaitForEvent),
	},
	StateNameEvolveFamiliar: {
		CmdEventFinished: byAdmin(StateNameWaitForEvent),
	},
	StateNameFamiliarEvent: {
		CmdIgnore:  byUser(StateNameMetFamiliarIgnore),
		CmdFuse:    byUser(StateNameFamiliarFusion),
		CmdReplace: byUser(StateNameFamiliarReplacement),
	},
	StateNameMetFamiliarIgnore: {
		CmdEventFinished: byAdmin(StateNameWaitForEvent),
	},
	StateNameFamiliarFusion: {
		CmdEventFinished: byAdmin(StateNameWaitForEvent),
	},
	StateNameFamiliarReplacement: {
		CmdEventFinished: byAdmin(StateNameWaitForEvent),
	},
	StateNameGameOver: {
		CmdRestart: byAdmin(StateNameStart),
	},
}

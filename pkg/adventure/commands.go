package adventure

// Commands routable through the state machine. Admin commands are mostly
// generated by states themselves (action chaining); user commands arrive
// from the chat frontend.
const (
	CmdStarted        = "started"
	CmdInitialized    = "initialized"
	CmdEnteredTower   = "entered_tower"
	CmdGenerateEvent  = "generate_event"
	CmdEventGenerated = "event_generated"

	CmdBattleEvent    = "battle_event"
	CmdItemEvent      = "item_event"
	CmdTrapEvent      = "trap_event"
	CmdElevatorEvent  = "elevator_event"
	CmdCharacterEvent = "character_event"
	CmdFamiliarEvent  = "familiar_event"

	CmdStartBattle                       = "start_battle"
	CmdBattlePreparePhase                = "battle_prepare_phase"
	CmdApproach                          = "approach"
	CmdBattlePreparePhaseActionPerformed = "battle_prepare_phase_action_performed"
	CmdBattlePreparePhaseFinished        = "battle_prepare_phase_finished"
	CmdPlayerTurn                        = "player_turn"
	CmdAttack                            = "attack"
	CmdUseSpell                          = "use_spell"
	CmdCannotUseSpell                    = "cannot_use_spell"
	CmdUseItem                           = "use_item"
	CmdCannotUseItemPreparePhase         = "cannot_use_item_prepare_phase"
	CmdCannotUseItemBattlePhase          = "cannot_use_item_battle_phase"
	CmdFlee                              = "flee"
	CmdCannotFlee                        = "cannot_flee"
	CmdBattleActionPerformed             = "battle_action_performed"
	CmdEnemyTurn                         = "enemy_turn"
	CmdYouDied                           = "you_died"

	CmdStartItemTrade     = "start_item_trade"
	CmdStartFamiliarTrade = "start_familiar_trade"
	CmdEvolveFamiliar     = "evolve_familiar"

	CmdYes          = "yes"
	CmdNo           = "no"
	CmdIgnore       = "ignore"
	CmdItemPickedUp = "item_picked_up"
	CmdDropItem     = "drop_item"
	CmdGoUp         = "go_up"
	CmdEnteredNextFloor = "entered_next_floor"
	CmdFuse         = "fuse"
	CmdReplace      = "replace"
	CmdEventFinished = "event_finished"

	// Generic commands, independent of current state.
	CmdHelp          = "help"
	CmdRestart       = "restart"
	CmdFamiliarStats = "fam_stats"
	CmdInventory     = "inventory"
	CmdFloor         = "floor"
	CmdState         = "state"
	CmdEnemyStats    = "enemy_stats"
	CmdGiveItem      = "give_item"
	CmdRestoreHP     = "restore_hp"
	CmdRestoreMP     = "restore_mp"
)

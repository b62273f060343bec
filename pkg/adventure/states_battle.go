package adventure

import (
	"strconv"
	"strings"

	"github.com/askorupa/adbot/pkg/tower"
)

// stateBattleEvent rolls a monster for the current floor and chains into
// the battle. The enemy rides the unit buffer into StartBattle.
type stateBattleEvent struct{}

func (stateBattleEvent) Name() string   { return StateNameBattleEvent }
func (stateBattleEvent) Args() []string { return nil }

func (stateBattleEvent) OnEnter(ctx *Context) error {
	monster, err := tower.GenerateMonster(ctx.Config(), ctx.RNG(), ctx.Floor(), 0)
	if err != nil {
		return err
	}
	if err := ctx.BufferUnit(monster); err != nil {
		return err
	}
	return ctx.GenerateAction(CmdStartBattle)
}

// stateStartBattle announces the encounter and opens the battle context.
// The approach distance grows with the floor; on the ground floor the
// enemy is already in range.
type stateStartBattle struct{}

func (stateStartBattle) Name() string   { return StateNameStartBattle }
func (stateStartBattle) Args() []string { return nil }

func (stateStartBattle) OnEnter(ctx *Context) error {
	enemy, err := ctx.TakeBufferedUnit()
	if err != nil {
		return err
	}
	ctx.AddResponse("You encountered LVL %d %s (%d HP).", enemy.Level, enemy.Name, enemy.HP)
	battle, err := ctx.StartBattle(enemy)
	if err != nil {
		return err
	}
	battle.PreparePhaseCounter = ctx.Floor()
	return ctx.GenerateAction(CmdBattlePreparePhase)
}

// stateBattlePreparePhase is the pre-combat prompt: the enemy is visible
// but not yet in range. Only out-of-combat items are usable here.
type stateBattlePreparePhase struct{}

func (stateBattlePreparePhase) Name() string   { return StateNameBattlePreparePhase }
func (stateBattlePreparePhase) Args() []string { return nil }

func (stateBattlePreparePhase) OnEnter(ctx *Context) error {
	battle := ctx.Battle()
	if battle == nil {
		return tower.InvalidOperationf("Battle not started.")
	}
	if !battle.InPreparePhase() {
		return ctx.GenerateAction(CmdBattlePreparePhaseFinished)
	}
	ctx.AddResponse("%s is approaching. It is %d steps away.",
		battle.Enemy.Name, battle.PreparePhaseCounter)
	return nil
}

// stateBattleApproach closes one step of the approach distance.
type stateBattleApproach struct{}

func (stateBattleApproach) Name() string   { return StateNameBattleApproach }
func (stateBattleApproach) Args() []string { return nil }

func (stateBattleApproach) OnEnter(ctx *Context) error {
	battle := ctx.Battle()
	if battle == nil {
		return tower.InvalidOperationf("Battle not started.")
	}
	battle.PreparePhaseCounter--
	if battle.PreparePhaseCounter <= 0 {
		battle.PreparePhaseCounter = 0
		ctx.AddResponse("You approached %s.", battle.Enemy.Name)
		return ctx.GenerateAction(CmdBattlePreparePhaseFinished)
	}
	ctx.AddResponse("You get closer.")
	return ctx.GenerateAction(CmdBattlePreparePhase)
}

// stateBattlePhase is the battle's decision point: it detects victory and
// defeat, hands out EXP, and otherwise passes the turn.
type stateBattlePhase struct{}

func (stateBattlePhase) Name() string   { return StateNameBattlePhase }
func (stateBattlePhase) Args() []string { return nil }

func (stateBattlePhase) OnEnter(ctx *Context) error {
	battle := ctx.Battle()
	if battle == nil {
		return tower.InvalidOperationf("Battle not started.")
	}
	familiar := ctx.Familiar()
	enemy := battle.Enemy

	if battle.IsFinished() || enemy.IsDead() || familiar.IsDead() {
		if enemy.IsDead() {
			handleEnemyDefeated(ctx, enemy)
		}
		if err := ctx.FinishBattle(); err != nil {
			return err
		}
		if familiar.IsDead() {
			ctx.AddResponse("You died...")
			return ctx.GenerateAction(CmdYouDied)
		}
		return ctx.GenerateAction(CmdEventFinished)
	}

	battle.IsPlayerTurn = !battle.IsPlayerTurn
	if battle.IsPlayerTurn {
		return ctx.GenerateAction(CmdPlayerTurn)
	}
	return ctx.GenerateAction(CmdEnemyTurn)
}

// handleEnemyDefeated narrates the victory and awards EXP. EXP is doubled
// against a higher-level enemy and skipped entirely at max level.
func handleEnemyDefeated(ctx *Context, enemy *tower.Unit) {
	familiar := ctx.Familiar()
	var b strings.Builder
	b.WriteString("You defeated ")
	b.WriteString(enemy.Name)
	if familiar.IsMaxLevel() {
		b.WriteString(".")
	} else {
		gained := tower.NewStatsCalculator(enemy.Traits).GivenExperience(enemy.Level)
		if enemy.Level > familiar.Level {
			gained *= 2
		}
		b.WriteString(" and gained ")
		b.WriteString(strconv.Itoa(gained))
		b.WriteString(" EXP.")
		if familiar.GainExp(gained) {
			b.WriteString(" You leveled up! Your new stats - ")
			b.WriteString(familiar.StatsString())
			b.WriteString(".")
		}
	}
	ctx.AddResponse("%s", b.String())
}

// stateBattlePlayerTurn prompts the player to act.
type stateBattlePlayerTurn struct{}

func (stateBattlePlayerTurn) Name() string   { return StateNameBattlePlayerTurn }
func (stateBattlePlayerTurn) Args() []string { return nil }

func (stateBattlePlayerTurn) OnEnter(ctx *Context) error {
	ctx.AddResponse("Your turn.")
	return nil
}

// stateBattleAttack performs the familiar's physical attack.
type stateBattleAttack struct{}

func (stateBattleAttack) Name() string   { return StateNameBattleAttack }
func (stateBattleAttack) Args() []string { return nil }

func (stateBattleAttack) OnEnter(ctx *Context) error {
	battle := ctx.Battle()
	if battle == nil {
		return tower.InvalidOperationf("Battle not started.")
	}
	ctx.AddResponse("%s", performPhysicalAttack(ctx, ctx.Familiar(), battle.Enemy))
	return ctx.GenerateAction(CmdBattleActionPerformed)
}

// stateBattleEnemyTurn performs the enemy's physical attack.
type stateBattleEnemyTurn struct{}

func (stateBattleEnemyTurn) Name() string   { return StateNameBattleEnemyTurn }
func (stateBattleEnemyTurn) Args() []string { return nil }

func (stateBattleEnemyTurn) OnEnter(ctx *Context) error {
	battle := ctx.Battle()
	if battle == nil {
		return tower.InvalidOperationf("Battle not started.")
	}
	ctx.AddResponse("%s", performPhysicalAttack(ctx, battle.Enemy, ctx.Familiar()))
	return ctx.GenerateAction(CmdBattleActionPerformed)
}

// stateBattleUseSpell casts the familiar's spell if it has one and the MP
// for it.
type stateBattleUseSpell struct{}

func (stateBattleUseSpell) Name() string   { return StateNameBattleUseSpell }
func (stateBattleUseSpell) Args() []string { return nil }

func (stateBattleUseSpell) OnEnter(ctx *Context) error {
	familiar := ctx.Familiar()
	if !familiar.HasSpell() {
		ctx.AddResponse("You do not have a spell.")
		return ctx.GenerateAction(CmdCannotUseSpell)
	}
	if !familiar.HasEnoughMPForSpell() {
		ctx.AddResponse("You do not have enough MP.")
		return ctx.GenerateAction(CmdCannotUseSpell)
	}
	battle := ctx.Battle()
	if battle == nil {
		return tower.InvalidOperationf("Battle not started.")
	}
	ctx.AddResponse("%s", performSpellAttack(ctx, familiar, battle.Enemy))
	return ctx.GenerateAction(CmdBattleActionPerformed)
}

// stateBattleUseItem uses an inventory item, routing back into the phase
// the battle is in.
type stateBattleUseItem struct {
	itemIndex int
	rawArgs   []string
}

func newStateBattleUseItem(ctx *Context, args []string) (State, error) {
	index, err := parseInventoryItemArg(ctx, args, "use")
	if err != nil {
		return nil, err
	}
	return stateBattleUseItem{itemIndex: index, rawArgs: args}, nil
}

func (stateBattleUseItem) Name() string     { return StateNameBattleUseItem }
func (s stateBattleUseItem) Args() []string { return s.rawArgs }

func (s stateBattleUseItem) OnEnter(ctx *Context) error {
	battle := ctx.Battle()
	if battle == nil {
		return tower.InvalidOperationf("Battle not started.")
	}
	item, err := ctx.Inventory().PeekItem(s.itemIndex)
	if err != nil {
		return err
	}

	if canUse, reason := item.CanUse(ctx); !canUse {
		ctx.AddResponse("You cannot use %s. %s", item.Name(), reason)
		if battle.InPreparePhase() {
			return ctx.GenerateAction(CmdCannotUseItemPreparePhase)
		}
		return ctx.GenerateAction(CmdCannotUseItemBattlePhase)
	}

	response, err := item.Use(ctx)
	if err != nil {
		return err
	}
	ctx.AddResponse("%s", response)
	if _, err := ctx.Inventory().TakeItem(s.itemIndex); err != nil {
		return err
	}
	if battle.InPreparePhase() {
		return ctx.GenerateAction(CmdBattlePreparePhaseActionPerformed)
	}
	return ctx.GenerateAction(CmdBattleActionPerformed)
}

// stateBattleTryToFlee rolls the configured flee chance. Success ends the
// battle; failure gives the enemy its turn.
type stateBattleTryToFlee struct{}

func (stateBattleTryToFlee) Name() string   { return StateNameBattleTryToFlee }
func (stateBattleTryToFlee) Args() []string { return nil }

func (stateBattleTryToFlee) OnEnter(ctx *Context) error {
	battle := ctx.Battle()
	if battle == nil {
		return tower.InvalidOperationf("Battle not started.")
	}
	if ctx.DoesActionSucceed(ctx.Config().Probabilities.Flee) {
		battle.Finish()
		ctx.AddResponse("You successfully fleed from the battle.")
	} else {
		ctx.AddResponse("You attempted to flee from the battle, but monster caught up with you.")
	}
	return ctx.GenerateAction(CmdBattleActionPerformed)
}

// performPhysicalAttack runs the full physical attack flow for either
// side: accuracy roll, damage roll, critical roll, damage accounting, and
// the narrated outcome.
func performPhysicalAttack(ctx *Context, attacker, defender *tower.Unit) string {
	isFamiliarAttack := attacker == ctx.Familiar()
	if !ctx.DoesActionSucceed(tower.HitChance(attacker)) {
		if isFamiliarAttack {
			return "You try to hit " + defender.Name + ", but it dodges swiftly."
		}
		return attacker.Name + " tries to hit you, but you dodge swiftly."
	}

	roll := tower.SelectDamageRoll(ctx.RNG())
	height := tower.HeightSame
	critical := ctx.DoesActionSucceed(tower.CritChance(attacker))
	damage := tower.PhysicalDamage(attacker, defender, roll, height, critical)
	defender.DealDamage(damage)

	var b strings.Builder
	if isFamiliarAttack {
		b.WriteString("You hit ")
	} else {
		b.WriteString(attacker.Name)
		b.WriteString(" hits ")
	}
	if critical {
		b.WriteString("hard ")
	}
	switch height {
	case tower.HeightHigher:
		b.WriteString("from above ")
	case tower.HeightLower:
		b.WriteString("from below ")
	}
	b.WriteString("dealing ")
	b.WriteString(strconv.Itoa(damage))
	b.WriteString(" damage. ")
	if isFamiliarAttack {
		b.WriteString(defender.Name)
		b.WriteString(" has ")
	} else {
		b.WriteString("You have ")
	}
	b.WriteString(strconv.Itoa(defender.HP))
	b.WriteString(" HP left.")
	return b.String()
}

// performSpellAttack runs the spell attack flow: damage with genus
// advantage, MP cost, and the narrated outcome.
func performSpellAttack(ctx *Context, attacker, defender *tower.Unit) string {
	isFamiliarAttack := attacker == ctx.Familiar()
	damage := tower.SpellDamage(attacker, defender)
	defender.DealDamage(damage)
	attacker.UseMP(attacker.SpellMPCost())

	var b strings.Builder
	if isFamiliarAttack {
		b.WriteString("You cast ")
	} else {
		b.WriteString(attacker.Name)
		b.WriteString(" casts ")
	}
	b.WriteString(attacker.Spell.Traits.Name)
	b.WriteString(" dealing ")
	b.WriteString(strconv.Itoa(damage))
	b.WriteString(" damage. ")
	if isFamiliarAttack {
		b.WriteString(defender.Name)
		b.WriteString(" has ")
	} else {
		b.WriteString("You have ")
	}
	b.WriteString(strconv.Itoa(defender.HP))
	b.WriteString(" HP left.")
	return b.String()
}

// parseInventoryItemArg resolves a state argument list naming an inventory
// item by prefix.
func parseInventoryItemArg(ctx *Context, args []string, verb string) (int, error) {
	if len(args) == 0 {
		return 0, ArgsParseErrorf("You need to specify item to %s.", verb)
	}
	name := strings.Join(args, " ")
	index, _, found := ctx.Inventory().FindItem(name)
	if !found {
		return 0, ArgsParseErrorf("You do not have %q in your inventory.", name)
	}
	return index, nil
}

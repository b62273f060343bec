package adventure

// stateElevatorEvent offers a ride to the next floor.
type stateElevatorEvent struct{}

func (stateElevatorEvent) Name() string   { return StateNameElevatorEvent }
func (stateElevatorEvent) Args() []string { return nil }

func (stateElevatorEvent) OnEnter(ctx *Context) error {
	ctx.AddResponse(
		"You found an elevator. You are currently on %dF. Do you want to go to the next floor?",
		ctx.Floor()+1)
	return nil
}

// stateGoUp moves the player one floor up.
type stateGoUp struct{}

func (stateGoUp) Name() string   { return StateNameGoUp }
func (stateGoUp) Args() []string { return nil }

func (stateGoUp) OnEnter(ctx *Context) error {
	ctx.SetFloor(ctx.Floor() + 1)
	return ctx.GenerateAction(CmdEnteredNextFloor)
}

// stateElevatorOmitted stays on the current floor.
type stateElevatorOmitted struct{}

func (stateElevatorOmitted) Name() string   { return StateNameElevatorOmitted }
func (stateElevatorOmitted) Args() []string { return nil }

func (stateElevatorOmitted) OnEnter(ctx *Context) error {
	ctx.AddResponse("You omit elevator and stay on %dF.", ctx.Floor()+1)
	return ctx.GenerateAction(CmdEventFinished)
}

// stateNextFloor announces the new floor. Reaching the top floor wins the
// game and restarts the adventure.
type stateNextFloor struct{}

func (stateNextFloor) Name() string   { return StateNameNextFloor }
func (stateNextFloor) Args() []string { return nil }

func (stateNextFloor) OnEnter(ctx *Context) error {
	ctx.AddResponse("You entered %dF.", ctx.Floor()+1)
	if ctx.Floor() >= ctx.Config().HighestFloor() {
		ctx.AddResponseLineBreak()
		ctx.AddResponse("You have conquered the Tower! Congratulations! You receive 300 channel points.")
		return ctx.GenerateAction(CmdRestart)
	}
	return ctx.GenerateAction(CmdEventFinished)
}

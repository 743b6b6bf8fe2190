package main

// modeController is the only writer of the interaction mode.
type modeController struct {
	mode       Mode
	affordance Affordance
}

func newModeController(initial Mode) *modeController {
	mc := &modeController{}
	mc.setMode(initial)
	return mc
}

func (mc *modeController) Mode() Mode { return mc.mode }

func (mc *modeController) Affordance() Affordance { return mc.affordance }

// setMode switches modes and re-applies the affordance, even when the mode
// does not change.
func (mc *modeController) setMode(newMode Mode) {
	mc.mode = newMode
	mc.affordance = Affordance{Active: newMode, Cursor: CursorDefault}
	if newMode.annotating() {
		mc.affordance.Cursor = CursorCrosshair
	}
}

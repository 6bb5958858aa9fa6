package systems

import (
	"math"

	"github.com/automoto/goblin-siege/components"
	cfg "github.com/automoto/goblin-siege/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls the keyboard and gamepads into the Input singleton.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Advance()

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	input.AxisX, input.AxisY = digitalAxes(input)
	if x, y, ok := analogAxes(gamepadIDs); ok {
		input.AxisX, input.AxisY = x, y
	}
}

// digitalAxes turns the held move actions into -1/0/+1 axes. Up is +y.
func digitalAxes(input *components.InputData) (x, y float64) {
	if input.Current[cfg.ActionMoveLeft] {
		x--
	}
	if input.Current[cfg.ActionMoveRight] {
		x++
	}
	if input.Current[cfg.ActionMoveUp] {
		y++
	}
	if input.Current[cfg.ActionMoveDown] {
		y--
	}
	return x, y
}

// analogAxes reads the first left stick pushed past the deadzone. Stick y is
// flipped so up is positive.
func analogAxes(gamepads []ebiten.GamepadID) (x, y float64, ok bool) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(h) < deadzone {
			h = 0
		}
		if math.Abs(v) < deadzone {
			v = 0
		}
		if h != 0 || v != 0 {
			return h, -v, true
		}
	}
	return 0, 0, false
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

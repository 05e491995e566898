package systems

import (
	"strings"

	"github.com/automoto/cooter/components"
	cfg "github.com/automoto/cooter/config"
	"github.com/automoto/cooter/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var (
	gamepadIDs          []ebiten.GamepadID
	controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)
)

// stickActions maps a left-stick direction to the actions it holds. The
// vertical axis also drives menu navigation.
var stickActions = [4][]cfg.ActionID{
	{cfg.ActionTurnLeft},
	{cfg.ActionTurnRight},
	{cfg.ActionMoveForward, cfg.ActionMenuUp},
	{cfg.ActionMoveBackward, cfg.ActionMenuDown},
}

// devicePoll collects which devices produced input this frame.
type devicePoll struct {
	keyboard bool
	gamepad  bool
	padID    ebiten.GamepadID
}

func (p *devicePoll) pad(id ebiten.GamepadID) {
	p.gamepad = true
	p.padID = id
}

// UpdateInput polls keyboard and gamepads into the Input singleton. It runs
// first so every later system sees this frame's actions.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	var poll devicePoll

	for action, binding := range cfg.Input.Bindings {
		if pollBinding(binding, &poll) {
			input.Current[action] = true
		}
	}

	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for dir, held := range stickDirections(id, cfg.Input.AnalogDeadzone) {
			if !held {
				continue
			}
			for _, action := range stickActions[dir] {
				input.Current[action] = true
			}
			poll.pad(id)
		}
	}

	switch {
	case poll.gamepad:
		input.LastInputMethod = controllerType(poll.padID)
	case poll.keyboard:
		input.LastInputMethod = components.InputKeyboard
	}
}

// pollBinding reports whether any key or standard gamepad button of binding
// is held, and records the device that held it.
func pollBinding(binding cfg.InputBinding, poll *devicePoll) bool {
	held := false
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			held = true
			poll.keyboard = true
		}
	}
	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				held = true
				poll.pad(id)
			}
		}
	}
	return held
}

// stickDirections returns left, right, up and down for one pad's left stick.
func stickDirections(id ebiten.GamepadID, deadzone float64) [4]bool {
	h := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	return [4]bool{h < -deadzone, h > deadzone, v < -deadzone, v > deadzone}
}

// controllerType guesses the pad family from its name, once per pad.
func controllerType(id ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[id]; ok {
		return method
	}

	method := components.InputXbox
	name := strings.ToLower(ebiten.GamepadName(id))
	for _, marker := range []string{"ps4", "ps5", "playstation", "dualshock", "dualsense"} {
		if strings.Contains(name, marker) {
			method = components.InputPlayStation
			break
		}
	}

	controllerTypeCache[id] = method
	return method
}

func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction derives the action's edge state from this frame and the last.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr, prev := input.Current[id], input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// MovementKeys reads the held movement actions as a KeyState.
func MovementKeys(input *components.InputData) gamemath.KeyState {
	return gamemath.KeyState{
		Forward:  input.Current[cfg.ActionMoveForward],
		Backward: input.Current[cfg.ActionMoveBackward],
		Left:     input.Current[cfg.ActionTurnLeft],
		Right:    input.Current[cfg.ActionTurnRight],
	}
}

package internal

import (
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// axisThreshold is how far a stick must move before it counts as a d-pad press.
const axisThreshold = 16000

// Event is a button press or release after mapping.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Repeat  bool // Key auto-repeat from the OS
}

// InputProcessor maps keyboard keys, controller buttons and stick movement to virtual
// buttons.
type InputProcessor struct {
	keys    map[sdl.Keycode]constants.VirtualButton
	buttons map[sdl.GameControllerButton]constants.VirtualButton

	// Stick direction currently held per axis, so a release can be reported.
	axisHeld map[sdl.GameControllerAxis]constants.VirtualButton

	controllers map[sdl.JoystickID]*sdl.GameController
}

var inputProcessor *InputProcessor

// DefaultKeyMap covers the keys the browser answers to. Letter keys are left out so
// text entry never triggers actions.
func DefaultKeyMap() map[sdl.Keycode]constants.VirtualButton {
	return map[sdl.Keycode]constants.VirtualButton{
		sdl.K_UP:        constants.VirtualButtonUp,
		sdl.K_DOWN:      constants.VirtualButtonDown,
		sdl.K_LEFT:      constants.VirtualButtonLeft,
		sdl.K_RIGHT:     constants.VirtualButtonRight,
		sdl.K_RETURN:    constants.VirtualButtonA,
		sdl.K_KP_ENTER:  constants.VirtualButtonA,
		sdl.K_SPACE:     constants.VirtualButtonA,
		sdl.K_BACKSPACE: constants.VirtualButtonB,
		sdl.K_ESCAPE:    constants.VirtualButtonMenu,
		sdl.K_TAB:       constants.VirtualButtonSelect,
		sdl.K_PAGEUP:    constants.VirtualButtonL1,
		sdl.K_PAGEDOWN:  constants.VirtualButtonR1,
		sdl.K_F3:        constants.VirtualButtonX,
		sdl.K_F2:        constants.VirtualButtonY,
		sdl.K_F5:        constants.VirtualButtonStart,
	}
}

// DefaultButtonMap maps an SDL game controller to virtual buttons one to one.
func DefaultButtonMap() map[sdl.GameControllerButton]constants.VirtualButton {
	return map[sdl.GameControllerButton]constants.VirtualButton{
		sdl.CONTROLLER_BUTTON_DPAD_UP:       constants.VirtualButtonUp,
		sdl.CONTROLLER_BUTTON_DPAD_DOWN:     constants.VirtualButtonDown,
		sdl.CONTROLLER_BUTTON_DPAD_LEFT:     constants.VirtualButtonLeft,
		sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    constants.VirtualButtonRight,
		sdl.CONTROLLER_BUTTON_A:             constants.VirtualButtonA,
		sdl.CONTROLLER_BUTTON_B:             constants.VirtualButtonB,
		sdl.CONTROLLER_BUTTON_X:             constants.VirtualButtonX,
		sdl.CONTROLLER_BUTTON_Y:             constants.VirtualButtonY,
		sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.VirtualButtonL1,
		sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.VirtualButtonR1,
		sdl.CONTROLLER_BUTTON_START:         constants.VirtualButtonStart,
		sdl.CONTROLLER_BUTTON_BACK:          constants.VirtualButtonSelect,
		sdl.CONTROLLER_BUTTON_GUIDE:         constants.VirtualButtonMenu,
	}
}

// NewInputProcessor creates a processor with the default mappings.
func NewInputProcessor() *InputProcessor {
	return &InputProcessor{
		keys:        DefaultKeyMap(),
		buttons:     DefaultButtonMap(),
		axisHeld:    make(map[sdl.GameControllerAxis]constants.VirtualButton),
		controllers: make(map[sdl.JoystickID]*sdl.GameController),
	}
}

func InitInputProcessor() {
	inputProcessor = NewInputProcessor()
}

func GetInputProcessor() *InputProcessor {
	if inputProcessor == nil {
		InitInputProcessor()
	}
	return inputProcessor
}

// ProcessSDLEvent maps event, or returns nil when it is not an input the UI uses.
// Controller hot-plug events are handled here as well.
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		button, ok := p.keys[e.Keysym.Sym]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: e.State == sdl.PRESSED, Repeat: e.Repeat != 0}

	case *sdl.ControllerButtonEvent:
		button, ok := p.buttons[sdl.GameControllerButton(e.Button)]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: e.State == sdl.PRESSED}

	case *sdl.ControllerAxisEvent:
		return p.processAxis(sdl.GameControllerAxis(e.Axis), e.Value)

	case *sdl.ControllerDeviceEvent:
		p.handleDevice(e)
	}
	return nil
}

func (p *InputProcessor) processAxis(axis sdl.GameControllerAxis, value int16) *Event {
	var button constants.VirtualButton
	switch axis {
	case sdl.CONTROLLER_AXIS_LEFTY:
		if value < -axisThreshold {
			button = constants.VirtualButtonUp
		} else if value > axisThreshold {
			button = constants.VirtualButtonDown
		}
	case sdl.CONTROLLER_AXIS_LEFTX:
		if value < -axisThreshold {
			button = constants.VirtualButtonLeft
		} else if value > axisThreshold {
			button = constants.VirtualButtonRight
		}
	default:
		return nil
	}

	held := p.axisHeld[axis]
	switch {
	case button == held:
		return nil
	case button == constants.VirtualButtonUnassigned:
		delete(p.axisHeld, axis)
		return &Event{Button: held, Pressed: false}
	default:
		p.axisHeld[axis] = button
		return &Event{Button: button, Pressed: true}
	}
}

func (p *InputProcessor) handleDevice(e *sdl.ControllerDeviceEvent) {
	switch e.Type {
	case sdl.CONTROLLERDEVICEADDED:
		gc := sdl.GameControllerOpen(int(e.Which))
		if gc == nil {
			GetInternalLogger().Warn("Failed to open controller", "index", e.Which, "error", sdl.GetError())
			return
		}
		id := gc.Joystick().InstanceID()
		p.controllers[id] = gc
		GetInternalLogger().Debug("Controller connected", "name", gc.Name(), "id", id)

	case sdl.CONTROLLERDEVICEREMOVED:
		if gc, ok := p.controllers[e.Which]; ok {
			gc.Close()
			delete(p.controllers, e.Which)
			GetInternalLogger().Debug("Controller removed", "id", e.Which)
		}
	}
}

// CloseAllControllers closes every opened game controller.
func CloseAllControllers() {
	if inputProcessor == nil {
		return
	}
	for id, gc := range inputProcessor.controllers {
		gc.Close()
		delete(inputProcessor.controllers, id)
	}
}

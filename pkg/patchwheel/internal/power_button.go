package internal

import (
	"errors"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/constants"
	evdev "github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// wakeGrace is how long input is ignored after the device wakes; touches that woke the
// screen must not reach the wheel.
const wakeGrace = 500 * time.Millisecond

// PowerButtonConfig describes the power key of a handheld.
type PowerButtonConfig struct {
	ButtonCode      uint16        // evdev key code, 116 is KEY_POWER
	DevicePath      string        // e.g. /dev/input/event1
	ShortPressMax   time.Duration // Presses shorter than this suspend, longer ones shut down
	CoolDownTime    time.Duration // Presses this soon after waking are ignored
	SuspendCommand  []string
	ShutdownCommand []string
}

// DefaultPowerButtonConfig returns the settings for the current PLATFORM. An empty
// DevicePath means the platform has no power key to watch.
func DefaultPowerButtonConfig() PowerButtonConfig {
	cfg := PowerButtonConfig{
		ButtonCode:      uint16(evdev.KEY_POWER),
		ShortPressMax:   2 * time.Second,
		CoolDownTime:    1 * time.Second,
		SuspendCommand:  []string{"systemctl", "suspend"},
		ShutdownCommand: []string{"/sbin/poweroff"},
	}

	platform := strings.ToUpper(os.Getenv(constants.PlatformEnvVar))
	switch {
	case platform == "":
	case strings.Contains(platform, "TG5050"):
		cfg.DevicePath = "/dev/input/event2"
	default:
		cfg.DevicePath = "/dev/input/event1"
	}
	return cfg
}

// PowerAction is what a power key gesture asks for.
type PowerAction int

const (
	PowerActionNone PowerAction = iota
	PowerActionSuspend
	PowerActionShutdown
)

func (a PowerAction) String() string {
	switch a {
	case PowerActionSuspend:
		return "suspend"
	case PowerActionShutdown:
		return "shutdown"
	default:
		return "none"
	}
}

// powerTracker turns key values (1 press, 2 repeat, 0 release) into actions. A hold
// reaching ShortPressMax shuts down without waiting for the release.
type powerTracker struct {
	cfg       PowerButtonConfig
	pressed   bool
	fired     bool
	pressedAt time.Time
	lastWake  time.Time
}

func (t *powerTracker) handle(value int32, at time.Time) PowerAction {
	switch value {
	case 1:
		if !t.lastWake.IsZero() && at.Sub(t.lastWake) < t.cfg.CoolDownTime {
			return PowerActionNone
		}
		t.pressed = true
		t.fired = false
		t.pressedAt = at
	case 2:
		if t.pressed && !t.fired && at.Sub(t.pressedAt) >= t.cfg.ShortPressMax {
			t.fired = true
			return PowerActionShutdown
		}
	case 0:
		if !t.pressed {
			return PowerActionNone
		}
		t.pressed = false
		if t.fired {
			return PowerActionNone
		}
		if at.Sub(t.pressedAt) >= t.cfg.ShortPressMax {
			return PowerActionShutdown
		}
		return PowerActionSuspend
	}
	return PowerActionNone
}

var (
	powerStopping  = atomic.NewBool(false)
	powerSuspended = atomic.NewBool(false)
	powerWokeAt    = atomic.NewTime(time.Time{})

	powerDeviceMu sync.Mutex
	powerDevice   *evdev.InputDevice
)

// InputBlocked reports whether input should be dropped because the device is asleep
// or has just woken.
func InputBlocked(now time.Time) bool {
	if powerSuspended.Load() {
		return true
	}
	woke := powerWokeAt.Load()
	return !woke.IsZero() && now.Sub(woke) < wakeGrace
}

// PowerButtonHandler reads the power key until StopPowerButton is called.
func PowerButtonHandler(wg *sync.WaitGroup, cfg PowerButtonConfig) {
	defer wg.Done()

	logger := GetInternalLogger()

	dev, err := evdev.Open(cfg.DevicePath)
	if err != nil {
		logger.Error("Failed to open power button device", "path", cfg.DevicePath, "error", err)
		return
	}
	powerDeviceMu.Lock()
	powerDevice = dev
	powerDeviceMu.Unlock()
	defer dev.Close()

	if name, err := dev.Name(); err == nil {
		logger.Debug("Listening for power button", "device", name, "path", cfg.DevicePath)
	}

	tracker := &powerTracker{cfg: cfg}
	for !powerStopping.Load() {
		event, err := dev.ReadOne()
		if err != nil {
			if !powerStopping.Load() {
				logger.Error("Power button read failed", "error", err)
			}
			return
		}
		if event.Type != evdev.EV_KEY || uint16(event.Code) != cfg.ButtonCode {
			continue
		}

		switch tracker.handle(event.Value, time.Now()) {
		case PowerActionSuspend:
			suspend(cfg)
			tracker.lastWake = time.Now()
		case PowerActionShutdown:
			logger.Info("Power button held; shutting down")
			if err := runCommand(cfg.ShutdownCommand); err != nil {
				logger.Error("Shutdown command failed", "error", err)
			}
		}
	}
}

func suspend(cfg PowerButtonConfig) {
	logger := GetInternalLogger()
	logger.Info("Power button pressed; suspending")

	powerSuspended.Store(true)
	err := runCommand(cfg.SuspendCommand)
	powerWokeAt.Store(time.Now())
	powerSuspended.Store(false)

	if err != nil {
		logger.Error("Suspend command failed", "error", err)
	}
}

func runCommand(args []string) error {
	if len(args) == 0 {
		return errors.New("no command configured")
	}
	return exec.Command(args[0], args[1:]...).Run()
}

// StopPowerButton ends PowerButtonHandler by closing its device.
func StopPowerButton() {
	powerStopping.Store(true)

	powerDeviceMu.Lock()
	defer powerDeviceMu.Unlock()
	if powerDevice != nil {
		powerDevice.Close()
		powerDevice = nil
	}
}

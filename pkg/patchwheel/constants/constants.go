// Package constants defines shared constants, types, and configuration values
// used throughout patchwheel.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read at startup.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"          // DEV runs windowed at WINDOW_WIDTH x WINDOW_HEIGHT
	WindowWidthEnvVar  = "WINDOW_WIDTH"         // Window width in development mode
	WindowHeightEnvVar = "WINDOW_HEIGHT"        // Window height in development mode
	RootEnvVar         = "PATCHWHEEL_ROOT"      // Overrides [paths].root
	LogLevelEnvVar     = "PATCHWHEEL_LOG_LEVEL" // Overrides [log].level
	LanguageEnvVar     = "PATCHWHEEL_LANG"      // Overrides [ui].language
	PlatformEnvVar     = "PLATFORM"             // Device platform, selects the power button device
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton represents an abstract input button, mapped from keyboard keys and
// controller buttons.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonL1
	VirtualButtonR1
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Default timing and spacing constants.
const (
	DefaultInputDelay         = 20 * time.Millisecond // Debounce delay between input events
	DefaultTitleSpacing int32 = 5                     // Vertical spacing below title text
	FrameInterval             = 16 * time.Millisecond // Event wait per loop iteration
)

// PatchExtension is the file extension sent to the synthesizer when chosen.
const PatchExtension = ".syx"

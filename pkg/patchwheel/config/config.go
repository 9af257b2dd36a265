// Package config loads the patchwheel TOML configuration.
//
// A missing file is not an error: every field has a default that reproduces the
// portrait touchscreen build. Values are layered defaults < file < environment < flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/constants"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/wheel"
)

// Layout names accepted in [ui].layout.
const (
	LayoutCompact = "compact" // portrait, toolbar above the wheel, centre line raised
	LayoutFull    = "full"    // landscape, wheel centred on the canvas
)

// Theme names accepted in [ui].theme.
const (
	ThemeClassic = "classic"
	ThemeSolar   = "solar"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the full application configuration.
type Config struct {
	Paths Paths `toml:"paths"`
	Wheel Wheel `toml:"wheel"`
	MIDI  MIDI  `toml:"midi"`
	UI    UI    `toml:"ui"`
	Log   Log   `toml:"log"`
}

// Paths are the folders the browser navigates between. Relative paths resolve against Root.
type Paths struct {
	Root      string `toml:"root"`
	Home      string `toml:"home"`
	Bookmarks string `toml:"bookmarks"`
	Downloads string `toml:"downloads"`
}

// Wheel overrides the wheel settings of the chosen layout. Zero values keep the layout default.
type Wheel struct {
	ItemHeight    float64 `toml:"item_height"`
	DragThreshold float64 `toml:"drag_threshold"`
	Damping       float64 `toml:"damping"`
	BaseFontSize  float64 `toml:"base_font_size"`
	MaxFontSize   float64 `toml:"max_font_size"`
	FrameDelayMS  int     `toml:"frame_delay_ms"`
	CenterOffset  float64 `toml:"center_offset"`
}

// MIDI holds the external tools used to talk to the synthesizer. Command arguments may
// contain the placeholders {file}, {port}, {in}, {out} and {dir}.
type MIDI struct {
	ListCommand     []string `toml:"list_command"`
	SendCommand     []string `toml:"send_command"`
	RequestCommand  []string `toml:"request_command"`
	WorkDir         string   `toml:"work_dir"`
	PreferredPrefix string   `toml:"preferred_prefix"`
	TimeoutSeconds  int      `toml:"timeout_seconds"`
}

// Features toggles optional toolbar actions.
type Features struct {
	Search   bool `toml:"search"`
	Rename   bool `toml:"rename"`
	Keyboard bool `toml:"keyboard"`
}

// UI configures the presentation layer.
type UI struct {
	Theme          string   `toml:"theme"`
	Layout         string   `toml:"layout"`
	ToolbarColumns int      `toml:"toolbar_columns"`
	Fullscreen     bool     `toml:"fullscreen"`
	Language       string   `toml:"language"`
	ShowHidden     bool     `toml:"show_hidden"`
	FontPath       string   `toml:"font_path"`
	Background     string   `toml:"background_image"` // Optional image behind the browser
	Features       Features `toml:"features"`
}

// Log configures the application logger.
type Log struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is present.
func Default(root string) Config {
	return Config{
		Paths: Paths{
			Root: root,
		},
		MIDI: MIDI{
			ListCommand:     []string{"amidi", "-l"},
			SendCommand:     []string{"python", "-m", "tools.get_soundmondo_voice", "-m", "{file}", "-p", "{port}"},
			RequestCommand:  []string{"python", "-m", "tools.request_patch", "-i", "{in}", "-o", "{out}", "-p", "{dir}/"},
			PreferredPrefix: "reface",
			TimeoutSeconds:  30,
		},
		UI: UI{
			Theme:          ThemeSolar,
			Layout:         LayoutCompact,
			ToolbarColumns: 5,
			Fullscreen:     true,
			Language:       "en",
			Features: Features{
				Search:   true,
				Rename:   true,
				Keyboard: true,
			},
		},
		Log: Log{
			Path:  filepath.Join(root, "logs", "patchwheel.log"),
			Level: "info",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults. Unknown keys are
// reported as an error so typos do not silently fall back to defaults.
func Load(path string, root string) (Config, error) {
	cfg := Default(root)
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(root), nil
		}
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return cfg, fmt.Errorf("config: %s: unknown keys %s: %w", path, strings.Join(keys, ", "), ErrInvalid)
	}

	return cfg, nil
}

// ApplyEnv overrides fields from the environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(constants.RootEnvVar); v != "" {
		c.Paths.Root = v
	}
	if v := os.Getenv(constants.LogLevelEnvVar); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(constants.LanguageEnvVar); v != "" {
		c.UI.Language = v
	}
	if constants.IsDevMode() {
		c.UI.Fullscreen = false
	}
}

// Resolve makes every path absolute and fills the derived folders.
func (c *Config) Resolve() error {
	root, err := filepath.Abs(c.Paths.Root)
	if err != nil {
		return fmt.Errorf("config: resolve root %q: %w", c.Paths.Root, err)
	}
	c.Paths.Root = root

	c.Paths.Home = resolveAgainst(root, c.Paths.Home, "Home")
	c.Paths.Bookmarks = resolveAgainst(c.Paths.Home, c.Paths.Bookmarks, "Bookmarks")
	c.Paths.Downloads = resolveAgainst(c.Paths.Home, c.Paths.Downloads, "Downloads")
	c.MIDI.WorkDir = resolveAgainst(root, c.MIDI.WorkDir, ".")
	if c.Log.Path != "" {
		c.Log.Path = resolveAgainst(root, c.Log.Path, "")
	}
	return nil
}

func resolveAgainst(base, value, fallback string) string {
	if value == "" {
		value = fallback
	}
	if filepath.IsAbs(value) {
		return filepath.Clean(value)
	}
	return filepath.Join(base, value)
}

// Validate checks values the UI cannot recover from.
func (c Config) Validate() error {
	var problems []string

	if c.Wheel.ItemHeight < 0 {
		problems = append(problems, "wheel.item_height must be positive")
	}
	if c.Wheel.Damping < 0 || c.Wheel.Damping > 1 {
		problems = append(problems, "wheel.damping must be within (0, 1]")
	}
	if c.Wheel.FrameDelayMS < 0 {
		problems = append(problems, "wheel.frame_delay_ms must not be negative")
	}
	if c.Wheel.MaxFontSize != 0 && c.Wheel.MaxFontSize < c.Wheel.BaseFontSize {
		problems = append(problems, "wheel.max_font_size must not be below base_font_size")
	}
	if c.UI.ToolbarColumns < 1 {
		problems = append(problems, "ui.toolbar_columns must be at least 1")
	}
	switch c.UI.Layout {
	case LayoutCompact, LayoutFull:
	default:
		problems = append(problems, fmt.Sprintf("ui.layout %q is not %q or %q", c.UI.Layout, LayoutCompact, LayoutFull))
	}
	switch c.UI.Theme {
	case ThemeClassic, ThemeSolar:
	default:
		problems = append(problems, fmt.Sprintf("ui.theme %q is not %q or %q", c.UI.Theme, ThemeClassic, ThemeSolar))
	}
	if len(c.MIDI.SendCommand) == 0 {
		problems = append(problems, "midi.send_command is empty")
	}
	if c.MIDI.TimeoutSeconds < 0 {
		problems = append(problems, "midi.timeout_seconds must not be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("config: %s: %w", strings.Join(problems, "; "), ErrInvalid)
	}
	return nil
}

// WheelSettings returns the selector settings for the configured layout.
func (c Config) WheelSettings() wheel.Settings {
	s := wheel.DefaultSettings()
	if c.UI.Layout == LayoutCompact {
		s = wheel.CompactSettings()
	}

	w := c.Wheel
	if w.ItemHeight > 0 {
		s.ItemHeight = w.ItemHeight
	}
	if w.DragThreshold > 0 {
		s.DragThreshold = w.DragThreshold
	}
	if w.Damping > 0 {
		s.Damping = w.Damping
	}
	if w.BaseFontSize > 0 {
		s.BaseFontSize = w.BaseFontSize
	}
	if w.MaxFontSize > 0 {
		s.MaxFontSize = w.MaxFontSize
	}
	if w.FrameDelayMS > 0 {
		s.FrameDelay = time.Duration(w.FrameDelayMS) * time.Millisecond
	}
	if w.CenterOffset != 0 {
		s.CenterOffset = w.CenterOffset
	}
	return s
}

// MIDITimeout returns the subprocess timeout, zero meaning none.
func (c Config) MIDITimeout() time.Duration {
	return time.Duration(c.MIDI.TimeoutSeconds) * time.Second
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

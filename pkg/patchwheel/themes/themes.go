// Package themes provides the colour schemes of the browser.
package themes

import (
	"fmt"

	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/config"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/internal"
)

// Classic is the original black scheme: pale selected rows, steel blue idle rows and
// guide lines, green for the row chosen last.
func Classic(fontPath string) internal.Theme {
	return internal.Theme{
		BackgroundColor:  internal.HexToColor(0x000000),
		HeaderColor:      internal.HexToColor(0x1A1A1A),
		AccentColor:      internal.HexToColor(0x81A2B8),
		ButtonLabelColor: internal.HexToColor(0x000000),
		TextColor:        internal.HexToColor(0xEDF0F2),
		HintColor:        internal.HexToColor(0x81A2B8),
		SelectedColor:    internal.HexToColor(0xEDF0F2),
		ClickedColor:     internal.HexToColor(0x00FF00),
		IdleColor:        internal.HexToColor(0x81A2B8),
		PlaceholderColor: internal.HexToColor(0xFF0000),
		WarningColor:     internal.HexToColor(0xFFC107),
		ErrorColor:       internal.HexToColor(0xFF5252),
		FontPath:         fontPath,
	}
}

// Solar is the default scheme, built on the Solarized palette.
func Solar(fontPath string) internal.Theme {
	return internal.Theme{
		BackgroundColor:  internal.HexToColor(0x002B36),
		HeaderColor:      internal.HexToColor(0x073642),
		AccentColor:      internal.HexToColor(0x268BD2),
		ButtonLabelColor: internal.HexToColor(0xFDF6E3),
		TextColor:        internal.HexToColor(0xEEE8D5),
		HintColor:        internal.HexToColor(0x839496),
		SelectedColor:    internal.HexToColor(0xFDF6E3),
		ClickedColor:     internal.HexToColor(0x2AA198),
		IdleColor:        internal.HexToColor(0x657B83),
		PlaceholderColor: internal.HexToColor(0xDC322F),
		WarningColor:     internal.HexToColor(0xB58900),
		ErrorColor:       internal.HexToColor(0xDC322F),
		FontPath:         fontPath,
	}
}

// ByName returns the theme called name, as accepted in [ui].theme.
func ByName(name, fontPath string) (internal.Theme, error) {
	switch name {
	case config.ThemeClassic:
		return Classic(fontPath), nil
	case config.ThemeSolar, "":
		return Solar(fontPath), nil
	default:
		return internal.Theme{}, fmt.Errorf("unknown theme %q", name)
	}
}

// FromConfig returns the theme configured in ui, with its font and background image.
func FromConfig(ui config.UI) (internal.Theme, error) {
	theme, err := ByName(ui.Theme, ui.FontPath)
	if err != nil {
		return internal.Theme{}, err
	}
	theme.BackgroundImagePath = ui.Background
	return theme, nil
}

package internal

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/veandco/go-sdl2/ttf"
)

// ErrNoFont is returned when neither the configured font nor a system font exists.
var ErrNoFont = errors.New("no usable font found")

// SystemFontCandidates are tried in order when the theme has no font path.
var SystemFontCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/truetype/freefont/FreeSans.ttf",
	"/System/Library/Fonts/Supplemental/Verdana.ttf",
	"/Library/Fonts/Arial.ttf",
	"C:\\Windows\\Fonts\\verdana.ttf",
}

// FontSizes are the point sizes of the shared fonts.
type FontSizes struct {
	Small  int
	Medium int
	Large  int
}

// DefaultFontSizes suit a 480 pixel wide portrait screen.
var DefaultFontSizes = FontSizes{
	Small:  14,
	Medium: 18,
	Large:  24,
}

type fontSet struct {
	SmallFont  *ttf.Font
	MediumFont *ttf.Font
	LargeFont  *ttf.Font
}

// Fonts are the shared regular fonts, opened by Init.
var Fonts fontSet

type fontKey struct {
	size int
	bold bool
}

// FontCache opens one font file at any size and weight on demand.
type FontCache struct {
	path  string
	fonts map[fontKey]*ttf.Font
}

var fontCache *FontCache

// ResolveFontPath returns preferred when it exists, otherwise the first existing
// candidate.
func ResolveFontPath(preferred string, candidates []string, exists func(string) bool) (string, error) {
	if exists == nil {
		exists = fileExists
	}
	if preferred != "" {
		if exists(preferred) {
			return preferred, nil
		}
		GetInternalLogger().Warn("Theme font not found; searching system fonts", "path", preferred)
	}
	for _, c := range candidates {
		if exists(c) {
			return c, nil
		}
	}
	return "", ErrNoFont
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// NewFontCache creates a cache over the font file at path.
func NewFontCache(path string) *FontCache {
	return &FontCache{path: path, fonts: make(map[fontKey]*ttf.Font)}
}

// Get returns the font at size points, opening it on first use.
func (c *FontCache) Get(size int, bold bool) (*ttf.Font, error) {
	if size < 1 {
		size = 1
	}
	key := fontKey{size: size, bold: bold}
	if f, ok := c.fonts[key]; ok {
		return f, nil
	}

	f, err := ttf.OpenFont(c.path, size)
	if err != nil {
		return nil, fmt.Errorf("open font %s at %d: %w", c.path, size, err)
	}
	if bold {
		f.SetStyle(ttf.STYLE_BOLD)
	}
	c.fonts[key] = f
	return f, nil
}

// Close closes every opened font.
func (c *FontCache) Close() {
	for key, f := range c.fonts {
		f.Close()
		delete(c.fonts, key)
	}
}

// FontSize rounds a fractional wheel font size to the cached point size.
func FontSize(size float64) int {
	return max(1, int(math.Round(size)))
}

// GetFont returns the shared font at size points.
func GetFont(size int, bold bool) (*ttf.Font, error) {
	if fontCache == nil {
		return nil, ErrNoFont
	}
	return fontCache.Get(size, bold)
}

func initFonts(preferred string, sizes FontSizes) error {
	path, err := ResolveFontPath(preferred, SystemFontCandidates, nil)
	if err != nil {
		return err
	}
	GetInternalLogger().Debug("Using font", "path", path)

	fontCache = NewFontCache(path)

	if Fonts.SmallFont, err = fontCache.Get(sizes.Small, false); err != nil {
		return err
	}
	if Fonts.MediumFont, err = fontCache.Get(sizes.Medium, false); err != nil {
		return err
	}
	if Fonts.LargeFont, err = fontCache.Get(sizes.Large, true); err != nil {
		return err
	}
	return nil
}

func closeFonts() {
	if fontCache != nil {
		fontCache.Close()
	}
	Fonts = fontSet{}
}

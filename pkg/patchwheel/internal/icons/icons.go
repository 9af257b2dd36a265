// Package icons rasterizes the embedded toolbar SVGs into RGBA images.
package icons

import (
	"embed"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed svg/*.svg
var sources embed.FS

// Names returns the names of all embedded icons, sorted.
func Names() []string {
	paths, _ := fs.Glob(sources, "svg/*.svg")
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		names = append(names, strings.TrimSuffix(path.Base(p), ".svg"))
	}
	sort.Strings(names)
	return names
}

// Render draws the icon called name into a size x size image. Shapes painted with
// currentColor take tint.
func Render(name string, size int, tint color.Color) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icon %s: invalid size %d", name, size)
	}

	data, err := sources.ReadFile("svg/" + name + ".svg")
	if err != nil {
		return nil, fmt.Errorf("icon %s: %w", name, err)
	}

	svg := strings.ReplaceAll(string(data), "currentColor", hex(tint))
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("icon %s: %w", name, err)
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	icon.SetTarget(0, 0, float64(size), float64(size))

	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

func hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
}

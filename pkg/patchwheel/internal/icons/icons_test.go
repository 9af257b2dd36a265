package icons

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/constants"
)

func TestEveryToolbarIconExists(t *testing.T) {
	want := []string{
		constants.IconParent, constants.IconHome, constants.IconBookmarks, constants.IconBookmark,
		constants.IconNewFolder, constants.IconDelete, constants.IconPatch, constants.IconDownloads,
		constants.IconEdit, constants.IconSearch, constants.IconMIDIDevices,
	}
	assert.ElementsMatch(t, want, Names())
}

func TestRender(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			img, err := Render(name, 48, red)
			require.NoError(t, err)
			assert.Equal(t, 48, img.Bounds().Dx())

			painted := 0
			for i := 0; i < len(img.Pix); i += 4 {
				if img.Pix[i+3] == 0 {
					continue
				}
				painted++
				assert.Zero(t, img.Pix[i+1], "green channel at byte %d", i)
			}
			assert.Positive(t, painted, "icon is blank")
		})
	}
}

func TestRenderErrors(t *testing.T) {
	_, err := Render("nope", 24, color.White)
	assert.Error(t, err)

	_, err = Render(constants.IconHome, 0, color.White)
	assert.Error(t, err)
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#FFFFFF", hex(color.White))
	assert.Equal(t, "#0A8000", hex(color.RGBA{R: 10, G: 128, A: 255}))
}

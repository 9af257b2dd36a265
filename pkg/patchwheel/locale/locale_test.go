package locale

import (
	"reflect"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguages(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)
	assert.Equal(t, []string{"de", "en"}, c.Languages())
}

func TestLocalize(t *testing.T) {
	c := MustCatalog()

	en := c.Localizer("en")
	assert.Equal(t, "Saved Patches", en.T(ToolbarDownloads, nil))
	assert.Equal(t, "Are you sure you want to delete 'brass.syx'?", en.T(DeletePrompt, map[string]any{"Name": "brass.syx"}))

	de := c.Localizer("de-DE")
	assert.Equal(t, "Leerer Ordner", de.T(EmptyFolder, nil))

	fallback := c.Localizer("fr")
	assert.Equal(t, "Empty Folder", fallback.T(EmptyFolder, nil))
}

func TestPlural(t *testing.T) {
	en := MustCatalog().Localizer("en")
	assert.Equal(t, "Found 1 matching file.", en.N(SearchFound, 1, nil))
	assert.Equal(t, "Found 12 matching files.", en.N(SearchFound, 12, nil))
}

func TestUnknownIDFallsBackToID(t *testing.T) {
	en := MustCatalog().Localizer("en")
	assert.Equal(t, "NoSuchMessage", en.T("NoSuchMessage", nil))

	var nilLocalizer *Localizer
	assert.Equal(t, EmptyFolder, nilLocalizer.T(EmptyFolder, nil))
}

// Every ID constant must be present in every catalog.
func TestCatalogsComplete(t *testing.T) {
	ids := []string{
		ToolbarParent, ToolbarHome, ToolbarBookmarks, ToolbarAddBookmark, ToolbarNewFolder,
		ToolbarDelete, ToolbarRequestPatch, ToolbarDownloads, ToolbarRename, ToolbarSearch,
		ToolbarDevices, EmptyFolder, SearchResults, NoMIDIDevice, TitleSuccess, TitleWarning,
		TitleError, ButtonYes, ButtonNo, ButtonOK, ButtonCancel, ButtonEnter, NewFolderTitle,
		NewFolderPrompt, DeleteTitle, DeletePrompt, RenameTitle, RenamePrompt, SearchTitle,
		SearchPrompt, SearchFound, SearchNone, NoResultsTitle, DeviceTitle, DeviceNone,
		BookmarkTitle, BookmarkRoot, BookmarkCreateFolder, BookmarkNewFolderPrompt,
		BookmarkSaved, BookmarkExists, RequestSaved, RequestFailed, SendFailed, OpenFailed,
		ListFailed, CreateFolderFailed, DeleteFailed, RenameFailed, BookmarkFailed, SearchFailed,
	}

	for _, name := range []string{"catalogs/active.en.toml", "catalogs/active.de.toml"} {
		t.Run(name, func(t *testing.T) {
			data, err := catalogs.ReadFile(name)
			require.NoError(t, err)

			var messages map[string]any
			require.NoError(t, toml.Unmarshal(data, &messages))

			for _, id := range ids {
				assert.Contains(t, messages, id)
			}
			assert.Len(t, messages, len(ids), "catalog has IDs without a constant")
			assert.Equal(t, reflect.Map, reflect.TypeOf(messages[SearchFound]).Kind())
		})
	}
}

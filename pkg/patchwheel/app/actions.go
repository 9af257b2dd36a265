package app

import (
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/config"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/constants"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/locale"
)

// Action is a command from the toolbar or the keypad.
type Action int

const (
	ActionParent Action = iota
	ActionHome
	ActionBookmarks
	ActionAddBookmark
	ActionNewFolder
	ActionDelete
	ActionRequestPatch
	ActionDownloads
	ActionRename
	ActionSearch
	ActionPickDevice

	// ActionChoose is a row activated on the wheel. It has no toolbar button.
	ActionChoose
)

var actionInfo = map[Action]struct {
	name  string
	icon  string
	label string
}{
	ActionParent:       {"parent", constants.IconParent, locale.ToolbarParent},
	ActionHome:         {"home", constants.IconHome, locale.ToolbarHome},
	ActionBookmarks:    {"bookmarks", constants.IconBookmarks, locale.ToolbarBookmarks},
	ActionAddBookmark:  {"add_bookmark", constants.IconBookmark, locale.ToolbarAddBookmark},
	ActionNewFolder:    {"new_folder", constants.IconNewFolder, locale.ToolbarNewFolder},
	ActionDelete:       {"delete", constants.IconDelete, locale.ToolbarDelete},
	ActionRequestPatch: {"request_patch", constants.IconPatch, locale.ToolbarRequestPatch},
	ActionDownloads:    {"downloads", constants.IconDownloads, locale.ToolbarDownloads},
	ActionRename:       {"rename", constants.IconEdit, locale.ToolbarRename},
	ActionSearch:       {"search", constants.IconSearch, locale.ToolbarSearch},
	ActionPickDevice:   {"pick_device", constants.IconMIDIDevices, locale.ToolbarDevices},
	ActionChoose:       {"choose", "", ""},
}

func (a Action) String() string {
	if info, ok := actionInfo[a]; ok {
		return info.name
	}
	return "unknown"
}

// Icon returns the toolbar icon name.
func (a Action) Icon() string {
	return actionInfo[a].icon
}

// Label returns the message ID of the toolbar caption.
func (a Action) Label() string {
	return actionInfo[a].label
}

// Toolbar returns the toolbar buttons in display order. Rename and Search are
// optional features.
func Toolbar(features config.Features) []Action {
	actions := []Action{
		ActionParent,
		ActionHome,
		ActionBookmarks,
		ActionAddBookmark,
		ActionNewFolder,
		ActionDelete,
		ActionRequestPatch,
		ActionDownloads,
	}
	if features.Rename {
		actions = append(actions, ActionRename)
	}
	if features.Search {
		actions = append(actions, ActionSearch)
	}
	return actions
}

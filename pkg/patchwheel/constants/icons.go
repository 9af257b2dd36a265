package constants

// Icon names for the toolbar. Each maps to an SVG under internal/icons.
const (
	IconParent      = "parent"
	IconHome        = "home"
	IconBookmarks   = "bookmarks"
	IconBookmark    = "bookmark"
	IconNewFolder   = "new_folder"
	IconDelete      = "delete"
	IconPatch       = "patch"
	IconDownloads   = "downloads"
	IconEdit        = "edit"
	IconSearch      = "search"
	IconMIDIDevices = "midi"
)

package locale

// Message IDs. Every ID has an entry in each catalog.
const (
	ToolbarParent       = "ToolbarParent"
	ToolbarHome         = "ToolbarHome"
	ToolbarBookmarks    = "ToolbarBookmarks"
	ToolbarAddBookmark  = "ToolbarAddBookmark"
	ToolbarNewFolder    = "ToolbarNewFolder"
	ToolbarDelete       = "ToolbarDelete"
	ToolbarRequestPatch = "ToolbarRequestPatch"
	ToolbarDownloads    = "ToolbarDownloads"
	ToolbarRename       = "ToolbarRename"
	ToolbarSearch       = "ToolbarSearch"
	ToolbarDevices      = "ToolbarDevices"

	EmptyFolder   = "EmptyFolder"
	SearchResults = "SearchResults"
	NoMIDIDevice  = "NoMIDIDevice"

	TitleSuccess = "TitleSuccess"
	TitleWarning = "TitleWarning"
	TitleError   = "TitleError"

	ButtonYes    = "ButtonYes"
	ButtonNo     = "ButtonNo"
	ButtonOK     = "ButtonOK"
	ButtonCancel = "ButtonCancel"
	ButtonEnter  = "ButtonEnter"

	NewFolderTitle  = "NewFolderTitle"
	NewFolderPrompt = "NewFolderPrompt"
	DeleteTitle     = "DeleteTitle"
	DeletePrompt    = "DeletePrompt"
	RenameTitle     = "RenameTitle"
	RenamePrompt    = "RenamePrompt"
	SearchTitle     = "SearchTitle"
	SearchPrompt    = "SearchPrompt"
	SearchFound     = "SearchFound"
	SearchNone      = "SearchNone"
	NoResultsTitle  = "NoResultsTitle"
	DeviceTitle     = "DeviceTitle"
	DeviceNone      = "DeviceNone"

	BookmarkTitle           = "BookmarkTitle"
	BookmarkRoot            = "BookmarkRoot"
	BookmarkCreateFolder    = "BookmarkCreateFolder"
	BookmarkNewFolderPrompt = "BookmarkNewFolderPrompt"
	BookmarkSaved           = "BookmarkSaved"
	BookmarkExists          = "BookmarkExists"

	RequestSaved  = "RequestSaved"
	RequestFailed = "RequestFailed"
	SendFailed    = "SendFailed"
	OpenFailed    = "OpenFailed"

	ListFailed         = "ListFailed"
	CreateFolderFailed = "CreateFolderFailed"
	DeleteFailed       = "DeleteFailed"
	RenameFailed       = "RenameFailed"
	BookmarkFailed     = "BookmarkFailed"
	SearchFailed       = "SearchFailed"
)

package app

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/files"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/locale"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/midi"
)

// Perform runs a toolbar action. Actions that need input return the first Request of
// their dialog; actions that finish at once return nil or a notice.
func (c *Controller) Perform(ctx context.Context, action Action) *Request {
	c.logger.Debug("action", "action", action.String(), "path", c.path)

	switch action {
	case ActionParent:
		return c.parent()
	case ActionHome:
		return c.jump(action, c.opts.Paths.Home)
	case ActionBookmarks:
		return c.jump(action, c.opts.Paths.Bookmarks)
	case ActionDownloads:
		return c.jump(action, c.opts.Paths.Downloads)
	case ActionNewFolder:
		return &Request{
			Kind:    RequestPrompt,
			Title:   c.t(locale.NewFolderTitle, nil),
			Message: c.t(locale.NewFolderPrompt, nil),
			Initial: files.UniqueName(c.path, files.DefaultFolderName),
			step:    stepNewFolder,
			target:  c.path,
		}
	case ActionDelete:
		entry, ok := c.Selected()
		if !ok {
			return nil
		}
		return &Request{
			Kind:    RequestConfirm,
			Title:   c.t(locale.DeleteTitle, nil),
			Message: c.t(locale.DeletePrompt, map[string]any{"Name": entry.Name}),
			step:    stepConfirmDelete,
			target:  entry.Path,
			name:    entry.Name,
		}
	case ActionRename:
		entry, ok := c.Selected()
		if !ok {
			return nil
		}
		return &Request{
			Kind:    RequestPrompt,
			Title:   c.t(locale.RenameTitle, nil),
			Message: c.t(locale.RenamePrompt, map[string]any{"Name": entry.Name}),
			Initial: entry.Name,
			step:    stepRename,
			target:  entry.Path,
			name:    entry.Name,
		}
	case ActionSearch:
		return &Request{
			Kind:    RequestPrompt,
			Title:   c.t(locale.SearchTitle, nil),
			Message: c.t(locale.SearchPrompt, nil),
			step:    stepSearch,
		}
	case ActionAddBookmark:
		return c.pickBookmarkFolder()
	case ActionRequestPatch:
		return c.requestPatch(ctx)
	case ActionPickDevice:
		return c.pickDevice(ctx)
	}
	return nil
}

// Complete finishes the operation req belongs to with the user's answer. It returns
// the next dialog of the operation, a notice with its outcome, or nil.
func (c *Controller) Complete(ctx context.Context, req *Request, answer Answer) *Request {
	if req == nil || answer.Cancelled {
		return nil
	}

	switch req.step {
	case stepNewFolder:
		path, err := files.CreateFolder(req.target, answer.Text)
		if err != nil {
			return c.failure(ActionNewFolder, req.target, locale.CreateFolderFailed, answer.Text, err)
		}
		c.logger.Info("created folder", "path", path)
		return c.refreshAt(path)

	case stepConfirmDelete:
		if !answer.Confirmed {
			return nil
		}
		if err := files.Remove(req.target); err != nil {
			return c.failure(ActionDelete, req.target, locale.DeleteFailed, req.name, err)
		}
		c.logger.Info("deleted", "path", req.target)
		c.dropResult(req.target)
		return c.refreshAt("")

	case stepRename:
		path, err := files.Rename(req.target, answer.Text)
		if err != nil {
			return c.failure(ActionRename, req.target, locale.RenameFailed, req.name, err)
		}
		c.logger.Info("renamed", "from", req.target, "to", path)
		c.renameResult(req.target, path)
		return c.refreshAt(path)

	case stepSearch:
		return c.search(ctx, answer.Text)

	case stepBookmarkFolder:
		switch {
		case answer.Index <= 0:
			return c.bookmark(req, "")
		case answer.Index == len(req.Options)-1:
			return &Request{
				Kind:    RequestPrompt,
				Title:   c.t(locale.NewFolderTitle, nil),
				Message: c.t(locale.BookmarkNewFolderPrompt, nil),
				step:    stepBookmarkNewFolder,
				target:  req.target,
				name:    req.name,
			}
		case answer.Index < len(req.Options):
			return c.bookmark(req, req.Options[answer.Index])
		}
		return nil

	case stepBookmarkNewFolder:
		return c.bookmark(req, answer.Text)

	case stepPickDevice:
		if answer.Index < 0 || answer.Index >= len(c.devices) {
			return nil
		}
		c.device = answer.Index
		c.logger.Info("selected MIDI device", "device", c.DeviceName())
	}
	return nil
}

// refreshAt reloads the current folder and selects path when given.
func (c *Controller) refreshAt(path string) *Request {
	if err := c.Reload(); err != nil {
		return c.failure(ActionParent, c.path, locale.ListFailed, filepath.Base(c.path), err)
	}
	if path != "" && !c.searching {
		c.selectPath(path)
	}
	return nil
}

// dropResult removes a deleted entry from the search results.
func (c *Controller) dropResult(path string) {
	if !c.searching {
		return
	}
	selected := c.wheel.Selected()
	kept := c.entries[:0:0]
	for _, e := range c.entries {
		if e.Path != path {
			kept = append(kept, e)
		}
	}
	c.show(kept)
	c.wheel.Restore(selected, -1)
}

// renameResult keeps a renamed entry in the search results.
func (c *Controller) renameResult(from, to string) {
	if !c.searching {
		return
	}
	selected := c.wheel.Selected()
	entries := append([]files.Entry(nil), c.entries...)
	for i, e := range entries {
		if e.Path == from {
			entries[i].Path = to
			entries[i].Name = filepath.Base(to)
		}
	}
	c.show(entries)
	c.wheel.Restore(selected, -1)
}

// search walks the whole root. Matches replace the listing until Parent is used.
func (c *Controller) search(ctx context.Context, query string) *Request {
	opts := files.WalkOptions{
		IncludeHidden:  c.opts.ShowHidden,
		SkipHiddenDirs: !c.opts.ShowHidden,
	}
	matches, err := files.Search(ctx, c.opts.Paths.Root, query, opts)
	if err != nil {
		return c.failure(ActionSearch, c.opts.Paths.Root, locale.SearchFailed, query, err)
	}

	c.logger.Info("search", "query", query, "matches", len(matches))

	if len(matches) == 0 {
		return &Request{
			Kind:    RequestNotice,
			Level:   NoticeWarning,
			Title:   c.t(locale.NoResultsTitle, nil),
			Message: c.t(locale.SearchNone, nil),
		}
	}

	if !c.searching {
		c.history.Push(folderScreen, c.path, c.resume())
	}
	c.searching = true
	c.title = c.t(locale.SearchResults, nil)
	c.show(matches)

	return &Request{
		Kind:    RequestNotice,
		Level:   NoticeInfo,
		Title:   c.t(locale.SearchResults, nil),
		Message: c.opts.Locale.N(locale.SearchFound, len(matches), nil),
	}
}

func (c *Controller) pickBookmarkFolder() *Request {
	entry, ok := c.Selected()
	if !ok {
		return nil
	}

	folders, err := files.BookmarkFolders(c.opts.Paths.Bookmarks)
	if err != nil {
		return c.failure(ActionAddBookmark, c.opts.Paths.Bookmarks, locale.BookmarkFailed, entry.Name, err)
	}

	options := make([]string, 0, len(folders)+2)
	options = append(options, c.t(locale.BookmarkRoot, nil))
	options = append(options, folders...)
	options = append(options, c.t(locale.BookmarkCreateFolder, nil))

	current := 0
	for i, f := range folders {
		if f == c.lastBookmarkFolder {
			current = i + 1
			break
		}
	}

	return &Request{
		Kind:    RequestPick,
		Title:   c.t(locale.BookmarkTitle, nil),
		Options: options,
		Current: current,
		step:    stepBookmarkFolder,
		target:  entry.Path,
		name:    entry.Name,
	}
}

func (c *Controller) bookmark(r *Request, folder string) *Request {
	root := c.opts.Paths.Bookmarks

	_, err := files.Bookmark(r.target, root, folder)
	switch {
	case errors.Is(err, files.ErrBookmarkExists):
		return &Request{
			Kind:    RequestNotice,
			Level:   NoticeWarning,
			Title:   c.t(locale.TitleWarning, nil),
			Message: c.t(locale.BookmarkExists, nil),
		}
	case err != nil:
		return c.failure(ActionAddBookmark, r.target, locale.BookmarkFailed, r.name, err)
	}

	c.lastBookmarkFolder = folder
	c.logger.Info("bookmarked", "path", r.target, "folder", folder)

	if !c.searching && c.path == filepath.Join(root, folder) {
		c.refreshAt("")
	}

	label := folder
	if label == "" {
		label = c.t(locale.BookmarkRoot, nil)
	}
	return c.notice(NoticeInfo, c.t(locale.BookmarkSaved, map[string]any{
		"Name":   r.name,
		"Folder": label,
	}))
}

func (c *Controller) requestPatch(ctx context.Context) *Request {
	port, ok := c.port(ctx)
	if !ok {
		return c.noDevice()
	}

	dir := c.opts.Paths.Downloads
	if err := c.opts.MIDI.Request(ctx, port, dir); err != nil {
		actionErr := &ActionError{Action: ActionRequestPatch, Path: dir, Err: err}
		c.logger.Error("action failed", "error", actionErr)
		return c.notice(NoticeError, c.t(locale.RequestFailed, map[string]any{"Error": userError(err)}))
	}
	c.logger.Info("requested patch", "port", port, "dir", dir)

	if !c.searching && c.path == dir {
		c.refreshAt("")
	}
	return c.notice(NoticeInfo, c.t(locale.RequestSaved, map[string]any{"Folder": dir}))
}

func (c *Controller) pickDevice(ctx context.Context) *Request {
	c.RefreshDevices(ctx)
	if len(c.devices) == 0 {
		return c.noDevice()
	}
	return &Request{
		Kind:    RequestPick,
		Title:   c.t(locale.DeviceTitle, nil),
		Options: midi.Names(c.devices),
		Current: max(c.device, 0),
		step:    stepPickDevice,
	}
}

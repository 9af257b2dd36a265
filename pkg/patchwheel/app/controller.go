// Package app is the patch browser without a screen: it owns the current folder, the
// listing shown by the wheel, search mode, the chosen MIDI device and the bookmark
// folder last used. Operations that need the user's input return a Request; the
// presentation layer shows it and hands the answer back to Complete.
package app

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/config"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/constants"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/files"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/locale"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/midi"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/router"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/wheel"
)

// MIDI is the subset of midi.Tool the controller uses.
type MIDI interface {
	Devices(ctx context.Context) ([]midi.Device, error)
	Send(ctx context.Context, file string, port int) error
	Request(ctx context.Context, port int, dir string) error
}

// Opener hands a file that is not a patch to the desktop.
type Opener func(ctx context.Context, path string) error

// Options configures a Controller.
type Options struct {
	Paths      config.Paths
	ShowHidden bool

	// PreferredDevice is the name prefix of the MIDI device picked on start.
	PreferredDevice string

	Wheel  wheel.Settings
	MIDI   MIDI
	Open   Opener
	Locale *locale.Localizer
	Logger *slog.Logger
}

// Resume is the wheel position remembered for a folder in the history.
type Resume struct {
	Selected int
	Clicked  int
}

// folderScreen marks history entries; every entry is a folder.
const folderScreen router.Screen = 0

// Controller drives the browser. Like the wheel it is not safe for concurrent use.
type Controller struct {
	opts    Options
	logger  *slog.Logger
	wheel   *wheel.Selector
	history *router.Stack

	path      string
	title     string
	entries   []files.Entry
	searching bool

	lastBookmarkFolder string

	devices []midi.Device
	device  int

	chosen int
}

// New creates a Controller. Call Start before use.
func New(opts Options) *Controller {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Open == nil {
		opts.Open = SystemOpener
	}

	c := &Controller{
		opts:    opts,
		logger:  opts.Logger,
		wheel:   wheel.New(opts.Wheel),
		history: router.NewStack(),
		device:  -1,
		chosen:  -1,
	}
	c.wheel.Placeholder = c.t(locale.EmptyFolder, nil)
	c.wheel.OnChoose = func(index int, _ string) {
		c.chosen = index
	}
	return c
}

// Start creates the home, bookmarks and downloads folders, looks for MIDI devices
// and opens the home folder.
func (c *Controller) Start(ctx context.Context) error {
	p := c.opts.Paths
	if err := files.EnsureDirs(p.Home, p.Bookmarks, p.Downloads); err != nil {
		return err
	}

	c.RefreshDevices(ctx)
	return c.Open(p.Home)
}

// Wheel returns the selector showing the current listing.
func (c *Controller) Wheel() *wheel.Selector {
	return c.wheel
}

// Path returns the current folder. In search mode it is the folder the search
// started from.
func (c *Controller) Path() string {
	return c.path
}

// Title returns the header label: the folder name, or the search results label.
func (c *Controller) Title() string {
	return c.title
}

// Entries returns the listing behind the wheel rows.
func (c *Controller) Entries() []files.Entry {
	return c.entries
}

// Searching reports whether the wheel shows search results.
func (c *Controller) Searching() bool {
	return c.searching
}

// History returns the number of folders Parent can go back through.
func (c *Controller) History() int {
	return c.history.Len()
}

// Open lists dir and shows it on the wheel. The wheel selection is reset. On error
// the current listing is kept.
func (c *Controller) Open(dir string) error {
	entries, err := files.List(dir, files.ListOptions{IncludeHidden: c.opts.ShowHidden})
	if err != nil {
		return err
	}

	c.path = dir
	c.title = filepath.Base(dir)
	c.searching = false
	c.show(entries)

	c.logger.Debug("opened folder", "path", dir, "entries", len(entries))
	return nil
}

// Reload lists the current folder again and keeps the selection where it was. Search
// results are not refreshed.
func (c *Controller) Reload() error {
	if c.searching {
		return nil
	}
	selected := c.wheel.Selected()
	if err := c.Open(c.path); err != nil {
		return err
	}
	c.wheel.Restore(selected, -1)
	return nil
}

func (c *Controller) show(entries []files.Entry) {
	c.entries = entries
	c.chosen = -1
	c.wheel.Load(files.Names(entries))
}

// selectPath moves the wheel to the entry at path, if listed.
func (c *Controller) selectPath(path string) {
	for i, e := range c.entries {
		if e.Path == path {
			c.wheel.Restore(i, -1)
			return
		}
	}
}

// Selected returns the entry under the selection.
func (c *Controller) Selected() (files.Entry, bool) {
	i := c.wheel.Selected()
	if i < 0 || i >= len(c.entries) {
		return files.Entry{}, false
	}
	return c.entries[i], true
}

// Resolve acts on the row the wheel last emitted, if any: folders are opened, patches
// are sent to the synth and other files go to the opener. Call it after feeding input
// to the wheel.
func (c *Controller) Resolve(ctx context.Context) *Request {
	index := c.chosen
	c.chosen = -1
	if index < 0 || index >= len(c.entries) {
		return nil
	}
	entry := c.entries[index]

	switch {
	case entry.IsDir:
		return c.enter(entry.Path)
	case entry.IsPatch(constants.PatchExtension):
		return c.send(ctx, entry)
	default:
		if err := c.opts.Open(ctx, entry.Path); err != nil {
			return c.failure(ActionChoose, entry.Path, locale.OpenFailed, entry.Name, err)
		}
		c.logger.Info("opened file", "path", entry.Path)
		return nil
	}
}

// enter opens a child folder and remembers where the wheel was in the current one.
// Leaving search results keeps the folder pushed when the search started.
func (c *Controller) enter(dir string) *Request {
	pushed := false
	if !c.searching {
		c.history.Push(folderScreen, c.path, c.resume())
		pushed = true
	}

	if err := c.Open(dir); err != nil {
		if pushed {
			c.history.Pop()
		}
		return c.failure(ActionChoose, dir, locale.ListFailed, filepath.Base(dir), err)
	}
	return nil
}

func (c *Controller) resume() Resume {
	return Resume{Selected: c.wheel.Selected(), Clicked: c.wheel.Clicked()}
}

// restore reopens a history entry at its remembered position.
func (c *Controller) restore(entry router.StackEntry) error {
	dir, _ := entry.Input.(string)
	if err := c.Open(dir); err != nil {
		return err
	}
	if r, ok := entry.Resume.(Resume); ok {
		c.wheel.Restore(r.Selected, r.Clicked)
	}
	return nil
}

// parent leaves search mode, or goes up one folder. Coming back to a folder from the
// history restores its position; otherwise the folder just left is selected.
func (c *Controller) parent() *Request {
	if c.searching {
		top := c.history.PopIf(func(e router.StackEntry) bool { return e.Input == c.path })
		var err error
		if top != nil {
			err = c.restore(*top)
		} else {
			err = c.Open(c.path)
		}
		if err != nil {
			return c.failure(ActionParent, c.path, locale.ListFailed, filepath.Base(c.path), err)
		}
		return nil
	}

	dir := filepath.Dir(c.path)
	if dir == c.path {
		return nil
	}

	if top := c.history.PopIf(func(e router.StackEntry) bool { return e.Input == dir }); top != nil {
		if err := c.restore(*top); err != nil {
			return c.failure(ActionParent, dir, locale.ListFailed, filepath.Base(dir), err)
		}
		return nil
	}

	child := c.path
	c.history.Clear()
	if err := c.Open(dir); err != nil {
		return c.failure(ActionParent, dir, locale.ListFailed, filepath.Base(dir), err)
	}
	c.selectPath(child)
	return nil
}

// jump opens one of the fixed folders and forgets the history.
func (c *Controller) jump(action Action, dir string) *Request {
	if err := c.Open(dir); err != nil {
		return c.failure(action, dir, locale.ListFailed, filepath.Base(dir), err)
	}
	c.history.Clear()
	return nil
}

// RefreshDevices lists the MIDI ports again. The chosen device is kept when still
// connected; otherwise the preferred one is picked.
func (c *Controller) RefreshDevices(ctx context.Context) {
	if c.opts.MIDI == nil {
		return
	}

	previous := c.DeviceName()

	devices, err := c.opts.MIDI.Devices(ctx)
	if err != nil {
		c.logger.Warn("failed to list MIDI devices", "error", err)
	}
	c.devices = devices

	c.device = -1
	if previous != "" {
		for i, d := range devices {
			if d.String() == previous {
				c.device = i
				break
			}
		}
	}
	if c.device < 0 {
		if i, err := midi.Preferred(devices, c.opts.PreferredDevice); err == nil {
			c.device = i
		}
	}

	c.logger.Debug("MIDI devices", "count", len(devices), "selected", c.DeviceName())
}

// Devices returns the last device listing.
func (c *Controller) Devices() []midi.Device {
	return c.devices
}

// DeviceName returns the chosen device name, or "" when there is none.
func (c *Controller) DeviceName() string {
	if c.device < 0 || c.device >= len(c.devices) {
		return ""
	}
	return c.devices[c.device].String()
}

// DeviceLabel returns the text for the device pill in the header.
func (c *Controller) DeviceLabel() string {
	if name := c.DeviceName(); name != "" {
		return name
	}
	return c.t(locale.NoMIDIDevice, nil)
}

// port returns the port number of the chosen device, listing the devices first when
// none is known.
func (c *Controller) port(ctx context.Context) (int, bool) {
	if c.DeviceName() == "" {
		c.RefreshDevices(ctx)
	}
	if c.DeviceName() == "" {
		return 0, false
	}
	return midi.PortIndex(c.devices, c.DeviceName()), true
}

func (c *Controller) send(ctx context.Context, entry files.Entry) *Request {
	port, ok := c.port(ctx)
	if !ok {
		return c.noDevice()
	}

	if err := c.opts.MIDI.Send(ctx, entry.Path, port); err != nil {
		return c.failure(ActionChoose, entry.Path, locale.SendFailed, entry.Name, err)
	}
	c.logger.Info("sent patch", "path", entry.Path, "port", port)
	return nil
}

func (c *Controller) noDevice() *Request {
	return c.notice(NoticeWarning, c.t(locale.DeviceNone, nil))
}

func (c *Controller) t(id string, data map[string]any) string {
	return c.opts.Locale.T(id, data)
}

func (c *Controller) notice(level NoticeLevel, message string) *Request {
	title := locale.TitleSuccess
	switch level {
	case NoticeWarning:
		title = locale.TitleWarning
	case NoticeError:
		title = locale.TitleError
	}
	return &Request{
		Kind:    RequestNotice,
		Level:   level,
		Title:   c.t(title, nil),
		Message: message,
	}
}

// failure logs a failed operation and returns the error notice for it.
func (c *Controller) failure(action Action, path, messageID, name string, err error) *Request {
	actionErr := &ActionError{Action: action, Path: path, Err: err}
	c.logger.Error("action failed", "error", actionErr)

	return c.notice(NoticeError, c.t(messageID, map[string]any{
		"Name":  name,
		"Error": userError(err),
	}))
}

// userError strips the path prefixes the file layer adds, leaving the reason.
func userError(err error) string {
	for _, sentinel := range []error{
		files.ErrNotFound,
		files.ErrInvalidName,
		files.ErrExists,
		files.ErrBookmarkExists,
		midi.ErrNoDevice,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}

	var cmdErr *midi.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Tail != "" {
		return cmdErr.Tail
	}
	return err.Error()
}

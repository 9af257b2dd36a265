package patchwheel

import (
	"context"
	"errors"
	"fmt"

	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/app"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/internal"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/locale"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/router"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	screenBrowser router.Screen = iota
	screenDialog
)

// completer finishes an operation with the answer to its dialog.
type completer func(ctx context.Context, req *app.Request, answer app.Answer) *app.Request

// newTransition routes between the browser and the dialogs it asks for. A dialog
// answer goes back to complete; a follow-up request opens the next dialog, otherwise
// the browser is shown again.
func newTransition(ctx context.Context, complete completer) router.TransitionFunc {
	return func(_ router.Screen, result any, _ *router.Stack) (router.Screen, any) {
		switch r := result.(type) {
		case *BrowserResult:
			if r.Action == BrowserActionQuit || r.Request == nil {
				return router.ScreenExit, nil
			}
			return screenDialog, r.Request

		case *DialogResult:
			if next := complete(ctx, r.Request, r.Answer); next != nil {
				return screenDialog, next
			}
			return screenBrowser, nil
		}
		return router.ScreenExit, nil
	}
}

// Run shows the browser for ctrl until the window is closed or ctx is done. Init must
// have been called and ctrl started.
func Run(ctx context.Context, ctrl *app.Controller, settings BrowserSettings) error {
	if settings.Locale == nil {
		settings.Locale = locale.MustCatalog().Localizer()
	}

	browser, err := NewBrowser(ctrl, settings)
	if err != nil {
		return err
	}
	defer browser.Close()

	r := router.New().
		Register(screenBrowser, "browser", func(ctx context.Context, _ any) (any, error) {
			return browser.Show(ctx)
		}).
		Register(screenDialog, "dialog", func(_ context.Context, input any) (any, error) {
			req, ok := input.(*app.Request)
			if !ok {
				return nil, fmt.Errorf("unexpected dialog input %T", input)
			}
			return showDialog(req, settings)
		}).
		OnTransition(newTransition(ctx, ctrl.Complete))

	err = r.Run(ctx, screenBrowser, nil)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// showDialog shows the dialog for req and collects the answer.
func showDialog(req *app.Request, settings BrowserSettings) (*DialogResult, error) {
	l := settings.Locale
	result := &DialogResult{Request: req}

	internal.GetInternalLogger().Debug("Showing dialog", "kind", req.Kind.String(), "title", req.Title)

	switch req.Kind {
	case app.RequestPrompt:
		text, err := Prompt(req.Title, req.Message, req.Initial, PromptSettings{
			OnScreenKeyboard: settings.Features.Keyboard,
			EnterLabel:       l.T(locale.ButtonEnter, nil),
			CancelLabel:      l.T(locale.ButtonCancel, nil),
		})
		if err != nil {
			return answerError(result, err)
		}
		result.Answer = app.Answer{Text: text}

	case app.RequestConfirm:
		confirmed, err := Confirm(req.Title, req.Message, l.T(locale.ButtonYes, nil), l.T(locale.ButtonNo, nil))
		if err != nil {
			return answerError(result, err)
		}
		result.Answer = app.Answer{Confirmed: confirmed}

	case app.RequestPick:
		index, err := Pick(req.Title, req.Options, PickSettings{
			InitialSelection: req.Current,
			FooterHelpItems: []FooterHelpItem{
				{ButtonName: "A", HelpText: l.T(locale.ButtonOK, nil)},
				{ButtonName: "B", HelpText: l.T(locale.ButtonCancel, nil)},
			},
		})
		if err != nil {
			return answerError(result, err)
		}
		result.Answer = app.Answer{Index: index}

	case app.RequestNotice:
		Notice(req.Title, req.Message, l.T(locale.ButtonOK, nil), noticeColor(internal.GetTheme(), req.Level))
		result.Answer = app.Answer{Confirmed: true}

	default:
		result.Answer = app.Cancel()
	}

	return result, nil
}

func answerError(result *DialogResult, err error) (*DialogResult, error) {
	if IsCancelled(err) {
		result.Answer = app.Cancel()
		return result, nil
	}
	return nil, err
}

// noticeColor is the title colour of a notice.
func noticeColor(theme internal.Theme, level app.NoticeLevel) sdl.Color {
	switch level {
	case app.NoticeWarning:
		return theme.WarningColor
	case app.NoticeError:
		return theme.ErrorColor
	default:
		return theme.TextColor
	}
}

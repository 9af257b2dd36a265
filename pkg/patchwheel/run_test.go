package patchwheel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/app"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/internal"
	"github.com/BrandonKowalski/patchwheel/pkg/patchwheel/router"
)

func TestTransition(t *testing.T) {
	confirm := &app.Request{Kind: app.RequestConfirm, Title: "Delete"}
	notice := &app.Request{Kind: app.RequestNotice, Title: "Error"}

	var answers []app.Answer
	transition := newTransition(context.Background(), func(_ context.Context, req *app.Request, answer app.Answer) *app.Request {
		answers = append(answers, answer)
		if req == confirm {
			return notice
		}
		return nil
	})
	stack := router.NewStack()

	next, input := transition(screenBrowser, &BrowserResult{Action: BrowserActionRequest, Request: confirm}, stack)
	assert.Equal(t, screenDialog, next)
	assert.Same(t, confirm, input)

	next, input = transition(screenDialog, &DialogResult{Request: confirm, Answer: app.Answer{Confirmed: true}}, stack)
	assert.Equal(t, screenDialog, next, "a follow-up request opens the next dialog")
	assert.Same(t, notice, input)

	next, input = transition(screenDialog, &DialogResult{Request: notice, Answer: app.Answer{Confirmed: true}}, stack)
	assert.Equal(t, screenBrowser, next)
	assert.Nil(t, input)

	assert.Equal(t, []app.Answer{{Confirmed: true}, {Confirmed: true}}, answers)

	next, _ = transition(screenBrowser, &BrowserResult{Action: BrowserActionQuit}, stack)
	assert.Equal(t, router.ScreenExit, next)

	next, _ = transition(screenBrowser, "unexpected", stack)
	assert.Equal(t, router.ScreenExit, next)
}

func TestTransitionRunsRouter(t *testing.T) {
	req := &app.Request{Kind: app.RequestPrompt}
	shown := 0

	r := router.New().
		Register(screenBrowser, "browser", func(context.Context, any) (any, error) {
			shown++
			if shown > 1 {
				return &BrowserResult{Action: BrowserActionQuit}, nil
			}
			return &BrowserResult{Action: BrowserActionRequest, Request: req}, nil
		}).
		Register(screenDialog, "dialog", func(_ context.Context, input any) (any, error) {
			return &DialogResult{Request: input.(*app.Request), Answer: app.Answer{Text: "Pads"}}, nil
		}).
		OnTransition(newTransition(context.Background(), func(_ context.Context, _ *app.Request, answer app.Answer) *app.Request {
			assert.Equal(t, "Pads", answer.Text)
			return nil
		}))

	require.NoError(t, r.Run(context.Background(), screenBrowser, nil))
	assert.Equal(t, 2, shown)
}

func TestAnswerError(t *testing.T) {
	req := &app.Request{Kind: app.RequestPick}

	result, err := answerError(&DialogResult{Request: req}, ErrCancelled)
	require.NoError(t, err)
	assert.True(t, result.Answer.Cancelled)

	boom := errors.New("renderer lost")
	result, err = answerError(&DialogResult{Request: req}, boom)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, result)
}

func TestNoticeColor(t *testing.T) {
	theme := internal.Theme{
		TextColor:    sdl.Color{R: 1},
		WarningColor: sdl.Color{R: 2},
		ErrorColor:   sdl.Color{R: 3},
	}

	assert.Equal(t, theme.TextColor, noticeColor(theme, app.NoticeInfo))
	assert.Equal(t, theme.WarningColor, noticeColor(theme, app.NoticeWarning))
	assert.Equal(t, theme.ErrorColor, noticeColor(theme, app.NoticeError))
}

func TestErrors(t *testing.T) {
	err := NewInfrastructureError("init", errors.New("no display"))

	assert.EqualError(t, err, "patchwheel: init: no display")
	assert.True(t, IsInfrastructureError(err))
	assert.False(t, IsInfrastructureError(ErrCancelled))
	assert.True(t, IsCancelled(ErrCancelled))
	assert.EqualError(t, NewInfrastructureError("load_icons", nil), "patchwheel: load_icons")
}

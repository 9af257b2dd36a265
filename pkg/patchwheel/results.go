package patchwheel

import "github.com/BrandonKowalski/patchwheel/pkg/patchwheel/app"

// BrowserAction is why the browser screen returned.
type BrowserAction int

const (
	BrowserActionQuit    BrowserAction = iota // Window closed or context done
	BrowserActionRequest                      // An operation needs a dialog
)

// BrowserResult is the result of the browser screen.
type BrowserResult struct {
	Action  BrowserAction
	Request *app.Request // set for BrowserActionRequest
}

// DialogResult is the result of the dialog screen: the request shown and the user's answer.
type DialogResult struct {
	Request *app.Request
	Answer  app.Answer
}

// Package router runs screens with explicit data flow.
//
// Each screen has its own input and result types, and one transition function holds
// every routing decision. patchwheel uses it for the browser and its dialogs: the
// browser screen returns the dialog it needs, the dialog screen returns the user's
// answer, and the transition function decides which screen comes next.
//
// # Basic Usage
//
//	const (
//	    ScreenBrowser router.Screen = iota
//	    ScreenConfirm
//	)
//
//	r := router.New()
//
//	r.Register(ScreenBrowser, "browser", func(ctx context.Context, input any) (any, error) {
//	    return browser.Run(ctx, input.(BrowserInput))
//	})
//
//	r.Register(ScreenConfirm, "confirm", func(ctx context.Context, input any) (any, error) {
//	    return confirm(input.(ConfirmInput))
//	})
//
//	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
//	    switch from {
//	    case ScreenBrowser:
//	        res := result.(BrowserResult)
//	        if res.Quit {
//	            return router.ScreenExit, nil
//	        }
//	        return ScreenConfirm, ConfirmInput{Message: res.Message}
//	    case ScreenConfirm:
//	        return ScreenBrowser, BrowserInput{}
//	    }
//	    return router.ScreenExit, nil
//	})
//
//	err := r.Run(ctx, ScreenBrowser, BrowserInput{})
//
// # Resume State
//
// Screens can return resume state, such as the selected row of a folder. It is kept
// on the stack when navigating forward and handed back through the input when
// navigating back, so the screen can restore its position. Stateless screens
// (dialogs, confirmations) leave Resume nil.
package router

package router

import (
	"context"
	"errors"
	"fmt"
)

// Screen is a type-safe identifier for screens.
// Applications define their own Screen constants using iota.
type Screen int

// ScreenFunc runs a screen. The input and result types are screen-specific.
type ScreenFunc func(ctx context.Context, input any) (result any, err error)

// TransitionFunc is called after each screen completes to determine the next screen.
// It receives the screen that just completed, its result, and the navigation stack.
//
// Return (screen, input) to navigate to a new screen.
// Return stack.Pop() values to go back.
// Return (ScreenExit, nil) to exit the router.
type TransitionFunc func(from Screen, result any, stack *Stack) (next Screen, input any)

// ScreenExit is a special Screen value that signals the router to exit.
const ScreenExit Screen = -1

// ErrNoTransition is returned by Run when OnTransition was never called.
var ErrNoTransition = errors.New("router: no transition function set")

// Router runs screens one after another. Screens are registered with their functions,
// and a single transition function holds all routing logic.
type Router struct {
	screens    map[Screen]ScreenFunc
	names      map[Screen]string
	transition TransitionFunc
	stack      *Stack
}

// New creates a new Router.
func New() *Router {
	return &Router{
		screens: make(map[Screen]ScreenFunc),
		names:   make(map[Screen]string),
		stack:   NewStack(),
	}
}

// Register adds a screen to the router under a name used in errors.
func (r *Router) Register(screen Screen, name string, fn ScreenFunc) *Router {
	r.screens[screen] = fn
	r.names[screen] = name
	return r
}

// OnTransition sets the transition function.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// Name returns the registered name of screen.
func (r *Router) Name(screen Screen) string {
	if screen == ScreenExit {
		return "exit"
	}
	if name, ok := r.names[screen]; ok && name != "" {
		return name
	}
	return fmt.Sprintf("screen %d", screen)
}

// Run starts at the given screen and keeps running until the transition function
// returns ScreenExit, a screen fails or ctx is done.
func (r *Router) Run(ctx context.Context, start Screen, input any) error {
	if r.transition == nil {
		return ErrNoTransition
	}

	current := start
	currentInput := input

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fn, ok := r.screens[current]
		if !ok {
			return fmt.Errorf("router: %s not registered", r.Name(current))
		}

		result, err := fn(ctx, currentInput)
		if err != nil {
			return fmt.Errorf("router: %s: %w", r.Name(current), err)
		}

		next, nextInput := r.transition(current, result, r.stack)
		if next == ScreenExit {
			return nil
		}

		current = next
		currentInput = nextInput
	}
}

// Stack returns the navigation stack for use in transition functions.
func (r *Router) Stack() *Stack {
	return r.stack
}

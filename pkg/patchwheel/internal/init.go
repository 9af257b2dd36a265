// Package internal contains the SDL side of patchwheel: window and renderer setup,
// fonts, input mapping, theming, drawing helpers and the power button listener.
// Types and functions in this package are not part of the public API.
package internal

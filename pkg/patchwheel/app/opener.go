package app

import (
	"context"
	"os/exec"
	"runtime"
)

// SystemOpener opens path with the desktop's default application.
func SystemOpener(ctx context.Context, path string) error {
	name := "xdg-open"
	switch runtime.GOOS {
	case "darwin":
		name = "open"
	case "windows":
		return exec.CommandContext(ctx, "explorer.exe", path).Start()
	}
	return exec.CommandContext(ctx, name, path).Start()
}

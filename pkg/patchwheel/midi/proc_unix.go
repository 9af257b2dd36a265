//go:build unix

package midi

import (
	"errors"
	"os"
	"os/exec"
	"syscall"
)

// killGroup starts cmd in a new process group and kills the group on cancel, so helpers
// forked by wrapper scripts go with it.
func killGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
		if errors.Is(err, syscall.ESRCH) {
			return os.ErrProcessDone
		}
		return err
	}
}

package util

import (
	"os/exec"

	"leetterm/log"
)

// Command creates a new exec.Cmd and logs it
func Command(source string, name string, arg ...string) *exec.Cmd {
	cmd := exec.Command(name, arg...)
	log.InfoLog.Printf("[%s] exec: %s", source, cmd.String())
	return cmd
}

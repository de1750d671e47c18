package dashboard

import (
	"os/exec"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"
)

func notify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// runCmd executes cmd without a shell. Empty commands are a no-op.
func runCmd(cmd string) error {
	if cmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(cmd)
	if err != nil {
		return errParseCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	return exec.Command(name, args...).Run()
}

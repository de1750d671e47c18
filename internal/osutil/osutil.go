// Package osutil holds platform names and process exit codes
package osutil

const (
	Windows = "windows"
	Darwin  = "darwin"
)

type exitCode int

const ExitError exitCode = 1

// Int returns the code for os.Exit.
func (c exitCode) Int() int {
	return int(c)
}

const DirPermission = 0o755

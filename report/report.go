// Package report prints user-facing errors
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/daysleft/internal/osutil"
)

// Quit reports err and exits the process.
func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(osutil.ExitError.Int())
}

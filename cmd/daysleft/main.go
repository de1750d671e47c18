package main

import (
	"os"
	_ "time/tzdata"

	"github.com/ayoisaiah/daysleft/app"
	"github.com/ayoisaiah/daysleft/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Quit(err)
	}
}

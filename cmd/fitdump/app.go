package main

import (
	"github.com/urfave/cli/v2"
)

func newFitdumpApp() *cli.App {
	return &cli.App{
		Name:  "fitdump",
		Usage: "inspect Garmin FIT activity files",
		Description: "fitdump decodes a FIT file's record section and prints either every " +
			"field value or a summary of the definition messages the file uses.",
		Commands: []*cli.Command{
			dumpCommand(),
			listCommand(),
		},
	}
}

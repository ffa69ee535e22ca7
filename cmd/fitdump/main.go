// Package main provides fitdump, a command-line utility to inspect
// Garmin FIT activity files: either a full field-by-field dump, or a
// summary of the definition messages a document uses.
package main

import (
	"log"
	"os"
)

func main() {
	app := newFitdumpApp()
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("fitdump: %v", err)
	}
}

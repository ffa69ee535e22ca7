package main

import (
	"fmt"
	"os"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/scigolib/fit"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "summarize the definition messages a file uses",
		ArgsUsage: "<file.fit>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.Exit("expected exactly one FIT file", 1)
			}
			return runList(c.Args().First())
		},
	}
}

func runList(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	tbl := table.New("local", "global", "fingerprint")

	discard := &discardSink{}
	err = fit.DecodeSliceObserved(data, discard, func(local uint8, global uint16, fingerprint uint64) {
		tbl.AddRow(local, global, fmt.Sprintf("%016x", fingerprint))
	})
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	tbl.Print()
	return nil
}

// discardSink drops every record; the list command only cares about the
// definition fingerprints DecodeSliceObserved reports along the way, one
// per data record.
type discardSink struct{}

func (discardSink) AddRecord(uint16) (fit.FromRecord, bool) { return nil, false }

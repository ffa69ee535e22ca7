package main

import (
	"fmt"
	"os"

	figure "github.com/common-nighthawk/go-figure"
	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/scigolib/fit"
)

func dumpCommand() *cli.Command {
	return &cli.Command{
		Name:      "dump",
		Usage:     "print every decoded field, one row per value",
		ArgsUsage: "<file.fit>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.Exit("expected exactly one FIT file", 1)
			}
			return runDump(c.Args().First())
		},
	}
}

func runDump(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	figure.NewFigure("fitdump", "", true).Print()

	tbl := table.New("global", "field", "kind", "value")
	sink := &dumpSink{table: &tbl}

	if err := fit.DecodeSlice(data, sink); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	tbl.Print()
	return nil
}

// dumpSink is the document-level FromRecords sink for the dump command: it
// hands out a fresh dumpRecord, bound to the current global message
// number, for every data record. All records share the same table
// pointer so their rows land in one output.
type dumpSink struct {
	table *table.Table
}

func (s *dumpSink) AddRecord(global uint16) (fit.FromRecord, bool) {
	return &dumpRecord{table: s.table, global: global}, true
}

// dumpRecord appends one table row per dispatched field value.
type dumpRecord struct {
	table  *table.Table
	global uint16
}

func (r *dumpRecord) AddTimeOffset(offset uint8) {
	r.table.AddRow(r.global, "time_offset", "u8", offset)
}

func (r *dumpRecord) AddU8(field uint8, v uint8)    { r.table.AddRow(r.global, field, "u8", v) }
func (r *dumpRecord) AddI8(field uint8, v int8)     { r.table.AddRow(r.global, field, "i8", v) }
func (r *dumpRecord) AddU16(field uint8, v uint16)  { r.table.AddRow(r.global, field, "u16", v) }
func (r *dumpRecord) AddI16(field uint8, v int16)   { r.table.AddRow(r.global, field, "i16", v) }
func (r *dumpRecord) AddU32(field uint8, v uint32)  { r.table.AddRow(r.global, field, "u32", v) }
func (r *dumpRecord) AddI32(field uint8, v int32)   { r.table.AddRow(r.global, field, "i32", v) }
func (r *dumpRecord) AddU64(field uint8, v uint64)  { r.table.AddRow(r.global, field, "u64", v) }
func (r *dumpRecord) AddI64(field uint8, v int64)   { r.table.AddRow(r.global, field, "i64", v) }
func (r *dumpRecord) AddF32(field uint8, v float32) { r.table.AddRow(r.global, field, "f32", v) }
func (r *dumpRecord) AddF64(field uint8, v float64) { r.table.AddRow(r.global, field, "f64", v) }

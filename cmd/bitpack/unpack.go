package main

import (
	"github.com/segmentio/bitfield/internal/debug"
)

type unpackCommand struct {
	Layout string `arg:"" type:"existingfile" help:"Path to the JSON layout file."`
	Value  string `arg:"" help:"Packed value, decimal or 0x prefixed hexadecimal."`
}

func (cmd *unpackCommand) Run(ctx *runContext) error {
	c, err := loadLayout(cmd.Layout)
	if err != nil {
		return err
	}

	v, err := parseValue(cmd.Value)
	if err != nil {
		return err
	}
	if err := c.unpack(v); err != nil {
		return err
	}

	debug.Format("unpacked %d fields from %s", c.layout().FieldCount(), v)
	writeFieldTable(ctx.stdout, c.layout(), true)
	return nil
}

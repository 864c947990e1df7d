package main

import (
	"fmt"
	"strings"

	"github.com/segmentio/bitfield/internal/debug"
)

type packCommand struct {
	Layout string   `arg:"" type:"existingfile" help:"Path to the JSON layout file."`
	Values []string `arg:"" optional:"" help:"Field values, as name=value pairs."`
}

func (cmd *packCommand) Run(ctx *runContext) error {
	c, err := loadLayout(cmd.Layout)
	if err != nil {
		return err
	}

	for _, arg := range cmd.Values {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("malformed field value %q, expected name=value", arg)
		}
		v, err := parseValue(value)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if err := c.layout().SetBigValue(name, v); err != nil {
			return err
		}
	}

	packed, err := c.pack()
	if err != nil {
		return err
	}

	debug.Format("packed %d fields into %d bits", c.layout().FieldCount(), packed.BitLen())
	_, err = fmt.Fprintf(ctx.stdout, "%s\n%#x\n", packed, packed)
	return err
}

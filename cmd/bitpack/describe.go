package main

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/segmentio/bitfield"
)

type describeCommand struct {
	Text   bool   `help:"Print the layout as text instead of a table."`
	Layout string `arg:"" type:"existingfile" help:"Path to the JSON layout file."`
}

func (cmd *describeCommand) Run(ctx *runContext) error {
	c, err := loadLayout(cmd.Layout)
	if err != nil {
		return err
	}
	if cmd.Text {
		if err := bitfield.Print(ctx.stdout, "", c.layout()); err != nil {
			return err
		}
		_, err := io.WriteString(ctx.stdout, "\n")
		return err
	}
	writeFieldTable(ctx.stdout, c.layout(), false)
	return nil
}

// writeFieldTable renders the fields of l, including their current values when
// withValues is true.
func writeFieldTable(w io.Writer, l *bitfield.Layout, withValues bool) {
	table := tablewriter.NewWriter(w)
	header := []string{"Field", "Offset", "Width", "Min", "Max"}
	if withValues {
		header = append(header, "Value")
	}
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, f := range l.Fields() {
		row := []string{
			f.Name(),
			strconv.Itoa(f.Offset()),
			strconv.Itoa(f.Width()),
			f.Min().String(),
			f.Max().String(),
		}
		if withValues {
			v, _ := l.BigValue(f.Name())
			row = append(row, v.String())
		}
		table.Append(row)
	}

	footer := []string{"", "", strconv.Itoa(l.TotalBitWidth()), "", ""}
	if withValues {
		footer = append(footer, "")
	}
	table.SetFooter(footer)
	table.Render()
}

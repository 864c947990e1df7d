// Command bitpack packs and unpacks field values described by a layout file.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/segmentio/bitfield/internal/debug"
)

type cli struct {
	Debug bool `help:"Display debugging logs."`

	Describe describeCommand `cmd:"" help:"Print the fields of a layout."`
	Pack     packCommand     `cmd:"" help:"Pack field values into a single integer."`
	Unpack   unpackCommand   `cmd:"" help:"Unpack an integer into field values."`
}

type runContext struct {
	stdout io.Writer
}

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("bitpack"),
		kong.Description("Pack and unpack bit fields described by a JSON layout file."),
		kong.UsageOnError(),
	)

	debug.Toggle(c.Debug)

	if err := ctx.Run(&runContext{stdout: os.Stdout}); err != nil {
		perrorf("%s", err)
		os.Exit(1)
	}
}

func perrorf(format string, args ...interface{}) {
	msg := strings.TrimSuffix(fmt.Sprintf(format, args...), "\n")
	_, _ = fmt.Fprintln(os.Stderr, errorStyle.Render(msg))
}

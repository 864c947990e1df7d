package bitfield

import (
	"io"
	"strconv"
	"strings"
)

// Print writes a description of layout to w, one field per line.
//
// Fields are written in the order they were added, with their width, name,
// bounds and offset, for example:
//
//	layout pixel {
//		uint8 R [0, 255] @0;
//		uint7 delta [-50, 50] @8;
//	}
func Print(w io.Writer, name string, layout *Layout) error {
	return PrintIndent(w, name, layout, "\t", "\n")
}

// PrintIndent is like Print but uses pattern to indent fields and newline to
// separate them.
func PrintIndent(w io.Writer, name string, layout *Layout, pattern, newline string) error {
	pw := &printWriter{writer: w}
	pw.WriteString("layout ")

	if name == "" {
		pw.WriteString("{")
	} else {
		pw.WriteString(name)
		pw.WriteString(" {")
	}

	if len(layout.fields) > 0 {
		pi := &printIndent{
			pattern: pattern,
			newline: newline,
			repeat:  1,
		}

		pi.writeNewLine(pw)

		for i := range layout.fields {
			printField(pw, &layout.fields[i], pi)
			pi.writeNewLine(pw)
		}
	}

	pw.WriteString("}")
	return pw.err
}

func (l *Layout) String() string {
	s := new(strings.Builder)
	PrintIndent(s, "", l, "", " ")
	return s.String()
}

func printField(w io.StringWriter, f *Field, indent *printIndent) {
	indent.writeTo(w)
	w.WriteString("uint")
	w.WriteString(strconv.Itoa(f.width))
	w.WriteString(" ")
	w.WriteString(f.name)
	w.WriteString(" [")
	w.WriteString(f.min.String())
	w.WriteString(", ")
	w.WriteString(f.max.String())
	w.WriteString("] @")
	w.WriteString(strconv.Itoa(f.offset))
	w.WriteString(";")
}

type printIndent struct {
	pattern string
	newline string
	repeat  int
}

func (i *printIndent) writeTo(w io.StringWriter) {
	if i.pattern != "" {
		for n := i.repeat; n > 0; n-- {
			w.WriteString(i.pattern)
		}
	}
}

func (i *printIndent) writeNewLine(w io.StringWriter) {
	if i.newline != "" {
		w.WriteString(i.newline)
	}
}

type printWriter struct {
	writer io.Writer
	err    error
}

func (w *printWriter) WriteString(s string) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := io.WriteString(w.writer, s)
	if err != nil {
		w.err = err
	}
	return n, err
}

var (
	_ io.StringWriter = (*printWriter)(nil)
)

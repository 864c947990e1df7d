package bitfield

import (
	"fmt"
	"strings"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Compatible returns nil if l and other have the same sequence of fields, in
// which case values packed with one can be unpacked with the other. Bit limits
// and current values are not compared.
//
// Otherwise the returned error wraps ErrIncompatibleLayout and carries a
// unified diff of the two layouts.
func (l *Layout) Compatible(other *Layout) error {
	if sameFields(l.fields, other.fields) {
		return nil
	}

	a, b := new(strings.Builder), new(strings.Builder)
	Print(a, "", l)
	Print(b, "", other)
	a.WriteString("\n")
	b.WriteString("\n")

	edits := myers.ComputeEdits(span.URIFromPath("a"), a.String(), b.String())
	diff := fmt.Sprint(gotextdiff.ToUnified("a", "b", a.String(), edits))
	return fmt.Errorf("%w:\n%s", ErrIncompatibleLayout, diff)
}

func sameFields(a, b []Field) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		fa, fb := &a[i], &b[i]
		if fa.name != fb.name || fa.offset != fb.offset || fa.width != fb.width ||
			fa.min.Cmp(fb.min) != 0 || fa.max.Cmp(fb.max) != 0 {
			return false
		}
	}
	return true
}

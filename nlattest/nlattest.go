// Package nlattest provides helpers to make attribute codec test
// failures legible. It carries no protocol semantics.
package nlattest

import (
	"fmt"
	"io"
	"strings"
	"testing"
)

// DumpHex writes bs to w in 16-byte rows: a 4-digit hex offset, the
// row's bytes as space-separated hex pairs, and an ASCII column with
// non-printable bytes shown as dots.
func DumpHex(w io.Writer, bs []byte) {
	for off := 0; off < len(bs); off += 16 {
		row := bs[off:min(off+16, len(bs))]
		var hex, ascii strings.Builder
		for i, b := range row {
			if i > 0 {
				hex.WriteByte(' ')
			}
			fmt.Fprintf(&hex, "%02x", b)
			if b >= 0x20 && b < 0x7f {
				ascii.WriteByte(b)
			} else {
				ascii.WriteByte('.')
			}
		}
		fmt.Fprintf(w, "%04x: %-47s  %s\n", off, hex.String(), ascii.String())
	}
}

// Dump returns the [DumpHex] rendering of bs as a string.
func Dump(bs []byte) string {
	var sb strings.Builder
	DumpHex(&sb, bs)
	return sb.String()
}

// AssertEqual fails the test fatally if got and want differ, dumping
// both buffers and reporting where they diverge.
func AssertEqual(t *testing.T, got, want []byte) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("buffer lengths differ: got %d, want %d\ngot:\n%swant:\n%s",
			len(got), len(want), Dump(got), Dump(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("buffers differ at byte %d (0x%x)\ngot:\n%swant:\n%s",
				i, i, Dump(got), Dump(want))
		}
	}
}

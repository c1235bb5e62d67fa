package nlattr_test

import (
	"encoding/binary"
	"testing"

	"github.com/danderson/nlattr"
	"github.com/danderson/nlattr/nlattest"
)

// The wire format is native byte order, so expected buffers are built
// with the same order rather than hardcoded byte literals.
func u16(vs ...uint16) []byte {
	var out []byte
	for _, v := range vs {
		out = binary.NativeEndian.AppendUint16(out, v)
	}
	return out
}

func u32(v uint32) []byte {
	return binary.NativeEndian.AppendUint32(nil, v)
}

func u64(v uint64) []byte {
	return binary.NativeEndian.AppendUint64(nil, v)
}

func cat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestEncoder(t *testing.T) {
	tests := []struct {
		name string
		in   func(*nlattr.Encoder)
		want []byte
	}{
		{
			"header and payload",
			func(e *nlattr.Encoder) {
				e.Header(5, 3)
				e.Write([]byte{1, 2, 3})
				e.Pad()
			},
			cat(u16(7, 5), []byte{1, 2, 3, 0}),
		},

		{
			"bytes",
			func(e *nlattr.Encoder) {
				e.Bytes(5, []byte{1, 2, 3})
			},
			cat(u16(7, 5), []byte{1, 2, 3, 0}),
		},

		{
			"empty payload",
			func(e *nlattr.Encoder) {
				e.Header(1, 0)
			},
			u16(4, 1),
		},

		{
			"string",
			func(e *nlattr.Encoder) {
				e.String(3, "eth0")
			},
			cat(u16(9, 3), []byte("eth0\x00"), []byte{0, 0, 0}),
		},

		{
			"uints",
			func(e *nlattr.Encoder) {
				e.Uint16(1, 0x4242)
				e.Uint32(2, 1500)
				e.Uint64(3, 1<<40)
			},
			cat(
				u16(6, 1, 0x4242), []byte{0, 0},
				u16(8, 2), u32(1500),
				u16(12, 3), u64(1<<40),
			),
		},

		{
			"unaligned payload before next header",
			func(e *nlattr.Encoder) {
				e.Header(1, 1)
				e.Write([]byte{9})
				e.Header(2, 0)
			},
			cat(u16(5, 1), []byte{9, 0, 0, 0}, u16(4, 2)),
		},

		{
			"nested placeholder",
			func(e *nlattr.Encoder) {
				e.NestedHeader(1)
			},
			u16(4, 1|nlattr.FlagNested),
		},

		{
			"nested with children",
			func(e *nlattr.Encoder) {
				e.Nested(1, func() {
					e.Uint32(2, 7)
					e.Bytes(3, []byte{0xaa})
				})
			},
			cat(
				u16(20, 1|nlattr.FlagNested),
				u16(8, 2), u32(7),
				u16(5, 3), []byte{0xaa, 0, 0, 0},
			),
		},

		{
			"nested within nested",
			func(e *nlattr.Encoder) {
				outer := e.NestedHeader(1)
				inner := e.NestedHeader(2)
				e.Uint32(3, 1)
				e.FinalizeNested(inner)
				e.FinalizeNested(outer)
			},
			cat(
				u16(16, 1|nlattr.FlagNested),
				u16(12, 2|nlattr.FlagNested),
				u16(8, 3), u32(1),
			),
		},

		{
			"empty nested",
			func(e *nlattr.Encoder) {
				e.Nested(1, func() {})
			},
			u16(4, 1|nlattr.FlagNested),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var e nlattr.Encoder
			tc.in(&e)
			nlattest.AssertEqual(t, e.Out, tc.want)
			if testing.Verbose() {
				t.Logf("encoded: % x", e.Out)
			}
		})
	}
}

// Every buffer built solely through Encoder methods is 4-byte aligned
// after each complete attribute and after every explicit Pad.
func TestEncoderAlignment(t *testing.T) {
	var e nlattr.Encoder
	steps := []func(){
		func() { e.Header(1, 3) },
		func() { e.Write([]byte{1, 2, 3}); e.Pad() },
		func() { e.Bytes(2, []byte{1}) },
		func() { e.String(3, "lo") },
		func() { e.Uint16(4, 1) },
		func() { e.Uint32(5, 1) },
		func() { e.Uint64(6, 1) },
		func() { e.Nested(7, func() { e.Bytes(8, []byte{1, 2, 3, 4, 5}) }) },
	}
	for i, step := range steps {
		step()
		if len(e.Out)%4 != 0 {
			t.Fatalf("output misaligned after step %d: %d bytes", i, len(e.Out))
		}
	}
}

func TestAlignUp(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 0}, {1, 4}, {2, 4}, {3, 4}, {4, 4}, {5, 8}, {7, 8}, {8, 8}, {9, 12},
	}
	for _, tc := range tests {
		if got := nlattr.AlignUp(tc.n); got != tc.want {
			t.Errorf("AlignUp(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestTypeMask(t *testing.T) {
	tests := []struct {
		raw, want uint16
	}{
		{0x000a, 0x000a},
		{0xc00a, 0x000a},
		{0x800a, 0x000a},
		{0x400a, 0x000a},
		{0x3fff, 0x3fff},
	}
	for _, tc := range tests {
		if got := nlattr.TypeMask(tc.raw); got != tc.want {
			t.Errorf("TypeMask(%#04x) = %#04x, want %#04x", tc.raw, got, tc.want)
		}
	}
}

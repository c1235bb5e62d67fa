// Program nlwalk inspects netlink attribute buffers: it walks the
// TLV records in a captured payload and prints them as a tree,
// recursing into nested attributes.
package main

import (
	"fmt"
	"os"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/creachadair/mds/slice"
	"github.com/danderson/nlattr"
	"github.com/danderson/nlattr/nlattest"
	"github.com/kr/pretty"
)

var globalArgs struct {
	HexInput bool `flag:"hex,Input is hex text rather than raw binary"`
}

func main() {
	root := &command.C{
		Name:     "nlwalk",
		Usage:    "command args...",
		SetFlags: command.Flags(flax.MustBind, &globalArgs),
		Commands: []*command.C{
			{
				Name:  "tree",
				Usage: "tree [file]",
				Help: `Decode a buffer of attribute records and print them as a tree.

Reads raw bytes from the given file, or from stdin if the file is "-"
or omitted. Attributes carrying the nested flag are decoded
recursively; flat payloads are shown in hex. Trailing bytes that do
not decode as an attribute record are reported but not shown.

With --hex, the input is hex text (whitespace ignored) instead of raw
bytes, so captures can be pasted straight from other tools.`,
				Run: runTree,
			},
			{
				Name:  "header",
				Usage: "header [file]",
				Help:  "Decode only the first attribute record and print its header.",
				Run:   runHeader,
			},
			{
				Name:  "hex",
				Usage: "hex [file]",
				Help:  "Hex dump a buffer without decoding it.",
				Run:   runHex,
			},
			command.HelpCommand(nil),
			command.VersionCommand(),
		},
	}

	command.RunOrFail(root.NewEnv(nil), os.Args[1:])
}

func runTree(env *command.Env) error {
	bs, err := readInput(env.Args)
	if err != nil {
		return err
	}
	ind := &indenter{}
	printSet(ind, bs, 0)
	return nil
}

// printSet prints the records of one attribute set at the given tree
// depth, recursing into nested payloads.
func printSet(ind *indenter, buf []byte, depth int) {
	var pos int
	for {
		ind.indent(depth)
		hdr, payload, ok := nlattr.ReadHeader(buf, &pos)
		if !ok {
			break
		}
		flags := ""
		if hdr.NetByteOrder {
			flags = " net-byte-order"
		}
		ind.f("attr %d%s (%d payload bytes)", hdr.Type, flags, len(payload))
		if hdr.Nested {
			printSet(ind, payload, depth+1)
		} else {
			ind.indent(depth + 1)
			for _, row := range slice.Chunks(payload, 16) {
				ind.f("% x", row)
			}
		}
	}
	if pos < len(buf) {
		ind.indent(depth)
		ind.f("(%d trailing bytes do not decode as an attribute)", len(buf)-pos)
	}
}

func runHeader(env *command.Env) error {
	bs, err := readInput(env.Args)
	if err != nil {
		return err
	}
	var pos int
	hdr, payload, ok := nlattr.ReadHeader(bs, &pos)
	if !ok {
		return errNoRecord
	}
	pretty.Println(hdr)
	fmt.Printf("payload %d bytes, next record at offset %d\n", len(payload), pos)
	return nil
}

func runHex(env *command.Env) error {
	bs, err := readInput(env.Args)
	if err != nil {
		return err
	}
	nlattest.DumpHex(os.Stdout, bs)
	return nil
}

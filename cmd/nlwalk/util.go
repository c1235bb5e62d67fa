package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

var errNoRecord = errors.New("input does not start with a decodable attribute record")

// readInput reads the buffer named by the command's positional
// arguments: a file path, or stdin when the path is "-" or absent.
// With --hex the input is hex text, ignoring whitespace.
func readInput(args []string) ([]byte, error) {
	var (
		bs  []byte
		err error
	)
	if len(args) == 0 || args[0] == "-" {
		bs, err = io.ReadAll(os.Stdin)
	} else {
		bs, err = os.ReadFile(args[0])
	}
	if err != nil {
		return nil, err
	}
	if !globalArgs.HexInput {
		return bs, nil
	}
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, string(bs))
	out, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("decoding hex input: %w", err)
	}
	return out, nil
}

type indenter struct {
	prefix     string
	indentNext bool
}

func (i *indenter) f(msg string, args ...any) {
	fmt.Fprintf(i, msg+"\n", args...)
}

func (i *indenter) Write(bs []byte) (int, error) {
	ret := 0
	for len(bs) > 0 {
		if i.indentNext {
			i.indentNext = false
			_, err := io.WriteString(os.Stdout, i.prefix)
			if err != nil {
				return ret, err
			}
		}

		var wr []byte
		idx := bytes.IndexByte(bs, '\n')
		if idx >= 0 {
			i.indentNext = true
			wr, bs = bs[:idx+1], bs[idx+1:]
		} else {
			wr, bs = bs, nil
		}

		n, err := os.Stdout.Write(wr)
		ret += n
		if err != nil {
			return ret, err
		}
	}
	return ret, nil
}

func (i *indenter) indent(n int) {
	i.prefix = strings.Repeat("  ", n)
}

package nlattr

import (
	"math"

	"github.com/creachadair/mds/value"
)

// An Iter is a decode cursor over the attribute records of one
// attribute set.
//
// The type parameter Set tags the cursor with the schema it decodes,
// so that generated bindings cannot hand a cursor for one attribute
// set to the parser of another. Set is a phantom: it is never
// instantiated, any type will do.
//
// Besides its remaining bytes, an Iter carries the byte offset of
// those bytes relative to the outermost record set it was carved out
// of, so that decode errors raised deep inside nested attributes
// still report offsets in terms of the whole set.
//
// An Iter only ever reads its buffer, so any number of cursors may
// decode the same bytes concurrently. A single Iter is not safe for
// concurrent use.
type Iter[Set any] struct {
	// Strict makes Missing and Context panic with the rendered error
	// message instead of returning it, pinpointing the failure at its
	// construction site. Intended for test and fuzz binaries.
	Strict bool

	buf  []byte
	base int
}

// NewIter returns a cursor over buf, with error offsets relative to
// the start of buf.
func NewIter[Set any](buf []byte) *Iter[Set] {
	return &Iter[Set]{buf: buf}
}

// NewIterAt returns a cursor over buf, a sub-slice beginning base
// bytes past the start of the outermost record set. Error offsets
// remain relative to the outer set, so cursors for nested attributes
// report locations consistent with their parent's.
func NewIterAt[Set any](buf []byte, base int) *Iter[Set] {
	return &Iter[Set]{buf: buf, base: base}
}

// Buf returns the undecoded remainder of the cursor's buffer.
func (it *Iter[Set]) Buf() []byte { return it.buf }

// Loc returns the offset of the next undecoded byte from the start of
// the outermost record set. Capture it before calling Next to locate
// the record that Next returns.
func (it *Iter[Set]) Loc() int { return it.base }

// Next decodes the next attribute record, consuming it from the
// cursor. It returns false at the end of the set, on a malformed or
// truncated record, or after the cursor has been poisoned by
// [Iter.Context].
func (it *Iter[Set]) Next() (Header, []byte, bool) {
	var pos int
	hdr, payload, ok := ReadHeader(it.buf, &pos)
	if !ok {
		return Header{}, nil, false
	}
	it.buf = it.buf[pos:]
	it.base += pos
	return hdr, payload, true
}

// calcOffset clamps loc, an offset from the start of the outermost
// record set, to the 16-bit form carried by ErrorContext. 0 stands
// for "unknown or not representable".
func (it *Iter[Set]) calcOffset(loc int) uint16 {
	if loc < 0 || loc > math.MaxUint16 {
		return 0
	}
	return uint16(loc)
}

// Missing reports that the required attribute attr of set was never
// observed in the cursor's records. The reported offset is that of
// the cursor's remaining bytes. In strict mode Missing panics
// instead of returning.
func (it *Iter[Set]) Missing(set, attr string) *ErrorContext {
	ctx := &ErrorContext{
		Set:    set,
		Attr:   value.Just(attr),
		Offset: it.calcOffset(it.base),
		Reason: AttrMissing,
	}
	if it.Strict {
		panic(ctx.Error())
	}
	return ctx
}

// Context reports a decode failure at loc, an offset from the start
// of the outermost record set (see [Iter.Loc]). With an attribute
// name present the failure is a [ParsingError] in that attribute's
// payload; with no name it reports an attribute id the set does not
// recognize ([UnknownAttr]).
//
// Context poisons the cursor: the remaining bytes are discarded, and
// further Next calls report end of set. This keeps the generated
// layer from reading past a failure into bytes it can no longer
// frame correctly. In strict mode Context panics instead of
// returning.
func (it *Iter[Set]) Context(set string, attr value.Maybe[string], loc int) *ErrorContext {
	it.buf = nil

	reason := UnknownAttr
	if attr.Present() {
		reason = ParsingError
	}
	ctx := &ErrorContext{
		Set:    set,
		Attr:   attr,
		Offset: it.calcOffset(loc),
		Reason: reason,
	}
	if it.Strict {
		panic(ctx.Error())
	}
	return ctx
}

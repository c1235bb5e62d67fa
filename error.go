package nlattr

import (
	"fmt"
	"strings"

	"github.com/creachadair/mds/value"
)

// A Reason classifies a structured decode failure.
type Reason int

const (
	// AttrMissing reports that a required attribute was never
	// observed in its attribute set.
	AttrMissing Reason = iota
	// ParsingError reports that an attribute's payload does not
	// decode to its expected value type.
	ParsingError
	// UnknownAttr reports an attribute id not known to an attribute
	// set that rejects unknown ids.
	UnknownAttr
)

func (r Reason) String() string {
	switch r {
	case AttrMissing:
		return "AttrMissing"
	case ParsingError:
		return "ParsingError"
	case UnknownAttr:
		return "UnknownAttr"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// An ErrorContext is the error reported by generated attribute set
// parsers. It locates a failure by attribute set name, attribute name
// and byte offset from the start of the outermost record set.
//
// ErrorContexts are constructed through [Iter.Missing] and
// [Iter.Context], and are immutable once constructed.
type ErrorContext struct {
	// Set is the name of the attribute set being decoded.
	Set string
	// Attr is the name of the attribute being decoded, if the
	// failure is attributable to a single known attribute.
	Attr value.Maybe[string]
	// Offset is the byte offset of the failure from the start of the
	// record set, or 0 if the location is unknown or not
	// representable in 16 bits.
	Offset uint16
	// Reason classifies the failure.
	Reason Reason
}

func (e *ErrorContext) Error() string {
	if e.Reason == AttrMissing {
		attr, _ := e.Attr.GetOK()
		return fmt.Sprintf("Missing attribute %q in %q", attr, e.Set)
	}

	var sb strings.Builder
	if attr, ok := e.Attr.GetOK(); ok {
		fmt.Fprintf(&sb, "Error parsing attribute %q of %q", attr, e.Set)
	} else {
		fmt.Fprintf(&sb, "Error parsing header of %q", e.Set)
		if e.Reason == UnknownAttr {
			sb.WriteString(" (unknown attribute)")
		}
	}
	fmt.Fprintf(&sb, " at offset %d", e.Offset)
	return sb.String()
}

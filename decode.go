package nlattr

import "encoding/binary"

// A Header describes one decoded attribute record.
type Header struct {
	// Type is the attribute id, with the flag bits cleared.
	Type uint16
	// Nested reports whether the attribute's payload is itself a
	// sequence of attributes.
	Nested bool
	// NetByteOrder reports whether the attribute's payload claims to
	// be in network byte order. The kernel does not maintain this bit
	// reliably, so it is informational only.
	NetByteOrder bool
}

// Order returns the byte order the header's flags claim for the
// payload: big-endian when the net-byte-order bit is set, native
// order otherwise. See the caveat on [Header.NetByteOrder].
func (h Header) Order() binary.ByteOrder {
	if h.NetByteOrder {
		return binary.BigEndian
	}
	return binary.NativeEndian
}

// ReadHeader decodes the attribute record starting at *pos in buf,
// returning its header and payload and advancing *pos past the record
// and its padding. Repeated calls with the same pos walk the buffer's
// records left to right.
//
// ReadHeader returns false when no further record can be decoded:
// fewer than 4 bytes remain, or the record's declared length cannot
// cover its own header, or it overruns the remaining buffer. A
// truncated buffer is indistinguishable from a normal end of stream
// here; whether a short walk is an error is the caller's call.
func ReadHeader(buf []byte, pos *int) (Header, []byte, bool) {
	rest := buf[*pos:]

	if len(rest) < hdrLen {
		return Header{}, nil, false
	}

	ln := int(binary.NativeEndian.Uint16(rest[0:2]))
	typ := binary.NativeEndian.Uint16(rest[2:4])

	if ln < hdrLen || ln > len(rest) {
		return Header{}, nil, false
	}

	*pos += min(AlignUp(ln), len(rest))

	return Header{
		Type:         TypeMask(typ),
		Nested:       typ&FlagNested != 0,
		NetByteOrder: typ&FlagNetByteOrder != 0,
	}, rest[hdrLen:ln], true
}

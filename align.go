package nlattr

import "golang.org/x/sys/unix"

// The top two bits of an attribute's raw type field are flags; the low
// 14 bits are the attribute id.
const (
	// FlagNested marks an attribute whose payload is itself a
	// sequence of attributes.
	FlagNested uint16 = unix.NLA_F_NESTED
	// FlagNetByteOrder marks an attribute whose payload claims to be
	// in network byte order. The kernel neither checks nor reliably
	// sets this bit.
	FlagNetByteOrder uint16 = unix.NLA_F_NET_BYTEORDER
)

const (
	alignTo = unix.NLA_ALIGNTO
	hdrLen  = unix.NLA_HDRLEN
)

// AlignUp rounds n up to the attribute alignment boundary of 4 bytes.
func AlignUp(n int) int {
	return (n + alignTo - 1) &^ (alignTo - 1)
}

// TypeMask clears the flag bits of a raw attribute type field,
// leaving the bare attribute id.
func TypeMask(raw uint16) uint16 {
	return raw &^ (FlagNested | FlagNetByteOrder)
}

package nlattr

import "encoding/binary"

// An Encoder provides utilities to serialize attribute records to a
// byte slice in the netlink attribute wire format.
//
// Methods insert padding as needed to start every record on a 4-byte
// boundary, except for [Encoder.Write] which outputs bytes verbatim.
// Length and type fields are written in native byte order; the wire
// format has no endianness negotiation.
type Encoder struct {
	// Out is the encoded output.
	Out []byte
}

// Pad appends zero bytes as needed to make the output a multiple of 4
// bytes long. If the output is already correctly aligned, no padding
// is appended.
func (e *Encoder) Pad() {
	var pad [alignTo]byte
	e.Out = append(e.Out, pad[:AlignUp(len(e.Out))-len(e.Out)]...)
}

// Write appends bs as-is to the output. It is the caller's
// responsibility to pad around raw writes so that the next header
// lands on an alignment boundary; every other Encoder method does
// this itself.
func (e *Encoder) Write(bs []byte) {
	e.Out = append(e.Out, bs...)
}

// Header writes the header of an attribute whose payload is
// payloadLen bytes long, and returns the offset of the header in the
// output. The caller must append exactly payloadLen payload bytes
// afterwards, followed by padding.
//
// typ must be a bare attribute id, below 1<<14. Larger values bleed
// into the flag bits; Header does not check for this.
func (e *Encoder) Header(typ uint16, payloadLen int) int {
	return e.header(typ, payloadLen, false)
}

// NestedHeader writes the header of a nested attribute whose length
// is not yet known, and returns the offset of the header for a later
// [Encoder.FinalizeNested] call. Child attributes are appended with
// further Header or NestedHeader calls.
func (e *Encoder) NestedHeader(typ uint16) int {
	return e.header(typ, 0, true)
}

func (e *Encoder) header(typ uint16, payloadLen int, nested bool) int {
	e.Pad()

	offset := len(e.Out)

	if nested {
		typ |= FlagNested
	}

	e.Out = binary.NativeEndian.AppendUint16(e.Out, uint16(payloadLen+hdrLen))
	e.Out = binary.NativeEndian.AppendUint16(e.Out, typ)

	e.Pad()

	return offset
}

// FinalizeNested pads the output and backpatches the length of the
// nested attribute whose header is at offset, as returned by
// [Encoder.NestedHeader]. It must be called exactly once per nested
// header, after all children have been appended, innermost nesting
// first.
func (e *Encoder) FinalizeNested(offset int) {
	e.Pad()
	binary.NativeEndian.PutUint16(e.Out[offset:], uint16(len(e.Out)-offset))
}

// Nested writes a complete nested attribute. Child attributes must be
// appended within the children function.
func (e *Encoder) Nested(typ uint16, children func()) {
	offset := e.NestedHeader(typ)
	children()
	e.FinalizeNested(offset)
}

// Bytes writes a complete attribute with the given payload.
func (e *Encoder) Bytes(typ uint16, payload []byte) {
	e.Header(typ, len(payload))
	e.Out = append(e.Out, payload...)
	e.Pad()
}

// String writes a complete attribute holding s as a NUL-terminated
// string payload.
func (e *Encoder) String(typ uint16, s string) {
	e.Header(typ, len(s)+1)
	e.Out = append(e.Out, s...)
	e.Out = append(e.Out, 0)
	e.Pad()
}

// Uint16 writes a complete attribute with a native-order uint16
// payload.
func (e *Encoder) Uint16(typ uint16, v uint16) {
	e.Header(typ, 2)
	e.Out = binary.NativeEndian.AppendUint16(e.Out, v)
	e.Pad()
}

// Uint32 writes a complete attribute with a native-order uint32
// payload.
func (e *Encoder) Uint32(typ uint16, v uint32) {
	e.Header(typ, 4)
	e.Out = binary.NativeEndian.AppendUint32(e.Out, v)
}

// Uint64 writes a complete attribute with a native-order uint64
// payload.
func (e *Encoder) Uint64(typ uint16, v uint64) {
	e.Header(typ, 8)
	e.Out = binary.NativeEndian.AppendUint64(e.Out, v)
}

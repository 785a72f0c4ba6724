// Package nlattr decodes netlink attribute (TLV) streams into typed values.
//
// A netlink attribute is a self-describing record: a 2-byte total length
// (header plus payload, little-endian), a 2-byte type, the payload, and
// padding up to the next 4-byte boundary. An attribute's payload may itself
// be a stream of attributes; Unmarshal applied to that payload resolves the
// nested level, to any depth.
package nlattr

import (
	"encoding/binary"
)

// headerLen is the size of an attribute header: length and type fields.
const headerLen = 4

// The two high-order bits of the type field are flags, not part of the
// attribute type. See NLA_F_NESTED and NLA_F_NET_BYTEORDER in
// linux/netlink.h.
const (
	flagNested       = 0x8000
	flagNetByteOrder = 0x4000

	typeMask = ^uint16(flagNested | flagNetByteOrder)
)

// An Attribute is a single decoded netlink attribute. Data aliases the
// buffer passed to Unmarshal and is only valid as long as that buffer is.
type Attribute struct {
	// Type is the attribute type with the flag bits masked off.
	Type uint16

	// Nested indicates that the payload carries a nested attribute stream.
	// Some producers do not set this bit even for container attributes, so
	// callers decide from context whether to resolve Data with Unmarshal.
	Nested bool

	// NetByteOrder indicates that the payload is in network byte order.
	NetByteOrder bool

	// Data is the attribute payload, without header or padding.
	Data []byte
}

// Unmarshal decodes b as a sequence of netlink attributes. Attributes are
// returned in wire order and duplicate types are preserved. Unmarshal does
// not interpret attribute types.
//
// ErrTruncated is returned if an attribute declares more bytes than remain
// in the buffer, declares a length smaller than its own header, or if the
// buffer ends in a partial header.
func Unmarshal(b []byte) ([]Attribute, error) {
	var attrs []Attribute
	for i := 0; i < len(b); {
		if len(b[i:]) < headerLen {
			return nil, ErrTruncated
		}

		l := int(binary.LittleEndian.Uint16(b[i : i+2]))
		if l < headerLen || l > len(b[i:]) {
			return nil, ErrTruncated
		}

		typ := binary.LittleEndian.Uint16(b[i+2 : i+4])
		attrs = append(attrs, Attribute{
			Type:         typ & typeMask,
			Nested:       typ&flagNested != 0,
			NetByteOrder: typ&flagNetByteOrder != 0,
			Data:         b[i+headerLen : i+l],
		})

		i += align(l)
	}

	return attrs, nil
}

// align rounds n up to the next 4-byte attribute boundary.
func align(n int) int {
	return (n + 3) &^ 3
}

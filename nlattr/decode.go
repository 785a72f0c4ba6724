package nlattr

import (
	"bytes"
	"encoding/binary"
	"net"
	"unicode/utf8"
)

// Uint8 decodes a 1-byte payload as a uint8.
func Uint8(b []byte) (uint8, error) {
	if len(b) != 1 {
		return 0, &LengthMismatchError{Want: 1, Got: len(b)}
	}
	return b[0], nil
}

// Int8 decodes a 1-byte payload as an int8.
func Int8(b []byte) (int8, error) {
	if len(b) != 1 {
		return 0, &LengthMismatchError{Want: 1, Got: len(b)}
	}
	return int8(b[0]), nil
}

// Uint16 decodes a 2-byte little-endian payload as a uint16.
func Uint16(b []byte) (uint16, error) {
	if len(b) != 2 {
		return 0, &LengthMismatchError{Want: 2, Got: len(b)}
	}
	return binary.LittleEndian.Uint16(b), nil
}

// Uint32 decodes a 4-byte little-endian payload as a uint32.
func Uint32(b []byte) (uint32, error) {
	if len(b) != 4 {
		return 0, &LengthMismatchError{Want: 4, Got: len(b)}
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Int32 decodes a 4-byte little-endian payload as an int32.
func Int32(b []byte) (int32, error) {
	v, err := Uint32(b)
	return int32(v), err
}

// Uint64 decodes an 8-byte little-endian payload as a uint64.
func Uint64(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, &LengthMismatchError{Want: 8, Got: len(b)}
	}
	return binary.LittleEndian.Uint64(b), nil
}

// HardwareAddr decodes a payload as a hardware address. Both the 6-byte
// form and the 8-byte wireless device form are accepted. The returned
// address does not alias the payload.
func HardwareAddr(b []byte) (net.HardwareAddr, error) {
	if len(b) != 6 && len(b) != 8 {
		return nil, &AddressLengthError{Got: len(b)}
	}

	addr := make(net.HardwareAddr, len(b))
	copy(addr, b)
	return addr, nil
}

// String decodes a payload as text. Trailing NUL padding is stripped and
// invalid UTF-8 sequences are replaced with the replacement character.
// String never fails.
func String(b []byte) string {
	b = bytes.TrimRight(b, "\x00")
	if utf8.Valid(b) {
		return string(b)
	}

	// Rare path: replace invalid sequences rune by rune.
	buf := bytes.NewBuffer(nil)
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		b = b[size:]
		buf.WriteRune(r)
	}
	return buf.String()
}

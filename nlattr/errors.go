package nlattr

import (
	"errors"
	"fmt"
)

// ErrTruncated is returned by Unmarshal when an attribute's declared length
// does not fit the buffer it was decoded from.
var ErrTruncated = errors.New("truncated netlink attribute buffer")

// A LengthMismatchError is returned by the fixed-width decoders when a
// payload is not exactly the required width.
type LengthMismatchError struct {
	// Want is the required payload width, Got the width encountered.
	Want, Got int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("attribute payload is %d bytes, need exactly %d", e.Got, e.Want)
}

// An AddressLengthError is returned by HardwareAddr when a payload is
// neither a 6-byte hardware address nor an 8-byte wireless device address.
type AddressLengthError struct {
	// Got is the payload width encountered.
	Got int
}

func (e *AddressLengthError) Error() string {
	return fmt.Sprintf("hardware address payload is %d bytes, need 6 or 8", e.Got)
}

package nlattr

import (
	"errors"
	"net"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFixedWidthDecoders(t *testing.T) {
	// Every fixed-width decoder must accept exactly its width and reject
	// everything else with a LengthMismatchError naming that width.
	tests := []struct {
		name   string
		width  int
		decode func(b []byte) (uint64, error)
	}{
		{
			name:  "uint8",
			width: 1,
			decode: func(b []byte) (uint64, error) {
				v, err := Uint8(b)
				return uint64(v), err
			},
		},
		{
			name:  "int8",
			width: 1,
			decode: func(b []byte) (uint64, error) {
				v, err := Int8(b)
				return uint64(v), err
			},
		},
		{
			name:  "uint16",
			width: 2,
			decode: func(b []byte) (uint64, error) {
				v, err := Uint16(b)
				return uint64(v), err
			},
		},
		{
			name:  "uint32",
			width: 4,
			decode: func(b []byte) (uint64, error) {
				v, err := Uint32(b)
				return uint64(v), err
			},
		},
		{
			name:  "int32",
			width: 4,
			decode: func(b []byte) (uint64, error) {
				v, err := Int32(b)
				return uint64(v), err
			},
		},
		{
			name:   "uint64",
			width:  8,
			decode: Uint64,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Little-endian value 1 at the exact width always decodes.
			b := make([]byte, tt.width)
			b[0] = 1

			v, err := tt.decode(b)
			if err != nil {
				t.Fatalf("unexpected error at exact width: %v", err)
			}
			if v != 1 {
				t.Fatalf("unexpected value: %d", v)
			}

			for _, n := range []int{0, tt.width - 1, tt.width + 1, tt.width + 8} {
				if n < 0 {
					continue
				}

				_, err := tt.decode(make([]byte, n))

				var lme *LengthMismatchError
				if !errors.As(err, &lme) {
					t.Fatalf("length %d: expected LengthMismatchError, got: %v", n, err)
				}
				if lme.Want != tt.width || lme.Got != n {
					t.Fatalf("length %d: unexpected error fields: %+v", n, lme)
				}
			}
		})
	}
}

func TestSignedDecoders(t *testing.T) {
	if v, err := Int8([]byte{0xda}); err != nil || v != -38 {
		t.Fatalf("unexpected int8 result: %d, %v", v, err)
	}

	// -5300 mBm, as reported by NL80211_BSS_SIGNAL_MBM.
	if v, err := Int32([]byte{0x4c, 0xeb, 0xff, 0xff}); err != nil || v != -5300 {
		t.Fatalf("unexpected int32 result: %d, %v", v, err)
	}
}

func TestHardwareAddr(t *testing.T) {
	tests := []struct {
		name string
		b    []byte
		addr net.HardwareAddr
		ok   bool
	}{
		{
			name: "empty",
		},
		{
			name: "five bytes",
			b:    []byte{0xff, 0xff, 0xff, 0xff, 0xff},
		},
		{
			name: "seven bytes",
			b:    make([]byte, 7),
		},
		{
			name: "OK hardware address",
			b:    []byte{0xde, 0xad, 0xbe, 0xef, 0xde, 0xad},
			addr: net.HardwareAddr{0xde, 0xad, 0xbe, 0xef, 0xde, 0xad},
			ok:   true,
		},
		{
			name: "OK wireless device address",
			b:    []byte{0xde, 0xad, 0xbe, 0xef, 0xde, 0xad, 0x00, 0x01},
			addr: net.HardwareAddr{0xde, 0xad, 0xbe, 0xef, 0xde, 0xad, 0x00, 0x01},
			ok:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := HardwareAddr(tt.b)

			if !tt.ok {
				var ale *AddressLengthError
				if !errors.As(err, &ale) {
					t.Fatalf("expected AddressLengthError, got: %v", err)
				}
				if ale.Got != len(tt.b) {
					t.Fatalf("unexpected error length: %d", ale.Got)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.addr, addr); diff != "" {
				t.Fatalf("unexpected address (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHardwareAddrCopies(t *testing.T) {
	b := []byte{0xde, 0xad, 0xbe, 0xef, 0xde, 0xad}

	addr, err := HardwareAddr(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b[0] = 0x00
	if addr[0] != 0xde {
		t.Fatal("decoded address aliases the input payload")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		b    []byte
		s    string
	}{
		{
			name: "empty",
		},
		{
			name: "plain",
			b:    []byte("eduroam"),
			s:    "eduroam",
		},
		{
			name: "trailing NUL padding stripped",
			b:    []byte{'H', 'E', 'L', 'L', 'O', 0x00, 0x00, 0x00},
			s:    "HELLO",
		},
		{
			name: "interior NUL preserved",
			b:    []byte{'a', 0x00, 'b', 0x00},
			s:    "a\x00b",
		},
		{
			name: "invalid encoding replaced",
			b:    []byte{0xff, 'a'},
			s:    "�a",
		},
		{
			name: "multibyte",
			b:    []byte("Hello, 世界"),
			s:    "Hello, 世界",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if want, got := tt.s, String(tt.b); want != got {
				t.Fatalf("unexpected string:\n- want: %q\n-  got: %q",
					want, got)
			}
		})
	}
}

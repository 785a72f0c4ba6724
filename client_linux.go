//go:build linux
// +build linux

package nl80211

import (
	"context"
	"crypto/sha1"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/mdlayher/genetlink"
	"github.com/mdlayher/netlink"
	"github.com/mdlayher/netlink/nlenc"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/sys/unix"
)

var (
	// ErrNotSupported is returned when the kernel or device does not
	// support a requested operation.
	ErrNotSupported = errors.New("not supported")

	// ErrScanGroupNotFound is returned by Scan when the nl80211 scan
	// multicast group is unavailable.
	ErrScanGroupNotFound = errors.New("scan multicast group unavailable")

	// ErrScanAborted is returned by Scan when the kernel aborts a
	// triggered scan.
	ErrScanAborted = errors.New("scan aborted by the kernel")

	// ErrScanValidation is returned by Scan when a scan result message
	// cannot be validated.
	ErrScanValidation = errors.New("scan validation failed")

	errInvalidCommand       = errors.New("invalid response command")
	errInvalidFamilyVersion = errors.New("invalid response family version")
)

// A client is the Linux implementation of the Client's backing type. It
// uses netlink, generic netlink and nl80211 to access WiFi telemetry.
type client struct {
	c             *genetlink.Conn
	familyID      uint16
	familyVersion uint8

	// scan serializes access to the Scan method.
	scan sync.Mutex
}

// newClient dials a generic netlink connection and verifies that nl80211
// is available for use by this package.
func newClient() (*client, error) {
	c, err := genetlink.Dial(nil)
	if err != nil {
		return nil, err
	}

	// Best effort: the strict options improve validation and error
	// reporting but are not available on older kernels.
	for _, o := range []netlink.ConnOption{
		netlink.ExtendedAcknowledge,
		netlink.GetStrictCheck,
	} {
		_ = c.SetOption(o, true)
	}

	return initClient(c)
}

func initClient(c *genetlink.Conn) (*client, error) {
	family, err := c.GetFamily(unix.NL80211_GENL_NAME)
	if err != nil {
		// Don't leak the socket when nl80211 is unavailable.
		_ = c.Close()
		return nil, err
	}

	return &client{
		c:             c,
		familyID:      family.ID,
		familyVersion: family.Version,
	}, nil
}

// Close closes the client's generic netlink connection.
func (c *client) Close() error { return c.c.Close() }

// Interfaces requests that nl80211 dump a list of all WiFi interfaces
// present on this system, one reply message per interface.
func (c *client) Interfaces() ([]*Interface, error) {
	msgs, err := c.get(
		unix.NL80211_CMD_GET_INTERFACE,
		netlink.Dump,
		nil,
		nil,
	)
	if err != nil {
		return nil, err
	}

	if err := c.checkMessages(msgs, unix.NL80211_CMD_NEW_INTERFACE); err != nil {
		return nil, err
	}

	ifis := make([]*Interface, 0, len(msgs))
	for _, m := range msgs {
		ifi, err := ParseInterface(m.Data)
		if err != nil {
			return nil, err
		}

		ifis = append(ifis, ifi)
	}

	return ifis, nil
}

// BSS requests the scan results for ifi and returns the BSS the interface
// is associated with: the one whose status attribute is present.
func (c *client) BSS(ifi *Interface) (*BSS, error) {
	msgs, err := c.get(
		unix.NL80211_CMD_GET_SCAN,
		netlink.Dump,
		ifi,
		func(ae *netlink.AttributeEncoder) {
			if ifi.HardwareAddr != nil {
				ae.Bytes(unix.NL80211_ATTR_MAC, ifi.HardwareAddr)
			}
		},
	)
	if err != nil {
		return nil, err
	}

	if err := c.checkMessages(msgs, unix.NL80211_CMD_NEW_SCAN_RESULTS); err != nil {
		return nil, err
	}

	for _, m := range msgs {
		bss, err := ParseBSS(m.Data)
		if err != nil {
			return nil, err
		}

		// The associated BSS is the only one the kernel reports a
		// status for.
		if bss.Status != nil {
			return bss, nil
		}
	}

	return nil, os.ErrNotExist
}

// AccessPoints requests the scan results for ifi and returns every BSS the
// kernel currently knows.
func (c *client) AccessPoints(ifi *Interface) ([]*BSS, error) {
	msgs, err := c.get(
		unix.NL80211_CMD_GET_SCAN,
		netlink.Dump,
		ifi,
		nil,
	)
	if err != nil {
		return nil, err
	}

	if err := c.checkMessages(msgs, unix.NL80211_CMD_NEW_SCAN_RESULTS); err != nil {
		return nil, err
	}

	bsss := make([]*BSS, 0, len(msgs))
	for _, m := range msgs {
		bss, err := ParseBSS(m.Data)
		if err != nil {
			return nil, err
		}

		bsss = append(bsss, bss)
	}

	return bsss, nil
}

// StationInfo requests statistics about each station associated with ifi,
// one reply message per station.
func (c *client) StationInfo(ifi *Interface) ([]*Station, error) {
	msgs, err := c.get(
		unix.NL80211_CMD_GET_STATION,
		netlink.Dump,
		ifi,
		func(ae *netlink.AttributeEncoder) {
			if ifi.HardwareAddr != nil {
				ae.Bytes(unix.NL80211_ATTR_MAC, ifi.HardwareAddr)
			}
		},
	)
	if err != nil {
		return nil, err
	}

	if err := c.checkMessages(msgs, unix.NL80211_CMD_NEW_STATION); err != nil {
		return nil, err
	}

	stations := make([]*Station, 0, len(msgs))
	for _, m := range msgs {
		st, err := ParseStation(m.Data)
		if err != nil {
			return nil, err
		}

		stations = append(stations, st)
	}

	return stations, nil
}

// Scan asks nl80211 to trigger a scan on ifi and waits on the scan
// multicast group until the kernel reports new results, the scan is
// aborted, or ctx is done. A second connection is used so that multicast
// receives do not interfere with the client's request/response socket.
//
// Use context.WithDeadline to bound the wait.
func (c *client) Scan(ctx context.Context, ifi *Interface) error {
	c.scan.Lock()
	defer c.scan.Unlock()

	conn, err := genetlink.Dial(&netlink.Config{Strict: true})
	if err != nil {
		return err
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return err
		}
	}

	family, err := conn.GetFamily(unix.NL80211_GENL_NAME)
	if err != nil {
		return err
	}

	var id uint32
	for _, group := range family.Groups {
		if group.Name == unix.NL80211_MULTICAST_GROUP_SCAN {
			if err := conn.JoinGroup(group.ID); err != nil {
				return err
			}

			id = group.ID
			break
		}
	}

	if id == 0 {
		return ErrScanGroupNotFound
	}

	// Leave the group on exit; the error is non-actionable.
	defer func() { _ = conn.LeaveGroup(id) }()

	enc := netlink.NewAttributeEncoder()
	enc.Nested(unix.NL80211_ATTR_SCAN_SSIDS, func(ae *netlink.AttributeEncoder) error {
		// A single wildcard SSID requests an active scan.
		ae.Bytes(unix.NL80211_SCHED_SCAN_MATCH_ATTR_SSID, nlenc.Bytes(""))
		return nil
	})
	ifi.encode(enc)

	data, err := enc.Encode()
	if err != nil {
		return err
	}

	req := genetlink.Message{
		Header: genetlink.Header{
			Command: unix.NL80211_CMD_TRIGGER_SCAN,
			Version: c.familyVersion,
		},
		Data: data,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	result := make(chan error, 1)
	go func() {
		defer close(result)
		result <- listenNewScanResults(ctx, conn, ifi.Index, c.familyVersion)
	}()

	_, err = conn.Send(req, family.ID, netlink.Request|netlink.Acknowledge)
	if err != nil {
		cancel()
	}

	return errors.Join(err, <-result)
}

// listenNewScanResults receives from conn until a new-scan-results message
// for the interface with the given index arrives, the kernel aborts the
// scan, or ctx is done. The caller must not receive on conn concurrently
// and remains responsible for closing it.
func listenNewScanResults(ctx context.Context, conn *genetlink.Conn, index *uint32, familyVersion uint8) error {
	for ctx.Err() == nil {
		msgs, _, err := conn.Receive()
		if err != nil {
			return err
		}

		if ctx.Err() != nil {
			break
		}

		for _, msg := range msgs {
			if msg.Header.Version != familyVersion {
				break
			}

			switch msg.Header.Command {
			case unix.NL80211_CMD_SCAN_ABORTED:
				return ErrScanAborted
			case unix.NL80211_CMD_NEW_SCAN_RESULTS:
				ifi, err := ParseInterface(msg.Data)
				if err != nil {
					return errors.Join(ErrScanValidation, err)
				}

				// Results for another interface: keep waiting.
				if index != nil && (ifi.Index == nil || *ifi.Index != *index) {
					continue
				}

				return nil
			}
		}
	}

	return ctx.Err()
}

// Connect starts connecting the interface to the specified SSID using open
// authentication.
func (c *client) Connect(ifi *Interface, ssid string) error {
	_, err := c.get(
		unix.NL80211_CMD_CONNECT,
		netlink.Acknowledge,
		ifi,
		func(ae *netlink.AttributeEncoder) {
			ae.Bytes(unix.NL80211_ATTR_SSID, []byte(ssid))
			ae.Uint32(unix.NL80211_ATTR_AUTH_TYPE, unix.NL80211_AUTHTYPE_OPEN_SYSTEM)
		},
	)
	return err
}

// Disconnect disconnects the interface.
func (c *client) Disconnect(ifi *Interface) error {
	_, err := c.get(
		unix.NL80211_CMD_DISCONNECT,
		netlink.Acknowledge,
		ifi,
		nil,
	)
	return err
}

// ConnectWPAPSK starts connecting the interface to the specified SSID
// using WPA2 with a preshared key. The device must support offloading the
// 4-way handshake.
func (c *client) ConnectWPAPSK(ifi *Interface, ssid, psk string) error {
	support, err := c.checkExtFeature(ifi, unix.NL80211_EXT_FEATURE_4WAY_HANDSHAKE_STA_PSK)
	if err != nil {
		return err
	}
	if !support {
		return ErrNotSupported
	}

	_, err = c.get(
		unix.NL80211_CMD_CONNECT,
		netlink.Acknowledge,
		ifi,
		func(ae *netlink.AttributeEncoder) {
			// CCMP pairwise/group cipher and PSK key management, per
			// the 802.11 cipher suite selectors.
			const (
				cipherSuites = 0xfac04
				akmSuites    = 0xfac02
			)

			ae.Bytes(unix.NL80211_ATTR_SSID, []byte(ssid))
			ae.Uint32(unix.NL80211_ATTR_WPA_VERSIONS, unix.NL80211_WPA_VERSION_2)
			ae.Uint32(unix.NL80211_ATTR_CIPHER_SUITE_GROUP, cipherSuites)
			ae.Uint32(unix.NL80211_ATTR_CIPHER_SUITES_PAIRWISE, cipherSuites)
			ae.Uint32(unix.NL80211_ATTR_AKM_SUITES, akmSuites)
			ae.Flag(unix.NL80211_ATTR_WANT_1X_4WAY_HS, true)
			ae.Bytes(
				unix.NL80211_ATTR_PMK,
				wpaPassphrase([]byte(ssid), []byte(psk)),
			)
			ae.Uint32(unix.NL80211_ATTR_AUTH_TYPE, unix.NL80211_AUTHTYPE_OPEN_SYSTEM)
		},
	)
	return err
}

// wpaPassphrase derives a WPA2 pairwise master key from an SSID and a
// preshared key.
func wpaPassphrase(ssid, psk []byte) []byte {
	return pbkdf2.Key(psk, ssid, 4096, 32, sha1.New)
}

// checkExtFeature reports whether the physical device behind ifi supports
// the given extended feature.
func (c *client) checkExtFeature(ifi *Interface, feature uint) (bool, error) {
	msgs, err := c.get(
		unix.NL80211_CMD_GET_WIPHY,
		netlink.Dump,
		ifi,
		func(ae *netlink.AttributeEncoder) {
			ae.Flag(unix.NL80211_ATTR_SPLIT_WIPHY_DUMP, true)
		},
	)
	if err != nil {
		return false, err
	}

	var features []byte
found:
	for _, m := range msgs {
		attrs, err := netlink.UnmarshalAttributes(m.Data)
		if err != nil {
			return false, err
		}
		for _, a := range attrs {
			if a.Type == unix.NL80211_ATTR_EXT_FEATURES {
				features = a.Data
				break found
			}
		}
	}

	if feature/8 >= uint(len(features)) {
		return false, nil
	}

	return features[feature/8]&(1<<(feature%8)) != 0, nil
}

// SetDeadline sets the read and write deadlines associated with the
// connection.
func (c *client) SetDeadline(t time.Time) error {
	return c.c.SetDeadline(t)
}

// SetReadDeadline sets the read deadline associated with the connection.
func (c *client) SetReadDeadline(t time.Time) error {
	return c.c.SetReadDeadline(t)
}

// SetWriteDeadline sets the write deadline associated with the connection.
func (c *client) SetWriteDeadline(t time.Time) error {
	return c.c.SetWriteDeadline(t)
}

// get performs a request/response interaction with nl80211.
func (c *client) get(
	cmd uint8,
	flags netlink.HeaderFlags,
	ifi *Interface,
	// May be nil; used to apply optional parameters.
	params func(ae *netlink.AttributeEncoder),
) ([]genetlink.Message, error) {
	ae := netlink.NewAttributeEncoder()
	ifi.encode(ae)
	if params != nil {
		params(ae)
	}

	return c.execute(cmd, flags, ae)
}

// execute executes cmd with additional header flags and request
// attributes. The netlink.Request flag is set automatically.
func (c *client) execute(
	cmd uint8,
	flags netlink.HeaderFlags,
	ae *netlink.AttributeEncoder,
) ([]genetlink.Message, error) {
	b, err := ae.Encode()
	if err != nil {
		return nil, err
	}

	return c.c.Execute(
		genetlink.Message{
			Header: genetlink.Header{
				Command: cmd,
				Version: c.familyVersion,
			},
			Data: b,
		},
		c.familyID,
		netlink.Request|flags,
	)
}

// checkMessages verifies that every reply message carries the expected
// response command and the family version negotiated at dial time.
func (c *client) checkMessages(msgs []genetlink.Message, command uint8) error {
	for _, m := range msgs {
		if m.Header.Command != command {
			return errInvalidCommand
		}

		if m.Header.Version != c.familyVersion {
			return errInvalidFamilyVersion
		}
	}

	return nil
}

// encode appends ifi's identifying attributes to ae. A nil ifi or an
// unreported index is a no-op.
func (ifi *Interface) encode(ae *netlink.AttributeEncoder) {
	if ifi == nil || ifi.Index == nil {
		return
	}

	ae.Uint32(unix.NL80211_ATTR_IFINDEX, *ifi.Index)
}

// idAttrs returns the netlink attributes required to ask nl80211 about a
// specific interface.
func (ifi *Interface) idAttrs() []netlink.Attribute {
	var index uint32
	if ifi.Index != nil {
		index = *ifi.Index
	}

	return []netlink.Attribute{
		{
			Type: unix.NL80211_ATTR_IFINDEX,
			Data: nlenc.Uint32Bytes(index),
		},
		{
			Type: unix.NL80211_ATTR_MAC,
			Data: ifi.HardwareAddr,
		},
	}
}

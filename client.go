package nl80211

import (
	"context"
	"time"
)

// A Client retrieves WiFi telemetry using operating system-specific
// operations. A Client is safe for concurrent use.
type Client struct {
	c *client
}

// New creates a new Client.
func New() (*Client, error) {
	c, err := newClient()
	if err != nil {
		return nil, err
	}

	return &Client{c: c}, nil
}

// Close releases resources used by a Client.
func (c *Client) Close() error {
	return c.c.Close()
}

// Interfaces returns the system's WiFi network interfaces.
func (c *Client) Interfaces() ([]*Interface, error) {
	return c.c.Interfaces()
}

// BSS returns the BSS the specified interface is associated with. If the
// interface is not associated, an error wrapping os.ErrNotExist is
// returned.
func (c *Client) BSS(ifi *Interface) (*BSS, error) {
	return c.c.BSS(ifi)
}

// AccessPoints returns every BSS known to the specified interface from its
// most recent scan.
func (c *Client) AccessPoints(ifi *Interface) ([]*BSS, error) {
	return c.c.AccessPoints(ifi)
}

// StationInfo returns statistics about each station associated with the
// specified interface. If there are no stations, an empty slice is
// returned.
func (c *Client) StationInfo(ifi *Interface) ([]*Station, error) {
	return c.c.StationInfo(ifi)
}

// Scan triggers a scan for access points on the specified interface and
// blocks until the kernel reports results or ctx is done. Use AccessPoints
// to retrieve the results.
func (c *Client) Scan(ctx context.Context, ifi *Interface) error {
	return c.c.Scan(ctx, ifi)
}

// Connect starts connecting the interface to the specified SSID, without
// authentication.
func (c *Client) Connect(ifi *Interface, ssid string) error {
	return c.c.Connect(ifi, ssid)
}

// Disconnect disconnects the interface.
func (c *Client) Disconnect(ifi *Interface) error {
	return c.c.Disconnect(ifi)
}

// ConnectWPAPSK starts connecting the interface to the specified SSID using
// WPA2 with the given preshared key.
func (c *Client) ConnectWPAPSK(ifi *Interface, ssid, psk string) error {
	return c.c.ConnectWPAPSK(ifi, ssid, psk)
}

// SetDeadline sets the read and write deadlines associated with the
// connection.
func (c *Client) SetDeadline(t time.Time) error {
	return c.c.SetDeadline(t)
}

// SetReadDeadline sets the read deadline associated with the connection.
func (c *Client) SetReadDeadline(t time.Time) error {
	return c.c.SetReadDeadline(t)
}

// SetWriteDeadline sets the write deadline associated with the connection.
func (c *Client) SetWriteDeadline(t time.Time) error {
	return c.c.SetWriteDeadline(t)
}

//go:build !linux
// +build !linux

package nl80211

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"
)

var errUnimplemented = fmt.Errorf("nl80211 not implemented on %s/%s: %w",
	runtime.GOOS, runtime.GOARCH, errors.ErrUnsupported)

// A client is the no-op implementation for platforms without nl80211.
type client struct{}

func newClient() (*client, error) { return nil, errUnimplemented }

func (*client) Close() error                                        { return errUnimplemented }
func (*client) Interfaces() ([]*Interface, error)                   { return nil, errUnimplemented }
func (*client) BSS(_ *Interface) (*BSS, error)                      { return nil, errUnimplemented }
func (*client) AccessPoints(_ *Interface) ([]*BSS, error)           { return nil, errUnimplemented }
func (*client) StationInfo(_ *Interface) ([]*Station, error)        { return nil, errUnimplemented }
func (*client) Scan(_ context.Context, _ *Interface) error          { return errUnimplemented }
func (*client) Connect(_ *Interface, _ string) error                { return errUnimplemented }
func (*client) Disconnect(_ *Interface) error                       { return errUnimplemented }
func (*client) ConnectWPAPSK(_ *Interface, _, _ string) error       { return errUnimplemented }
func (*client) SetDeadline(_ time.Time) error                       { return errUnimplemented }
func (*client) SetReadDeadline(_ time.Time) error                   { return errUnimplemented }
func (*client) SetWriteDeadline(_ time.Time) error                  { return errUnimplemented }

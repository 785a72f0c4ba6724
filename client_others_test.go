//go:build !linux
// +build !linux

package nl80211

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestOthers_clientUnimplemented(t *testing.T) {
	c := &client{}
	want := errUnimplemented

	if _, got := newClient(); want != got {
		t.Fatalf("unexpected error during newClient:\n- want: %v\n-  got: %v",
			want, got)
	}

	if _, got := c.Interfaces(); want != got {
		t.Fatalf("unexpected error during c.Interfaces:\n- want: %v\n-  got: %v",
			want, got)
	}

	if _, got := c.BSS(nil); want != got {
		t.Fatalf("unexpected error during c.BSS:\n- want: %v\n-  got: %v",
			want, got)
	}

	if _, got := c.AccessPoints(nil); want != got {
		t.Fatalf("unexpected error during c.AccessPoints:\n- want: %v\n-  got: %v",
			want, got)
	}

	if _, got := c.StationInfo(nil); want != got {
		t.Fatalf("unexpected error during c.StationInfo:\n- want: %v\n-  got: %v",
			want, got)
	}

	if got := c.Scan(context.Background(), nil); want != got {
		t.Fatalf("unexpected error during c.Scan:\n- want: %v\n-  got: %v",
			want, got)
	}

	if got := c.Connect(nil, ""); want != got {
		t.Fatalf("unexpected error during c.Connect:\n- want: %v\n-  got: %v",
			want, got)
	}

	if got := c.Disconnect(nil); want != got {
		t.Fatalf("unexpected error during c.Disconnect:\n- want: %v\n-  got: %v",
			want, got)
	}

	if got := c.ConnectWPAPSK(nil, "", ""); want != got {
		t.Fatalf("unexpected error during c.ConnectWPAPSK:\n- want: %v\n-  got: %v",
			want, got)
	}

	if got := c.SetDeadline(time.Time{}); want != got {
		t.Fatalf("unexpected error during c.SetDeadline:\n- want: %v\n-  got: %v",
			want, got)
	}

	if got := c.Close(); want != got {
		t.Fatalf("unexpected error during c.Close:\n- want: %v\n-  got: %v",
			want, got)
	}

	if !errors.Is(errUnimplemented, errors.ErrUnsupported) {
		t.Fatalf("expected errUnimplemented to wrap errors.ErrUnsupported, got: %v",
			errUnimplemented)
	}
}

package errcode

import (
	"errors"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]error{
		"unsupported_pin":      UnsupportedPin,
		"unsupported_platform": UnsupportedPlatform,
		"not_ready":            NotReady,
		"driver_error":         DriverError,
		"unknown_pin":          UnknownPin,
		"invalid_config":       InvalidConfig,
	}
	for want, e := range cases {
		if e == nil || e.Error() != want {
			t.Fatalf("error %q mismatch: got %#v", want, e)
		}
	}
}

func TestOf(t *testing.T) {
	if got := Of(nil); got != OK {
		t.Fatalf("Of(nil) = %q", got)
	}
	if got := Of(NotReady); got != NotReady {
		t.Fatalf("Of(Code) = %q", got)
	}
	if got := Of(New(UnsupportedPin, "configure", "pin 5")); got != UnsupportedPin {
		t.Fatalf("Of(*E) = %q", got)
	}
	if got := Of(errors.New("boom")); got != Error {
		t.Fatalf("Of(other) = %q", got)
	}
}

func TestEMatchesCodeWithErrorsIs(t *testing.T) {
	err := New(NotReady, "mac_address", "")
	if !errors.Is(err, NotReady) {
		t.Fatalf("errors.Is(%v, NotReady) = false", err)
	}
	if errors.Is(err, DriverError) {
		t.Fatalf("errors.Is(%v, DriverError) = true", err)
	}
	if err.Error() != "mac_address: not_ready" {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestStatus(t *testing.T) {
	if err := Status("read", 0); err != nil {
		t.Fatalf("Status(0) = %v", err)
	}
	err := Status("read", 255)
	if Of(err) != DriverError {
		t.Fatalf("Status(255) code = %q", Of(err))
	}
	if err.Error() != "read: driver_error: status 255" {
		t.Fatalf("Status(255) = %q", err.Error())
	}
	if got := Status("x", 7).Error(); got != "x: driver_error: status 7" {
		t.Fatalf("Status(7) = %q", got)
	}
}

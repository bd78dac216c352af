package errcode

import "strconv"

// Code is a stable error identifier for the driver surface.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK                  Code = "ok"
	UnsupportedPin      Code = "unsupported_pin"
	UnsupportedPlatform Code = "unsupported_platform"
	NotReady            Code = "not_ready"
	DriverError         Code = "driver_error"
	UnknownPin          Code = "unknown_pin"
	InvalidConfig       Code = "invalid_config"

	Error Code = "error" // generic fallback
)

// E wraps a Code with the failing operation and an optional cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Is lets errors.Is(err, errcode.NotReady) match a wrapped *E.
func (e *E) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.C
}

// New returns an *E for op with code c.
func New(c Code, op, msg string) *E {
	return &E{C: c, Op: op, Msg: msg}
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}

// Status maps a vendor driver status byte to an error. Zero is success.
func Status(op string, st uint8) error {
	if st == 0 {
		return nil
	}
	return &E{C: DriverError, Op: op, Msg: "status " + strconv.Itoa(int(st))}
}

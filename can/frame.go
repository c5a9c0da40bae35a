// Package can defines the abstract CAN data-link boundary that the rest
// of the stack is built on: a timestamped Frame record and the Driver
// interface a hardware shim (SocketCAN, PEAK USB, ...) must satisfy.
// Concrete driver implementations are out of scope here — this package
// only defines the contract, the way the teacher's own ASDU codec never
// concerns itself with the TCP socket plumbing below client.go.
package can

import "time"

const (
	// MaxDataLength is the largest payload a single classic CAN frame
	// can carry (transport-protocol segmentation is out of scope).
	MaxDataLength = 8
)

// Frame is a single CAN frame as read from or written to a Driver.
// Timestamp is measured as a monotonic duration since the owning
// Driver's Open call, not wall-clock time, so that FSM and test
// behavior is reproducible (spec §9 resolves this explicitly).
type Frame struct {
	Timestamp time.Duration
	ID        uint32
	Extended  bool
	Channel   string
	Data      [MaxDataLength]byte
	Length    uint8
}

// Bytes returns the valid portion of Data, i.e. Data[:Length].
func (f *Frame) Bytes() []byte {
	return f.Data[:f.Length]
}

// SetBytes copies b into Data and sets Length, truncating silently if b
// is longer than MaxDataLength (callers are expected to have already
// validated length via the network package's Send API).
func (f *Frame) SetBytes(b []byte) {
	n := copy(f.Data[:], b)
	f.Length = uint8(n)
}

// Driver is a thin, non-blocking hardware shim. It does no internal
// buffering: a read either returns a frame that is already available or
// ErrNoFrameReady, and a write either hands the frame to the controller
// or returns ErrNotReady. Reads populate an out-parameter so callers can
// reuse a single Frame across many polls without reallocating.
type Driver interface {
	// IsValid reports whether the driver is currently open and usable.
	IsValid() bool

	// Open brings the driver up. It is idempotent-once: a second call
	// before Close returns a DriverOpenError.
	Open() error

	// Close tears the driver down. Infallible in this taxonomy — a
	// driver that cannot release hardware cleanly still reports success
	// and drops the resource.
	Close()

	// ReadNonblocking populates out with the next available frame.
	// Possible errors: ErrNoFrameReady, ErrDriverClosed, ErrFrameError,
	// or an *IOError.
	ReadNonblocking(out *Frame) error

	// WriteNonblocking hands f to the controller for transmission.
	// Possible errors: ErrNotReady, ErrDriverClosed, ErrBusError, or an
	// *IOError.
	WriteNonblocking(f *Frame) error
}

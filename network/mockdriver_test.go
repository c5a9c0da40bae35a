package network

import (
	"github.com/greenfield-iso/j1939stack/can"
)

// mockDriver is an in-memory loopback-free can.Driver: writes append to
// out, reads drain a pre-seeded in queue. It mirrors the style of the
// teacher's own table-driven tests operating directly on structs rather
// than a real socket.
type mockDriver struct {
	in  []can.Frame
	out []can.Frame
}

func (d *mockDriver) IsValid() bool { return true }
func (d *mockDriver) Open() error   { return nil }
func (d *mockDriver) Close()        {}

func (d *mockDriver) ReadNonblocking(out *can.Frame) error {
	if len(d.in) == 0 {
		return can.ErrNoFrameReady
	}
	*out = d.in[0]
	d.in = d.in[1:]
	return nil
}

func (d *mockDriver) WriteNonblocking(f *can.Frame) error {
	d.out = append(d.out, *f)
	return nil
}

// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"time"
)

// Device is a scripted playback device. It never consumes its source on its
// own: tests move the clock with Advance and end the buffer with Drain.
type Device struct {
	Src       io.ReadSeeker
	Running   bool
	Suspended bool
	Starts    int
	Stops     int
	StartErr  error
	// StartPos is the source offset observed at the latest Start.
	StartPos int64

	elapsed time.Duration
	onIdle  func()
}

func (d *Device) Start(src io.ReadSeeker, onIdle func()) error {
	if d.StartErr != nil {
		return d.StartErr
	}

	pos, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}

	d.Src = src
	d.StartPos = pos
	d.Running = true
	d.Suspended = false
	d.Starts++
	d.elapsed = 0
	d.onIdle = onIdle

	return nil
}

func (d *Device) Stop() {
	d.Running = false
	d.Suspended = false
	d.Stops++
	d.onIdle = nil
}

func (d *Device) Suspend() { d.Suspended = true }

func (d *Device) Resume() { d.Suspended = false }

func (d *Device) Elapsed() time.Duration { return d.elapsed }

// Advance moves the playback clock while the device runs unsuspended.
func (d *Device) Advance(dt time.Duration) {
	if d.Running && !d.Suspended {
		d.elapsed += dt
	}
}

// Drain consumes the rest of the source and fires the idle callback the way
// a real device does when it runs out of data.
func (d *Device) Drain() {
	if !d.Running || d.onIdle == nil {
		return
	}
	if d.Src != nil {
		io.Copy(io.Discard, d.Src)
	}

	idle := d.onIdle
	d.onIdle = nil
	idle()
}

// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"io"
	"time"
)

// Device is an audio output that consumes a PCM buffer.
type Device interface {
	// Start begins consuming src from its current offset. onIdle is called
	// once when src is exhausted, possibly from another goroutine. It is not
	// called after Stop.
	Start(src io.ReadSeeker, onIdle func()) error
	// Stop halts output and releases src.
	Stop()
	// Suspend pauses output without losing the position.
	Suspend()
	// Resume continues after Suspend.
	Resume()
	// Elapsed is the playing time since the last Start, excluding the time
	// spent suspended.
	Elapsed() time.Duration
}

type EventKind int

const (
	// Idle reports that the device ran out of data.
	Idle EventKind = iota
	// Notify is the periodic progress tick.
	Notify
)

func (k EventKind) String() string {
	switch k {
	case Idle:
		return "idle"
	case Notify:
		return "notify"
	}

	return "unknown"
}

// Event is a device notification consumed by Driver.Handle. Run identifies
// the play run that produced an Idle event.
type Event struct {
	Kind EventKind
	Run  uint64
}

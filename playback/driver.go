// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"time"
)

type State int

const (
	Stopped State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	}

	return "unknown"
}

// Progress is the playback position reported on every Notify tick.
type Progress struct {
	// Elapsed is the position in the file: clip start plus device time.
	Elapsed time.Duration
	// Total is the duration of the whole file.
	Total time.Duration
	// Fraction is Elapsed/Total clamped to [0, 1].
	Fraction float64
	State    State
}

type Observer func(Progress)

type Options struct {
	// Loop restarts the clip when the device runs out of data.
	Loop bool
	// Post delivers device events to the event loop, which then passes them
	// to Handle. When nil, events are handled on the caller's goroutine.
	Post   func(Event)
	Logger *slog.Logger
}

// Driver is the playback state machine. It owns the clip buffer and must be
// used from a single goroutine.
type Driver struct {
	dev    Device
	post   func(Event)
	logger *slog.Logger

	state     State
	loop      bool
	run       uint64
	buf       *bytes.Reader
	start     time.Duration
	total     time.Duration
	observers []Observer
}

func NewDriver(dev Device, opts Options) *Driver {
	d := &Driver{
		dev:    dev,
		post:   opts.Post,
		logger: opts.Logger,
		loop:   opts.Loop,
	}

	if d.logger == nil {
		d.logger = slog.New(slog.DiscardHandler)
	}

	if d.post == nil {
		d.post = func(ev Event) {
			if err := d.Handle(ev); err != nil {
				d.logger.Error("handling playback event", "event", ev.Kind, "error", err)
			}
		}
	}

	return d
}

// Load replaces the clip. start is the clip offset within the file and total
// the length of the file, both used for progress. Playback is stopped first.
func (d *Driver) Load(pcm []byte, start, total time.Duration) {
	d.Stop()

	d.buf = bytes.NewReader(pcm)
	d.start = start
	d.total = total
}

// Play starts the clip from its beginning. While playing or paused it
// restarts rather than resumes.
func (d *Driver) Play() error {
	if d.buf == nil {
		return ErrNoClip
	}

	if d.state != Stopped {
		d.dev.Stop()
		d.state = Stopped
	}

	if _, err := d.buf.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewinding clip: %w", err)
	}

	d.run++
	run := d.run
	onIdle := func() { d.post(Event{Kind: Idle, Run: run}) }

	if err := d.dev.Start(d.buf, onIdle); err != nil {
		return fmt.Errorf("starting device: %w", err)
	}

	d.state = Playing
	d.logger.Debug("playback started", "run", run, "offset", d.start, "bytes", d.buf.Size())

	return nil
}

func (d *Driver) Pause() error {
	if d.state != Playing {
		return fmt.Errorf("%w: pause while %s", ErrInvalidTransition, d.state)
	}

	d.dev.Suspend()
	d.state = Paused
	d.logger.Debug("playback paused", "run", d.run)

	return nil
}

func (d *Driver) Resume() error {
	if d.state != Paused {
		return fmt.Errorf("%w: resume while %s", ErrInvalidTransition, d.state)
	}

	d.dev.Resume()
	d.state = Playing
	d.logger.Debug("playback resumed", "run", d.run)

	return nil
}

// Toggle is the play/pause button: pause when playing, resume when paused,
// play otherwise.
func (d *Driver) Toggle() error {
	switch d.state {
	case Playing:
		return d.Pause()
	case Paused:
		return d.Resume()
	}

	return d.Play()
}

func (d *Driver) Stop() {
	if d.state == Stopped {
		return
	}

	d.dev.Stop()
	d.state = Stopped
	d.logger.Debug("playback stopped", "run", d.run)
}

// Handle consumes one device event.
func (d *Driver) Handle(ev Event) error {
	switch ev.Kind {
	case Idle:
		if ev.Run != d.run || d.state != Playing {
			d.logger.Debug("dropping stale idle event", "run", ev.Run, "current", d.run, "state", d.state)
			return nil
		}

		if d.loop {
			d.logger.Debug("looping clip", "run", ev.Run)
			return d.Play()
		}

		d.notify(d.Progress())
		d.Stop()
	case Notify:
		if d.state == Stopped {
			return nil
		}

		d.notify(d.Progress())
	default:
		return fmt.Errorf("unknown playback event %d", ev.Kind)
	}

	return nil
}

// Progress computes the current position.
func (d *Driver) Progress() Progress {
	p := Progress{Total: d.total, State: d.state}
	if d.state != Stopped {
		p.Elapsed = d.start + d.dev.Elapsed()
	} else {
		p.Elapsed = d.start
	}

	if d.total > 0 {
		p.Fraction = min(max(float64(p.Elapsed)/float64(d.total), 0), 1)
	}

	return p
}

func (d *Driver) notify(p Progress) {
	for _, o := range d.observers {
		o(p)
	}
}

// Subscribe registers o for progress reports.
func (d *Driver) Subscribe(o Observer) {
	d.observers = append(d.observers, o)
}

func (d *Driver) State() State { return d.state }

func (d *Driver) Loop() bool { return d.loop }

func (d *Driver) SetLoop(loop bool) { d.loop = loop }

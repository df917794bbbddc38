// SPDX-License-Identifier: EPL-2.0

package wavsnip

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"path/filepath"
	"strings"

	"github.com/ik5/wavsnip/audio"
	"github.com/ik5/wavsnip/command"
	"github.com/ik5/wavsnip/formats/wav"
	"github.com/ik5/wavsnip/playback"
	"github.com/ik5/wavsnip/region"
)

// DeviceFunc opens an output device for a stream format.
type DeviceFunc func(info audio.Info) (playback.Device, error)

type Options struct {
	// Start and End select the initial region in frames. End <= 0 selects
	// through the end of the file.
	Start int
	End   int
	// Loop restarts the region when playback reaches its end.
	Loop bool
	// Post forwards device events to the event loop, see playback.Options.
	Post   func(playback.Event)
	Logger *slog.Logger
	// Rand drives Random; nil uses the global source.
	Rand *rand.Rand
}

// Editor is one editing session over a wav file. Like the Driver it wraps,
// it belongs to a single event loop.
type Editor struct {
	src    *wav.Source
	region *region.Region
	driver *playback.Driver
	logger *slog.Logger
}

// Open reads path, selects the initial region and prepares playback on the
// device returned by newDevice.
func Open(path string, newDevice DeviceFunc, opts Options) (*Editor, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	src, err := wav.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading wav: %w", err)
	}

	end := opts.End
	if end <= 0 {
		end = src.Info.TotalFrames
	}

	var regionOpts []region.Option
	if opts.Rand != nil {
		regionOpts = append(regionOpts, region.WithRand(opts.Rand))
	}

	r, err := region.New(src.Info, src, opts.Start, end, regionOpts...)
	if err != nil {
		return nil, fmt.Errorf("initial region: %w", err)
	}

	dev, err := newDevice(src.Info)
	if err != nil {
		return nil, fmt.Errorf("opening device: %w", err)
	}

	e := &Editor{
		src:    src,
		region: r,
		logger: logger,
		driver: playback.NewDriver(dev, playback.Options{
			Loop:   opts.Loop,
			Post:   opts.Post,
			Logger: logger,
		}),
	}
	e.reload()

	logger.Info("opened wav", "path", path, "format", src.Info.String(), "region", r.String())

	return e, nil
}

// Apply parses and applies a region command such as "l-0.5". A command that
// does not parse changes nothing.
func (e *Editor) Apply(text string) error {
	cmd, err := command.Parse(text)
	if err != nil {
		e.logger.Warn("rejected command", "input", text, "error", err)
		return err
	}

	e.driver.Stop()
	if err := e.region.Apply(cmd); err != nil {
		return err
	}
	e.reload()

	e.logger.Debug("applied command", "command", cmd.String(), "region", e.region.String())

	return nil
}

// Random moves the region to a random place of the file, keeping its
// length.
func (e *Editor) Random() error {
	if !e.region.CanPlace() {
		err := e.region.Random()
		e.logger.Warn("cannot place region", "region", e.region.String(), "error", err)
		return err
	}

	e.driver.Stop()
	if err := e.region.Random(); err != nil {
		return err
	}
	e.reload()

	e.logger.Debug("random region", "region", e.region.String())

	return nil
}

// Set moves the region to [start, end) frames, clamped into the file.
func (e *Editor) Set(start, end int) error {
	e.driver.Stop()
	if err := e.region.Set(start, end); err != nil {
		return err
	}
	e.reload()

	return nil
}

// Export writes the region next to the source file and returns the new
// path.
func (e *Editor) Export() (string, error) {
	e.driver.Stop()

	path := ExportPath(e.src.Path, e.region.Start(), e.region.End())
	if err := wav.WriteWAV(path, e.src.Info, e.region.Bytes()); err != nil {
		e.logger.Error("export failed", "path", path, "error", err)
		return "", fmt.Errorf("exporting region: %w", err)
	}

	e.logger.Info("exported region", "path", path, "region", e.region.String())

	return path, nil
}

func (e *Editor) reload() {
	e.driver.Load(e.region.Bytes(), e.region.StartTime(), e.src.Info.Duration())
}

func (e *Editor) Play() error   { return e.driver.Play() }
func (e *Editor) Pause() error  { return e.driver.Pause() }
func (e *Editor) Resume() error { return e.driver.Resume() }
func (e *Editor) Toggle() error { return e.driver.Toggle() }
func (e *Editor) Stop()         { e.driver.Stop() }

// Handle passes a device event to the playback driver.
func (e *Editor) Handle(ev playback.Event) error { return e.driver.Handle(ev) }

func (e *Editor) Subscribe(o playback.Observer) { e.driver.Subscribe(o) }

func (e *Editor) SetLoop(loop bool) { e.driver.SetLoop(loop) }
func (e *Editor) Loop() bool        { return e.driver.Loop() }

func (e *Editor) State() playback.State       { return e.driver.State() }
func (e *Editor) Progress() playback.Progress { return e.driver.Progress() }
func (e *Editor) Region() *region.Region      { return e.region }
func (e *Editor) Info() audio.Info            { return e.src.Info }
func (e *Editor) Path() string                { return e.src.Path }

// Status is the status bar text: the playback position in seconds followed
// by the region and the loop flag.
func (e *Editor) Status() string {
	loop := "off"
	if e.driver.Loop() {
		loop = "on"
	}

	return fmt.Sprintf("%s  %s  %s  loop %s",
		FormatElapsed(e.driver.Progress()), e.driver.State(), e.region, loop)
}

// FormatElapsed renders the position like the status bar does.
func FormatElapsed(p playback.Progress) string {
	return fmt.Sprintf("%.3f", p.Elapsed.Seconds())
}

// ExportPath names the file a region of path is exported to:
// "<path without extension>[<start>-<end>].wav", in frames.
func ExportPath(path string, start, end int) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	return fmt.Sprintf("%s[%d-%d].wav", base, start, end)
}

// SPDX-License-Identifier: EPL-2.0

// Package region models the selected frame range of a wav file.
//
// A Region always satisfies 0 <= Start <= End <= TotalFrames. Bounds are
// clamped rather than rejected, and every change rereads the matching PCM
// slice from its FrameReader.
package region

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/ik5/wavsnip/audio"
	"github.com/ik5/wavsnip/command"
)

// FrameReader reads count frames starting at start.
type FrameReader interface {
	ReadFrames(start, count int) ([]byte, error)
}

type Region struct {
	info  audio.Info
	src   FrameReader
	start int
	end   int
	pcm   []byte
	intN  func(n int) int
}

type Option func(*Region)

// WithRand sets the random source used by Random.
func WithRand(rnd *rand.Rand) Option {
	return func(r *Region) { r.intN = rnd.IntN }
}

// New returns the region [start, end) of a stream described by info, after
// clamping. It fails only when the initial read fails.
func New(info audio.Info, src FrameReader, start, end int, opts ...Option) (*Region, error) {
	r := &Region{
		info: info,
		src:  src,
		intN: rand.IntN,
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.Set(start, end); err != nil {
		return nil, err
	}

	return r, nil
}

// Set moves the region to [start, end), clamped into the file. On a read
// error the region is left as it was.
func (r *Region) Set(start, end int) error {
	start, end = r.clamp(start, end)

	pcm, err := r.src.ReadFrames(start, end-start)
	if err != nil {
		return fmt.Errorf("loading region [%d-%d]: %w", start, end, err)
	}

	r.start, r.end, r.pcm = start, end, pcm

	return nil
}

func (r *Region) clamp(start, end int) (int, int) {
	end = min(max(end, 0), r.info.TotalFrames)
	start = min(max(start, 0), end)

	return start, end
}

// Random moves the region to a uniformly chosen start, keeping its length.
// It returns ErrCannotPlace, leaving the region unchanged, when the region
// is as long as the file.
func (r *Region) Random() error {
	n := r.Len()
	if !r.CanPlace() {
		return fmt.Errorf("%w: %d of %d frames", ErrCannotPlace, n, r.info.TotalFrames)
	}

	start := r.intN(r.info.TotalFrames - n)

	return r.Set(start, start+n)
}

// CanPlace reports whether Random can move the region.
func (r *Region) CanPlace() bool {
	return r.Len() < r.info.TotalFrames
}

// Nudge moves the start (Left) or end (Right) boundary by seconds, rounded
// to the nearest frame.
func (r *Region) Nudge(side command.Side, seconds float64) error {
	delta := r.info.FramesIn(seconds)
	if side == command.Left {
		return r.Set(r.start+delta, r.end)
	}

	return r.Set(r.start, r.end+delta)
}

// Apply nudges the boundary named by cmd.
func (r *Region) Apply(cmd command.Command) error {
	return r.Nudge(cmd.Side, cmd.Delta)
}

func (r *Region) Info() audio.Info { return r.info }
func (r *Region) Start() int       { return r.start }
func (r *Region) End() int         { return r.end }
func (r *Region) Len() int         { return r.end - r.start }

// Bytes returns the PCM data of the region. The slice is replaced, not
// modified, on every change.
func (r *Region) Bytes() []byte { return r.pcm }

func (r *Region) StartTime() time.Duration { return r.info.FrameTime(r.start) }
func (r *Region) EndTime() time.Duration   { return r.info.FrameTime(r.end) }
func (r *Region) Duration() time.Duration  { return r.info.FrameTime(r.Len()) }

func (r *Region) String() string {
	return fmt.Sprintf("[%d-%d] %.3fs-%.3fs", r.start, r.end,
		r.info.Seconds(r.start), r.info.Seconds(r.end))
}

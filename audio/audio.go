// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
	"time"
)

// Info describes an uncompressed PCM stream. It is immutable once read from
// a file.
type Info struct {
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels int
	// SampleRate of the PCM stream in Hz.
	SampleRate int
	// SampleWidth is the size of one sample in bytes (1, 2, 3 or 4).
	SampleWidth int
	// TotalFrames is the number of frames in the stream.
	TotalFrames int
}

// FrameSize returns the number of bytes in one frame across all channels.
func (i Info) FrameSize() int { return i.Channels * i.SampleWidth }

// BitDepth returns the sample width in bits.
func (i Info) BitDepth() int { return i.SampleWidth * 8 }

// Duration of the whole stream.
func (i Info) Duration() time.Duration { return i.FrameTime(i.TotalFrames) }

// FrameTime converts a frame index into a time offset.
func (i Info) FrameTime(frame int) time.Duration {
	if i.SampleRate <= 0 {
		return 0
	}

	return time.Duration(int64(frame) * int64(time.Second) / int64(i.SampleRate))
}

// Seconds converts a frame index into seconds.
func (i Info) Seconds(frame int) float64 {
	if i.SampleRate <= 0 {
		return 0
	}

	return float64(frame) / float64(i.SampleRate)
}

// FramesIn converts seconds into a frame count, rounded to the nearest frame.
// The result saturates at plus or minus TotalFrames.
func (i Info) FramesIn(seconds float64) int {
	frames := math.Round(seconds * float64(i.SampleRate))
	limit := float64(i.TotalFrames)

	switch {
	case math.IsNaN(frames):
		return 0
	case frames > limit:
		return i.TotalFrames
	case frames < -limit:
		return -i.TotalFrames
	}

	return int(frames)
}

// Validate reports whether the format parameters describe a usable stream.
func (i Info) Validate() error {
	switch {
	case i.Channels < 1:
		return fmt.Errorf("%w: %d channels", ErrInvalidInfo, i.Channels)
	case i.SampleRate < 1:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidInfo, i.SampleRate)
	case i.SampleWidth < 1 || i.SampleWidth > 4:
		return fmt.Errorf("%w: sample width %d", ErrInvalidInfo, i.SampleWidth)
	case i.TotalFrames < 0:
		return fmt.Errorf("%w: %d frames", ErrInvalidInfo, i.TotalFrames)
	}

	return nil
}

func (i Info) String() string {
	return fmt.Sprintf("%d ch, %d Hz, %d-bit, %d frames (%s)",
		i.Channels, i.SampleRate, i.BitDepth(), i.TotalFrames, i.Duration())
}

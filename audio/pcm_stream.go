// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/wavsnip/utils"
)

// PCMStream reads interleaved little-endian PCM frames from r and streams
// them as stereo float frames in [-1, 1]. Mono input is duplicated to both
// sides and only the first two channels of wider layouts are kept.
//
// The Stream/Err pair matches the beep.Streamer contract.
type PCMStream struct {
	r      io.Reader
	info   Info
	buf    []byte
	frames int
	err    error
}

func NewPCMStream(r io.Reader, info Info) *PCMStream {
	return &PCMStream{
		r:    r,
		info: info,
		buf:  make([]byte, 512*info.FrameSize()),
	}
}

// Frames returns the number of frames streamed so far.
func (s *PCMStream) Frames() int { return s.frames }

func (s *PCMStream) Err() error { return s.err }

func (s *PCMStream) Stream(samples [][2]float64) (int, bool) {
	if s.err != nil || len(samples) == 0 {
		return 0, s.err == nil
	}

	frameSize := s.info.FrameSize()
	width := s.info.SampleWidth

	need := len(samples) * frameSize
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}

	n, err := io.ReadFull(s.r, s.buf[:need])
	frames := n / frameSize

	for i := range frames {
		frame := s.buf[i*frameSize : (i+1)*frameSize]
		left := utils.SampleToFloat64(frame[:width])
		right := left
		if s.info.Channels > 1 {
			right = utils.SampleToFloat64(frame[width : 2*width])
		}
		samples[i][0] = left
		samples[i][1] = right
	}
	s.frames += frames

	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		s.err = fmt.Errorf("reading pcm: %w", err)
		return frames, frames > 0
	}

	if frames == 0 && err != nil {
		return 0, false
	}

	return frames, true
}

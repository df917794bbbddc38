// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/ik5/wavsnip/audio"
)

// speakerBuffer is the output latency of the speaker.
const speakerBuffer = 100 * time.Millisecond

// Speaker plays PCM through the system audio output via beep. The speaker
// is process global, so there can only be one Speaker at a time.
type Speaker struct {
	info   audio.Info
	rate   beep.SampleRate
	logger *slog.Logger

	// guarded by speaker.Lock
	ctrl   *beep.Ctrl
	stream *audio.PCMStream
}

// NewSpeaker opens the audio output at the rate of info.
func NewSpeaker(info audio.Info, logger *slog.Logger) (*Speaker, error) {
	if err := info.Validate(); err != nil {
		return nil, fmt.Errorf("opening speaker: %w", err)
	}

	rate := beep.SampleRate(info.SampleRate)
	if err := speaker.Init(rate, rate.N(speakerBuffer)); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}

	logger.Debug("speaker ready", "rate", info.SampleRate, "buffer", speakerBuffer)

	return &Speaker{info: info, rate: rate, logger: logger}, nil
}

func (s *Speaker) Start(src io.ReadSeeker, onIdle func()) error {
	stream := audio.NewPCMStream(src, s.info)
	done := beep.Callback(func() {
		// runs under the speaker lock
		go onIdle()
	})
	ctrl := &beep.Ctrl{Streamer: beep.Seq(stream, done)}

	speaker.Lock()
	s.ctrl = ctrl
	s.stream = stream
	speaker.Unlock()

	speaker.Play(ctrl)

	return nil
}

func (s *Speaker) Stop() {
	speaker.Clear()

	speaker.Lock()
	var err error
	if s.stream != nil {
		err = s.stream.Err()
	}
	speaker.Unlock()

	if err != nil {
		s.logger.Warn("speaker stream failed", "error", err)
	}
}

func (s *Speaker) Suspend() { s.setPaused(true) }

func (s *Speaker) Resume() { s.setPaused(false) }

func (s *Speaker) setPaused(paused bool) {
	speaker.Lock()
	defer speaker.Unlock()

	if s.ctrl != nil {
		s.ctrl.Paused = paused
	}
}

// Elapsed is the audible position of the current stream. Frames sit in the
// output buffer for speakerBuffer before they are heard.
func (s *Speaker) Elapsed() time.Duration {
	speaker.Lock()
	defer speaker.Unlock()

	if s.stream == nil {
		return 0
	}

	return played(s.rate.D(s.stream.Frames()), speakerBuffer)
}

func played(handed, latency time.Duration) time.Duration {
	return max(handed-latency, 0)
}

// Close releases the audio output.
func (s *Speaker) Close() {
	speaker.Clear()
	speaker.Close()
}

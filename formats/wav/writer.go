// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/wavsnip/audio"
	"github.com/ik5/wavsnip/utils"
)

// WriteWAV creates path and writes frames, raw PCM in the layout described
// by info, as a PCM wav file. info.TotalFrames is ignored, the frame count
// comes from len(frames).
func WriteWAV(path string, info audio.Info, frames []byte) error {
	if err := info.Validate(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	frameSize := info.FrameSize()
	if len(frames)%frameSize != 0 {
		return fmt.Errorf("%w: %d bytes, frame size %d", ErrPartialFrame, len(frames), frameSize)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating wav: %w", err)
	}

	if err := encode(f, info, frames); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing wav: %w", err)
	}

	return nil
}

func encode(f *os.File, info audio.Info, frames []byte) error {
	width := info.SampleWidth
	data := make([]int, len(frames)/width)
	for i := range data {
		data[i] = utils.SampleToInt(frames[i*width : (i+1)*width])
	}

	enc := gowav.NewEncoder(f, info.SampleRate, info.BitDepth(), info.Channels, formatPCM)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: info.Channels,
			SampleRate:  info.SampleRate,
		},
		Data:           data,
		SourceBitDepth: info.BitDepth(),
	}

	// Write also emits the header, so it runs even for an empty region.
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding wav: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}

// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"
	"os"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/wavsnip/audio"
)

// formatPCM is the WAVE format tag for uncompressed integer PCM.
const formatPCM = 1

// ReadInfo reads the format parameters of the wav file at path.
func ReadInfo(path string) (audio.Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return audio.Info{}, fmt.Errorf("opening wav: %w", err)
	}
	defer f.Close()

	info, _, err := readHeader(f)
	if err != nil {
		return audio.Info{}, err
	}

	return info, nil
}

// ReadFrames reads count frames starting at frame start.
func ReadFrames(path string, start, count int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening wav: %w", err)
	}
	defer f.Close()

	info, offset, err := readHeader(f)
	if err != nil {
		return nil, err
	}

	return readAt(f, info, offset, start, count)
}

// Source binds a wav path to its format parameters.
type Source struct {
	Path string
	Info audio.Info
}

// Open reads the header of path and returns a Source for it.
func Open(path string) (*Source, error) {
	info, err := ReadInfo(path)
	if err != nil {
		return nil, err
	}

	return &Source{Path: path, Info: info}, nil
}

// ReadFrames rereads count frames starting at start from the file.
func (s *Source) ReadFrames(start, count int) ([]byte, error) {
	return ReadFrames(s.Path, start, count)
}

// readHeader parses the RIFF headers and returns the format along with the
// file offset of the first PCM byte.
func readHeader(f *os.File) (audio.Info, int64, error) {
	dec := gowav.NewDecoder(f)
	if !dec.IsValidFile() {
		return audio.Info{}, 0, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM {
		return audio.Info{}, 0, fmt.Errorf("%w: format tag %d", ErrOnlyPCMSupported, dec.WavAudioFormat)
	}

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return audio.Info{}, 0, fmt.Errorf("%w: %d-bit", ErrOnlyPCMSupported, dec.BitDepth)
	}

	// the decoder flattens its chunk errors, a missing data chunk only
	// shows up as a failed seek
	if err := dec.FwdToPCM(); err != nil {
		return audio.Info{}, 0, fmt.Errorf("%w: seeking to pcm data: %v", ErrUnsupportedWavChunks, err)
	}

	offset, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return audio.Info{}, 0, fmt.Errorf("locating pcm data: %w", err)
	}

	info := audio.Info{
		Channels:    int(dec.NumChans),
		SampleRate:  int(dec.SampleRate),
		SampleWidth: int(dec.BitDepth) / 8,
	}

	size := int64(dec.PCMSize)
	// truncated files announce more data than they carry
	if st, err := f.Stat(); err == nil && st.Size()-offset < size {
		size = st.Size() - offset
	}
	info.TotalFrames = int(size / int64(info.FrameSize()))

	if err := info.Validate(); err != nil {
		return audio.Info{}, 0, errors.Join(ErrNotWavFile, err)
	}

	return info, offset, nil
}

func readAt(r io.ReaderAt, info audio.Info, offset int64, start, count int) ([]byte, error) {
	if start < 0 || count < 0 || start+count > info.TotalFrames {
		return nil, fmt.Errorf("%w: [%d, %d) of %d frames", ErrFrameRange, start, start+count, info.TotalFrames)
	}

	frameSize := info.FrameSize()
	buf := make([]byte, count*frameSize)
	if len(buf) == 0 {
		return buf, nil
	}

	if _, err := r.ReadAt(buf, offset+int64(start*frameSize)); err != nil {
		return nil, fmt.Errorf("reading frames: %w", err)
	}

	return buf, nil
}

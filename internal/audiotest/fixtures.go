// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/wavsnip/audio"
)

// Ramp returns frames*FrameSize bytes of PCM where every byte differs from
// its neighbour, so that any misaligned slice is detectable.
func Ramp(info audio.Info, frames int) []byte {
	pcm := make([]byte, frames*info.FrameSize())
	for i := range pcm {
		pcm[i] = byte(i*7 + i/251)
	}

	return pcm
}

// WAVBytes builds a canonical 44-byte header PCM wav around pcm.
func WAVBytes(info audio.Info, pcm []byte) []byte {
	buf := new(bytes.Buffer)

	numChannels := uint16(info.Channels)
	bits := uint16(info.BitDepth())
	byteRate := uint32(info.SampleRate) * uint32(info.FrameSize())
	blockAlign := uint16(info.FrameSize())
	dataSize := uint32(len(pcm))

	// RIFF header
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(info.SampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bits)

	// data chunk
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	buf.Write(pcm)

	return buf.Bytes()
}

// WriteFile writes a wav named name into a fresh temp dir and returns its path.
func WriteFile(tb testing.TB, name string, info audio.Info, pcm []byte) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, WAVBytes(info, pcm), 0o644); err != nil {
		tb.Fatalf("writing fixture: %v", err)
	}

	return path
}

// MemSource serves frames from memory.
type MemSource struct {
	Info  audio.Info
	PCM   []byte
	Err   error
	Reads int
}

func NewMemSource(info audio.Info) *MemSource {
	return &MemSource{Info: info, PCM: Ramp(info, info.TotalFrames)}
}

func (m *MemSource) ReadFrames(start, count int) ([]byte, error) {
	m.Reads++
	if m.Err != nil {
		return nil, m.Err
	}

	fs := m.Info.FrameSize()
	out := make([]byte, count*fs)
	copy(out, m.PCM[start*fs:(start+count)*fs])

	return out, nil
}

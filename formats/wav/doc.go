// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes uncompressed PCM WAV files.
//
// Header parsing and encoding use github.com/go-audio/wav. PCM data is
// exposed as raw little-endian bytes, frame aligned, so that a region can be
// handed straight to an output device or written back out unchanged.
//
// # Supported Formats
//
//   - PCM 8-bit (unsigned), 16, 24 and 32-bit (signed)
//   - Any channel count and sample rate
//
// # Reading
//
//	info, err := wav.ReadInfo("speech.wav")
//	pcm, err := wav.ReadFrames("speech.wav", 8000, 4000) // 4000 frames from frame 8000
//
// A Source binds the path to its Info and rereads frames on demand:
//
//	src, err := wav.Open("speech.wav")
//	pcm, err := src.ReadFrames(0, src.Info.TotalFrames)
//
// # Writing
//
//	err := wav.WriteWAV("clip.wav", info, pcm)
//
// WriteWAV keeps the channel count, sample rate and width of info; the frame
// count comes from the data. Writing frames and reading them back yields the
// same bytes.
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrOnlyPCMSupported: compressed, float or odd-width audio
//   - ErrUnsupportedWavChunks: no data chunk
//   - ErrFrameRange: a frame range past the end of the file
//   - ErrPartialFrame: data to write is not frame aligned
//
// All of them work with errors.Is:
//
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
package wav

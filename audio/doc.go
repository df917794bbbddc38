// SPDX-License-Identifier: EPL-2.0

// Package audio provides the format model shared by the reader, the region
// model and the playback device.
//
// # Info
//
// Info holds the format parameters of a PCM stream and the frame/time
// conversions built on them:
//
//	info := audio.Info{Channels: 1, SampleRate: 8000, SampleWidth: 2, TotalFrames: 16000}
//	info.Duration()      // 2s
//	info.FrameSize()     // 2 bytes
//	info.FramesIn(0.5)   // 4000 frames
//	info.FrameTime(4000) // 500ms
//
// A frame is one sample instant across all channels, the smallest
// addressable unit of a wav file.
//
// # PCMStream
//
// PCMStream turns raw little-endian PCM bytes into stereo float frames for
// an output device. It satisfies the beep.Streamer contract without
// importing beep:
//
//	stream := audio.NewPCMStream(bytes.NewReader(pcm), info)
//	frames := make([][2]float64, 512)
//	n, ok := stream.Stream(frames)
//
// Supported sample widths are 8-bit unsigned and 16, 24 and 32-bit signed.
package audio

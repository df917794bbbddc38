package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrOnlyPCMSupported     = errors.New("only PCM 8, 16, 24 or 32-bit supported")
	ErrUnsupportedWavChunks = errors.New("unsupported WAV chunks")
	ErrFrameRange           = errors.New("frame range out of bounds")
	ErrPartialFrame         = errors.New("data is not a whole number of frames")
)

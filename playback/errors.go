package playback

import "errors"

var (
	ErrInvalidTransition = errors.New("invalid playback transition")
	ErrNoClip            = errors.New("no clip loaded")
)

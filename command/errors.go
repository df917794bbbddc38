package command

import "errors"

var (
	ErrInvalidCommand = errors.New("invalid command")
)

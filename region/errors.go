package region

import "errors"

var (
	ErrCannotPlace = errors.New("region does not fit in the file")
)

// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidInfo = errors.New("invalid audio format")
)

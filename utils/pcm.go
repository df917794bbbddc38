// SPDX-License-Identifier: EPL-2.0

package utils

// SampleToInt decodes one little-endian PCM sample whose width is len(b).
// 8-bit samples are unsigned and returned as stored (0..255), wider samples
// are signed and sign extended.
func SampleToInt(b []byte) int {
	switch len(b) {
	case 1:
		return int(b[0])
	case 2:
		return int(int16(uint16(b[0]) | uint16(b[1])<<8))
	case 3:
		v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
		// sign extend from bit 23
		return int(v<<8) >> 8
	case 4:
		return int(int32(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24))
	}

	return 0
}

// SampleToFloat64 decodes one little-endian PCM sample into [-1, 1].
func SampleToFloat64(b []byte) float64 {
	switch len(b) {
	case 1:
		return float64(int(b[0])-128) / 128.0
	case 2:
		return float64(SampleToInt(b)) / 32768.0
	case 3:
		return float64(SampleToInt(b)) / 8388608.0
	case 4:
		return float64(SampleToInt(b)) / 2147483648.0
	}

	return 0
}

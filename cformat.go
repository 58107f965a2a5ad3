package nsandbox

import (
	"math"
	"strconv"
)

// putBounded copies s into dst the way snprintf(dst, len(dst), "%s", s)
// would: at most len(dst)-1 bytes followed by a NUL. It returns len(s), the
// length that would have been written with unlimited room.
func putBounded(dst, s []byte) int {
	if len(dst) == 0 {
		return len(s)
	}
	n := copy(dst[:len(dst)-1], s)
	dst[n] = 0
	return len(s)
}

// appendCFloat appends f in C's "%f" rendering.
func appendCFloat(b []byte, f float64) []byte {
	switch {
	case math.IsNaN(f):
		if math.Signbit(f) {
			return append(b, "-nan"...)
		}
		return append(b, "nan"...)
	case math.IsInf(f, 1):
		return append(b, "inf"...)
	case math.IsInf(f, -1):
		return append(b, "-inf"...)
	}
	return strconv.AppendFloat(b, f, 'f', 6, 64)
}

func appendBool(b []byte, v bool) []byte {
	if v {
		return append(b, '1')
	}
	return append(b, '0')
}

// CString returns the text in buf up to the first NUL.
func CString(buf []byte) string {
	for i, c := range buf {
		if c == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}

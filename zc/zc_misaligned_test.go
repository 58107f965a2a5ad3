//go:build !race

// checkptr (enabled by -race) rejects the misaligned conversion below.

package zc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewCheckedMisaligned(t *testing.T) {
	raw := make([]byte, 16)
	base := uintptr(unsafe.Pointer(&raw[0]))
	off := 1
	if (base+1)%8 == 0 {
		off = 2
	}
	p := (*int64)(unsafe.Pointer(&raw[off]))

	_, err := ViewChecked(Options{CheckAlignment: true}, p, 1)
	require.ErrorIs(t, err, ErrMisaligned)

	v, err := ViewChecked(Options{}, p, 1)
	require.NoError(t, err)
	assert.Len(t, v, 1)
}

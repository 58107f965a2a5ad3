package zc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewAliasesMemory(t *testing.T) {
	backing := []int32{1, 2, 3, 4}
	v := View(&backing[0], 3)
	require.Len(t, v, 3)
	assert.Equal(t, []int32{1, 2, 3}, v)

	backing[1] = 42
	assert.Equal(t, int32(42), v[1])
}

func TestViewEmpty(t *testing.T) {
	var p *float64
	assert.Nil(t, View(p, 4))
	x := 1.5
	assert.Nil(t, View(&x, 0))
	assert.Nil(t, View(&x, -1))
}

func TestViewCheckedAligned(t *testing.T) {
	backing := []int64{7, 8}
	v, err := ViewChecked(Options{CheckAlignment: true}, First(backing), len(backing))
	require.NoError(t, err)
	assert.Equal(t, backing, v)
}

func TestFirst(t *testing.T) {
	assert.Nil(t, First([]int16(nil)))
	s := []int16{5}
	assert.Same(t, &s[0], First(s))
}

func TestAligned(t *testing.T) {
	words := make([]uint64, 2)
	p := unsafe.Pointer(&words[0])
	assert.True(t, Aligned(p, unsafe.Alignof(words[0])))
	assert.False(t, Aligned(unsafe.Add(p, 1), 2))
	assert.True(t, Aligned(unsafe.Add(p, 3), 1))
}

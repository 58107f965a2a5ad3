//go:build cgo

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/nsandbox"
	"github.com/rawbytedev/nsandbox/pkg/fixture"
)

func sampleGraph(t *testing.T) *fixture.Graph {
	t.Helper()
	g, err := fixture.Build(&fixture.Document{Nodes: []fixture.NodeDoc{{
		TypeID: 1, Byte: 5, Short: -2, Int: 100, Long: 123456789012,
		Float: 1.5, Double: 2.25, Boolean: true, Enum: 2,
		Struct: fixture.StructDoc{Int: 10, Float: 0.5, NativeEnum: 20},
		Arrays: &fixture.ArraysDoc{TypeID: 2, Ints: []int32{1, 2, 3}},
	}}})
	require.NoError(t, err)
	return g
}

func TestPrintTestObject(t *testing.T) {
	g := sampleGraph(t)
	dst := make([]byte, 128)
	callRecord(g.Root(), dst)
	assert.Equal(t, "1,5,-2,100,123456789012,1.500000,2.250000,1,2,{10,0.500000,20},{2}", nsandbox.CString(dst))
}

func TestPrintTestObjectWithArrays(t *testing.T) {
	g := sampleGraph(t)
	dst := make([]byte, 32)
	callArray(g.Root(), nsandbox.IntArray, 3, dst)
	assert.Equal(t, "1,2,3", nsandbox.CString(dst))

	untouched := []byte("same")
	callArray(g.Root(), 9, 3, untouched)
	assert.Equal(t, "same", string(untouched))
}

func TestEmptyBuffersAreIgnored(t *testing.T) {
	g := sampleGraph(t)
	callRecord(g.Root(), nil)
	callArray(g.Root(), nsandbox.IntArray, 3, []byte{})
	assert.Nil(t, cBuffer(nil, 4))
}

// Package nsandbox renders fixed-layout native records into caller supplied
// buffers. The record types mirror the C declarations used by binding-layer
// test suites field for field, so a pointer handed over from C can be read as
// a *Record directly.
package nsandbox

import (
	"errors"
	"unsafe"
)

var (
	ErrNotStruct   = errors.New("expected struct")
	ErrUnsupported = errors.New("unsupported type")
)

// BaseObject is the tag every tagged record starts with.
type BaseObject struct {
	TypeID uint64
}

// Enum is a plain 4-valued enumeration stored as its ordinal.
type Enum int32

const (
	EnumA Enum = iota
	EnumB
	EnumC
	EnumD
)

// Valid reports whether e is one of the declared values.
func (e Enum) Valid() bool { return e >= EnumA && e <= EnumD }

// NativeEnum is an enumeration with explicit native values.
type NativeEnum int32

const (
	NativeEnumA NativeEnum = 5
	NativeEnumB NativeEnum = 10
	NativeEnumC NativeEnum = 20
	NativeEnumD NativeEnum = 42
)

// NativeEnumValues lists every declared NativeEnum in declaration order.
var NativeEnumValues = [...]NativeEnum{NativeEnumA, NativeEnumB, NativeEnumC, NativeEnumD}

func (e NativeEnum) Valid() bool {
	for _, v := range NativeEnumValues {
		if v == e {
			return true
		}
	}
	return false
}

// Nested is the by-value record embedded in Record.
type Nested struct {
	AnInt       int32
	AFloat      float32
	ANativeEnum NativeEnum
}

// ArrayHolder points at caller-owned arrays. Element counts are not stored;
// they travel alongside the holder.
type ArrayHolder struct {
	BaseObject
	AByteArray      *int8
	AShortArray     *int16
	AnIntArray      *int32
	ALongArray      *int64
	AFloatArray     *float32
	ADoubleArray    *float64
	ABooleanArray   *bool
	AnEnumArray     *Enum
	AStructArray    *Nested
	AReferenceArray *unsafe.Pointer
}

// Record is the tagged record the formatter reads.
type Record struct {
	BaseObject
	AByte       int8
	AShort      int16
	AnInt       int32
	ALong       int64
	AFloat      float32
	ADouble     float64
	ABoolean    bool
	AnEnum      Enum
	AFloatArray *float32
	AStruct     Nested
	Arrays      *ArrayHolder
	Next        *Record
}

package common

import (
	"reflect"
	"unsafe"
)

// PtrSize is the width of a native pointer on the running target.
const PtrSize = int(unsafe.Sizeof(uintptr(0)))

// IsScalarKind reports whether k is a fixed-size primitive kind.
func IsScalarKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// IsPointerKind reports whether k is stored as a native address.
func IsPointerKind(k reflect.Kind) bool {
	return k == reflect.Pointer || k == reflect.UnsafePointer || k == reflect.Uintptr
}

// Size returns the native byte width for scalar and pointer kinds, -1 otherwise.
func Size(k reflect.Kind) int {
	switch k {
	case reflect.Bool, reflect.Int8, reflect.Uint8:
		return 1
	case reflect.Int16, reflect.Uint16:
		return 2
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return 4
	case reflect.Int64, reflect.Uint64, reflect.Float64:
		return 8
	case reflect.Pointer, reflect.UnsafePointer, reflect.Uintptr:
		return PtrSize
	default:
		return -1
	}
}

// Align returns the natural alignment of k as the C compiler of the running
// target lays it out. 64-bit scalars follow the platform word on 32-bit
// targets.
func Align(k reflect.Kind) int {
	switch k {
	case reflect.Int64, reflect.Uint64, reflect.Float64:
		if PtrSize < 8 {
			return PtrSize
		}
		return 8
	default:
		return Size(k)
	}
}

// AlignUp rounds off up to the next multiple of align.
func AlignUp(off, align int) int {
	if align <= 1 {
		return off
	}
	if mod := off % align; mod > 0 {
		return off + align - mod
	}
	return off
}

// Command native builds the sandbox shared library binding test suites load:
//
//	go build -buildmode=c-shared -o libsandbox-native.so ./native
//
// The exported symbols keep the calling convention of the C fixture they
// replace. Record pointers received from C are read in place.
package main

import "C"

import (
	"unsafe"

	"github.com/rawbytedev/nsandbox"
)

func init() {
	if err := nsandbox.CheckLayout(); err != nil {
		panic(err)
	}
}

//export printTestObject
func printTestObject(testObject unsafe.Pointer, dst *C.char, maxLength C.int) {
	buf := cBuffer(dst, maxLength)
	if buf == nil {
		return
	}
	nsandbox.FormatRecord((*nsandbox.Record)(testObject), buf)
}

//export printTestObjectWithArrays
func printTestObjectWithArrays(testObject unsafe.Pointer, array, length C.int, dst *C.char, maxLength C.int) {
	buf := cBuffer(dst, maxLength)
	if buf == nil {
		return
	}
	nsandbox.FormatArrayField((*nsandbox.Record)(testObject), nsandbox.ArraySelector(array), int(length), buf)
}

// cBuffer views a caller-owned char buffer; nil for an unusable one.
func cBuffer(dst *C.char, n C.int) []byte {
	if dst == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(dst)), int(n))
}

func main() {}

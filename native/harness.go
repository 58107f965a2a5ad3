package main

import "C"

import (
	"unsafe"

	"github.com/rawbytedev/nsandbox"
)

// callRecord and callArray drive the exported entry points from Go buffers.
func callRecord(rec *nsandbox.Record, dst []byte) {
	printTestObject(unsafe.Pointer(rec), cPtr(dst), C.int(len(dst)))
}

func callArray(rec *nsandbox.Record, sel nsandbox.ArraySelector, count int, dst []byte) {
	printTestObjectWithArrays(unsafe.Pointer(rec), C.int(sel), C.int(count), cPtr(dst), C.int(len(dst)))
}

func cPtr(b []byte) *C.char {
	return (*C.char)(unsafe.Pointer(unsafe.SliceData(b)))
}

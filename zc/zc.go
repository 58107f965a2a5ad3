// Package zc (zero-copy) aliases caller-owned native arrays as Go slices.
// Nothing is copied: the returned slices share memory with the pointer they
// were built from, so the caller must keep that memory alive and must not
// resize it while a view is in use.
package zc

import (
	"errors"
	"unsafe"
)

var ErrMisaligned = errors.New("zc: pointer not aligned for element type")

// Options contains runtime flags controlling zero-copy behaviour.
type Options struct {
	// CheckAlignment enables runtime alignment checks before aliasing.
	CheckAlignment bool
}

// View aliases n elements starting at p. A nil p or n <= 0 yields nil.
func View[T any](p *T, n int) []T {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice(p, n)
}

// ViewChecked is View with the alignment check applied when enabled.
func ViewChecked[T any](o Options, p *T, n int) ([]T, error) {
	if o.CheckAlignment && p != nil {
		var zero T
		if !Aligned(unsafe.Pointer(p), unsafe.Alignof(zero)) {
			return nil, ErrMisaligned
		}
	}
	return View(p, n), nil
}

// Aligned reports whether p is a multiple of align.
func Aligned(p unsafe.Pointer, align uintptr) bool {
	if align <= 1 {
		return true
	}
	return uintptr(p)%align == 0
}

// First returns a pointer to the first element of s, or nil when s is empty.
func First[T any](s []T) *T {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}

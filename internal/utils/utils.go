package utils

import "unsafe"

type Key string

// B2S converts a byte slice to a string without copying.
// The input must not be mutated afterwards.
func B2S(b []byte) string {
	return *(*string)(unsafe.Pointer(&b))
}

// S2B converts a string to a byte slice without copying.
// The result must not be mutated.
func S2B(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func Ternary[T any](cond bool, whenTrue T, whenFalse T) T {
	if cond {
		return whenTrue
	}

	return whenFalse
}

func PointerOf[T any](v T) *T {
	return &v
}

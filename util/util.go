// Package util contains common utility functions. This is not part of the common
// package as that is imported without namespacing.
package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Contains returns trues if arr contains value.
func Contains[T comparable](arr []T, value T) bool {
	for _, elem := range arr {
		if elem == value {
			return true
		}
	}
	return false
}

// Filter retains all values of arr for which pred returns true. The order of
// the retained values is kept.
func Filter[T any](arr []T, pred func(T) bool) []T {
	kept := arr[:0]
	for _, x := range arr {
		if pred(x) {
			kept = append(kept, x)
		}
	}
	return kept
}

// Map applies f to each value of arr.
func Map[T any, U any](arr []T, f func(T) U) []U {
	result := make([]U, len(arr))
	for i, x := range arr {
		result[i] = f(x)
	}
	return result
}

// PopFront pops the first value from the given slice.
func PopFront[T any](arr []T) (T, []T) {
	x, xs := arr[0], arr[1:]
	return x, xs
}

// Back returns a pointer to the last element in the slice.
func Back[T any](arr []T) *T {
	return &arr[len(arr)-1]
}

// String2Int creates an integer with the utf-8 representation of the string.
// The last character is the lowest byte.
func String2Int(s string) uint64 {
	asInt := uint64(0)
	for _, b := range []byte(s) {
		asInt <<= 8
		asInt |= uint64(b)
	}
	return asInt
}

// PadRight pads str with spaces to the given number of terminal cells, handling
// fullwidth characters. Longer strings are truncated with a tilde.
func PadRight(str string, width int) string {
	if runewidth.StringWidth(str) > width {
		str = runewidth.Truncate(str, width, "~")
	}
	return str + strings.Repeat(" ", max(0, width-runewidth.StringWidth(str)))
}

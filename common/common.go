// Package common contains the lookahead iterator and the types and utilities
// needed by all other packages.
package common

import (
	"fmt"
	"log"
)

var (
	InvocationName string
)

// Fatal aborts the program with an errors message that is prefixed with the
// invocation name of the program.
func Fatal(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Fatalf("%s: %s\n", InvocationName, msg)
}

// Warn logs a message prefixed with the invocation name of the program.
func Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Printf("%s: %s\n", InvocationName, msg)
}

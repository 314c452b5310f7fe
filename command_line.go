package argh

import (
	"os"
)

// CommandLine is the default Parser used by the package functions.
// It follows the pattern of flag.CommandLine in the stdlib.
var CommandLine = New()

// AddParam registers parameter names with the default Parser.
// See Parser.AddParam
func AddParam(names ...string) {
	CommandLine.AddParam(names...)
}

// Parse classifies os.Args using the default Parser. Like a raw argument vector,
// os.Args includes the program name, which becomes Positional(0).
func Parse(mode Mode) *Result {
	return CommandLine.Parse(os.Args, mode)
}

// Flag reports whether any of the names was a flag in the last Parse.
func Flag(names ...string) bool {
	return CommandLine.Flag(names...)
}

// Param returns the value of the first of the names found in the last Parse.
func Param(names ...string) *Value {
	return CommandLine.Param(names...)
}

// Positional returns the positional argument at index i from the last Parse.
func Positional(i int) string {
	return CommandLine.Positional(i)
}

// Size returns the positional argument count of the last Parse.
func Size() int {
	return CommandLine.Size()
}

package log

import "fmt"

// Warn writes to the warning logger.
// Arguments are handled in the manner of fmt.Print.
func Warn(v ...interface{}) {
	std.Warn(fmt.Sprint(v...))
}

// Warnf writes to the warning logger.
// Arguments are handled in the manner of fmt.Printf.
func Warnf(format string, v ...interface{}) {
	std.Warnf(format, v...)
}

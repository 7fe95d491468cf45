package log

import "fmt"

// Debug writes to the debug logger.
// Arguments are handled in the manner of fmt.Print.
func Debug(v ...interface{}) {
	std.Debug(fmt.Sprint(v...))
}

// Debugf writes to the debug logger.
// Arguments are handled in the manner of fmt.Printf.
func Debugf(format string, v ...interface{}) {
	std.Debugf(format, v...)
}

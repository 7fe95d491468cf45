package log

import "fmt"

// Info writes to the info logger.
// Arguments are handled in the manner of fmt.Print.
func Info(v ...interface{}) {
	std.Info(fmt.Sprint(v...))
}

// Infof writes to the info logger.
// Arguments are handled in the manner of fmt.Printf.
func Infof(format string, v ...interface{}) {
	std.Infof(format, v...)
}

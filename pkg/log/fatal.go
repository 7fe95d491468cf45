package log

import "fmt"

// Fatal writes to the fatal logger and exits with status 1.
// Arguments are handled in the manner of fmt.Print.
func Fatal(v ...interface{}) {
	std.Fatal(fmt.Sprint(v...))
}

// Fatalf writes to the fatal logger and exits with status 1.
// Arguments are handled in the manner of fmt.Printf.
func Fatalf(format string, v ...interface{}) {
	std.Fatalf(format, v...)
}

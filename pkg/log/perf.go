package log

import "fmt"

// Perf writes to the performance logger.
// Arguments are handled in the manner of fmt.Print.
func Perf(v ...interface{}) {
	perf.Info(fmt.Sprint(v...))
}

// Perff writes to the performance logger.
// Arguments are handled in the manner of fmt.Printf.
func Perff(format string, v ...interface{}) {
	perf.Infof(format, v...)
}

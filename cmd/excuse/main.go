// Package main implements the excuse command-line client. It runs the same
// service stack as the HTTP server in-process and prints the result.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var se *statusError
		if errors.As(err, &se) {
			os.Exit(se.exitCode())
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"io"
	"os"
)

// run validates the argument vector, computes the Fibonacci number and
// returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		prog := "fibonacci"
		if len(args) > 0 {
			prog = args[0]
		}
		fmt.Fprintf(stderr, "Usage: %s <n>\n", prog)
		return 1
	}

	// Non-numeric input parses as 0, like C atoi.
	n := atoi(args[1])
	fmt.Fprintf(stdout, "%d\n", fibonacci(n))
	return 0
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

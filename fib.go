package main

import (
	"errors"
	"strconv"
	"strings"
)

// fibonacci calculates the nth Fibonacci number using iteration.
// Inputs below 2, negative ones included, are returned unchanged. Results
// for n > 92 wrap around. n is a full int64, so unlike a 32-bit C int an
// argument such as 4294967306 is not truncated to 10.
func fibonacci(n int64) int64 {
	if n <= 1 {
		return n
	}
	_, b := advance(0, 1, n-1)
	return b
}

// advance moves the accumulator pair forward steps times. Counting down
// keeps the loop finite for steps up to math.MaxInt64.
func advance(a, b, steps int64) (int64, int64) {
	for ; steps > 0; steps-- {
		a, b = b, a+b
	}
	return a, b
}

// atoi converts the leading decimal integer in s, ignoring leading
// whitespace and anything after the digits. It returns 0 when s has no
// digits and saturates at the int64 bounds.
func atoi(s string) int64 {
	s = strings.TrimLeft(s, " \t\n\v\f\r")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return n
}

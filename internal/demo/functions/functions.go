// Package functions holds the function-call demonstrations: a two-argument
// print helper and addition over integers and decimals.
package functions

import (
	"fmt"
	"io"
)

// Number is the set of types Add accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Describe prints i and c on separate lines.
func Describe(w io.Writer, i int, c rune) error {
	_, err := fmt.Fprintf(w, "the value of i is %d\nthe value of c is %c\n", i, c)
	return err
}

// AddInts returns a + b with int wraparound on overflow.
func AddInts(a, b int) int {
	return a + b
}

// AddFloats returns a + b rounded to the nearest float64.
func AddFloats(a, b float64) float64 {
	return a + b
}

// Add is the generic form of AddInts and AddFloats; T is fixed at the call site.
func Add[T Number](a, b T) T {
	return a + b
}

// Package loops demonstrates Go's single for statement in the shapes of the
// classic while, do/while, counted and range loops.
package loops

import (
	"fmt"
	"io"
)

const (
	sillyLine = "This is silly."
	sillyRuns = 5
)

// While prints sillyLine while a counter stays below five.
func While(w io.Writer) error {
	i := 0
	for i < sillyRuns {
		if _, err := fmt.Fprintln(w, sillyLine); err != nil {
			return err
		}
		i++
	}
	return nil
}

// DoWhile runs the body before testing the condition, so it prints once
// even though the counter starts past the bound.
func DoWhile(w io.Writer) error {
	i := 100
	for {
		if _, err := fmt.Fprintln(w, sillyLine); err != nil {
			return err
		}
		i++
		if i >= sillyRuns {
			break
		}
	}
	return nil
}

// For prints sillyLine five times with a counted loop.
func For(w io.Writer) error {
	for i := 0; i < sillyRuns; i++ {
		if _, err := fmt.Fprintln(w, sillyLine); err != nil {
			return err
		}
	}
	return nil
}

// Range prints each element of a fixed array.
func Range(w io.Writer) error {
	arr := [...]int{1, 2, 3, 4}
	for _, v := range arr {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}

// RangeWithInit is Range with the array scoped to the loop.
func RangeWithInit(w io.Writer) error {
	for _, v := range [...]int{1, 2, 3, 4} {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}

// All runs every loop variant, with a blank line after each silly loop.
func All(w io.Writer) error {
	steps := []func(io.Writer) error{While, DoWhile, For}
	for _, step := range steps {
		if err := step(w); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	if err := Range(w); err != nil {
		return err
	}
	return RangeWithInit(w)
}

// Package mycode is the qualified home of Foo for the namespace demonstration.
// Callers reach it as mycode.Foo or bind it to a local, unqualified name.
package mycode

import (
	"fmt"
	"io"
)

// Foo reports that it was called from the mycode package.
func Foo(w io.Writer) error {
	_, err := fmt.Fprintln(w, "foo() called in the mycode namespace")
	return err
}

// Package greeting formats greeting messages.
package greeting

import "fmt"

// DefaultName is the name greeted when none is given.
const DefaultName = "World"

// Greet returns the greeting for name. Any text is accepted, including
// the empty string; the input appears in the output unmodified.
func Greet(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}

package ui

import (
	"fmt"

	"github.com/kballard/go-shellquote"
)

// Success prints a success message with checkmark
func Success(message string) {
	fmt.Printf("✓ %s\n", message)
}

// Info prints an info message
func Info(message string) {
	fmt.Printf("ℹ %s\n", message)
}

// Command echoes a delegated command line, shell-quoted so it can be pasted
// back into a terminal verbatim
func Command(argv ...string) {
	fmt.Println("+ " + shellquote.Join(argv...))
}

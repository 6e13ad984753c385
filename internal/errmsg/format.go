// Package errmsg provides consistent error formatting for the status line.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

const (
	// Library index
	OpLibraryOpen   Op = "open library"
	OpLibraryLoad   Op = "load library"
	OpLibraryUpdate Op = "update library"

	// Playlist
	OpFileLoad Op = "load file"
	OpTagEdit  Op = "edit tag"
	OpTagWrite Op = "write tags"

	// Session
	OpSessionLoad Op = "restore session"
	OpSessionSave Op = "save session"

	OpConfigLoad Op = "load config"
	OpClipboard  Op = "copy to clipboard"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message naming the item that failed.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

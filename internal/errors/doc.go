// Package errors defines the sentinel errors shared across interview-tui.
//
// Callers wrap these with fmt.Errorf("...: %w", err) and match them with
// errors.Is. The UI layer turns them into error toasts; nothing here is
// fatal to the program.
package errors

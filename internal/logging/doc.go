// Package logging provides leveled logging for interview-tui.
//
// The terminal belongs to the Bubble Tea program while it runs, so the
// logger never writes to stdout. Output goes to whatever writer the caller
// supplies, normally the file opened by tea.LogToFile for --log-file, and
// is discarded otherwise.
//
//	log := logging.Logger{Verbose: verbose, Debug: debug, Out: f}
//	log.Infof("session started with %d questions", n)
//
// Infof and Warnf are shown with --verbose or --debug, Debugf only with
// --debug. Errorf is always written.
package logging

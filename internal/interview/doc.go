// Package interview holds the practice-session domain: the embedded
// question bank, the session state machine with its countdown, end of
// session feedback and transcript export.
//
// Nothing in this package touches the network. The API key entered in the
// UI is never passed here.
package interview

// Package classify decides whether a raw command line needs a real
// pseudo-terminal or can run with plain piped I/O. The decision is a pure
// function of the command text plus one probe of the process's own stdio;
// malformed input always degrades to "no PTY".
package classify

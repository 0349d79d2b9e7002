package main

import "errors"

// Error kinds the driver distinguishes, matching spec.md §7 exactly.
// A general-purpose compiler's errors.go would additionally carry a
// source-location/ErrorCollector diagnostic system (CompilerError,
// ErrorContext, colored Format/Report) for surfacing many parse/semantic
// errors against line:column positions in a general-purpose language; this
// driver only ever fails in one of three ways and has no source positions
// to report, so that machinery doesn't apply — see DESIGN.md.
var (
	// ErrSourceUnavailable means the source file named on the command line
	// could not be opened.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrExecMemory means allocating or protecting the executable memory
	// region failed.
	ErrExecMemory = errors.New("executable memory allocation failed")

	// ErrUnbalancedBrackets means the IR builder's loop stack underflowed
	// (a stray ']') or was non-empty at end of input (a stray '[').
	ErrUnbalancedBrackets = errors.New("unbalanced brackets")
)

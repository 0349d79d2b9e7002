package main

import "github.com/xyproto/env/v2"

// Config holds every runtime tunable read from the environment at process
// start. The canonicalizer, IR builder, and code generator never read the
// environment themselves; main wires a Config's fields in explicitly, which
// keeps those three components free of ambient I/O.
type Config struct {
	// Verbose hex-dumps every emitted instruction to stderr (VerboseMode in
	// emit.go).
	Verbose bool

	// OutputBufferSize is the size, in bytes, of the zeroed buffer the
	// emitted function writes OUT bytes into.
	OutputBufferSize int

	// InputCapacityHint sizes the initial stdin-drain buffer; it grows past
	// this if stdin produces more bytes.
	InputCapacityHint int

	// CodeSizeMultiplier is the k in ceil(k*(|code|+1), 1024), the
	// executable-region size estimate.
	CodeSizeMultiplier int
}

// LoadConfig reads BFJIT_VERBOSE, BFJIT_OUTPUT_BUFFER, BFJIT_INPUT_CAPACITY
// and BFJIT_CODE_SIZE_MULTIPLIER, falling back to their documented defaults.
func LoadConfig() Config {
	return Config{
		Verbose:            env.BoolOr("BFJIT_VERBOSE", false),
		OutputBufferSize:   env.IntOr("BFJIT_OUTPUT_BUFFER", 100000),
		InputCapacityHint:  env.IntOr("BFJIT_INPUT_CAPACITY", 65536),
		CodeSizeMultiplier: env.IntOr("BFJIT_CODE_SIZE_MULTIPLIER", 10),
	}
}

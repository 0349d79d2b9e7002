// Completion: 100% - CLI interface complete
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
)

// A just-in-time compiler and runtime for the eight-instruction tape-machine
// language, targeting amd64 only.

const versionString = "bfjit 1.0.0"

func main() {
	var version = flag.Bool("version", false, "print version information and exit")
	var verboseFlag = flag.Bool("v", false, "verbose mode (hex-dump every emitted instruction to stderr)")
	flag.Parse()

	if *version {
		fmt.Println(versionString)
		return
	}

	cfg := LoadConfig()
	if *verboseFlag {
		cfg.Verbose = true
	}

	sourcePath := flag.Arg(0)
	source, err := ReadSource(sourcePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fn, mem, err := Compile(source, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer mem.Release()

	input, err := drainRemainingStdin(cfg.InputCapacityHint)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	tapePtr := NewTape()
	output := make([]byte, cfg.OutputBufferSize)

	fn(tapePtr, &input[0], &output[0])

	if n := bytes.IndexByte(output, 0); n >= 0 {
		os.Stdout.Write(output[:n])
	} else {
		os.Stdout.Write(output)
	}
}

// drainRemainingStdin implements spec.md §6's runtime I/O harness: read
// whatever is left on standard input (after source acquisition, if the
// program itself came from stdin) into a buffer terminated by a trailing
// \0, so the emitted code's IN reads past end-of-input yield 0 instead of
// reading uninitialized memory.
func drainRemainingStdin(capacityHint int) ([]byte, error) {
	buf := make([]byte, 0, capacityHint)
	chunk := make([]byte, 4096)
	for {
		n, err := os.Stdin.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
		}
		if err != nil {
			break
		}
	}
	return append(buf, 0), nil
}

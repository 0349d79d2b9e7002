// Completion: 100% - Utility module complete
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// ReadSource implements spec.md §6's source-acquisition rule: one optional
// positional file path. If given, the file is read line by line and the
// lines concatenated with no separator (physical line breaks are discarded;
// they aren't a token in this language). If absent, standard input is read
// byte by byte until EOF or the first '!' sentinel, which is itself
// excluded from the result.
//
// This is a sharp reduction from a multi-subcommand build/run/test CLI
// built around a compile-to-executable-file
// workflow (RunCLI, cmdBuild, cmdRun, cmdBuildDir, shebang execution); none
// of that subcommand surface applies to a one-shot JIT that only ever reads
// one program and runs it once — see DESIGN.md.
func ReadSource(path string) ([]byte, error) {
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, path, err)
		}
		defer f.Close()

		var src []byte
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			src = append(src, scanner.Bytes()...)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, path, err)
		}
		return src, nil
	}

	return readUntilSentinel(os.Stdin)
}

// readUntilSentinel reads bytes from r until EOF or a '!' byte, which is
// consumed but not included in the result.
func readUntilSentinel(r io.Reader) ([]byte, error) {
	var src []byte
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if buf[0] == '!' {
				break
			}
			src = append(src, buf[0])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
		}
	}
	return src, nil
}

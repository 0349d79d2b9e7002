// Completion: 100% - Instruction implementation complete
package main

import (
	"fmt"
	"os"
)

// RET instruction. The emitted tape-machine function takes no stack
// parameters to clean up, so only a plain near-return form survives
// (a RetImm variant, used to pop call-convention stack args elsewhere,
// does not apply here).

// Ret emits a near return (`ret`), appended once after the last IR op.
func (o *Out) Ret() {
	if VerboseMode {
		fmt.Fprintf(os.Stderr, "ret:")
	}
	o.Write(0xc3)
	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}

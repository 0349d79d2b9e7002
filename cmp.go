// Completion: 100% - Instruction implementation complete
package main

import (
	"fmt"
	"os"
)

// CMP instruction. The only comparison this generator ever needs is "is the
// current cell zero" — every branch (LOOP_B/LOOP_E) and every scan loop
// (WIND/REWD/WIND2/REWD2) is gated on it. Register-to-register and
// multi-architecture comparison forms served general comparison
// operators a source language exposed; none of that applies here.

// CmpCellToZero emits `cmpb $0, (%rdi)`.
func (o *Out) CmpCellToZero() {
	if VerboseMode {
		fmt.Fprintf(os.Stderr, "cmpb $0, (%%rdi):")
	}
	rdi := mustRegister("rdi")
	o.Write(0x80) // CMP r/m8, imm8 (group 1, /7)
	o.Write(ModRM(modIndirect, 7 /* /7 */, rdi))
	o.Write(0x00)
	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}

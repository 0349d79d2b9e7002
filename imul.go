// Completion: 100% - Instruction implementation complete
package main

import (
	"fmt"
	"os"
)

// IMUL instruction. MULMAP is the only IR op that multiplies, and only for
// factors other than 1 (factor==1 pairs skip straight to AddAlToMemDisp8).
// Every register-register/ARM64/RISC-V IMUL form a general-purpose backend
// would carry is gone along with the multi-architecture backend.

// ImulMemByImmToRax emits `imul imm, (%rdi), %rax` — loads the current
// cell, multiplies it by imm, and leaves the product in %rax (its low byte,
// %al, is what AddAlToMemDisp8 then distributes).
func (o *Out) ImulMemByImmToRax(imm int8) {
	if VerboseMode {
		fmt.Fprintf(os.Stderr, "imul $%d, (%%rdi), %%rax:", imm)
	}
	rax, rdi := mustRegister("rax"), mustRegister("rdi")
	o.Write(0x48) // REX.W
	o.Write(0x6b) // IMUL r64, r/m64, imm8
	o.Write(ModRM(modIndirect, rax.Encoding, rdi))
	o.Write(uint8(imm))
	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}

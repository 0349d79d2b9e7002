// Completion: 100% - Instruction implementation complete
package main

import (
	"fmt"
	"os"
)

// ADD instruction forms ADDMAP and MULMAP emit. Every form that touched a
// general-purpose register pair (AddRegToReg, AddRegToRegToReg, and
// the ARM64/RISC-V variants) is gone: this generator's only additions are
// byte stores into the tape and one 64-bit pointer bump, all relative to
// %rdi, matching spec.md §4.3's per-op emission rules.

// AddByteImmToMem emits `addb imm, (%rdi)` — an ADDMAP pair at offset 0, or
// (after the pointer has been shifted) a pair whose offset equalled the
// shift.
func (o *Out) AddByteImmToMem(imm int8) {
	if VerboseMode {
		fmt.Fprintf(os.Stderr, "addb $%d, (%%rdi):", imm)
	}
	rdi := mustRegister("rdi")
	o.Write(0x80) // ADD r/m8, imm8 (group 1, /0)
	o.Write(ModRM(modIndirect, 0 /* /0 */, rdi))
	o.Write(uint8(imm))
	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}

// AddByteImmToMemDisp8 emits `addb imm, disp8(%rdi)` — an ADDMAP pair whose
// offset is neither 0 nor the run's final shift.
func (o *Out) AddByteImmToMemDisp8(disp int8, imm int8) {
	if VerboseMode {
		fmt.Fprintf(os.Stderr, "addb $%d, %d(%%rdi):", imm, disp)
	}
	rdi := mustRegister("rdi")
	o.Write(0x80) // ADD r/m8, imm8
	o.Write(ModRM(modDisp8, 0 /* /0 */, rdi))
	o.Write(uint8(disp))
	o.Write(uint8(imm))
	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}

// AddImmToRdi emits `add imm, %rdi` — the net pointer shift an ADDMAP run
// accumulated, applied once after every non-shifted offset has been written.
func (o *Out) AddImmToRdi(imm int8) {
	if VerboseMode {
		fmt.Fprintf(os.Stderr, "add $%d, %%rdi:", imm)
	}
	rdi := mustRegister("rdi")
	o.Write(0x48) // REX.W
	o.Write(0x83) // ADD r/m64, imm8 (sign-extended)
	o.Write(ModRM(modDirect, 0 /* /0 */, rdi))
	o.Write(uint8(imm))
	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}

// AddAlToMemDisp8 emits `add %al, disp8(%rdi)` — MULMAP's distribution step,
// shared by both the factor==1 pass (after LoadCellToRax) and the factor!=1
// pass (after ImulMemByImmToRax).
func (o *Out) AddAlToMemDisp8(disp int8) {
	if VerboseMode {
		fmt.Fprintf(os.Stderr, "add %%al, %d(%%rdi):", disp)
	}
	al, rdi := mustRegister("al"), mustRegister("rdi")
	o.Write(0x00) // ADD r/m8, r8
	o.Write(ModRM(modDisp8, al.Encoding, rdi))
	o.Write(uint8(disp))
	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}

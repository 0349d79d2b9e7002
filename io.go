package main

import (
	"fmt"
	"os"
)

// OUT and IN instruction forms. Both move a single byte through %al between
// the tape and the caller-owned input/output buffers, then bump the
// relevant cursor register. The byte sequences are lifted directly from the
// reference implementation's asm_put/asm_get tables.

// EmitOut emits `movzx (%rdi), %eax` / `mov %al, (%rdx)` / `add $1, %rdx`:
// read the current cell, write it to the output cursor, advance the cursor.
func (o *Out) EmitOut() {
	if VerboseMode {
		fmt.Fprintf(os.Stderr, "movzbl (%%rdi), %%eax; mov %%al, (%%rdx); add $1, %%rdx:")
	}
	rax, al, rdx, rdi := mustRegister("rax"), mustRegister("al"), mustRegister("rdx"), mustRegister("rdi")
	o.Write(0x0f) // MOVZX r32, r/m8
	o.Write(0xb6)
	o.Write(ModRM(modIndirect, rax.Encoding, rdi))
	o.Write(0x88) // MOV r/m8, r8
	o.Write(ModRM(modIndirect, al.Encoding, rdx))
	o.Write(0x48) // REX.W
	o.Write(0x83) // ADD r/m64, imm8
	o.Write(ModRM(modDirect, 0 /* /0 */, rdx))
	o.Write(0x01)
	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}

// EmitIn emits `movzx (%rsi), %eax` / `add $1, %rsi` / `mov %al, (%rdi)`:
// read the next input byte, advance the cursor, store it into the current
// cell.
func (o *Out) EmitIn() {
	if VerboseMode {
		fmt.Fprintf(os.Stderr, "movzbl (%%rsi), %%eax; add $1, %%rsi; mov %%al, (%%rdi):")
	}
	rax, al, rsi, rdi := mustRegister("rax"), mustRegister("al"), mustRegister("rsi"), mustRegister("rdi")
	o.Write(0x0f) // MOVZX r32, r/m8
	o.Write(0xb6)
	o.Write(ModRM(modIndirect, rax.Encoding, rsi))
	o.Write(0x48) // REX.W
	o.Write(0x83) // ADD r/m64, imm8
	o.Write(ModRM(modDirect, 0 /* /0 */, rsi))
	o.Write(0x01)
	o.Write(0x88) // MOV r/m8, r8
	o.Write(ModRM(modIndirect, al.Encoding, rdi))
	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}

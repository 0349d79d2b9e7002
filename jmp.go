// Completion: 100% - Instruction implementation complete
package main

import (
	"encoding/binary"
	"fmt"
	"os"
)

// Conditional jump instructions. A general JumpCondition enum would list
// every signed/unsigned/parity condition a comparison operator
// might need (JumpGreater, JumpBelow, JumpParity, ...); a tape machine only
// ever branches on "cell is zero" or "cell is not zero", so only those two
// forms survive, plus the tight self-contained scan-loop bodies WIND/REWD
// need (spec.md §3.2, §4.3).

// JumpIfZeroRel32 emits `cmpb $0, (%rdi)` followed by a near `je rel32`
// with the displacement left as zero for later patching. It returns the
// byte offset of the 4-byte rel32 field so the caller (LOOP_B in codegen.go)
// can record it on the loop stack.
func (o *Out) JumpIfZeroRel32() int {
	o.CmpCellToZero()
	if VerboseMode {
		fmt.Fprintf(os.Stderr, "je <patch>:")
	}
	o.Write(0x0f)
	o.Write(0x84)
	patchAt := o.eb.Len()
	o.Write(0)
	o.Write(0)
	o.Write(0)
	o.Write(0)
	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
	return patchAt
}

// JumpIfNotZeroRel32 emits `cmpb $0, (%rdi)` followed by a near `jne rel32`
// with the displacement left as zero for later patching. It returns the
// byte offset of the 4-byte rel32 field (LOOP_E in codegen.go patches this
// one with the negative loop-body length and the matching JumpIfZeroRel32
// site with the positive length, per spec.md §4.3's LOOP_E rule).
func (o *Out) JumpIfNotZeroRel32() int {
	o.CmpCellToZero()
	if VerboseMode {
		fmt.Fprintf(os.Stderr, "jne <patch>:")
	}
	o.Write(0x0f)
	o.Write(0x85)
	patchAt := o.eb.Len()
	o.Write(0)
	o.Write(0)
	o.Write(0)
	o.Write(0)
	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
	return patchAt
}

// PatchRel32 overwrites the 4-byte little-endian displacement at pos. Both
// LOOP_B's je and LOOP_E's jne are patched this way once the loop body's
// exact emitted length is known.
func (o *Out) PatchRel32(pos int, value int32) {
	binary.LittleEndian.PutUint32(o.eb.Bytes()[pos:pos+4], uint32(value))
}

// scanStep emits the tight self-looping scan body WIND/REWD/WIND2/REWD2
// share: skip the whole loop if the cell is already zero, otherwise bump
// the pointer by step and recheck, looping in place. step is +1 (WIND),
// -1 (REWD), +2 (WIND2) or -2 (REWD2). The 14-byte shape — cmp, je rel8,
// add/sub rdi, cmp, jne rel8 — is lifted byte-for-byte from the reference
// implementation's asm_wind/asm_rewd/asm_wind2/asm_rewd2 tables.
func (o *Out) scanStep(step int8) {
	rdi := mustRegister("rdi")
	mnemonic := "add"
	opcodeModRM := ModRM(modDirect, 0 /* /0 */, rdi) // ADD r/m64, imm8
	imm := step
	if step < 0 {
		mnemonic = "sub"
		opcodeModRM = ModRM(modDirect, 5 /* /5 */, rdi) // SUB r/m64, imm8
		imm = -step
	}

	if VerboseMode {
		fmt.Fprintf(os.Stderr, "scan %s $%d:", mnemonic, imm)
	}

	o.CmpCellToZero()     // 3 bytes
	o.Write(0x74)         // je rel8
	o.Write(0x09)         // skip the 9 bytes of: add/sub, cmp, jne
	o.Write(0x48)         // REX.W
	o.Write(0x83)         // group 1, imm8
	o.Write(opcodeModRM)
	o.Write(uint8(imm))
	o.CmpCellToZero()     // 3 bytes
	o.Write(0x75)         // jne rel8
	o.Write(0xf7)         // -9: back to the add/sub

	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}

// WindRight emits the WIND pseudo-token's body: scan right to the next zero cell.
func (o *Out) WindRight() { o.scanStep(1) }

// RewindLeft emits the REWD pseudo-token's body: scan left to the next zero cell.
func (o *Out) RewindLeft() { o.scanStep(-1) }

// WindRight2 emits the WIND2 pseudo-token's body: scan right, step 2.
func (o *Out) WindRight2() { o.scanStep(2) }

// RewindLeft2 emits the REWD2 pseudo-token's body: scan left, step 2.
func (o *Out) RewindLeft2() { o.scanStep(-2) }

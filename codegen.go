package main

import "fmt"

// loopSite records where a pending LOOP_B's forward branch needs patching,
// and the byte cursor just after it (the start of the loop body), so
// LOOP_E can compute the branch displacement as a cursor difference —
// design-notes strategy (b): simpler than re-walking the IR's size table,
// and by construction can't drift from what the emitter actually wrote.
type loopSite struct {
	patchAtJE int
	bodyStart int
}

// Generate walks an IR op list and emits the x86-64 machine code spec.md
// §4.3 describes into a fresh ExecutableBuilder, appending a trailing `ret`.
func Generate(ops []Op) (*ExecutableBuilder, error) {
	eb := &ExecutableBuilder{}
	o := NewOut(eb)
	var loopStack []loopSite

	for _, op := range ops {
		switch op.Kind {
		case OpAddMap:
			emitAddMap(o, op)

		case OpMulMap:
			emitMulMap(o, op)

		case OpSet:
			if op.Offset == 0 {
				o.MovByteImmToMem(op.Value)
			} else {
				o.MovByteImmToMemDisp8(int8(op.Offset), op.Value)
			}

		case OpOut:
			o.EmitOut()

		case OpIn:
			o.EmitIn()

		case OpWind:
			o.WindRight()

		case OpRewd:
			o.RewindLeft()

		case OpWind2:
			o.WindRight2()

		case OpRewd2:
			o.RewindLeft2()

		case OpLoopB:
			patchAt := o.JumpIfZeroRel32()
			loopStack = append(loopStack, loopSite{patchAtJE: patchAt, bodyStart: eb.Len()})

		case OpLoopE:
			if len(loopStack) == 0 {
				return nil, fmt.Errorf("%w: LOOP_E with no matching LOOP_B", ErrUnbalancedBrackets)
			}
			patchAtJNE := o.JumpIfNotZeroRel32()
			site := loopStack[len(loopStack)-1]
			loopStack = loopStack[:len(loopStack)-1]
			length := int32(eb.Len() - site.bodyStart)
			o.PatchRel32(site.patchAtJE, length)
			o.PatchRel32(patchAtJNE, -length)

		default:
			return nil, fmt.Errorf("unknown IR op kind %d", op.Kind)
		}
	}

	if len(loopStack) != 0 {
		return nil, fmt.Errorf("%w: %d unmatched LOOP_B", ErrUnbalancedBrackets, len(loopStack))
	}

	o.Ret()
	return eb, nil
}

// emitAddMap implements spec.md §4.3's ADDMAP rule: offset-0 pairs first,
// then offset!=0,!=shift pairs at their displacement, then the net shift
// itself, then any pairs whose offset coincided with the shift (now cheaper
// to reach at displacement 0).
func emitAddMap(o *Out, op Op) {
	for _, p := range op.Pairs {
		if p.Offset == 0 {
			o.AddByteImmToMem(p.Value)
		}
	}
	for _, p := range op.Pairs {
		if p.Offset != 0 && p.Offset != op.Shift {
			o.AddByteImmToMemDisp8(int8(p.Offset), p.Value)
		}
	}
	if op.Shift != 0 {
		o.AddImmToRdi(int8(op.Shift))
		for _, p := range op.Pairs {
			if p.Offset == op.Shift {
				o.AddByteImmToMem(p.Value)
			}
		}
	}
}

// emitMulMap implements spec.md §4.3's MULMAP rule: a lazy single load of
// the current cell for every factor==1 pair, then imul+add for every
// factor!=1 pair, then the terminating zero-store.
func emitMulMap(o *Out, op Op) {
	loaded := false
	for _, p := range op.Pairs {
		if p.Value == 1 {
			if !loaded {
				o.LoadCellToRax()
				loaded = true
			}
			o.AddAlToMemDisp8(int8(p.Offset))
		}
	}
	for _, p := range op.Pairs {
		if p.Value != 1 {
			o.ImulMemByImmToRax(p.Value)
			o.AddAlToMemDisp8(int8(p.Offset))
		}
	}
	o.MovByteImmToMem(0)
}

package main

// opSize reports the number of bytes codegen.go emits for a single IR op,
// independent of the code generator itself — the standalone check for
// spec.md §4.3's size table and invariant §8.4 (sizing_test.go asserts this
// against the bytes the emitter actually wrote for every op kind).
func opSize(op Op) int {
	switch op.Kind {
	case OpAddMap:
		size := 0
		for _, p := range op.Pairs {
			switch {
			case p.Offset == 0:
				size += 3
			case p.Offset != op.Shift:
				size += 4
			}
		}
		if op.Shift != 0 {
			size += 4
			for _, p := range op.Pairs {
				if p.Offset == op.Shift {
					size += 3
				}
			}
		}
		return size

	case OpMulMap:
		size := 3 // terminating zero store
		hasFactorOne := false
		for _, p := range op.Pairs {
			if p.Value == 1 {
				hasFactorOne = true
				size += 3
			} else {
				size += 7
			}
		}
		if hasFactorOne {
			size += 3 // initial load
		}
		return size

	case OpSet:
		if op.Offset == 0 {
			return 3
		}
		return 4

	case OpOut, OpIn:
		return 9

	case OpWind, OpRewd, OpWind2, OpRewd2:
		return 14

	case OpLoopB, OpLoopE:
		return 9

	default:
		return 0
	}
}

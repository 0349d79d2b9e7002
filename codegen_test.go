package main

import (
	"encoding/binary"
	"testing"
)

func TestGenerateLoopBranchDisplacements(t *testing.T) {
	ops := []Op{{Kind: OpLoopB}, {Kind: OpOut}, {Kind: OpLoopE}}
	eb, err := Generate(ops)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	code := eb.Bytes()

	bodyLen := int32(opSize(Op{Kind: OpOut}) + opSize(Op{Kind: OpLoopE}))

	je := int32(binary.LittleEndian.Uint32(code[5:9]))
	if je != bodyLen {
		t.Errorf("je displacement = %d, want %d", je, bodyLen)
	}

	jneAt := 9 + opSize(Op{Kind: OpOut}) + 5
	jne := int32(binary.LittleEndian.Uint32(code[jneAt : jneAt+4]))
	if jne != -bodyLen {
		t.Errorf("jne displacement = %d, want %d", jne, -bodyLen)
	}

	// trailing ret
	if code[len(code)-1] != 0xc3 {
		t.Errorf("expected trailing ret, got final byte 0x%02x", code[len(code)-1])
	}
}

func TestGenerateRejectsUnbalancedLoops(t *testing.T) {
	if _, err := Generate([]Op{{Kind: OpLoopE}}); err == nil {
		t.Fatal("expected an error for LOOP_E with no matching LOOP_B")
	}
	if _, err := Generate([]Op{{Kind: OpLoopB}}); err == nil {
		t.Fatal("expected an error for an unclosed LOOP_B")
	}
}

func TestGenerateNestedLoops(t *testing.T) {
	ops := []Op{
		{Kind: OpLoopB},
		{Kind: OpLoopB},
		{Kind: OpOut},
		{Kind: OpLoopE},
		{Kind: OpLoopE},
	}
	if _, err := Generate(ops); err != nil {
		t.Fatalf("Generate nested loops: %v", err)
	}
}

//go:build !windows
// +build !windows

package main

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// ExecutableMemory is the "external allocator abstraction" spec.md §6
// describes: allocate page-aligned RW memory, let the code generator fill
// it, then flip it RX before handing a callable pointer to the caller. It
// replaces a HotReloadManager/CodePage pair, which additionally tracked
// a name->page map and a background goroutine
// that freed superseded pages after a grace period for live code reloading —
// this JIT compiles once and runs once, so that bookkeeping doesn't apply,
// but the underlying mmap/mprotect/munmap calls are the same concern,
// reused almost verbatim.
type ExecutableMemory struct {
	region []byte
	sealed bool
}

// AllocateExecutableMemory reserves size bytes of page-aligned read/write
// memory via mmap, using the typed golang.org/x/sys/unix binding rather than
// a raw syscall.Syscall6(SYS_MMAP, ...) call.
func AllocateExecutableMemory(size int) (*ExecutableMemory, error) {
	if size <= 0 {
		size = 1
	}
	region, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %v", ErrExecMemory, size, err)
	}
	return &ExecutableMemory{region: region}, nil
}

// Write copies code into the region, behind a 9-byte prologue that moves
// the three arguments of a Go func-value call (passed in rax, rbx, rcx)
// into rdi, rsi and rdx, where the emitted code reads them. It must be
// called before Seal.
func (m *ExecutableMemory) Write(code []byte) error {
	if m.sealed {
		return fmt.Errorf("%w: memory already sealed read-execute", ErrExecMemory)
	}
	prologue := []byte{
		0x48, 0x89, 0xc7, // mov %rax, %rdi
		0x48, 0x89, 0xde, // mov %rbx, %rsi
		0x48, 0x89, 0xca, // mov %rcx, %rdx
	}
	if len(prologue)+len(code) > len(m.region) {
		return fmt.Errorf("%w: %d bytes of code exceeds %d-byte region", ErrExecMemory, len(prologue)+len(code), len(m.region))
	}
	copy(m.region, prologue)
	copy(m.region[len(prologue):], code)
	return nil
}

// Seal flips the region from read/write to read/execute. Once sealed the
// code generator must not write to it again (spec.md §5: "the code
// generator must not hold any writable alias to the region while it is
// executable").
func (m *ExecutableMemory) Seal() error {
	if err := unix.Mprotect(m.region, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		return fmt.Errorf("%w: mprotect read-execute: %v", ErrExecMemory, err)
	}
	m.sealed = true
	return nil
}

// Release unmaps the region. Optional — spec.md §5 describes it as the last
// step of the "allocate → emit → seal → hand pointer to caller → optionally
// unmap after use" discipline; callers that invoke the returned function
// once and exit need not call it.
func (m *ExecutableMemory) Release() error {
	return unix.Munmap(m.region)
}

// JittedFunc is the emitted function's signature: three raw byte pointers,
// no return value. Go passes them in rax, rbx and rcx; the prologue Write
// places before the code moves them into rdi, rsi and rdx, the System V
// AMD64 argument registers the emitted code reads.
type JittedFunc func(tape, input, output *byte)

// funcval mirrors the Go runtime's internal representation of a func value:
// a pointer to a struct whose first word is the entry program counter. A Go
// func variable is itself just a pointer to one of these. Constructing one
// by hand and pointing a JittedFunc at it is the standard trick for calling
// raw JIT-generated machine code from Go without cgo — the same kind of
// unsafe-pointer bit-twiddling used elsewhere to patch a function-pointer
// table in place, applied here
// to build the pointer instead of patch one.
type funcval struct {
	entry uintptr
}

// AsFunc returns a callable Go function value whose entry point is the
// start of the sealed executable region. The region (and the funcval this
// allocates) must outlive every call through the returned function, so
// AsFunc should only be called after Seal and the ExecutableMemory kept
// alive for as long as the function may be invoked.
func (m *ExecutableMemory) AsFunc() JittedFunc {
	if len(m.region) == 0 {
		return nil
	}
	fv := &funcval{entry: uintptr(unsafe.Pointer(&m.region[0]))}
	var f JittedFunc
	*(*unsafe.Pointer)(unsafe.Pointer(&f)) = unsafe.Pointer(fv)
	return f
}

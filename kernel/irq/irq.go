// Package irq implements the interrupt dispatch shim: the 256-entry vector
// table, the per-vector stubs that normalize every CPU exception and
// interrupt into a single stack layout, and the Go-side registration API a
// higher-level kernel uses to install handlers for individual vectors.
package irq

import (
	"unsafe"

	"nucleus/kernel/cpu"
)

// Frame is the fixed layout the shared trampoline presents to a registered
// handler, in increasing-address order starting at the stack pointer the
// trampoline passes along. Every field mirrors a push performed by the CPU,
// a per-vector stub, or the trampoline's own save sequence; the restore
// sequence in irq_amd64.s is the exact mirror image of this layout.
type Frame struct {
	DS, ES, FS, GS uint64

	DR0, DR1, DR2, DR3, DR6, DR7 uint64

	RAX, RBX, RCX, RDX, RSI, RDI, RBP uint64
	R8, R9, R10, R11, R12, R13, R14, R15 uint64

	Vector    uint64
	ErrorCode uint64

	RIP, CS, RFlags, RSP, SS uint64
}

// hasErrorCodeVectors is the set of vectors for which the CPU itself pushes
// an error code before control reaches a stub.
var hasErrorCodeVectors = [256]bool{
	8:  true,
	10: true,
	11: true,
	12: true,
	13: true,
	14: true,
	17: true,
}

// HasErrorCode reports whether the CPU supplies a real error code for the
// given vector. For every other vector, the stub synthesizes a zero error
// code so the frame layout never varies by vector.
func HasErrorCode(vector int) bool {
	if vector < 0 || vector >= len(hasErrorCodeVectors) {
		return false
	}
	return hasErrorCodeVectors[vector]
}

// ExceptionHandler handles a CPU exception that does not carry a hardware
// error code.
type ExceptionHandler func(frame *Frame)

// ExceptionHandlerWithCode handles a CPU exception that does carry a
// hardware error code (see HasErrorCode).
type ExceptionHandlerWithCode func(frame *Frame, errorCode uint64)

var (
	exceptionHandlers         [256]ExceptionHandler
	exceptionHandlersWithCode [256]ExceptionHandlerWithCode
)

// HandleException registers h as the handler for vector. Panics if vector
// is one of the error-code vectors; use HandleExceptionWithCode instead.
func HandleException(vector int, h ExceptionHandler) {
	if HasErrorCode(vector) {
		panic("irq: vector supplies an error code; use HandleExceptionWithCode")
	}
	exceptionHandlers[vector] = h
}

// HandleExceptionWithCode registers h as the handler for vector. Panics if
// vector does not supply a hardware error code; use HandleException instead.
func HandleExceptionWithCode(vector int, h ExceptionHandlerWithCode) {
	if !HasErrorCode(vector) {
		panic("irq: vector does not supply an error code; use HandleException")
	}
	exceptionHandlersWithCode[vector] = h
}

// HandleInterrupt registers h as the handler for a user-defined interrupt
// vector (32..255). It is a thin wrapper over HandleException since none of
// the reserved vectors in that range carry an error code.
func HandleInterrupt(vector int, h ExceptionHandler) {
	if vector < 32 {
		panic("irq: vector is reserved for CPU exceptions")
	}
	HandleException(vector, h)
}

// idtEntry mirrors a single 64-bit-mode IDT interrupt-gate descriptor.
type idtEntry struct {
	offsetLow  uint16
	selector   uint16
	ist        uint8
	typeAttr   uint8
	offsetMid  uint16
	offsetHigh uint32
	reserved   uint32
}

const (
	idtGatePresent      = 0x80
	idtGateInterrupt64  = 0x0E
	idtGateRing0        = 0x00
	codeSegmentSelector = 0x08
)

var idt [256]idtEntry

// idtr holds the pseudo-descriptor passed to cpu.LoadIDT: a 2-byte limit
// followed by an 8-byte linear base, packed with no padding. The leading
// padding puts limit directly before the 8-byte-aligned base, so the 10
// bytes starting at &limit form the packed descriptor.
type idtr struct {
	_     [3]uint16
	limit uint16
	base  uint64
}

// Init populates a 256-entry IDT from interruptVectorTable and loads it.
// Every gate is a ring-0 interrupt gate on the kernel code segment. A
// higher-level kernel that wants IST stacks for fatal vectors (#DF, #MC) or
// a different privilege policy should build and load its own IDT instead of
// calling Init.
func Init() {
	for vector := range idt {
		setGate(vector, interruptVectorTable[vector])
	}

	descriptor := idtr{
		limit: uint16(unsafe.Sizeof(idt)) - 1,
		base:  uint64(uintptr(unsafe.Pointer(&idt[0]))),
	}

	cpu.LoadIDT(uintptr(unsafe.Pointer(&descriptor.limit)))
}

func setGate(vector int, handlerAddr uintptr) {
	entry := &idt[vector]
	entry.offsetLow = uint16(handlerAddr)
	entry.selector = codeSegmentSelector
	entry.ist = 0
	entry.typeAttr = idtGatePresent | idtGateRing0 | idtGateInterrupt64
	entry.offsetMid = uint16(handlerAddr >> 16)
	entry.offsetHigh = uint32(handlerAddr >> 32)
	entry.reserved = 0
}

// dispatch is called by the shared trampoline in irq_amd64.s with the
// address of the current interrupt frame. It must not allocate or grow its
// stack: it may run on whatever stack the interrupted context was using.
//
//go:nosplit
func dispatch(framePtr uintptr) {
	frame := (*Frame)(unsafe.Pointer(framePtr))
	vector := int(frame.Vector)

	if HasErrorCode(vector) {
		if h := exceptionHandlersWithCode[vector]; h != nil {
			h(frame, frame.ErrorCode)
		}
		return
	}

	if h := exceptionHandlers[vector]; h != nil {
		h(frame)
	}
}

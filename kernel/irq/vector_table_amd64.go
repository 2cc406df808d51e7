package irq

//go:generate go run ./internal/gen

// vectorStubCount must match the number of stubs irq_amd64.s emits.
const vectorStubCount = 256

// vectorStubStride is the fixed byte distance between consecutive stubs in
// the contiguous block irq_amd64.s emits at ·vectorStubs. Every stub's
// actual instruction sequence is shorter than this and is padded to it with
// PCALIGN so the stride stays uniform without a per-vector symbol table.
const vectorStubStride = 16

// interruptVectorTable holds the address of each vector's stub, indexed by
// vector number. It is exported to the higher-level kernel through
// InterruptVectorTable so it can build its own IDT instead of calling Init.
var interruptVectorTable [vectorStubCount]uintptr

// InterruptVectorTable returns the address of each vector's stub, indexed by
// vector number.
func InterruptVectorTable() [vectorStubCount]uintptr {
	return interruptVectorTable
}

// vectorStubsAddr returns the address of the first stub in the contiguous
// block emitted by irq_amd64.s.
func vectorStubsAddr() uintptr

func init() {
	base := vectorStubsAddr()
	for i := range interruptVectorTable {
		interruptVectorTable[i] = base + uintptr(i)*vectorStubStride
	}
}

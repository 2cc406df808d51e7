// Package cpu wraps the handful of privileged x86_64 instructions the rest
// of the kernel needs once it is running in long mode: interrupt masking,
// halting, loading the IDT and reading the page-fault linear address.
package cpu

// EnableInterrupts enables interrupt handling.
func EnableInterrupts()

// DisableInterrupts disables interrupt handling.
func DisableInterrupts()

// Halt stops instruction execution until the next interrupt.
func Halt()

// LoadIDT loads the IDTR register from the 10-byte pseudo-descriptor
// (2-byte limit, 8-byte linear base) at the given address.
func LoadIDT(idtrAddr uintptr)

// ReadCR2 returns the linear address that caused the most recent page
// fault. CR2 is not part of the interrupt frame the irq package hands to
// handlers, so a #PF handler must call this before executing any
// instruction that could itself fault.
func ReadCR2() uintptr

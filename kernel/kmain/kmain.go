// Package kmain implements the higher-level kernel entry point the boot
// trampoline tail-calls into once it has reached long mode: it is the
// "kernel_main" side of the boot trampoline/interrupt shim contract.
package kmain

import (
	"nucleus/kernel"
	"nucleus/kernel/cpu"
	"nucleus/kernel/hal"
	"nucleus/kernel/hal/multiboot"
	"nucleus/kernel/irq"
	"nucleus/kernel/kfmt/early"
)

// Run is the Go-side continuation of the boot trampoline. multibootInfoVAddr
// is the high-half virtual alias of the bootloader-info structure, exactly
// as converted by entry_amd64.S's 64-bit continuation.
//
// Run never returns: once there is nothing left to do it halts in a loop,
// waiting for an interrupt.
//
//go:noinline
func Run(multibootInfoVAddr uintptr) {
	if err := multiboot.ValidateInfoPtr(multibootInfoVAddr); err != nil {
		kernel.Panic(&kernel.Error{Module: "kmain", Message: err.Error()})
	}
	multiboot.SetInfoPtr(multibootInfoVAddr)

	hal.InitTerminal()
	hal.ActiveTerminal.Clear()

	early.Printf("Starting kernel\n")

	irq.Init()
	installDemoHandlers()

	cpu.EnableInterrupts()

	for {
		cpu.Halt()
	}
}

// installDemoHandlers registers the two exception handlers that exercise
// the interrupt shim end to end: a divide-by-zero handler (no error code)
// and a page-fault handler (error code present, plus the CR2 read the shim
// deliberately leaves to the higher-level kernel).
func installDemoHandlers() {
	irq.HandleException(vectorDivideByZero, func(frame *irq.Frame) {
		early.Printf("divide-by-zero at rip=%x\n", frame.RIP)
		dumpFrame(frame)
		kernel.Panic(&kernel.Error{Module: "kmain", Message: "divide-by-zero"})
	})

	irq.HandleExceptionWithCode(vectorPageFault, func(frame *irq.Frame, errorCode uint64) {
		faultAddr := cpu.ReadCR2()
		early.Printf("page fault at rip=%x addr=%x code=%x\n", frame.RIP, faultAddr, errorCode)
		dumpFrame(frame)
		kernel.Panic(&kernel.Error{Module: "kmain", Message: "page fault"})
	})
}

const (
	vectorDivideByZero = 0
	vectorPageFault    = 14
)

func dumpFrame(frame *irq.Frame) {
	early.Printf("  rax=%x rbx=%x rcx=%x rdx=%x\n", frame.RAX, frame.RBX, frame.RCX, frame.RDX)
	early.Printf("  rsi=%x rdi=%x rbp=%x rsp=%x\n", frame.RSI, frame.RDI, frame.RBP, frame.RSP)
	early.Printf("  cs=%x ss=%x rflags=%x\n", frame.CS, frame.SS, frame.RFlags)
}

package main

import "nucleus/kernel/kmain"

// multibootInfoVAddr is written directly by the boot trampoline
// (kernel/boot/entry_amd64.S) just before it jumps here; it holds the
// high-half virtual alias of the bootloader-info structure. Referencing it
// from main also keeps the Go compiler from treating this package as unused
// and stripping the code the trampoline depends on.
var multibootInfoVAddr uintptr

// main is the only Go symbol the boot trampoline calls by name (it jumps to
// main.main directly, never through a standard os-level entrypoint, since
// there is no runtime.rt0_go on this platform).
//
// main never returns: kmain.Run installs the IDT, registers the demo
// exception handlers and halts in a loop once there is nothing left to do.
func main() {
	kmain.Run(multibootInfoVAddr)
}

package hal

import (
	"nucleus/kernel/driver/tty"
	"nucleus/kernel/driver/video/console"
	"nucleus/kernel/hal/multiboot"
)

var (
	egaConsole = &console.Ega{}

	// ActiveTerminal points to the currently active terminal.
	ActiveTerminal = &tty.Vt{}
)

// defaultConsoleWidth, defaultConsoleHeight and defaultConsolePhysAddr
// describe the standard 80x25 VGA text mode, used when the bootloader did
// not supply framebuffer info.
const (
	defaultConsoleWidth    = 80
	defaultConsoleHeight   = 25
	defaultConsolePhysAddr = 0xB8000
)

// InitTerminal provides a basic terminal to allow the kernel to emit some output
// till everything is properly setup. If the bootloader did not supply
// framebuffer info, it falls back to the standard VGA text-mode geometry.
func InitTerminal() {
	width, height, physAddr := uint16(defaultConsoleWidth), uint16(defaultConsoleHeight), uintptr(defaultConsolePhysAddr)

	if fbInfo := multiboot.GetFramebufferInfo(); fbInfo != nil {
		width, height, physAddr = uint16(fbInfo.Width), uint16(fbInfo.Height), uintptr(fbInfo.PhysAddr)
	}

	egaConsole.Init(width, height, physAddr)
	ActiveTerminal.AttachTo(egaConsole)
}

// Package boot implements the earliest machine-level code that runs after a
// Multiboot-compliant bootloader hands off control: validating the handoff,
// building a throwaway identity/high-half page table hierarchy, entering long
// mode and tail-calling into the high-half Go kernel.
//
// The bulk of this package's logic lives in entry_amd64.S and
// multiboot_header_amd64.S. Those files run before paging is enabled and
// before the Go runtime exists, so they are plain GNU-assembler sources
// assembled and linked by the Makefile rather than by "go build" (Go's own
// assembler always targets the operating mode of GOARCH -- amd64 long mode --
// and cannot emit the 16/32-bit-mode-valid encodings this code needs while
// the CPU is still in the protected mode the bootloader left it in). The
// constants here mirror the literal values hard-coded into those files so
// that the construction of the boot page tables can be unit tested from Go.
package boot

const (
	// HighHalfOffset is the virtual-to-physical offset used for the
	// high-half kernel mapping and for converting the bootloader-info
	// physical pointer to its high-half alias in the 64-bit portion of
	// the trampoline. The 32-bit portion uses symbols that linker.ld
	// links at their physical addresses, so it never subtracts it.
	HighHalfOffset = uintptr(0xFFFFFFFF80000000)

	// PageSize is the size of a single page-table frame.
	PageSize = uintptr(4096)

	// HugePageSize is the size mapped by a single PDT entry when the huge
	// page flag is set.
	HugePageSize = uintptr(2 * 1024 * 1024)

	// IdentityMapBytes is the span of physical memory identity-mapped
	// (and mirrored at the high-half base) by the boot page tables.
	IdentityMapBytes = uintptr(128 * 1024 * 1024)

	// PDTEntries is the number of huge-page entries needed to cover
	// IdentityMapBytes.
	PDTEntries = int(IdentityMapBytes / HugePageSize)

	// StackSizePages is the number of 4 KiB pages reserved for the boot
	// stack, not counting the preceding guard page.
	StackSizePages = 128

	// CodeSegmentSelector is the GDT selector for the 64-bit code
	// segment installed by the trampoline.
	CodeSegmentSelector = uint16(0x08)

	// DataSegmentSelector is the GDT selector for the flat data segment
	// installed by the trampoline.
	DataSegmentSelector = uint16(0x10)

	// pageFlagPresent marks a page-table entry as present in memory.
	pageFlagPresent = uint64(1 << 0)

	// pageFlagWritable marks a page-table entry as writable.
	pageFlagWritable = uint64(1 << 1)

	// pageFlagHuge marks a PDT entry as mapping a 2 MiB page directly
	// instead of pointing to a page table.
	pageFlagHuge = uint64(1 << 7)
)

// The PML4 and PDPT index constants document the fixed slots the trampoline wires up;
// they are not used for address computation (the trampoline writes to fixed
// offsets) but pin down the invariants asserted by layout_amd64_test.go.
const (
	identityPML4Index = 0
	highHalfPML4Index = 511
	identityPDPTIndex = 0
	highHalfPDPTIndex = 510
)

// PML4Entry returns the 64-bit value the trampoline stores at PML4[0] and
// PML4[511]: a present, writable pointer to the physical address of a PDPT
// frame.
func PML4Entry(pdptPhysAddr uintptr) uint64 {
	return pageEntry(pdptPhysAddr)
}

// PDPTEntry returns the 64-bit value the trampoline stores at PDPT-A[0] and
// PDPT-B[510]: a present, writable pointer to the physical address of the
// shared PDT frame.
func PDPTEntry(pdtPhysAddr uintptr) uint64 {
	return pageEntry(pdtPhysAddr)
}

// PDTEntry returns the 64-bit value the trampoline stores at PDT[i]: a
// present, writable, huge-page mapping of the i-th 2 MiB frame of physical
// memory starting at address 0.
func PDTEntry(i int) uint64 {
	return uint64(i)*uint64(HugePageSize) | pageFlagPresent | pageFlagWritable | pageFlagHuge
}

// pageEntry applies the present+writable flags used by every non-leaf
// level of the boot page-table hierarchy.
func pageEntry(physAddr uintptr) uint64 {
	return uint64(physAddr) | pageFlagPresent | pageFlagWritable
}

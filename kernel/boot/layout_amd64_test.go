package boot

import "testing"

func TestPDTEntryCoversIdentityRange(t *testing.T) {
	if PDTEntries*int(HugePageSize) != int(IdentityMapBytes) {
		t.Fatalf("PDTEntries*HugePageSize = %d, want %d", PDTEntries*int(HugePageSize), IdentityMapBytes)
	}

	for i := 0; i < PDTEntries; i++ {
		entry := PDTEntry(i)

		if entry&pageFlagPresent == 0 {
			t.Fatalf("PDTEntry(%d): present bit not set", i)
		}
		if entry&pageFlagWritable == 0 {
			t.Fatalf("PDTEntry(%d): writable bit not set", i)
		}
		if entry&pageFlagHuge == 0 {
			t.Fatalf("PDTEntry(%d): huge-page bit not set", i)
		}

		wantAddr := uint64(i) * uint64(HugePageSize)
		if gotAddr := entry &^ 0xFFF &^ pageFlagHuge; gotAddr != wantAddr {
			t.Fatalf("PDTEntry(%d): address = %#x, want %#x", i, gotAddr, wantAddr)
		}
	}
}

func TestPDTEntriesAreDistinct(t *testing.T) {
	seen := make(map[uint64]int, PDTEntries)
	for i := 0; i < PDTEntries; i++ {
		entry := PDTEntry(i)
		if prev, ok := seen[entry]; ok {
			t.Fatalf("PDTEntry(%d) collides with PDTEntry(%d): both %#x", i, prev, entry)
		}
		seen[entry] = i
	}
}

func TestPML4EntrySetsPresentAndWritable(t *testing.T) {
	const pdptPhys = uintptr(0x2000)

	entry := PML4Entry(pdptPhys)
	if entry&pageFlagPresent == 0 {
		t.Fatal("PML4Entry: present bit not set")
	}
	if entry&pageFlagWritable == 0 {
		t.Fatal("PML4Entry: writable bit not set")
	}
	if entry&pageFlagHuge != 0 {
		t.Fatal("PML4Entry: huge-page bit must not be set at the page-directory-pointer level")
	}
	if got := entry &^ 0xFFF; got != uint64(pdptPhys) {
		t.Fatalf("PML4Entry address = %#x, want %#x", got, pdptPhys)
	}
}

func TestPDPTEntrySetsPresentAndWritable(t *testing.T) {
	const pdtPhys = uintptr(0x3000)

	entry := PDPTEntry(pdtPhys)
	if entry&pageFlagPresent == 0 {
		t.Fatal("PDPTEntry: present bit not set")
	}
	if entry&pageFlagWritable == 0 {
		t.Fatal("PDPTEntry: writable bit not set")
	}
	if got := entry &^ 0xFFF; got != uint64(pdtPhys) {
		t.Fatalf("PDPTEntry address = %#x, want %#x", got, pdtPhys)
	}
}

func TestHighHalfOffsetIsCanonicalSignExtended(t *testing.T) {
	// The high-half base must lie in the top 2 GiB of the address space
	// (canonical form, sign-extended from bit 47) so that a single PML4
	// slot (511) covers it.
	if HighHalfOffset>>39 != 0x1FFFFFF {
		t.Fatalf("HighHalfOffset %#x is not in PML4 slot 511", HighHalfOffset)
	}
}

func TestPML4SlotAssignment(t *testing.T) {
	if identityPML4Index != 0 {
		t.Fatalf("identity mapping must live in PML4[0], got PML4[%d]", identityPML4Index)
	}
	if highHalfPML4Index != 511 {
		t.Fatalf("high-half mapping must live in PML4[511], got PML4[%d]", highHalfPML4Index)
	}
	if identityPML4Index == highHalfPML4Index {
		t.Fatal("identity and high-half mappings must not share a PML4 slot")
	}
}

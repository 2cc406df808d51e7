// Command gen emits the vectorStubs block of ../../irq_amd64.s: one PUSHQ
// sequence per interrupt vector followed by a jump to the shared trampoline,
// padded to a fixed 16-byte stride. It exists so the 256-fold repetition
// doesn't have to be maintained by hand; the checked-in irq_amd64.s is its
// committed output.
package main

import (
	"fmt"
	"os"
)

// errorCodeVectors mirrors irq.hasErrorCodeVectors: the CPU exceptions for
// which the processor itself pushes an error code.
var errorCodeVectors = map[int]bool{
	8:  true,
	10: true,
	11: true,
	12: true,
	13: true,
	14: true,
	17: true,
}

func main() {
	w := os.Stdout

	fmt.Fprintln(w, "TEXT ·vectorStubs(SB), NOSPLIT, $0")
	for n := 0; n < 256; n++ {
		fmt.Fprintf(w, "\t// vector %d\n", n)
		if errorCodeVectors[n] {
			fmt.Fprintf(w, "\tPUSHQ $0x%x\n", n)
		} else {
			fmt.Fprintln(w, "\tPUSHQ $0")
			fmt.Fprintf(w, "\tPUSHQ $0x%x\n", n)
		}
		fmt.Fprintln(w, "\tJMP ·trampoline(SB)")
		fmt.Fprintln(w, "\tPCALIGN $16")
	}
}

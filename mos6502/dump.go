package mos6502

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

// snapshot is the plain-data view of CPU state that Dump renders; kept
// separate from CPU itself so spew doesn't walk unrelated fields
// (illegalPolicy, trace) that a host has no use inspecting.
type snapshot struct {
	A, X, Y uint8
	SP      uint8
	PC      uint16
	P       uint8
	Flags   map[string]bool
}

// Dump writes a human-readable register/flag snapshot to w, in the same
// go-spew-backed style the example corpus uses for its interactive
// debugger.
func (c *CPU) Dump(w io.Writer) {
	s := snapshot{
		A: c.A, X: c.X, Y: c.Y, SP: c.SP, PC: c.PC, P: c.P,
		Flags: map[string]bool{
			"N": c.GetFlag(FlagN),
			"V": c.GetFlag(FlagV),
			"B": c.GetFlag(FlagB),
			"D": c.GetFlag(FlagD),
			"I": c.GetFlag(FlagI),
			"Z": c.GetFlag(FlagZ),
			"C": c.GetFlag(FlagC),
		},
	}
	spew.Fdump(w, s)
}

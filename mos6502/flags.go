package mos6502

// Flag identifies a single bit of the P status register. Layout, high to
// low: N V 1 B D I Z C.
type Flag uint8

const (
	FlagC Flag = 1 << 0 // carry
	FlagZ Flag = 1 << 1 // zero
	FlagI Flag = 1 << 2 // interrupt disable
	FlagD Flag = 1 << 3 // decimal (unused on the NES 6502; carried for flag-byte fidelity only)
	FlagB Flag = 1 << 4 // break, meaningful only in the byte pushed to the stack
	Flag5 Flag = 1 << 5 // always reads as 1
	FlagV Flag = 1 << 6 // overflow
	FlagN Flag = 1 << 7 // negative
)

// GetFlag reports whether f is set in P.
func (c *CPU) GetFlag(f Flag) bool {
	return c.P&uint8(f) != 0
}

// SetFlag sets or clears f in P.
func (c *CPU) SetFlag(f Flag, v bool) {
	if v {
		c.P |= uint8(f)
	} else {
		c.P &^= uint8(f)
	}
}

// setP assigns P wholesale (used by PLP/RTI), enforcing that bit 5 always
// reads as 1 regardless of what was popped.
func (c *CPU) setP(v uint8) {
	c.P = v | uint8(Flag5)
}

func (c *CPU) setZN(v uint8) {
	c.SetFlag(FlagZ, v == 0)
	c.SetFlag(FlagN, v&0x80 != 0)
}

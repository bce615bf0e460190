package mos6502

// opcodeEntry is one row of the 256-entry dispatch table: the decoded
// addressing mode, base cycle count, whether a page-cross during address
// resolution adds one more cycle, and the executor. A zero-value entry
// (exec == nil) marks an opcode byte with no official instruction.
type opcodeEntry struct {
	mnemonic       string
	mode           Mode
	cycles         uint8
	pageCrossCheck bool
	exec           execFunc
}

// opcodeTable is keyed by opcode byte. Only the 151 official 6502
// opcodes are populated; every other byte halts (or is treated as NOP)
// per the configured IllegalOpcodePolicy. Cycle counts and page-cross
// eligibility match the well-known NMOS 6502 reference timing.
var opcodeTable = [256]opcodeEntry{
	// LDA
	0xA9: {"LDA", ModeImmediate, 2, false, execLDA},
	0xA5: {"LDA", ModeZeroPage, 3, false, execLDA},
	0xB5: {"LDA", ModeZeroPageX, 4, false, execLDA},
	0xAD: {"LDA", ModeAbsolute, 4, false, execLDA},
	0xBD: {"LDA", ModeAbsoluteX, 4, true, execLDA},
	0xB9: {"LDA", ModeAbsoluteY, 4, true, execLDA},
	0xA1: {"LDA", ModeIndexedIndirect, 6, false, execLDA},
	0xB1: {"LDA", ModeIndirectIndexed, 5, true, execLDA},

	// LDX
	0xA2: {"LDX", ModeImmediate, 2, false, execLDX},
	0xA6: {"LDX", ModeZeroPage, 3, false, execLDX},
	0xB6: {"LDX", ModeZeroPageY, 4, false, execLDX},
	0xAE: {"LDX", ModeAbsolute, 4, false, execLDX},
	0xBE: {"LDX", ModeAbsoluteY, 4, true, execLDX},

	// LDY
	0xA0: {"LDY", ModeImmediate, 2, false, execLDY},
	0xA4: {"LDY", ModeZeroPage, 3, false, execLDY},
	0xB4: {"LDY", ModeZeroPageX, 4, false, execLDY},
	0xAC: {"LDY", ModeAbsolute, 4, false, execLDY},
	0xBC: {"LDY", ModeAbsoluteX, 4, true, execLDY},

	// STA
	0x85: {"STA", ModeZeroPage, 3, false, execSTA},
	0x95: {"STA", ModeZeroPageX, 4, false, execSTA},
	0x8D: {"STA", ModeAbsolute, 4, false, execSTA},
	0x9D: {"STA", ModeAbsoluteX, 5, false, execSTA},
	0x99: {"STA", ModeAbsoluteY, 5, false, execSTA},
	0x81: {"STA", ModeIndexedIndirect, 6, false, execSTA},
	0x91: {"STA", ModeIndirectIndexed, 6, false, execSTA},

	// STX
	0x86: {"STX", ModeZeroPage, 3, false, execSTX},
	0x96: {"STX", ModeZeroPageY, 4, false, execSTX},
	0x8E: {"STX", ModeAbsolute, 4, false, execSTX},

	// STY
	0x84: {"STY", ModeZeroPage, 3, false, execSTY},
	0x94: {"STY", ModeZeroPageX, 4, false, execSTY},
	0x8C: {"STY", ModeAbsolute, 4, false, execSTY},

	// Transfers
	0xAA: {"TAX", ModeImplied, 2, false, execTAX},
	0xA8: {"TAY", ModeImplied, 2, false, execTAY},
	0x8A: {"TXA", ModeImplied, 2, false, execTXA},
	0x98: {"TYA", ModeImplied, 2, false, execTYA},
	0xBA: {"TSX", ModeImplied, 2, false, execTSX},
	0x9A: {"TXS", ModeImplied, 2, false, execTXS},

	// Stack
	0x48: {"PHA", ModeImplied, 3, false, execPHA},
	0x08: {"PHP", ModeImplied, 3, false, execPHP},
	0x68: {"PLA", ModeImplied, 4, false, execPLA},
	0x28: {"PLP", ModeImplied, 4, false, execPLP},

	// ADC
	0x69: {"ADC", ModeImmediate, 2, false, execADC},
	0x65: {"ADC", ModeZeroPage, 3, false, execADC},
	0x75: {"ADC", ModeZeroPageX, 4, false, execADC},
	0x6D: {"ADC", ModeAbsolute, 4, false, execADC},
	0x7D: {"ADC", ModeAbsoluteX, 4, true, execADC},
	0x79: {"ADC", ModeAbsoluteY, 4, true, execADC},
	0x61: {"ADC", ModeIndexedIndirect, 6, false, execADC},
	0x71: {"ADC", ModeIndirectIndexed, 5, true, execADC},

	// SBC
	0xE9: {"SBC", ModeImmediate, 2, false, execSBC},
	0xE5: {"SBC", ModeZeroPage, 3, false, execSBC},
	0xF5: {"SBC", ModeZeroPageX, 4, false, execSBC},
	0xED: {"SBC", ModeAbsolute, 4, false, execSBC},
	0xFD: {"SBC", ModeAbsoluteX, 4, true, execSBC},
	0xF9: {"SBC", ModeAbsoluteY, 4, true, execSBC},
	0xE1: {"SBC", ModeIndexedIndirect, 6, false, execSBC},
	0xF1: {"SBC", ModeIndirectIndexed, 5, true, execSBC},

	// AND
	0x29: {"AND", ModeImmediate, 2, false, execAND},
	0x25: {"AND", ModeZeroPage, 3, false, execAND},
	0x35: {"AND", ModeZeroPageX, 4, false, execAND},
	0x2D: {"AND", ModeAbsolute, 4, false, execAND},
	0x3D: {"AND", ModeAbsoluteX, 4, true, execAND},
	0x39: {"AND", ModeAbsoluteY, 4, true, execAND},
	0x21: {"AND", ModeIndexedIndirect, 6, false, execAND},
	0x31: {"AND", ModeIndirectIndexed, 5, true, execAND},

	// ORA
	0x09: {"ORA", ModeImmediate, 2, false, execORA},
	0x05: {"ORA", ModeZeroPage, 3, false, execORA},
	0x15: {"ORA", ModeZeroPageX, 4, false, execORA},
	0x0D: {"ORA", ModeAbsolute, 4, false, execORA},
	0x1D: {"ORA", ModeAbsoluteX, 4, true, execORA},
	0x19: {"ORA", ModeAbsoluteY, 4, true, execORA},
	0x01: {"ORA", ModeIndexedIndirect, 6, false, execORA},
	0x11: {"ORA", ModeIndirectIndexed, 5, true, execORA},

	// EOR
	0x49: {"EOR", ModeImmediate, 2, false, execEOR},
	0x45: {"EOR", ModeZeroPage, 3, false, execEOR},
	0x55: {"EOR", ModeZeroPageX, 4, false, execEOR},
	0x4D: {"EOR", ModeAbsolute, 4, false, execEOR},
	0x5D: {"EOR", ModeAbsoluteX, 4, true, execEOR},
	0x59: {"EOR", ModeAbsoluteY, 4, true, execEOR},
	0x41: {"EOR", ModeIndexedIndirect, 6, false, execEOR},
	0x51: {"EOR", ModeIndirectIndexed, 5, true, execEOR},

	// BIT
	0x24: {"BIT", ModeZeroPage, 3, false, execBIT},
	0x2C: {"BIT", ModeAbsolute, 4, false, execBIT},

	// ASL
	0x0A: {"ASL", ModeAccumulator, 2, false, execASL},
	0x06: {"ASL", ModeZeroPage, 5, false, execASL},
	0x16: {"ASL", ModeZeroPageX, 6, false, execASL},
	0x0E: {"ASL", ModeAbsolute, 6, false, execASL},
	0x1E: {"ASL", ModeAbsoluteX, 7, false, execASL},

	// LSR
	0x4A: {"LSR", ModeAccumulator, 2, false, execLSR},
	0x46: {"LSR", ModeZeroPage, 5, false, execLSR},
	0x56: {"LSR", ModeZeroPageX, 6, false, execLSR},
	0x4E: {"LSR", ModeAbsolute, 6, false, execLSR},
	0x5E: {"LSR", ModeAbsoluteX, 7, false, execLSR},

	// ROL
	0x2A: {"ROL", ModeAccumulator, 2, false, execROL},
	0x26: {"ROL", ModeZeroPage, 5, false, execROL},
	0x36: {"ROL", ModeZeroPageX, 6, false, execROL},
	0x2E: {"ROL", ModeAbsolute, 6, false, execROL},
	0x3E: {"ROL", ModeAbsoluteX, 7, false, execROL},

	// ROR
	0x6A: {"ROR", ModeAccumulator, 2, false, execROR},
	0x66: {"ROR", ModeZeroPage, 5, false, execROR},
	0x76: {"ROR", ModeZeroPageX, 6, false, execROR},
	0x6E: {"ROR", ModeAbsolute, 6, false, execROR},
	0x7E: {"ROR", ModeAbsoluteX, 7, false, execROR},

	// INC / DEC
	0xE6: {"INC", ModeZeroPage, 5, false, execINC},
	0xF6: {"INC", ModeZeroPageX, 6, false, execINC},
	0xEE: {"INC", ModeAbsolute, 6, false, execINC},
	0xFE: {"INC", ModeAbsoluteX, 7, false, execINC},
	0xC6: {"DEC", ModeZeroPage, 5, false, execDEC},
	0xD6: {"DEC", ModeZeroPageX, 6, false, execDEC},
	0xCE: {"DEC", ModeAbsolute, 6, false, execDEC},
	0xDE: {"DEC", ModeAbsoluteX, 7, false, execDEC},

	0xE8: {"INX", ModeImplied, 2, false, execINX},
	0xC8: {"INY", ModeImplied, 2, false, execINY},
	0xCA: {"DEX", ModeImplied, 2, false, execDEX},
	0x88: {"DEY", ModeImplied, 2, false, execDEY},

	// CMP / CPX / CPY
	0xC9: {"CMP", ModeImmediate, 2, false, execCMP},
	0xC5: {"CMP", ModeZeroPage, 3, false, execCMP},
	0xD5: {"CMP", ModeZeroPageX, 4, false, execCMP},
	0xCD: {"CMP", ModeAbsolute, 4, false, execCMP},
	0xDD: {"CMP", ModeAbsoluteX, 4, true, execCMP},
	0xD9: {"CMP", ModeAbsoluteY, 4, true, execCMP},
	0xC1: {"CMP", ModeIndexedIndirect, 6, false, execCMP},
	0xD1: {"CMP", ModeIndirectIndexed, 5, true, execCMP},

	0xE0: {"CPX", ModeImmediate, 2, false, execCPX},
	0xE4: {"CPX", ModeZeroPage, 3, false, execCPX},
	0xEC: {"CPX", ModeAbsolute, 4, false, execCPX},

	0xC0: {"CPY", ModeImmediate, 2, false, execCPY},
	0xC4: {"CPY", ModeZeroPage, 3, false, execCPY},
	0xCC: {"CPY", ModeAbsolute, 4, false, execCPY},

	// Branches
	0x90: {"BCC", ModeRelative, 2, false, execBCC},
	0xB0: {"BCS", ModeRelative, 2, false, execBCS},
	0xF0: {"BEQ", ModeRelative, 2, false, execBEQ},
	0xD0: {"BNE", ModeRelative, 2, false, execBNE},
	0x30: {"BMI", ModeRelative, 2, false, execBMI},
	0x10: {"BPL", ModeRelative, 2, false, execBPL},
	0x50: {"BVC", ModeRelative, 2, false, execBVC},
	0x70: {"BVS", ModeRelative, 2, false, execBVS},

	// Jump / call
	0x4C: {"JMP", ModeAbsolute, 3, false, execJMP},
	0x6C: {"JMP", ModeIndirect, 5, false, execJMP},
	0x20: {"JSR", ModeAbsolute, 6, false, execJSR},
	0x60: {"RTS", ModeImplied, 6, false, execRTS},
	0x00: {"BRK", ModeImplied, 7, false, execBRK},
	0x40: {"RTI", ModeImplied, 6, false, execRTI},

	// Flag ops
	0x18: {"CLC", ModeImplied, 2, false, execCLC},
	0x38: {"SEC", ModeImplied, 2, false, execSEC},
	0x58: {"CLI", ModeImplied, 2, false, execCLI},
	0x78: {"SEI", ModeImplied, 2, false, execSEI},
	0xB8: {"CLV", ModeImplied, 2, false, execCLV},
	0xD8: {"CLD", ModeImplied, 2, false, execCLD},
	0xF8: {"SED", ModeImplied, 2, false, execSED},

	// No-op
	0xEA: {"NOP", ModeImplied, 2, false, execNOP},
}

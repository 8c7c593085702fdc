// This file is part of mos6502.
//
// mos6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mos6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mos6502.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"fmt"

	"github.com/crt0/mos6502/curated"
	"github.com/crt0/mos6502/hardware/cpu/execution"
	"github.com/crt0/mos6502/hardware/cpu/instructions"
	"github.com/crt0/mos6502/hardware/cpu/registers"
	"github.com/crt0/mos6502/hardware/memory/cpubus"
	"github.com/crt0/mos6502/logger"
)

// sentinal error patterns returned by ExecuteInstruction.
const (
	// the opcode byte has no entry in the instruction table. execution
	// aborts rather than skipping; a silent skip masks bugs in the
	// instruction stream or in the emulation itself
	UnsupportedOpcode = "cpu: unsupported opcode (%#02x) at (%#04x)"

	// an effective address was requested for an instruction that has no
	// operand. unreachable unless the instruction table is malformed
	NoEffectiveAddress = "cpu: no effective address for %s (%s)"
)

// CPU implements the MOS 6502. Register logic is implemented by the types in
// the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8  registers.Register
	acc16 registers.ProgramCounter

	mem          cpubus.Memory
	instructions []*instructions.Definition

	// last result. the Defn field is nil when the CPU has just been reset
	// and nothing has yet been executed
	LastResult execution.Result

	// the cpu has fetched a BRK instruction. the dispatch loop is over;
	// requires a Reset()
	Halted bool
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// All registers, flags and the program counter start at zero; the stack
// pointer starts at the top of the stack page.
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0xff),
		Status:       registers.NewStatusRegister(),
		acc8:         registers.NewRegister(0, "accumulator"),
		acc16:        registers.NewProgramCounter(0),
		instructions: instructions.GetDefinitions(),
	}
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP.Register, mc.Status.Label(), mc.Status)
}

// Reset reinitialises the registers: A, X and Y are zeroed and the stack
// pointer returns to the top of the stack page. The status register is
// deliberately left untouched, reproducing the behaviour of the hardware
// this emulation is built against; whatever flags were set before the reset
// survive it. Does not load the PC with the reset vector; use
// LoadPCIndirect(cpubus.Reset) when appropriate.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.Halted = false

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xff)
}

// HasReset checks whether the CPU has recently been reset.
func (mc *CPU) HasReset() bool {
	return mc.LastResult.Address == 0 && mc.LastResult.Defn == nil
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	v, err := mc.read16Bit(indirectAddress)
	if err != nil {
		return err
	}
	mc.PC.Load(v)
	return nil
}

// LoadPC loads the contents of directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) {
	mc.PC.Load(directAddress)
}

// read8Bit returns the 8 bit value at the specified address.
func (mc *CPU) read8Bit(address uint16) (uint8, error) {
	return mc.mem.Read(address)
}

// write8Bit writes 8 bits to the specified address.
func (mc *CPU) write8Bit(address uint16, value uint8) error {
	return mc.mem.Write(address, value)
}

// read16Bit returns the little-endian 16 bit value at the specified address.
func (mc *CPU) read16Bit(address uint16) (uint16, error) {
	lo, err := mc.mem.Read(address)
	if err != nil {
		return 0, err
	}

	hi, err := mc.mem.Read(address + 1)
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

// read16BitZeroPage returns the 16 bit value pointed to by a zero-page
// address. Both pointer bytes live in the zero page: the high byte is
// fetched from (ptr+1) mod 256, wrapping within the page exactly as the
// hardware does.
func (mc *CPU) read16BitZeroPage(ptr uint8) (uint16, error) {
	lo, err := mc.mem.Read(uint16(ptr))
	if err != nil {
		return 0, err
	}

	hi, err := mc.mem.Read(uint16(ptr + 1))
	if err != nil {
		return 0, err
	}

	if ptr == 0xff {
		mc.LastResult.CPUBug = execution.ZeroPageWrapBug
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

// read8BitPC reads 8 bits from the memory location pointed to by PC.
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount
func (mc *CPU) read8BitPC() (uint8, error) {
	v, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return 0, err
	}

	mc.PC.Add(1)
	mc.LastResult.ByteCount++

	return v, nil
}

// read16BitPC reads 16 bits from the memory location pointed to by PC.
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount
//   - updates LastResult.InstructionData
func (mc *CPU) read16BitPC() (uint16, error) {
	lo, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}

	hi, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}

	v := (uint16(hi) << 8) | uint16(lo)
	mc.LastResult.InstructionData = v

	return v, nil
}

// notePageFault records the extra cycle paid when indexing moves the
// effective address into a different page to the base address. Only
// page-sensitive instructions pay the penalty; the fixed-cycle write and
// read-modify-write forms absorb it in their base count.
func (mc *CPU) notePageFault(base, indexed uint16) {
	if mc.LastResult.Defn.PageSensitive && base&0xff00 != indexed&0xff00 {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}
}

// branch conditionally adds a signed 8 bit offset to the PC. Taken branches
// pay one extra cycle, and another when the branch lands in a new page.
func (mc *CPU) branch(flag bool, offset uint16) {
	// the offset was read as an 8bit value. because we'll be adding it to
	// the 16bit PC the sign bit must be propogated into the most
	// significant bits first
	if offset&0x0080 == 0x0080 {
		offset |= 0xff00
	}

	mc.LastResult.BranchSuccess = flag
	if !flag {
		return
	}

	// +1 cycle
	mc.LastResult.Cycles++

	oldPC := mc.PC.Address()
	mc.PC.Add(offset)

	if oldPC&0xff00 != mc.PC.Address()&0xff00 {
		// +1 cycle
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}
}

// ExecuteInstruction steps the CPU forward one instruction. The basic
// process is this:
//
//  1. read the opcode at PC and look up the instruction definition
//  2. resolve the effective address according to the addressing mode
//  3. using the operator as a guide, perform the instruction
//
// The instruction executes atomically: registers, memory and flags are
// never observable in a half-updated state from outside this function.
//
// Fetching a BRK instruction sets the Halted flag; further calls do nothing
// until the CPU is Reset().
func (mc *CPU) ExecuteInstruction() error {
	if mc.Halted {
		return nil
	}

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// read next instruction
	opcode, err := mc.read8BitPC()
	if err != nil {
		return err
	}

	defn := mc.instructions[opcode]
	if defn == nil {
		// the number of bytes read is by definition one
		mc.LastResult.ByteCount = 1
		return curated.Errorf(UnsupportedOpcode, opcode, mc.LastResult.Address)
	}

	mc.LastResult.Defn = defn

	// the base cycle count is known up front. page-crossing and branch
	// extras are added as they are discovered
	mc.LastResult.Cycles = defn.Cycles

	// address is the effective address to use when reading/writing memory
	// (after any indexing has taken place)
	var address uint16

	// value is the operand for read instructions. for read-modify-write
	// instructions the value changes during execution and is written back
	// to memory
	var value uint8

	// get address to use when reading/writing from/to memory. note that in
	// the case of immediate addressing we get the value directly; and in
	// the case of implied addressing there is nothing to get
	switch defn.AddressingMode {
	case instructions.Implied:
		// implied mode does not use any additional bytes

	case instructions.Immediate:
		// for immediate mode, the value is the next byte in the program.
		// we don't set the address at all
		value, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(value)

	case instructions.Relative:
		// relative addressing is only used for branch instructions. the
		// "address" is an offset from the current PC position and is not
		// resolved until the branch is decided
		var offset uint8
		offset, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		address = uint16(offset)
		mc.LastResult.InstructionData = address

	case instructions.Absolute:
		address, err = mc.read16BitPC()
		if err != nil {
			return err
		}

	case instructions.ZeroPage:
		var zpAddress uint8
		zpAddress, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		address = uint16(zpAddress)
		mc.LastResult.InstructionData = address

	case instructions.Indirect:
		// indirect addressing (without indexing) is only used for the JMP
		// instruction
		var indirectAddress uint16
		indirectAddress, err = mc.read16BitPC()
		if err != nil {
			return err
		}

		if indirectAddress&0x00ff == 0x00ff {
			// the pointer lies on a page boundary. the hardware does not
			// carry into the high byte when fetching the second pointer
			// byte, so it comes from the zero byte of the same page
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug

			var lo, hi uint8
			lo, err = mc.read8Bit(indirectAddress)
			if err != nil {
				return err
			}
			hi, err = mc.read8Bit(indirectAddress & 0xff00)
			if err != nil {
				return err
			}
			address = (uint16(hi) << 8) | uint16(lo)
		} else {
			address, err = mc.read16Bit(indirectAddress)
			if err != nil {
				return err
			}
		}

	case instructions.IndexedIndirect: // x indexing
		var base uint8
		base, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(base)

		// the index is added before the dereference, with 8bit addition.
		// the pointer never extends past the zero page
		address, err = mc.read16BitZeroPage(base + mc.X.Value())
		if err != nil {
			return err
		}

		// never a page fault with pre-index indirect addressing

	case instructions.IndirectIndexed: // y indexing
		var ptr uint8
		ptr, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(ptr)

		// the index is added after the dereference, with 16bit addition
		var base uint16
		base, err = mc.read16BitZeroPage(ptr)
		if err != nil {
			return err
		}
		address = base + mc.Y.Address()
		mc.notePageFault(base, address)

	case instructions.AbsoluteIndexedX:
		var base uint16
		base, err = mc.read16BitPC()
		if err != nil {
			return err
		}
		address = base + mc.X.Address()
		mc.notePageFault(base, address)

	case instructions.AbsoluteIndexedY:
		var base uint16
		base, err = mc.read16BitPC()
		if err != nil {
			return err
		}
		address = base + mc.Y.Address()
		mc.notePageFault(base, address)

	case instructions.ZeroPageIndexedX:
		var base uint8
		base, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(base)

		// 8bit addition. the effective address stays in the zero page
		address = uint16(base + mc.X.Value())

	case instructions.ZeroPageIndexedY:
		var base uint8
		base, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(base)

		// 8bit addition. the effective address stays in the zero page
		address = uint16(base + mc.Y.Value())

	default:
		return curated.Errorf(NoEffectiveAddress, defn.Operator, defn.AddressingMode)
	}

	// read value from memory using address found in the addressing mode
	// switch above only when:
	// a) addressing mode is not 'implied' or 'immediate'
	//	- for immediate modes, we already have the value in lieu of an address
	//	- for implied modes, there is no value
	// b) instruction is Read or RMW
	//	- for write modes, we only use the address to write a value we
	//	  already have
	//	- for flow modes, the use of the address is very specific
	if !(defn.AddressingMode == instructions.Implied || defn.AddressingMode == instructions.Immediate) {
		if defn.Effect == instructions.Read || defn.Effect == instructions.RMW {
			value, err = mc.read8Bit(address)
			if err != nil {
				return err
			}
		}
	}

	// actually perform instruction based on operator
	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		err = mc.write8Bit(mc.SP.Address(), mc.A.Value())
		if err != nil {
			return err
		}
		mc.SP.Add(0xff, false)

	case instructions.Pla:
		mc.SP.Add(1, false)
		value, err = mc.read8Bit(mc.SP.Address())
		if err != nil {
			return err
		}
		mc.A.Load(value)
		mc.Status.UpdateZeroSign(mc.A.Value())

	case instructions.Php:
		err = mc.write8Bit(mc.SP.Address(), mc.Status.Value())
		if err != nil {
			return err
		}
		mc.SP.Add(0xff, false)

	case instructions.Plp:
		mc.SP.Add(1, false)
		value, err = mc.read8Bit(mc.SP.Address())
		if err != nil {
			return err
		}
		mc.Status.FromValue(value)

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.UpdateZeroSign(mc.A.Value())

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.UpdateZeroSign(mc.X.Value())

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.UpdateZeroSign(mc.Y.Value())

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.UpdateZeroSign(mc.A.Value())

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.UpdateZeroSign(mc.X.Value())

	case instructions.Txs:
		mc.SP.Load(mc.X.Value())
		// does not affect status register

	case instructions.Eor:
		mc.A.EOR(value)
		mc.Status.UpdateZeroSign(mc.A.Value())

	case instructions.Ora:
		mc.A.ORA(value)
		mc.Status.UpdateZeroSign(mc.A.Value())

	case instructions.And:
		mc.A.AND(value)
		mc.Status.UpdateZeroSign(mc.A.Value())

	case instructions.Lda:
		mc.A.Load(value)
		mc.Status.UpdateZeroSign(mc.A.Value())

	case instructions.Ldx:
		mc.X.Load(value)
		mc.Status.UpdateZeroSign(mc.X.Value())

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.Status.UpdateZeroSign(mc.Y.Value())

	case instructions.Sta:
		err = mc.write8Bit(address, mc.A.Value())
		if err != nil {
			return err
		}

	case instructions.Stx:
		err = mc.write8Bit(address, mc.X.Value())
		if err != nil {
			return err
		}

	case instructions.Sty:
		err = mc.write8Bit(address, mc.Y.Value())
		if err != nil {
			return err
		}

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.Status.UpdateZeroSign(mc.X.Value())

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.Status.UpdateZeroSign(mc.Y.Value())

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.Status.UpdateZeroSign(mc.X.Value())

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.Status.UpdateZeroSign(mc.Y.Value())

	case instructions.Asl:
		var r *registers.Register
		if defn.Effect == instructions.RMW {
			r = &mc.acc8
			r.Load(value)
		} else {
			r = &mc.A
		}
		mc.Status.Carry = r.ASL()
		mc.Status.UpdateZeroSign(r.Value())
		value = r.Value()

	case instructions.Lsr:
		var r *registers.Register
		if defn.Effect == instructions.RMW {
			r = &mc.acc8
			r.Load(value)
		} else {
			r = &mc.A
		}
		mc.Status.Carry = r.LSR()
		mc.Status.UpdateZeroSign(r.Value())
		value = r.Value()

	case instructions.Rol:
		var r *registers.Register
		if defn.Effect == instructions.RMW {
			r = &mc.acc8
			r.Load(value)
		} else {
			r = &mc.A
		}
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.Status.UpdateZeroSign(r.Value())
		value = r.Value()

	case instructions.Ror:
		var r *registers.Register
		if defn.Effect == instructions.RMW {
			r = &mc.acc8
			r.Load(value)
		} else {
			r = &mc.A
		}
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.Status.UpdateZeroSign(r.Value())
		value = r.Value()

	case instructions.Adc:
		// decimal mode is flag bookkeeping only in this emulation; the
		// arithmetic is always binary
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
		mc.Status.UpdateZeroSign(mc.A.Value())

	case instructions.Sbc:
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
		mc.Status.UpdateZeroSign(mc.A.Value())

	case instructions.Inc:
		mc.acc8.Load(value)
		mc.acc8.Add(1, false)
		mc.Status.UpdateZeroSign(mc.acc8.Value())
		value = mc.acc8.Value()

	case instructions.Dec:
		mc.acc8.Load(value)
		mc.acc8.Add(0xff, false)
		mc.Status.UpdateZeroSign(mc.acc8.Value())
		value = mc.acc8.Value()

	case instructions.Cmp:
		mc.acc8.Load(mc.A.Value())
		mc.Status.Carry, _ = mc.acc8.Subtract(value, true)
		mc.Status.UpdateZeroSign(mc.acc8.Value())

	case instructions.Cpx:
		mc.acc8.Load(mc.X.Value())
		mc.Status.Carry, _ = mc.acc8.Subtract(value, true)
		mc.Status.UpdateZeroSign(mc.acc8.Value())

	case instructions.Cpy:
		mc.acc8.Load(mc.Y.Value())
		mc.Status.Carry, _ = mc.acc8.Subtract(value, true)
		mc.Status.UpdateZeroSign(mc.acc8.Value())

	case instructions.Bit:
		mc.acc8.Load(value)
		mc.Status.Sign = mc.acc8.IsNegative()
		mc.Status.Overflow = mc.acc8.IsBitV()
		mc.acc8.AND(mc.A.Value())
		mc.Status.Zero = mc.acc8.IsZero()

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, address)

	case instructions.Bcs:
		mc.branch(mc.Status.Carry, address)

	case instructions.Beq:
		mc.branch(mc.Status.Zero, address)

	case instructions.Bmi:
		mc.branch(mc.Status.Sign, address)

	case instructions.Bne:
		mc.branch(!mc.Status.Zero, address)

	case instructions.Bpl:
		mc.branch(!mc.Status.Sign, address)

	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, address)

	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, address)

	case instructions.Jsr:
		// the return address pushed to the stack is the address of the
		// last byte of the JSR instruction, not the byte after it. RTS
		// compensates by incrementing the PC it pulls
		mc.acc16.Load(mc.PC.Address())
		mc.acc16.Add(0xffff)

		// push MSB of return address onto stack, and decrement SP
		err = mc.write8Bit(mc.SP.Address(), uint8(mc.acc16.Address()>>8))
		if err != nil {
			return err
		}
		mc.SP.Add(0xff, false)

		// push LSB of return address onto stack, and decrement SP
		err = mc.write8Bit(mc.SP.Address(), uint8(mc.acc16.Address()))
		if err != nil {
			return err
		}
		mc.SP.Add(0xff, false)

		// perform jump
		mc.PC.Load(address)

	case instructions.Rts:
		mc.SP.Add(1, false)

		var rtsAddress uint16
		rtsAddress, err = mc.read16Bit(mc.SP.Address())
		if err != nil {
			return err
		}
		mc.SP.Add(1, false)

		// load and correct PC
		mc.PC.Load(rtsAddress)
		mc.PC.Add(1)

	case instructions.Brk:
		// fetching BRK ends the dispatch loop. this emulation treats BRK
		// as the program's halt instruction rather than a software
		// interrupt through the IRQ vector
		mc.Halted = true
		logger.Logf("cpu", "BRK at %#04x; halted", mc.LastResult.Address)

	case instructions.Rti:
		// pull status register (same effect as PLP)
		mc.SP.Add(1, false)
		value, err = mc.read8Bit(mc.SP.Address())
		if err != nil {
			return err
		}
		mc.Status.FromValue(value)

		// pull program counter (same effect as RTS except there is no need
		// to correct the address)
		mc.SP.Add(1, false)

		var rtiAddress uint16
		rtiAddress, err = mc.read16Bit(mc.SP.Address())
		if err != nil {
			return err
		}
		mc.SP.Add(1, false)
		mc.PC.Load(rtiAddress)

	default:
		return curated.Errorf("cpu: unknown operator (%s)", defn.Operator)
	}

	// for RMW instructions: write altered value back to memory
	if defn.Effect == instructions.RMW {
		err = mc.write8Bit(address, value)
		if err != nil {
			return err
		}
	}

	// finalise result
	mc.LastResult.Final = true

	return nil
}

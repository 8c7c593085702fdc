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

package execution

import (
	"fmt"

	"github.com/crt0/mos6502/hardware/cpu/instructions"
)

// Result records the state of the most recently executed instruction. It is
// not required for the correctness of the CPU but tests, debuggers and
// disassemblers all need to know what just happened.
type Result struct {
	// the address the opcode was fetched from
	Address uint16

	// a reference to the instruction definition. nil when the CPU has just
	// been reset and nothing has been executed
	Defn *instructions.Definition

	// the operand bytes assembled into a single value. for 2 byte
	// instructions only the low byte is significant
	InstructionData uint16

	// the number of bytes fetched during decoding. should equal Defn.Bytes
	// on completion
	ByteCount int

	// number of cycles taken, including any page-crossing or branch extras
	Cycles int

	// whether a branch instruction took its branch
	BranchSuccess bool

	// whether an extra cycle was paid because of a page crossing
	PageFault bool

	// whether a quirky hardware code path was reproduced
	CPUBug Bug

	// whether this result describes a completely executed instruction
	Final bool
}

// Reset clears the result in preparation for a new instruction.
func (r *Result) Reset() {
	r.Address = 0
	r.Defn = nil
	r.InstructionData = 0
	r.ByteCount = 0
	r.Cycles = 0
	r.BranchSuccess = false
	r.PageFault = false
	r.CPUBug = NoBug
	r.Final = false
}

// String returns the result in the style of a disassembly listing. For
// example:
//
//	0x8000 LDA #$05 [2]
func (r Result) String() string {
	if r.Defn == nil {
		return "no instruction"
	}

	var operand string

	switch r.Defn.Bytes {
	case 2:
		operand = fmt.Sprintf("$%02x", r.InstructionData)
	case 3:
		operand = fmt.Sprintf("$%04x", r.InstructionData)
	}

	switch r.Defn.AddressingMode {
	case instructions.Immediate:
		operand = fmt.Sprintf("#%s", operand)
	case instructions.Indirect:
		operand = fmt.Sprintf("(%s)", operand)
	case instructions.IndexedIndirect:
		operand = fmt.Sprintf("(%s,X)", operand)
	case instructions.IndirectIndexed:
		operand = fmt.Sprintf("(%s),Y", operand)
	case instructions.AbsoluteIndexedX, instructions.ZeroPageIndexedX:
		operand = fmt.Sprintf("%s,X", operand)
	case instructions.AbsoluteIndexedY, instructions.ZeroPageIndexedY:
		operand = fmt.Sprintf("%s,Y", operand)
	}

	s := fmt.Sprintf("%#04x %s", r.Address, r.Defn.Operator)
	if operand != "" {
		s = fmt.Sprintf("%s %s", s, operand)
	}
	if r.Final {
		s = fmt.Sprintf("%s [%d]", s, r.Cycles)
	} else {
		s = fmt.Sprintf("%s [v]", s)
	}

	return s
}

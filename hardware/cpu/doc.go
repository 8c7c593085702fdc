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

// Package cpu implements the MOS 6502. It is not cycle-stepped; each call
// to ExecuteInstruction() runs one instruction to completion and records
// what happened, including the cycle tally, in the LastResult field.
//
// The CPU is initialised with an instance of the cpubus.Memory interface,
// the only connection the processor has to the outside world:
//
//	mc := cpu.NewCPU(mem)
//	mc.LoadPCIndirect(cpubus.Reset)
//	for !mc.Halted {
//		err := mc.ExecuteInstruction()
//		...
//	}
//
// The registers sub-package provides the register types and implements the
// arithmetic that the status flags are derived from.
package cpu

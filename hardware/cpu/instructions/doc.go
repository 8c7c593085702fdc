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

// Package instructions defines the table of opcode definitions for the 6502.
// A Definition records everything the CPU needs to decode an opcode byte:
// the operator, the addressing mode, the instruction length, the base cycle
// count, whether the instruction pays a cycle penalty on a page crossing and
// the effect category (read, write, read-modify-write, or one of the flow
// altering categories).
//
// The table covers the documented instruction set. Undocumented opcodes are
// deliberately absent so that a stray byte in an instruction stream surfaces
// as an unsupported-instruction error instead of executing garbage.
package instructions

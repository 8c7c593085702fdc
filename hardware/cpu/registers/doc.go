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

// Package registers implements the register file of the 6502: the 8 bit
// general purpose registers (A, X, Y), the stack pointer, the 16 bit program
// counter and the status register.
//
// Arithmetic and shift operations on the Register type return the carry and
// overflow conditions they produce rather than setting flags themselves;
// deciding which flags an instruction actually updates is the CPU's job.
// The StatusRegister type holds each flag as an explicit bool and knows how
// to convert itself to and from the packed uint8 form used by the stack
// instructions.
package registers

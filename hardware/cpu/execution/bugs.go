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

// The 6502 has some known hardware quirks which the emulation reproduces.
// When a quirky code path is taken the Result notes which one.
type Bug string

const (
	NoBug                    Bug = ""
	JmpIndirectAddressingBug Bug = "jmp indirect addressing bug"
	ZeroPageWrapBug          Bug = "zero page pointer wraparound"
)

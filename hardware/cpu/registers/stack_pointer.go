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

package registers

// StackPointer is an 8 bit register whose value always refers into the
// stack page, 0x0100 to 0x01ff. Pushing decrements the pointer, pulling
// increments it, and both wrap within the page.
type StackPointer struct {
	Register
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{
		Register: NewRegister(val, "SP"),
	}
}

// Address returns the stack pointer as an address in the stack page.
func (sp StackPointer) Address() uint16 {
	return 0x0100 | uint16(sp.Value())
}

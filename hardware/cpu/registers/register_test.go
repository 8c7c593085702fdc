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

package registers_test

import (
	"testing"

	"github.com/crt0/mos6502/hardware/cpu/registers"
	"github.com/crt0/mos6502/test"
)

func TestRegister(t *testing.T) {
	var carry, overflow bool

	// initialisation
	r8 := registers.NewRegister(0, "test")
	test.Equate(t, r8.IsZero(), true)
	test.Equate(t, r8.Value(), 0)
	test.Equate(t, r8.Label(), "test")

	// loading & addition
	r8.Load(127)
	test.Equate(t, r8.Value(), 127)
	r8.Add(2, false)
	test.Equate(t, r8.Value(), 129)

	// addition boundary
	r8.Load(255)
	test.Equate(t, r8.IsNegative(), true)
	carry, overflow = r8.Add(1, false)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)
	test.Equate(t, r8.IsZero(), true)

	// addition boundary with carry
	r8.Load(254)
	carry, overflow = r8.Add(1, true)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)
	test.Equate(t, r8.IsZero(), true)

	r8.Load(255)
	carry, overflow = r8.Add(1, true)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)
	test.Equate(t, r8.Value(), 1)

	// signed overflow: 0x50 + 0x50 = 0xa0 overflows, carry clear
	r8.Load(0x50)
	carry, overflow = r8.Add(0x50, false)
	test.Equate(t, carry, false)
	test.Equate(t, overflow, true)
	test.Equate(t, r8.IsNegative(), true)

	// signed overflow the other way: 0x80 + 0xff = 0x7f
	r8.Load(0x80)
	carry, overflow = r8.Add(0xff, false)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, true)
	test.Equate(t, r8.Value(), 0x7f)

	// subtraction. carry set means no borrow
	r8.Load(11)
	r8.Subtract(1, true)
	test.Equate(t, r8.Value(), 10)

	r8.Load(12)
	r8.Subtract(1, false)
	test.Equate(t, r8.Value(), 10)

	r8.Load(0x01)
	r8.Subtract(0x06, false)
	test.Equate(t, r8.Value(), 0xfa)

	// subtract on boundary
	r8.Load(0)
	r8.Subtract(1, true)
	test.Equate(t, r8.Value(), 255)
	r8.Load(1)
	r8.Subtract(1, false)
	test.Equate(t, r8.Value(), 255)
	r8.Load(1)
	r8.Subtract(2, true)
	test.Equate(t, r8.Value(), 255)

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	test.Equate(t, r8.Value(), 0x01)
	r8.EOR(0xff)
	test.Equate(t, r8.Value(), 0xfe)
	r8.ORA(0x01)
	test.Equate(t, r8.Value(), 0xff)

	// shifts
	carry = r8.ASL()
	test.Equate(t, r8.Value(), 0xfe)
	test.Equate(t, carry, true)
	carry = r8.LSR()
	test.Equate(t, r8.Value(), 0x7f)
	test.Equate(t, carry, false)
	carry = r8.LSR()
	test.Equate(t, carry, true)

	// rotation
	r8.Load(0xff)
	carry = r8.ROL(false)
	test.Equate(t, r8.Value(), 0xfe)
	test.Equate(t, carry, true)
	carry = r8.ROR(true)
	test.Equate(t, r8.Value(), 0xff)
	test.Equate(t, carry, false)

	// bit 6 query used by the BIT instruction
	r8.Load(0x40)
	test.Equate(t, r8.IsBitV(), true)
	r8.Load(0xbf)
	test.Equate(t, r8.IsBitV(), false)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0)
	test.Equate(t, pc.Address(), 0)

	pc.Load(0x8000)
	test.Equate(t, pc.Address(), 0x8000)

	pc.Add(1)
	test.Equate(t, pc.Address(), 0x8001)

	// wraparound at the top of the address space
	pc.Load(0xffff)
	pc.Add(1)
	test.Equate(t, pc.Address(), 0)

	test.Equate(t, pc, "0x0000")
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0xff)

	// stack pointer addresses are always in the stack page
	test.Equate(t, sp.Address(), 0x01ff)

	// pushing decrements
	sp.Add(0xff, false)
	test.Equate(t, sp.Address(), 0x01fe)

	// wraps within the stack page
	sp.Load(0x00)
	sp.Add(0xff, false)
	test.Equate(t, sp.Address(), 0x01ff)
}

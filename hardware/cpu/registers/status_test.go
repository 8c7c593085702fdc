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

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.Equate(t, sr, "sv-bdizc")

	sr.Carry = true
	sr.Zero = true
	test.Equate(t, sr, "sv-bdiZC")

	sr.Sign = true
	sr.Overflow = true
	sr.Break = true
	sr.DecimalMode = true
	sr.InterruptDisable = true
	test.Equate(t, sr, "SV-BDIZC")

	sr.Reset()
	test.Equate(t, sr, "sv-bdizc")
}

func TestStatusRegisterValue(t *testing.T) {
	sr := registers.NewStatusRegister()

	// the unused bit is always set in uint8 form
	test.Equate(t, sr.Value(), 0x20)

	sr.Carry = true
	sr.Sign = true
	test.Equate(t, sr.Value(), 0xa1)

	// round trip through the packed form
	var rt registers.StatusRegister
	rt.FromValue(sr.Value())
	test.Equate(t, rt, sr.String())
}

func TestUpdateZeroSign(t *testing.T) {
	sr := registers.NewStatusRegister()

	// exhaustive: Zero iff v == 0, Sign iff bit 7, independent of the other
	// flags for every possible value
	sr.Carry = true
	sr.Overflow = true

	for v := 0; v <= 255; v++ {
		sr.UpdateZeroSign(uint8(v))
		test.Equate(t, sr.Zero, v == 0)
		test.Equate(t, sr.Sign, v&0x80 == 0x80)
		test.Equate(t, sr.Carry, true)
		test.Equate(t, sr.Overflow, true)
	}
}

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

import "strings"

// StatusRegister is the special purpose register that stores the flags of
// the CPU. Bits, most significant first: Sign (negative), Overflow, unused
// (always set in uint8 form), Break, DecimalMode, InterruptDisable, Zero,
// Carry.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register. All flags are clear.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the flags as a fixed-width string, one rune per flag. An
// upper-case rune means the flag is set, lower-case means clear. The unused
// bit is rendered as '-'. For example, "sv-BdIZc".
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r - 0x20) // to upper case
		} else {
			s.WriteRune(r)
		}
	}

	flag(sr.Sign, 's')
	flag(sr.Overflow, 'v')
	s.WriteRune('-')
	flag(sr.Break, 'b')
	flag(sr.DecimalMode, 'd')
	flag(sr.InterruptDisable, 'i')
	flag(sr.Zero, 'z')
	flag(sr.Carry, 'c')

	return s.String()
}

// UpdateZeroSign sets the Zero and Sign flags according to an instruction
// result: Zero iff the value is zero, Sign iff bit 7 is set. Every
// instruction that defines a result routes through this function; the other
// five flags are never touched by it.
func (sr *StatusRegister) UpdateZeroSign(value uint8) {
	sr.Zero = value == 0
	sr.Sign = value&0x80 == 0x80
}

// Reset sets all status flags to their clear state.
func (sr *StatusRegister) Reset() {
	sr.FromValue(0)
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= 0x80
	}
	if sr.Overflow {
		v |= 0x40
	}
	if sr.Break {
		v |= 0x10
	}
	if sr.DecimalMode {
		v |= 0x08
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}

	// the unused bit in the status register is always 1 in uint8 context
	v |= 0x20

	return v
}

// FromValue converts an 8 bit integer (taken from the stack, for example) to
// the StatusRegister struct receiver.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Sign = v&0x80 == 0x80
	sr.Overflow = v&0x40 == 0x40
	sr.Break = v&0x10 == 0x10
	sr.DecimalMode = v&0x08 == 0x08
	sr.InterruptDisable = v&0x04 == 0x04
	sr.Zero = v&0x02 == 0x02
	sr.Carry = v&0x01 == 0x01
}

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

package memory

import (
	"github.com/crt0/mos6502/curated"
	"github.com/crt0/mos6502/hardware/memory/cpubus"
)

// sentinal error for Load() failures.
const ProgramTooLarge = "ram: program of %d bytes will not fit at origin %#04x"

// size of the address space. the full 64KiB, addresses 0x0000 to 0xffff
// inclusive. note that some 6502 emulations undersize this by one byte; with
// a short buffer the top byte of the address space, and with it part of the
// IRQ vector, is lost.
const addressSpace = 0x10000

// RAM is a flat, contiguous block covering the entire address space. The CPU
// accesses it through the cpubus.Memory interface; the 16-bit accessors exist
// for vector handling, program loading and test harnesses.
type RAM struct {
	data []uint8
}

// NewRAM is the preferred method of initialisation for RAM. All bytes are
// zeroed.
func NewRAM() *RAM {
	return &RAM{
		data: make([]uint8, addressSpace),
	}
}

// Snapshot creates a copy of RAM in its current state.
func (ram *RAM) Snapshot() *RAM {
	n := *ram
	n.data = make([]uint8, len(ram.data))
	copy(n.data, ram.data)
	return &n
}

// Clear sets every byte back to zero.
func (ram *RAM) Clear() {
	for i := range ram.data {
		ram.data[i] = 0
	}
}

// Read implements the cpubus.Memory interface. Never errors for flat RAM.
func (ram *RAM) Read(address uint16) (uint8, error) {
	return ram.data[address], nil
}

// Write implements the cpubus.Memory interface. Never errors for flat RAM.
func (ram *RAM) Write(address uint16, data uint8) error {
	ram.data[address] = data
	return nil
}

// Read16 reads a little-endian 16 bit value: low byte at address, high byte
// at address+1. The high-byte read wraps around the top of the address space.
func (ram *RAM) Read16(address uint16) (uint16, error) {
	lo, _ := ram.Read(address)
	hi, _ := ram.Read(address + 1)
	return (uint16(hi) << 8) | uint16(lo), nil
}

// Write16 writes a 16 bit value little-endian: low byte at address, high
// byte at address+1. The inverse of Read16.
func (ram *RAM) Write16(address uint16, data uint16) error {
	_ = ram.Write(address, uint8(data))
	_ = ram.Write(address+1, uint8(data>>8))
	return nil
}

// Load copies a program into RAM starting at origin. Memory is untouched if
// the program will not fit between origin and the top of the address space.
func (ram *RAM) Load(origin uint16, program []byte) error {
	if len(program) > addressSpace-int(origin) {
		return curated.Errorf(ProgramTooLarge, len(program), origin)
	}
	copy(ram.data[origin:], program)
	return nil
}

// make sure RAM satisfies the interface the CPU requires
var _ cpubus.Memory = (*RAM)(nil)

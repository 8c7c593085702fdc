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

// Package cpubus defines the operations the CPU requires of any memory
// implementation. The RAM type in the memory package is the only
// implementation in this repository but the interface is the seam where a
// future bus arbiter, mapper or memory-mapped device would attach. Errors
// returned by an implementation are treated as fatal by the CPU; a flat RAM
// never returns one.
//
// The package also records the canonical 6502 interrupt vector addresses.
// Each vector is two bytes, stored little-endian.
package cpubus

// Memory defines the operations for memory when accessed from the CPU.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// The canonical locations of the 6502 interrupt vectors.
const (
	NMI   uint16 = 0xfffa
	Reset uint16 = 0xfffc
	IRQ   uint16 = 0xfffe
)

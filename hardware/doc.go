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

// Package hardware assembles the sub-packages into a runnable machine: a
// 6502 and a flat 64k address space. The typical lifecycle is:
//
//	m := hardware.NewMachine()
//	err := m.LoadAndRun(program)
//
// or, when single-stepping is wanted:
//
//	m.Load(program)
//	m.Reset()
//	for {
//		ok, err := m.Step()
//		...
//	}
//
// Loaded programs run until the CPU fetches a BRK instruction.
package hardware

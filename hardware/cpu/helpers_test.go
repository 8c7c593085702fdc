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

package cpu_test

import (
	"testing"

	"github.com/crt0/mos6502/hardware/cpu"
	"github.com/crt0/mos6502/test"
)

// mockMem is a flat 64k address space with no mirroring and no unreadable
// areas. good enough for exercising every addressing mode
type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	mem := &mockMem{}
	mem.internal = make([]uint8, 0x10000)
	return mem
}

func (mem *mockMem) Clear() {
	for i := range mem.internal {
		mem.internal[i] = 0
	}
}

// putInstructions copies bytes into memory at origin and returns the
// address of the next free location
func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		_ = mem.Write(origin+uint16(i), b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	return nil
}

// step runs one instruction and fails the test if execution errors or the
// recorded result is inconsistent with the instruction's definition
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()

	err := mc.ExecuteInstruction()
	test.ExpectedSuccess(t, err)
	err = mc.LastResult.IsValid()
	test.ExpectedSuccess(t, err)
}

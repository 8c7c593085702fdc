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

package hardware_test

import (
	"testing"

	"github.com/crt0/mos6502/curated"
	"github.com/crt0/mos6502/hardware"
	"github.com/crt0/mos6502/hardware/memory"
	"github.com/crt0/mos6502/hardware/memory/cpubus"
	"github.com/crt0/mos6502/test"
)

func TestLoadAndRun(t *testing.T) {
	m := hardware.NewMachine()

	// LDA #$05 / BRK
	err := m.LoadAndRun([]byte{0xa9, 0x05, 0x00})
	test.ExpectedSuccess(t, err)
	test.Equate(t, m.CPU.A, "0x05")
	test.Equate(t, m.CPU.Status, "sv-bdizc")
	test.Equate(t, m.CPU.Halted, true)
}

func TestLoadAndRunFlags(t *testing.T) {
	m := hardware.NewMachine()

	// LDA #$00 / BRK
	err := m.LoadAndRun([]byte{0xa9, 0x00, 0x00})
	test.ExpectedSuccess(t, err)
	test.Equate(t, m.CPU.Status, "sv-bdiZc")

	// LDA #$80 / BRK
	err = m.LoadAndRun([]byte{0xa9, 0x80, 0x00})
	test.ExpectedSuccess(t, err)
	test.Equate(t, m.CPU.Status, "Sv-bdizc")
}

func TestLoadAndRunTransfer(t *testing.T) {
	m := hardware.NewMachine()

	// LDA #$05 / TAX / BRK
	err := m.LoadAndRun([]byte{0xa9, 0x05, 0xaa, 0x00})
	test.ExpectedSuccess(t, err)
	test.Equate(t, m.CPU.X, "0x05")

	// LDA #$c0 / TAX / INX / BRK
	err = m.LoadAndRun([]byte{0xa9, 0xc0, 0xaa, 0xe8, 0x00})
	test.ExpectedSuccess(t, err)
	test.Equate(t, m.CPU.X, "0xc1")
}

func TestRunWithPresetRegister(t *testing.T) {
	m := hardware.NewMachine()

	// INX / INX / BRK, with X wound to $ff after the reset
	err := m.Load([]byte{0xe8, 0xe8, 0x00})
	test.ExpectedSuccess(t, err)
	err = m.Reset()
	test.ExpectedSuccess(t, err)

	m.CPU.X.Load(0xff)
	err = m.Run()
	test.ExpectedSuccess(t, err)
	test.Equate(t, m.CPU.X, "0x01")
}

func TestStoreRoundTrip(t *testing.T) {
	m := hardware.NewMachine()

	// LDA #$42 / STA $10 / LDX $10 / BRK
	err := m.LoadAndRun([]byte{0xa9, 0x42, 0x85, 0x10, 0xa6, 0x10, 0x00})
	test.ExpectedSuccess(t, err)
	test.Equate(t, m.CPU.X, "0x42")

	v, _ := m.Mem.Read(0x0010)
	test.Equate(t, v, 0x42)
}

func TestLoadPlacement(t *testing.T) {
	m := hardware.NewMachine()

	program := []byte{0xa9, 0x01, 0x00}
	err := m.Load(program)
	test.ExpectedSuccess(t, err)

	// program sits at the load origin and the reset vector points at it
	for i, b := range program {
		v, _ := m.Mem.Read(hardware.LoadOrigin + uint16(i))
		test.Equate(t, v, int(b))
	}
	v, err := m.Mem.Read16(cpubus.Reset)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, hardware.LoadOrigin)

	// the PC only follows the vector after a reset
	err = m.Reset()
	test.ExpectedSuccess(t, err)
	test.Equate(t, m.CPU.PC, "0x8000")
}

func TestLoadTooLarge(t *testing.T) {
	m := hardware.NewMachine()

	program := make([]byte, 0x10000-int(hardware.LoadOrigin)+1)
	err := m.Load(program)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, memory.ProgramTooLarge), true)
}

func TestStep(t *testing.T) {
	m := hardware.NewMachine()

	err := m.Load([]byte{0xa9, 0x05, 0x00})
	test.ExpectedSuccess(t, err)
	err = m.Reset()
	test.ExpectedSuccess(t, err)

	ok, err := m.Step() // LDA #$05
	test.ExpectedSuccess(t, err)
	test.Equate(t, ok, true)
	test.Equate(t, m.CPU.A, "0x05")

	ok, err = m.Step() // BRK
	test.ExpectedSuccess(t, err)
	test.Equate(t, ok, false)
}

func TestResetPreservesStatus(t *testing.T) {
	m := hardware.NewMachine()

	// SEC / LDA #$ff / BRK
	err := m.LoadAndRun([]byte{0x38, 0xa9, 0xff, 0x00})
	test.ExpectedSuccess(t, err)
	test.Equate(t, m.CPU.Status, "Sv-bdizC")

	err = m.Reset()
	test.ExpectedSuccess(t, err)
	test.Equate(t, m.CPU.A, "0x00")
	test.Equate(t, m.CPU.Halted, false)

	// flags survive the reset; only the zero/sign of the old accumulator
	// value linger until the next instruction defines a result
	test.Equate(t, m.CPU.Status, "Sv-bdizC")
}

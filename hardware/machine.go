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

package hardware

import (
	"github.com/crt0/mos6502/hardware/cpu"
	"github.com/crt0/mos6502/hardware/memory"
	"github.com/crt0/mos6502/hardware/memory/cpubus"
)

// LoadOrigin is the address at which Load() places a program, and where the
// reset vector is pointed.
const LoadOrigin = 0x8000

// Machine connects a CPU and a flat 64k of RAM. It is the simplest useful
// assembly of the sub-packages and the place where the load / reset / run
// lifecycle is defined.
type Machine struct {
	CPU *cpu.CPU
	Mem *memory.RAM
}

// NewMachine is the preferred method of initialisation for the Machine type.
func NewMachine() *Machine {
	mem := memory.NewRAM()
	return &Machine{
		CPU: cpu.NewCPU(mem),
		Mem: mem,
	}
}

// Load copies the program into memory at LoadOrigin and points the reset
// vector at it. The machine is not reset; the program does not begin
// executing until Reset() and Run() (or Step()) are called.
func (m *Machine) Load(program []byte) error {
	if err := m.Mem.Load(LoadOrigin, program); err != nil {
		return err
	}
	return m.Mem.Write16(cpubus.Reset, LoadOrigin)
}

// Reset prepares the machine for execution: the CPU registers are reset and
// the PC is loaded from the reset vector. Memory is not touched.
func (m *Machine) Reset() error {
	m.CPU.Reset()
	return m.CPU.LoadPCIndirect(cpubus.Reset)
}

// Run executes instructions until the CPU halts. An execution error ends
// the run immediately.
func (m *Machine) Run() error {
	for !m.CPU.Halted {
		if err := m.CPU.ExecuteInstruction(); err != nil {
			return err
		}
	}
	return nil
}

// Step executes a single instruction. The returned boolean is false once
// the CPU has halted and further calls would do nothing.
func (m *Machine) Step() (bool, error) {
	if err := m.CPU.ExecuteInstruction(); err != nil {
		return false, err
	}
	return !m.CPU.Halted, nil
}

// LoadAndRun is a convenience: Load, Reset and Run in one call.
func (m *Machine) LoadAndRun(program []byte) error {
	if err := m.Load(program); err != nil {
		return err
	}
	if err := m.Reset(); err != nil {
		return err
	}
	return m.Run()
}

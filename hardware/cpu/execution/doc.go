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

// Package execution tracks the result of instruction execution on the CPU.
// The Result type stores detailed information about the most recent
// instruction: where it was fetched from, the operand it decoded, how many
// bytes and cycles it consumed, whether a branch was taken and whether any
// hardware quirk was reproduced.
//
// The Result.IsValid() function checks a result for consistency with its
// instruction definition. The CPU itself never calls it; the test suite
// calls it after every stepped instruction.
package execution

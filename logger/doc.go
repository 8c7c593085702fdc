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

// Package logger is the central log for the emulation. There is only one log
// for the entire application and the package level functions write to it.
// Entries accumulate in memory; a host can inspect them with Write(), Tail()
// or BorrowLog(), or ask for live echoing to an io.Writer with SetEcho().
//
// Repeated identical entries are coalesced into a single entry with a repeat
// count, which keeps a tight emulation loop from flooding the log.
package logger

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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package except that the formatting pattern
// is also the identity of the error. Packages that raise a curated error
// declare the pattern as a const string; callers discriminate error
// conditions by comparing against that same constant:
//
//	if err := mc.ExecuteInstruction(); err != nil {
//		if curated.Is(err, cpu.UnsupportedOpcode) {
//			...
//		}
//	}
//
// The Has() function is like Is() but checks for the pattern anywhere in the
// error chain, which is useful when a curated error has been wrapped inside
// another curated error.
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. An uncurated error is one the program did not
// anticipate and should be treated as fatal.
//
// The Error() function implementation normalises the error chain so that it
// does not contain duplicate adjacent parts. Parts of a chain are separated
// by the sub-string ': ' as suggested on p239 of "The Go Programming
// Language" (Donovan, Kernighan).
package curated

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

package test

import (
	"fmt"
	"testing"
)

// Equate is used to test equality between one value and another. Generally,
// both values must be of the same type but there are some convenient
// exceptions:
//
// If value is of type uint8 or uint16, expectedValue can be an int. A literal
// number value is of type int and it would be tiresome to cast the expected
// value at every call site:
//
//	var r uint16
//	r = someFunction()
//	test.Equate(t, r, 10)
//
// If value implements fmt.Stringer, expectedValue can be a string. This is
// how register and status values are tested throughout the cpu package:
//
//	test.Equate(t, mc.Status, "sv-BdIZc")
func Equate(t *testing.T, value, expectedValue interface{}) {
	t.Helper()

	switch v := value.(type) {
	default:
		// fallback for Stringer implementations. this is what allows
		// registers to be compared against their string form
		if s, ok := value.(fmt.Stringer); ok {
			if e, ok := expectedValue.(string); ok {
				if s.String() != e {
					t.Errorf("equation of type %T failed (%s - wanted %s)", v, s.String(), e)
				}
				return
			}
		}
		t.Fatalf("unhandled type for Equate() function (%T)", v)

	case bool:
		if e, ok := expectedValue.(bool); ok {
			if v != e {
				t.Errorf("equation of type %T failed (%v - wanted %v)", v, v, e)
			}
			return
		}
		t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)

	case int:
		if e, ok := expectedValue.(int); ok {
			if v != e {
				t.Errorf("equation of type %T failed (%d - wanted %d)", v, v, e)
			}
			return
		}
		t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)

	case uint8:
		switch e := expectedValue.(type) {
		case uint8:
			if v != e {
				t.Errorf("equation of type %T failed (%#02x - wanted %#02x)", v, v, e)
			}
		case int:
			if int(v) != e {
				t.Errorf("equation of type %T failed (%#02x - wanted %#02x)", v, v, e)
			}
		default:
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}

	case uint16:
		switch e := expectedValue.(type) {
		case uint16:
			if v != e {
				t.Errorf("equation of type %T failed (%#04x - wanted %#04x)", v, v, e)
			}
		case int:
			if int(v) != e {
				t.Errorf("equation of type %T failed (%#04x - wanted %#04x)", v, v, e)
			}
		default:
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}

	case string:
		if e, ok := expectedValue.(string); ok {
			if v != e {
				t.Errorf("equation of type %T failed (%s - wanted %s)", v, v, e)
			}
			return
		}
		t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
	}
}

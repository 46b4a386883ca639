// This file is part of glstate.
//
// glstate is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// glstate is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with glstate.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created by the
// Errorf() function with a specific pattern. The pattern is what
// differentiates curated errors. For example:
//
//	e := curated.Errorf("unknown blending equation: %#04x", 0x1234)
//
//	if curated.Is(e, "unknown blending equation: %#04x") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf("unknown blending equation: %#04x", 0x1234)
//	f := curated.Errorf("bootstrap: %v", e)
//
//	if curated.Has(f, "unknown blending equation: %#04x") {
//		fmt.Println("true")
//	}
//
// The values that were supplied to Errorf() can be retrieved with the
// Values() function. This is how callers recover the raw driver value or the
// uniform name carried by an error without parsing the error message.
//
//	v := curated.Values(e)
//	fmt.Println(v[0].(uint32))
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the message does not start
// with a duplicated part. Only the leading part is considered; text carried
// by the error is never altered. For example, wrapping a "stage: compilation
// failed" error with the pattern "stage: %v" results in the message:
//
//	stage: compilation failed
//
// and not:
//
//	stage: stage: compilation failed
//
// For the purposes of this package we think of chains as being composed of
// parts separted by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
//
// Sentinal patterns should be stored as a const string, suitably named and
// commented, in the package that creates the error.
package curated

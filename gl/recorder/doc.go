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

// Package recorder is a software implementation of gl.Functions. It keeps a
// simulated copy of the driver's server state so that queries reflect earlier
// mutations, and it records every state mutating call in the order it was
// made.
//
// The recorder stands in for a live graphics context in tests and in
// headless operation. The Driver type is not safe for concurrent use, which
// mirrors the real driver.
//
// Shader compilation is a minimal check of the GLSL source: the source must
// declare a main function and the braces must balance. Linking collects the
// uniform declarations of the attached stages. A uniform can be marked as
// optimised out by naming it in an "inactive" pragma
//
//	// inactive: foo, bar
//
// or by giving it a name starting with "unused_".
package recorder

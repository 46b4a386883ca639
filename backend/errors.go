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

package backend

// List of error patterns returned by this package.
const (
	// the compiler log is carried verbatim as the only value of the error
	CompilationFailed = "backend: compilation failed: %s"

	UnsupportedStageType = "backend: unsupported stage type: %v"

	// the linker log is carried verbatim as the only value of the error
	LinkFailed = "backend: link failed: %s"

	// uniform resolution warnings
	InactiveUniform     = "uniform: inactive: %s"
	UniformTypeMismatch = "uniform: type mismatch: %s: expected %v, found %v"
)

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

// Package backend defines the contract between the backend agnostic parts of
// glstate (the state and shader packages) and a graphics driver.
//
// The Backend interface covers stage compilation, program linking, uniform
// resolution and the encoding of uniform values. Device is an implementation
// of Backend over any gl.Functions and is the basis of the concrete backends
// in the opengl and webgl2 sub-packages. The differences between desktop
// OpenGL and WebGL2 that matter to the state cache are described by the
// Profile type.
//
// Errors returned by this package are curated errors. The patterns are
// exported so that callers can test for them with curated.Is().
package backend

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

// Package gl describes the raw driver entry points consumed by the rest of
// glstate. It makes no driver calls itself.
//
// The Functions interface is implemented by each concrete driver: desktop
// OpenGL in backend/opengl, WebGL2 in backend/webgl2 and the software
// driver in gl/recorder. The enumeration values in this package are shared
// by desktop OpenGL and WebGL2 so that decoding of driver responses happens
// in one place.
//
// Objects (shaders, programs, buffers, textures, framebuffers, vertex
// arrays) are identified by uint32 values where zero means "no object".
// Uniform locations are int32 values where -1 means "no location". Drivers
// must silently discard uniform writes to location -1.
package gl

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

// Package webgl2 is the WebGL2 backend. It is only available when compiling
// for the js/wasm target.
//
// WebGL2 identifies objects with JavaScript values rather than integers. The
// backend keeps a table that maps each object it sees to a uint32 id so that
// the state cache can treat objects the same way for every backend. Objects
// created outside of glstate (buffers, textures, framebuffers and vertex
// arrays) must be registered with Register() before their ids can be used
// with the state cache. Objects returned by the driver in response to a
// query are registered automatically.
//
// Geometry, tessellation and compute stages are not supported by WebGL2.
// Primitive restart is always on and is never queried.
package webgl2

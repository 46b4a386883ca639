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

package shader

// List of error patterns returned by this package. Errors from compilation,
// linking and uniform resolution use the patterns in the backend package.
const (
	StageDestroyed   = "shader: stage has been destroyed"
	ProgramDestroyed = "shader: program has been destroyed"
	BuilderExpired   = "shader: uniform builder used outside of Uniforms()"
)

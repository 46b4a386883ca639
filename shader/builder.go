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

import (
	"github.com/jetsetilly/glstate/backend"
	"github.com/jetsetilly/glstate/curated"
	"github.com/jetsetilly/glstate/gl"
	"github.com/jetsetilly/glstate/logger"
	"github.com/jetsetilly/glstate/state"
)

// UniformBuilder resolves the names of uniforms in a program. It is only
// valid inside the function passed to Program.Uniforms().
type UniformBuilder struct {
	session backend.UniformSession
	prefs   *state.Preferences
}

// Ask returns the uniform with the name. If the uniform is not active in the
// program an error with the backend.InactiveUniform pattern is returned. If
// the uniform is active but its type does not match T an error with the
// backend.UniformTypeMismatch pattern is returned.
//
// The errors are warnings. The returned Uniform is always usable but writes
// through it have no effect if there was an error.
//
// Repeated calls for the same name and type return equal values.
func Ask[T Uniformable](ub *UniformBuilder, name string) (Uniform[T], error) {
	typ := uniformType[T]()
	unbound := Uniform[T]{location: gl.NoLocation, typ: typ}

	if ub.session == nil {
		return unbound, curated.Errorf(BuilderExpired)
	}

	location, err := ub.session.Resolve(name, typ)
	if err != nil {
		logger.Log(ub.prefs, "uniform", err)
		return unbound, err
	}

	return Uniform[T]{location: location, typ: typ}, nil
}

// AskUnbound is the same as Ask() except that the warning is discarded. Use
// this for uniforms that are not present in every variant of a shader.
func AskUnbound[T Uniformable](ub *UniformBuilder, name string) Uniform[T] {
	typ := uniformType[T]()
	if ub.session == nil {
		return Uniform[T]{location: gl.NoLocation, typ: typ}
	}
	return Uniform[T]{
		location: ub.session.ResolveUnbound(name, typ),
		typ:      typ,
	}
}

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

import (
	"strings"

	"github.com/jetsetilly/glstate/curated"
	"github.com/jetsetilly/glstate/gl"
)

type resolution struct {
	location int32
	err      error
}

type session struct {
	fns     gl.Functions
	program ProgramHandle

	// types of the active uniforms of the program. keyed by the reported name
	// without a trailing array subscript
	active map[string]UniformType

	// previous resolutions. keyed by name and type
	resolved map[string]map[UniformType]resolution
}

func newSession(fns gl.Functions, program ProgramHandle) *session {
	ses := &session{
		fns:      fns,
		program:  program,
		active:   make(map[string]UniformType),
		resolved: make(map[string]map[UniformType]resolution),
	}

	n := fns.GetProgrami(uint32(program), gl.ACTIVE_UNIFORMS)
	for i := 0; i < n; i++ {
		name, _, typ := fns.GetActiveUniform(uint32(program), i)
		ses.active[baseName(name)] = FromGL(typ)
	}

	return ses
}

// baseName removes a trailing array subscript from the name. subscripts
// inside the name, such as those of an array of structs, are part of the
// member name and are kept
func baseName(name string) string {
	if !strings.HasSuffix(name, "]") {
		return name
	}
	if i := strings.LastIndexByte(name, '['); i > 0 {
		return name[:i]
	}
	return name
}

// Program implements the UniformSession interface.
func (ses *session) Program() ProgramHandle {
	return ses.program
}

// Resolve implements the UniformSession interface.
func (ses *session) Resolve(name string, typ UniformType) (int32, error) {
	if r, ok := ses.resolved[name][typ]; ok {
		return r.location, r.err
	}

	r := ses.resolve(name, typ)
	if _, ok := ses.resolved[name]; !ok {
		ses.resolved[name] = make(map[UniformType]resolution)
	}
	ses.resolved[name][typ] = r

	return r.location, r.err
}

func (ses *session) resolve(name string, typ UniformType) resolution {
	location := ses.fns.GetUniformLocation(uint32(ses.program), name)
	if location == gl.NoLocation {
		return resolution{
			location: gl.NoLocation,
			err:      curated.Errorf(InactiveUniform, name),
		}
	}

	found, ok := ses.active[baseName(name)]
	if !ok {
		found = Unknown
	}
	if found != typ {
		return resolution{
			location: gl.NoLocation,
			err:      curated.Errorf(UniformTypeMismatch, name, typ, found),
		}
	}

	return resolution{location: location}
}

// ResolveUnbound implements the UniformSession interface.
func (ses *session) ResolveUnbound(name string, typ UniformType) int32 {
	location, err := ses.Resolve(name, typ)
	if err != nil {
		return gl.NoLocation
	}
	return location
}

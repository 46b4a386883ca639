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
	"github.com/jetsetilly/glstate/state"
)

// Program is a linked shader program.
type Program struct {
	st        *state.PipelineState
	backend   backend.Backend
	handle    backend.ProgramHandle
	destroyed bool
}

// NewProgram links the stages into a program. If linking fails an error with
// the backend.LinkFailed pattern is returned, carrying the linker log.
//
// The PipelineState is used whenever the program needs to be made current.
func NewProgram(st *state.PipelineState, b backend.Backend, stages ...*Stage) (*Program, error) {
	handles := make([]backend.StageHandle, 0, len(stages))
	for _, s := range stages {
		if s.destroyed {
			return nil, curated.Errorf(StageDestroyed)
		}
		handles = append(handles, s.handle)
	}

	handle, err := b.LinkProgram(handles...)
	if err != nil {
		return nil, err
	}

	return &Program{
		st:      st,
		backend: b,
		handle:  handle,
	}, nil
}

// Handle returns the backend's handle for the program.
func (p *Program) Handle() backend.ProgramHandle {
	return p.handle
}

// Destroy frees the driver's program object. If the program is current it
// is first replaced by the zero program. Only the first call has any effect.
func (p *Program) Destroy() {
	if p.destroyed {
		return
	}
	p.destroyed = true

	if p.st.CurrentProgram() == uint32(p.handle) {
		p.st.UseProgram(0)
	}
	p.backend.DestroyProgram(p.handle)
}

// Uniforms opens a session for resolving the program's uniforms. The program
// is made current and the function f is called with a UniformBuilder. The
// UniformBuilder must not be used once f has returned.
//
// The error returned by f is returned by Uniforms().
func (p *Program) Uniforms(f func(ub *UniformBuilder) error) error {
	if p.destroyed {
		return curated.Errorf(ProgramDestroyed)
	}

	p.st.UseProgram(uint32(p.handle))

	ub := &UniformBuilder{
		session: p.backend.NewUniformSession(p.handle),
		prefs:   p.st.Preferences(),
	}
	defer func() {
		ub.session = nil
	}()

	return f(ub)
}

// Use makes the program current and returns the interface through which
// uniform values are written.
func (p *Program) Use() *ProgramInterface {
	p.st.UseProgram(uint32(p.handle))
	return &ProgramInterface{program: p}
}

// ProgramInterface is used to write uniform values to a program.
type ProgramInterface struct {
	program *Program
}

// Program returns the program the interface writes to.
func (iface *ProgramInterface) Program() *Program {
	return iface.program
}

func (iface *ProgramInterface) write(location int32, v backend.UniformValue) {
	if location == gl.NoLocation || iface.program.destroyed {
		return
	}

	// another program may have been made current since Use() was called
	iface.program.st.UseProgram(uint32(iface.program.handle))
	iface.program.backend.WriteUniform(location, v)
}

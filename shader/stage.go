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
)

// Stage is a compiled shader stage.
type Stage struct {
	backend   backend.Backend
	handle    backend.StageHandle
	typ       backend.StageType
	destroyed bool
}

// NewStage compiles the source for the stage type. If compilation fails an
// error with the backend.CompilationFailed pattern is returned, carrying the
// compiler log.
func NewStage(b backend.Backend, typ backend.StageType, src string) (*Stage, error) {
	handle, err := b.CompileStage(typ, src)
	if err != nil {
		return nil, err
	}
	return &Stage{
		backend: b,
		handle:  handle,
		typ:     typ,
	}, nil
}

// Type returns the stage type.
func (s *Stage) Type() backend.StageType {
	return s.typ
}

// Handle returns the backend's handle for the stage.
func (s *Stage) Handle() backend.StageHandle {
	return s.handle
}

// Destroy frees the driver's stage object. Only the first call has any
// effect.
func (s *Stage) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.backend.DestroyStage(s.handle)
}

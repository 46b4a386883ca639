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
	"github.com/jetsetilly/glstate/gl"
)

// StageType identifies the pipeline stage a shader stage is compiled for.
type StageType int

// List of valid StageType values.
const (
	Vertex StageType = iota
	TessellationControl
	TessellationEvaluation
	Geometry
	Fragment
	Compute
)

func (t StageType) String() string {
	switch t {
	case Vertex:
		return "vertex"
	case TessellationControl:
		return "tessellation control"
	case TessellationEvaluation:
		return "tessellation evaluation"
	case Geometry:
		return "geometry"
	case Fragment:
		return "fragment"
	case Compute:
		return "compute"
	}
	return "unknown stage"
}

// ToGL returns the driver value for the stage type.
func (t StageType) ToGL() gl.Enum {
	switch t {
	case Vertex:
		return gl.VERTEX_SHADER
	case TessellationControl:
		return gl.TESS_CONTROL_SHADER
	case TessellationEvaluation:
		return gl.TESS_EVALUATION_SHADER
	case Geometry:
		return gl.GEOMETRY_SHADER
	case Fragment:
		return gl.FRAGMENT_SHADER
	case Compute:
		return gl.COMPUTE_SHADER
	}
	return 0
}

// StageHandle is the driver object for a compiled shader stage.
type StageHandle uint32

// ProgramHandle is the driver object for a linked program.
type ProgramHandle uint32

// VertexRestartSupport describes how the backend handles primitive restart.
type VertexRestartSupport int

// List of valid VertexRestartSupport values.
const (
	// the feature can be enabled and disabled and its state can be queried
	Queryable VertexRestartSupport = iota

	// the feature is always on and cannot be queried or changed
	FixedOn
)

func (v VertexRestartSupport) String() string {
	switch v {
	case Queryable:
		return "queryable"
	case FixedOn:
		return "fixed on"
	}
	return "unknown"
}

// Profile describes the fixed characteristics of a backend that the state
// cache and the shader layer need to know about.
type Profile struct {
	// the number of texture units and uniform buffer binding points that
	// the shadow state is seeded with. these are the minimums guaranteed by
	// the driver API and are never queried
	TextureUnits          int
	UniformBufferBindings int

	VertexRestart VertexRestartSupport

	// the stage types the backend can compile
	Stages []StageType
}

// Supports returns true if the stage type can be compiled with the profile.
func (p Profile) Supports(t StageType) bool {
	for _, s := range p.Stages {
		if s == t {
			return true
		}
	}
	return false
}

// DesktopProfile is the profile of an OpenGL 3.2 core context. Use
// DesktopProfileForVersion() for contexts of a later version.
var DesktopProfile = Profile{
	TextureUnits:          48,
	UniformBufferBindings: 36,
	VertexRestart:         Queryable,
	Stages:                []StageType{Vertex, Geometry, Fragment},
}

// DesktopProfileForVersion returns the desktop profile with the stage types
// available in a context of the given version. Tessellation stages need 4.0
// and compute stages need 4.3.
func DesktopProfileForVersion(major int, minor int) Profile {
	p := DesktopProfile
	p.Stages = append([]StageType(nil), DesktopProfile.Stages...)

	if major >= 4 {
		p.Stages = append(p.Stages, TessellationControl, TessellationEvaluation)
	}
	if major > 4 || (major == 4 && minor >= 3) {
		p.Stages = append(p.Stages, Compute)
	}

	return p
}

// WebGL2Profile is the profile of a WebGL2 context.
var WebGL2Profile = Profile{
	TextureUnits:          32,
	UniformBufferBindings: 24,
	VertexRestart:         FixedOn,
	Stages:                []StageType{Vertex, Fragment},
}

// Backend is the contract a graphics driver must satisfy to be used by the
// state cache and the shader layer.
type Backend interface {
	// Name returns a short identifier for the backend. It is used as the
	// tag for log entries.
	Name() string

	// Functions returns the driver entry points.
	Functions() gl.Functions

	Profile() Profile

	// CompileStage returns an error with the CompilationFailed pattern if the
	// source does not compile. The error carries the compiler's log
	// verbatim. An error with the UnsupportedStageType pattern is returned if
	// the backend cannot compile stages of that type.
	CompileStage(typ StageType, src string) (StageHandle, error)

	// DestroyStage must be called exactly once for every stage returned by
	// CompileStage().
	DestroyStage(StageHandle)

	// LinkProgram returns an error with the LinkFailed pattern if the stages
	// can not be linked. The stages can be destroyed once the program has
	// been linked.
	LinkProgram(stages ...StageHandle) (ProgramHandle, error)

	// DestroyProgram must be called exactly once for every program returned
	// by LinkProgram().
	DestroyProgram(ProgramHandle)

	// NewUniformSession is called by the shader layer when building the
	// uniform interface of a program. The program will be current.
	NewUniformSession(ProgramHandle) UniformSession

	// WriteUniform writes the value to the uniform location of the current
	// program. Writes to gl.NoLocation are discarded.
	WriteUniform(location int32, v UniformValue)
}

// UniformSession resolves uniform names to locations for a single program.
//
// Repeated resolution of the same name and type returns the same location.
// Array uniforms can be resolved by their plain name or by the name of their
// first element.
type UniformSession interface {
	Program() ProgramHandle

	// Resolve returns an error with the InactiveUniform pattern if the name
	// does not refer to an active uniform of the program. An error with the
	// UniformTypeMismatch pattern is returned if the uniform exists but is not
	// of the requested type.
	Resolve(name string, typ UniformType) (int32, error)

	// ResolveUnbound is the same as Resolve except that where Resolve() would
	// return an error ResolveUnbound() returns gl.NoLocation.
	ResolveUnbound(name string, typ UniformType) int32
}

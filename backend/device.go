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
	"github.com/jetsetilly/glstate/curated"
	"github.com/jetsetilly/glstate/gl"
)

// Device implements the Backend interface over any gl.Functions.
type Device struct {
	name    string
	fns     gl.Functions
	profile Profile
}

var _ Backend = (*Device)(nil)

// NewDevice is the preferred method of initialisation for the Device type.
// The name is used as the log tag for the backend.
func NewDevice(name string, fns gl.Functions, profile Profile) *Device {
	return &Device{
		name:    name,
		fns:     fns,
		profile: profile,
	}
}

// Name implements the Backend interface.
func (dev *Device) Name() string {
	return dev.name
}

// Functions implements the Backend interface.
func (dev *Device) Functions() gl.Functions {
	return dev.fns
}

// Profile implements the Backend interface.
func (dev *Device) Profile() Profile {
	return dev.profile
}

// CompileStage implements the Backend interface.
func (dev *Device) CompileStage(typ StageType, src string) (StageHandle, error) {
	if !dev.profile.Supports(typ) {
		return 0, curated.Errorf(UnsupportedStageType, typ)
	}

	handle := dev.fns.CreateShader(typ.ToGL())
	if handle == 0 {
		return 0, curated.Errorf(CompilationFailed, "cannot create shader object")
	}

	dev.fns.ShaderSource(handle, src)
	dev.fns.CompileShader(handle)

	if dev.fns.GetShaderi(handle, gl.COMPILE_STATUS) == gl.FALSE {
		log := dev.fns.GetShaderInfoLog(handle)
		dev.fns.DeleteShader(handle)
		return 0, curated.Errorf(CompilationFailed, log)
	}

	return StageHandle(handle), nil
}

// DestroyStage implements the Backend interface.
func (dev *Device) DestroyStage(stage StageHandle) {
	dev.fns.DeleteShader(uint32(stage))
}

// LinkProgram implements the Backend interface.
func (dev *Device) LinkProgram(stages ...StageHandle) (ProgramHandle, error) {
	handle := dev.fns.CreateProgram()
	if handle == 0 {
		return 0, curated.Errorf(LinkFailed, "cannot create program object")
	}

	for _, s := range stages {
		dev.fns.AttachShader(handle, uint32(s))
	}

	dev.fns.LinkProgram(handle)

	// now that the program has been linked the individual stages are no
	// longer required by it
	for _, s := range stages {
		dev.fns.DetachShader(handle, uint32(s))
	}

	if dev.fns.GetProgrami(handle, gl.LINK_STATUS) == gl.FALSE {
		log := dev.fns.GetProgramInfoLog(handle)
		dev.fns.DeleteProgram(handle)
		return 0, curated.Errorf(LinkFailed, log)
	}

	return ProgramHandle(handle), nil
}

// DestroyProgram implements the Backend interface.
func (dev *Device) DestroyProgram(program ProgramHandle) {
	dev.fns.DeleteProgram(uint32(program))
}

// NewUniformSession implements the Backend interface.
func (dev *Device) NewUniformSession(program ProgramHandle) UniformSession {
	return newSession(dev.fns, program)
}

// WriteUniform implements the Backend interface.
func (dev *Device) WriteUniform(location int32, v UniformValue) {
	if location == gl.NoLocation {
		return
	}

	switch v.Type {
	case Int, Bool, Sampler2D, Sampler3D, SamplerCube, Sampler2DArray:
		dev.fns.Uniform1iv(location, v.Ints)
	case IVec2, BVec2:
		dev.fns.Uniform2iv(location, v.Ints)
	case IVec3, BVec3:
		dev.fns.Uniform3iv(location, v.Ints)
	case IVec4, BVec4:
		dev.fns.Uniform4iv(location, v.Ints)
	case UInt:
		dev.fns.Uniform1uiv(location, v.UInts)
	case UIVec2:
		dev.fns.Uniform2uiv(location, v.UInts)
	case UIVec3:
		dev.fns.Uniform3uiv(location, v.UInts)
	case UIVec4:
		dev.fns.Uniform4uiv(location, v.UInts)
	case Float:
		dev.fns.Uniform1fv(location, v.Floats)
	case Vec2:
		dev.fns.Uniform2fv(location, v.Floats)
	case Vec3:
		dev.fns.Uniform3fv(location, v.Floats)
	case Vec4:
		dev.fns.Uniform4fv(location, v.Floats)
	case Mat2:
		dev.fns.UniformMatrix2fv(location, v.Floats)
	case Mat3:
		dev.fns.UniformMatrix3fv(location, v.Floats)
	case Mat4:
		dev.fns.UniformMatrix4fv(location, v.Floats)
	}
}

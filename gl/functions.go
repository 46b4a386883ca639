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

package gl

// Functions is the set of driver entry points used by glstate. Every method
// is a synchronous call into the driver and must only be called from the
// goroutine that owns the graphics context.
type Functions interface {
	// capabilities
	Enable(cap Enum)
	Disable(cap Enum)
	IsEnabled(cap Enum) bool

	// parameter queries
	GetInteger(pname Enum) int
	GetString(pname Enum) string

	// fixed function state
	BlendEquation(mode Enum)
	BlendFunc(sfactor, dfactor Enum)
	DepthFunc(fn Enum)
	FrontFace(mode Enum)
	CullFace(mode Enum)

	// object bindings
	ActiveTexture(texture Enum)
	BindTexture(target Enum, texture uint32)
	BindBuffer(target Enum, buffer uint32)
	BindBufferBase(target Enum, index uint32, buffer uint32)
	BindFramebuffer(target Enum, framebuffer uint32)
	BindVertexArray(array uint32)
	UseProgram(program uint32)

	// shader stages
	CreateShader(typ Enum) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	GetShaderi(shader uint32, pname Enum) int
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	// programs
	CreateProgram() uint32
	AttachShader(program uint32, shader uint32)
	DetachShader(program uint32, shader uint32)
	LinkProgram(program uint32)
	GetProgrami(program uint32, pname Enum) int
	GetProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)

	// uniform introspection. GetActiveUniform returns the name, the array
	// size and the type of the active uniform at index
	GetActiveUniform(program uint32, index int) (string, int, Enum)
	GetUniformLocation(program uint32, name string) int32

	// uniform writes. the length of v is a whole number of elements of the
	// uniform type. matrices are column major
	Uniform1iv(location int32, v []int32)
	Uniform2iv(location int32, v []int32)
	Uniform3iv(location int32, v []int32)
	Uniform4iv(location int32, v []int32)
	Uniform1uiv(location int32, v []uint32)
	Uniform2uiv(location int32, v []uint32)
	Uniform3uiv(location int32, v []uint32)
	Uniform4uiv(location int32, v []uint32)
	Uniform1fv(location int32, v []float32)
	Uniform2fv(location int32, v []float32)
	Uniform3fv(location int32, v []float32)
	Uniform4fv(location int32, v []float32)
	UniformMatrix2fv(location int32, v []float32)
	UniformMatrix3fv(location int32, v []float32)
	UniformMatrix4fv(location int32, v []float32)
}

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

//go:build !js

package opengl

import (
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	glstate "github.com/jetsetilly/glstate/gl"
)

// functions adapts the go-gl function table to the glstate.Functions
// interface. The go-gl function table is global so the type has no fields.
type functions struct{}

var _ glstate.Functions = functions{}

func (functions) Enable(cap glstate.Enum) {
	gl.Enable(cap)
}

func (functions) Disable(cap glstate.Enum) {
	gl.Disable(cap)
}

func (functions) IsEnabled(cap glstate.Enum) bool {
	return gl.IsEnabled(cap)
}

func (functions) GetInteger(pname glstate.Enum) int {
	var v int32
	gl.GetIntegerv(pname, &v)
	return int(v)
}

func (functions) GetString(pname glstate.Enum) string {
	return gl.GoStr(gl.GetString(pname))
}

func (functions) BlendEquation(mode glstate.Enum) {
	gl.BlendEquation(mode)
}

func (functions) BlendFunc(sfactor, dfactor glstate.Enum) {
	gl.BlendFunc(sfactor, dfactor)
}

func (functions) DepthFunc(fn glstate.Enum) {
	gl.DepthFunc(fn)
}

func (functions) FrontFace(mode glstate.Enum) {
	gl.FrontFace(mode)
}

func (functions) CullFace(mode glstate.Enum) {
	gl.CullFace(mode)
}

func (functions) ActiveTexture(texture glstate.Enum) {
	gl.ActiveTexture(texture)
}

func (functions) BindTexture(target glstate.Enum, texture uint32) {
	gl.BindTexture(target, texture)
}

func (functions) BindBuffer(target glstate.Enum, buffer uint32) {
	gl.BindBuffer(target, buffer)
}

func (functions) BindBufferBase(target glstate.Enum, index uint32, buffer uint32) {
	gl.BindBufferBase(target, index, buffer)
}

func (functions) BindFramebuffer(target glstate.Enum, framebuffer uint32) {
	gl.BindFramebuffer(target, framebuffer)
}

func (functions) BindVertexArray(array uint32) {
	gl.BindVertexArray(array)
}

func (functions) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (functions) CreateShader(typ glstate.Enum) uint32 {
	return gl.CreateShader(typ)
}

func (functions) ShaderSource(shader uint32, src string) {
	csource, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, csource, nil)
}

func (functions) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (functions) GetShaderi(shader uint32, pname glstate.Enum) int {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return int(v)
}

// infoLog reads a log of the length reported by the driver. the length
// includes the NULL character
func infoLog(length int32, read func(int32, *int32, *uint8)) string {
	if length <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(length+1))
	read(length, &length, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (functions) GetShaderInfoLog(shader uint32) string {
	var length int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
	return infoLog(length, func(size int32, length *int32, log *uint8) {
		gl.GetShaderInfoLog(shader, size, length, log)
	})
}

func (functions) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (functions) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (functions) AttachShader(program uint32, shader uint32) {
	gl.AttachShader(program, shader)
}

func (functions) DetachShader(program uint32, shader uint32) {
	gl.DetachShader(program, shader)
}

func (functions) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (functions) GetProgrami(program uint32, pname glstate.Enum) int {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return int(v)
}

func (functions) GetProgramInfoLog(program uint32) string {
	var length int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
	return infoLog(length, func(size int32, length *int32, log *uint8) {
		gl.GetProgramInfoLog(program, size, length, log)
	})
}

func (functions) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (functions) GetActiveUniform(program uint32, index int) (string, int, glstate.Enum) {
	var maxLength int32
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLength)
	if maxLength <= 0 {
		return "", 0, 0
	}

	name := make([]uint8, maxLength)
	var length int32
	var size int32
	var typ uint32
	gl.GetActiveUniform(program, uint32(index), maxLength, &length, &size, &typ, &name[0])

	return string(name[:length]), int(size), typ
}

func (functions) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// the go-gl uniform functions take a count of elements and a pointer to the
// first component. n is the number of components in each element
func count[T int32 | uint32 | float32](v []T, n int) (int32, *T) {
	if len(v) < n {
		return 0, nil
	}
	return int32(len(v) / n), &v[0]
}

func (functions) Uniform1iv(location int32, v []int32) {
	if c, p := count(v, 1); c > 0 {
		gl.Uniform1iv(location, c, p)
	}
}

func (functions) Uniform2iv(location int32, v []int32) {
	if c, p := count(v, 2); c > 0 {
		gl.Uniform2iv(location, c, p)
	}
}

func (functions) Uniform3iv(location int32, v []int32) {
	if c, p := count(v, 3); c > 0 {
		gl.Uniform3iv(location, c, p)
	}
}

func (functions) Uniform4iv(location int32, v []int32) {
	if c, p := count(v, 4); c > 0 {
		gl.Uniform4iv(location, c, p)
	}
}

func (functions) Uniform1uiv(location int32, v []uint32) {
	if c, p := count(v, 1); c > 0 {
		gl.Uniform1uiv(location, c, p)
	}
}

func (functions) Uniform2uiv(location int32, v []uint32) {
	if c, p := count(v, 2); c > 0 {
		gl.Uniform2uiv(location, c, p)
	}
}

func (functions) Uniform3uiv(location int32, v []uint32) {
	if c, p := count(v, 3); c > 0 {
		gl.Uniform3uiv(location, c, p)
	}
}

func (functions) Uniform4uiv(location int32, v []uint32) {
	if c, p := count(v, 4); c > 0 {
		gl.Uniform4uiv(location, c, p)
	}
}

func (functions) Uniform1fv(location int32, v []float32) {
	if c, p := count(v, 1); c > 0 {
		gl.Uniform1fv(location, c, p)
	}
}

func (functions) Uniform2fv(location int32, v []float32) {
	if c, p := count(v, 2); c > 0 {
		gl.Uniform2fv(location, c, p)
	}
}

func (functions) Uniform3fv(location int32, v []float32) {
	if c, p := count(v, 3); c > 0 {
		gl.Uniform3fv(location, c, p)
	}
}

func (functions) Uniform4fv(location int32, v []float32) {
	if c, p := count(v, 4); c > 0 {
		gl.Uniform4fv(location, c, p)
	}
}

func (functions) UniformMatrix2fv(location int32, v []float32) {
	if c, p := count(v, 4); c > 0 {
		gl.UniformMatrix2fv(location, c, false, p)
	}
}

func (functions) UniformMatrix3fv(location int32, v []float32) {
	if c, p := count(v, 9); c > 0 {
		gl.UniformMatrix3fv(location, c, false, p)
	}
}

func (functions) UniformMatrix4fv(location int32, v []float32) {
	if c, p := count(v, 16); c > 0 {
		gl.UniformMatrix4fv(location, c, false, p)
	}
}

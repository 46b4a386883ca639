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

//go:build js && wasm

package webgl2

import (
	"syscall/js"

	"github.com/jetsetilly/glstate/gl"
)

// functions implements gl.Functions over a WebGL2RenderingContext.
type functions struct {
	ctx js.Value

	objects   objectTable
	locations locationTable

	// cached references to the typed array constructors
	int32Array   js.Value
	uint32Array  js.Value
	float32Array js.Value
}

var _ gl.Functions = (*functions)(nil)

func newFunctions(ctx js.Value) *functions {
	return &functions{
		ctx:          ctx,
		objects:      newObjectTable(),
		locations:    newLocationTable(),
		int32Array:   js.Global().Get("Int32Array"),
		uint32Array:  js.Global().Get("Uint32Array"),
		float32Array: js.Global().Get("Float32Array"),
	}
}

// paramVal converts the value returned by getParameter() and similar
// functions into an integer. objects are converted into their ids.
func (f *functions) paramVal(v js.Value) int {
	switch v.Type() {
	case js.TypeBoolean:
		if v.Bool() {
			return gl.TRUE
		}
		return gl.FALSE
	case js.TypeNumber:
		return v.Int()
	case js.TypeObject:
		return int(f.objects.register(v))
	}
	return 0
}

func (f *functions) Enable(cap gl.Enum) {
	if cap == gl.PRIMITIVE_RESTART {
		return
	}
	f.ctx.Call("enable", int(cap))
}

func (f *functions) Disable(cap gl.Enum) {
	if cap == gl.PRIMITIVE_RESTART {
		return
	}
	f.ctx.Call("disable", int(cap))
}

func (f *functions) IsEnabled(cap gl.Enum) bool {
	// primitive restart is always on in WebGL2 and querying it is an error
	if cap == gl.PRIMITIVE_RESTART {
		return true
	}
	return f.ctx.Call("isEnabled", int(cap)).Bool()
}

func (f *functions) GetInteger(pname gl.Enum) int {
	return f.paramVal(f.ctx.Call("getParameter", int(pname)))
}

func (f *functions) GetString(pname gl.Enum) string {
	return f.ctx.Call("getParameter", int(pname)).String()
}

func (f *functions) BlendEquation(mode gl.Enum) {
	f.ctx.Call("blendEquation", int(mode))
}

func (f *functions) BlendFunc(sfactor, dfactor gl.Enum) {
	f.ctx.Call("blendFunc", int(sfactor), int(dfactor))
}

func (f *functions) DepthFunc(fn gl.Enum) {
	f.ctx.Call("depthFunc", int(fn))
}

func (f *functions) FrontFace(mode gl.Enum) {
	f.ctx.Call("frontFace", int(mode))
}

func (f *functions) CullFace(mode gl.Enum) {
	f.ctx.Call("cullFace", int(mode))
}

func (f *functions) ActiveTexture(texture gl.Enum) {
	f.ctx.Call("activeTexture", int(texture))
}

func (f *functions) BindTexture(target gl.Enum, texture uint32) {
	f.ctx.Call("bindTexture", int(target), f.objects.lookup(texture))
}

func (f *functions) BindBuffer(target gl.Enum, buffer uint32) {
	f.ctx.Call("bindBuffer", int(target), f.objects.lookup(buffer))
}

func (f *functions) BindBufferBase(target gl.Enum, index uint32, buffer uint32) {
	f.ctx.Call("bindBufferBase", int(target), int(index), f.objects.lookup(buffer))
}

func (f *functions) BindFramebuffer(target gl.Enum, framebuffer uint32) {
	f.ctx.Call("bindFramebuffer", int(target), f.objects.lookup(framebuffer))
}

func (f *functions) BindVertexArray(array uint32) {
	f.ctx.Call("bindVertexArray", f.objects.lookup(array))
}

func (f *functions) UseProgram(program uint32) {
	f.ctx.Call("useProgram", f.objects.lookup(program))
}

func (f *functions) CreateShader(typ gl.Enum) uint32 {
	return f.objects.register(f.ctx.Call("createShader", int(typ)))
}

func (f *functions) ShaderSource(shader uint32, src string) {
	f.ctx.Call("shaderSource", f.objects.lookup(shader), src)
}

func (f *functions) CompileShader(shader uint32) {
	f.ctx.Call("compileShader", f.objects.lookup(shader))
}

func (f *functions) GetShaderi(shader uint32, pname gl.Enum) int {
	return f.paramVal(f.ctx.Call("getShaderParameter", f.objects.lookup(shader), int(pname)))
}

func (f *functions) GetShaderInfoLog(shader uint32) string {
	return f.ctx.Call("getShaderInfoLog", f.objects.lookup(shader)).String()
}

func (f *functions) DeleteShader(shader uint32) {
	f.ctx.Call("deleteShader", f.objects.lookup(shader))
	f.objects.forget(shader)
}

func (f *functions) CreateProgram() uint32 {
	return f.objects.register(f.ctx.Call("createProgram"))
}

func (f *functions) AttachShader(program uint32, shader uint32) {
	f.ctx.Call("attachShader", f.objects.lookup(program), f.objects.lookup(shader))
}

func (f *functions) DetachShader(program uint32, shader uint32) {
	f.ctx.Call("detachShader", f.objects.lookup(program), f.objects.lookup(shader))
}

func (f *functions) LinkProgram(program uint32) {
	f.ctx.Call("linkProgram", f.objects.lookup(program))
	f.locations.forget(program)
}

func (f *functions) GetProgrami(program uint32, pname gl.Enum) int {
	return f.paramVal(f.ctx.Call("getProgramParameter", f.objects.lookup(program), int(pname)))
}

func (f *functions) GetProgramInfoLog(program uint32) string {
	return f.ctx.Call("getProgramInfoLog", f.objects.lookup(program)).String()
}

func (f *functions) DeleteProgram(program uint32) {
	f.ctx.Call("deleteProgram", f.objects.lookup(program))
	f.locations.forget(program)
	f.objects.forget(program)
}

func (f *functions) GetActiveUniform(program uint32, index int) (string, int, gl.Enum) {
	info := f.ctx.Call("getActiveUniform", f.objects.lookup(program), index)
	if info.IsNull() || info.IsUndefined() {
		return "", 0, 0
	}
	return info.Get("name").String(), info.Get("size").Int(), gl.Enum(info.Get("type").Int())
}

func (f *functions) GetUniformLocation(program uint32, name string) int32 {
	loc := f.ctx.Call("getUniformLocation", f.objects.lookup(program), name)
	return f.locations.register(program, name, loc)
}

func (f *functions) int32s(v []int32) js.Value {
	a := f.int32Array.New(len(v))
	for i := range v {
		a.SetIndex(i, v[i])
	}
	return a
}

func (f *functions) uint32s(v []uint32) js.Value {
	a := f.uint32Array.New(len(v))
	for i := range v {
		a.SetIndex(i, v[i])
	}
	return a
}

func (f *functions) float32s(v []float32) js.Value {
	a := f.float32Array.New(len(v))
	for i := range v {
		a.SetIndex(i, v[i])
	}
	return a
}

// uniform calls a uniform function of the context with the WebGL location
// and the data. writes to unknown locations are discarded
func (f *functions) uniform(fn string, location int32, data js.Value) {
	loc, ok := f.locations.lookup(location)
	if !ok {
		return
	}
	f.ctx.Call(fn, loc, data)
}

// uniformMatrix is the same as uniform() but with the transpose argument
// required by the matrix functions
func (f *functions) uniformMatrix(fn string, location int32, data js.Value) {
	loc, ok := f.locations.lookup(location)
	if !ok {
		return
	}
	f.ctx.Call(fn, loc, false, data)
}

func (f *functions) Uniform1iv(location int32, v []int32) {
	f.uniform("uniform1iv", location, f.int32s(v))
}

func (f *functions) Uniform2iv(location int32, v []int32) {
	f.uniform("uniform2iv", location, f.int32s(v))
}

func (f *functions) Uniform3iv(location int32, v []int32) {
	f.uniform("uniform3iv", location, f.int32s(v))
}

func (f *functions) Uniform4iv(location int32, v []int32) {
	f.uniform("uniform4iv", location, f.int32s(v))
}

func (f *functions) Uniform1uiv(location int32, v []uint32) {
	f.uniform("uniform1uiv", location, f.uint32s(v))
}

func (f *functions) Uniform2uiv(location int32, v []uint32) {
	f.uniform("uniform2uiv", location, f.uint32s(v))
}

func (f *functions) Uniform3uiv(location int32, v []uint32) {
	f.uniform("uniform3uiv", location, f.uint32s(v))
}

func (f *functions) Uniform4uiv(location int32, v []uint32) {
	f.uniform("uniform4uiv", location, f.uint32s(v))
}

func (f *functions) Uniform1fv(location int32, v []float32) {
	f.uniform("uniform1fv", location, f.float32s(v))
}

func (f *functions) Uniform2fv(location int32, v []float32) {
	f.uniform("uniform2fv", location, f.float32s(v))
}

func (f *functions) Uniform3fv(location int32, v []float32) {
	f.uniform("uniform3fv", location, f.float32s(v))
}

func (f *functions) Uniform4fv(location int32, v []float32) {
	f.uniform("uniform4fv", location, f.float32s(v))
}

func (f *functions) UniformMatrix2fv(location int32, v []float32) {
	f.uniformMatrix("uniformMatrix2fv", location, f.float32s(v))
}

func (f *functions) UniformMatrix3fv(location int32, v []float32) {
	f.uniformMatrix("uniformMatrix3fv", location, f.float32s(v))
}

func (f *functions) UniformMatrix4fv(location int32, v []float32) {
	f.uniformMatrix("uniformMatrix4fv", location, f.float32s(v))
}

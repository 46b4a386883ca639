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

package recorder

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/glstate/gl"
)

// Call is a single driver call as received by the Driver.
type Call struct {
	Name string
	Args []any

	// query calls do not change driver state
	Query bool
}

func (c Call) String() string {
	s := strings.Builder{}
	s.WriteString(c.Name)
	s.WriteRune('(')
	for i, a := range c.Args {
		if i > 0 {
			s.WriteString(", ")
		}
		switch a := a.(type) {
		case gl.Enum:
			s.WriteString(fmt.Sprintf("0x%04x", a))
		default:
			s.WriteString(fmt.Sprintf("%v", a))
		}
	}
	s.WriteRune(')')
	return s.String()
}

// Driver implements the gl.Functions interface.
type Driver struct {
	enabled  map[gl.Enum]bool
	integers map[gl.Enum]int
	strings  map[gl.Enum]string

	// object bound to each target of each texture unit
	textures map[int]map[gl.Enum]uint32

	// indexed uniform buffer bindings
	bufferBases map[uint32]uint32

	shaders  map[uint32]*shader
	programs map[uint32]*program

	// object ids are shared between shaders and programs
	nextObject uint32

	calls []Call
}

var _ gl.Functions = (*Driver)(nil)

// NewDriver is the preferred method of initialisation for the Driver type.
// The simulated server state is seeded with the defaults of a freshly
// created desktop OpenGL context.
func NewDriver() *Driver {
	drv := &Driver{
		enabled:     make(map[gl.Enum]bool),
		integers:    make(map[gl.Enum]int),
		strings:     make(map[gl.Enum]string),
		textures:    make(map[int]map[gl.Enum]uint32),
		bufferBases: make(map[uint32]uint32),
		shaders:     make(map[uint32]*shader),
		programs:    make(map[uint32]*program),
	}

	drv.integers[gl.BLEND_EQUATION_RGB] = int(gl.FUNC_ADD)
	drv.integers[gl.BLEND_EQUATION_ALPHA] = int(gl.FUNC_ADD)
	drv.integers[gl.BLEND_SRC_RGB] = int(gl.ONE)
	drv.integers[gl.BLEND_SRC_ALPHA] = int(gl.ONE)
	drv.integers[gl.BLEND_DST_RGB] = int(gl.ZERO)
	drv.integers[gl.BLEND_DST_ALPHA] = int(gl.ZERO)
	drv.integers[gl.DEPTH_FUNC] = int(gl.LESS)
	drv.integers[gl.FRONT_FACE] = int(gl.CCW)
	drv.integers[gl.CULL_FACE_MODE] = int(gl.BACK)
	drv.integers[gl.ACTIVE_TEXTURE] = int(gl.TEXTURE0)
	drv.integers[gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS] = 48
	drv.integers[gl.MAX_UNIFORM_BUFFER_BINDINGS] = 36

	drv.strings[gl.VENDOR] = "glstate"
	drv.strings[gl.RENDERER] = "recorder"
	drv.strings[gl.VERSION] = "3.2 recorder"
	drv.strings[gl.SHADING_LANGUAGE_VERSION] = "1.50"

	return drv
}

func (drv *Driver) record(name string, args ...any) {
	drv.calls = append(drv.calls, Call{Name: name, Args: args})
}

func (drv *Driver) query(name string, args ...any) {
	drv.calls = append(drv.calls, Call{Name: name, Args: args, Query: true})
}

// Calls returns a copy of the state mutating calls received since the
// Driver was created or since the last call to Reset().
func (drv *Driver) Calls() []Call {
	c := make([]Call, 0, len(drv.calls))
	for _, cl := range drv.calls {
		if !cl.Query {
			c = append(c, cl)
		}
	}
	return c
}

// Queries returns a copy of the query calls received since the Driver was
// created or since the last call to Reset().
func (drv *Driver) Queries() []Call {
	c := make([]Call, 0, len(drv.calls))
	for _, cl := range drv.calls {
		if cl.Query {
			c = append(c, cl)
		}
	}
	return c
}

// Count returns the number of calls, mutating or query, with the name.
func (drv *Driver) Count(name string) int {
	var n int
	for _, cl := range drv.calls {
		if cl.Name == name {
			n++
		}
	}
	return n
}

// Reset forgets all recorded calls. The simulated server state is not
// changed.
func (drv *Driver) Reset() {
	drv.calls = drv.calls[:0]
}

// SetInteger seeds the value returned by GetInteger() for pname. The value
// need not be a value that the driver would ever report. The call is not
// recorded.
func (drv *Driver) SetInteger(pname gl.Enum, v int) {
	drv.integers[pname] = v
}

// SetEnabled seeds the value returned by IsEnabled() for the capability. The
// call is not recorded.
func (drv *Driver) SetEnabled(cap gl.Enum, enabled bool) {
	drv.enabled[cap] = enabled
}

// SetString seeds the value returned by GetString() for pname. The call is
// not recorded.
func (drv *Driver) SetString(pname gl.Enum, s string) {
	drv.strings[pname] = s
}

// BoundTexture returns the object bound to the target of the texture unit.
func (drv *Driver) BoundTexture(unit int, target gl.Enum) uint32 {
	if t, ok := drv.textures[unit]; ok {
		return t[target]
	}
	return 0
}

// BoundBufferBase returns the buffer bound to the indexed uniform buffer
// binding point.
func (drv *Driver) BoundBufferBase(index uint32) uint32 {
	return drv.bufferBases[index]
}

// Enable implements the gl.Functions interface.
func (drv *Driver) Enable(cap gl.Enum) {
	drv.record("Enable", cap)
	drv.enabled[cap] = true
}

// Disable implements the gl.Functions interface.
func (drv *Driver) Disable(cap gl.Enum) {
	drv.record("Disable", cap)
	drv.enabled[cap] = false
}

// IsEnabled implements the gl.Functions interface.
func (drv *Driver) IsEnabled(cap gl.Enum) bool {
	drv.query("IsEnabled", cap)
	return drv.enabled[cap]
}

// GetInteger implements the gl.Functions interface.
func (drv *Driver) GetInteger(pname gl.Enum) int {
	drv.query("GetInteger", pname)
	return drv.integers[pname]
}

// GetString implements the gl.Functions interface.
func (drv *Driver) GetString(pname gl.Enum) string {
	drv.query("GetString", pname)
	return drv.strings[pname]
}

// BlendEquation implements the gl.Functions interface.
func (drv *Driver) BlendEquation(mode gl.Enum) {
	drv.record("BlendEquation", mode)
	drv.integers[gl.BLEND_EQUATION_RGB] = int(mode)
	drv.integers[gl.BLEND_EQUATION_ALPHA] = int(mode)
}

// BlendFunc implements the gl.Functions interface.
func (drv *Driver) BlendFunc(sfactor, dfactor gl.Enum) {
	drv.record("BlendFunc", sfactor, dfactor)
	drv.integers[gl.BLEND_SRC_RGB] = int(sfactor)
	drv.integers[gl.BLEND_SRC_ALPHA] = int(sfactor)
	drv.integers[gl.BLEND_DST_RGB] = int(dfactor)
	drv.integers[gl.BLEND_DST_ALPHA] = int(dfactor)
}

// DepthFunc implements the gl.Functions interface.
func (drv *Driver) DepthFunc(fn gl.Enum) {
	drv.record("DepthFunc", fn)
	drv.integers[gl.DEPTH_FUNC] = int(fn)
}

// FrontFace implements the gl.Functions interface.
func (drv *Driver) FrontFace(mode gl.Enum) {
	drv.record("FrontFace", mode)
	drv.integers[gl.FRONT_FACE] = int(mode)
}

// CullFace implements the gl.Functions interface.
func (drv *Driver) CullFace(mode gl.Enum) {
	drv.record("CullFace", mode)
	drv.integers[gl.CULL_FACE_MODE] = int(mode)
}

// ActiveTexture implements the gl.Functions interface.
func (drv *Driver) ActiveTexture(texture gl.Enum) {
	drv.record("ActiveTexture", texture)
	drv.integers[gl.ACTIVE_TEXTURE] = int(texture)
}

// BindTexture implements the gl.Functions interface. The texture is bound to
// the target of the active texture unit.
func (drv *Driver) BindTexture(target gl.Enum, texture uint32) {
	drv.record("BindTexture", target, texture)
	unit := drv.integers[gl.ACTIVE_TEXTURE] - int(gl.TEXTURE0)
	if _, ok := drv.textures[unit]; !ok {
		drv.textures[unit] = make(map[gl.Enum]uint32)
	}
	drv.textures[unit][target] = texture
}

// BindBuffer implements the gl.Functions interface.
func (drv *Driver) BindBuffer(target gl.Enum, buffer uint32) {
	drv.record("BindBuffer", target, buffer)
	switch target {
	case gl.ARRAY_BUFFER:
		drv.integers[gl.ARRAY_BUFFER_BINDING] = int(buffer)
	case gl.ELEMENT_ARRAY_BUFFER:
		drv.integers[gl.ELEMENT_ARRAY_BUFFER_BINDING] = int(buffer)
	case gl.UNIFORM_BUFFER:
		drv.integers[gl.UNIFORM_BUFFER_BINDING] = int(buffer)
	}
}

// BindBufferBase implements the gl.Functions interface. As with the real
// driver, the generic binding point of the target is also changed.
func (drv *Driver) BindBufferBase(target gl.Enum, index uint32, buffer uint32) {
	drv.record("BindBufferBase", target, index, buffer)
	if target == gl.UNIFORM_BUFFER {
		drv.bufferBases[index] = buffer
		drv.integers[gl.UNIFORM_BUFFER_BINDING] = int(buffer)
	}
}

// BindFramebuffer implements the gl.Functions interface.
func (drv *Driver) BindFramebuffer(target gl.Enum, framebuffer uint32) {
	drv.record("BindFramebuffer", target, framebuffer)
	switch target {
	case gl.FRAMEBUFFER, gl.DRAW_FRAMEBUFFER:
		drv.integers[gl.DRAW_FRAMEBUFFER_BINDING] = int(framebuffer)
	}
}

// BindVertexArray implements the gl.Functions interface.
func (drv *Driver) BindVertexArray(array uint32) {
	drv.record("BindVertexArray", array)
	drv.integers[gl.VERTEX_ARRAY_BINDING] = int(array)
}

// UseProgram implements the gl.Functions interface.
func (drv *Driver) UseProgram(program uint32) {
	drv.record("UseProgram", program)
	drv.integers[gl.CURRENT_PROGRAM] = int(program)
}

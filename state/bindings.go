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

package state

import (
	"github.com/jetsetilly/glstate/assert"
	"github.com/jetsetilly/glstate/curated"
	"github.com/jetsetilly/glstate/gl"
)

// Bind specifies whether a binding can be skipped when the shadow already
// holds the requested object.
type Bind int

// List of valid Bind values.
const (
	// the driver is only called if the object is not already bound
	Cached Bind = iota

	// the driver is always called
	Forced
)

// TextureUnit returns the number of the active texture unit.
func (st *PipelineState) TextureUnit() uint32 {
	return st.shadow.TextureUnit
}

// SetTextureUnit changes the active texture unit. The unit is a number
// starting at zero and not the TEXTURE0 based driver value.
//
// Units of MaxTextureUnits or higher give an error with the
// UnknownTextureUnit pattern, carrying the TEXTURE0 based value. The driver
// is not called.
func (st *PipelineState) SetTextureUnit(unit uint32) error {
	assert.SameGoRoutine(st.owner)
	if unit >= MaxTextureUnits {
		return curated.Errorf(UnknownTextureUnit, int(gl.TEXTURE0)+int(unit))
	}
	st.shadow.growTextures(unit)
	if st.elide(st.shadow.TextureUnit == unit) {
		return nil
	}
	st.fns.ActiveTexture(gl.TEXTURE0 + gl.Enum(unit))
	st.shadow.TextureUnit = unit
	return nil
}

// BoundTextures returns a copy of the textures bound to each texture unit.
// The length of the slice is at least the number of texture units in the
// backend's profile.
func (st *PipelineState) BoundTextures() []BoundTexture {
	t := make([]BoundTexture, len(st.shadow.BoundTextures))
	copy(t, st.shadow.BoundTextures)
	return t
}

// BindTexture binds the texture to the target of the active texture unit.
func (st *PipelineState) BindTexture(target TextureTarget, id uint32) {
	assert.SameGoRoutine(st.owner)
	unit := st.shadow.TextureUnit
	st.shadow.growTextures(unit)

	bt := BoundTexture{Target: target, Object: id}
	if st.elide(st.shadow.BoundTextures[unit] == bt) {
		return
	}
	st.fns.BindTexture(target.toGL(), id)
	st.shadow.BoundTextures[unit] = bt
}

// BoundUniformBuffers returns a copy of the buffers bound to each uniform
// buffer binding point. The length of the slice is at least the number of
// binding points in the backend's profile.
func (st *PipelineState) BoundUniformBuffers() []uint32 {
	u := make([]uint32, len(st.shadow.BoundUniformBuffers))
	copy(u, st.shadow.BoundUniformBuffers)
	return u
}

// BindUniformBuffer binds the buffer to the uniform buffer binding point.
// Binding points of MaxUniformBufferBindings or higher give an error with the
// UnknownUniformBufferBinding pattern and the driver is not called.
func (st *PipelineState) BindUniformBuffer(binding uint32, id uint32) error {
	assert.SameGoRoutine(st.owner)
	if binding >= MaxUniformBufferBindings {
		return curated.Errorf(UnknownUniformBufferBinding, binding)
	}
	st.shadow.growUniformBuffers(binding)
	if st.elide(st.shadow.BoundUniformBuffers[binding] == id) {
		return nil
	}
	st.fns.BindBufferBase(gl.UNIFORM_BUFFER, binding, id)
	st.shadow.BoundUniformBuffers[binding] = id
	return nil
}

// ArrayBuffer returns the buffer bound to the array buffer target.
func (st *PipelineState) ArrayBuffer() uint32 {
	return st.shadow.ArrayBuffer
}

// BindArrayBuffer binds the buffer to the array buffer target.
func (st *PipelineState) BindArrayBuffer(id uint32, bind Bind) {
	assert.SameGoRoutine(st.owner)
	if bind == Cached && st.elide(st.shadow.ArrayBuffer == id) {
		return
	}
	st.fns.BindBuffer(gl.ARRAY_BUFFER, id)
	st.shadow.ArrayBuffer = id
}

// ElementArrayBuffer returns the buffer bound to the element array buffer
// target.
func (st *PipelineState) ElementArrayBuffer() uint32 {
	return st.shadow.ElementArrayBuffer
}

// BindElementArrayBuffer binds the buffer to the element array buffer
// target.
//
// The driver stores the element array buffer binding with the vertex array
// so binding a vertex array also changes it. Use the Forced bind when the
// vertex array has changed since the element array buffer was last bound.
func (st *PipelineState) BindElementArrayBuffer(id uint32, bind Bind) {
	assert.SameGoRoutine(st.owner)
	if bind == Cached && st.elide(st.shadow.ElementArrayBuffer == id) {
		return
	}
	st.fns.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, id)
	st.shadow.ElementArrayBuffer = id
}

// DrawFramebuffer returns the framebuffer bound for drawing.
func (st *PipelineState) DrawFramebuffer() uint32 {
	return st.shadow.DrawFramebuffer
}

// BindDrawFramebuffer binds the framebuffer. Zero binds the default
// framebuffer.
func (st *PipelineState) BindDrawFramebuffer(id uint32) {
	assert.SameGoRoutine(st.owner)
	if st.elide(st.shadow.DrawFramebuffer == id) {
		return
	}
	st.fns.BindFramebuffer(gl.FRAMEBUFFER, id)
	st.shadow.DrawFramebuffer = id
}

// VertexArray returns the bound vertex array.
func (st *PipelineState) VertexArray() uint32 {
	return st.shadow.VertexArray
}

// BindVertexArray binds the vertex array.
func (st *PipelineState) BindVertexArray(id uint32) {
	assert.SameGoRoutine(st.owner)
	if st.elide(st.shadow.VertexArray == id) {
		return
	}
	st.fns.BindVertexArray(id)
	st.shadow.VertexArray = id
}

// CurrentProgram returns the program in use.
func (st *PipelineState) CurrentProgram() uint32 {
	return st.shadow.CurrentProgram
}

// UseProgram makes the program current.
func (st *PipelineState) UseProgram(id uint32) {
	assert.SameGoRoutine(st.owner)
	if st.elide(st.shadow.CurrentProgram == id) {
		return
	}
	st.fns.UseProgram(id)
	st.shadow.CurrentProgram = id
}

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
)

// The driver unbinds an object when it is deleted. The Unbind functions
// bring the shadow into line without calling the driver. They should be
// called after the object has been deleted.

// UnbindBuffer clears every buffer binding that refers to the buffer.
func (st *PipelineState) UnbindBuffer(id uint32) {
	assert.SameGoRoutine(st.owner)
	if id == 0 {
		return
	}
	if st.shadow.ArrayBuffer == id {
		st.shadow.ArrayBuffer = 0
	}
	if st.shadow.ElementArrayBuffer == id {
		st.shadow.ElementArrayBuffer = 0
	}
	for i := range st.shadow.BoundUniformBuffers {
		if st.shadow.BoundUniformBuffers[i] == id {
			st.shadow.BoundUniformBuffers[i] = 0
		}
	}
}

// UnbindTexture clears every texture unit that refers to the texture.
func (st *PipelineState) UnbindTexture(id uint32) {
	assert.SameGoRoutine(st.owner)
	if id == 0 {
		return
	}
	for i := range st.shadow.BoundTextures {
		if st.shadow.BoundTextures[i].Object == id {
			st.shadow.BoundTextures[i].Object = 0
		}
	}
}

// UnbindVertexArray clears the vertex array binding if it refers to the
// vertex array.
func (st *PipelineState) UnbindVertexArray(id uint32) {
	assert.SameGoRoutine(st.owner)
	if id != 0 && st.shadow.VertexArray == id {
		st.shadow.VertexArray = 0
	}
}

// UnbindFramebuffer clears the framebuffer binding if it refers to the
// framebuffer.
func (st *PipelineState) UnbindFramebuffer(id uint32) {
	assert.SameGoRoutine(st.owner)
	if id != 0 && st.shadow.DrawFramebuffer == id {
		st.shadow.DrawFramebuffer = 0
	}
}

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
	"fmt"
	"io"
	"strings"

	"github.com/bradleyjkemp/memviz"
)

// Snapshot is a copy of every field of the shadow state.
type Snapshot struct {
	Blending      BlendingState
	DepthTest     DepthTest
	FaceCulling   FaceCulling
	VertexRestart VertexRestart

	// texture unit number. not the TEXTURE0 based driver value
	TextureUnit   uint32
	BoundTextures []BoundTexture

	BoundUniformBuffers []uint32

	ArrayBuffer        uint32
	ElementArrayBuffer uint32
	DrawFramebuffer    uint32
	VertexArray        uint32
	CurrentProgram     uint32
}

// make sure the unit is within the bound textures slice
func (s *Snapshot) growTextures(unit uint32) {
	if int(unit) >= len(s.BoundTextures) {
		s.BoundTextures = append(s.BoundTextures, make([]BoundTexture, int(unit)+1-len(s.BoundTextures))...)
	}
}

// make sure the binding is within the bound uniform buffers slice
func (s *Snapshot) growUniformBuffers(binding uint32) {
	if int(binding) >= len(s.BoundUniformBuffers) {
		s.BoundUniformBuffers = append(s.BoundUniformBuffers, make([]uint32, int(binding)+1-len(s.BoundUniformBuffers))...)
	}
}

func (s Snapshot) clone() Snapshot {
	c := s
	c.BoundTextures = make([]BoundTexture, len(s.BoundTextures))
	copy(c.BoundTextures, s.BoundTextures)
	c.BoundUniformBuffers = make([]uint32, len(s.BoundUniformBuffers))
	copy(c.BoundUniformBuffers, s.BoundUniformBuffers)
	return c
}

func (s Snapshot) String() string {
	b := strings.Builder{}

	b.WriteString(fmt.Sprintf("blending: %v %v (%v, %v)\n", s.Blending.Enabled, s.Blending.Equation, s.Blending.Src, s.Blending.Dst))
	b.WriteString(fmt.Sprintf("depth test: %v %v\n", s.DepthTest.Enabled, s.DepthTest.Comparison))
	b.WriteString(fmt.Sprintf("face culling: %v %v %v\n", s.FaceCulling.Enabled, s.FaceCulling.Order, s.FaceCulling.Mode))
	b.WriteString(fmt.Sprintf("vertex restart: %v\n", s.VertexRestart))
	b.WriteString(fmt.Sprintf("texture unit: %d\n", s.TextureUnit))

	// only bound texture units and uniform buffers are listed
	for i, t := range s.BoundTextures {
		if t.Object != 0 {
			b.WriteString(fmt.Sprintf("  texture %d: %v %d\n", i, t.Target, t.Object))
		}
	}
	for i, u := range s.BoundUniformBuffers {
		if u != 0 {
			b.WriteString(fmt.Sprintf("  uniform buffer %d: %d\n", i, u))
		}
	}

	b.WriteString(fmt.Sprintf("array buffer: %d\n", s.ArrayBuffer))
	b.WriteString(fmt.Sprintf("element array buffer: %d\n", s.ElementArrayBuffer))
	b.WriteString(fmt.Sprintf("draw framebuffer: %d\n", s.DrawFramebuffer))
	b.WriteString(fmt.Sprintf("vertex array: %d\n", s.VertexArray))
	b.WriteString(fmt.Sprintf("current program: %d", s.CurrentProgram))

	return b.String()
}

// Snapshot returns a copy of the shadow state.
func (st *PipelineState) Snapshot() Snapshot {
	return st.shadow.clone()
}

// WriteGraph writes a graphviz description of the shadow state to w.
func (st *PipelineState) WriteGraph(w io.Writer) {
	s := st.shadow.clone()
	memviz.Map(w, &s)
}

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
	"github.com/jetsetilly/glstate/backend"
	"github.com/jetsetilly/glstate/curated"
	"github.com/jetsetilly/glstate/gl"
)

// Blending returns the blending state.
func (st *PipelineState) Blending() BlendingState {
	return st.shadow.Blending
}

// SetBlending sets every part of the blending state. Each part is compared
// separately and only the parts that differ result in a driver call.
func (st *PipelineState) SetBlending(b BlendingState) {
	st.SetBlendingEnabled(b.Enabled)
	st.SetBlendingEquation(b.Equation)
	st.SetBlendingFactors(b.Src, b.Dst)
}

// SetBlendingEnabled enables or disables blending.
func (st *PipelineState) SetBlendingEnabled(enabled bool) {
	assert.SameGoRoutine(st.owner)
	if st.elide(st.shadow.Blending.Enabled == enabled) {
		return
	}
	st.enable(gl.BLEND, enabled)
	st.shadow.Blending.Enabled = enabled
}

// SetBlendingEquation sets the blending equation.
func (st *PipelineState) SetBlendingEquation(e Equation) {
	assert.SameGoRoutine(st.owner)
	if st.elide(st.shadow.Blending.Equation == e) {
		return
	}
	st.fns.BlendEquation(e.toGL())
	st.shadow.Blending.Equation = e
}

// SetBlendingFactors sets the source and destination blending factors.
func (st *PipelineState) SetBlendingFactors(src Factor, dst Factor) {
	assert.SameGoRoutine(st.owner)
	if st.elide(st.shadow.Blending.Src == src && st.shadow.Blending.Dst == dst) {
		return
	}
	st.fns.BlendFunc(src.toGL(), dst.toGL())
	st.shadow.Blending.Src = src
	st.shadow.Blending.Dst = dst
}

// DepthTest returns the depth test state.
func (st *PipelineState) DepthTest() DepthTest {
	return st.shadow.DepthTest
}

// SetDepthTest enables or disables the depth test.
func (st *PipelineState) SetDepthTest(enabled bool) {
	assert.SameGoRoutine(st.owner)
	if st.elide(st.shadow.DepthTest.Enabled == enabled) {
		return
	}
	st.enable(gl.DEPTH_TEST, enabled)
	st.shadow.DepthTest.Enabled = enabled
}

// SetDepthComparison sets the depth comparison function.
func (st *PipelineState) SetDepthComparison(c Comparison) {
	assert.SameGoRoutine(st.owner)
	if st.elide(st.shadow.DepthTest.Comparison == c) {
		return
	}
	st.fns.DepthFunc(c.toGL())
	st.shadow.DepthTest.Comparison = c
}

// FaceCulling returns the face culling state.
func (st *PipelineState) FaceCulling() FaceCulling {
	return st.shadow.FaceCulling
}

// SetFaceCulling sets every part of the face culling state. Each part is
// compared separately.
func (st *PipelineState) SetFaceCulling(f FaceCulling) {
	st.SetFaceCullingEnabled(f.Enabled)
	st.SetFaceCullingOrder(f.Order)
	st.SetFaceCullingMode(f.Mode)
}

// SetFaceCullingEnabled enables or disables face culling.
func (st *PipelineState) SetFaceCullingEnabled(enabled bool) {
	assert.SameGoRoutine(st.owner)
	if st.elide(st.shadow.FaceCulling.Enabled == enabled) {
		return
	}
	st.enable(gl.CULL_FACE, enabled)
	st.shadow.FaceCulling.Enabled = enabled
}

// SetFaceCullingOrder sets the winding order of front facing primitives.
func (st *PipelineState) SetFaceCullingOrder(o FaceOrder) {
	assert.SameGoRoutine(st.owner)
	if st.elide(st.shadow.FaceCulling.Order == o) {
		return
	}
	st.fns.FrontFace(o.toGL())
	st.shadow.FaceCulling.Order = o
}

// SetFaceCullingMode sets which faces are culled.
func (st *PipelineState) SetFaceCullingMode(m FaceMode) {
	assert.SameGoRoutine(st.owner)
	if st.elide(st.shadow.FaceCulling.Mode == m) {
		return
	}
	st.fns.CullFace(m.toGL())
	st.shadow.FaceCulling.Mode = m
}

// VertexRestart returns the state of primitive restart.
func (st *PipelineState) VertexRestart() VertexRestart {
	return st.shadow.VertexRestart
}

// SetVertexRestart turns primitive restart on or off. If the backend's
// profile says that vertex restart is fixed then setting it to On does
// nothing and setting it to Off returns an error with the VertexRestartFixed
// pattern.
func (st *PipelineState) SetVertexRestart(v VertexRestart) error {
	assert.SameGoRoutine(st.owner)

	if st.profile.VertexRestart == backend.FixedOn {
		if v == On {
			return nil
		}
		return curated.Errorf(VertexRestartFixed)
	}

	if st.elide(st.shadow.VertexRestart == v) {
		return nil
	}
	st.enable(gl.PRIMITIVE_RESTART, v == On)
	st.shadow.VertexRestart = v

	return nil
}

func (st *PipelineState) enable(cap gl.Enum, enabled bool) {
	if enabled {
		st.fns.Enable(cap)
	} else {
		st.fns.Disable(cap)
	}
}

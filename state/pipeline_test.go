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

package state_test

import (
	"testing"

	"github.com/jetsetilly/glstate/backend"
	"github.com/jetsetilly/glstate/curated"
	"github.com/jetsetilly/glstate/gl"
	"github.com/jetsetilly/glstate/state"
	"github.com/jetsetilly/glstate/test"
)

// every setter with a value that differs from the default shadow
var setters = []struct {
	name string
	set  func(st *state.PipelineState)
}{
	{"BlendingEnabled", func(st *state.PipelineState) { st.SetBlendingEnabled(true) }},
	{"BlendingEquation", func(st *state.PipelineState) { st.SetBlendingEquation(state.Max) }},
	{"BlendingFactors", func(st *state.PipelineState) { st.SetBlendingFactors(state.SrcAlpha, state.DstAlpha) }},
	{"DepthTest", func(st *state.PipelineState) { st.SetDepthTest(true) }},
	{"DepthComparison", func(st *state.PipelineState) { st.SetDepthComparison(state.GreaterOrEqual) }},
	{"FaceCullingEnabled", func(st *state.PipelineState) { st.SetFaceCullingEnabled(true) }},
	{"FaceCullingOrder", func(st *state.PipelineState) { st.SetFaceCullingOrder(state.CW) }},
	{"FaceCullingMode", func(st *state.PipelineState) { st.SetFaceCullingMode(state.Front) }},
	{"VertexRestart", func(st *state.PipelineState) { _ = st.SetVertexRestart(state.On) }},
	{"TextureUnit", func(st *state.PipelineState) { st.SetTextureUnit(3) }},
	{"BindTexture", func(st *state.PipelineState) { st.BindTexture(state.Texture3D, 10) }},
	{"BindUniformBuffer", func(st *state.PipelineState) { st.BindUniformBuffer(2, 11) }},
	{"BindArrayBuffer", func(st *state.PipelineState) { st.BindArrayBuffer(12, state.Cached) }},
	{"BindElementArrayBuffer", func(st *state.PipelineState) { st.BindElementArrayBuffer(13, state.Cached) }},
	{"BindDrawFramebuffer", func(st *state.PipelineState) { st.BindDrawFramebuffer(14) }},
	{"BindVertexArray", func(st *state.PipelineState) { st.BindVertexArray(15) }},
	{"UseProgram", func(st *state.PipelineState) { st.UseProgram(16) }},
}

func TestElision(t *testing.T) {
	for _, s := range setters {
		b, drv := newBackend(backend.DesktopProfile)
		st, err := state.New(b, nil)
		test.DemandSuccess(t, err)

		s.set(st)
		test.ExpectEquality(t, len(drv.Calls()), 1, s.name)
		s.set(st)
		test.ExpectEquality(t, len(drv.Calls()), 1, s.name)

		st.Release()
	}
}

func TestNoElision(t *testing.T) {
	p, err := state.NewPreferences()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.Elide.Set(false))

	for _, s := range setters {
		b, drv := newBackend(backend.DesktopProfile)
		st, err := state.New(b, p)
		test.DemandSuccess(t, err)

		s.set(st)
		s.set(st)
		test.ExpectEquality(t, len(drv.Calls()), 2, s.name)

		st.Release()
	}
}

func TestShadowFollowsSetters(t *testing.T) {
	b, drv := newBackend(backend.DesktopProfile)
	st, err := state.New(b, nil)
	test.DemandSuccess(t, err)
	defer st.Release()

	for _, s := range setters {
		s.set(st)
	}

	// a new bootstrap from the driver agrees with the shadow
	before := st.Snapshot()
	test.DemandSuccess(t, st.Resync())
	after := st.Snapshot()

	test.ExpectEquality(t, after.Blending, before.Blending)
	test.ExpectEquality(t, after.FaceCulling, before.FaceCulling)
	test.ExpectEquality(t, after.VertexRestart, before.VertexRestart)
	test.ExpectEquality(t, after.TextureUnit, before.TextureUnit)
	test.ExpectEquality(t, after.ArrayBuffer, before.ArrayBuffer)
	test.ExpectEquality(t, after.ElementArrayBuffer, before.ElementArrayBuffer)
	test.ExpectEquality(t, after.DrawFramebuffer, before.DrawFramebuffer)
	test.ExpectEquality(t, after.VertexArray, before.VertexArray)
	test.ExpectEquality(t, after.CurrentProgram, before.CurrentProgram)
	test.ExpectEquality(t, after.DepthTest.Enabled, before.DepthTest.Enabled)

	// the driver state matches the parts of the shadow that are not queried
	test.ExpectEquality(t, drv.GetInteger(gl.DEPTH_FUNC), int(gl.GEQUAL))
	test.ExpectEquality(t, drv.BoundTexture(3, gl.TEXTURE_3D), uint32(10))
	test.ExpectEquality(t, drv.BoundBufferBase(2), uint32(11))
}

func TestBlendingScenario(t *testing.T) {
	b, drv := newBackend(backend.DesktopProfile)
	drv.SetInteger(gl.BLEND_EQUATION_RGB, int(gl.MAX))
	drv.SetInteger(gl.BLEND_SRC_RGB, int(gl.SRC_ALPHA))
	drv.SetInteger(gl.BLEND_DST_RGB, int(gl.DST_ALPHA))

	st, err := state.FromLiveContext(b, nil)
	test.DemandSuccess(t, err)
	defer st.Release()

	blending := state.BlendingState{
		Enabled:  true,
		Equation: state.Additive,
		Src:      state.One,
		Dst:      state.Zero,
	}

	st.SetBlending(blending)
	st.SetBlending(blending)

	test.ExpectEquality(t, drv.Count("Enable"), 1)
	test.ExpectEquality(t, drv.Count("BlendEquation"), 1)
	test.ExpectEquality(t, drv.Count("BlendFunc"), 1)
	test.ExpectEquality(t, st.Blending(), blending)

	// only the part that differs reaches the driver
	drv.Reset()
	blending.Dst = state.SrcColor
	st.SetBlending(blending)
	calls := drv.Calls()
	test.DemandEquality(t, len(calls), 1)
	test.ExpectEquality(t, calls[0].Name, "BlendFunc")
}

func TestForcedBind(t *testing.T) {
	b, drv := newBackend(backend.DesktopProfile)
	st, err := state.New(b, nil)
	test.DemandSuccess(t, err)
	defer st.Release()

	st.BindArrayBuffer(5, state.Cached)
	st.BindArrayBuffer(5, state.Forced)
	st.BindArrayBuffer(5, state.Cached)
	st.BindElementArrayBuffer(6, state.Forced)
	st.BindElementArrayBuffer(6, state.Forced)

	test.ExpectEquality(t, drv.Count("BindBuffer"), 4)
	test.ExpectEquality(t, st.ArrayBuffer(), uint32(5))
	test.ExpectEquality(t, st.ElementArrayBuffer(), uint32(6))
}

func TestTextureUnits(t *testing.T) {
	b, drv := newBackend(backend.DesktopProfile)
	st, err := state.New(b, nil)
	test.DemandSuccess(t, err)
	defer st.Release()

	// texture units are independent of each other
	st.SetTextureUnit(1)
	st.BindTexture(state.Texture2D, 20)
	st.SetTextureUnit(2)
	st.BindTexture(state.Texture2D, 20)
	test.ExpectEquality(t, drv.Count("BindTexture"), 2)

	st.SetTextureUnit(1)
	st.BindTexture(state.Texture2D, 20)
	test.ExpectEquality(t, drv.Count("BindTexture"), 2)

	// the same object with a different target is a different binding
	st.BindTexture(state.TextureCubeMap, 20)
	test.ExpectEquality(t, drv.Count("BindTexture"), 3)

	textures := st.BoundTextures()
	test.ExpectEquality(t, textures[1], state.BoundTexture{Target: state.TextureCubeMap, Object: 20})
	test.ExpectEquality(t, textures[2], state.BoundTexture{Target: state.Texture2D, Object: 20})

	// the returned slice is a copy
	textures[1].Object = 99
	test.ExpectEquality(t, st.BoundTextures()[1].Object, uint32(20))
}

func TestGrowth(t *testing.T) {
	b, drv := newBackend(backend.DesktopProfile)
	st, err := state.New(b, nil)
	test.DemandSuccess(t, err)
	defer st.Release()

	st.SetTextureUnit(60)
	test.ExpectEquality(t, len(st.BoundTextures()), 61)
	st.BindTexture(state.Texture2D, 1)
	test.ExpectEquality(t, drv.BoundTexture(60, gl.TEXTURE_2D), uint32(1))

	st.BindUniformBuffer(40, 2)
	test.ExpectEquality(t, len(st.BoundUniformBuffers()), 41)
	test.ExpectEquality(t, st.BoundUniformBuffers()[40], uint32(2))

	// growing does not disturb the existing slots
	test.ExpectEquality(t, st.BoundUniformBuffers()[0], uint32(0))
	st.BindUniformBuffer(40, 2)
	test.ExpectEquality(t, drv.Count("BindBufferBase"), 1)
}

func TestGrowthLimit(t *testing.T) {
	b, drv := newBackend(backend.DesktopProfile)
	st, err := state.New(b, nil)
	test.DemandSuccess(t, err)
	defer st.Release()

	// the highest unit is accepted
	test.ExpectSuccess(t, st.SetTextureUnit(state.MaxTextureUnits-1))
	test.ExpectEquality(t, len(st.BoundTextures()), state.MaxTextureUnits)
	test.ExpectEquality(t, drv.Count("ActiveTexture"), 1)

	err = st.SetTextureUnit(state.MaxTextureUnits)
	test.ExpectSuccess(t, curated.Is(err, state.UnknownTextureUnit))
	test.ExpectEquality[any](t, curated.Values(err)[0], int(gl.TEXTURE0)+state.MaxTextureUnits)

	err = st.SetTextureUnit(0x7fffffff)
	test.ExpectSuccess(t, curated.Is(err, state.UnknownTextureUnit))

	// nothing changed after the rejections
	test.ExpectEquality(t, st.TextureUnit(), uint32(state.MaxTextureUnits-1))
	test.ExpectEquality(t, len(st.BoundTextures()), state.MaxTextureUnits)
	test.ExpectEquality(t, drv.Count("ActiveTexture"), 1)

	test.ExpectSuccess(t, st.BindUniformBuffer(state.MaxUniformBufferBindings-1, 3))
	err = st.BindUniformBuffer(state.MaxUniformBufferBindings, 3)
	test.ExpectSuccess(t, curated.Is(err, state.UnknownUniformBufferBinding))
	test.ExpectEquality(t, len(st.BoundUniformBuffers()), state.MaxUniformBufferBindings)
	test.ExpectEquality(t, drv.Count("BindBufferBase"), 1)
}

func TestFixedVertexRestart(t *testing.T) {
	b, drv := newBackend(backend.WebGL2Profile)
	drv.SetEnabled(gl.PRIMITIVE_RESTART, false)

	st, err := state.FromLiveContext(b, nil)
	test.DemandSuccess(t, err)
	defer st.Release()

	// the capability is never queried
	for _, q := range drv.Queries() {
		if q.Name == "IsEnabled" {
			test.ExpectInequality[any](t, q.Args[0], any(gl.PRIMITIVE_RESTART))
		}
	}

	test.ExpectEquality(t, st.VertexRestart(), state.On)
	test.ExpectSuccess(t, st.SetVertexRestart(state.On))
	err = st.SetVertexRestart(state.Off)
	test.ExpectSuccess(t, curated.Is(err, state.VertexRestartFixed))
	test.ExpectEquality(t, st.VertexRestart(), state.On)
	test.ExpectEquality(t, len(drv.Calls()), 0)

	test.ExpectEquality(t, len(st.BoundTextures()), 32)
	test.ExpectEquality(t, len(st.BoundUniformBuffers()), 24)
}

func TestNewDefaults(t *testing.T) {
	b, drv := newBackend(backend.DesktopProfile)
	st, err := state.New(b, nil)
	test.DemandSuccess(t, err)
	defer st.Release()

	// no driver calls of any kind
	test.ExpectEquality(t, len(drv.Queries()), 0)

	test.ExpectEquality(t, st.Blending(), state.BlendingState{Equation: state.Additive, Src: state.One, Dst: state.Zero})
	test.ExpectEquality(t, st.DepthTest(), state.DepthTest{Comparison: state.Less})
	test.ExpectEquality(t, st.FaceCulling(), state.FaceCulling{Order: state.CCW, Mode: state.Back})
	test.ExpectEquality(t, st.VertexRestart(), state.Off)
	test.ExpectEquality(t, st.TextureUnit(), uint32(0))
	test.ExpectEquality(t, st.CurrentProgram(), uint32(0))

	b, _ = newBackend(backend.WebGL2Profile)
	st.Release()
	st, err = state.New(b, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, st.VertexRestart(), state.On)
	st.Release()
}

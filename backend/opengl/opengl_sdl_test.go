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

//go:build sdl && !js

package opengl_test

import (
	"runtime"
	"testing"

	"github.com/jetsetilly/glstate/backend"
	"github.com/jetsetilly/glstate/backend/opengl"
	"github.com/jetsetilly/glstate/curated"
	"github.com/jetsetilly/glstate/shader"
	"github.com/jetsetilly/glstate/state"
	"github.com/jetsetilly/glstate/test"
	"github.com/veandco/go-sdl2/sdl"
)

// createContext opens a hidden window with a 3.2 core context. The test is
// skipped if there is no display
func createContext(t *testing.T) func() {
	t.Helper()

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		t.Skipf("sdl: %v", err)
	}

	test.DemandSuccess(t, sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3))
	test.DemandSuccess(t, sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2))
	test.DemandSuccess(t, sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG))
	test.DemandSuccess(t, sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE))

	window, err := sdl.CreateWindow("glstate", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		64, 64, sdl.WINDOW_OPENGL|sdl.WINDOW_HIDDEN)
	if err != nil {
		sdl.Quit()
		t.Skipf("sdl: %v", err)
	}

	ctx, err := window.GLCreateContext()
	if err != nil {
		window.Destroy()
		sdl.Quit()
		t.Skipf("sdl: %v", err)
	}

	err = window.GLMakeCurrent(ctx)
	if err != nil {
		sdl.GLDeleteContext(ctx)
		window.Destroy()
		sdl.Quit()
		t.Fatalf("sdl: %v", err)
	}

	return func() {
		sdl.GLDeleteContext(ctx)
		window.Destroy()
		sdl.Quit()
	}
}

func TestLiveContext(t *testing.T) {
	// the context is only current on the thread that created it
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	destroy := createContext(t)
	defer destroy()

	b, err := opengl.New()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b.Name(), "opengl")

	st, err := state.FromLiveContext(b, nil)
	test.DemandSuccess(t, err)
	defer st.Release()

	// a fresh context has the default pipeline state
	test.ExpectFailure(t, st.Blending().Enabled)
	test.ExpectFailure(t, st.DepthTest().Enabled)
	test.ExpectEquality(t, st.CurrentProgram(), uint32(0))
	test.ExpectSuccess(t, len(st.BoundTextures()) > 0)

	st.SetBlendingEnabled(true)
	st.SetBlendingFactors(state.SrcAlpha, state.SrcAlphaComplement)
	test.DemandSuccess(t, st.Resync())
	test.ExpectSuccess(t, st.Blending().Enabled)
	test.ExpectEquality(t, st.Blending().Src, state.SrcAlpha)

	// stages beyond the context version are rejected before the driver is
	// asked to create a shader object
	if !b.Profile().Supports(backend.Compute) {
		_, err = shader.NewStage(b, backend.Compute, "#version 430\nvoid main() {}\n")
		test.ExpectSuccess(t, curated.Is(err, backend.UnsupportedStageType))
	}

	_, err = shader.NewStage(b, backend.Vertex, "#version 150\nvoid main() {\n")
	test.ExpectSuccess(t, curated.Is(err, backend.CompilationFailed))

	vs, err := shader.NewStage(b, backend.Vertex, `#version 150
uniform mat4 projection;
in vec2 position;
void main() {
	gl_Position = projection * vec4(position, 0.0, 1.0);
}
`)
	test.DemandSuccess(t, err)
	defer vs.Destroy()

	fs, err := shader.NewStage(b, backend.Fragment, `#version 150
uniform vec4 tint;
out vec4 colour;
void main() {
	colour = tint;
}
`)
	test.DemandSuccess(t, err)
	defer fs.Destroy()

	prog, err := shader.NewProgram(st, b, vs, fs)
	test.DemandSuccess(t, err)
	defer prog.Destroy()

	var tint shader.Uniform[[4]float32]
	err = prog.Uniforms(func(ub *shader.UniformBuilder) error {
		_, err := shader.Ask[[4][4]float32](ub, "projection")
		test.ExpectSuccess(t, err)

		_, err = shader.Ask[float32](ub, "tint")
		test.ExpectSuccess(t, curated.Is(err, backend.UniformTypeMismatch))

		tint, err = shader.Ask[[4]float32](ub, "tint")
		return err
	})
	test.DemandSuccess(t, err)

	tint.Set(prog.Use(), [4]float32{1, 0, 0, 1})
	test.ExpectEquality(t, st.CurrentProgram(), uint32(prog.Handle()))
}

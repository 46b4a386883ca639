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

package shader_test

import (
	"testing"

	"github.com/jetsetilly/glstate/backend"
	"github.com/jetsetilly/glstate/curated"
	"github.com/jetsetilly/glstate/gl/recorder"
	"github.com/jetsetilly/glstate/shader"
	"github.com/jetsetilly/glstate/state"
	"github.com/jetsetilly/glstate/test"
)

const vertexSource = `#version 150
uniform mat4 projection;
uniform vec3 offset;
uniform bvec2 flags;
uniform float unused_gamma;
in vec2 position;
void main() {
	gl_Position = projection * vec4(position + offset.xy, 0.0, 1.0);
}
`

const fragmentSource = `#version 150
uniform sampler2D image;
uniform int mode;
uniform uint frame;
uniform mat2 rotation;
out vec4 colour;
void main() {
	colour = vec4(1.0);
}
`

type fixture struct {
	drv *recorder.Driver
	b   backend.Backend
	st  *state.PipelineState
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	drv := recorder.NewDriver()
	b := backend.NewDevice("recorder", drv, backend.DesktopProfile)
	st, err := state.FromLiveContext(b, nil)
	test.DemandSuccess(t, err)
	return &fixture{drv: drv, b: b, st: st}
}

func (f *fixture) program(t *testing.T) *shader.Program {
	t.Helper()

	vs, err := shader.NewStage(f.b, backend.Vertex, vertexSource)
	test.DemandSuccess(t, err)
	defer vs.Destroy()

	fs, err := shader.NewStage(f.b, backend.Fragment, fragmentSource)
	test.DemandSuccess(t, err)
	defer fs.Destroy()

	prog, err := shader.NewProgram(f.st, f.b, vs, fs)
	test.DemandSuccess(t, err)

	return prog
}

func TestStage(t *testing.T) {
	f := newFixture(t)
	defer f.st.Release()

	stage, err := shader.NewStage(f.b, backend.Vertex, vertexSource)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, stage.Type(), backend.Vertex)

	// destroyed exactly once
	stage.Destroy()
	stage.Destroy()
	test.ExpectEquality(t, f.drv.Count("DeleteShader"), 1)
	test.ExpectSuccess(t, f.drv.ShaderDeleted(uint32(stage.Handle())))

	// a destroyed stage cannot be linked
	_, err = shader.NewProgram(f.st, f.b, stage)
	test.ExpectSuccess(t, curated.Is(err, shader.StageDestroyed))
}

func TestCompilationFailure(t *testing.T) {
	f := newFixture(t)
	defer f.st.Release()

	stage, err := shader.NewStage(f.b, backend.Vertex, "#version 150\nvoid main() {\n\tgl_Position = vec4(0.0);\n")
	test.ExpectSuccess(t, stage == nil)
	test.ExpectSuccess(t, curated.Is(err, backend.CompilationFailed))

	// the driver's diagnostic is returned verbatim
	v := curated.Values(err)
	test.DemandEquality(t, len(v), 1)
	test.ExpectEquality[any](t, v[0], f.drv.GetShaderInfoLog(1))
	test.ExpectEquality[any](t, v[0], "0:4(1): error: syntax error, unexpected end of file\n")
}

func TestLinkFailure(t *testing.T) {
	f := newFixture(t)
	defer f.st.Release()

	vs, err := shader.NewStage(f.b, backend.Vertex, "uniform mat4 a; void main() {}")
	test.DemandSuccess(t, err)
	defer vs.Destroy()
	fs, err := shader.NewStage(f.b, backend.Fragment, "uniform vec4 a; void main() {}")
	test.DemandSuccess(t, err)
	defer fs.Destroy()

	prog, err := shader.NewProgram(f.st, f.b, vs, fs)
	test.ExpectSuccess(t, prog == nil)
	test.ExpectSuccess(t, curated.Is(err, backend.LinkFailed))
}

func TestProgramDestroy(t *testing.T) {
	f := newFixture(t)
	defer f.st.Release()

	prog := f.program(t)
	prog.Use()
	test.ExpectEquality(t, f.st.CurrentProgram(), uint32(prog.Handle()))

	prog.Destroy()
	prog.Destroy()
	test.ExpectEquality(t, f.st.CurrentProgram(), uint32(0))
	test.ExpectEquality(t, f.drv.Count("DeleteProgram"), 1)
	test.ExpectSuccess(t, f.drv.ProgramDeleted(uint32(prog.Handle())))

	err := prog.Uniforms(func(ub *shader.UniformBuilder) error {
		return nil
	})
	test.ExpectSuccess(t, curated.Is(err, shader.ProgramDestroyed))

	// a program that is not current is deleted without changing the current
	// program
	other := f.program(t)
	prog = f.program(t)
	other.Use()
	prog.Destroy()
	test.ExpectEquality(t, f.st.CurrentProgram(), uint32(other.Handle()))
}

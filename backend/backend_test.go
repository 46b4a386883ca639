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

package backend_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/glstate/backend"
	"github.com/jetsetilly/glstate/curated"
	"github.com/jetsetilly/glstate/gl"
	"github.com/jetsetilly/glstate/gl/recorder"
	"github.com/jetsetilly/glstate/test"
)

const vertexSource = `#version 150
uniform mat4 projection;
uniform vec2 offsets[4];
uniform bool flip;
// inactive: fade
uniform float fade;
void main() {
	gl_Position = projection * vec4(offsets[0], 0.0, 1.0);
}
`

const fragmentSource = `#version 150
uniform sampler2D image;
uniform uint frame;
out vec4 colour;
void main() {
	colour = vec4(1.0);
}
`

func newDevice(profile backend.Profile) (*backend.Device, *recorder.Driver) {
	drv := recorder.NewDriver()
	return backend.NewDevice("test", drv, profile), drv
}

func link(t *testing.T, dev *backend.Device) backend.ProgramHandle {
	t.Helper()

	vs, err := dev.CompileStage(backend.Vertex, vertexSource)
	test.DemandSuccess(t, err)
	defer dev.DestroyStage(vs)

	fs, err := dev.CompileStage(backend.Fragment, fragmentSource)
	test.DemandSuccess(t, err)
	defer dev.DestroyStage(fs)

	prog, err := dev.LinkProgram(vs, fs)
	test.DemandSuccess(t, err)

	return prog
}

func TestDevice(t *testing.T) {
	dev, drv := newDevice(backend.DesktopProfile)
	test.ExpectImplements[backend.Backend](t, dev)
	test.ExpectEquality(t, dev.Name(), "test")
	test.ExpectEquality(t, dev.Profile().TextureUnits, 48)
	test.ExpectEquality[gl.Functions](t, dev.Functions(), drv)
}

func TestCompilation(t *testing.T) {
	dev, drv := newDevice(backend.DesktopProfile)

	stage, err := dev.CompileStage(backend.Geometry, "void main() {}")
	test.ExpectSuccess(t, err)
	test.ExpectInequality(t, stage, backend.StageHandle(0))

	// compiler log is carried verbatim
	_, err = dev.CompileStage(backend.Vertex, "void main() {")
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, backend.CompilationFailed))
	v := curated.Values(err)
	test.DemandEquality(t, len(v), 1)
	test.ExpectEquality[any](t, v[0], "0:1(1): error: syntax error, unexpected end of file\n")

	// the failed shader object has been deleted
	test.ExpectEquality(t, drv.Count("DeleteShader"), 1)

	dev.DestroyStage(stage)
	test.ExpectSuccess(t, drv.ShaderDeleted(uint32(stage)))
}

func TestUnsupportedStage(t *testing.T) {
	dev, drv := newDevice(backend.WebGL2Profile)

	for _, typ := range []backend.StageType{backend.Geometry, backend.TessellationControl,
		backend.TessellationEvaluation, backend.Compute} {
		_, err := dev.CompileStage(typ, "void main() {}")
		test.ExpectSuccess(t, curated.Is(err, backend.UnsupportedStageType), typ)
	}

	// no driver call was made for the unsupported stages
	test.ExpectEquality(t, drv.Count("CreateShader"), 0)

	_, err := dev.CompileStage(backend.Fragment, "void main() {}")
	test.ExpectSuccess(t, err)
}

func TestDesktopStages(t *testing.T) {
	tests := []struct {
		major, minor int
		tessellation bool
		compute      bool
	}{
		{3, 2, false, false},
		{3, 3, false, false},
		{4, 0, true, false},
		{4, 2, true, false},
		{4, 3, true, true},
		{4, 6, true, true},
	}

	for _, tt := range tests {
		p := backend.DesktopProfileForVersion(tt.major, tt.minor)
		v := fmt.Sprintf("%d.%d", tt.major, tt.minor)
		test.ExpectSuccess(t, p.Supports(backend.Vertex), v)
		test.ExpectSuccess(t, p.Supports(backend.Geometry), v)
		test.ExpectSuccess(t, p.Supports(backend.Fragment), v)
		test.ExpectEquality(t, p.Supports(backend.TessellationControl), tt.tessellation, v)
		test.ExpectEquality(t, p.Supports(backend.TessellationEvaluation), tt.tessellation, v)
		test.ExpectEquality(t, p.Supports(backend.Compute), tt.compute, v)
	}

	// the base profile is not changed by the later versions
	test.ExpectEquality(t, len(backend.DesktopProfile.Stages), 3)

	// a 3.2 context rejects the later stages before the driver is called
	dev, drv := newDevice(backend.DesktopProfile)
	for _, typ := range []backend.StageType{backend.TessellationControl,
		backend.TessellationEvaluation, backend.Compute} {
		_, err := dev.CompileStage(typ, "void main() {}")
		test.ExpectSuccess(t, curated.Is(err, backend.UnsupportedStageType), typ)
	}
	test.ExpectEquality(t, drv.Count("CreateShader"), 0)
}

func TestLinking(t *testing.T) {
	dev, drv := newDevice(backend.DesktopProfile)

	prog := link(t, dev)
	test.ExpectEquality(t, drv.Count("DetachShader"), 2)

	// stages were destroyed after linking
	test.ExpectEquality(t, drv.Count("DeleteShader"), 2)

	dev.DestroyProgram(prog)
	test.ExpectSuccess(t, drv.ProgramDeleted(uint32(prog)))

	// a program needs at least one stage
	_, err := dev.LinkProgram()
	test.ExpectSuccess(t, curated.Is(err, backend.LinkFailed))
	v := curated.Values(err)
	test.DemandEquality(t, len(v), 1)
	test.ExpectEquality[any](t, v[0], "error: program has no attached shaders\n")
}

func TestUniformResolution(t *testing.T) {
	dev, drv := newDevice(backend.DesktopProfile)
	prog := link(t, dev)
	drv.UseProgram(uint32(prog))

	ses := dev.NewUniformSession(prog)
	test.ExpectEquality(t, ses.Program(), prog)

	loc, err := ses.Resolve("projection", backend.Mat4)
	test.ExpectSuccess(t, err)
	test.ExpectInequality(t, loc, gl.NoLocation)

	// repeated resolution
	again, err := ses.Resolve("projection", backend.Mat4)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, again, loc)

	// array uniforms by plain name and by first element
	loc, err = ses.Resolve("offsets", backend.Vec2)
	test.ExpectSuccess(t, err)
	again, err = ses.Resolve("offsets[0]", backend.Vec2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, again, loc)

	// inactive and missing uniforms
	_, err = ses.Resolve("fade", backend.Float)
	test.ExpectSuccess(t, curated.Is(err, backend.InactiveUniform))
	_, err = ses.Resolve("missing", backend.Float)
	test.ExpectSuccess(t, curated.Is(err, backend.InactiveUniform))
	test.ExpectEquality(t, err.Error(), "uniform: inactive: missing")

	// type mismatch
	_, err = ses.Resolve("frame", backend.Int)
	test.ExpectSuccess(t, curated.Is(err, backend.UniformTypeMismatch))
	test.ExpectEquality(t, err.Error(), "uniform: type mismatch: frame: expected int, found uint")

	// unbound resolution never fails
	test.ExpectEquality(t, ses.ResolveUnbound("frame", backend.Int), gl.NoLocation)
	test.ExpectEquality(t, ses.ResolveUnbound("missing", backend.Int), gl.NoLocation)
	loc, _ = ses.Resolve("image", backend.Sampler2D)
	test.ExpectEquality(t, ses.ResolveUnbound("image", backend.Sampler2D), loc)
}

func TestWriteUniform(t *testing.T) {
	dev, drv := newDevice(backend.DesktopProfile)
	prog := link(t, dev)
	drv.UseProgram(uint32(prog))
	drv.Reset()

	ses := dev.NewUniformSession(prog)
	flip, err := ses.Resolve("flip", backend.Bool)
	test.DemandSuccess(t, err)
	proj, err := ses.Resolve("projection", backend.Mat4)
	test.DemandSuccess(t, err)
	frame, err := ses.Resolve("frame", backend.UInt)
	test.DemandSuccess(t, err)

	dev.WriteUniform(flip, backend.UniformValue{Type: backend.Bool, Ints: []int32{1}})
	dev.WriteUniform(proj, backend.UniformValue{Type: backend.Mat4, Floats: make([]float32, 16)})
	dev.WriteUniform(frame, backend.UniformValue{Type: backend.UInt, UInts: []uint32{3}})

	// discarded without reaching the driver
	dev.WriteUniform(gl.NoLocation, backend.UniformValue{Type: backend.Float, Floats: []float32{1}})

	calls := drv.Calls()
	test.DemandEquality(t, len(calls), 3)
	test.ExpectEquality(t, calls[0].Name, "Uniform1iv")
	test.ExpectEquality(t, calls[1].Name, "UniformMatrix4fv")
	test.ExpectEquality(t, calls[2].Name, "Uniform1uiv")

	w, ok := drv.UniformValue(uint32(prog), frame)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, w.([]uint32)[0], uint32(3))
}

func TestUniformTypes(t *testing.T) {
	test.ExpectEquality(t, backend.FromGL(gl.FLOAT_VEC3), backend.Vec3)
	test.ExpectEquality(t, backend.FromGL(gl.UNSIGNED_INT_SAMPLER_2D), backend.Sampler2D)
	test.ExpectEquality(t, backend.FromGL(gl.SAMPLER_1D), backend.Unknown)
	test.ExpectEquality(t, backend.Mat3.String(), "mat3")
	test.ExpectEquality(t, backend.UniformType(1000).String(), "unknown")
	test.ExpectEquality(t, backend.Fragment.ToGL(), gl.FRAGMENT_SHADER)
}

// structDriver reports the members of an array of structs in the way a
// driver does, one active uniform per member of each element
type structDriver struct {
	*recorder.Driver
	members []structMember
}

type structMember struct {
	name string
	typ  gl.Enum
}

func (drv *structDriver) GetProgrami(prog uint32, pname gl.Enum) int {
	if pname == gl.ACTIVE_UNIFORMS {
		return len(drv.members)
	}
	return drv.Driver.GetProgrami(prog, pname)
}

func (drv *structDriver) GetActiveUniform(prog uint32, index int) (string, int, gl.Enum) {
	m := drv.members[index]
	return m.name, 1, m.typ
}

func (drv *structDriver) GetUniformLocation(prog uint32, name string) int32 {
	for i, m := range drv.members {
		if m.name == name || m.name == name+"[0]" {
			return int32(i)
		}
	}
	return gl.NoLocation
}

func TestStructArrayUniforms(t *testing.T) {
	drv := &structDriver{
		Driver: recorder.NewDriver(),
		members: []structMember{
			{"lights[0].pos", gl.FLOAT_VEC3},
			{"lights[0].intensity", gl.FLOAT},
			{"lights[1].pos", gl.FLOAT_VEC3},
			{"lights[1].intensity", gl.FLOAT},
			{"weights[0]", gl.FLOAT},
		},
	}
	dev := backend.NewDevice("test", drv, backend.DesktopProfile)
	ses := dev.NewUniformSession(1)

	loc, err := ses.Resolve("lights[0].pos", backend.Vec3)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, loc, int32(0))

	loc, err = ses.Resolve("lights[0].intensity", backend.Float)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, loc, int32(1))

	loc, err = ses.Resolve("lights[1].pos", backend.Vec3)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, loc, int32(2))

	// members keep their own types
	_, err = ses.Resolve("lights[1].pos", backend.Float)
	test.ExpectSuccess(t, curated.Is(err, backend.UniformTypeMismatch))
	v := curated.Values(err)
	test.DemandEquality(t, len(v), 3)
	test.ExpectEquality[any](t, v[2], backend.Vec3)

	// a plain array is still found by its name with or without a subscript
	loc, err = ses.Resolve("weights", backend.Float)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, loc, int32(4))
	_, err = ses.Resolve("weights[0]", backend.Float)
	test.ExpectSuccess(t, err)

	_, err = ses.Resolve("lights", backend.Vec3)
	test.ExpectSuccess(t, curated.Is(err, backend.InactiveUniform))
}

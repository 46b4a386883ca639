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

// Package shader compiles shader stages, links them into programs and
// provides statically typed access to the uniforms of a program.
//
// Stages are compiled with NewStage() and must be destroyed when they are no
// longer required. Programs are linked from stages with NewProgram(); the
// stages can be destroyed once the program has been linked.
//
//	vs, err := shader.NewStage(b, backend.Vertex, vertexSource)
//	if err != nil {
//		return err
//	}
//	defer vs.Destroy()
//
// Uniforms are requested inside a call to Program.Uniforms() with the Ask()
// and AskUnbound() functions. The type parameter of the function is the Go
// type of the uniform and it is checked against the type reported by the
// driver.
//
//	var proj shader.Uniform[[4][4]float32]
//	err = prog.Uniforms(func(ub *shader.UniformBuilder) error {
//		proj, err = shader.Ask[[4][4]float32](ub, "projection")
//		return err
//	})
//
// A uniform that is not active in the program is reported by Ask() with an
// error. This is a warning rather than a failure, shader variants often do
// not use every uniform. AskUnbound() returns a handle for such uniforms that
// can be written to without effect.
//
// Uniform values are written through the ProgramInterface returned by
// Program.Use().
package shader

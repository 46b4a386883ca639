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
	"strconv"
	"strings"

	"github.com/jetsetilly/glstate/gl"
)

type shader struct {
	typ      gl.Enum
	src      string
	compiled bool
	log      string
	deleted  bool
}

type activeUniform struct {
	declaration

	// location of the first element
	location int32
}

type program struct {
	attached []uint32
	linked   bool
	log      string
	deleted  bool

	uniforms []activeUniform

	// the most recent value written to each location while the program was
	// current
	values map[int32]any
}

func (drv *Driver) newObject() uint32 {
	drv.nextObject++
	return drv.nextObject
}

// CreateShader implements the gl.Functions interface.
func (drv *Driver) CreateShader(typ gl.Enum) uint32 {
	id := drv.newObject()
	drv.record("CreateShader", typ)
	drv.shaders[id] = &shader{typ: typ}
	return id
}

// ShaderSource implements the gl.Functions interface.
func (drv *Driver) ShaderSource(id uint32, src string) {
	drv.record("ShaderSource", id, src)
	if sh, ok := drv.shaders[id]; ok {
		sh.src = src
	}
}

// CompileShader implements the gl.Functions interface.
func (drv *Driver) CompileShader(id uint32) {
	drv.record("CompileShader", id)
	sh, ok := drv.shaders[id]
	if !ok {
		return
	}
	sh.log = checkSource(sh.src)
	sh.compiled = sh.log == ""
}

// GetShaderi implements the gl.Functions interface.
func (drv *Driver) GetShaderi(id uint32, pname gl.Enum) int {
	drv.query("GetShaderi", id, pname)
	sh, ok := drv.shaders[id]
	if !ok {
		return 0
	}
	switch pname {
	case gl.COMPILE_STATUS:
		if sh.compiled {
			return gl.TRUE
		}
		return gl.FALSE
	case gl.INFO_LOG_LENGTH:
		if sh.log == "" {
			return 0
		}
		return len(sh.log) + 1
	}
	return 0
}

// GetShaderInfoLog implements the gl.Functions interface.
func (drv *Driver) GetShaderInfoLog(id uint32) string {
	drv.query("GetShaderInfoLog", id)
	if sh, ok := drv.shaders[id]; ok {
		return sh.log
	}
	return ""
}

// DeleteShader implements the gl.Functions interface.
func (drv *Driver) DeleteShader(id uint32) {
	drv.record("DeleteShader", id)
	if sh, ok := drv.shaders[id]; ok {
		sh.deleted = true
	}
}

// ShaderDeleted returns true if DeleteShader() has been called for the
// shader.
func (drv *Driver) ShaderDeleted(id uint32) bool {
	if sh, ok := drv.shaders[id]; ok {
		return sh.deleted
	}
	return false
}

// CreateProgram implements the gl.Functions interface.
func (drv *Driver) CreateProgram() uint32 {
	id := drv.newObject()
	drv.record("CreateProgram")
	drv.programs[id] = &program{
		values: make(map[int32]any),
	}
	return id
}

// AttachShader implements the gl.Functions interface.
func (drv *Driver) AttachShader(prog uint32, sh uint32) {
	drv.record("AttachShader", prog, sh)
	if p, ok := drv.programs[prog]; ok {
		p.attached = append(p.attached, sh)
	}
}

// DetachShader implements the gl.Functions interface.
func (drv *Driver) DetachShader(prog uint32, sh uint32) {
	drv.record("DetachShader", prog, sh)
	if p, ok := drv.programs[prog]; ok {
		for i, a := range p.attached {
			if a == sh {
				p.attached = append(p.attached[:i], p.attached[i+1:]...)
				break
			}
		}
	}
}

// LinkProgram implements the gl.Functions interface.
func (drv *Driver) LinkProgram(prog uint32) {
	drv.record("LinkProgram", prog)
	p, ok := drv.programs[prog]
	if !ok {
		return
	}

	p.linked = false
	p.uniforms = p.uniforms[:0]
	p.values = make(map[int32]any)

	err := drv.link(p)
	if err != nil {
		p.log = fmt.Sprintf("%v\n", err)
		p.uniforms = p.uniforms[:0]
		return
	}

	p.log = ""
	p.linked = true
}

func (drv *Driver) link(p *program) error {
	if len(p.attached) == 0 {
		return fmt.Errorf("error: program has no attached shaders")
	}

	seen := make(map[string]gl.Enum)
	var location int32

	for _, id := range p.attached {
		sh, ok := drv.shaders[id]
		if !ok {
			return fmt.Errorf("error: shader %d does not exist", id)
		}
		if !sh.compiled {
			return fmt.Errorf("error: shader %d has not been compiled successfully", id)
		}

		decls, inactive, err := parseUniforms(sh.src)
		if err != nil {
			return err
		}

		for _, d := range decls {
			if typ, ok := seen[d.name]; ok {
				if typ != d.typ {
					return fmt.Errorf("error: uniform `%s' declared with conflicting types", d.name)
				}
				continue
			}
			seen[d.name] = d.typ

			if inactive[d.name] || strings.HasPrefix(d.name, unusedPrefix) {
				continue
			}

			p.uniforms = append(p.uniforms, activeUniform{
				declaration: d,
				location:    location,
			})
			location += int32(d.size)
		}
	}

	return nil
}

// GetProgrami implements the gl.Functions interface.
func (drv *Driver) GetProgrami(prog uint32, pname gl.Enum) int {
	drv.query("GetProgrami", prog, pname)
	p, ok := drv.programs[prog]
	if !ok {
		return 0
	}
	switch pname {
	case gl.LINK_STATUS:
		if p.linked {
			return gl.TRUE
		}
		return gl.FALSE
	case gl.INFO_LOG_LENGTH:
		if p.log == "" {
			return 0
		}
		return len(p.log) + 1
	case gl.ACTIVE_UNIFORMS:
		return len(p.uniforms)
	case gl.ACTIVE_UNIFORM_MAX_LENGTH:
		var n int
		for _, u := range p.uniforms {
			n = max(n, len(u.activeName())+1)
		}
		return n
	}
	return 0
}

// GetProgramInfoLog implements the gl.Functions interface.
func (drv *Driver) GetProgramInfoLog(prog uint32) string {
	drv.query("GetProgramInfoLog", prog)
	if p, ok := drv.programs[prog]; ok {
		return p.log
	}
	return ""
}

// DeleteProgram implements the gl.Functions interface.
func (drv *Driver) DeleteProgram(prog uint32) {
	drv.record("DeleteProgram", prog)
	if p, ok := drv.programs[prog]; ok {
		p.deleted = true
	}
}

// ProgramDeleted returns true if DeleteProgram() has been called for the
// program.
func (drv *Driver) ProgramDeleted(prog uint32) bool {
	if p, ok := drv.programs[prog]; ok {
		return p.deleted
	}
	return false
}

// array uniforms are reported with the subscript of the first element
func (u activeUniform) activeName() string {
	if u.size > 1 {
		return u.name + "[0]"
	}
	return u.name
}

// GetActiveUniform implements the gl.Functions interface.
func (drv *Driver) GetActiveUniform(prog uint32, index int) (string, int, gl.Enum) {
	drv.query("GetActiveUniform", prog, index)
	p, ok := drv.programs[prog]
	if !ok || index < 0 || index >= len(p.uniforms) {
		return "", 0, 0
	}
	u := p.uniforms[index]
	return u.activeName(), u.size, u.typ
}

// GetUniformLocation implements the gl.Functions interface. Elements of an
// array uniform can be addressed with a subscript.
func (drv *Driver) GetUniformLocation(prog uint32, name string) int32 {
	drv.query("GetUniformLocation", prog, name)
	p, ok := drv.programs[prog]
	if !ok || !p.linked {
		return gl.NoLocation
	}

	element := 0
	if i := strings.IndexRune(name, '['); i >= 0 && strings.HasSuffix(name, "]") {
		n, err := strconv.Atoi(name[i+1 : len(name)-1])
		if err != nil || n < 0 {
			return gl.NoLocation
		}
		element = n
		name = name[:i]
	}

	for _, u := range p.uniforms {
		if u.name == name {
			if element >= u.size {
				return gl.NoLocation
			}
			return u.location + int32(element)
		}
	}

	return gl.NoLocation
}

// UniformValue returns the most recent value written to the location of the
// program. The value is a copy of the slice passed to the uniform function,
// ie. []int32, []uint32 or []float32.
func (drv *Driver) UniformValue(prog uint32, location int32) (any, bool) {
	p, ok := drv.programs[prog]
	if !ok {
		return nil, false
	}
	v, ok := p.values[location]
	return v, ok
}

func writeUniform[T int32 | uint32 | float32](drv *Driver, name string, location int32, v []T) {
	c := make([]T, len(v))
	copy(c, v)
	drv.record(name, location, c)

	if location == gl.NoLocation {
		return
	}

	p, ok := drv.programs[uint32(drv.integers[gl.CURRENT_PROGRAM])]
	if !ok {
		return
	}
	p.values[location] = c
}

// Uniform1iv implements the gl.Functions interface.
func (drv *Driver) Uniform1iv(location int32, v []int32) {
	writeUniform(drv, "Uniform1iv", location, v)
}

// Uniform2iv implements the gl.Functions interface.
func (drv *Driver) Uniform2iv(location int32, v []int32) {
	writeUniform(drv, "Uniform2iv", location, v)
}

// Uniform3iv implements the gl.Functions interface.
func (drv *Driver) Uniform3iv(location int32, v []int32) {
	writeUniform(drv, "Uniform3iv", location, v)
}

// Uniform4iv implements the gl.Functions interface.
func (drv *Driver) Uniform4iv(location int32, v []int32) {
	writeUniform(drv, "Uniform4iv", location, v)
}

// Uniform1uiv implements the gl.Functions interface.
func (drv *Driver) Uniform1uiv(location int32, v []uint32) {
	writeUniform(drv, "Uniform1uiv", location, v)
}

// Uniform2uiv implements the gl.Functions interface.
func (drv *Driver) Uniform2uiv(location int32, v []uint32) {
	writeUniform(drv, "Uniform2uiv", location, v)
}

// Uniform3uiv implements the gl.Functions interface.
func (drv *Driver) Uniform3uiv(location int32, v []uint32) {
	writeUniform(drv, "Uniform3uiv", location, v)
}

// Uniform4uiv implements the gl.Functions interface.
func (drv *Driver) Uniform4uiv(location int32, v []uint32) {
	writeUniform(drv, "Uniform4uiv", location, v)
}

// Uniform1fv implements the gl.Functions interface.
func (drv *Driver) Uniform1fv(location int32, v []float32) {
	writeUniform(drv, "Uniform1fv", location, v)
}

// Uniform2fv implements the gl.Functions interface.
func (drv *Driver) Uniform2fv(location int32, v []float32) {
	writeUniform(drv, "Uniform2fv", location, v)
}

// Uniform3fv implements the gl.Functions interface.
func (drv *Driver) Uniform3fv(location int32, v []float32) {
	writeUniform(drv, "Uniform3fv", location, v)
}

// Uniform4fv implements the gl.Functions interface.
func (drv *Driver) Uniform4fv(location int32, v []float32) {
	writeUniform(drv, "Uniform4fv", location, v)
}

// UniformMatrix2fv implements the gl.Functions interface.
func (drv *Driver) UniformMatrix2fv(location int32, v []float32) {
	writeUniform(drv, "UniformMatrix2fv", location, v)
}

// UniformMatrix3fv implements the gl.Functions interface.
func (drv *Driver) UniformMatrix3fv(location int32, v []float32) {
	writeUniform(drv, "UniformMatrix3fv", location, v)
}

// UniformMatrix4fv implements the gl.Functions interface.
func (drv *Driver) UniformMatrix4fv(location int32, v []float32) {
	writeUniform(drv, "UniformMatrix4fv", location, v)
}

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
	"regexp"
	"strconv"
	"strings"

	"github.com/jetsetilly/glstate/gl"
)

var (
	mainDecl    = regexp.MustCompile(`\bvoid\s+main\s*\(\s*(void)?\s*\)`)
	uniformDecl = regexp.MustCompile(`(?m)^\s*uniform\s+(?:(?:lowp|mediump|highp)\s+)?(\w+)\s+(\w+)\s*(?:\[\s*(\d+)\s*\])?\s*;`)
	inactiveTag = regexp.MustCompile(`(?m)//\s*inactive:\s*(.*)$`)
)

// prefix of uniform names that are always optimised out
const unusedPrefix = "unused_"

var glslTypes = map[string]gl.Enum{
	"int":            gl.INT,
	"uint":           gl.UNSIGNED_INT,
	"float":          gl.FLOAT,
	"bool":           gl.BOOL,
	"vec2":           gl.FLOAT_VEC2,
	"vec3":           gl.FLOAT_VEC3,
	"vec4":           gl.FLOAT_VEC4,
	"ivec2":          gl.INT_VEC2,
	"ivec3":          gl.INT_VEC3,
	"ivec4":          gl.INT_VEC4,
	"uvec2":          gl.UNSIGNED_INT_VEC2,
	"uvec3":          gl.UNSIGNED_INT_VEC3,
	"uvec4":          gl.UNSIGNED_INT_VEC4,
	"bvec2":          gl.BOOL_VEC2,
	"bvec3":          gl.BOOL_VEC3,
	"bvec4":          gl.BOOL_VEC4,
	"mat2":           gl.FLOAT_MAT2,
	"mat3":           gl.FLOAT_MAT3,
	"mat4":           gl.FLOAT_MAT4,
	"sampler1D":      gl.SAMPLER_1D,
	"sampler2D":      gl.SAMPLER_2D,
	"sampler3D":      gl.SAMPLER_3D,
	"samplerCube":    gl.SAMPLER_CUBE,
	"sampler2DArray": gl.SAMPLER_2D_ARRAY,
	"isampler2D":     gl.INT_SAMPLER_2D,
	"usampler2D":     gl.UNSIGNED_INT_SAMPLER_2D,
}

// checkSource returns a driver style diagnostic if the source would not
// compile. An empty string means the source is acceptable.
func checkSource(src string) string {
	depth := 0
	line := 1
	for _, r := range src {
		switch r {
		case '\n':
			line++
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return fmt.Sprintf("0:%d(1): error: syntax error, unexpected '}'\n", line)
			}
		}
	}
	if depth != 0 {
		return fmt.Sprintf("0:%d(1): error: syntax error, unexpected end of file\n", line)
	}

	if !mainDecl.MatchString(src) {
		return "0:1(1): error: entry point `main' is not defined\n"
	}

	return ""
}

type declaration struct {
	name string
	typ  gl.Enum
	size int
}

// parseUniforms returns the uniform declarations of the source and the set of
// names listed in inactive pragmas.
func parseUniforms(src string) ([]declaration, map[string]bool, error) {
	var decls []declaration

	for _, m := range uniformDecl.FindAllStringSubmatch(src, -1) {
		typ, ok := glslTypes[m[1]]
		if !ok {
			return nil, nil, fmt.Errorf("error: unknown type `%s' for uniform `%s'", m[1], m[2])
		}

		size := 1
		if m[3] != "" {
			n, err := strconv.Atoi(m[3])
			if err != nil || n < 1 {
				return nil, nil, fmt.Errorf("error: invalid array size for uniform `%s'", m[2])
			}
			size = n
		}

		decls = append(decls, declaration{name: m[2], typ: typ, size: size})
	}

	inactive := make(map[string]bool)
	for _, m := range inactiveTag.FindAllStringSubmatch(src, -1) {
		for _, n := range strings.Split(m[1], ",") {
			n = strings.TrimSpace(n)
			if n != "" {
				inactive[n] = true
			}
		}
	}

	return decls, inactive, nil
}

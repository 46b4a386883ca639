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

package backend

import (
	"github.com/jetsetilly/glstate/gl"
)

// UniformType is the GLSL type of a uniform.
type UniformType int

// List of valid UniformType values.
const (
	Unknown UniformType = iota
	Int
	UInt
	Float
	Bool
	IVec2
	IVec3
	IVec4
	UIVec2
	UIVec3
	UIVec4
	Vec2
	Vec3
	Vec4
	BVec2
	BVec3
	BVec4
	Mat2
	Mat3
	Mat4
	Sampler2D
	Sampler3D
	SamplerCube
	Sampler2DArray
)

// the names are the GLSL keywords for the type
var uniformTypeNames = [...]string{
	Unknown:        "unknown",
	Int:            "int",
	UInt:           "uint",
	Float:          "float",
	Bool:           "bool",
	IVec2:          "ivec2",
	IVec3:          "ivec3",
	IVec4:          "ivec4",
	UIVec2:         "uvec2",
	UIVec3:         "uvec3",
	UIVec4:         "uvec4",
	Vec2:           "vec2",
	Vec3:           "vec3",
	Vec4:           "vec4",
	BVec2:          "bvec2",
	BVec3:          "bvec3",
	BVec4:          "bvec4",
	Mat2:           "mat2",
	Mat3:           "mat3",
	Mat4:           "mat4",
	Sampler2D:      "sampler2D",
	Sampler3D:      "sampler3D",
	SamplerCube:    "samplerCube",
	Sampler2DArray: "sampler2DArray",
}

func (t UniformType) String() string {
	if t < 0 || int(t) >= len(uniformTypeNames) {
		return uniformTypeNames[Unknown]
	}
	return uniformTypeNames[t]
}

// FromGL returns the UniformType for the type reported by the driver for an
// active uniform. Types that glstate has no Go equivalent for are returned as
// Unknown.
//
// Integer samplers are set with a texture unit in the same way as float
// samplers and are reported as the corresponding sampler type.
func FromGL(typ gl.Enum) UniformType {
	switch typ {
	case gl.INT:
		return Int
	case gl.UNSIGNED_INT:
		return UInt
	case gl.FLOAT:
		return Float
	case gl.BOOL:
		return Bool
	case gl.INT_VEC2:
		return IVec2
	case gl.INT_VEC3:
		return IVec3
	case gl.INT_VEC4:
		return IVec4
	case gl.UNSIGNED_INT_VEC2:
		return UIVec2
	case gl.UNSIGNED_INT_VEC3:
		return UIVec3
	case gl.UNSIGNED_INT_VEC4:
		return UIVec4
	case gl.FLOAT_VEC2:
		return Vec2
	case gl.FLOAT_VEC3:
		return Vec3
	case gl.FLOAT_VEC4:
		return Vec4
	case gl.BOOL_VEC2:
		return BVec2
	case gl.BOOL_VEC3:
		return BVec3
	case gl.BOOL_VEC4:
		return BVec4
	case gl.FLOAT_MAT2:
		return Mat2
	case gl.FLOAT_MAT3:
		return Mat3
	case gl.FLOAT_MAT4:
		return Mat4
	case gl.SAMPLER_2D, gl.INT_SAMPLER_2D, gl.UNSIGNED_INT_SAMPLER_2D:
		return Sampler2D
	case gl.SAMPLER_3D:
		return Sampler3D
	case gl.SAMPLER_CUBE:
		return SamplerCube
	case gl.SAMPLER_2D_ARRAY:
		return Sampler2DArray
	}
	return Unknown
}

// UniformValue is a uniform value flattened into the components expected by
// the driver. Only the slice matching the type is used: Ints for signed
// integer, boolean and sampler types, UInts for unsigned integer types and
// Floats for float and matrix types. Matrices are column major.
type UniformValue struct {
	Type   UniformType
	Ints   []int32
	UInts  []uint32
	Floats []float32
}

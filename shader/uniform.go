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

package shader

import (
	"github.com/jetsetilly/glstate/backend"
	"github.com/jetsetilly/glstate/gl"
)

// Sampler2D is the texture unit a sampler2D uniform reads from.
type Sampler2D uint32

// Sampler3D is the texture unit a sampler3D uniform reads from.
type Sampler3D uint32

// SamplerCube is the texture unit a samplerCube uniform reads from.
type SamplerCube uint32

// Sampler2DArray is the texture unit a sampler2DArray uniform reads from.
type Sampler2DArray uint32

// Uniformable is the set of Go types that can be written to a uniform.
//
// Matrices are indexed by column first, ie. m[column][row]. This is the same
// layout as the driver expects.
type Uniformable interface {
	int32 | uint32 | float32 | bool |
		[2]int32 | [3]int32 | [4]int32 |
		[2]uint32 | [3]uint32 | [4]uint32 |
		[2]float32 | [3]float32 | [4]float32 |
		[2]bool | [3]bool | [4]bool |
		[2][2]float32 | [3][3]float32 | [4][4]float32 |
		Sampler2D | Sampler3D | SamplerCube | Sampler2DArray
}

// uniformType returns the GLSL type for the Go type T
func uniformType[T Uniformable]() backend.UniformType {
	var v T
	switch any(v).(type) {
	case int32:
		return backend.Int
	case uint32:
		return backend.UInt
	case float32:
		return backend.Float
	case bool:
		return backend.Bool
	case [2]int32:
		return backend.IVec2
	case [3]int32:
		return backend.IVec3
	case [4]int32:
		return backend.IVec4
	case [2]uint32:
		return backend.UIVec2
	case [3]uint32:
		return backend.UIVec3
	case [4]uint32:
		return backend.UIVec4
	case [2]float32:
		return backend.Vec2
	case [3]float32:
		return backend.Vec3
	case [4]float32:
		return backend.Vec4
	case [2]bool:
		return backend.BVec2
	case [3]bool:
		return backend.BVec3
	case [4]bool:
		return backend.BVec4
	case [2][2]float32:
		return backend.Mat2
	case [3][3]float32:
		return backend.Mat3
	case [4][4]float32:
		return backend.Mat4
	case Sampler2D:
		return backend.Sampler2D
	case Sampler3D:
		return backend.Sampler3D
	case SamplerCube:
		return backend.SamplerCube
	case Sampler2DArray:
		return backend.Sampler2DArray
	}
	return backend.Unknown
}

func boolToInt32(v bool) int32 {
	if v {
		return 1
	}
	return 0
}

func bools(v []bool) []int32 {
	n := make([]int32, len(v))
	for i := range v {
		n[i] = boolToInt32(v[i])
	}
	return n
}

// encode flattens the value into the components used by the driver
func encode[T Uniformable](v T) backend.UniformValue {
	u := backend.UniformValue{Type: uniformType[T]()}

	switch v := any(v).(type) {
	case int32:
		u.Ints = []int32{v}
	case uint32:
		u.UInts = []uint32{v}
	case float32:
		u.Floats = []float32{v}
	case bool:
		u.Ints = []int32{boolToInt32(v)}
	case [2]int32:
		u.Ints = v[:]
	case [3]int32:
		u.Ints = v[:]
	case [4]int32:
		u.Ints = v[:]
	case [2]uint32:
		u.UInts = v[:]
	case [3]uint32:
		u.UInts = v[:]
	case [4]uint32:
		u.UInts = v[:]
	case [2]float32:
		u.Floats = v[:]
	case [3]float32:
		u.Floats = v[:]
	case [4]float32:
		u.Floats = v[:]
	case [2]bool:
		u.Ints = bools(v[:])
	case [3]bool:
		u.Ints = bools(v[:])
	case [4]bool:
		u.Ints = bools(v[:])
	case [2][2]float32:
		u.Floats = append(v[0][:], v[1][:]...)
	case [3][3]float32:
		u.Floats = make([]float32, 0, 9)
		for _, c := range v {
			u.Floats = append(u.Floats, c[:]...)
		}
	case [4][4]float32:
		u.Floats = make([]float32, 0, 16)
		for _, c := range v {
			u.Floats = append(u.Floats, c[:]...)
		}
	case Sampler2D:
		u.Ints = []int32{int32(v)}
	case Sampler3D:
		u.Ints = []int32{int32(v)}
	case SamplerCube:
		u.Ints = []int32{int32(v)}
	case Sampler2DArray:
		u.Ints = []int32{int32(v)}
	}

	return u
}

// Uniform is a typed handle to a uniform of a program. It is only meaningful
// for the program it was resolved against. The zero value is not a valid
// handle; use AskUnbound() for a handle that is safe to write to.
type Uniform[T Uniformable] struct {
	location int32
	typ      backend.UniformType
}

// Location returns the driver location of the uniform. The location is
// gl.NoLocation for unbound uniforms.
func (u Uniform[T]) Location() int32 {
	return u.location
}

// Type returns the GLSL type of the uniform.
func (u Uniform[T]) Type() backend.UniformType {
	return u.typ
}

// IsBound returns false if writes to the uniform have no effect.
func (u Uniform[T]) IsBound() bool {
	return u.location != gl.NoLocation
}

// Set writes the value to the uniform. The program of the interface is made
// current if it is not already.
func (u Uniform[T]) Set(iface *ProgramInterface, v T) {
	iface.write(u.location, encode(v))
}

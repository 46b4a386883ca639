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

package gl

// Enum is a raw driver enumeration value.
type Enum = uint32

// NoLocation is the uniform location returned for names that the driver
// does not know about. Writes to NoLocation are discarded.
const NoLocation int32 = -1

// Capabilities.
const (
	BLEND                         Enum = 0x0be2
	CULL_FACE                     Enum = 0x0b44
	DEPTH_TEST                    Enum = 0x0b71
	PRIMITIVE_RESTART             Enum = 0x8f9d
	PRIMITIVE_RESTART_FIXED_INDEX Enum = 0x8d69
)

// Parameter queries.
const (
	ACTIVE_TEXTURE                   Enum = 0x84e0
	ARRAY_BUFFER_BINDING             Enum = 0x8894
	BLEND_DST_ALPHA                  Enum = 0x80ca
	BLEND_DST_RGB                    Enum = 0x80c8
	BLEND_EQUATION_ALPHA             Enum = 0x883d
	BLEND_EQUATION_RGB               Enum = 0x8009
	BLEND_SRC_ALPHA                  Enum = 0x80cb
	BLEND_SRC_RGB                    Enum = 0x80c9
	CULL_FACE_MODE                   Enum = 0x0b45
	CURRENT_PROGRAM                  Enum = 0x8b8d
	DEPTH_FUNC                       Enum = 0x0b74
	DRAW_FRAMEBUFFER_BINDING         Enum = 0x8ca6
	ELEMENT_ARRAY_BUFFER_BINDING     Enum = 0x8895
	FRONT_FACE                       Enum = 0x0b46
	MAX_COMBINED_TEXTURE_IMAGE_UNITS Enum = 0x8b4d
	MAX_UNIFORM_BUFFER_BINDINGS      Enum = 0x8a2f
	MAJOR_VERSION                    Enum = 0x821b
	MINOR_VERSION                    Enum = 0x821c
	UNIFORM_BUFFER_BINDING           Enum = 0x8a28
	VERTEX_ARRAY_BINDING             Enum = 0x85b5
)

// Strings.
const (
	VENDOR                   Enum = 0x1f00
	RENDERER                 Enum = 0x1f01
	VERSION                  Enum = 0x1f02
	SHADING_LANGUAGE_VERSION Enum = 0x8b8c
)

// Blending equations.
const (
	FUNC_ADD              Enum = 0x8006
	MIN                   Enum = 0x8007
	MAX                   Enum = 0x8008
	FUNC_SUBTRACT         Enum = 0x800a
	FUNC_REVERSE_SUBTRACT Enum = 0x800b
)

// Blending factors.
const (
	ZERO                Enum = 0x0000
	ONE                 Enum = 0x0001
	SRC_COLOR           Enum = 0x0300
	ONE_MINUS_SRC_COLOR Enum = 0x0301
	SRC_ALPHA           Enum = 0x0302
	ONE_MINUS_SRC_ALPHA Enum = 0x0303
	DST_ALPHA           Enum = 0x0304
	ONE_MINUS_DST_ALPHA Enum = 0x0305
	DST_COLOR           Enum = 0x0306
	ONE_MINUS_DST_COLOR Enum = 0x0307
	SRC_ALPHA_SATURATE  Enum = 0x0308
)

// Depth comparison functions.
const (
	NEVER    Enum = 0x0200
	LESS     Enum = 0x0201
	EQUAL    Enum = 0x0202
	LEQUAL   Enum = 0x0203
	GREATER  Enum = 0x0204
	NOTEQUAL Enum = 0x0205
	GEQUAL   Enum = 0x0206
	ALWAYS   Enum = 0x0207
)

// Face culling.
const (
	CW             Enum = 0x0900
	CCW            Enum = 0x0901
	FRONT          Enum = 0x0404
	BACK           Enum = 0x0405
	FRONT_AND_BACK Enum = 0x0408
)

// Texture targets and units.
const (
	TEXTURE_1D       Enum = 0x0de0
	TEXTURE_2D       Enum = 0x0de1
	TEXTURE_3D       Enum = 0x806f
	TEXTURE_CUBE_MAP Enum = 0x8513
	TEXTURE_2D_ARRAY Enum = 0x8c1a
	TEXTURE0         Enum = 0x84c0
)

// Buffer and framebuffer targets.
const (
	ARRAY_BUFFER         Enum = 0x8892
	ELEMENT_ARRAY_BUFFER Enum = 0x8893
	UNIFORM_BUFFER       Enum = 0x8a11
	FRAMEBUFFER          Enum = 0x8d40
	DRAW_FRAMEBUFFER     Enum = 0x8ca9
	READ_FRAMEBUFFER     Enum = 0x8ca8
)

// Shader stages.
const (
	VERTEX_SHADER          Enum = 0x8b31
	FRAGMENT_SHADER        Enum = 0x8b30
	GEOMETRY_SHADER        Enum = 0x8dd9
	TESS_CONTROL_SHADER    Enum = 0x8e88
	TESS_EVALUATION_SHADER Enum = 0x8e87
	COMPUTE_SHADER         Enum = 0x91b9
)

// Shader and program status queries.
const (
	COMPILE_STATUS            Enum = 0x8b81
	LINK_STATUS               Enum = 0x8b82
	INFO_LOG_LENGTH           Enum = 0x8b84
	ACTIVE_UNIFORMS           Enum = 0x8b86
	ACTIVE_UNIFORM_MAX_LENGTH Enum = 0x8b87
	FALSE                          = 0
	TRUE                           = 1
)

// Active uniform types as reported by GetActiveUniform.
const (
	INT                     Enum = 0x1404
	UNSIGNED_INT            Enum = 0x1405
	FLOAT                   Enum = 0x1406
	FLOAT_VEC2              Enum = 0x8b50
	FLOAT_VEC3              Enum = 0x8b51
	FLOAT_VEC4              Enum = 0x8b52
	INT_VEC2                Enum = 0x8b53
	INT_VEC3                Enum = 0x8b54
	INT_VEC4                Enum = 0x8b55
	BOOL                    Enum = 0x8b56
	BOOL_VEC2               Enum = 0x8b57
	BOOL_VEC3               Enum = 0x8b58
	BOOL_VEC4               Enum = 0x8b59
	FLOAT_MAT2              Enum = 0x8b5a
	FLOAT_MAT3              Enum = 0x8b5b
	FLOAT_MAT4              Enum = 0x8b5c
	SAMPLER_1D              Enum = 0x8b5d
	SAMPLER_2D              Enum = 0x8b5e
	SAMPLER_3D              Enum = 0x8b5f
	SAMPLER_CUBE            Enum = 0x8b60
	SAMPLER_2D_ARRAY        Enum = 0x8dc1
	UNSIGNED_INT_VEC2       Enum = 0x8dc6
	UNSIGNED_INT_VEC3       Enum = 0x8dc7
	UNSIGNED_INT_VEC4       Enum = 0x8dc8
	INT_SAMPLER_2D          Enum = 0x8dca
	UNSIGNED_INT_SAMPLER_2D Enum = 0x8dd2
)

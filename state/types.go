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

package state

import (
	"github.com/jetsetilly/glstate/curated"
	"github.com/jetsetilly/glstate/gl"
)

// Equation is the blending equation used to combine the source and
// destination colours.
type Equation int

// List of valid Equation values.
const (
	Additive Equation = iota
	Subtract
	ReverseSubtract
	Min
	Max
)

func (e Equation) String() string {
	switch e {
	case Additive:
		return "additive"
	case Subtract:
		return "subtract"
	case ReverseSubtract:
		return "reverse subtract"
	case Min:
		return "min"
	case Max:
		return "max"
	}
	return "unknown equation"
}

func (e Equation) toGL() gl.Enum {
	switch e {
	case Additive:
		return gl.FUNC_ADD
	case Subtract:
		return gl.FUNC_SUBTRACT
	case ReverseSubtract:
		return gl.FUNC_REVERSE_SUBTRACT
	case Min:
		return gl.MIN
	case Max:
		return gl.MAX
	}
	return gl.FUNC_ADD
}

// DecodeEquation returns the Equation for a raw driver value. An error with
// the UnknownBlendingEquation pattern is returned if the value is not
// recognised.
func DecodeEquation(raw int) (Equation, error) {
	switch gl.Enum(raw) {
	case gl.FUNC_ADD:
		return Additive, nil
	case gl.FUNC_SUBTRACT:
		return Subtract, nil
	case gl.FUNC_REVERSE_SUBTRACT:
		return ReverseSubtract, nil
	case gl.MIN:
		return Min, nil
	case gl.MAX:
		return Max, nil
	}
	return Additive, curated.Errorf(UnknownBlendingEquation, raw)
}

// Factor is a blending factor applied to either the source or destination
// colour.
type Factor int

// List of valid Factor values.
const (
	One Factor = iota
	Zero
	SrcColor
	SrcColorComplement
	DestColor
	DestColorComplement
	SrcAlpha
	SrcAlphaComplement
	DstAlpha
	DstAlphaComplement
	SrcAlphaSaturate
)

func (f Factor) String() string {
	switch f {
	case One:
		return "one"
	case Zero:
		return "zero"
	case SrcColor:
		return "src color"
	case SrcColorComplement:
		return "1 - src color"
	case DestColor:
		return "dest color"
	case DestColorComplement:
		return "1 - dest color"
	case SrcAlpha:
		return "src alpha"
	case SrcAlphaComplement:
		return "1 - src alpha"
	case DstAlpha:
		return "dst alpha"
	case DstAlphaComplement:
		return "1 - dst alpha"
	case SrcAlphaSaturate:
		return "src alpha saturate"
	}
	return "unknown factor"
}

func (f Factor) toGL() gl.Enum {
	switch f {
	case One:
		return gl.ONE
	case Zero:
		return gl.ZERO
	case SrcColor:
		return gl.SRC_COLOR
	case SrcColorComplement:
		return gl.ONE_MINUS_SRC_COLOR
	case DestColor:
		return gl.DST_COLOR
	case DestColorComplement:
		return gl.ONE_MINUS_DST_COLOR
	case SrcAlpha:
		return gl.SRC_ALPHA
	case SrcAlphaComplement:
		return gl.ONE_MINUS_SRC_ALPHA
	case DstAlpha:
		return gl.DST_ALPHA
	case DstAlphaComplement:
		return gl.ONE_MINUS_DST_ALPHA
	case SrcAlphaSaturate:
		return gl.SRC_ALPHA_SATURATE
	}
	return gl.ONE
}

// decodeFactor returns false if the raw value is not a blending factor. the
// caller chooses the error because the same decoding is used for the source
// and the destination factors
func decodeFactor(raw int) (Factor, bool) {
	switch gl.Enum(raw) {
	case gl.ONE:
		return One, true
	case gl.ZERO:
		return Zero, true
	case gl.SRC_COLOR:
		return SrcColor, true
	case gl.ONE_MINUS_SRC_COLOR:
		return SrcColorComplement, true
	case gl.DST_COLOR:
		return DestColor, true
	case gl.ONE_MINUS_DST_COLOR:
		return DestColorComplement, true
	case gl.SRC_ALPHA:
		return SrcAlpha, true
	case gl.ONE_MINUS_SRC_ALPHA:
		return SrcAlphaComplement, true
	case gl.DST_ALPHA:
		return DstAlpha, true
	case gl.ONE_MINUS_DST_ALPHA:
		return DstAlphaComplement, true
	case gl.SRC_ALPHA_SATURATE:
		return SrcAlphaSaturate, true
	}
	return One, false
}

// DecodeSrcFactor returns the Factor for a raw driver value. An error with the
// UnknownBlendingSrcFactor pattern is returned if the value is not
// recognised.
func DecodeSrcFactor(raw int) (Factor, error) {
	f, ok := decodeFactor(raw)
	if !ok {
		return f, curated.Errorf(UnknownBlendingSrcFactor, raw)
	}
	return f, nil
}

// DecodeDstFactor returns the Factor for a raw driver value. An error with the
// UnknownBlendingDstFactor pattern is returned if the value is not
// recognised.
func DecodeDstFactor(raw int) (Factor, error) {
	f, ok := decodeFactor(raw)
	if !ok {
		return f, curated.Errorf(UnknownBlendingDstFactor, raw)
	}
	return f, nil
}

// Comparison is the function used to compare a fragment's depth against the
// depth buffer.
type Comparison int

// List of valid Comparison values.
const (
	Never Comparison = iota
	Always
	Equal
	NotEqual
	Less
	LessOrEqual
	Greater
	GreaterOrEqual
)

func (c Comparison) String() string {
	switch c {
	case Never:
		return "never"
	case Always:
		return "always"
	case Equal:
		return "equal"
	case NotEqual:
		return "not equal"
	case Less:
		return "less"
	case LessOrEqual:
		return "less or equal"
	case Greater:
		return "greater"
	case GreaterOrEqual:
		return "greater or equal"
	}
	return "unknown comparison"
}

func (c Comparison) toGL() gl.Enum {
	switch c {
	case Never:
		return gl.NEVER
	case Always:
		return gl.ALWAYS
	case Equal:
		return gl.EQUAL
	case NotEqual:
		return gl.NOTEQUAL
	case Less:
		return gl.LESS
	case LessOrEqual:
		return gl.LEQUAL
	case Greater:
		return gl.GREATER
	case GreaterOrEqual:
		return gl.GEQUAL
	}
	return gl.LESS
}

// FaceOrder is the winding order of front facing primitives.
type FaceOrder int

// List of valid FaceOrder values.
const (
	CW FaceOrder = iota
	CCW
)

func (o FaceOrder) String() string {
	switch o {
	case CW:
		return "clockwise"
	case CCW:
		return "counter-clockwise"
	}
	return "unknown order"
}

func (o FaceOrder) toGL() gl.Enum {
	if o == CW {
		return gl.CW
	}
	return gl.CCW
}

// DecodeFaceOrder returns the FaceOrder for a raw driver value. An error with
// the UnknownFaceCullingOrder pattern is returned if the value is not
// recognised.
func DecodeFaceOrder(raw int) (FaceOrder, error) {
	switch gl.Enum(raw) {
	case gl.CW:
		return CW, nil
	case gl.CCW:
		return CCW, nil
	}
	return CCW, curated.Errorf(UnknownFaceCullingOrder, raw)
}

// FaceMode is the set of faces that are culled.
type FaceMode int

// List of valid FaceMode values.
const (
	Front FaceMode = iota
	Back
	Both
)

func (m FaceMode) String() string {
	switch m {
	case Front:
		return "front"
	case Back:
		return "back"
	case Both:
		return "front and back"
	}
	return "unknown mode"
}

func (m FaceMode) toGL() gl.Enum {
	switch m {
	case Front:
		return gl.FRONT
	case Back:
		return gl.BACK
	case Both:
		return gl.FRONT_AND_BACK
	}
	return gl.BACK
}

// DecodeFaceMode returns the FaceMode for a raw driver value. An error with
// the UnknownFaceCullingMode pattern is returned if the value is not
// recognised.
func DecodeFaceMode(raw int) (FaceMode, error) {
	switch gl.Enum(raw) {
	case gl.FRONT:
		return Front, nil
	case gl.BACK:
		return Back, nil
	case gl.FRONT_AND_BACK:
		return Both, nil
	}
	return Back, curated.Errorf(UnknownFaceCullingMode, raw)
}

// VertexRestart is the state of primitive restart.
type VertexRestart int

// List of valid VertexRestart values.
const (
	Off VertexRestart = iota
	On
)

func (v VertexRestart) String() string {
	if v == On {
		return "on"
	}
	return "off"
}

// MaxTextureUnits is the number of texture units the shadow state will
// track. It is above the MAX_COMBINED_TEXTURE_IMAGE_UNITS of any driver seen
// in practice.
const MaxTextureUnits = 0x100

// MaxUniformBufferBindings is the number of uniform buffer binding points the
// shadow state will track.
const MaxUniformBufferBindings = 0x100

// DecodeTextureUnit returns the texture unit number for the raw value of the
// active texture. An error with the UnknownTextureUnit pattern is returned if
// the value is not a texture unit or the unit is MaxTextureUnits or higher.
func DecodeTextureUnit(raw int) (uint32, error) {
	if raw < int(gl.TEXTURE0) || raw >= int(gl.TEXTURE0)+MaxTextureUnits {
		return 0, curated.Errorf(UnknownTextureUnit, raw)
	}
	return uint32(raw - int(gl.TEXTURE0)), nil
}

// TextureTarget is the type of a texture bound to a texture unit.
type TextureTarget int

// List of valid TextureTarget values.
const (
	Texture2D TextureTarget = iota
	Texture1D
	Texture3D
	TextureCubeMap
	Texture2DArray
)

func (t TextureTarget) String() string {
	switch t {
	case Texture1D:
		return "1D"
	case Texture2D:
		return "2D"
	case Texture3D:
		return "3D"
	case TextureCubeMap:
		return "cube map"
	case Texture2DArray:
		return "2D array"
	}
	return "unknown target"
}

func (t TextureTarget) toGL() gl.Enum {
	switch t {
	case Texture1D:
		return gl.TEXTURE_1D
	case Texture2D:
		return gl.TEXTURE_2D
	case Texture3D:
		return gl.TEXTURE_3D
	case TextureCubeMap:
		return gl.TEXTURE_CUBE_MAP
	case Texture2DArray:
		return gl.TEXTURE_2D_ARRAY
	}
	return gl.TEXTURE_2D
}

// BlendingState is the complete blending state.
type BlendingState struct {
	Enabled  bool
	Equation Equation
	Src      Factor
	Dst      Factor
}

// DepthTest is the complete depth test state.
type DepthTest struct {
	Enabled    bool
	Comparison Comparison
}

// FaceCulling is the complete face culling state.
type FaceCulling struct {
	Enabled bool
	Order   FaceOrder
	Mode    FaceMode
}

// BoundTexture is the texture bound to a texture unit.
type BoundTexture struct {
	Target TextureTarget
	Object uint32
}

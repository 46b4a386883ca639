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

// List of error patterns returned by this package.
const (
	UnavailableGraphicsState = "state: graphics state unavailable: already in use by this goroutine"

	// the unrecognised raw driver value is carried by the error
	UnknownBlendingEquation  = "state: unknown blending equation: %#x"
	UnknownBlendingSrcFactor = "state: unknown blending source factor: %#x"
	UnknownBlendingDstFactor = "state: unknown blending destination factor: %#x"
	UnknownFaceCullingOrder  = "state: unknown face culling order: %#x"
	UnknownFaceCullingMode   = "state: unknown face culling mode: %#x"
	UnknownTextureUnit       = "state: unknown texture unit: %#x"

	UnknownUniformBufferBinding = "state: unknown uniform buffer binding: %d"

	VertexRestartFixed = "state: vertex restart cannot be changed on this backend"
)

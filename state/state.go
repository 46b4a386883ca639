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
	"github.com/jetsetilly/glstate/assert"
	"github.com/jetsetilly/glstate/backend"
	"github.com/jetsetilly/glstate/gl"
	"github.com/jetsetilly/glstate/logger"
)

// PipelineState is the shadow copy of the pipeline state of one graphics
// context.
type PipelineState struct {
	backend backend.Backend
	fns     gl.Functions
	profile backend.Profile
	prefs   *Preferences

	// the goroutine holding the permit
	owner    uint64
	released bool

	shadow Snapshot
}

func newPipelineState(b backend.Backend, p *Preferences) (*PipelineState, error) {
	if p == nil {
		var err error
		p, err = NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	owner, err := acquirePermit()
	if err != nil {
		return nil, err
	}

	st := &PipelineState{
		backend: b,
		fns:     b.Functions(),
		profile: b.Profile(),
		prefs:   p,
		owner:   owner,
	}

	return st, nil
}

// FromLiveContext creates a PipelineState by querying the driver of the
// backend. A nil Preferences instance means the default preferences are used.
//
// Returns an error with the UnavailableGraphicsState pattern if the calling
// goroutine already has a PipelineState. If the driver reports a value that
// is not recognised an error with one of the Unknown patterns is returned.
//
// The depth comparison function is not queried and is assumed to be Less.
// Texture units and uniform buffer binding points are not queried and are
// assumed to be unbound. The number of texture units and uniform buffer
// binding points is taken from the backend's profile.
func FromLiveContext(b backend.Backend, p *Preferences) (*PipelineState, error) {
	st, err := newPipelineState(b, p)
	if err != nil {
		return nil, err
	}

	st.shadow, err = st.query()
	if err != nil {
		st.Release()
		return nil, err
	}

	logger.Logf(st.prefs, "state", "bootstrapped from %s driver", b.Name())

	return st, nil
}

// New creates a PipelineState without querying the driver. The shadow holds
// the default values of a newly created context. It is the responsibility of
// the caller to make sure that the driver really is in that state.
//
// Returns an error with the UnavailableGraphicsState pattern if the calling
// goroutine already has a PipelineState.
func New(b backend.Backend, p *Preferences) (*PipelineState, error) {
	st, err := newPipelineState(b, p)
	if err != nil {
		return nil, err
	}
	st.shadow = defaultShadow(st.profile)
	return st, nil
}

// Release gives up the calling goroutine's claim on the graphics state so
// that another PipelineState can be created. It is safe to call Release()
// more than once. The PipelineState must not be used after it has been
// released.
func (st *PipelineState) Release() {
	if st.released {
		return
	}
	st.released = true
	releasePermit(st.owner)
}

// Resync queries the driver and replaces the shadow with the results. The
// same rules as FromLiveContext() apply. The shadow is not changed if there is
// an error.
func (st *PipelineState) Resync() error {
	assert.SameGoRoutine(st.owner)

	s, err := st.query()
	if err != nil {
		return err
	}
	st.shadow = s

	logger.Logf(st.prefs, "state", "resynchronised with %s driver", st.backend.Name())

	return nil
}

// Backend returns the backend the PipelineState was created with.
func (st *PipelineState) Backend() backend.Backend {
	return st.backend
}

// Preferences returns the preferences of the PipelineState.
func (st *PipelineState) Preferences() *Preferences {
	return st.prefs
}

// elide returns true if the driver call can be skipped
func (st *PipelineState) elide(same bool) bool {
	return same && st.prefs.Elide.Value()
}

func defaultShadow(profile backend.Profile) Snapshot {
	s := Snapshot{
		Blending: BlendingState{
			Equation: Additive,
			Src:      One,
			Dst:      Zero,
		},
		DepthTest: DepthTest{
			Comparison: Less,
		},
		FaceCulling: FaceCulling{
			Order: CCW,
			Mode:  Back,
		},
		VertexRestart:       Off,
		BoundTextures:       make([]BoundTexture, profile.TextureUnits),
		BoundUniformBuffers: make([]uint32, profile.UniformBufferBindings),
	}

	if profile.VertexRestart == backend.FixedOn {
		s.VertexRestart = On
	}

	return s
}

// query every field from the driver
func (st *PipelineState) query() (Snapshot, error) {
	s := defaultShadow(st.profile)

	var err error

	s.Blending.Enabled = st.fns.IsEnabled(gl.BLEND)
	s.Blending.Equation, err = DecodeEquation(st.fns.GetInteger(gl.BLEND_EQUATION_RGB))
	if err != nil {
		return s, err
	}
	s.Blending.Src, err = DecodeSrcFactor(st.fns.GetInteger(gl.BLEND_SRC_RGB))
	if err != nil {
		return s, err
	}
	s.Blending.Dst, err = DecodeDstFactor(st.fns.GetInteger(gl.BLEND_DST_RGB))
	if err != nil {
		return s, err
	}

	// the depth comparison function keeps the default value
	s.DepthTest.Enabled = st.fns.IsEnabled(gl.DEPTH_TEST)

	s.FaceCulling.Enabled = st.fns.IsEnabled(gl.CULL_FACE)
	s.FaceCulling.Order, err = DecodeFaceOrder(st.fns.GetInteger(gl.FRONT_FACE))
	if err != nil {
		return s, err
	}
	s.FaceCulling.Mode, err = DecodeFaceMode(st.fns.GetInteger(gl.CULL_FACE_MODE))
	if err != nil {
		return s, err
	}

	// vertex restart can only be queried on some backends. for the others the
	// default value is correct
	if st.profile.VertexRestart == backend.Queryable {
		if st.fns.IsEnabled(gl.PRIMITIVE_RESTART) {
			s.VertexRestart = On
		} else {
			s.VertexRestart = Off
		}
	}

	s.TextureUnit, err = DecodeTextureUnit(st.fns.GetInteger(gl.ACTIVE_TEXTURE))
	if err != nil {
		return s, err
	}
	s.growTextures(s.TextureUnit)

	s.ArrayBuffer = uint32(st.fns.GetInteger(gl.ARRAY_BUFFER_BINDING))
	s.ElementArrayBuffer = uint32(st.fns.GetInteger(gl.ELEMENT_ARRAY_BUFFER_BINDING))
	s.DrawFramebuffer = uint32(st.fns.GetInteger(gl.DRAW_FRAMEBUFFER_BINDING))
	s.VertexArray = uint32(st.fns.GetInteger(gl.VERTEX_ARRAY_BINDING))
	s.CurrentProgram = uint32(st.fns.GetInteger(gl.CURRENT_PROGRAM))

	return s, nil
}

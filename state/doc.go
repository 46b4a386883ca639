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

// Package state keeps a shadow copy of the graphics pipeline state of a
// single graphics context. Setters compare the requested value against the
// shadow and only call the driver when the value differs.
//
// A PipelineState is created either by querying the live driver with
// FromLiveContext() or, when there is no driver to query, with New(). Only
// one PipelineState can exist for a goroutine at a time. The goroutine that
// creates the PipelineState must be locked to the OS thread that holds the
// graphics context (see runtime.LockOSThread()) and all subsequent calls must
// be made from that goroutine. When compiled with the assertions build tag
// the setters panic if this rule is broken.
//
// Code outside of glstate that changes driver state must tell the
// PipelineState. Objects that have been deleted can be removed from the
// shadow with the Unbind*() functions. If foreign code has made changes that
// cannot be described then Resync() queries the driver again.
//
// The Elide preference can be set to false to force every setter to call the
// driver. This is useful when it is suspected that the shadow has diverged
// from the driver. It can be set on the command line with
//
//	state.elide::false
package state

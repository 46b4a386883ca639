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

//go:build !js

package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/glstate/backend"
	glstate "github.com/jetsetilly/glstate/gl"
	"github.com/jetsetilly/glstate/logger"
)

// Backend implements the backend.Backend interface for desktop OpenGL.
type Backend struct {
	*backend.Device
}

// New is the preferred method of initialisation for the Backend type. The
// go-gl function table is initialised and the driver identity is logged.
func New() (*Backend, error) {
	err := gl.Init()
	if err != nil {
		return nil, fmt.Errorf("opengl: %w", err)
	}

	// log GPU vendor information
	logger.Logf(logger.Allow, "opengl", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "opengl", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "opengl", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	// the stage types that can be compiled depend on the version of the
	// context and not on the version of the bindings
	fns := functions{}
	major := fns.GetInteger(glstate.MAJOR_VERSION)
	minor := fns.GetInteger(glstate.MINOR_VERSION)
	logger.Logf(logger.Allow, "opengl", "context version: %d.%d", major, minor)

	return &Backend{
		Device: backend.NewDevice("opengl", fns, backend.DesktopProfileForVersion(major, minor)),
	}, nil
}

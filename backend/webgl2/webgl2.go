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

//go:build js && wasm

package webgl2

import (
	"errors"
	"syscall/js"

	"github.com/jetsetilly/glstate/backend"
	"github.com/jetsetilly/glstate/gl"
	"github.com/jetsetilly/glstate/logger"
)

// Backend implements the backend.Backend interface for WebGL2.
type Backend struct {
	*backend.Device
	fns *functions
}

// New is the preferred method of initialisation for the Backend type. The
// context must be a WebGL2RenderingContext.
func New(ctx js.Value) (*Backend, error) {
	class := js.Global().Get("WebGL2RenderingContext")
	if class.IsUndefined() || !ctx.InstanceOf(class) {
		return nil, errors.New("webgl2: not a WebGL2RenderingContext")
	}

	fns := newFunctions(ctx)

	logger.Logf(logger.Allow, "webgl2", "vendor: %s", fns.GetString(gl.VENDOR))
	logger.Logf(logger.Allow, "webgl2", "renderer: %s", fns.GetString(gl.RENDERER))
	logger.Logf(logger.Allow, "webgl2", "driver: %s", fns.GetString(gl.VERSION))

	return &Backend{
		Device: backend.NewDevice("webgl2", fns, backend.WebGL2Profile),
		fns:    fns,
	}, nil
}

// Register returns the id for a WebGL object. Registering the same object
// more than once returns the same id. A null or undefined value is id zero.
func (b *Backend) Register(obj js.Value) uint32 {
	return b.fns.objects.register(obj)
}

// Object returns the WebGL object for the id. Returns null if the id is zero
// or has not been registered.
func (b *Backend) Object(id uint32) js.Value {
	return b.fns.objects.lookup(id)
}

// Forget removes the object from the table. It should be called after the
// object has been deleted.
func (b *Backend) Forget(id uint32) {
	b.fns.objects.forget(id)
}

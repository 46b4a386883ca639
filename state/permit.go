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
	"sync"

	"github.com/jetsetilly/glstate/assert"
	"github.com/jetsetilly/glstate/curated"
)

// the goroutines that currently own a PipelineState
var permits = struct {
	crit  sync.Mutex
	owned map[uint64]bool
}{
	owned: make(map[uint64]bool),
}

// acquirePermit for the calling goroutine. returns the goroutine id that must
// be used to release the permit.
func acquirePermit() (uint64, error) {
	id := assert.GetGoRoutineID()

	permits.crit.Lock()
	defer permits.crit.Unlock()

	if permits.owned[id] {
		return 0, curated.Errorf(UnavailableGraphicsState)
	}
	permits.owned[id] = true

	return id, nil
}

func releasePermit(id uint64) {
	permits.crit.Lock()
	defer permits.crit.Unlock()
	delete(permits.owned, id)
}

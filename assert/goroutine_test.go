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

package assert_test

import (
	"testing"

	"github.com/jetsetilly/glstate/assert"
	"github.com/jetsetilly/glstate/test"
)

func TestGoRoutineID(t *testing.T) {
	id := assert.GetGoRoutineID()
	test.ExpectInequality(t, id, 0)
	test.ExpectEquality(t, assert.GetGoRoutineID(), id)

	other := make(chan uint64)
	go func() {
		other <- assert.GetGoRoutineID()
	}()
	test.ExpectInequality(t, <-other, id)
}

func TestSameGoRoutine(t *testing.T) {
	// the calling goroutine always passes, whether or not assertions are
	// compiled in
	assert.SameGoRoutine(assert.GetGoRoutineID())

	if !assert.Enabled {
		assert.SameGoRoutine(0)
		return
	}

	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	assert.SameGoRoutine(0)
}

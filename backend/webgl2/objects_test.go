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
	"syscall/js"
	"testing"

	"github.com/jetsetilly/glstate/test"
)

func newObject() js.Value {
	return js.Global().Get("Object").New()
}

func TestObjectTable(t *testing.T) {
	tab := newObjectTable()

	test.ExpectEquality(t, tab.register(js.Null()), uint32(0))
	test.ExpectEquality(t, tab.register(js.Undefined()), uint32(0))

	a := newObject()
	b := newObject()

	ida := tab.register(a)
	idb := tab.register(b)
	test.ExpectInequality(t, ida, uint32(0))
	test.ExpectInequality(t, ida, idb)

	// the same object always has the same id
	test.ExpectEquality(t, tab.register(a), ida)
	test.ExpectSuccess(t, tab.lookup(ida).Equal(a))

	tab.forget(ida)
	test.ExpectSuccess(t, tab.lookup(ida).IsNull())
	test.ExpectSuccess(t, a.Get(idProperty).IsUndefined())

	// a forgotten object is given a new id if it is seen again
	again := tab.register(a)
	test.ExpectInequality(t, again, ida)
	test.ExpectSuccess(t, tab.lookup(again).Equal(a))
	test.ExpectEquality(t, tab.register(b), idb)
}

func TestObjectTableStaleProperty(t *testing.T) {
	tab := newObjectTable()
	other := newObjectTable()

	// an id written by another table is not trusted
	a := newObject()
	b := newObject()
	test.ExpectEquality(t, other.register(a), uint32(1))
	test.ExpectEquality(t, tab.register(b), uint32(1))

	id := tab.register(a)
	test.ExpectEquality(t, id, uint32(2))
	test.ExpectSuccess(t, tab.lookup(id).Equal(a))
	test.ExpectSuccess(t, tab.lookup(1).Equal(b))
}

func TestLocationTable(t *testing.T) {
	tab := newLocationTable()

	test.ExpectEquality(t, tab.register(1, "a", js.Null()), int32(-1))

	la := newObject()
	lb := newObject()

	na := tab.register(1, "a", la)
	nb := tab.register(2, "a", lb)
	test.ExpectInequality(t, na, nb)
	test.ExpectEquality(t, tab.register(1, "a", la), na)

	loc, ok := tab.lookup(na)
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, loc.Equal(la))

	// forgetting a program leaves the locations of other programs
	tab.forget(1)
	_, ok = tab.lookup(na)
	test.ExpectFailure(t, ok)
	_, ok = tab.lookup(nb)
	test.ExpectSuccess(t, ok)

	test.ExpectInequality(t, tab.register(1, "a", la), na)
}

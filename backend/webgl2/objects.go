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
)

// the name of the property added to WebGL objects to hold the id
const idProperty = "__glstateID"

type objectTable struct {
	objects map[uint32]js.Value
	nextID  uint32
}

func newObjectTable() objectTable {
	return objectTable{
		objects: make(map[uint32]js.Value),
	}
}

func (tab *objectTable) register(obj js.Value) uint32 {
	if obj.IsNull() || obj.IsUndefined() {
		return 0
	}

	// the property may survive forget() if the object was shared with
	// another table. only trust it if this table still holds the object
	if id := obj.Get(idProperty); id.Type() == js.TypeNumber {
		if known, ok := tab.objects[uint32(id.Int())]; ok && known.Equal(obj) {
			return uint32(id.Int())
		}
	}

	tab.nextID++
	obj.Set(idProperty, tab.nextID)
	tab.objects[tab.nextID] = obj

	return tab.nextID
}

func (tab *objectTable) lookup(id uint32) js.Value {
	if obj, ok := tab.objects[id]; ok {
		return obj
	}
	return js.Null()
}

func (tab *objectTable) forget(id uint32) {
	if obj, ok := tab.objects[id]; ok {
		obj.Delete(idProperty)
		delete(tab.objects, id)
	}
}

type locationKey struct {
	program uint32
	name    string
}

// uniform locations are specific to a program. the table returns the same
// location number for repeated queries of the same uniform
type locationTable struct {
	locations map[int32]js.Value
	byName    map[locationKey]int32
	next      int32
}

func newLocationTable() locationTable {
	return locationTable{
		locations: make(map[int32]js.Value),
		byName:    make(map[locationKey]int32),
	}
}

func (tab *locationTable) register(program uint32, name string, loc js.Value) int32 {
	if loc.IsNull() || loc.IsUndefined() {
		return -1
	}

	key := locationKey{program: program, name: name}
	if n, ok := tab.byName[key]; ok {
		return n
	}

	n := tab.next
	tab.next++
	tab.locations[n] = loc
	tab.byName[key] = n

	return n
}

func (tab *locationTable) lookup(n int32) (js.Value, bool) {
	loc, ok := tab.locations[n]
	return loc, ok
}

// forget all locations of a program
func (tab *locationTable) forget(program uint32) {
	for key, n := range tab.byName {
		if key.program == program {
			delete(tab.locations, n)
			delete(tab.byName, key)
		}
	}
}

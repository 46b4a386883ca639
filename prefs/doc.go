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

// Package prefs provides typed preference values and a stack of command line
// overrides for them.
//
// Preference values are safe to read from any goroutine. Hooks can be
// registered to run before and after a value is changed.
//
// Command line overrides are strings of the form
//
//	"key::value; key::value"
//
// which are pushed onto a stack with PushCommandLineStack(). Packages that
// own preferences consult the top of the stack with GetCommandLinePref() when
// their preferences are created. For example, the state package reads the
// "state.elide" and "state.logging" keys.
package prefs

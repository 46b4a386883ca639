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

package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// a group is the set of key/value pairs from a single command line. entries
// are removed as they are consumed
type group map[string]Value

// String returns the unconsumed entries of the group in key order
func (g group) String() string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]string, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, fmt.Sprintf("%s::%v", k, g[k]))
	}

	return strings.Join(entries, "; ")
}

// parseGroup divides a command line of the form "key::value; key::value"
// into a group. malformed entries are ignored
func parseGroup(line string) group {
	g := make(group)
	for _, entry := range strings.Split(line, ";") {
		k, v, ok := strings.Cut(entry, "::")
		if !ok || strings.Contains(v, "::") {
			continue
		}
		g[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return g
}

var commandLine struct {
	crit  sync.Mutex
	stack []group
}

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	return len(commandLine.stack)
}

// PushCommandLineStack parses a command line and adds it as a new group.
func PushCommandLineStack(line string) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	commandLine.stack = append(commandLine.stack, parseGroup(line))
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack().
//
// Returns the entries of the group that were never consumed, in the same
// format as the command line.
func PopCommandLineStack() string {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	n := len(commandLine.stack)
	if n == 0 {
		return ""
	}

	top := commandLine.stack[n-1]
	commandLine.stack = commandLine.stack[:n-1]

	return top.String()
}

// GetCommandLinePref returns the value for the key from the most recent
// group. The entry is consumed.
func GetCommandLinePref(key string) (bool, Value) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	n := len(commandLine.stack)
	if n == 0 {
		return false, nil
	}

	top := commandLine.stack[n-1]
	v, ok := top[key]
	if !ok {
		return false, nil
	}
	delete(top, key)

	return true, v
}

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
	"github.com/jetsetilly/glstate/prefs"
)

// Preferences for the PipelineState.
type Preferences struct {
	// skip driver calls when the shadow already holds the requested value.
	// setting this to false means every setter calls the driver
	Elide prefs.Bool

	// allow the state and shader packages to add entries to the log
	Logging prefs.Bool
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values on the top of the prefs command line stack are
// applied after the defaults have been set.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	err := prefs.ApplyCommandLine("state.elide", &p.Elide)
	if err != nil {
		return nil, err
	}
	err = prefs.ApplyCommandLine("state.logging", &p.Logging)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.Elide.Set(true)
	p.Logging.Set(false)
}

// AllowLogging implements the logger.Permission interface.
func (p *Preferences) AllowLogging() bool {
	return p.Logging.Value()
}

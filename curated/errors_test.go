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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/glstate/curated"
	"github.com/jetsetilly/glstate/test"
)

const testPattern = "unknown blending equation: %#04x"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, uint32(0x1234))
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, "other: %v"))
	test.ExpectEquality(t, e.Error(), "unknown blending equation: 0x1234")

	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, uint32(0x1234))
	f := curated.Errorf("bootstrap: %v", e)
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, errors.Is(f, e))
}

func TestValues(t *testing.T) {
	e := curated.Errorf(testPattern, uint32(0x1234))
	v := curated.Values(e)
	test.DemandEquality(t, len(v), 1)
	test.ExpectEquality(t, v[0].(uint32), 0x1234)
	test.ExpectEquality(t, len(curated.Values(errors.New("plain"))), 0)
}

func TestNormalisation(t *testing.T) {
	e := curated.Errorf("stage: %v", curated.Errorf("stage: compilation failed"))
	test.ExpectEquality(t, e.Error(), "stage: compilation failed")
}

func TestCarriedTextUnchanged(t *testing.T) {
	// repeated parts after the leading part are not collapsed
	log := "0:3(1): error: error: unexpected '}'\n"
	e := curated.Errorf("backend: compilation failed: %s", log)
	test.ExpectEquality(t, e.Error(), "backend: compilation failed: "+log)

	e = curated.Errorf("uniform: inactive: %s", "a: a: a")
	test.ExpectEquality(t, e.Error(), "uniform: inactive: a: a: a")
}

// SPDX-FileCopyrightText: Copyright The system-tz Authors
// SPDX-License-Identifier: Apache-2.0

package windowszones

import (
	"errors"
	"testing"
	"time"

	// Invariant checks load every mapped zone; do not depend on the host
	// having zoneinfo files.
	_ "time/tzdata"

	"gotest.tools/v3/assert"
)

func TestResolve(t *testing.T) {
	t.Run("exact territory", func(t *testing.T) {
		name, err := Resolve("Romance Standard Time", "FR")
		assert.NilError(t, err)
		assert.Equal(t, "Europe/Paris", name)
	})
	t.Run("territory casing is normalized", func(t *testing.T) {
		name, err := Resolve("Romance Standard Time", "fr")
		assert.NilError(t, err)
		assert.Equal(t, "Europe/Paris", name)
	})
	t.Run("territory overrides the default", func(t *testing.T) {
		name, err := Resolve("US Mountain Standard Time", "CA")
		assert.NilError(t, err)
		assert.Equal(t, "America/Creston", name)

		name, err = Resolve("US Mountain Standard Time", DefaultTerritory)
		assert.NilError(t, err)
		assert.Equal(t, "America/Phoenix", name)
	})
	t.Run("unknown territory falls back to the default", func(t *testing.T) {
		fallback, err := Resolve("Romance Standard Time", "ZZ")
		assert.NilError(t, err)
		def, err2 := Resolve("Romance Standard Time", DefaultTerritory)
		assert.NilError(t, err2)
		assert.Equal(t, def, fallback)
	})
	t.Run("empty territory falls back to the default", func(t *testing.T) {
		name, err := Resolve("Arabian Standard Time", "")
		assert.NilError(t, err)
		assert.Equal(t, "Asia/Dubai", name)
	})
	t.Run("unknown zone", func(t *testing.T) {
		_, err := Resolve("Not A Real Zone", "FR")
		assert.Assert(t, errors.Is(err, ErrUnknownZone))
	})
}

// Any territory not present for a zone key must resolve exactly like the
// worldwide default. "AA" is a user-assigned ISO 3166 code that CLDR never
// uses, so it is absent for every key.
func TestResolveFallbackEquivalence(t *testing.T) {
	for _, e := range Entries() {
		if e.Territory != DefaultTerritory {
			continue
		}
		got, err := Resolve(e.Zone, "AA")
		assert.NilError(t, err)
		assert.Equal(t, e.IANA[0], got, "zone %q", e.Zone)
	}
}

func TestZoneForID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		e, err := ZoneForID("Europe/Vienna")
		assert.NilError(t, err)
		assert.Equal(t, "W. Europe Standard Time", e.Zone)
		assert.Equal(t, "AT", e.Territory)
	})
	t.Run("roundtrip", func(t *testing.T) {
		e, err := ZoneForID("Europe/Paris")
		assert.NilError(t, err)
		name, err := Resolve(e.Zone, e.Territory)
		assert.NilError(t, err)
		assert.Equal(t, "Europe/Paris", name)
	})
	t.Run("unmapped", func(t *testing.T) {
		_, err := ZoneForID("Mars/Olympus_Mons")
		assert.Assert(t, errors.Is(err, ErrUnmappedID))
	})
}

func TestDatasetInvariants(t *testing.T) {
	type pair struct{ zone, territory string }
	seen := make(map[pair]struct{})
	defaults := make(map[string]struct{})

	for _, e := range Entries() {
		p := pair{e.Zone, e.Territory}
		if _, ok := seen[p]; ok {
			t.Errorf("duplicate pair: %+v", p)
		}
		seen[p] = struct{}{}

		if e.Territory == DefaultTerritory {
			defaults[e.Zone] = struct{}{}
		}

		if len(e.IANA) == 0 {
			t.Errorf("zone %q territory %q has no IANA identifiers", e.Zone, e.Territory)
			continue
		}
		if _, err := time.LoadLocation(e.IANA[0]); err != nil {
			t.Errorf("zone %q territory %q: preferred identifier: %v", e.Zone, e.Territory, err)
		}
	}

	for _, e := range Entries() {
		if _, ok := defaults[e.Zone]; !ok {
			t.Errorf("zone %q has no %q mapping", e.Zone, DefaultTerritory)
		}
	}
}

// Every zone key must resolve with the default territory; together with
// the fallback this means resolution can only fail for unknown keys.
func TestEveryZoneResolvesWithDefault(t *testing.T) {
	for _, e := range Entries() {
		_, err := Resolve(e.Zone, DefaultTerritory)
		assert.NilError(t, err, "zone %q", e.Zone)
	}
}

func TestVersion(t *testing.T) {
	v := Version()
	assert.Assert(t, v.OtherVersion != "")
	assert.Assert(t, v.TypeVersion != "")
	assert.Assert(t, v.Hash != 0)
	_, err := time.Parse(time.RFC3339, v.GeneratedAt)
	assert.NilError(t, err)
}

// SPDX-FileCopyrightText: Copyright The system-tz Authors
// SPDX-License-Identifier: Apache-2.0

// Package windowszones resolves Windows time zone keys to IANA time zone
// identifiers using a table generated from the Unicode CLDR WindowsZones
// dataset. The table is compiled into the binary; resolution is a pure
// in-memory lookup with no I/O.
package windowszones

//go:generate go run ../../cmd/gen-windows-zones --output zones_gen.go

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// DefaultTerritory is the CLDR sentinel for the worldwide default mapping
// of a Windows zone key. Every zone key in the table has a row for it.
const DefaultTerritory = "001"

// ErrUnknownZone is returned when a Windows zone key is not covered by the
// bundled dataset, even via the worldwide default. It usually means the
// dataset needs regenerating against a newer OS release.
var ErrUnknownZone = errors.New("windows zone not in bundled dataset")

// ErrUnmappedID is returned by ZoneForID when no Windows zone maps to the
// given IANA identifier.
var ErrUnmappedID = errors.New("no windows zone maps to IANA identifier")

// Entry is one row of the bundled dataset.
type Entry struct {
	// Zone is the Windows zone key, e.g. "Romance Standard Time".
	Zone string
	// Territory is an uppercase two-letter region code, or DefaultTerritory.
	Territory string
	// IANA holds at least one IANA identifier; the first one is preferred.
	IANA []string
}

// DatasetVersion describes the bundled dataset.
type DatasetVersion struct {
	// OtherVersion and TypeVersion are the CLDR mapTimezones attributes.
	OtherVersion string
	TypeVersion  string
	// GeneratedAt is the RFC 3339 generation timestamp.
	GeneratedAt string
	// Hash is a FNV-64a digest of the dataset contents.
	Hash uint64
}

// Version returns the version metadata of the bundled dataset.
func Version() DatasetVersion {
	return datasetVersion
}

// Entries returns the bundled dataset rows, ordered by zone key with the
// DefaultTerritory row first within each key. The returned slice must not
// be modified.
func Entries() []Entry {
	return entries
}

type key struct {
	zone, territory string
}

// The index is built at most once per process; entries is immutable, so
// lookups after that need no locking.
var index = sync.OnceValue(func() map[key]*Entry {
	m := make(map[key]*Entry, len(entries))
	for i := range entries {
		e := &entries[i]
		m[key{e.Zone, e.Territory}] = e
	}
	return m
})

// Resolve maps a Windows zone key and a two-letter territory code to the
// preferred IANA identifier. An empty or unrecognized territory degrades
// to the worldwide default mapping for the zone key; a zone key absent
// from the dataset fails with ErrUnknownZone.
func Resolve(zone, territory string) (string, error) {
	e, err := Lookup(zone, territory)
	if err != nil {
		return "", err
	}
	return e.IANA[0], nil
}

// Lookup is Resolve without the reduction to the preferred identifier.
func Lookup(zone, territory string) (*Entry, error) {
	m := index()
	territory = strings.ToUpper(strings.TrimSpace(territory))
	if territory == "" {
		territory = DefaultTerritory
	}
	if e, ok := m[key{zone, territory}]; ok {
		return e, nil
	}
	if e, ok := m[key{zone, DefaultTerritory}]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownZone, zone)
}

// ZoneForID returns the first dataset row whose IANA identifiers contain
// id. It is the reverse direction of Resolve, e.g. for announcing which
// Windows zone corresponds to a configured IANA zone.
func ZoneForID(id string) (*Entry, error) {
	for i := range entries {
		for _, candidate := range entries[i].IANA {
			if candidate == id {
				return &entries[i], nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnmappedID, id)
}

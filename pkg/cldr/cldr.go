// SPDX-FileCopyrightText: Copyright The system-tz Authors
// SPDX-License-Identifier: Apache-2.0

// Package cldr fetches and extracts the Unicode CLDR "WindowsZones"
// dataset, the reference mapping between Windows time zone keys and
// IANA time zone identifiers. It is consumed by gen-windows-zones at
// build time and is never linked into the runtime resolution path.
package cldr

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/b4D8/system-tz/pkg/httpclientutil"
	"github.com/b4D8/system-tz/pkg/progressbar"
)

// DefaultURL points at the canonical upstream copy of windowsZones.xml.
const DefaultURL = "https://raw.githubusercontent.com/unicode-org/cldr/main/common/supplemental/windowsZones.xml"

// DefaultTerritory is the CLDR sentinel for the worldwide default mapping
// of a Windows zone key.
const DefaultTerritory = "001"

// MapZone is one extracted mapping row.
type MapZone struct {
	// Zone is the Windows zone key, e.g. "Romance Standard Time".
	Zone string
	// Territory is an uppercase two-letter region code, or DefaultTerritory.
	Territory string
	// IANA holds at least one IANA identifier; the first one is preferred.
	IANA []string
}

// Dataset is the validated result of extracting windowsZones.xml.
type Dataset struct {
	// OtherVersion and TypeVersion are the dataset version attributes
	// carried by the <mapTimezones> element.
	OtherVersion string
	TypeVersion  string
	// Zones is ordered by zone key, with the DefaultTerritory row first
	// within each key.
	Zones []MapZone
	// Skipped counts malformed <mapZone> elements that were dropped.
	Skipped int
}

// Fetch retrieves the raw dataset. Any network or non-2XX condition is an
// error; there is deliberately no cache to fall back to, so that a stale
// dataset can never slip into a build.
func Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := httpclientutil.Get(ctx, http.DefaultClient, url)
	if err != nil {
		return nil, fmt.Errorf("failed to download %q: %w", url, err)
	}
	defer resp.Body.Close()

	bar, err := progressbar.New(resp.ContentLength)
	if err != nil {
		return nil, err
	}
	bar.Start()
	defer bar.Finish()

	b, err := io.ReadAll(bar.NewProxyReader(resp.Body))
	if err != nil {
		return nil, fmt.Errorf("failed to read body of %q: %w", url, err)
	}
	return b, nil
}

// XML shapes of windowsZones.xml:
//
//	<supplementalData>
//	  <windowsZones>
//	    <mapTimezones otherVersion="..." typeVersion="...">
//	      <mapZone other="..." territory="..." type="id [id ...]"/>
type supplementalData struct {
	XMLName      xml.Name `xml:"supplementalData"`
	WindowsZones struct {
		MapTimezones struct {
			OtherVersion string    `xml:"otherVersion,attr"`
			TypeVersion  string    `xml:"typeVersion,attr"`
			MapZones     []mapZone `xml:"mapZone"`
		} `xml:"mapTimezones"`
	} `xml:"windowsZones"`
}

type mapZone struct {
	Other     string `xml:"other,attr"`
	Territory string `xml:"territory,attr"`
	Type      string `xml:"type,attr"`
}

// Extract parses the raw document into a Dataset and enforces the table
// invariants. Malformed <mapZone> elements are skipped and counted;
// anything that would leave the table empty, ambiguous, or without a
// worldwide default for a known zone key fails the extraction outright.
func Extract(raw []byte) (*Dataset, error) {
	var doc supplementalData
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse windowsZones XML: %w", err)
	}

	mt := doc.WindowsZones.MapTimezones
	ds := &Dataset{
		OtherVersion: mt.OtherVersion,
		TypeVersion:  mt.TypeVersion,
	}

	type pair struct{ zone, territory string }
	seen := make(map[pair]struct{}, len(mt.MapZones))

	for _, mz := range mt.MapZones {
		zone := strings.TrimSpace(mz.Other)
		territory := strings.ToUpper(strings.TrimSpace(mz.Territory))
		ids := strings.Fields(mz.Type)
		if zone == "" || territory == "" || len(ids) == 0 {
			ds.Skipped++
			continue
		}
		p := pair{zone, territory}
		if _, ok := seen[p]; ok {
			return nil, fmt.Errorf("duplicate mapping for zone %q territory %q", zone, territory)
		}
		seen[p] = struct{}{}
		ds.Zones = append(ds.Zones, MapZone{Zone: zone, Territory: territory, IANA: ids})
	}

	if len(ds.Zones) == 0 {
		return nil, errors.New("no valid mapZone elements in dataset")
	}

	// Windows reports the zone by its English standard name, which the CLDR
	// keys do not cover for UTC itself.
	utc := pair{"Coordinated Universal Time", DefaultTerritory}
	if _, ok := seen[utc]; !ok {
		ds.Zones = append(ds.Zones, MapZone{
			Zone:      utc.zone,
			Territory: utc.territory,
			IANA:      []string{"Etc/UTC"},
		})
	}

	sort.Slice(ds.Zones, func(i, j int) bool {
		a, b := ds.Zones[i], ds.Zones[j]
		if a.Zone != b.Zone {
			return a.Zone < b.Zone
		}
		return territoryLess(a.Territory, b.Territory)
	})

	if err := validate(ds.Zones); err != nil {
		return nil, err
	}
	return ds, nil
}

// territoryLess orders the DefaultTerritory row before regular territories.
func territoryLess(a, b string) bool {
	if a == DefaultTerritory || b == DefaultTerritory {
		return a == DefaultTerritory && b != DefaultTerritory
	}
	return a < b
}

// validate checks the per-zone default-territory invariant and that every
// IANA identifier is known to the tz database in use.
func validate(zones []MapZone) error {
	defaults := make(map[string]struct{})
	for _, z := range zones {
		if z.Territory == DefaultTerritory {
			defaults[z.Zone] = struct{}{}
		}
	}
	for _, z := range zones {
		if _, ok := defaults[z.Zone]; !ok {
			return fmt.Errorf("zone %q has no %q (worldwide default) mapping", z.Zone, DefaultTerritory)
		}
		for _, id := range z.IANA {
			if _, err := time.LoadLocation(id); err != nil {
				return fmt.Errorf("zone %q maps to unknown IANA identifier %q: %w", z.Zone, id, err)
			}
		}
	}
	return nil
}

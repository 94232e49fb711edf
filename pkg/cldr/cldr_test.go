// SPDX-FileCopyrightText: Copyright The system-tz Authors
// SPDX-License-Identifier: Apache-2.0

package cldr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	// The extractor validates IANA identifiers; do not depend on the host
	// having zoneinfo files.
	_ "time/tzdata"

	"gotest.tools/v3/assert"

	"github.com/b4D8/system-tz/pkg/progressbar"
)

func TestMain(m *testing.M) {
	progressbar.HideProgress = true
	os.Exit(m.Run())
}

const fixture = `<?xml version="1.0" encoding="UTF-8"?>
<supplementalData>
	<windowsZones>
		<mapTimezones otherVersion="7e11800" typeVersion="2021a">
			<mapZone other="Romance Standard Time" territory="001" type="Europe/Paris"/>
			<mapZone other="Romance Standard Time" territory="fr" type="Europe/Paris"/>
			<mapZone other="Romance Standard Time" territory="ES" type="Europe/Madrid Africa/Ceuta"/>
			<mapZone other="GMT Standard Time" territory="001" type="Europe/London"/>
			<mapZone other="" territory="001" type="Europe/London"/>
			<mapZone other="Bogus Standard Time" territory="XX" type=" "/>
		</mapTimezones>
	</windowsZones>
</supplementalData>`

func TestExtract(t *testing.T) {
	ds, err := Extract([]byte(fixture))
	assert.NilError(t, err)

	assert.Equal(t, "7e11800", ds.OtherVersion)
	assert.Equal(t, "2021a", ds.TypeVersion)
	// the empty zone key and the empty identifier list
	assert.Equal(t, 2, ds.Skipped)

	assert.DeepEqual(t, ds.Zones, []MapZone{
		{"Coordinated Universal Time", "001", []string{"Etc/UTC"}},
		{"GMT Standard Time", "001", []string{"Europe/London"}},
		{"Romance Standard Time", "001", []string{"Europe/Paris"}},
		{"Romance Standard Time", "ES", []string{"Europe/Madrid", "Africa/Ceuta"}},
		{"Romance Standard Time", "FR", []string{"Europe/Paris"}},
	})
}

func TestExtractFailures(t *testing.T) {
	const header = `<supplementalData><windowsZones><mapTimezones otherVersion="x" typeVersion="y">`
	const footer = `</mapTimezones></windowsZones></supplementalData>`

	t.Run("not XML", func(t *testing.T) {
		_, err := Extract([]byte("{}"))
		assert.ErrorContains(t, err, "failed to parse")
	})
	t.Run("empty table", func(t *testing.T) {
		_, err := Extract([]byte(header + footer))
		assert.ErrorContains(t, err, "no valid mapZone elements")
	})
	t.Run("duplicate pair", func(t *testing.T) {
		doc := header +
			`<mapZone other="GMT Standard Time" territory="001" type="Europe/London"/>` +
			`<mapZone other="GMT Standard Time" territory="001" type="Europe/Dublin"/>` +
			footer
		_, err := Extract([]byte(doc))
		assert.ErrorContains(t, err, "duplicate mapping")
	})
	t.Run("missing worldwide default", func(t *testing.T) {
		doc := header +
			`<mapZone other="Romance Standard Time" territory="FR" type="Europe/Paris"/>` +
			footer
		_, err := Extract([]byte(doc))
		assert.ErrorContains(t, err, `has no "001"`)
	})
	t.Run("unknown IANA identifier", func(t *testing.T) {
		doc := header +
			`<mapZone other="Atlantis Standard Time" territory="001" type="Atlantis/Poseidonis"/>` +
			footer
		_, err := Extract([]byte(doc))
		assert.ErrorContains(t, err, "unknown IANA identifier")
	})
}

func TestFetch(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(fixture))
		}))
		defer ts.Close()

		b, err := Fetch(context.Background(), ts.URL)
		assert.NilError(t, err)
		assert.Equal(t, fixture, string(b))
	})
	t.Run("non-2XX is fatal", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "gone fishing", http.StatusNotFound)
		}))
		defer ts.Close()

		_, err := Fetch(context.Background(), ts.URL)
		assert.ErrorContains(t, err, "unexpected HTTP status")
	})
	t.Run("unreachable is fatal", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
		defer cancel()
		_, err := Fetch(ctx, "http://127.0.0.1:1/windowsZones.xml")
		assert.Assert(t, err != nil)
	})
}

func TestEmit(t *testing.T) {
	ds, err := Extract([]byte(fixture))
	assert.NilError(t, err)

	src, err := Emit(ds, time.Date(2026, 8, 19, 14, 2, 37, 0, time.UTC))
	assert.NilError(t, err)

	out := string(src)
	assert.Assert(t, strings.HasPrefix(out, "// Code generated by gen-windows-zones. DO NOT EDIT."))
	assert.Assert(t, strings.Contains(out, "package windowszones"))
	assert.Assert(t, strings.Contains(out, `GeneratedAt:  "2026-08-19T14:02:37Z",`))
	assert.Assert(t, strings.Contains(out, `{"Romance Standard Time", "ES", []string{"Europe/Madrid", "Africa/Ceuta"}},`))
}

func TestHashIsStable(t *testing.T) {
	ds, err := Extract([]byte(fixture))
	assert.NilError(t, err)
	assert.Equal(t, Hash(ds), Hash(ds))

	other := *ds
	other.TypeVersion = "2021b"
	assert.Assert(t, Hash(ds) != Hash(&other))
}

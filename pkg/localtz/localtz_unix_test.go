// SPDX-FileCopyrightText: Copyright The system-tz Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package localtz

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
)

func TestSystemTimeZoneFromEnv(t *testing.T) {
	t.Setenv("TZ", "Europe/Paris")
	name, err := SystemTimeZone()
	assert.NilError(t, err)
	assert.Equal(t, "Europe/Paris", name)
}

func TestSystemTimeZoneFromEnvWithColon(t *testing.T) {
	// TZ may carry the POSIX implementation-defined colon prefix.
	t.Setenv("TZ", ":Asia/Tokyo")
	name, err := SystemTimeZone()
	assert.NilError(t, err)
	assert.Equal(t, "Asia/Tokyo", name)
}

func TestSystemLocation(t *testing.T) {
	t.Setenv("TZ", "America/New_York")
	loc, err := SystemLocation()
	assert.NilError(t, err)
	assert.Equal(t, "America/New_York", loc.String())
}

func TestZoneFromZoneinfoPath(t *testing.T) {
	assert.Equal(t, "Europe/Paris", zoneFromZoneinfoPath("/usr/share/zoneinfo/Europe/Paris"))
	assert.Equal(t, "America/Argentina/Ushuaia", zoneFromZoneinfoPath("/var/db/timezone/zoneinfo/America/Argentina/Ushuaia"))
	assert.Equal(t, "", zoneFromZoneinfoPath("/etc/localtime"))
}

func TestZoneFromLocaltime(t *testing.T) {
	dir := t.TempDir()
	zoneinfo := filepath.Join(dir, "zoneinfo", "Europe", "Paris")
	assert.NilError(t, os.MkdirAll(filepath.Dir(zoneinfo), 0o755))
	assert.NilError(t, os.WriteFile(zoneinfo, []byte("TZif"), 0o644))

	link := filepath.Join(dir, "localtime")
	assert.NilError(t, os.Symlink(zoneinfo, link))

	assert.Equal(t, "Europe/Paris", zoneFromLocaltime(link))
	assert.Equal(t, "", zoneFromLocaltime(filepath.Join(dir, "no-such-link")))
}

func TestZoneFromKeyValues(t *testing.T) {
	const sysconfig = `# The time zone of the system.
UTC=true
ZONE="Europe/Berlin"
`
	assert.Equal(t, "Europe/Berlin", zoneFromKeyValues(sysconfig, "ZONE", "TIMEZONE"))

	const gentoo = `TIMEZONE='Australia/Sydney'`
	assert.Equal(t, "Australia/Sydney", zoneFromKeyValues(gentoo, "TIMEZONE"))

	assert.Equal(t, "", zoneFromKeyValues("# nothing here\n", "TZ"))
	// commented-out assignments are not assignments
	assert.Equal(t, "", zoneFromKeyValues("#TZ=Europe/Paris\n", "TZ"))
}

func TestReadFirstLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timezone")
	assert.NilError(t, os.WriteFile(path, []byte("Europe/Paris\n"), 0o644))
	assert.Equal(t, "Europe/Paris", readFirstLine(path))
	assert.Equal(t, "", readFirstLine(filepath.Join(t.TempDir(), "missing")))
}

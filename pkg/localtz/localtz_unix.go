// SPDX-FileCopyrightText: Copyright The system-tz Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package localtz

import (
	"os"
	"path/filepath"
	"strings"
)

// systemTimeZone walks the places Unix systems record the configured zone,
// in decreasing order of reliability. A source whose value does not
// validate is skipped rather than failing the whole resolution, since
// several of these files are stale leftovers on some distributions.
func systemTimeZone() (string, error) {
	candidates := []func() string{
		func() string { return strings.TrimPrefix(os.Getenv("TZ"), ":") },
		func() string { return readFirstLine("/etc/timezone") },
		func() string { return readFirstLine("/var/db/zoneinfo") }, // FreeBSD, macOS
		func() string { return zoneFromLocaltime("/etc/localtime") },
		func() string { return zoneFromLocaltime("/usr/local/etc/localtime") },
		// CentOS and OpenSUSE
		func() string { return zoneFromKeyFile("/etc/sysconfig/clock", "ZONE", "TIMEZONE") },
		// Gentoo
		func() string { return zoneFromKeyFile("/etc/conf.d/clock", "TIMEZONE") },
		// Solaris
		func() string { return zoneFromKeyFile("/etc/default/init", "TZ") },
	}
	for _, candidate := range candidates {
		raw := candidate()
		if raw == "" {
			continue
		}
		if name, err := canonicalize(raw); err == nil {
			return name, nil
		}
	}
	return "", ErrNoTimeZone
}

func readFirstLine(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	line, _, _ := strings.Cut(string(b), "\n")
	return strings.TrimSpace(line)
}

// zoneFromLocaltime extracts the zone name from a localtime symlink, e.g.
// /etc/localtime -> /usr/share/zoneinfo/Europe/Paris.
func zoneFromLocaltime(path string) string {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return ""
	}
	return zoneFromZoneinfoPath(target)
}

func zoneFromZoneinfoPath(target string) string {
	_, zone, ok := strings.Cut(filepath.ToSlash(target), "/zoneinfo/")
	if !ok {
		return ""
	}
	return zone
}

// zoneFromKeyFile scans a shell-style key=value file for the first of the
// given keys, e.g. ZONE="Europe/Berlin" in /etc/sysconfig/clock.
func zoneFromKeyFile(path string, keys ...string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return zoneFromKeyValues(string(b), keys...)
}

func zoneFromKeyValues(content string, keys ...string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		for _, want := range keys {
			if k == want {
				return strings.Trim(strings.TrimSpace(v), `"'`)
			}
		}
	}
	return ""
}

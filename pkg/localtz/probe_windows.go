// SPDX-FileCopyrightText: Copyright The system-tz Authors
// SPDX-License-Identifier: Apache-2.0

// This file is the only place in the module that touches the Windows API
// surface. Everything it returns is plain Go data.

package localtz

import (
	"fmt"
	"strings"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const (
	tzInformationKey = `SYSTEM\CurrentControlSet\Control\TimeZoneInformation`
	geoKey           = `Control Panel\International\Geo`
)

// queryVendorZoneName returns the Windows key of the configured time zone,
// e.g. "Romance Standard Time". The TimeZoneKeyName registry value is
// preferred because it is locale-independent; the localized standard name
// from GetTimeZoneInformation only matches the CLDR keys on English
// systems and is used as a last resort for registry layouts that lack the
// value.
func queryVendorZoneName() (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, tzInformationKey, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("%w: failed to open key (%s): %w", ErrOSQuery, tzInformationKey, err)
	}
	defer k.Close()

	if name, _, err := k.GetStringValue("TimeZoneKeyName"); err == nil {
		if name = strings.TrimSpace(name); name != "" {
			return name, nil
		}
	}

	var tzi windows.Timezoneinformation
	if _, err := windows.GetTimeZoneInformation(&tzi); err != nil {
		return "", fmt.Errorf("%w: GetTimeZoneInformation: %w", ErrOSQuery, err)
	}
	name := strings.TrimSpace(windows.UTF16ToString(tzi.StandardName[:]))
	if name == "" {
		return "", fmt.Errorf("%w: OS reported an empty time zone name", ErrOSQuery)
	}
	return name, nil
}

// queryTerritoryCode returns the user's two-letter region code, e.g. "FR",
// or an empty string when it cannot be determined. Failures here are not
// errors: the resolver falls back to the worldwide default mapping.
func queryTerritoryCode() string {
	k, err := registry.OpenKey(registry.CURRENT_USER, geoKey, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer k.Close()

	name, _, err := k.GetStringValue("Name")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(name)
}

// SPDX-FileCopyrightText: Copyright The system-tz Authors
// SPDX-License-Identifier: Apache-2.0

package localtz

import (
	// The tz database must be compiled in: Windows has no zoneinfo files,
	// and canonical-name validation must not depend on the host.
	_ "time/tzdata"

	"github.com/b4D8/system-tz/pkg/windowszones"
)

// systemTimeZone resolves the Windows zone key reported by the OS through
// the bundled CLDR dataset. A missing or unknown territory degrades to the
// worldwide default mapping for the key inside windowszones.Resolve.
func systemTimeZone() (string, error) {
	zone, err := queryVendorZoneName()
	if err != nil {
		return "", err
	}
	territory := queryTerritoryCode()
	name, err := windowszones.Resolve(zone, territory)
	if err != nil {
		return "", err
	}
	return canonicalize(name)
}

// SPDX-FileCopyrightText: Copyright The system-tz Authors
// SPDX-License-Identifier: Apache-2.0

package localtz

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

// The probe talks to the real OS; all this can assert is that the chain
// produces a validated IANA name on any Windows machine.
func TestSystemTimeZoneOnWindows(t *testing.T) {
	name, err := SystemTimeZone()
	assert.NilError(t, err)
	_, err = time.LoadLocation(name)
	assert.NilError(t, err)
}

func TestQueryVendorZoneName(t *testing.T) {
	zone, err := queryVendorZoneName()
	assert.NilError(t, err)
	assert.Assert(t, zone != "")
}

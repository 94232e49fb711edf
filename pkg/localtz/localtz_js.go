// SPDX-FileCopyrightText: Copyright The system-tz Authors
// SPDX-License-Identifier: Apache-2.0

//go:build js && wasm

package localtz

import (
	"syscall/js"

	// The wasm sandbox has no zoneinfo files; canonical-name validation
	// needs the compiled-in tz database.
	_ "time/tzdata"
)

// systemTimeZone asks the JavaScript host for its resolved time zone:
// Intl.DateTimeFormat().resolvedOptions().timeZone is an IANA name by
// specification, so only validation remains.
func systemTimeZone() (string, error) {
	intl := js.Global().Get("Intl")
	if !intl.Truthy() {
		return "", ErrNoTimeZone
	}
	opts := intl.Get("DateTimeFormat").New().Call("resolvedOptions")
	tz := opts.Get("timeZone")
	if tz.Type() != js.TypeString {
		return "", ErrNoTimeZone
	}
	return canonicalize(tz.String())
}

// SPDX-FileCopyrightText: Copyright The system-tz Authors
// SPDX-License-Identifier: Apache-2.0

// Package localtz resolves the time zone the host operating system is
// configured with into a canonical IANA identifier such as "Europe/Paris".
// The per-OS probe is selected at compile time; resolution never touches
// the network and is safe to call concurrently.
package localtz

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrNoTimeZone is returned when no probe could determine the zone.
	ErrNoTimeZone = errors.New("could not determine system time zone")

	// ErrOSQuery is returned when the host API call itself failed.
	ErrOSQuery = errors.New("failed to query time zone from the OS")

	// ErrInvalidCanonicalName is returned when a resolved string is not a
	// recognized IANA identifier. It signals a version mismatch between
	// the bundled mapping dataset and the tz database in use.
	ErrInvalidCanonicalName = errors.New("not a canonical IANA time zone name")
)

// SystemTimeZone returns the canonical IANA name of the host's configured
// time zone. The result is validated against the tz database before it is
// returned; resolution is recomputed on every call.
func SystemTimeZone() (string, error) {
	return systemTimeZone()
}

// SystemLocation resolves the host time zone and loads it.
func SystemLocation() (*time.Location, error) {
	name, err := SystemTimeZone()
	if err != nil {
		return nil, err
	}
	return time.LoadLocation(name)
}

// canonicalize validates name against the tz database and returns it
// trimmed. "Local" is rejected: time.LoadLocation accepts it, but it is
// not a zone name.
func canonicalize(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "Local" {
		return "", fmt.Errorf("%w: %q", ErrInvalidCanonicalName, name)
	}
	if _, err := time.LoadLocation(name); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidCanonicalName, name)
	}
	return name, nil
}

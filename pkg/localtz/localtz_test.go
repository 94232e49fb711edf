// SPDX-FileCopyrightText: Copyright The system-tz Authors
// SPDX-License-Identifier: Apache-2.0

package localtz

import (
	"errors"
	"testing"

	_ "time/tzdata"

	"gotest.tools/v3/assert"
)

func TestCanonicalize(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		name, err := canonicalize("Europe/Paris")
		assert.NilError(t, err)
		assert.Equal(t, "Europe/Paris", name)
	})
	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		name, err := canonicalize(" Europe/Paris\n")
		assert.NilError(t, err)
		assert.Equal(t, "Europe/Paris", name)
	})
	t.Run("UTC is canonical", func(t *testing.T) {
		name, err := canonicalize("Etc/UTC")
		assert.NilError(t, err)
		assert.Equal(t, "Etc/UTC", name)
	})
	t.Run("empty", func(t *testing.T) {
		_, err := canonicalize("")
		assert.Assert(t, errors.Is(err, ErrInvalidCanonicalName))
	})
	t.Run("Local is not a zone name", func(t *testing.T) {
		_, err := canonicalize("Local")
		assert.Assert(t, errors.Is(err, ErrInvalidCanonicalName))
	})
	t.Run("unknown name", func(t *testing.T) {
		_, err := canonicalize("Atlantis/Poseidonis")
		assert.Assert(t, errors.Is(err, ErrInvalidCanonicalName))
	})
}

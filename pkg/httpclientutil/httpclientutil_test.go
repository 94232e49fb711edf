// SPDX-FileCopyrightText: Copyright The system-tz Authors
// SPDX-License-Identifier: Apache-2.0

package httpclientutil

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gotest.tools/v3/assert"
)

func TestGet(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.Error(w, "no such document", http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer ts.Close()

	t.Run("2XX", func(t *testing.T) {
		resp, err := Get(context.Background(), http.DefaultClient, ts.URL)
		assert.NilError(t, err)
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		assert.NilError(t, err)
		assert.Equal(t, "ok", string(b))
	})
	t.Run("non-2XX", func(t *testing.T) {
		_, err := Get(context.Background(), http.DefaultClient, ts.URL+"/missing")
		var statusErr *HTTPStatusError
		assert.Assert(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	})
}

// SPDX-FileCopyrightText: Copyright The system-tz Authors
// SPDX-License-Identifier: Apache-2.0

package cldr

import (
	"bytes"
	"fmt"
	"go/format"
	"hash/fnv"
	"time"
)

// Emit renders the dataset as the Go source of package windowszones.
// The output is fully formed in memory and gofmt-ed before a single byte
// is returned, so a failing generation can never leave a partial file.
func Emit(ds *Dataset, generatedAt time.Time) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "// Code generated by gen-windows-zones. DO NOT EDIT.")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "package windowszones")
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "// Bundled CLDR WindowsZones dataset, otherVersion %s, typeVersion %s.\n",
		ds.OtherVersion, ds.TypeVersion)
	fmt.Fprintln(&buf, "var datasetVersion = DatasetVersion{")
	fmt.Fprintf(&buf, "OtherVersion: %q,\n", ds.OtherVersion)
	fmt.Fprintf(&buf, "TypeVersion: %q,\n", ds.TypeVersion)
	fmt.Fprintf(&buf, "GeneratedAt: %q,\n", generatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&buf, "Hash: %#x,\n", Hash(ds))
	fmt.Fprintln(&buf, "}")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "var entries = []Entry{")
	for _, z := range ds.Zones {
		fmt.Fprintf(&buf, "{%q, %q, []string{", z.Zone, z.Territory)
		for i, id := range z.IANA {
			if i > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(&buf, "%q", id)
		}
		fmt.Fprintln(&buf, "}},")
	}
	fmt.Fprintln(&buf, "}")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return src, nil
}

// Hash is a FNV-64a digest over the dataset versions and every mapping
// row, recorded in the generated file to make dataset drift observable.
func Hash(ds *Dataset) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s\x00%s\x00", ds.OtherVersion, ds.TypeVersion)
	for _, z := range ds.Zones {
		fmt.Fprintf(h, "%s\x00%s\x00", z.Zone, z.Territory)
		for _, id := range z.IANA {
			fmt.Fprintf(h, "%s\x00", id)
		}
	}
	return h.Sum64()
}

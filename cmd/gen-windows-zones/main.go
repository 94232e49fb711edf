// SPDX-FileCopyrightText: Copyright The system-tz Authors
// SPDX-License-Identifier: Apache-2.0

// gen-windows-zones regenerates pkg/windowszones/zones_gen.go from the
// upstream CLDR WindowsZones dataset. It is a one-shot build-time tool:
// any fetch, parse, or invariant failure exits non-zero without touching
// the output file, so a build can never pick up a stale or partial table.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Validate IANA identifiers against a compiled-in tz database rather
	// than whatever the machine running the generator has on disk.
	_ "time/tzdata"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/b4D8/system-tz/pkg/cldr"
	"github.com/b4D8/system-tz/pkg/version"
)

func main() {
	if err := newApp().Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func newApp() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "gen-windows-zones",
		Short:             "Generate the bundled CLDR WindowsZones lookup table",
		Version:           version.Version,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		RunE:              genAction,
	}
	rootCmd.Flags().StringP("output", "o", "zones_gen.go", "Output file")
	rootCmd.Flags().String("url", cldr.DefaultURL, "URL of windowsZones.xml")
	rootCmd.Flags().Duration("timeout", 30*time.Second, "Timeout for downloading the dataset")
	return rootCmd
}

func genAction(cmd *cobra.Command, _ []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	url, err := cmd.Flags().GetString("url")
	if err != nil {
		return err
	}
	timeout, err := cmd.Flags().GetDuration("timeout")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	logrus.Infof("Downloading %q", url)
	raw, err := cldr.Fetch(ctx, url)
	if err != nil {
		return err
	}

	ds, err := cldr.Extract(raw)
	if err != nil {
		return err
	}
	if ds.Skipped > 0 {
		logrus.Warnf("Skipped %d malformed mapZone elements", ds.Skipped)
	}
	logrus.Infof("Extracted %d mappings (CLDR otherVersion %s, typeVersion %s)",
		len(ds.Zones), ds.OtherVersion, ds.TypeVersion)

	src, err := cldr.Emit(ds, time.Now())
	if err != nil {
		return err
	}

	if err := writeFileAtomically(output, src); err != nil {
		return err
	}
	logrus.Infof("Wrote %q", output)
	return nil
}

func writeFileAtomically(path string, b []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

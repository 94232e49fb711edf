// SPDX-FileCopyrightText: Copyright The system-tz Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/b4D8/system-tz/pkg/windowszones"
)

func newDatasetCommand() *cobra.Command {
	datasetCommand := &cobra.Command{
		Use:   "dataset",
		Short: "Show the bundled CLDR WindowsZones dataset version",
		Args:  cobra.NoArgs,
		RunE:  datasetAction,
	}
	return datasetCommand
}

func datasetAction(cmd *cobra.Command, _ []string) error {
	v := windowszones.Version()
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "otherVersion: %s\n", v.OtherVersion)
	fmt.Fprintf(w, "typeVersion:  %s\n", v.TypeVersion)
	fmt.Fprintf(w, "generatedAt:  %s\n", v.GeneratedAt)
	fmt.Fprintf(w, "hash:         %#x\n", v.Hash)
	fmt.Fprintf(w, "mappings:     %d\n", len(windowszones.Entries()))
	return nil
}

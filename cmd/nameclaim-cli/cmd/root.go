// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"
)

var (
	authority string

	rootCmd = &cobra.Command{
		Use:        "nameclaim-cli",
		Short:      "nameclaim operator CLI",
		SuggestFor: []string{"nameclaim-cli", "nameclaimcli"},
	}
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		deriveCmd,
		decodeCmd,
		rentCmd,
	)
	rootCmd.PersistentFlags().StringVar(
		&authority,
		"authority",
		"",
		"identity of the handler's authority (CB58)",
	)
}

func Execute() error {
	return rootCmd.Execute()
}

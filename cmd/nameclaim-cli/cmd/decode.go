// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/hex"

	"github.com/spf13/cobra"

	"github.com/nameledger/nameclaim/storage"
	"github.com/nameledger/nameclaim/utils"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [counter|claim] [hex]",
	Short: "decode a record dump",
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 2 {
			return ErrInvalidArgs
		}
		b, err := hex.DecodeString(args[1])
		if err != nil {
			return err
		}

		switch args[0] {
		case "counter":
			c, err := storage.DecodeNameCounter(b)
			if err != nil {
				return err
			}
			utils.Outf("{{yellow}}names claimed:{{/}} %d\n", c.Count)
		case "claim":
			c, err := storage.DecodeClaimRecord(b)
			if err != nil {
				return err
			}
			if c.Unclaimed() {
				utils.Outf("{{green}}unclaimed{{/}}\n")
			} else {
				utils.Outf("{{yellow}}claimant:{{/}} %s\n", c.Claimant)
			}
		default:
			return ErrInvalidArgs
		}
		return nil
	},
}

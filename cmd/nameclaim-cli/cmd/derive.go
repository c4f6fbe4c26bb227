// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/spf13/cobra"

	"github.com/nameledger/nameclaim/consts"
	"github.com/nameledger/nameclaim/derive"
	"github.com/nameledger/nameclaim/utils"
)

var deriveCmd = &cobra.Command{
	Use:   "derive [name]",
	Short: "print the digest and claim record address for a name",
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return ErrInvalidArgs
		}
		if authority == "" {
			return ErrMissingAuthority
		}
		owner, err := ids.FromString(authority)
		if err != nil {
			return err
		}

		d := derive.SHA256{}
		digest := d.Hash([]byte(args[0]))
		addr := d.Derive(digest, owner, consts.ClaimSeedTag)

		utils.Outf("{{yellow}}name:{{/}} %s\n", args[0])
		utils.Outf("{{yellow}}digest:{{/}} %s\n", digest)
		utils.Outf("{{yellow}}claim record:{{/}} %s\n", addr)
		return nil
	},
}

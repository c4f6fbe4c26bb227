// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nameledger/nameclaim/rent"
	"github.com/nameledger/nameclaim/utils"
)

var (
	rentBalance             uint64
	rentDataLen             int
	rentLamportsPerByteYear uint64
	rentExemptionThreshold  float64

	rentCmd = &cobra.Command{
		Use:   "rent",
		Short: "check a record's permanence funding",
		RunE: func(*cobra.Command, []string) error {
			p := rent.DefaultParams()
			p.LamportsPerByteYear = rentLamportsPerByteYear
			p.ExemptionThreshold = rentExemptionThreshold

			min := p.MinimumBalance(rentDataLen)
			utils.Outf("{{yellow}}minimum balance:{{/}} %d\n", min)
			if p.IsExempt(rentBalance, rentDataLen) {
				utils.Outf("{{green}}record is permanent{{/}}\n")
			} else {
				utils.Outf("{{red}}record is short by %d{{/}}\n", min-rentBalance)
			}
			return nil
		},
	}
)

func init() {
	defaults := rent.DefaultParams()
	rentCmd.Flags().Uint64Var(&rentBalance, "balance", 0, "record balance")
	rentCmd.Flags().IntVar(&rentDataLen, "data-len", 32, "record data length")
	rentCmd.Flags().Uint64Var(
		&rentLamportsPerByteYear,
		"lamports-per-byte-year",
		defaults.LamportsPerByteYear,
		"storage price per byte-year",
	)
	rentCmd.Flags().Float64Var(
		&rentExemptionThreshold,
		"exemption-threshold",
		defaults.ExemptionThreshold,
		"prepaid years required for permanence",
	)
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "nameclaim-cli" implements the nameclaim operator interface: deriving claim
// record addresses, decoding record dumps, and checking permanence funding.
package main

import (
	"os"

	"github.com/nameledger/nameclaim/cmd/nameclaim-cli/cmd"
	"github.com/nameledger/nameclaim/utils"
)

func main() {
	if err := cmd.Execute(); err != nil {
		utils.Outf("{{red}}nameclaim-cli exited with error:{{/}} %+v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

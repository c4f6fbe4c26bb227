// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/version"
)

const (
	Name = "nameclaim"

	// NameCounterLen is the encoded size of the global name counter.
	NameCounterLen = 4

	// ClaimRecordLen is the encoded size of a per-name claim record.
	ClaimRecordLen = 32

	// RentParamsLen is the encoded size of the attestation parameters
	// (u64 + f64 + u8).
	RentParamsLen = 17

	// ClaimSeedTag is the seed tag used to derive a claim record's address
	// from a name digest.
	ClaimSeedTag = "metadata"

	// NumClaimRecords is the number of records a claim request must supply:
	// counter, claim, attestation, requester, in that order.
	NumClaimRecords = 4
)

// AttestationAddress is the well-known identity of the record the host uses
// to attest permanence parameters. The host provisions it once; requests
// supplying any other identity in the attestation slot are rejected.
var AttestationAddress ids.ID

func init() {
	b := make([]byte, ids.IDLen)
	copy(b, []byte(Name+"-attestation"))
	addr, err := ids.ToID(b)
	if err != nil {
		panic(err)
	}
	AttestationAddress = addr
}

var Version = &version.Semantic{
	Major: 0,
	Minor: 1,
	Patch: 0,
}

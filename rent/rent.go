// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rent

import (
	"errors"
	"fmt"

	"github.com/near/borsh-go"

	"github.com/nameledger/nameclaim/consts"
	"github.com/nameledger/nameclaim/record"
)

// StorageOverhead is charged on top of a record's data length when computing
// its minimum balance, covering the ledger's per-record bookkeeping.
const StorageOverhead = 128

var ErrInvalidParams = errors.New("invalid attestation parameters")

// Params are the host's published permanence parameters, carried by the
// attestation record. A record funded at or above MinimumBalance for its size
// is guaranteed never to be purged.
type Params struct {
	// LamportsPerByteYear prices one byte of record storage for one year.
	LamportsPerByteYear uint64 `json:"lamportsPerByteYear"`

	// ExemptionThreshold is the number of years of storage a record must
	// prepay to be considered permanent.
	ExemptionThreshold float64 `json:"exemptionThreshold"`

	// BurnPercent is the share of collected rent the host destroys. Unused
	// by the handler, carried for layout fidelity.
	BurnPercent uint8 `json:"burnPercent"`
}

// DefaultParams mirrors the ledger's published defaults.
func DefaultParams() Params {
	return Params{
		LamportsPerByteYear: 3_480,
		ExemptionThreshold:  2.0,
		BurnPercent:         50,
	}
}

func DecodeParams(b []byte) (Params, error) {
	var p Params
	if len(b) != consts.RentParamsLen {
		return p, fmt.Errorf("%w: %d bytes", ErrInvalidParams, len(b))
	}
	if err := borsh.Deserialize(&p, b); err != nil {
		return p, err
	}
	return p, nil
}

func (p Params) Encode() ([]byte, error) {
	return borsh.Serialize(p)
}

// MinimumBalance returns the balance a record of [dataLen] bytes must hold to
// satisfy the permanence requirement.
func (p Params) MinimumBalance(dataLen int) uint64 {
	bytes := uint64(StorageOverhead + dataLen)
	return uint64(float64(bytes*p.LamportsPerByteYear) * p.ExemptionThreshold)
}

func (p Params) IsExempt(balance uint64, dataLen int) bool {
	return balance >= p.MinimumBalance(dataLen)
}

// FromRecord decodes the parameters carried by an attestation record. Identity
// verification is the caller's job; this only reads the payload.
func FromRecord(r *record.Record) (Params, error) {
	return DecodeParams(r.Data)
}

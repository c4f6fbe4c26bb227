// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package genesis describes what the deployment-time provisioning step must
// create before the handler can serve requests: the authority identity, the
// counter record, and the permanence parameters the host will attest to.
package genesis

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/nameledger/nameclaim/record"
	"github.com/nameledger/nameclaim/rent"
	"github.com/nameledger/nameclaim/storage"
)

var ErrNoAuthority = errors.New("authority must be set")

type Genesis struct {
	// Authority owns the counter record and every claim record.
	Authority ids.ID `json:"authority"`

	// CounterAddress locates the global name counter.
	CounterAddress ids.ID `json:"counterAddress"`

	// InitialNameCount seeds the counter, normally zero.
	InitialNameCount uint32 `json:"initialNameCount"`

	// CounterBalance funds the counter record's permanence.
	CounterBalance uint64 `json:"counterBalance"`

	// Rent is the permanence pricing the host publishes through the
	// attestation record.
	Rent rent.Params `json:"rent"`
}

func Default() *Genesis {
	return &Genesis{
		InitialNameCount: 0,
		CounterBalance:   10_000_000,
		Rent:             rent.DefaultParams(),
	}
}

func New(b []byte) (*Genesis, error) {
	g := Default()
	if len(b) > 0 {
		if err := json.Unmarshal(b, g); err != nil {
			return nil, fmt.Errorf("failed to unmarshal genesis %s: %w", string(b), err)
		}
	}
	if g.Authority == ids.Empty {
		return nil, ErrNoAuthority
	}
	return g, nil
}

// CounterRecord materializes the counter record provisioning must create.
func (g *Genesis) CounterRecord() (*record.Record, error) {
	b, err := storage.NameCounter{Count: g.InitialNameCount}.Encode()
	if err != nil {
		return nil, err
	}
	return &record.Record{
		Address: g.CounterAddress,
		Owner:   g.Authority,
		Balance: g.CounterBalance,
		Data:    b,
	}, nil
}

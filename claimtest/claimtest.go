// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package claimtest provides builders and a scenario runner for exercising
// the claim processor against hand-assembled record sets.
package claimtest

import (
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/hashing"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/nameledger/nameclaim/claim"
	"github.com/nameledger/nameclaim/consts"
	"github.com/nameledger/nameclaim/derive"
	"github.com/nameledger/nameclaim/record"
	"github.com/nameledger/nameclaim/rent"
	"github.com/nameledger/nameclaim/storage"
)

// ID derives a deterministic identity from a label so scenarios read as
// prose rather than hex.
func ID(label string) ids.ID {
	return ids.ID(hashing.ComputeHash256Array([]byte(label)))
}

// Funded is a balance comfortably above the default permanence requirement
// for a claim record.
const Funded uint64 = 10_000_000

// CounterRecord builds a counter record owned by [owner] holding [count].
func CounterRecord(owner ids.ID, count uint32) *record.Record {
	b, err := storage.NameCounter{Count: count}.Encode()
	if err != nil {
		panic(err)
	}
	return &record.Record{
		Address: ID("counter"),
		Owner:   owner,
		Balance: Funded,
		Data:    b,
	}
}

// ClaimRecordFor builds the claim record for [name] at its derived address:
// unclaimed if [claimant] is ids.Empty, already claimed otherwise.
func ClaimRecordFor(
	d derive.Deriver,
	authority ids.ID,
	owner ids.ID,
	name []byte,
	balance uint64,
	claimant ids.ID,
) *record.Record {
	return &record.Record{
		Address: d.Derive(d.Hash(name), authority, consts.ClaimSeedTag),
		Owner:   owner,
		Balance: balance,
		Data:    storage.ClaimRecord{Claimant: claimant}.Encode(),
	}
}

// AttestationRecord builds the permanence attestation carrying [p]. Pass a
// non-empty [addr] to forge the identity.
func AttestationRecord(p rent.Params, addr ids.ID) *record.Record {
	if addr == ids.Empty {
		addr = consts.AttestationAddress
	}
	b, err := p.Encode()
	if err != nil {
		panic(err)
	}
	return &record.Record{
		Address: addr,
		Owner:   ID("host"),
		Data:    b,
	}
}

// RequesterRecord builds the record of the identity asking for the claim.
func RequesterRecord(id ids.ID, signer bool) *record.Record {
	return &record.Record{
		Address: id,
		Owner:   id,
		Balance: Funded,
		Signer:  signer,
		Data:    []byte{},
	}
}

// Snapshot deep-copies every record's data so scenarios can assert rejected
// requests left the ledger byte-identical.
func Snapshot(recs []*record.Record) [][]byte {
	out := make([][]byte, len(recs))
	for i, r := range recs {
		out[i] = make([]byte, len(r.Data))
		copy(out[i], r.Data)
	}
	return out
}

// Scenario is one processor invocation plus its expected outcome.
type Scenario struct {
	Authority ids.ID
	Records   []*record.Record
	Payload   []byte

	// ExpectedErr nil means the claim must be granted.
	ExpectedErr error

	// Assert, if set, runs after the invocation with the same records.
	Assert func(r *require.Assertions, recs []*record.Record)
}

// Suite runs a set of named scenarios, each against a fresh processor.
type Suite struct {
	Deriver derive.Deriver
	Tests   map[string]Scenario
}

func (s *Suite) Run(t *testing.T) {
	d := s.Deriver
	if d == nil {
		d = derive.SHA256{}
	}
	for name := range s.Tests {
		test := s.Tests[name]
		t.Run(name, func(t *testing.T) {
			r := require.New(t)

			p, err := claim.NewProcessor(logging.NoLog{}, d, prometheus.NewRegistry())
			r.NoError(err)

			err = p.Process(test.Authority, test.Records, test.Payload)
			if test.ExpectedErr != nil {
				r.ErrorIs(err, test.ExpectedErr)
			} else {
				r.NoError(err)
			}
			if test.Assert != nil {
				test.Assert(r, test.Records)
			}
		})
	}
}

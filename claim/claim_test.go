// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package claim_test

import (
	"fmt"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/nameledger/nameclaim/claim"
	"github.com/nameledger/nameclaim/claimtest"
	"github.com/nameledger/nameclaim/derive"
	"github.com/nameledger/nameclaim/record"
	"github.com/nameledger/nameclaim/rent"
	"github.com/nameledger/nameclaim/storage"
)

var (
	authority = claimtest.ID("authority")
	alice     = claimtest.ID("alice-keys")
	mallory   = claimtest.ID("mallory-keys")
	deriver   = derive.SHA256{}
)

// request assembles the canonical four-record list for [name], unclaimed and
// fully funded, requested by [requester].
func request(name []byte, requester ids.ID) []*record.Record {
	return []*record.Record{
		claimtest.CounterRecord(authority, 0),
		claimtest.ClaimRecordFor(deriver, authority, authority, name, claimtest.Funded, ids.Empty),
		claimtest.AttestationRecord(rent.DefaultParams(), ids.Empty),
		claimtest.RequesterRecord(requester, true),
	}
}

func TestProcess(t *testing.T) {
	alicePayload := []byte("alice")

	unsigned := request(alicePayload, alice)
	unsigned[3].Signer = false
	unsignedBefore := claimtest.Snapshot(unsigned)

	underfunded := request(alicePayload, alice)
	underfunded[1].Balance = 0

	wrongCounterOwner := request(alicePayload, alice)
	wrongCounterOwner[0].Owner = claimtest.ID("someone-else")

	wrongClaimOwner := request(alicePayload, alice)
	wrongClaimOwner[1].Owner = claimtest.ID("someone-else")

	forgedAttestation := request(alicePayload, alice)
	forgedAttestation[2].Address = claimtest.ID("forged-attestation")

	suite := claimtest.Suite{
		Tests: map[string]claimtest.Scenario{
			"FreshClaimGranted": {
				Authority: authority,
				Records:   request(alicePayload, alice),
				Payload:   alicePayload,
				Assert: func(r *require.Assertions, recs []*record.Record) {
					counter, err := storage.GetNameCounter(recs[0])
					r.NoError(err)
					r.Equal(uint32(1), counter.Count)

					claimed, err := storage.GetClaimRecord(recs[1])
					r.NoError(err)
					r.Equal(alice, claimed.Claimant)
				},
			},
			"NameAlreadyClaimed": {
				Authority: authority,
				Records: func() []*record.Record {
					recs := request(alicePayload, mallory)
					recs[1].Data = storage.ClaimRecord{Claimant: alice}.Encode()
					return recs
				}(),
				Payload:     alicePayload,
				ExpectedErr: claim.AlreadyClaimed,
				Assert: func(r *require.Assertions, recs []*record.Record) {
					counter, err := storage.GetNameCounter(recs[0])
					r.NoError(err)
					r.Zero(counter.Count)
				},
			},
			"ClaimRecordForAnotherName": {
				Authority:   authority,
				Records:     request([]byte("bob"), alice),
				Payload:     alicePayload,
				ExpectedErr: claim.AccountNotCheckAccount,
			},
			"UnsignedRequester": {
				Authority:   authority,
				Records:     unsigned,
				Payload:     alicePayload,
				ExpectedErr: claim.ErrMissingSignature,
				Assert: func(r *require.Assertions, recs []*record.Record) {
					r.Equal(unsignedBefore, claimtest.Snapshot(recs))
				},
			},
			"UnderfundedClaimRecord": {
				Authority:   authority,
				Records:     underfunded,
				Payload:     alicePayload,
				ExpectedErr: claim.AccountNotRentExempt,
			},
			"CounterNotOwnedByAuthority": {
				Authority:   authority,
				Records:     wrongCounterOwner,
				Payload:     alicePayload,
				ExpectedErr: claim.IncorrectOwner,
			},
			"ClaimNotOwnedByAuthority": {
				Authority:   authority,
				Records:     wrongClaimOwner,
				Payload:     alicePayload,
				ExpectedErr: claim.IncorrectOwner,
			},
			"ForgedAttestation": {
				Authority:   authority,
				Records:     forgedAttestation,
				Payload:     alicePayload,
				ExpectedErr: claim.ErrInvalidAttestation,
			},
			"ShortRecordList": {
				Authority:   authority,
				Records:     request(alicePayload, alice)[:2],
				Payload:     alicePayload,
				ExpectedErr: record.ErrMissingRecord,
			},
			"TrailingRecords": {
				Authority: authority,
				Records: append(
					request(alicePayload, alice),
					claimtest.RequesterRecord(mallory, false),
				),
				Payload:     alicePayload,
				ExpectedErr: claim.ErrExtraRecords,
			},
		},
	}
	suite.Run(t)
}

// A granted claim persists the requester, so the same name cannot be claimed
// twice even by the original requester.
func TestClaimIsOneTime(t *testing.T) {
	require := require.New(t)

	p, err := claim.NewProcessor(logging.NoLog{}, deriver, prometheus.NewRegistry())
	require.NoError(err)

	payload := []byte("alice")
	recs := request(payload, alice)
	require.NoError(p.Process(authority, recs, payload))

	// Replay verbatim.
	require.ErrorIs(p.Process(authority, recs, payload), claim.AlreadyClaimed)

	// A different requester against the now-claimed record.
	recs[3] = claimtest.RequesterRecord(mallory, true)
	require.ErrorIs(p.Process(authority, recs, payload), claim.AlreadyClaimed)

	counter, err := storage.GetNameCounter(recs[0])
	require.NoError(err)
	require.Equal(uint32(1), counter.Count)
}

// K grants on distinct names advance the shared counter by exactly K.
func TestCounterAdvancesPerGrant(t *testing.T) {
	require := require.New(t)

	p, err := claim.NewProcessor(logging.NoLog{}, deriver, prometheus.NewRegistry())
	require.NoError(err)

	const grants = 7
	counterRec := claimtest.CounterRecord(authority, 0)
	for i := 0; i < grants; i++ {
		payload := []byte(fmt.Sprintf("name-%d", i))
		recs := []*record.Record{
			counterRec,
			claimtest.ClaimRecordFor(deriver, authority, authority, payload, claimtest.Funded, ids.Empty),
			claimtest.AttestationRecord(rent.DefaultParams(), ids.Empty),
			claimtest.RequesterRecord(alice, true),
		}
		require.NoError(p.Process(authority, recs, payload))
	}

	counter, err := storage.GetNameCounter(counterRec)
	require.NoError(err)
	require.Equal(uint32(grants), counter.Count)
}

// Distinct names never share a derived claim address, so a record for one
// name can never satisfy a request for another.
func TestDistinctNamesDistinctRecords(t *testing.T) {
	require := require.New(t)

	p, err := claim.NewProcessor(logging.NoLog{}, deriver, prometheus.NewRegistry())
	require.NoError(err)

	bobRecs := request([]byte("bob"), alice)
	require.ErrorIs(p.Process(authority, bobRecs, []byte("alice")), claim.AccountNotCheckAccount)

	counter, err := storage.GetNameCounter(bobRecs[0])
	require.NoError(err)
	require.Zero(counter.Count)
}

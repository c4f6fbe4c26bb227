// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package claim implements the name-claim instruction processor: a
// deterministic, single-pass state transition over four host-supplied
// records. The host locks the records, invokes Process once per request, and
// commits every staged write atomically iff Process returns nil.
package claim

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/nameledger/nameclaim/consts"
	"github.com/nameledger/nameclaim/derive"
	"github.com/nameledger/nameclaim/record"
	"github.com/nameledger/nameclaim/rent"
	"github.com/nameledger/nameclaim/storage"
)

type Processor struct {
	log     logging.Logger
	deriver derive.Deriver
	metrics *metrics
}

func NewProcessor(
	log logging.Logger,
	deriver derive.Deriver,
	reg prometheus.Registerer,
) (*Processor, error) {
	m, err := newMetrics(reg)
	if err != nil {
		return nil, err
	}
	return &Processor{
		log:     log,
		deriver: deriver,
		metrics: m,
	}, nil
}

// Process validates a claim on the name carried in [payload] and, if every
// check passes, stages exactly two writes: the incremented name counter and
// the requester's identity in the claim record. The first failing check
// aborts the request with no record touched.
//
// [recs] must contain, in order: the counter record, the claim record, the
// permanence attestation, and the requester.
func (p *Processor) Process(
	authority ids.ID,
	recs []*record.Record,
	payload []byte,
) error {
	p.metrics.claimsProcessed.Inc()

	digest := p.deriver.Hash(payload)

	l := record.NewList(recs)
	counterRec, err := l.Next()
	if err != nil {
		return p.reject(err, "counter record missing")
	}
	claimRec, err := l.Next()
	if err != nil {
		return p.reject(err, "claim record missing")
	}
	attestRec, err := l.Next()
	if err != nil {
		return p.reject(err, "attestation record missing")
	}
	requesterRec, err := l.Next()
	if err != nil {
		return p.reject(err, "requester record missing")
	}
	if l.Remaining() > 0 {
		return p.reject(ErrExtraRecords, "unexpected trailing records",
			zap.Int("extra", l.Remaining()),
		)
	}

	if counterRec.Owner != authority {
		return p.reject(IncorrectOwner, "counter record not owned by authority",
			zap.Stringer("owner", counterRec.Owner),
		)
	}
	if claimRec.Owner != authority {
		return p.reject(IncorrectOwner, "claim record not owned by authority",
			zap.Stringer("owner", claimRec.Owner),
		)
	}

	if attestRec.Address != consts.AttestationAddress {
		return p.reject(ErrInvalidAttestation, "attestation record has wrong identity",
			zap.Stringer("address", attestRec.Address),
		)
	}
	params, err := rent.FromRecord(attestRec)
	if err != nil {
		return p.reject(err, "attestation record undecodable")
	}
	if !params.IsExempt(claimRec.Balance, len(claimRec.Data)) {
		return p.reject(AccountNotRentExempt, "claim record not permanent",
			zap.Uint64("balance", claimRec.Balance),
			zap.Uint64("required", params.MinimumBalance(len(claimRec.Data))),
		)
	}

	if !requesterRec.Signer {
		return p.reject(ErrMissingSignature, "requester record is not a signer",
			zap.Stringer("requester", requesterRec.Address),
		)
	}

	expected := p.deriver.Derive(digest, authority, consts.ClaimSeedTag)
	if expected != claimRec.Address {
		return p.reject(AccountNotCheckAccount, "claim record does not match name",
			zap.Stringer("expected", expected),
			zap.Stringer("supplied", claimRec.Address),
		)
	}

	current, err := storage.GetClaimRecord(claimRec)
	if err != nil {
		return p.reject(err, "claim record undecodable")
	}
	if !current.Unclaimed() {
		return p.reject(AlreadyClaimed, "name already claimed",
			zap.Stringer("claimant", current.Claimant),
		)
	}

	counter, err := storage.GetNameCounter(counterRec)
	if err != nil {
		return p.reject(err, "counter record undecodable")
	}
	counter.Count++

	// Every check has passed; stage both writes. The host commits them
	// atomically.
	if err := storage.SetNameCounter(counterRec, counter); err != nil {
		return p.reject(err, "counter write failed")
	}
	claimed := storage.ClaimRecord{Claimant: requesterRec.Address}
	if err := storage.SetClaimRecord(claimRec, claimed); err != nil {
		return p.reject(err, "claim write failed")
	}

	p.metrics.claimsGranted.Inc()
	p.log.Debug("name claimed",
		zap.Stringer("digest", digest),
		zap.Stringer("claimant", requesterRec.Address),
		zap.Uint32("nameCount", counter.Count),
	)
	return nil
}

func (p *Processor) reject(err error, msg string, fields ...zap.Field) error {
	p.metrics.claimsRejected.WithLabelValues(err.Error()).Inc()
	p.log.Debug(msg, append(fields, zap.Error(err))...)
	return err
}

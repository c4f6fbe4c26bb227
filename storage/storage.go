// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/near/borsh-go"

	"github.com/nameledger/nameclaim/consts"
	"github.com/nameledger/nameclaim/record"
)

// Record layouts
//
// NameCounter (4 bytes)
//   -> count: u32 LE
//
// ClaimRecord (32 bytes)
//   -> claimant identity: raw 32 bytes (all-zero means unclaimed)

// NameCounter holds the global count of names claimed so far. One record per
// deployment, owned by the handler's authority.
type NameCounter struct {
	Count uint32
}

func DecodeNameCounter(b []byte) (NameCounter, error) {
	var c NameCounter
	if len(b) != consts.NameCounterLen {
		return c, fmt.Errorf("%w: counter is %d bytes", ErrInvalidRecordLength, len(b))
	}
	if err := borsh.Deserialize(&c, b); err != nil {
		return c, err
	}
	return c, nil
}

func (c NameCounter) Encode() ([]byte, error) {
	return borsh.Serialize(c)
}

// ClaimRecord marks one name as claimed by one identity. Exactly one exists
// per distinct name, at the address derived from the name's digest.
type ClaimRecord struct {
	Claimant ids.ID
}

// Unclaimed reports whether the record still holds its provisioned all-zero
// value.
func (c ClaimRecord) Unclaimed() bool {
	return c.Claimant == ids.Empty
}

func DecodeClaimRecord(b []byte) (ClaimRecord, error) {
	if len(b) != consts.ClaimRecordLen {
		return ClaimRecord{}, fmt.Errorf("%w: claim is %d bytes", ErrInvalidRecordLength, len(b))
	}
	claimant, err := ids.ToID(b)
	if err != nil {
		return ClaimRecord{}, err
	}
	return ClaimRecord{Claimant: claimant}, nil
}

func (c ClaimRecord) Encode() []byte {
	b := make([]byte, consts.ClaimRecordLen)
	copy(b, c.Claimant[:])
	return b
}

func GetNameCounter(r *record.Record) (NameCounter, error) {
	return DecodeNameCounter(r.Data)
}

// SetNameCounter encodes [c] into the record's existing buffer. The buffer is
// host-owned, so the write stays in place.
func SetNameCounter(r *record.Record, c NameCounter) error {
	b, err := c.Encode()
	if err != nil {
		return err
	}
	if len(r.Data) != len(b) {
		return fmt.Errorf("%w: counter is %d bytes", ErrInvalidRecordLength, len(r.Data))
	}
	copy(r.Data, b)
	return nil
}

func GetClaimRecord(r *record.Record) (ClaimRecord, error) {
	return DecodeClaimRecord(r.Data)
}

func SetClaimRecord(r *record.Record, c ClaimRecord) error {
	if len(r.Data) != consts.ClaimRecordLen {
		return fmt.Errorf("%w: claim is %d bytes", ErrInvalidRecordLength, len(r.Data))
	}
	copy(r.Data, c.Encode())
	return nil
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package record

import (
	"errors"

	"github.com/ava-labs/avalanchego/ids"
)

var ErrMissingRecord = errors.New("missing required record")

// Record is the handler's view of one ledger record for the duration of a
// single invocation. The host locks every declared record before the handler
// runs and commits or rolls back any change to [Data] atomically, so the
// handler never observes concurrent mutation.
type Record struct {
	// Address locates the record on the ledger.
	Address ids.ID

	// Owner is the identity allowed to mutate the record's data.
	Owner ids.ID

	// Balance funds the record's permanence. Records below the host's
	// minimum balance may be purged between invocations.
	Balance uint64

	// Signer reports whether this record's identity actively authorized
	// the current request. Set by the host, never by the handler.
	Signer bool

	// Data is the record's raw bytes. Mutations become visible to the
	// ledger only if the invocation returns nil.
	Data []byte
}

// List walks host-supplied records in the order the request declared them.
// Walking past the end returns ErrMissingRecord rather than panicking on a
// short list.
type List struct {
	recs []*Record
	next int
}

func NewList(recs []*Record) *List {
	return &List{recs: recs}
}

func (l *List) Next() (*Record, error) {
	if l.next >= len(l.recs) {
		return nil, ErrMissingRecord
	}
	r := l.recs[l.next]
	l.next++
	return r, nil
}

// Remaining returns the number of records not yet consumed.
func (l *List) Remaining() int {
	return len(l.recs) - l.next
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package derive locates claim records without an index structure: every name
// maps to exactly one address through a pure function of its digest, the
// owning authority, and a fixed tag.
package derive

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/hashing"
)

// Deriver is the address-derivation primitive the host supplies alongside the
// handler. Both methods are deterministic and side-effect free.
type Deriver interface {
	// Hash digests an opaque payload (a name) into a 32-byte seed.
	Hash(payload []byte) ids.ID

	// Derive computes the record address owned by [owner] for [seed] under
	// [tag]. Distinct (seed, tag) pairs under one owner never collide.
	Derive(seed ids.ID, owner ids.ID, tag string) ids.ID
}

var _ Deriver = SHA256{}

// SHA256 is the production derivation scheme: plain SHA-256 for the payload
// digest, SHA-256 over seed || tag || owner for addresses.
type SHA256 struct{}

func (SHA256) Hash(payload []byte) ids.ID {
	return ids.ID(hashing.ComputeHash256Array(payload))
}

func (SHA256) Derive(seed ids.ID, owner ids.ID, tag string) ids.ID {
	b := make([]byte, 0, 2*ids.IDLen+len(tag))
	b = append(b, seed[:]...)
	b = append(b, tag...)
	b = append(b, owner[:]...)
	return ids.ID(hashing.ComputeHash256Array(b))
}

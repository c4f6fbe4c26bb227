// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package claim

import (
	"errors"
	"fmt"
)

// Code is one of the closed set of rejection reasons the host reports back to
// the caller. Values are assigned in declaration order and are part of the
// host protocol; never reorder or renumber.
type Code uint32

const (
	// UnexpectedCandidate is a reserved slot inherited from the handler's
	// ballot-counting ancestor. No code path produces it; it exists so the
	// remaining codes keep their wire values.
	UnexpectedCandidate Code = iota

	// IncorrectOwner: the counter or claim record is not owned by the
	// handler's authority.
	IncorrectOwner

	// AccountNotRentExempt: the claim record's balance does not satisfy the
	// permanence requirement.
	AccountNotRentExempt

	// AccountNotCheckAccount: the supplied claim record is not the one
	// derived from the requested name.
	AccountNotCheckAccount

	// AlreadyClaimed: the claim record already holds a claimant.
	AlreadyClaimed
)

var _ error = Code(0)

func (c Code) Error() string {
	switch c {
	case UnexpectedCandidate:
		return "unexpected candidate"
	case IncorrectOwner:
		return "incorrect owner"
	case AccountNotRentExempt:
		return "account not rent exempt"
	case AccountNotCheckAccount:
		return "account not check account"
	case AlreadyClaimed:
		// Legacy wire text; host tooling matches on it.
		return "already voted"
	default:
		return fmt.Sprintf("unknown claim error %d", uint32(c))
	}
}

// Structural failures. These abort the request like a Code does, but they
// indicate a malformed invocation rather than a business rejection and carry
// no stable wire value.
var (
	ErrExtraRecords       = errors.New("too many records supplied")
	ErrInvalidAttestation = errors.New("attestation record has wrong identity")
	ErrMissingSignature   = errors.New("requester did not authorize the request")
)

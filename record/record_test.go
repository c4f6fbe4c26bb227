// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package record_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nameledger/nameclaim/record"
)

func TestListTraversal(t *testing.T) {
	require := require.New(t)

	a := &record.Record{}
	b := &record.Record{}
	l := record.NewList([]*record.Record{a, b})
	require.Equal(2, l.Remaining())

	got, err := l.Next()
	require.NoError(err)
	require.Same(a, got)

	got, err = l.Next()
	require.NoError(err)
	require.Same(b, got)
	require.Zero(l.Remaining())

	_, err = l.Next()
	require.ErrorIs(err, record.ErrMissingRecord)
}

func TestEmptyList(t *testing.T) {
	require := require.New(t)

	l := record.NewList(nil)
	_, err := l.Next()
	require.ErrorIs(err, record.ErrMissingRecord)
}

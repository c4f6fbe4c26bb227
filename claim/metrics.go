// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package claim

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	claimsProcessed prometheus.Counter
	claimsGranted   prometheus.Counter
	claimsRejected  *prometheus.CounterVec
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		claimsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "claim",
			Name:      "processed",
			Help:      "number of claim requests processed",
		}),
		claimsGranted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "claim",
			Name:      "granted",
			Help:      "number of claim requests granted",
		}),
		claimsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "claim",
			Name:      "rejected",
			Help:      "number of claim requests rejected, by reason",
		}, []string{"reason"}),
	}

	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.claimsProcessed),
		r.Register(m.claimsGranted),
		r.Register(m.claimsRejected),
	)
	return m, errs.Err
}

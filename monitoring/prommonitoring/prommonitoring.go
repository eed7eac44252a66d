// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package prommonitoring provides a [monitoring.Client] that counts signing and
// verification operations with Prometheus metrics.
package prommonitoring

import (
	"errors"
	"fmt"

	"github.com/KaganCanSit/sphincsplus-go/monitoring"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "slhdsa"

// Client exports two counters, labeled by primitive, API function and
// parameter set:
//
//	slhdsa_operations_total{result="success"|"failure"}
//	slhdsa_processed_bytes_total
type Client struct {
	operations *prometheus.CounterVec
	bytes      *prometheus.CounterVec
}

var _ monitoring.Client = (*Client)(nil)

// NewClient creates the counters and registers them with reg.
func NewClient(reg prometheus.Registerer) (*Client, error) {
	labels := []string{"primitive", "api_function", "parameter_set"}
	c := &Client{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Number of signing and verification operations.",
		}, append(labels, "result")),
		bytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "processed_bytes_total",
			Help:      "Number of message bytes signed or verified successfully.",
		}, labels),
	}
	for _, collector := range []prometheus.Collector{c.operations, c.bytes} {
		if err := reg.Register(collector); err != nil {
			return nil, fmt.Errorf("prommonitoring: %w", err)
		}
	}
	return c, nil
}

// NewLogger returns a logger that updates the counters of context.
func (c *Client) NewLogger(context *monitoring.Context) (monitoring.Logger, error) {
	if context == nil || context.KeyInfo == nil {
		return nil, errors.New("prommonitoring: context must have key info")
	}
	p, api, set := context.Primitive, context.APIFunction, context.KeyInfo.ParameterSet
	return &logger{
		success: c.operations.WithLabelValues(p, api, set, "success"),
		failure: c.operations.WithLabelValues(p, api, set, "failure"),
		bytes:   c.bytes.WithLabelValues(p, api, set),
	}, nil
}

type logger struct {
	success prometheus.Counter
	failure prometheus.Counter
	bytes   prometheus.Counter
}

func (l *logger) Log(_ uint32, numBytes int) {
	l.success.Inc()
	l.bytes.Add(float64(numBytes))
}

func (l *logger) LogFailure() { l.failure.Inc() }
